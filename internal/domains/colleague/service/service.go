package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"worldclock/config"
	"worldclock/infras/kafka"
	"worldclock/infras/otel"
	catalogService "worldclock/internal/domains/catalog/service"
	"worldclock/internal/domains/colleague/model/dto"
	"worldclock/internal/domains/colleague/repository"
	"worldclock/shared/broadcast"
	"worldclock/shared/constant"
	"worldclock/shared/failure"
	"worldclock/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Colleague interface {
	List(ctx context.Context) (dto.GetColleaguesResponse, error)
	Add(ctx context.Context, req dto.AddColleagueRequest) (dto.ColleagueResponse, error)
	Remove(ctx context.Context, index int) (dto.ColleagueResponse, error)
}

type serviceImpl struct {
	repo    repository.Roster
	catalog catalogService.Catalog
	kafka   kafka.Client
	hub     broadcast.Hub
	clock   timezone.Clock
	cfg     *config.Config
	otel    otel.Otel
}

func New(
	repo repository.Roster,
	catalog catalogService.Catalog,
	kafka kafka.Client,
	hub broadcast.Hub,
	clock timezone.Clock,
	cfg *config.Config,
	otel otel.Otel,
) Colleague {
	return &serviceImpl{
		repo:    repo,
		catalog: catalog,
		kafka:   kafka,
		hub:     hub,
		clock:   clock,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetColleaguesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListColleagues")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	colleagues, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list colleagues")

		return res, fmt.Errorf("failed to list colleagues: %w", err)
	}

	res.FromModels(colleagues)

	return res, nil
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddColleagueRequest) (res dto.ColleagueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddColleague")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	location, ok := s.catalog.Find(req.Location)
	if !ok {
		return res, failure.BadRequestFromString("please select a valid location") //nolint:wrapcheck
	}

	colleague := req.ToModel(location, s.clock.Now())

	index, err := s.repo.Append(ctx, colleague)
	if err != nil {
		log.Error().Err(err).Msg("failed to add colleague")

		return res, fmt.Errorf("failed to add colleague: %w", err)
	}

	res.FromModel(index, colleague)

	s.notify(ctx, dto.EventAdd, res)

	return res, nil
}

func (s *serviceImpl) Remove(ctx context.Context, index int) (res dto.ColleagueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveColleague")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	removed, err := s.repo.RemoveAt(ctx, index)
	if errors.Is(err, repository.ErrIndexOutOfRange) {
		return res, failure.NotFound(fmt.Sprintf("colleague at index %d not found", index)) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Int("index", index).Msg("failed to remove colleague")

		return res, fmt.Errorf("failed to remove colleague: %w", err)
	}

	res.FromModel(index, removed)

	s.notify(ctx, dto.EventRemove, res)

	return res, nil
}

// notify tells open clock streams and kafka consumers about the change. Failures are only logged.
func (s *serviceImpl) notify(ctx context.Context, event string, colleague dto.ColleagueResponse) {
	if err := s.hub.Publish(ctx, broadcast.Event{Name: event, Index: colleague.Index}); err != nil {
		log.Warn().Err(err).Str("event", event).Msg("failed to broadcast roster change")
	}

	message := kafka.Message{
		Key: colleague.ID,
		Value: dto.RosterChangedEvent{
			Event:     event,
			Index:     colleague.Index,
			Colleague: colleague,
			At:        s.clock.Now(),
		},
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic, message); err != nil {
		log.Warn().Err(err).Str("event", event).Str("topic", s.cfg.Kafka.Topic).Msg("failed to publish roster change")
	}
}
