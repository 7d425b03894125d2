package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"worldclock/config"
	"worldclock/infras/otel"
	"worldclock/internal/domains/dst/model"
	"worldclock/internal/domains/dst/model/dto"
	"worldclock/internal/domains/dst/repository"
	"worldclock/internal/domains/dst/resolver"
	"worldclock/shared/constant"
	"worldclock/shared/failure"
	"worldclock/shared/timezone"

	"github.com/rs/zerolog/log"
)

type DST interface {
	// Load reads the rule table once. Later calls are no-ops.
	Load(ctx context.Context)
	// Table returns the loaded table, or nil while loading or after a failed load.
	Table() *model.RuleTable
	Rules(ctx context.Context) (dto.RulesResponse, error)
	Status(ctx context.Context, req dto.StatusRequest) (dto.StatusResponse, error)
}

type serviceImpl struct {
	repo  repository.Rules
	cfg   *config.Config
	clock timezone.Clock
	otel  otel.Otel
	table atomic.Pointer[model.RuleTable]
	once  sync.Once
}

func New(repo repository.Rules, cfg *config.Config, clock timezone.Clock, otel otel.Otel) DST {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		clock: clock,
		otel:  otel,
	}
}

func (s *serviceImpl) Load(ctx context.Context) {
	s.once.Do(func() {
		ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoadRules")
		defer scope.End()

		table, err := s.repo.Load(ctx)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to load dst rules, dst is treated as inactive everywhere")

			return
		}

		for _, problem := range table.Validate() {
			log.Warn().Str("problem", problem).Msg("dst rule table is inconsistent")
		}

		s.table.Store(table)

		log.Info().
			Int("timezones", len(table.TimezoneToRegion)).
			Int("regions", len(table.Regions)).
			Msg("dst rules loaded")
	})
}

func (s *serviceImpl) Table() *model.RuleTable {
	return s.table.Load()
}

func (s *serviceImpl) Rules(ctx context.Context) (res dto.RulesResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rules")
	defer scope.End()

	table := s.Table()
	if table == nil {
		return res, failure.ResourceNotLoaded
	}

	res.FromModel(table)

	return res, nil
}

func (s *serviceImpl) Status(ctx context.Context, req dto.StatusRequest) (res dto.StatusResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Status")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	timezoneID := strings.TrimSpace(req.Timezone)

	ref := s.clock.Now()

	if req.Date != "" {
		day, err := timezone.ParseDay(req.Date)
		if err != nil {
			return res, failure.BadRequest(err) //nolint:wrapcheck
		}

		ref = time.Date(day.Year(), day.Month(), day.Day(), ref.Hour(), ref.Minute(), ref.Second(), 0, day.Location())
	}

	table := s.Table()
	region, _, _ := table.Lookup(timezoneID)

	res.FromResolved(
		timezoneID,
		region,
		resolver.IsDSTActive(table, timezoneID, ref),
		req.Offset,
		resolver.EffectiveOffset(table, req.Offset, timezoneID, ref),
		resolver.TimeInTimezone(table, req.Offset, timezoneID, ref),
	)

	return res, nil
}
