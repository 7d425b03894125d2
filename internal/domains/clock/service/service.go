package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"worldclock/infras/otel"
	"worldclock/internal/domains/clock/model/dto"
	colleagueService "worldclock/internal/domains/colleague/service"
	"worldclock/internal/domains/dst/resolver"
	dstService "worldclock/internal/domains/dst/service"
	"worldclock/shared/constant"
	"worldclock/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Clock interface {
	// Now is the reference instant of the next render.
	Now() time.Time
	// Render computes the board for now. It has no side effects.
	Render(ctx context.Context, now time.Time) (dto.BoardResponse, error)
}

type serviceImpl struct {
	colleagues colleagueService.Colleague
	dst        dstService.DST
	clock      timezone.Clock
	otel       otel.Otel
}

func New(colleagues colleagueService.Colleague, dst dstService.DST, clock timezone.Clock, otel otel.Otel) Clock {
	return &serviceImpl{
		colleagues: colleagues,
		dst:        dst,
		clock:      clock,
		otel:       otel,
	}
}

func (s *serviceImpl) Now() time.Time {
	return s.clock.Now()
}

func (s *serviceImpl) Render(ctx context.Context, now time.Time) (res dto.BoardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Render")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roster, err := s.colleagues.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to render clock board")

		return res, fmt.Errorf("failed to render clock board: %w", err)
	}

	table := s.dst.Table()

	res.SetLocal(timezone.ToAppTime(now))
	res.Colleagues = make([]dto.CardResponse, len(roster.Colleagues))

	for i, colleague := range roster.Colleagues {
		res.Colleagues[i] = dto.CardResponse{
			Index:     colleague.Index,
			Name:      colleague.Name,
			Time:      resolver.TimeInTimezone(table, colleague.Offset, colleague.Timezone, now).Format(constant.DisplayFormat),
			Location:  colleague.Location,
			Timezone:  colleague.Timezone,
			DSTActive: resolver.IsDSTActive(table, colleague.Timezone, now),
			Offset:    resolver.EffectiveOffset(table, colleague.Offset, colleague.Timezone, now),
		}
	}

	return res, nil
}
