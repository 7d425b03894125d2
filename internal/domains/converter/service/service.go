package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"worldclock/infras/otel"
	catalogModel "worldclock/internal/domains/catalog/model"
	catalogService "worldclock/internal/domains/catalog/service"
	"worldclock/internal/domains/converter/model/dto"
	dstModel "worldclock/internal/domains/dst/model"
	"worldclock/internal/domains/dst/resolver"
	dstService "worldclock/internal/domains/dst/service"
	"worldclock/shared/constant"
	"worldclock/shared/failure"
	"worldclock/shared/timezone"
)

const hoursPerDay = 24

type Converter interface {
	Convert(ctx context.Context, req dto.ConvertRequest) (dto.ConvertResponse, error)
}

type serviceImpl struct {
	catalog catalogService.Catalog
	dst     dstService.DST
	clock   timezone.Clock
	otel    otel.Otel
}

func New(catalog catalogService.Catalog, dst dstService.DST, clock timezone.Clock, otel otel.Otel) Converter {
	return &serviceImpl{
		catalog: catalog,
		dst:     dst,
		clock:   clock,
		otel:    otel,
	}
}

// Convert expresses one instant in both locations. Without a custom time the instant is now;
// with one it is that wall clock time in the source location on the given date (default today).
func (s *serviceImpl) Convert(ctx context.Context, req dto.ConvertRequest) (res dto.ConvertResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	from, ok := s.catalog.Find(req.From)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown source location %q", req.From)) //nolint:wrapcheck
	}

	to, ok := s.catalog.Find(req.To)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown target location %q", req.To)) //nolint:wrapcheck
	}

	table := s.dst.Table()

	instant, err := s.instant(table, req, from)
	if err != nil {
		return res, err
	}

	fromOffset := resolver.EffectiveOffset(table, from.Offset, from.Abbr, instant)
	toOffset := resolver.EffectiveOffset(table, to.Offset, to.Abbr, instant)
	fromTime := resolver.TimeInTimezone(table, from.Offset, from.Abbr, instant)
	toTime := resolver.TimeInTimezone(table, to.Offset, to.Abbr, instant)

	res.Mode = req.Mode()
	res.From.FromLocation(from, fromOffset, resolver.IsDSTActive(table, from.Abbr, instant), fromTime)
	res.To.FromLocation(to, toOffset, resolver.IsDSTActive(table, to.Abbr, instant), toTime)
	res.DifferenceHours = toOffset - fromOffset
	res.DayShift = dayShift(fromTime, toTime)

	return res, nil
}

func (s *serviceImpl) instant(table *dstModel.RuleTable, req dto.ConvertRequest, from catalogModel.Location) (time.Time, error) {
	now := s.clock.Now()

	if req.Mode() == dto.ModeCurrent {
		return now, nil
	}

	day := timezone.ToAppTime(now)

	if req.Date != "" {
		parsed, err := timezone.ParseDay(req.Date)
		if err != nil {
			return time.Time{}, failure.BadRequest(err) //nolint:wrapcheck
		}

		day = parsed
	}

	// the rule month is taken from the requested day, before the wall clock is placed in the source zone
	offset := resolver.EffectiveOffset(table, from.Offset, from.Abbr, day)

	instant, err := timezone.ParseClock(day, req.Time, resolver.Zone(from.Abbr, offset))
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("please enter a valid time in HH:MM format") //nolint:wrapcheck
	}

	return instant, nil
}

// dayShift is the calendar day difference between the two wall clocks (-1, 0 or +1).
func dayShift(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	return int(toDay.Sub(fromDay).Hours() / hoursPerDay)
}
