package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"worldclock/config"
	"worldclock/infras/otel"
	"worldclock/internal/domains/catalog/model"
	"worldclock/internal/domains/catalog/model/dto"
	"worldclock/internal/domains/catalog/repository"
	"worldclock/shared"
	"worldclock/shared/constant"
	gDto "worldclock/shared/dto"

	"github.com/rs/zerolog/log"
)

type Catalog interface {
	// Load reads the catalog once. A failed load leaves the catalog empty.
	Load(ctx context.Context)
	// Find returns the first location with the given abbreviation, ignoring case.
	Find(abbr string) (model.Location, bool)
	GetAll(ctx context.Context, params gDto.QueryParams, query string) (dto.GetLocationsResponse, error)
}

type serviceImpl struct {
	repo      repository.Locations
	cfg       *config.Config
	otel      otel.Otel
	locations atomic.Pointer[[]model.Location]
	once      sync.Once
}

func New(repo repository.Locations, cfg *config.Config, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Load(ctx context.Context) {
	s.once.Do(func() {
		ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoadCatalog")
		defer scope.End()

		locations, err := s.repo.Load(ctx)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to load timezone catalog, no location can be selected")

			locations = []model.Location{}
		}

		valid := make([]model.Location, 0, len(locations))
		seen := make(map[string]int, len(locations))

		for i, location := range locations {
			abbr := strings.ToUpper(strings.TrimSpace(location.Abbr))
			if abbr == "" {
				log.Warn().Int("position", i).Str("text", location.Text).Msg("timezone catalog entry without abbreviation skipped")

				continue
			}

			// Find selects by abbreviation, so only the first of a duplicate set can be picked.
			if first, ok := seen[abbr]; ok {
				log.Warn().
					Str("abbr", location.Abbr).
					Int("position", i).
					Int("first_position", first).
					Str("text", location.Text).
					Msg("duplicate abbreviation in timezone catalog, only the first entry can be selected")
			} else {
				seen[abbr] = i
			}

			valid = append(valid, location)
		}

		s.locations.Store(&valid)

		log.Info().Int("locations", len(valid)).Msg("timezone catalog loaded")
	})
}

func (s *serviceImpl) all() []model.Location {
	locations := s.locations.Load()
	if locations == nil {
		return nil
	}

	return *locations
}

func (s *serviceImpl) Find(abbr string) (model.Location, bool) {
	abbr = strings.TrimSpace(abbr)
	if abbr == "" {
		return model.Location{}, false
	}

	for _, location := range s.all() {
		if strings.EqualFold(location.Abbr, abbr) {
			return location, true
		}
	}

	return model.Location{}, false
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, query string) (res dto.GetLocationsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTimezones")
	defer scope.End()

	matched := []model.Location{}

	for _, location := range s.all() {
		if location.Matches(query) {
			matched = append(matched, location)
		}
	}

	res.FromModels(shared.Paginate(matched, params), len(matched), params.Limit)

	return res, nil
}
