package service_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"worldclock/config"
	otelMocks "worldclock/infras/otel/mocks"
	catalogMocks "worldclock/internal/domains/catalog/mocks"
	"worldclock/internal/domains/catalog/model"
	"worldclock/internal/domains/catalog/service"
	gDto "worldclock/shared/dto"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func locations() []model.Location {
	return []model.Location{
		{Text: "(UTC-05:00) Eastern Time (US & Canada)", Abbr: "EST", Offset: -5, Emoji: "🇺🇸", City: "New York", Country: "United States"},
		{Text: "(UTC+10:00) Canberra, Melbourne, Sydney", Abbr: "AEST", Offset: 10, Emoji: "🇦🇺", City: "Sydney", Country: "Australia"},
		{Text: "(UTC+05:30) Chennai, Kolkata, Mumbai, New Delhi", Abbr: "IST", Offset: 5.5, Emoji: "🇮🇳", City: "Mumbai", Country: "India"},
		{Text: "entry without abbreviation", Offset: 1},
	}
}

func newLoadedService(t *testing.T) service.Catalog {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := catalogMocks.NewMockLocations(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(locations(), nil)

	svc := service.New(repo, &config.Config{}, otelMocks.NewOtel())
	svc.Load(t.Context())

	return svc
}

func TestCatalogService_Find(t *testing.T) {
	svc := newLoadedService(t)

	location, ok := svc.Find("aest")
	require.True(t, ok)
	assert.Equal(t, "Sydney", location.City)
	assert.InDelta(t, 10.0, location.Offset, 1e-9)

	_, ok = svc.Find("PST")
	assert.False(t, ok)

	_, ok = svc.Find("  ")
	assert.False(t, ok)
}

func TestCatalogService_GetAll(t *testing.T) {
	svc := newLoadedService(t)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		query      string
		wantAbbrs  []string
		wantTotal  int
		wantPages  int
		wantLabels []string
	}{
		{
			name:       "all entries with abbreviation",
			params:     gDto.QueryParams{Page: 1, Limit: 50},
			wantAbbrs:  []string{"EST", "AEST", "IST"},
			wantTotal:  3,
			wantPages:  1,
			wantLabels: []string{"🇺🇸 New York, United States", "🇦🇺 Sydney, Australia", "🇮🇳 Mumbai, India"},
		},
		{
			name:      "filter by country",
			params:    gDto.QueryParams{Page: 1, Limit: 50},
			query:     "india",
			wantAbbrs: []string{"IST"},
			wantTotal: 1,
			wantPages: 1,
		},
		{
			name:      "second page",
			params:    gDto.QueryParams{Page: 2, Limit: 2},
			wantAbbrs: []string{"IST"},
			wantTotal: 3,
			wantPages: 2,
		},
		{
			name:      "no match",
			params:    gDto.QueryParams{Page: 1, Limit: 50},
			query:     "atlantis",
			wantAbbrs: []string{},
			wantTotal: 0,
			wantPages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.GetAll(t.Context(), tt.params, tt.query)
			require.NoError(t, err)

			abbrs := []string{}
			labels := []string{}

			for _, location := range res.Timezones {
				abbrs = append(abbrs, location.Abbr)
				labels = append(labels, location.Label)
			}

			assert.Equal(t, tt.wantAbbrs, abbrs)
			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Equal(t, tt.wantPages, res.TotalPage)

			if tt.wantLabels != nil {
				assert.Equal(t, tt.wantLabels, labels)
			}
		})
	}
}

func TestCatalogService_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := catalogMocks.NewMockLocations(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(nil, errors.New("no such file")).Times(1)

	svc := service.New(repo, &config.Config{}, otelMocks.NewOtel())
	svc.Load(t.Context())
	svc.Load(t.Context())

	res, err := svc.GetAll(t.Context(), gDto.QueryParams{Page: 1, Limit: 50}, "")
	require.NoError(t, err)
	assert.Empty(t, res.Timezones)
	assert.NotNil(t, res.Timezones)

	_, ok := svc.Find("EST")
	assert.False(t, ok)
}

func TestCatalogService_LoadWarnsOnDuplicateAbbreviation(t *testing.T) {
	var logs bytes.Buffer

	previous := log.Logger
	log.Logger = zerolog.New(&logs)

	t.Cleanup(func() { log.Logger = previous })

	ctrl := gomock.NewController(t)
	repo := catalogMocks.NewMockLocations(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return([]model.Location{
		{Text: "(UTC+01:00) Paris", Abbr: "CET", Offset: 1, City: "Paris", Country: "France"},
		{Text: "(UTC+01:00) Berlin", Abbr: " cet ", Offset: 1, City: "Berlin", Country: "Germany"},
		{Text: "(UTC+09:00) Tokyo", Abbr: "JST", Offset: 9, City: "Tokyo", Country: "Japan"},
	}, nil)

	svc := service.New(repo, &config.Config{}, otelMocks.NewOtel())
	svc.Load(t.Context())

	var warning struct {
		Level         string `json:"level"`
		Abbr          string `json:"abbr"`
		Position      int    `json:"position"`
		FirstPosition int    `json:"first_position"`
	}

	found := false

	for _, line := range bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n")) {
		require.NoError(t, json.Unmarshal(line, &warning))

		if warning.Level == zerolog.LevelWarnValue {
			found = true

			break
		}
	}

	require.True(t, found, "expected a duplicate abbreviation warning, got:\n%s", logs.String())
	assert.Equal(t, " cet ", warning.Abbr)
	assert.Equal(t, 1, warning.Position)
	assert.Equal(t, 0, warning.FirstPosition)

	res, err := svc.GetAll(t.Context(), gDto.QueryParams{Page: 1, Limit: 50}, "")
	require.NoError(t, err)
	assert.Len(t, res.Timezones, 3)

	location, ok := svc.Find("CET")
	require.True(t, ok)
	assert.Equal(t, "Paris", location.City)
}
