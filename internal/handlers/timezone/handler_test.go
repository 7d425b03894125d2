package timezone_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"worldclock/infras/otel/mocks"
	catalogMocks "worldclock/internal/domains/catalog/mocks"
	"worldclock/internal/domains/catalog/model/dto"
	"worldclock/internal/handlers/timezone"
	gDto "worldclock/shared/dto"
	"worldclock/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetTimezones(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		params gDto.QueryParams
		search string
	}{
		{
			name:   "defaults",
			query:  "",
			params: gDto.QueryParams{Page: 1, Limit: 50},
		},
		{
			name:   "search and page",
			query:  "?q=syd&page=2&limit=5",
			params: gDto.QueryParams{Page: 2, Limit: 5},
			search: "syd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := catalogMocks.NewMockCatalog(ctrl)

			service.EXPECT().GetAll(gomock.Any(), tt.params, tt.search).Return(dto.GetLocationsResponse{
				Timezones: []dto.LocationResponse{{Abbr: "AEST", City: "Sydney", Country: "Australia", Label: "🇦🇺 Sydney, Australia"}},
				TotalPage: 1,
				TotalData: 1,
			}, nil)

			handler := timezone.New(service, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/timezones"+tt.query, nil))

			assert.Equal(t, http.StatusOK, rec.Code)

			body := response.Data[dto.GetLocationsResponse]{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "🇦🇺 Sydney, Australia", body.Data.Timezones[0].Label)
		})
	}
}
