package timezone

import (
	"net/http"
	"worldclock/infras/otel"
	"worldclock/internal/domains/catalog/service"
	"worldclock/shared/constant"
	gDto "worldclock/shared/dto"
	"worldclock/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/timezones", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTimezones)
	})
}

// GetTimezones lists the selectable locations.
// @Summary List timezone locations
// @Description Lists the timezone catalog with display labels. Empty while the catalog is unavailable.
// @Tags Timezone
// @Produce json
// @Param q query string false "Substring of text, abbreviation, city or country"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Data[dto.GetLocationsResponse]
// @Router /v1/timezones [get]
func (handler *Handler) GetTimezones(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimezones")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	timezones, err := handler.service.GetAll(ctx, queryParams, r.URL.Query().Get(constant.RequestParamQuery))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get timezones")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, timezones)
}
