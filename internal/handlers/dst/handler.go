package dst

import (
	"net/http"
	"worldclock/infras/otel"
	"worldclock/internal/domains/dst/model/dto"
	"worldclock/internal/domains/dst/service"
	"worldclock/shared/constant"
	"worldclock/shared/validator"
	"worldclock/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.DST
	otel    otel.Otel
}

func New(service service.DST, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dst", func(routerGroup chi.Router) {
		routerGroup.Get("/rules", handler.GetRules)
		routerGroup.Get("/status", handler.GetStatus)
	})
}

// GetRules returns the loaded DST rule table.
// @Summary Get the DST rule table
// @Description Returns the rule table with validation warnings. Responds 503 until the table is loaded.
// @Tags DST
// @Produce json
// @Success 200 {object} response.Data[dto.RulesResponse]
// @Failure 503 {object} response.Error
// @Router /v1/dst/rules [get]
func (handler *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRules")
	defer scope.End()

	rules, err := handler.service.Rules(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("dst rules requested before they were loaded")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rules)
}

// GetStatus resolves DST for a timezone on a date.
// @Summary Resolve DST for a timezone
// @Description Reports whether DST is active and the effective offset. Unknown timezones resolve to inactive.
// @Tags DST
// @Produce json
// @Param timezone query string true "Timezone abbreviation, e.g. AEST"
// @Param date query string false "Reference date (YYYY-MM-DD), default today"
// @Param offset query number false "Base UTC offset in hours"
// @Success 200 {object} response.Data[dto.StatusResponse]
// @Failure 400 {object} response.Error
// @Router /v1/dst/status [get]
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatus")
	defer scope.End()

	req := dto.StatusRequest{}

	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate dst status query")

		response.WithError(w, err)

		return
	}

	status, err := handler.service.Status(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve dst status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}
