package converter

import (
	"net/http"
	"worldclock/infras/otel"
	"worldclock/internal/domains/converter/model/dto"
	"worldclock/internal/domains/converter/service"
	"worldclock/shared/constant"
	"worldclock/shared/validator"
	"worldclock/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Converter
	otel    otel.Otel
}

func New(service service.Converter, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/convert", handler.Convert)
}

// Convert expresses a time in two locations.
// @Summary Convert a time between two locations
// @Description Without "time" the current instant is converted. With "time" (HH:MM) the wall clock time in the source location is converted, on "date" (YYYY-MM-DD) or today.
// @Tags Converter
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Convert Request"
// @Success 200 {object} response.Data[dto.ConvertResponse]
// @Failure 400 {object} response.Error
// @Router /v1/convert [post]
func (handler *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Convert")
	defer scope.End()

	req := dto.ConvertRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Convert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert time")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}
