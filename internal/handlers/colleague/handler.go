package colleague

import (
	"net/http"
	"strconv"
	"worldclock/infras/otel"
	"worldclock/internal/domains/colleague/model/dto"
	"worldclock/internal/domains/colleague/service"
	"worldclock/shared/constant"
	"worldclock/shared/failure"
	"worldclock/shared/validator"
	"worldclock/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Colleague
	otel    otel.Otel
}

func New(service service.Colleague, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/colleagues", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetColleagues)
		routerGroup.Post("/", handler.AddColleague)
		routerGroup.Delete("/{index}", handler.RemoveColleague)
	})
}

// GetColleagues lists the roster in insertion order.
// @Summary List colleagues
// @Description Returns the colleague roster in insertion order. The index of each entry is its removal key.
// @Tags Colleague
// @Produce json
// @Success 200 {object} response.Data[dto.GetColleaguesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/colleagues [get]
func (handler *Handler) GetColleagues(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetColleagues")
	defer scope.End()

	colleagues, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get colleagues")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, colleagues)
}

// AddColleague appends a colleague to the roster.
// @Summary Add a colleague
// @Description Adds a colleague at a catalog location, identified by its abbreviation.
// @Tags Colleague
// @Accept json
// @Produce json
// @Param request body dto.AddColleagueRequest true "Add Colleague Request"
// @Success 201 {object} response.Data[dto.ColleagueResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/colleagues [post]
func (handler *Handler) AddColleague(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddColleague")
	defer scope.End()

	req := dto.AddColleagueRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	colleague, err := handler.service.Add(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add colleague")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Colleague added at index " + strconv.Itoa(colleague.Index))

	response.WithJSON(w, http.StatusCreated, colleague)
}

// RemoveColleague removes the colleague at an index.
// @Summary Remove a colleague
// @Description Removes the colleague at the given zero-based index.
// @Tags Colleague
// @Produce json
// @Param index path int true "Zero-based roster index"
// @Success 200 {object} response.Data[dto.ColleagueResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/colleagues/{index} [delete]
func (handler *Handler) RemoveColleague(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveColleague")
	defer scope.End()

	index, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamIndex))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("index must be an integer"))

		return
	}

	if err := validator.ValidateVar(index, "min=0"); err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("index must not be negative"))

		return
	}

	colleague, err := handler.service.Remove(ctx, index)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("index", index).Msg("failed to remove colleague")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Colleague removed at index " + strconv.Itoa(index))

	response.WithJSON(w, http.StatusOK, colleague)
}
