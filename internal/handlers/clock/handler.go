package clock

import (
	"net/http"
	"time"
	"worldclock/config"
	"worldclock/infras/otel"
	"worldclock/internal/domains/clock/service"
	"worldclock/shared/broadcast"
	"worldclock/shared/constant"
	"worldclock/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	defaultTick  = time.Second
	writeTimeout = 5 * time.Second
	readLimit    = 512
)

type Handler struct {
	service  service.Clock
	hub      broadcast.Hub
	cfg      *config.Config
	otel     otel.Otel
	upgrader websocket.Upgrader
}

func New(service service.Clock, hub broadcast.Hub, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		hub:     hub,
		cfg:     cfg,
		otel:    otel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(cfg),
		},
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clock", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetClock)
		routerGroup.Get("/stream", handler.Stream)
	})
}

// GetClock renders the board once.
// @Summary Render the clock board
// @Description Local time plus the current time, DST state and effective offset of every colleague.
// @Tags Clock
// @Produce json
// @Success 200 {object} response.Data[dto.BoardResponse]
// @Failure 500 {object} response.Error
// @Router /v1/clock [get]
func (handler *Handler) GetClock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClock")
	defer scope.End()

	board, err := handler.service.Render(ctx, handler.service.Now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render clock")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, board)
}

// Stream pushes the board over a websocket.
// @Summary Stream the clock board
// @Description Upgrades to a websocket. A "tick" message is pushed every CLOCK_TICK_SECONDS, "add" and "remove" follow roster changes. Send {"event":"mode","mode":"custom"} to pause ticking and {"event":"mode","mode":"current"} to resume.
// @Tags Clock
// @Success 101
// @Router /v1/clock/stream [get]
func (handler *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := handler.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("failed to upgrade clock stream")

		return
	}

	interval := time.Duration(handler.cfg.Clock.TickSeconds) * time.Second
	if interval <= 0 {
		interval = defaultTick
	}

	newStream(conn, handler.service, handler.hub, handler.otel, interval).run(r.Context())
}

// checkOrigin follows the CORS allow list; without CORS every origin may connect.
func checkOrigin(cfg *config.Config) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || !cfg.App.CORS.Enable {
			return true
		}

		for _, allowed := range cfg.App.CORS.AllowedOrigins {
			if allowed == constant.Asterix || allowed == origin {
				return true
			}
		}

		return false
	}
}
