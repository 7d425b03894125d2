package clock

import (
	"context"
	"encoding/json"
	"time"
	"worldclock/infras/otel"
	"worldclock/internal/domains/clock/model/dto"
	"worldclock/internal/domains/clock/service"
	"worldclock/shared/broadcast"
	"worldclock/shared/constant"
	"worldclock/shared/validator"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// stream owns one websocket connection. Only run writes to the connection and only
// readModes reads from it.
type stream struct {
	conn     *websocket.Conn
	service  service.Clock
	hub      broadcast.Hub
	otel     otel.Otel
	interval time.Duration
	mode     string
	logger   zerolog.Logger
}

func newStream(conn *websocket.Conn, service service.Clock, hub broadcast.Hub, otel otel.Otel, interval time.Duration) *stream {
	return &stream{
		conn:     conn,
		service:  service,
		hub:      hub,
		otel:     otel,
		interval: interval,
		mode:     dto.ModeCurrent,
		logger:   log.With().Str("remote", conn.RemoteAddr().String()).Logger(),
	}
}

func (s *stream) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.conn.Close()

	events, unsubscribe := s.hub.Subscribe(ctx)
	defer unsubscribe()

	modes := make(chan string)
	go s.readModes(ctx, cancel, modes)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	ticks := ticker.C

	s.logger.Debug().Dur("interval", s.interval).Msg("clock stream opened")

	if !s.push(ctx, dto.EventTick, nil) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug().Msg("clock stream closed")

			return
		case <-ticks:
			if !s.push(ctx, dto.EventTick, nil) {
				return
			}
		case mode := <-modes:
			s.mode = mode

			if mode == dto.ModeCustom {
				ticker.Stop()
				ticks = nil
			} else {
				ticker.Reset(s.interval)
				ticks = ticker.C
			}

			if !s.push(ctx, dto.EventMode, nil) {
				return
			}
		case event, ok := <-events:
			if !ok {
				events = nil

				continue
			}

			index := event.Index
			if !s.push(ctx, event.Name, &index) {
				return
			}
		}
	}
}

// push renders and writes one message. It reports false once the connection is unusable.
func (s *stream) push(ctx context.Context, event string, index *int) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Clock."+event)
	defer scope.End()

	message := dto.StreamMessage{Event: event, Mode: s.mode, Index: index}

	board, err := s.service.Render(ctx, s.service.Now())
	if err != nil {
		scope.TraceError(err)
		s.logger.Error().Err(err).Str("event", event).Msg("failed to render clock stream")
	} else {
		message.Board = &board
	}

	if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return false
	}

	if err := s.conn.WriteJSON(message); err != nil {
		s.logger.Debug().Err(err).Msg("clock stream write failed")

		return false
	}

	return true
}

// readModes forwards valid mode switches and cancels the stream when the client goes away.
func (s *stream) readModes(ctx context.Context, cancel context.CancelFunc, modes chan<- string) {
	defer cancel()

	s.conn.SetReadLimit(readLimit)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn().Err(err).Msg("clock stream closed unexpectedly")
			}

			return
		}

		message := dto.ClientMessage{}

		if err := json.Unmarshal(data, &message); err != nil {
			s.logger.Debug().Err(err).Msg("ignoring malformed clock stream message")

			continue
		}

		if err := validator.ValidateStruct(&message); err != nil {
			s.logger.Debug().Err(err).Msg("ignoring invalid clock stream message")

			continue
		}

		select {
		case modes <- message.Mode:
		case <-ctx.Done():
			return
		}
	}
}
