// Package broadcast fans roster events out to every open clock stream.
package broadcast

import (
	"context"
	"encoding/json"
	"sync"
	"worldclock/config"
	"worldclock/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const subscriberBuffer = 8

type Event struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

type Hub interface {
	Publish(ctx context.Context, event Event) error
	// Subscribe returns a stream of events and a function that ends the subscription.
	Subscribe(ctx context.Context) (<-chan Event, func())
}

// New returns a hub backed by redis pub/sub, or an in-process hub when CLOCK_BROADCAST is local.
func New(cfg *config.Config, client *goRedis.Client) Hub {
	if cfg.Clock.Broadcast == constant.BroadcastLocal || client == nil {
		return NewLocal()
	}

	return &redisHub{client: client, channel: cfg.Clock.Channel}
}

type localHub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

func NewLocal() Hub {
	return &localHub{subscribers: map[chan Event]struct{}{}}
}

// Publish never blocks: subscribers that fall behind miss the event.
func (h *localHub) Publish(_ context.Context, event Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			log.Warn().Str("event", event.Name).Msg("clock subscriber is lagging, event dropped")
		}
	}

	return nil
}

func (h *localHub) Subscribe(_ context.Context) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, ch)
			h.mu.Unlock()

			close(ch)
		})
	}
}

type redisHub struct {
	client  *goRedis.Client
	channel string
}

func (h *redisHub) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return h.client.Publish(ctx, h.channel, payload).Err() //nolint:wrapcheck
}

func (h *redisHub) Subscribe(ctx context.Context) (<-chan Event, func()) {
	ctx, cancel := context.WithCancel(ctx)

	pubsub := h.client.Subscribe(ctx, h.channel)
	messages := pubsub.Channel()
	events := make(chan Event, subscriberBuffer)

	go func() {
		defer close(events)
		defer func() {
			if err := pubsub.Close(); err != nil {
				log.Error().Err(err).Str("channel", h.channel).Msg("failed to close redis subscription")
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				event := Event{}
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Error().Err(err).Str("channel", h.channel).Msg("failed to decode roster event")

					continue
				}

				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, cancel
}
