package broadcast_test

import (
	"testing"
	"time"
	"worldclock/config"
	"worldclock/shared/broadcast"
	"worldclock/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, events <-chan broadcast.Event) broadcast.Event {
	t.Helper()

	select {
	case event, ok := <-events:
		require.True(t, ok, "subscription closed")

		return event
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}

	return broadcast.Event{}
}

func TestLocalHub_FanOut(t *testing.T) {
	hub := broadcast.NewLocal()

	first, stopFirst := hub.Subscribe(t.Context())
	defer stopFirst()

	second, stopSecond := hub.Subscribe(t.Context())
	defer stopSecond()

	require.NoError(t, hub.Publish(t.Context(), broadcast.Event{Name: "add", Index: 2}))

	assert.Equal(t, broadcast.Event{Name: "add", Index: 2}, receive(t, first))
	assert.Equal(t, broadcast.Event{Name: "add", Index: 2}, receive(t, second))
}

func TestLocalHub_Unsubscribe(t *testing.T) {
	hub := broadcast.NewLocal()

	events, stop := hub.Subscribe(t.Context())
	stop()
	stop()

	_, ok := <-events
	assert.False(t, ok)

	assert.NoError(t, hub.Publish(t.Context(), broadcast.Event{Name: "remove"}))
}

func TestLocalHub_DropsForLaggingSubscriber(t *testing.T) {
	hub := broadcast.NewLocal()

	events, stop := hub.Subscribe(t.Context())
	defer stop()

	for i := range 20 {
		require.NoError(t, hub.Publish(t.Context(), broadcast.Event{Name: "add", Index: i}))
	}

	assert.Equal(t, 0, receive(t, events).Index)
}

func TestNew_Local(t *testing.T) {
	cfg := &config.Config{}
	cfg.Clock.Broadcast = constant.BroadcastLocal

	hub := broadcast.New(cfg, nil)

	events, stop := hub.Subscribe(t.Context())
	defer stop()

	require.NoError(t, hub.Publish(t.Context(), broadcast.Event{Name: "remove", Index: 0}))
	assert.Equal(t, "remove", receive(t, events).Name)
}
