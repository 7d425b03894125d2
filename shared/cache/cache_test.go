package cache_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"
	otelMocks "worldclock/infras/otel/mocks"
	"worldclock/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*miniredis.Miniredis, *redis.Client, cache.RedisCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return server, client, cache.NewRedisCache(client, otelMocks.NewOtel())
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	server, _, store := newCache(t)

	require.NoError(t, store.Save(t.Context(), "names", []string{"Alice", "Bob"}, 60))
	assert.Equal(t, 60*time.Second, server.TTL("names"))

	var names []string
	require.NoError(t, store.Get(t.Context(), "names", &names))
	assert.Equal(t, []string{"Alice", "Bob"}, names)

	require.NoError(t, store.Save(t.Context(), "raw", "plain", 0))
	assert.Zero(t, server.TTL("raw"))

	var raw string
	require.NoError(t, store.Get(t.Context(), "raw", &raw))
	assert.Equal(t, "plain", raw)

	err := store.Get(t.Context(), "missing", &raw)
	assert.ErrorIs(t, err, cache.Nil)
}

func TestRedisCache_Update(t *testing.T) {
	server, _, store := newCache(t)

	var names []string

	err := store.Update(t.Context(), "names", &names, 0, func(found bool) error {
		assert.False(t, found)
		assert.Empty(t, names)

		names = append(names, "Alice")

		return nil
	})
	require.NoError(t, err)

	err = store.Update(t.Context(), "names", &names, 0, func(found bool) error {
		assert.True(t, found)

		names = append(names, "Bob")

		return nil
	})
	require.NoError(t, err)

	stored, err := server.Get("names")
	require.NoError(t, err)
	assert.JSONEq(t, `["Alice","Bob"]`, stored)
	assert.Zero(t, server.TTL("names"))
}

func TestRedisCache_UpdateAbortsOnModifyError(t *testing.T) {
	server, _, store := newCache(t)

	require.NoError(t, store.Save(t.Context(), "names", []string{"Alice"}, 0))

	errStop := errors.New("stop")

	var names []string

	err := store.Update(t.Context(), "names", &names, 0, func(bool) error {
		names = append(names, "Bob")

		return errStop
	})
	require.ErrorIs(t, err, errStop)

	stored, err := server.Get("names")
	require.NoError(t, err)
	assert.JSONEq(t, `["Alice"]`, stored)
}

func TestRedisCache_UpdateRetriesAfterConcurrentWrite(t *testing.T) {
	_, client, store := newCache(t)

	require.NoError(t, store.Save(t.Context(), "names", []string{"Alice"}, 0))

	var (
		names    []string
		attempts int
	)

	err := store.Update(t.Context(), "names", &names, 0, func(bool) error {
		attempts++

		if attempts == 1 {
			require.NoError(t, client.Set(context.Background(), "names", `["Alice","Carol"]`, 0).Err())
		}

		names = append(names, "Bob")

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)

	var stored []string
	require.NoError(t, store.Get(t.Context(), "names", &stored))
	assert.Equal(t, []string{"Alice", "Carol", "Bob"}, stored)
}

func TestRedisCache_UpdateGivesUp(t *testing.T) {
	_, client, store := newCache(t)

	var (
		names    []string
		attempts int
	)

	err := store.Update(t.Context(), "names", &names, 0, func(bool) error {
		attempts++

		return client.Set(context.Background(), "names", `["v`+strconv.Itoa(attempts)+`"]`, 0).Err()
	})
	require.ErrorIs(t, err, cache.ErrConflict)
	assert.Equal(t, 10, attempts)
}

func TestRedisCache_UnavailableServer(t *testing.T) {
	server, _, store := newCache(t)
	server.Close()

	var names []string

	err := store.Update(t.Context(), "names", &names, 0, func(bool) error { return nil })
	assert.Error(t, err)
	assert.NotErrorIs(t, err, cache.ErrConflict)
}
