package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"
	"worldclock/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	Nil                   = redis.Nil

	maxUpdateAttempts = 10
)

// ErrConflict is returned when key kept changing for every Update attempt.
var ErrConflict = errors.New("cache value changed concurrently")

// RedisCache stores JSON encoded values. A duration of 0 keeps the value without expiry.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	// Update decodes key into value, runs modify and writes value back in one MULTI under WATCH.
	// value is reset to its zero value before each attempt; found reports whether key existed.
	// An error from modify aborts the write and is returned unchanged.
	Update(ctx context.Context, key string, value any, duration int, modify func(found bool) error) (err error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Get implements RedisCache.
func (cache *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cacheValue, err := cache.client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to get cache value: %w", err)
	}

	switch v := value.(type) {
	case *string:
		*v = cacheValue
	case *[]byte:
		*v = []byte(cacheValue)
	default:
		if err = json.Unmarshal([]byte(cacheValue), value); err != nil {
			log.Error().Err(err).Str("RedisCache", "Get").Msg("failed to unmarshal cache")

			return fmt.Errorf("failed to unmarshal cache value: %w", err)
		}
	}

	return nil
}

// Save implements RedisCache.
func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var strValue []byte
	switch v := value.(type) {
	case string:
		strValue = []byte(v)
	case []byte:
		strValue = v
	default:
		strValue, err = json.Marshal(v)

		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("key", key).Str("RedisCache", "Save").Msg("failed to marshal cache")

			return fmt.Errorf("failed to marshal cache value: %w", err)
		}
	}

	err = cache.client.Set(ctx, key, strValue, time.Second*time.Duration(duration)).Err()

	if err != nil {
		scope.TraceError(err)

		log.Error().Err(err).Str("key", key).Str("RedisCache", "Save").Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("RedisCache", "Save").Str("key", key).Msg("success to set cache")

	return nil
}

// Update implements RedisCache.
func (cache *redisCache) Update(ctx context.Context, key string, value any, duration int, modify func(found bool) error) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var modifyErr error

	apply := func(tx *redis.Tx) error {
		reflect.ValueOf(value).Elem().SetZero()

		current, getErr := tx.Get(ctx, key).Bytes()
		found := getErr == nil

		if getErr != nil && !errors.Is(getErr, redis.Nil) {
			return fmt.Errorf("failed to get cache value: %w", getErr)
		}

		if found {
			if decodeErr := json.Unmarshal(current, value); decodeErr != nil {
				return fmt.Errorf("failed to unmarshal cache value: %w", decodeErr)
			}
		}

		if modifyErr = modify(found); modifyErr != nil {
			return modifyErr
		}

		encoded, encodeErr := json.Marshal(value)
		if encodeErr != nil {
			return fmt.Errorf("failed to marshal cache value: %w", encodeErr)
		}

		_, execErr := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, time.Second*time.Duration(duration))

			return nil
		})

		return execErr //nolint:wrapcheck
	}

	for attempt := range maxUpdateAttempts {
		modifyErr = nil

		err = cache.client.Watch(ctx, apply, key)
		if errors.Is(err, redis.TxFailedErr) {
			log.Debug().Str("RedisCache", "Update").Str("key", key).Int("attempt", attempt+1).Msg("cache value changed, retrying")

			continue
		}

		if modifyErr != nil {
			return modifyErr
		}

		if err != nil {
			log.Error().Err(err).Str("key", key).Str("RedisCache", "Update").Msg("failed to update cache")

			return fmt.Errorf("failed to update cache value: %w", err)
		}

		return nil
	}

	log.Error().Str("key", key).Int("attempts", maxUpdateAttempts).Str("RedisCache", "Update").Msg("gave up updating cache")

	return ErrConflict
}
