package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"worldclock/config"
	"worldclock/infras/otel"
	"worldclock/internal/domains/colleague/model"
	"worldclock/shared/cache"
	"worldclock/shared/constant"
)

const persistForever = 0

type redisRoster struct {
	key   string
	cache cache.RedisCache
	otel  otel.Otel
}

// NewRedis keeps the whole roster as one JSON list under ROSTER_KEY.
func NewRedis(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Roster {
	key := cfg.Roster.Key
	if key == "" {
		key = model.TableName
	}

	return &redisRoster{
		key:   key,
		cache: cache,
		otel:  otel,
	}
}

func (r *redisRoster) List(ctx context.Context) ([]model.Colleague, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".List")
	defer scope.End()

	colleagues := []model.Colleague{}

	err := r.cache.Get(ctx, r.key, &colleagues)
	if errors.Is(err, cache.Nil) {
		return []model.Colleague{}, nil
	}

	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	return colleagues, nil
}

// Append and RemoveAt rewrite the list inside one WATCH transaction on the key.
func (r *redisRoster) Append(ctx context.Context, colleague model.Colleague) (index int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Append")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var colleagues []model.Colleague

	err = r.cache.Update(ctx, r.key, &colleagues, persistForever, func(bool) error {
		index = len(colleagues)
		colleague.Position = int64(index)
		colleagues = append(colleagues, colleague)

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to write roster: %w", err)
	}

	return index, nil
}

func (r *redisRoster) RemoveAt(ctx context.Context, index int) (removed model.Colleague, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".RemoveAt")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var colleagues []model.Colleague

	err = r.cache.Update(ctx, r.key, &colleagues, persistForever, func(bool) error {
		if index < 0 || index >= len(colleagues) {
			return ErrIndexOutOfRange
		}

		removed = colleagues[index]
		colleagues = slices.Delete(colleagues, index, index+1)

		return nil
	})
	if errors.Is(err, ErrIndexOutOfRange) {
		return model.Colleague{}, ErrIndexOutOfRange
	}

	if err != nil {
		return model.Colleague{}, fmt.Errorf("failed to write roster: %w", err)
	}

	return removed, nil
}
