package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"worldclock/config"
	"worldclock/infras/otel"
	"worldclock/infras/postgres"
	"worldclock/internal/domains/colleague/model"
	"worldclock/shared/cache"
	"worldclock/shared/constant"

	"github.com/rs/zerolog/log"
)

var ErrIndexOutOfRange = errors.New("colleague index out of range")

// Roster is the ordered colleague list. Append and RemoveAt are atomic across every process sharing the store.
type Roster interface {
	List(ctx context.Context) ([]model.Colleague, error)
	// Append adds colleague at the end and returns its index.
	Append(ctx context.Context, colleague model.Colleague) (int, error)
	// RemoveAt deletes the colleague at index and returns it.
	RemoveAt(ctx context.Context, index int) (model.Colleague, error)
}

// New picks the store named by ROSTER_STORE.
func New(cfg *config.Config, db *postgres.Connection, cache cache.RedisCache, otel otel.Otel) Roster {
	if cfg.Roster.Store == constant.RosterStorePostgres {
		log.Info().Msg("Colleague roster stored in postgres")

		return NewPostgres(db, otel)
	}

	log.Info().Str("key", cfg.Roster.Key).Msg("Colleague roster stored in redis")

	return NewRedis(cfg, cache, otel)
}
