package repository

import (
	"context"
	"fmt"
	"worldclock/infras/otel"
	"worldclock/infras/postgres"
	"worldclock/internal/domains/colleague/model"
	"worldclock/shared"
	gDto "worldclock/shared/dto"
	gRepo "worldclock/shared/repository"
)

// rosterLockKey is the pg_advisory_xact_lock key taken by every roster write.
const rosterLockKey int64 = 0x726f73746572

type table interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Colleague, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Insert(ctx context.Context, colleague model.Colleague) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type lockedTable interface {
	table
	// Locked runs fn in one transaction holding the roster lock.
	Locked(ctx context.Context, fn func(tx table) error) error
}

type colleagueTable struct {
	gRepo.Repository[model.Colleague]
}

func (t *colleagueTable) Locked(ctx context.Context, fn func(tx table) error) error {
	return t.Transaction(ctx, rosterLockKey, func(tx *gRepo.Repository[model.Colleague]) error { //nolint:wrapcheck
		return fn(tx)
	})
}

type postgresRoster struct {
	table lockedTable
}

// NewPostgres stores one row per colleague, ordered by position.
func NewPostgres(db *postgres.Connection, otel otel.Otel) Roster {
	return newPostgresRoster(&colleagueTable{
		Repository: gRepo.NewRepository[model.Colleague](model.EntityName, model.TableName, model.FieldID, db, otel),
	})
}

func newPostgresRoster(table lockedTable) *postgresRoster {
	return &postgresRoster{table: table}
}

func (r *postgresRoster) List(ctx context.Context) ([]model.Colleague, error) {
	colleagues, err := r.table.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldPosition, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		return nil, fmt.Errorf("failed to list colleagues: %w", err)
	}

	if colleagues == nil {
		colleagues = []model.Colleague{}
	}

	return colleagues, nil
}

func (r *postgresRoster) Append(ctx context.Context, colleague model.Colleague) (int, error) {
	var index int

	err := r.table.Locked(ctx, func(tx table) error {
		count, err := tx.Count(ctx, gDto.FilterGroup{})
		if err != nil {
			return fmt.Errorf("failed to count colleagues: %w", err)
		}

		colleague.Position = 0

		if count > 0 {
			last, err := tx.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldPosition, SortDir: gDto.SortDirDesc, Limit: 1}, gDto.FilterGroup{})
			if err != nil {
				return fmt.Errorf("failed to read last position: %w", err)
			}

			if len(last) > 0 {
				colleague.Position = last[0].Position + 1
			}
		}

		if err := tx.Insert(ctx, colleague); err != nil {
			return fmt.Errorf("failed to insert colleague: %w", err)
		}

		index = count

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to append colleague: %w", err)
	}

	return index, nil
}

func (r *postgresRoster) RemoveAt(ctx context.Context, index int) (model.Colleague, error) {
	if index < 0 {
		return model.Colleague{}, ErrIndexOutOfRange
	}

	var removed model.Colleague

	err := r.table.Locked(ctx, func(tx table) error {
		// Page is 1-based, so page index+1 of size 1 is the row at index.
		rows, err := tx.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldPosition, SortDir: gDto.SortDirAsc, Page: index + 1, Limit: 1}, gDto.FilterGroup{})
		if err != nil {
			return fmt.Errorf("failed to read colleague: %w", err)
		}

		if len(rows) == 0 {
			return ErrIndexOutOfRange
		}

		removed = rows[0]

		if err := tx.Delete(ctx, shared.FilterByID(removed.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to delete colleague: %w", err)
		}

		return nil
	})
	if err != nil {
		return model.Colleague{}, fmt.Errorf("failed to remove colleague: %w", err)
	}

	return removed, nil
}
