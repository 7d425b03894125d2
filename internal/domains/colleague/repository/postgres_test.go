package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"worldclock/internal/domains/colleague/model"
	"worldclock/shared"
	gDto "worldclock/shared/dto"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTable behaves like the colleagues table: unique positions, ORDER BY, LIMIT/OFFSET and delete by id.
type fakeTable struct {
	lock sync.Mutex
	mu   sync.Mutex

	rows    []model.Colleague
	deletes []gDto.FilterGroup
	locks   int

	insertErr error
}

func (f *fakeTable) Locked(_ context.Context, fn func(tx table) error) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.mu.Lock()
	f.locks++
	snapshot := slices.Clone(f.rows)
	f.mu.Unlock()

	if err := fn(f); err != nil {
		f.mu.Lock()
		f.rows = snapshot
		f.mu.Unlock()

		return err
	}

	return nil
}

func (f *fakeTable) GetAll(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Colleague, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if params.SortBy != model.FieldPosition {
		return nil, fmt.Errorf("unexpected sort column %q", params.SortBy)
	}

	rows := slices.Clone(f.rows)
	slices.SortFunc(rows, func(a, b model.Colleague) int {
		if params.SortDir == gDto.SortDirDesc {
			return int(b.Position - a.Position)
		}

		return int(a.Position - b.Position)
	})

	offset := 0
	if params.Page > 0 && params.Limit > 0 {
		offset = (params.Page - 1) * params.Limit
	}

	if offset >= len(rows) {
		return nil, nil
	}

	rows = rows[offset:]

	if params.Limit > 0 && params.Limit < len(rows) {
		rows = rows[:params.Limit]
	}

	return rows, nil
}

func (f *fakeTable) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.rows), nil
}

func (f *fakeTable) Insert(_ context.Context, colleague model.Colleague) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.insertErr != nil {
		return f.insertErr
	}

	for _, row := range f.rows {
		if row.Position == colleague.Position {
			return fmt.Errorf("duplicate key value violates unique constraint \"idx_colleagues_position\" (%d)", colleague.Position)
		}
	}

	f.rows = append(f.rows, colleague)

	return nil
}

func (f *fakeTable) Delete(_ context.Context, filter gDto.FilterGroup) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deletes = append(f.deletes, filter)

	id, _ := filter.Filters[0].(gDto.Filter).Value.(string)
	f.rows = slices.DeleteFunc(f.rows, func(row model.Colleague) bool { return row.ID == id })

	return nil
}

func seeded(rows ...model.Colleague) *fakeTable {
	return &fakeTable{rows: rows}
}

func at(id, name string, position int64) model.Colleague {
	return model.Colleague{ID: id, Name: name, Timezone: "CET", Offset: 1, City: "Paris", Country: "France", Position: position}
}

func rosterNames(t *testing.T, roster Roster) []string {
	t.Helper()

	colleagues, err := roster.List(t.Context())
	require.NoError(t, err)

	listed := []string{}
	for _, c := range colleagues {
		listed = append(listed, c.Name)
	}

	return listed
}

func TestPostgresRoster_ListOrdersByPosition(t *testing.T) {
	roster := newPostgresRoster(seeded(at("c", "Carol", 9), at("a", "Alice", 2), at("b", "Bob", 5)))

	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, rosterNames(t, roster))

	empty, err := newPostgresRoster(seeded()).List(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestPostgresRoster_AppendTakesNextPosition(t *testing.T) {
	tbl := seeded(at("b", "Bob", 7), at("a", "Alice", 3))
	roster := newPostgresRoster(tbl)

	index, err := roster.Append(t.Context(), at("c", "Carol", 0))
	require.NoError(t, err)
	assert.Equal(t, 2, index)
	assert.Equal(t, int64(8), tbl.rows[2].Position)
	assert.Equal(t, 1, tbl.locks)

	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, rosterNames(t, roster))

	first := seeded()

	index, err = newPostgresRoster(first).Append(t.Context(), at("a", "Alice", 42))
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.Equal(t, int64(0), first.rows[0].Position)
}

func TestPostgresRoster_RemoveAtDeletesByID(t *testing.T) {
	tbl := seeded(at("c", "Carol", 9), at("a", "Alice", 2), at("b", "Bob", 5))
	roster := newPostgresRoster(tbl)

	removed, err := roster.RemoveAt(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Bob", removed.Name)
	assert.Equal(t, 1, tbl.locks)

	require.Len(t, tbl.deletes, 1)
	assert.Equal(t, shared.FilterByID("b", model.FieldID, model.TableName), tbl.deletes[0])

	assert.Equal(t, []string{"Alice", "Carol"}, rosterNames(t, roster))
}

func TestPostgresRoster_RoundTrip(t *testing.T) {
	roster := newPostgresRoster(seeded(at("a", "Alice", 0), at("b", "Bob", 1)))

	before, err := roster.List(t.Context())
	require.NoError(t, err)

	index, err := roster.Append(t.Context(), at("c", "Carol", 0))
	require.NoError(t, err)

	_, err = roster.RemoveAt(t.Context(), index)
	require.NoError(t, err)

	after, err := roster.List(t.Context())
	require.NoError(t, err)

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("roster changed after add and remove (-before +after):\n%s", diff)
	}
}

func TestPostgresRoster_RemoveOutOfRange(t *testing.T) {
	tbl := seeded(at("a", "Alice", 0))
	roster := newPostgresRoster(tbl)

	for _, index := range []int{-1, 1, 5} {
		_, err := roster.RemoveAt(t.Context(), index)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}

	assert.Empty(t, tbl.deletes)
	assert.Equal(t, []string{"Alice"}, rosterNames(t, roster))
}

func TestPostgresRoster_InsertFailureRollsBack(t *testing.T) {
	tbl := seeded(at("a", "Alice", 0))
	tbl.insertErr = errors.New("connection reset")

	_, err := newPostgresRoster(tbl).Append(t.Context(), at("b", "Bob", 0))
	require.ErrorIs(t, err, tbl.insertErr)
	assert.Len(t, tbl.rows, 1)
}

func TestPostgresRoster_ConcurrentAppendsFromTwoInstances(t *testing.T) {
	tbl := seeded()
	first, second := newPostgresRoster(tbl), newPostgresRoster(tbl)

	const perInstance = 20

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		indexes []int
	)

	for _, roster := range []*postgresRoster{first, second} {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range perInstance {
				index, err := roster.Append(context.Background(), at(fmt.Sprintf("%p-%d", roster, i), "x", 0))
				assert.NoError(t, err)

				mu.Lock()
				indexes = append(indexes, index)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	slices.Sort(indexes)

	want := make([]int, 2*perInstance)
	for i := range want {
		want[i] = i
	}

	assert.Equal(t, want, indexes)
	assert.Len(t, tbl.rows, 2*perInstance)
}
