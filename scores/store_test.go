package scores

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/blockfall/play"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("best on empty table", func(t *testing.T) {
		store := openTestStore(t)
		_, err := store.Best(ctx)
		assert.ErrorIs(t, err, ErrNotFound)

		top, err := store.Top(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, top)
	})

	t.Run("ordered by score then age", func(t *testing.T) {
		store := openTestStore(t)
		entries := []Entry{
			{ID: uuid.New(), Score: 120, Lines: 1, Pieces: 3, Seed: 1, PlayedAt: base.Add(2 * time.Minute)},
			{ID: uuid.New(), Score: 300, Lines: 2, Pieces: 9, Seed: 2, PlayedAt: base.Add(3 * time.Minute)},
			{ID: uuid.New(), Score: 120, Lines: 1, Pieces: 3, Seed: 3, PlayedAt: base.Add(1 * time.Minute)},
			{ID: uuid.New(), Score: 10, Lines: 0, Pieces: 2, Seed: 4, PlayedAt: base},
		}
		for _, e := range entries {
			require.NoError(t, store.Record(ctx, e))
		}

		top, err := store.Top(ctx, 3)
		require.NoError(t, err)
		require.Len(t, top, 3)
		assert.Equal(t, entries[1].ID, top[0].ID)
		assert.Equal(t, entries[2].ID, top[1].ID)
		assert.Equal(t, entries[0].ID, top[2].ID)

		best, err := store.Best(ctx)
		require.NoError(t, err)
		assert.Equal(t, entries[1].ID, best.ID)
		assert.Equal(t, 9, best.Pieces)
		assert.True(t, entries[1].PlayedAt.Equal(best.PlayedAt))
	})

	t.Run("record replaces by id", func(t *testing.T) {
		store := openTestStore(t)
		id := uuid.New()
		require.NoError(t, store.Record(ctx, Entry{ID: id, Score: 10, PlayedAt: base}))
		require.NoError(t, store.Record(ctx, Entry{ID: id, Score: 50, PlayedAt: base}))

		top, err := store.Top(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, 50, top[0].Score)
	})

	t.Run("large seeds round trip", func(t *testing.T) {
		store := openTestStore(t)
		require.NoError(t, store.Record(ctx, Entry{ID: uuid.New(), Seed: math.MaxUint64, PlayedAt: base}))

		best, err := store.Best(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64), best.Seed)
	})

	t.Run("reopen keeps entries", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.db")
		store, err := Open(ctx, path)
		require.NoError(t, err)
		require.NoError(t, store.Record(ctx, Entry{ID: uuid.New(), Score: 70, PlayedAt: base}))
		require.NoError(t, store.Close())

		store, err = Open(ctx, path)
		require.NoError(t, err)
		defer store.Close()

		best, err := store.Best(ctx)
		require.NoError(t, err)
		assert.Equal(t, 70, best.Score)
	})
}

func TestRecorder(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	recorder := NewRecorder(store, 2)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	recorder.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	var _ play.Listener = recorder
	recorder.PieceLocked(ctx)
	recorder.LinesCleared(ctx, 2)
	assert.Empty(t, recorder.Top())

	for _, score := range []int{40, 90, 60} {
		recorder.GameOver(ctx, play.Summary{Game: uuid.New(), Seed: 5, Score: score, Lines: 1, Pieces: 4})
	}

	top := recorder.Top()
	require.Len(t, top, 2)
	assert.Equal(t, 90, top[0].Score)
	assert.Equal(t, 60, top[1].Score)

	fresh := NewRecorder(store, 5)
	require.NoError(t, fresh.Refresh(ctx))
	assert.Len(t, fresh.Top(), 3)
}
