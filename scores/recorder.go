package scores

import (
	"context"
	"sync"
	"time"

	"github.com/plus3/blockfall/ctxlog"
	"github.com/plus3/blockfall/play"
)

// Recorder is a play.Listener that saves every finished game and keeps the
// current top entries in memory for display.
type Recorder struct {
	store *Store
	limit int
	now   func() time.Time

	mu  sync.RWMutex
	top []Entry
}

func NewRecorder(store *Store, limit int) *Recorder {
	return &Recorder{
		store: store,
		limit: limit,
		now:   time.Now,
	}
}

// Top returns the entries loaded by the last Refresh.
func (r *Recorder) Top() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.top
}

// Refresh reloads the top entries from the store.
func (r *Recorder) Refresh(ctx context.Context) error {
	top, err := r.store.Top(ctx, r.limit)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.top = top
	r.mu.Unlock()
	return nil
}

func (r *Recorder) PieceLocked(ctx context.Context) {}

func (r *Recorder) LinesCleared(ctx context.Context, n int) {}

func (r *Recorder) GameOver(ctx context.Context, s play.Summary) {
	logger := ctxlog.FromContext(ctx)

	entry := Entry{
		ID:       s.Game,
		Score:    s.Score,
		Lines:    s.Lines,
		Pieces:   s.Pieces,
		Seed:     s.Seed,
		PlayedAt: r.now(),
	}
	if err := r.store.Record(ctx, entry); err != nil {
		logger.Error("Failed to record score.", "game", s.Game, "error", err)
		return
	}

	if err := r.Refresh(ctx); err != nil {
		logger.Error("Failed to load scores.", "error", err)
		return
	}
	logger.Debug("Recorded score.", "game", s.Game, "score", s.Score)
}
