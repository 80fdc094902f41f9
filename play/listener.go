package play

import (
	"context"

	"github.com/google/uuid"
)

// Summary describes a finished game.
type Summary struct {
	Game   uuid.UUID
	Seed   uint64
	Score  int
	Lines  int
	Pieces int
}

// Listener is notified by WatchSystem about things that happened in the
// engine since the previous frame.
type Listener interface {
	PieceLocked(ctx context.Context)
	LinesCleared(ctx context.Context, n int)
	GameOver(ctx context.Context, s Summary)
}
