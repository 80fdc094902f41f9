package play

import (
	"math"

	"github.com/plus3/blockfall/tetris"
)

// Weights score a board after a candidate placement.
type Weights struct {
	Height    float64
	Lines     float64
	Holes     float64
	Bumpiness float64
}

func DefaultWeights() Weights {
	return Weights{
		Height:    -0.51,
		Lines:     0.76,
		Holes:     -0.36,
		Bumpiness: -0.18,
	}
}

// Evaluate scores grid, which already had cleared rows removed.
func (w Weights) Evaluate(grid *tetris.Grid, cleared int) float64 {
	var heights [tetris.Width]int
	holes := 0
	for x := 0; x < tetris.Width; x++ {
		for y := tetris.Height - 1; y >= 0; y-- {
			if grid.At(x, y) == tetris.Empty {
				if heights[x] > 0 {
					holes++
				}
				continue
			}
			if heights[x] == 0 {
				heights[x] = y + 1
			}
		}
	}

	aggregate, bumpiness := 0, 0
	for x, h := range heights {
		aggregate += h
		if x > 0 {
			bumpiness += abs(h - heights[x-1])
		}
	}

	return w.Height*float64(aggregate) +
		w.Lines*float64(cleared) +
		w.Holes*float64(holes) +
		w.Bumpiness*float64(bumpiness)
}

// Placement is where the bot wants the active piece to land.
type Placement struct {
	Rotations int
	Cells     [4]tetris.Offset
	X         int
	Score     float64
}

// Best tries every rotation and column for active, dropping it straight down
// onto a copy of grid, and returns the best scoring placement. If nothing
// fits, the placement leaves the piece where it is.
func (w Weights) Best(grid tetris.Grid, active tetris.Piece) Placement {
	best := Placement{Cells: active.Cells, X: active.X, Score: math.Inf(-1)}

	piece := active
	for r := 0; r < 4; r++ {
		for x := -2; x < tetris.Width+2; x++ {
			candidate := piece
			candidate.X = x
			if grid.Collides(candidate) {
				continue
			}

			after := grid
			cleared := after.Place(grid.Drop(candidate))
			if score := w.Evaluate(&after, cleared); score > best.Score {
				best = Placement{Rotations: r, Cells: piece.Cells, X: x, Score: score}
			}
		}
		piece = piece.Rotated()
	}

	return best
}

// Bot is an Input that plays by itself. It plans once per piece and then
// issues one action per frame, checking the engine's response before the
// next one: rotations first, then shifts, then a hard drop. When the engine
// refuses a step the bot drops the piece where it is.
type Bot struct {
	Weights     Weights
	AutoRestart bool

	engine    *tetris.Engine
	pieces    int
	plan      *Placement
	rotations int
	shifting  bool
	lastX     int

	action  Action
	pending bool
}

func NewBot() *Bot {
	return &Bot{Weights: DefaultWeights()}
}

func (b *Bot) Pressed(a Action) bool {
	return b.pending && b.action == a
}

func (b *Bot) Poll(engine *tetris.Engine) {
	b.pending = false

	if engine.GameOver() {
		b.plan = nil
		if b.AutoRestart {
			b.emit(ActionRestart)
		}
		return
	}

	if b.plan == nil || engine != b.engine || engine.Pieces() != b.pieces {
		b.engine = engine
		b.pieces = engine.Pieces()
		plan := b.Weights.Best(engine.Grid(), engine.Active())
		b.plan = &plan
		b.rotations = 0
		b.shifting = false
	}

	active := engine.Active()
	stuck := b.shifting && active.X == b.lastX
	b.shifting = false

	switch {
	case stuck:
		b.emit(ActionHardDrop)
	case b.rotations < b.plan.Rotations:
		b.rotations++
		b.emit(ActionRotate)
	case active.Cells != b.plan.Cells:
		b.emit(ActionHardDrop)
	case active.X < b.plan.X:
		b.shift(active.X, ActionRight)
	case active.X > b.plan.X:
		b.shift(active.X, ActionLeft)
	default:
		b.emit(ActionHardDrop)
	}
}

func (b *Bot) shift(x int, a Action) {
	b.shifting = true
	b.lastX = x
	b.emit(a)
}

func (b *Bot) emit(a Action) {
	b.action = a
	b.pending = true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
