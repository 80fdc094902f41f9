package tetris

import "math/rand/v2"

// Rules are the tunable constants of a game.
type Rules struct {
	// FallInterval is the gravity period in seconds.
	FallInterval float64
	// LockBonus is added to the score every time a piece locks.
	LockBonus int
	// LineBonus is added once per row removed by a single lock.
	LineBonus int
	// SpawnX and SpawnY are the origin of every freshly spawned piece.
	SpawnX, SpawnY int
}

// DefaultRules returns the standard game constants.
func DefaultRules() Rules {
	return Rules{
		FallInterval: 0.7,
		LockBonus:    10,
		LineBonus:    100,
		SpawnX:       Width/2 - 1,
		SpawnY:       Height - 2,
	}
}

// kicks are tried in order when a rotation collides in place.
var kicks = [...]Offset{{DX: -1}, {DX: 1}, {DY: 1}}

// Engine owns the grid, the falling piece and the score counters. It performs
// no I/O and no timing of its own; the caller drives it with Update and the
// player commands and must not use it from more than one goroutine at a time.
//
// Once GameOver reports true every mutating method is a no-op. Start a new
// game by constructing a new Engine.
type Engine struct {
	rng   *rand.Rand
	rules Rules

	grid   Grid
	active Piece
	next   Shape

	fallTimer float64
	pieceAge  float64

	score  int
	lines  int
	pieces int
	counts ShapeCounts

	gameOver bool
}

// NewSource returns a deterministic random source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewEngine creates an engine with an empty grid and its first piece spawned.
// Shapes are drawn uniformly from rng. If rules are given the first one
// replaces DefaultRules.
func NewEngine(rng *rand.Rand, rules ...Rules) *Engine {
	if rng == nil {
		panic("tetris: nil random source")
	}

	e := &Engine{
		rng:    rng,
		rules:  DefaultRules(),
		counts: newShapeCounts(),
	}
	if len(rules) > 0 {
		e.rules = rules[0]
	}

	e.next = e.randomShape()
	e.spawn()
	return e
}

func (e *Engine) randomShape() Shape {
	return Shapes[e.rng.IntN(len(Shapes))]
}

// spawn promotes the upcoming shape to the active piece and draws a new
// upcoming shape. A piece that collides as soon as it appears ends the game;
// it stays installed as the final active piece.
func (e *Engine) spawn() {
	if e.gameOver {
		return
	}

	shape := e.next
	e.next = e.randomShape()
	e.install(shape)
}

func (e *Engine) install(shape Shape) {
	e.active = NewPiece(shape, e.rules.SpawnX, e.rules.SpawnY)
	e.pieceAge = 0
	e.pieces++
	e.counts.add(shape)

	if e.grid.Collides(e.active) {
		e.gameOver = true
	}
}

// CheckCollision reports whether p would overlap a wall, the floor or a
// locked cell of the current grid.
func (e *Engine) CheckCollision(p Piece) bool {
	return e.grid.Collides(p)
}

// Update advances the gravity timer by dt seconds. When the timer reaches the
// fall interval it is reset and the active piece falls one row, locking if it
// cannot. At most one row is dropped per call however large dt is.
func (e *Engine) Update(dt float64) {
	if e.gameOver {
		return
	}

	e.pieceAge += dt
	e.fallTimer += dt
	if e.fallTimer+fallEpsilon < e.rules.FallInterval {
		return
	}

	e.fallTimer = 0
	e.fall()
}

// fallEpsilon absorbs rounding when frame times sum to exactly one interval.
const fallEpsilon = 1e-9

func (e *Engine) fall() {
	moved := e.active.Moved(0, -1)
	if e.grid.Collides(moved) {
		e.lock()
		return
	}
	e.active = moved
}

// MoveLeft shifts the active piece one column left if there is room.
func (e *Engine) MoveLeft() {
	e.shift(-1)
}

// MoveRight shifts the active piece one column right if there is room.
func (e *Engine) MoveRight() {
	e.shift(1)
}

func (e *Engine) shift(dx int) {
	if e.gameOver {
		return
	}

	moved := e.active.Moved(dx, 0)
	if !e.grid.Collides(moved) {
		e.active = moved
	}
}

// MoveDown drops the active piece one row, locking it if it is already resting.
func (e *Engine) MoveDown() {
	if e.gameOver {
		return
	}
	e.fall()
}

// HardDrop moves the active piece to its resting row and locks it immediately.
func (e *Engine) HardDrop() {
	if e.gameOver {
		return
	}

	e.active = e.grid.Drop(e.active)
	e.lock()
}

// Rotate turns the active piece a quarter turn. If the turned piece collides,
// a shift one column left, one column right and one row up are tried in that
// order; if none fits the piece is left as it was.
func (e *Engine) Rotate() {
	if e.gameOver {
		return
	}

	rotated := e.active.Rotated()
	if !e.grid.Collides(rotated) {
		e.active = rotated
		return
	}

	for _, k := range kicks {
		kicked := rotated.Moved(k.DX, k.DY)
		if !e.grid.Collides(kicked) {
			e.active = kicked
			return
		}
	}
}

// lock merges the active piece into the grid, scores it and the rows it
// completes, then spawns the next piece.
func (e *Engine) lock() {
	cleared := e.grid.Place(e.active)
	e.score += e.rules.LockBonus

	if cleared > 0 {
		e.lines += cleared
		e.score += cleared * e.rules.LineBonus
	}

	e.spawn()
}

// Grid returns a copy of the playfield.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Active returns the falling piece.
func (e *Engine) Active() Piece {
	return e.active
}

// Ghost returns the active piece moved down to where a hard drop would lock it.
func (e *Engine) Ghost() Piece {
	if e.gameOver {
		return e.active
	}
	return e.grid.Drop(e.active)
}

// Next returns the shape that will spawn after the active piece locks.
func (e *Engine) Next() Shape {
	return e.next
}

func (e *Engine) GameOver() bool {
	return e.gameOver
}

func (e *Engine) Score() int {
	return e.score
}

// Lines returns the total number of rows cleared.
func (e *Engine) Lines() int {
	return e.lines
}

// Pieces returns the number of pieces spawned, including the active one.
func (e *Engine) Pieces() int {
	return e.pieces
}

// PieceAge returns the seconds of Update time the active piece has existed.
func (e *Engine) PieceAge() float64 {
	return e.pieceAge
}

// Counts returns a snapshot of the per-shape spawn tally.
func (e *Engine) Counts() ShapeCounts {
	return e.counts.clone()
}

func (e *Engine) Rules() Rules {
	return e.rules
}
