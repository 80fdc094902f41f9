package tetris

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine returns an engine on an empty grid whose active piece has been
// replaced by the given shape at the spawn position.
func newTestEngine(t *testing.T, shape Shape) *Engine {
	t.Helper()

	e := NewEngine(NewSource(1))
	require.False(t, e.GameOver())
	e.grid = Grid{}
	e.active = NewPiece(shape, e.rules.SpawnX, e.rules.SpawnY)
	return e
}

func fillRow(g *Grid, y int, skip ...int) {
	for x := 0; x < Width; x++ {
		g[index(x, y)] = Cell(ShapeT)
	}
	for _, x := range skip {
		g[index(x, y)] = Empty
	}
}

type snapshot struct {
	Grid     Grid
	Active   Piece
	Score    int
	Lines    int
	Pieces   int
	GameOver bool
}

func snap(e *Engine) snapshot {
	return snapshot{
		Grid:     e.Grid(),
		Active:   e.Active(),
		Score:    e.Score(),
		Lines:    e.Lines(),
		Pieces:   e.Pieces(),
		GameOver: e.GameOver(),
	}
}

func TestCheckCollision(t *testing.T) {
	var topFilled Grid
	fillRow(&topFilled, Height-1)

	var single Grid
	single[index(4, 19)] = Cell(ShapeZ)

	tests := []struct {
		name  string
		grid  Grid
		piece Piece
		want  bool
	}{
		{"open floor", Grid{}, NewPiece(ShapeO, 0, 0), false},
		{"left wall", Grid{}, NewPiece(ShapeO, -1, 0), true},
		{"right wall", Grid{}, NewPiece(ShapeO, Width-1, 0), true},
		{"below floor", Grid{}, NewPiece(ShapeO, 0, -1), true},
		{"straddling top", Grid{}, NewPiece(ShapeO, 4, Height-1), false},
		{"fully above top", Grid{}, NewPiece(ShapeO, 4, Height+5), false},
		{"above top still walled", Grid{}, NewPiece(ShapeO, -3, Height+5), true},
		{"locked cell", single, NewPiece(ShapeO, 4, Height-1), true},
		{"above full top row", topFilled, NewPiece(ShapeO, 4, Height), false},
		{"into full top row", topFilled, NewPiece(ShapeI, 0, Height), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, ShapeO)
			e.grid = tt.grid
			before := e.Grid()

			assert.Equal(t, tt.want, e.CheckCollision(tt.piece))
			assert.Equal(t, before, e.Grid(), "collision test must not mutate the grid")
		})
	}
}

func TestHardDropLocksAtFloor(t *testing.T) {
	e := newTestEngine(t, ShapeO)

	e.HardDrop()

	grid := e.Grid()
	for _, pt := range []Point{{4, 0}, {5, 0}, {4, 1}, {5, 1}} {
		assert.Equal(t, Cell(ShapeO), grid.At(pt.X, pt.Y), "cell %v", pt)
	}
	assert.Equal(t, 4, grid.Occupied())
	assert.Equal(t, 10, e.Score())
	assert.Equal(t, 0, e.Lines())
	assert.Equal(t, 2, e.Pieces())
	assert.False(t, e.GameOver())

	active := e.Active()
	assert.Equal(t, e.rules.SpawnX, active.X)
	assert.Equal(t, e.rules.SpawnY, active.Y)
}

func TestLockSkipsCellsAboveGrid(t *testing.T) {
	e := newTestEngine(t, ShapeI)
	e.grid[index(0, 17)] = Cell(ShapeT)
	e.active = NewPiece(ShapeI, 0, 19)

	e.lock()

	want := Grid{}
	want[index(0, 17)] = Cell(ShapeT)
	want[index(0, 18)] = Cell(ShapeI)
	want[index(0, 19)] = Cell(ShapeI)
	if diff := cmp.Diff(want, e.Grid()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 10, e.Score())
	assert.False(t, e.GameOver())
}

func TestClearFullRows(t *testing.T) {
	t.Run("non-contiguous rows", func(t *testing.T) {
		var g Grid
		fillRow(&g, 0)
		fillRow(&g, 1, 3)
		fillRow(&g, 2)
		fillRow(&g, 3)
		fillRow(&g, 4, 0, 9)
		g[index(7, 5)] = Cell(ShapeL)

		cleared := g.clearFullRows()

		var want Grid
		fillRow(&want, 0, 3)
		fillRow(&want, 1, 0, 9)
		want[index(7, 2)] = Cell(ShapeL)

		assert.Equal(t, 3, cleared)
		if diff := cmp.Diff(want, g); diff != "" {
			t.Errorf("grid mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("top row", func(t *testing.T) {
		var g Grid
		fillRow(&g, Height-1)
		fillRow(&g, Height-2, 5)

		assert.Equal(t, 1, g.clearFullRows())

		var want Grid
		fillRow(&want, Height-2, 5)
		assert.Equal(t, want, g)
	})

	t.Run("nothing full", func(t *testing.T) {
		var g Grid
		fillRow(&g, 0, 4)
		before := g

		assert.Equal(t, 0, g.clearFullRows())
		assert.Equal(t, before, g)
	})

	t.Run("whole grid", func(t *testing.T) {
		var g Grid
		for y := 0; y < Height; y++ {
			fillRow(&g, y)
		}

		assert.Equal(t, Height, g.clearFullRows())
		assert.Equal(t, 0, g.Occupied())
	})
}

func TestLineClearScoring(t *testing.T) {
	t.Run("single row gap filled", func(t *testing.T) {
		e := newTestEngine(t, ShapeI)
		fillRow(&e.grid, 0, 0)
		e.active = NewPiece(ShapeI, 0, e.rules.SpawnY)

		e.HardDrop()

		grid := e.Grid()
		assert.Equal(t, 1, e.Lines())
		assert.Equal(t, 110, e.Score())
		assert.Equal(t, 3, grid.Occupied())
		for y := 0; y < 3; y++ {
			assert.Equal(t, Cell(ShapeI), grid.At(0, y))
		}
	})

	t.Run("two rows in one lock", func(t *testing.T) {
		e := newTestEngine(t, ShapeI)
		fillRow(&e.grid, 0, 0)
		fillRow(&e.grid, 1, 0)
		e.active = NewPiece(ShapeI, 0, e.rules.SpawnY)

		e.HardDrop()

		assert.Equal(t, 2, e.Lines())
		assert.Equal(t, 10+2*100, e.Score())
	})

	t.Run("repeated single clears", func(t *testing.T) {
		const n = 4
		e := newTestEngine(t, ShapeO)

		for i := 0; i < n; i++ {
			e.grid = Grid{}
			fillRow(&e.grid, 0, 0, 1)
			e.active = NewPiece(ShapeO, 0, e.rules.SpawnY)
			e.HardDrop()
			require.False(t, e.GameOver())
		}

		rules := DefaultRules()
		assert.Equal(t, n, e.Lines())
		assert.Equal(t, n*rules.LineBonus+n*rules.LockBonus, e.Score())
	})
}

func TestRotate(t *testing.T) {
	t.Run("free rotation", func(t *testing.T) {
		e := newTestEngine(t, ShapeT)

		e.Rotate()

		want := [4]Offset{{0, 0}, {0, -1}, {0, 1}, {-1, 0}}
		assert.Equal(t, want, e.Active().Cells)
		assert.Equal(t, e.rules.SpawnX, e.Active().X)
		assert.Equal(t, e.rules.SpawnY, e.Active().Y)
	})

	t.Run("four turns return to spawn orientation", func(t *testing.T) {
		for _, shape := range Shapes {
			p := NewPiece(shape, 4, 10)
			assert.Equal(t, p, p.Rotated().Rotated().Rotated().Rotated(), shape.String())
		}
	})

	t.Run("kick right off the left wall", func(t *testing.T) {
		e := newTestEngine(t, ShapeI)
		e.active = NewPiece(ShapeI, 1, 10)

		e.Rotate()

		assert.Equal(t, 2, e.Active().X)
		assert.Equal(t, 10, e.Active().Y)
		assert.Equal(t, NewPiece(ShapeI, 0, 0).Rotated().Cells, e.Active().Cells)
	})

	t.Run("kick left off the right wall", func(t *testing.T) {
		e := newTestEngine(t, ShapeT)
		e.active = NewPiece(ShapeT, 9, 10).Rotated()
		require.False(t, e.CheckCollision(e.active))

		e.Rotate()

		assert.Equal(t, 8, e.Active().X)
		assert.Equal(t, 10, e.Active().Y)
	})

	t.Run("kick up off the floor", func(t *testing.T) {
		e := newTestEngine(t, ShapeT)
		e.active = NewPiece(ShapeT, 4, 0)

		e.Rotate()

		assert.Equal(t, 4, e.Active().X)
		assert.Equal(t, 1, e.Active().Y)
	})

	t.Run("blocked rotation leaves piece unchanged", func(t *testing.T) {
		e := newTestEngine(t, ShapeT)
		e.active = NewPiece(ShapeT, 4, 10)

		own := map[Point]bool{}
		for _, pt := range e.active.Points() {
			own[pt] = true
		}
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				if !own[Point{x, y}] {
					e.grid[index(x, y)] = Cell(ShapeZ)
				}
			}
		}
		before := snap(e)

		e.Rotate()

		assert.Equal(t, before, snap(e))
	})
}

func TestMovement(t *testing.T) {
	t.Run("walls stop lateral moves", func(t *testing.T) {
		e := newTestEngine(t, ShapeO)
		e.active = NewPiece(ShapeO, 0, 5)

		e.MoveLeft()
		assert.Equal(t, 0, e.Active().X)

		e.MoveRight()
		assert.Equal(t, 1, e.Active().X)

		e.active = NewPiece(ShapeO, Width-2, 5)
		e.MoveRight()
		assert.Equal(t, Width-2, e.Active().X)
	})

	t.Run("locked cells stop lateral moves", func(t *testing.T) {
		e := newTestEngine(t, ShapeO)
		e.active = NewPiece(ShapeO, 4, 5)
		e.grid[index(3, 5)] = Cell(ShapeJ)

		e.MoveLeft()

		assert.Equal(t, 4, e.Active().X)
	})

	t.Run("move down descends then locks", func(t *testing.T) {
		e := newTestEngine(t, ShapeO)
		e.active = NewPiece(ShapeO, 4, 1)

		e.MoveDown()
		assert.Equal(t, 0, e.Active().Y)
		assert.Equal(t, 0, e.Score())

		e.MoveDown()
		grid := e.Grid()
		assert.Equal(t, 4, grid.Occupied())
		assert.Equal(t, 10, e.Score())
		assert.Equal(t, 2, e.Pieces())
	})
}

func TestUpdate(t *testing.T) {
	t.Run("fractions of an interval add up to one step", func(t *testing.T) {
		e := newTestEngine(t, ShapeO)
		e.rules.FallInterval = 1.0
		startY := e.Active().Y

		for i := 0; i < 3; i++ {
			e.Update(0.25)
			assert.Equal(t, startY, e.Active().Y)
		}
		e.Update(0.25)
		assert.Equal(t, startY-1, e.Active().Y)

		e.Update(0.25)
		assert.Equal(t, startY-1, e.Active().Y)
	})

	t.Run("default interval split in halves", func(t *testing.T) {
		e := newTestEngine(t, ShapeO)
		half := e.rules.FallInterval / 2

		e.Update(half)
		assert.Equal(t, e.rules.SpawnY, e.Active().Y)
		e.Update(half)
		assert.Equal(t, e.rules.SpawnY-1, e.Active().Y)
	})

	t.Run("equal slices of the default interval step once", func(t *testing.T) {
		for _, n := range []int{3, 7, 10, 42} {
			e := newTestEngine(t, ShapeO)
			slice := e.rules.FallInterval / float64(n)

			for i := 0; i < n-1; i++ {
				e.Update(slice)
			}
			assert.Equal(t, e.rules.SpawnY, e.Active().Y, "n=%d before last slice", n)

			e.Update(slice)
			assert.Equal(t, e.rules.SpawnY-1, e.Active().Y, "n=%d", n)
			assert.Equal(t, 0.0, e.fallTimer, "n=%d", n)
		}
	})

	t.Run("large dt steps only once", func(t *testing.T) {
		e := newTestEngine(t, ShapeO)

		e.Update(10 * e.rules.FallInterval)

		assert.Equal(t, e.rules.SpawnY-1, e.Active().Y)
		assert.Equal(t, 0.0, e.fallTimer)
	})

	t.Run("gravity locks a resting piece", func(t *testing.T) {
		e := newTestEngine(t, ShapeO)
		e.active = NewPiece(ShapeO, 4, 0)

		e.Update(e.rules.FallInterval)

		grid := e.Grid()
		assert.Equal(t, 4, grid.Occupied())
		assert.Equal(t, 10, e.Score())
	})

	t.Run("piece age resets on spawn", func(t *testing.T) {
		e := newTestEngine(t, ShapeO)

		e.Update(0.25)
		e.Update(0.25)
		assert.InDelta(t, 0.5, e.PieceAge(), 1e-9)

		e.HardDrop()
		assert.Equal(t, 0.0, e.PieceAge())
	})
}

func TestGameOver(t *testing.T) {
	t.Run("blocked spawn ends the game", func(t *testing.T) {
		e := newTestEngine(t, ShapeO)
		for y := Height / 2; y < Height; y++ {
			fillRow(&e.grid, y, 0)
		}

		e.spawn()

		require.True(t, e.GameOver())
		assert.True(t, e.CheckCollision(e.Active()), "the colliding piece stays active")
		assert.Equal(t, e.Active(), e.Ghost())

		before := snap(e)
		next := e.Next()

		e.Update(10)
		e.MoveLeft()
		e.MoveRight()
		e.MoveDown()
		e.HardDrop()
		e.Rotate()
		e.spawn()

		assert.Equal(t, before, snap(e))
		assert.Equal(t, next, e.Next())
	})

	t.Run("stacking at the spawn column", func(t *testing.T) {
		e := NewEngine(NewSource(7))

		for i := 0; i < 500 && !e.GameOver(); i++ {
			e.HardDrop()
		}
		require.True(t, e.GameOver())

		before := snap(e)
		for i := 0; i < 10; i++ {
			e.Update(1)
			e.MoveDown()
			e.HardDrop()
		}
		assert.Equal(t, before, snap(e))
	})
}

func TestQueries(t *testing.T) {
	t.Run("next becomes active", func(t *testing.T) {
		e := NewEngine(NewSource(3))
		for i := 0; i < 20; i++ {
			next := e.Next()
			e.HardDrop()
			if e.GameOver() {
				break
			}
			assert.Equal(t, next, e.Active().Shape)
			assert.True(t, e.Next().Valid())
		}
	})

	t.Run("counts track spawns", func(t *testing.T) {
		e := NewEngine(NewSource(11))
		counts := e.Counts()
		assert.Equal(t, 1, counts.Total())
		assert.Equal(t, 1, counts.Get(e.Active().Shape))

		e.HardDrop()
		e.HardDrop()

		assert.Equal(t, 1, counts.Total(), "snapshots are not live")
		assert.Equal(t, e.Pieces(), e.Counts().Total())
	})

	t.Run("ghost rests on the floor", func(t *testing.T) {
		e := newTestEngine(t, ShapeO)
		before := e.Active()

		ghost := e.Ghost()

		assert.Equal(t, 0, ghost.Y)
		assert.Equal(t, before.X, ghost.X)
		assert.Equal(t, before, e.Active())
	})

	t.Run("grid is a copy", func(t *testing.T) {
		e := newTestEngine(t, ShapeO)
		grid := e.Grid()
		grid.Row(0)[0] = Cell(ShapeS)

		after := e.Grid()
		assert.Equal(t, Empty, after.At(0, 0))
	})
}

func TestDeterministicWithSeed(t *testing.T) {
	play := func() snapshot {
		e := NewEngine(NewSource(99))
		for i := 0; i < 30 && !e.GameOver(); i++ {
			switch i % 4 {
			case 0:
				e.MoveLeft()
				e.MoveLeft()
			case 1:
				e.Rotate()
				e.MoveRight()
			case 2:
				e.MoveRight()
				e.MoveRight()
				e.MoveRight()
			}
			e.Update(0.3)
			e.HardDrop()
		}
		return snap(e)
	}

	assert.Equal(t, play(), play())
}

func TestNewEngineRequiresSource(t *testing.T) {
	assert.Panics(t, func() { NewEngine(nil) })
}

func TestNewEngineRules(t *testing.T) {
	rules := DefaultRules()
	rules.LockBonus = 1
	rules.SpawnY = 10

	e := NewEngine(NewSource(5), rules)

	assert.Equal(t, rules, e.Rules())
	assert.Equal(t, 10, e.Active().Y)
}
