package tetris

import "strings"

const (
	Width  = 10
	Height = 20
)

// Cell is the content of one grid square: Empty or the Shape tag of the piece
// that locked there.
type Cell uint8

const Empty Cell = 0

// Grid is the playfield, stored row-major with (0, 0) at the bottom-left.
type Grid [Width * Height]Cell

// InBounds reports whether (x, y) addresses a cell of the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

func index(x, y int) int {
	return y*Width + x
}

// At returns the cell at (x, y), or Empty when the coordinate is outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !InBounds(x, y) {
		return Empty
	}
	return g[index(x, y)]
}

// Row returns the cells of row y, or nil when y is outside the grid. The slice
// aliases the grid.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= Height {
		return nil
	}
	return g[y*Width : (y+1)*Width]
}

// Occupied counts the non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g {
		if c != Empty {
			n++
		}
	}
	return n
}

// Collides reports whether p overlaps a wall, the floor or a locked cell.
// Cells above the top row only collide with the side walls, which is what lets
// pieces spawn partly above the visible field.
func (g *Grid) Collides(p Piece) bool {
	for _, pt := range p.Points() {
		if pt.X < 0 || pt.X >= Width || pt.Y < 0 {
			return true
		}
		if pt.Y < Height && g[index(pt.X, pt.Y)] != Empty {
			return true
		}
	}
	return false
}

// Drop returns p moved straight down as far as it can go without colliding.
// A piece that already collides is returned unchanged.
func (g *Grid) Drop(p Piece) Piece {
	for {
		next := p.Moved(0, -1)
		if g.Collides(next) {
			return p
		}
		p = next
	}
}

// Place writes p's cells into the grid with its shape tag, skipping cells
// outside the grid, then removes every full row. It returns the number of
// rows removed.
func (g *Grid) Place(p Piece) int {
	for _, pt := range p.Points() {
		if InBounds(pt.X, pt.Y) {
			g[index(pt.X, pt.Y)] = Cell(p.Shape)
		}
	}
	return g.clearFullRows()
}

func (g *Grid) rowFull(y int) bool {
	for _, c := range g.Row(y) {
		if c == Empty {
			return false
		}
	}
	return true
}

// clearFullRows scans bottom-to-top. A full row is dropped by shifting
// everything above it down one row and zeroing the top row; the same index is
// then checked again since a new row has moved into it.
func (g *Grid) clearFullRows() int {
	cleared := 0
	for y := 0; y < Height; {
		if !g.rowFull(y) {
			y++
			continue
		}
		copy(g[y*Width:(Height-1)*Width], g[(y+1)*Width:])
		clear(g[(Height-1)*Width:])
		cleared++
	}
	return cleared
}

// String renders the grid top row first, '.' for empty cells and the shape
// letter for locked ones.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := Height - 1; y >= 0; y-- {
		for x := 0; x < Width; x++ {
			c := g.At(x, y)
			if c == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(Shape(c).String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
