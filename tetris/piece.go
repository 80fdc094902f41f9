package tetris

// Offset is a cell position relative to a piece origin.
type Offset struct {
	DX, DY int
}

// Point is an absolute grid coordinate.
type Point struct {
	X, Y int
}

// Piece is a tetromino instance: an origin, four cell offsets describing the
// current rotation, and the shape it was spawned as.
type Piece struct {
	X, Y  int
	Cells [4]Offset
	Shape Shape
}

// NewPiece returns a piece of the given shape in its spawn orientation with
// its origin at (x, y).
func NewPiece(shape Shape, x, y int) Piece {
	return Piece{
		X:     x,
		Y:     y,
		Cells: shape.Offsets(),
		Shape: shape,
	}
}

// Points returns the absolute coordinates of the piece's four cells.
func (p Piece) Points() [4]Point {
	var points [4]Point
	for i, c := range p.Cells {
		points[i] = Point{X: p.X + c.DX, Y: p.Y + c.DY}
	}
	return points
}

// Moved returns a copy of the piece with its origin shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece turned 90 degrees counter-clockwise
// about its origin.
func (p Piece) Rotated() Piece {
	for i, c := range p.Cells {
		p.Cells[i] = Offset{DX: -c.DY, DY: c.DX}
	}
	return p
}
