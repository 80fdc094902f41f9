package tetris

// Shape identifies one of the seven tetrominoes. Its value doubles as the cell
// tag written into the grid when a piece of that shape locks.
type Shape uint8

const (
	ShapeI Shape = iota + 1
	ShapeO
	ShapeT
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
)

// Shapes lists every spawnable shape in tag order.
var Shapes = [...]Shape{ShapeI, ShapeO, ShapeT, ShapeL, ShapeJ, ShapeS, ShapeZ}

// shapeOffsets holds the spawn orientation of each shape as cell offsets from
// the piece origin. y grows upwards.
var shapeOffsets = [...][4]Offset{
	ShapeI: {{0, 0}, {0, 1}, {0, -1}, {0, 2}},
	ShapeO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	ShapeT: {{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
	ShapeL: {{0, 0}, {0, 1}, {0, -1}, {1, -1}},
	ShapeJ: {{0, 0}, {0, 1}, {0, -1}, {-1, -1}},
	ShapeS: {{0, 0}, {-1, 0}, {0, 1}, {1, 1}},
	ShapeZ: {{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
}

var shapeNames = [...]string{
	ShapeI: "I",
	ShapeO: "O",
	ShapeT: "T",
	ShapeL: "L",
	ShapeJ: "J",
	ShapeS: "S",
	ShapeZ: "Z",
}

// Valid reports whether s is one of the seven canonical shapes.
func (s Shape) Valid() bool {
	return s >= ShapeI && s <= ShapeZ
}

func (s Shape) String() string {
	if !s.Valid() {
		return "?"
	}
	return shapeNames[s]
}

// Offsets returns the spawn orientation of the shape.
func (s Shape) Offsets() [4]Offset {
	if !s.Valid() {
		return [4]Offset{}
	}
	return shapeOffsets[s]
}
