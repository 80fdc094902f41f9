// Package palette holds the colours shared by the renderers.
package palette

import (
	"image/color"

	"github.com/plus3/blockfall/tetris"
)

// Shapes are the RGBA colours of each cell tag, indexed by tetris.Shape.
var Shapes = [...][4]float32{
	tetris.ShapeI: {0.0, 0.9, 0.9, 1},
	tetris.ShapeO: {0.95, 0.85, 0.1, 1},
	tetris.ShapeT: {0.65, 0.2, 0.85, 1},
	tetris.ShapeL: {0.95, 0.55, 0.1, 1},
	tetris.ShapeJ: {0.2, 0.35, 0.95, 1},
	tetris.ShapeS: {0.2, 0.85, 0.3, 1},
	tetris.ShapeZ: {0.9, 0.2, 0.2, 1},
}

// RGBA returns the premultiplied colour of s at the given alpha. Invalid
// shapes are black.
func RGBA(s tetris.Shape, alpha uint8) color.RGBA {
	if !s.Valid() {
		return color.RGBA{A: alpha}
	}
	c := Shapes[s]
	return color.RGBA{
		R: uint8(c[0] * float32(alpha)),
		G: uint8(c[1] * float32(alpha)),
		B: uint8(c[2] * float32(alpha)),
		A: alpha,
	}
}
