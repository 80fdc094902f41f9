package palette

import (
	"image/color"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 229, G: 51, B: 51, A: 255}, RGBA(tetris.ShapeZ, 0xff))
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 0}, RGBA(tetris.ShapeI, 0))
	assert.Equal(t, color.RGBA{A: 0x80}, RGBA(tetris.Shape(0), 0x80))

	for _, s := range tetris.Shapes {
		c := RGBA(s, 0x50)
		assert.LessOrEqual(t, c.R, c.A, "shape %s is premultiplied", s)
		assert.LessOrEqual(t, c.G, c.A)
		assert.LessOrEqual(t, c.B, c.A)
	}
}
