package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/scores"
	"github.com/plus3/blockfall/tetris"
)

// canvas is the part of tcell.Screen the renderer needs.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

const (
	originX = 2
	originY = 1
	hudX    = originX + tetris.Width*2 + 4
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func shapeStyle(s tetris.Shape) tcell.Style {
	c := palette.Shapes[s]
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c[0]*255), int32(c[1]*255), int32(c[2]*255)))
}

func drawText(dst canvas, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		dst.SetContent(x+i, y, r, nil, style)
	}
}

// drawCell fills the two terminal columns of grid cell (x, y).
func drawCell(dst canvas, x, y int, r rune, style tcell.Style) {
	sx := originX + 1 + x*2
	sy := originY + tetris.Height - y
	dst.SetContent(sx, sy, r, nil, style)
	dst.SetContent(sx+1, sy, r, nil, style)
}

func drawPiece(dst canvas, p tetris.Piece, r rune, style tcell.Style) {
	for _, pt := range p.Points() {
		if tetris.InBounds(pt.X, pt.Y) {
			drawCell(dst, pt.X, pt.Y, r, style)
		}
	}
}

// view is what one frame shows.
type view struct {
	engine *tetris.Engine
	paused bool
	top    []scores.Entry

	// restartHint names the keys bound to restart; empty hides the prompt.
	restartHint string
}

func draw(dst canvas, v view) {
	e := v.engine
	bottom := originY + tetris.Height + 1
	right := originX + tetris.Width*2 + 1

	for y := originY; y <= bottom; y++ {
		dst.SetContent(originX, y, '│', nil, borderStyle)
		dst.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := originX; x <= right; x++ {
		dst.SetContent(x, bottom, '─', nil, borderStyle)
	}
	dst.SetContent(originX, bottom, '└', nil, borderStyle)
	dst.SetContent(right, bottom, '┘', nil, borderStyle)

	grid := e.Grid()
	for y := 0; y < tetris.Height; y++ {
		for x, cell := range grid.Row(y) {
			if cell != tetris.Empty {
				drawCell(dst, x, y, '█', shapeStyle(tetris.Shape(cell)))
			}
		}
	}

	if !e.GameOver() {
		drawPiece(dst, e.Ghost(), '░', ghostStyle)
	}
	drawPiece(dst, e.Active(), '█', shapeStyle(e.Active().Shape))

	drawText(dst, hudX, originY, textStyle, fmt.Sprintf("Score  %d", e.Score()))
	drawText(dst, hudX, originY+1, textStyle, fmt.Sprintf("Lines  %d", e.Lines()))
	drawText(dst, hudX, originY+2, textStyle, fmt.Sprintf("Pieces %d", e.Pieces()))
	drawText(dst, hudX, originY+4, textStyle, "Next")
	drawText(dst, hudX+7, originY+4, shapeStyle(e.Next()), e.Next().String())

	row := originY + 6
	if len(v.top) > 0 {
		drawText(dst, hudX, row, textStyle, "Best")
		for i, entry := range v.top {
			drawText(dst, hudX, row+1+i, textStyle, fmt.Sprintf("%2d. %6d", i+1, entry.Score))
		}
	}

	switch {
	case e.GameOver():
		drawText(dst, originX+5, originY+tetris.Height/2, alertStyle, "GAME OVER")
		if v.restartHint != "" {
			drawText(dst, originX+3, originY+tetris.Height/2+1, textStyle, v.restartHint+" to restart")
		}
	case v.paused:
		drawText(dst, originX+7, originY+tetris.Height/2, alertStyle, "PAUSED")
	}
}
