package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/tetris"
)

const (
	windowWidth  = 900
	windowHeight = 680

	cellSize = 30
	boardX   = 250
	boardY   = 40

	previewX = boardX + tetris.Width*cellSize + 40
	previewY = boardY + 30
)

var (
	backgroundColor = color.RGBA{0x12, 0x12, 0x18, 0xff}
	wellColor       = color.RGBA{0x1e, 0x1e, 0x28, 0xff}
	borderColor     = color.RGBA{0x80, 0x80, 0x90, 0xff}
	outlineColor    = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// cellRect maps a grid coordinate to the top-left screen corner of its cell.
// Row 0 is at the bottom of the well.
func cellRect(x, y int) (float32, float32) {
	return float32(boardX + x*cellSize), float32(boardY + (tetris.Height-1-y)*cellSize)
}

func drawCell(dst *ebiten.Image, sx, sy float32, c color.Color, outline bool) {
	vector.DrawFilledRect(dst, sx, sy, cellSize, cellSize, c, false)
	if outline {
		vector.StrokeRect(dst, sx, sy, cellSize, cellSize, 1, outlineColor, false)
	}
}

func drawPiece(dst *ebiten.Image, p tetris.Piece, alpha uint8) {
	for _, pt := range p.Points() {
		if !tetris.InBounds(pt.X, pt.Y) {
			continue
		}
		sx, sy := cellRect(pt.X, pt.Y)
		drawCell(dst, sx, sy, palette.RGBA(p.Shape, alpha), alpha == 0xff)
	}
}

// drawBoard renders the well, the locked cells, the ghost and the active piece,
// in that order, plus the next-piece preview. Once the game is over the piece
// that could not spawn stays on top of the stack, without a ghost.
func drawBoard(dst *ebiten.Image, engine *tetris.Engine, paused bool, restartHint string) {
	dst.Fill(backgroundColor)

	w, h := float32(tetris.Width*cellSize), float32(tetris.Height*cellSize)
	vector.DrawFilledRect(dst, boardX, boardY, w, h, wellColor, false)
	vector.StrokeRect(dst, boardX-2, boardY-2, w+4, h+4, 2, borderColor, false)

	grid := engine.Grid()
	for y := 0; y < tetris.Height; y++ {
		for x, cell := range grid.Row(y) {
			if cell == tetris.Empty {
				continue
			}
			sx, sy := cellRect(x, y)
			drawCell(dst, sx, sy, palette.RGBA(tetris.Shape(cell), 0xff), true)
		}
	}

	if !engine.GameOver() {
		drawPiece(dst, engine.Ghost(), 0x50)
	}
	drawPiece(dst, engine.Active(), 0xff)

	ebitenutil.DebugPrintAt(dst, "NEXT", previewX, previewY-20)
	next := tetris.NewPiece(engine.Next(), 1, 2)
	for _, pt := range next.Points() {
		sx := float32(previewX + pt.X*cellSize)
		sy := float32(previewY + (3-pt.Y)*cellSize)
		drawCell(dst, sx, sy, palette.RGBA(next.Shape, 0xff), true)
	}

	switch {
	case engine.GameOver():
		msg := "GAME OVER"
		if restartHint != "" {
			msg += " - press " + restartHint + " to restart"
		}
		ebitenutil.DebugPrintAt(dst, msg, boardX+30, boardY+tetris.Height*cellSize/2)
	case paused:
		ebitenutil.DebugPrintAt(dst, "PAUSED", boardX+tetris.Width*cellSize/2-20, boardY+tetris.Height*cellSize/2)
	}
}
