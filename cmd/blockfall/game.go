package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/play"
)

// Game implements ebiten.Game. Each tick runs one scheduler frame inside the
// ImGui frame; drawing reads the engine without changing it.
type Game struct {
	backend   *debugui_ebiten.ImguiBackend
	scheduler *loop.Scheduler
	world     *loop.World
	pause     *play.Pause
	keys      play.Input

	// restartHint names the keys bound to restart.
	restartHint string
}

func (g *Game) Update() error {
	if g.keys.Pressed(play.ActionQuit) {
		return ebiten.Termination
	}
	g.backend.Frame(g.scheduler, 1.0/float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawBoard(screen, g.world.Engine(), g.pause.On(), g.restartHint)
	g.backend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
