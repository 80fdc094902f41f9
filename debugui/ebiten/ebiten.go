// Package ebiten runs Dear ImGui on top of an Ebiten game.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/loop"
)

// ImguiBackend wraps cimgui-go's Ebiten backend and brackets each scheduler
// frame with the ImGui frame.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the ImGui context and the Ebiten window.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// Frame runs one scheduler frame inside an ImGui frame, so deferred ImGui
// items render into it.
func (b *ImguiBackend) Frame(scheduler *loop.Scheduler, dt float64) {
	b.BeginFrame()
	scheduler.Once(dt)
	b.EndFrame()
}

// Overlay draws the ImGui output on top of screen.
func (b *ImguiBackend) Overlay(screen *ebiten.Image) {
	b.Draw(screen)
}
