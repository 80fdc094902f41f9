// Package debugui draws Dear ImGui windows over a running game.
// Items are queued by ImguiSystem and rendered when the frame's commands are
// flushed, after every other system has finished with the engine.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Drivers check it before treating key presses as game input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every item and refreshes InputState.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState *ImguiInputState
}

// Add appends items to the end of the draw order.
func (s *ImguiSystem) Add(items ...ImguiItem) {
	s.Items = append(s.Items, items...)
}

func (s *ImguiSystem) Execute(frame *loop.UpdateFrame) {
	if s.InputState != nil {
		io := imgui.CurrentIO()
		s.InputState.WantCaptureMouse = io.WantCaptureMouse()
		s.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}
