package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/ctxlog"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/scores"
)

// termScreen is the part of tcell.Screen the terminal systems use.
type termScreen interface {
	canvas
	Clear()
	Show()
	Sync()
}

// eventSystem drains the terminal events that arrived since the last frame
// into the key buffer. It must run before the input system.
type eventSystem struct {
	events <-chan tcell.Event
	input  *termInput
	screen termScreen
	quit   func()
}

func (s *eventSystem) Execute(frame *loop.UpdateFrame) {
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if s.input.Feed(ev) {
					ctxlog.FromContext(frame.Context).Info("Quit.", "games", frame.World.Generation())
					s.quit()
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return
		}
	}
}

// renderSystem redraws the screen once the frame's commands are applied, so a
// restart shows the new game immediately.
type renderSystem struct {
	screen      termScreen
	pause       *play.Pause
	top         func() []scores.Entry
	restartHint string
}

func (s *renderSystem) Execute(frame *loop.UpdateFrame) {
	world := frame.World
	frame.Commands.Defer(func() {
		s.screen.Clear()
		draw(s.screen, view{
			engine:      world.Engine(),
			paused:      s.pause.On(),
			top:         s.top(),
			restartHint: s.restartHint,
		})
		s.screen.Show()
	})
}
