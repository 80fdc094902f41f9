package play

import (
	"github.com/plus3/blockfall/ctxlog"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Pause is the driver's pause switch, shared by the systems that honour it.
// A nil *Pause is never paused.
type Pause struct {
	on bool
}

func (p *Pause) On() bool {
	return p != nil && p.on
}

func (p *Pause) Set(on bool) {
	if p != nil {
		p.on = on
	}
}

func (p *Pause) Toggle() {
	p.Set(!p.On())
}

// engineActions are applied in this order within a frame, so a hard drop
// lands the piece after any rotation or shift pressed on the same frame.
var engineActions = [...]struct {
	action Action
	apply  func(*tetris.Engine)
}{
	{ActionRotate, (*tetris.Engine).Rotate},
	{ActionLeft, (*tetris.Engine).MoveLeft},
	{ActionRight, (*tetris.Engine).MoveRight},
	{ActionSoftDrop, (*tetris.Engine).MoveDown},
	{ActionHardDrop, (*tetris.Engine).HardDrop},
}

// InputSystem turns the actions reported by Source into engine commands.
// Restart is queued on the frame's commands; Pause toggles the shared switch.
type InputSystem struct {
	Source Input
	Pause  *Pause
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	engine := frame.World.Engine()
	if p, ok := s.Source.(Poller); ok {
		p.Poll(engine)
	}

	if s.Source.Pressed(ActionRestart) {
		s.Pause.Set(false)
		frame.Commands.Restart()
		return
	}

	if s.Source.Pressed(ActionPause) && !engine.GameOver() {
		s.Pause.Toggle()
	}

	if s.Pause.On() {
		return
	}

	for _, a := range engineActions {
		if engine.GameOver() {
			return
		}
		if s.Source.Pressed(a.action) {
			a.apply(engine)
		}
	}
}

// GravitySystem feeds frame time to the engine.
type GravitySystem struct {
	Pause *Pause
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	if s.Pause.On() {
		return
	}
	frame.World.Engine().Update(frame.DeltaTime)
}

// WatchSystem compares the engine's counters with the previous frame and
// tells its listeners what changed. It starts over whenever the world starts
// a new game.
type WatchSystem struct {
	Listeners []Listener

	generation int
	pieces     int
	lines      int
	over       bool
}

func (s *WatchSystem) Execute(frame *loop.UpdateFrame) {
	ctx := frame.Context
	logger := ctxlog.FromContext(ctx)
	world := frame.World
	engine := world.Engine()

	if world.Generation() != s.generation {
		// A fresh engine has spawned its first piece and nothing else.
		s.generation = world.Generation()
		s.pieces = 1
		s.lines = 0
		s.over = false
		logger.Info("Game started.", "game", world.Game(), "seed", world.Seed())
	}

	// Every lock spawns exactly one piece, including the one that ends the game.
	for ; s.pieces < engine.Pieces(); s.pieces++ {
		for _, l := range s.Listeners {
			l.PieceLocked(ctx)
		}
	}

	if n := engine.Lines() - s.lines; n > 0 {
		s.lines = engine.Lines()
		logger.Debug("Lines cleared.", "count", n, "lines", s.lines, "score", engine.Score())
		for _, l := range s.Listeners {
			l.LinesCleared(ctx, n)
		}
	}

	if engine.GameOver() && !s.over {
		s.over = true
		summary := Summary{
			Game:   world.Game(),
			Seed:   world.Seed(),
			Score:  engine.Score(),
			Lines:  engine.Lines(),
			Pieces: engine.Pieces(),
		}
		logger.Info("Game over.", "game", summary.Game, "score", summary.Score, "lines", summary.Lines, "pieces", summary.Pieces)
		for _, l := range s.Listeners {
			l.GameOver(ctx, summary)
		}
	}
}
