package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/internal/app"
	"github.com/plus3/blockfall/play"
)

func main() {
	opts := app.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := run(context.Background(), opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *app.Options) error {
	session, _, err := app.New(ctx, opts, os.Stderr)
	if err != nil {
		return err
	}
	defer session.Close()

	bindings, err := play.ResolveBindings(session.Config.Bindings, lookupKey)
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}

	backend := debugui_ebiten.NewImguiBackend("blockfall", windowWidth, windowHeight)

	uiState := &debugui.ImguiInputState{}
	keys := &keyboard{bindings: bindings, ui: uiState}
	modal := debugui.NewGameOverModal(session.World)

	session.RegisterPlay(play.MultiInput{keys, modal})

	ui := &debugui.ImguiSystem{InputState: uiState}
	ui.Add(
		debugui.NewHUD(session.World, session.Pause),
		modal.Item(),
		debugui.NewPerformanceStats(session.Scheduler, 120),
		debugui.NewHighScores(session.HighScores),
	)
	session.Scheduler.Register(ui)

	game := &Game{
		backend:   backend,
		scheduler: session.Scheduler,
		world:     session.World,
		pause:     session.Pause,
		keys:      keys,

		restartHint: session.Config.Bindings.Hint(play.ActionRestart),
	}

	session.Logger.Info("Starting window.")
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	session.Logger.Info("Window closed.", "games", session.World.Generation(), "frames", session.Scheduler.GetStats().Frames)
	return nil
}
