package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/internal/app"
	"github.com/plus3/blockfall/play"
)

const frameInterval = 16 * time.Millisecond

func main() {
	opts := app.RegisterFlags(flag.CommandLine)
	logFile := flag.String("log-file", "", "write logs to this file (the terminal is busy drawing the game)")
	flag.Parse()

	if err := run(context.Background(), opts, *logFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *app.Options, logFile string) error {
	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	session, ctx, err := app.New(ctx, opts, logOut)
	if err != nil {
		return err
	}
	defer session.Close()

	bindings, err := play.ResolveBindings(session.Config.Bindings, lookupKey)
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}
	input := newTermInput(bindings)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session.Scheduler.Register(&eventSystem{
		events: events,
		input:  input,
		screen: screen,
		quit:   cancel,
	})
	session.RegisterPlay(input)
	session.Scheduler.Register(&renderSystem{
		screen:      screen,
		pause:       session.Pause,
		top:         session.HighScores,
		restartHint: session.Config.Bindings.Hint(play.ActionRestart),
	})

	session.Scheduler.Run(ctx, frameInterval)
	return nil
}

// pollEvents forwards screen events until the screen is finalized or done is
// closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
