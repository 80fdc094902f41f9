package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/plus3/blockfall/ctxlog"
)

func main() {
	opts := soakOptions{}
	flag.DurationVar(&opts.Duration, "duration", 10*time.Second, "The longest the soak should run for.")
	flag.IntVar(&opts.Games, "games", 0, "Stop after this many finished games (0 runs for the whole duration).")
	flag.Uint64Var(&opts.Seed, "seed", 1, "Seed for the sequence of games.")
	flag.Float64Var(&opts.Step, "step", 1.0/60.0, "Simulated seconds per frame.")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error).")
	flag.Parse()

	logger := ctxlog.New(*logLevel, "text", os.Stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	logger.Info("Starting soak.", "duration", opts.Duration, "games", opts.Games, "seed", opts.Seed)
	report := soak(ctx, opts)
	logger.Info("Soak finished.", "games", report.GamesFinished, "frames", report.TotalUpdates)

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("Failed to generate report.", "error", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}
