package main

import (
	"context"
	"runtime"
	"time"

	"github.com/plus3/blockfall/ctxlog"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/tetris"
)

type soakOptions struct {
	Duration time.Duration
	Games    int
	Seed     uint64
	Step     float64
}

// tally collects finished games.
type tally struct {
	locks     int
	summaries []play.Summary
}

func (t *tally) PieceLocked(ctx context.Context) {
	t.locks++
}

func (t *tally) LinesCleared(ctx context.Context, n int) {}

func (t *tally) GameOver(ctx context.Context, s play.Summary) {
	t.summaries = append(t.summaries, s)
	ctxlog.FromContext(ctx).Debug("Soak game finished.", "game", s.Game, "score", s.Score, "lines", s.Lines)
}

// soak lets the bot play with a fixed step until the duration elapses or
// enough games have finished.
func soak(ctx context.Context, opts soakOptions) *Report {
	world := loop.NewWorld(opts.Seed, tetris.DefaultRules())
	scheduler := loop.NewScheduler(ctx, world)

	bot := play.NewBot()
	bot.AutoRestart = true
	results := &tally{}

	scheduler.Register(&play.InputSystem{Source: bot})
	scheduler.Register(&play.GravitySystem{})
	scheduler.Register(&play.WatchSystem{Listeners: []play.Listener{results}})

	report := &Report{
		Duration: opts.Duration,
		Games:    opts.Games,
		Seed:     opts.Seed,
		Step:     opts.Step,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(ctx, opts.Duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if opts.Games > 0 && len(results.summaries) >= opts.Games {
				break Loop
			}

			updateStart := time.Now()
			scheduler.Once(opts.Step)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.addGames(results.summaries, results.locks)
	report.Systems = scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	return report
}
