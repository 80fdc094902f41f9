// Package app wires the pieces shared by the blockfall commands: flags,
// configuration, logging, the score table, audio and the game loop.
package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/ctxlog"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/scores"
)

// Options are the command line flags common to the interactive commands.
type Options struct {
	ConfigPath string
	Seed       uint64
	LogLevel   string
	Autoplay   bool
}

// RegisterFlags defines the common flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Options {
	opts := &Options{}
	fs.StringVar(&opts.ConfigPath, "config", "", "path to an HCL config file")
	fs.Uint64Var(&opts.Seed, "seed", 0, "seed for the game sequence (0 picks one from the clock)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "log level, overriding the config file (debug, info, warn, error)")
	fs.BoolVar(&opts.Autoplay, "autoplay", false, "let the bot play")
	return opts
}

// App holds a configured game session.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	World     *loop.World
	Scheduler *loop.Scheduler
	Pause     *play.Pause

	// Recorder is nil when the score table could not be opened.
	Recorder *scores.Recorder
	// Audio is nil when audio is disabled or the device failed to open.
	Audio *audio.Player

	store *scores.Store
	bot   *play.Bot
}

// New loads the configuration named by opts and builds the session. Logs go
// to logOut. The returned context carries the logger.
func New(ctx context.Context, opts *Options, logOut io.Writer) (*App, context.Context, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(ctx, opts.ConfigPath)
		if err != nil {
			return nil, ctx, err
		}
		cfg = loaded
	}

	if opts.LogLevel != "" {
		if _, ok := ctxlog.ParseLevel(opts.LogLevel); !ok {
			return nil, ctx, fmt.Errorf("unknown log level %q", opts.LogLevel)
		}
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	logger := ctxlog.New(cfg.Log.Level, cfg.Log.Format, logOut)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured.", "level", cfg.Log.Level, "format", cfg.Log.Format)

	a := &App{
		Config: cfg,
		Logger: logger,
		Pause:  &play.Pause{},
	}

	if store, err := scores.Open(ctx, cfg.Scores.Path); err != nil {
		logger.Warn("High scores disabled.", "path", cfg.Scores.Path, "error", err)
	} else {
		a.store = store
		a.Recorder = scores.NewRecorder(store, cfg.Scores.Limit)
		if err := a.Recorder.Refresh(ctx); err != nil {
			logger.Warn("Failed to load high scores.", "error", err)
		}
	}

	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio.Volume)
		if err := player.Init(); err != nil {
			logger.Warn("Audio disabled.", "error", err)
		} else {
			a.Audio = player
		}
	}

	if opts.Autoplay {
		a.bot = play.NewBot()
		a.bot.AutoRestart = true
	}

	a.World = loop.NewWorld(cfg.Seed, cfg.TetrisRules())
	a.Scheduler = loop.NewScheduler(ctx, a.World)
	logger.Info("Session ready.", "seed", cfg.Seed, "autoplay", opts.Autoplay)
	return a, ctx, nil
}

// Listeners returns the event listeners that are available.
func (a *App) Listeners() []play.Listener {
	var listeners []play.Listener
	if a.Recorder != nil {
		listeners = append(listeners, a.Recorder)
	}
	if a.Audio != nil {
		listeners = append(listeners, a.Audio)
	}
	return listeners
}

// RegisterPlay registers the input, gravity and watch systems. When autoplay
// is on the bot's actions are merged with device.
func (a *App) RegisterPlay(device play.Input) {
	input := device
	if a.bot != nil {
		input = play.MultiInput{device, a.bot}
	}

	a.Scheduler.Register(&play.InputSystem{Source: input, Pause: a.Pause})
	a.Scheduler.Register(&play.GravitySystem{Pause: a.Pause})
	a.Scheduler.Register(&play.WatchSystem{Listeners: a.Listeners()})
}

// HighScores returns the cached top entries, or nil without a score table.
func (a *App) HighScores() []scores.Entry {
	if a.Recorder == nil {
		return nil
	}
	return a.Recorder.Top()
}

// Close releases the audio device and the score table.
func (a *App) Close() {
	if a.Audio != nil {
		a.Audio.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.Logger.Warn("Failed to close score table.", "error", err)
		}
	}
}
