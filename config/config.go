// Package config loads blockfall's HCL configuration file.
package config

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/plus3/blockfall/ctxlog"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/tetris"
)

type Config struct {
	// Seed fixes the sequence of games. Zero asks the driver to pick one.
	Seed     uint64
	Rules    RulesConfig
	Log      LogConfig
	Audio    AudioConfig
	Scores   ScoresConfig
	Bindings Bindings
}

type RulesConfig struct {
	FallInterval float64
	LockBonus    int
	LineBonus    int
}

type LogConfig struct {
	Level  string
	Format string
}

type AudioConfig struct {
	Enabled bool
	Volume  float64
}

type ScoresConfig struct {
	Path  string
	Limit int
}

// Bindings holds the key names bound to each action. Names are resolved by
// each driver against its own key set.
type Bindings map[play.Action][]string

// Keys returns the key names bound to a.
func (b Bindings) Keys(a play.Action) []string {
	return b[a]
}

// Hint joins the key names bound to a for on-screen prompts, such as "R" or
// "R/Enter". It is empty when a has no keys.
func (b Bindings) Hint(a play.Action) string {
	return strings.Join(b[a], "/")
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	rules := tetris.DefaultRules()
	return &Config{
		Rules: RulesConfig{
			FallInterval: rules.FallInterval,
			LockBonus:    rules.LockBonus,
			LineBonus:    rules.LineBonus,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.25,
		},
		Scores: ScoresConfig{
			Path:  "blockfall.db",
			Limit: 10,
		},
		Bindings: Bindings{
			play.ActionLeft:     {"Left", "A"},
			play.ActionRight:    {"Right", "D"},
			play.ActionSoftDrop: {"Down", "S"},
			play.ActionHardDrop: {"Space"},
			play.ActionRotate:   {"Up", "W"},
			play.ActionRestart:  {"R"},
			play.ActionPause:    {"P"},
			play.ActionQuit:     {"Escape", "Q"},
		},
	}
}

// TetrisRules converts the rules block into engine rules. Spawn position is not
// configurable.
func (c *Config) TetrisRules() tetris.Rules {
	rules := tetris.DefaultRules()
	rules.FallInterval = c.Rules.FallInterval
	rules.LockBonus = c.Rules.LockBonus
	rules.LineBonus = c.Rules.LineBonus
	return rules
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if !(c.Rules.FallInterval > 0) || math.IsInf(c.Rules.FallInterval, 0) {
		errs = append(errs, fmt.Errorf("rules.fall_interval must be positive, got %v", c.Rules.FallInterval))
	}
	if c.Rules.LockBonus < 0 {
		errs = append(errs, fmt.Errorf("rules.lock_bonus must not be negative, got %d", c.Rules.LockBonus))
	}
	if c.Rules.LineBonus < 0 {
		errs = append(errs, fmt.Errorf("rules.line_bonus must not be negative, got %d", c.Rules.LineBonus))
	}
	if _, ok := ctxlog.ParseLevel(c.Log.Level); !ok {
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format %q is not one of text, json", c.Log.Format))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}
	if c.Scores.Limit <= 0 {
		errs = append(errs, fmt.Errorf("scores.limit must be positive, got %d", c.Scores.Limit))
	}
	return errors.Join(errs...)
}

// Load reads the file at path and applies it over Default.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading config file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	cfg := Default()
	parsed.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	logger.Debug("Loaded config file.", "path", path, "seed", cfg.Seed)
	return cfg, nil
}
