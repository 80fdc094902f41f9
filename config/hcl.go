package config

import "github.com/plus3/blockfall/play"

// The hcl* types mirror the file layout. Every attribute is optional and
// decodes into a pointer or slice so that absent settings keep their defaults.

type hclFile struct {
	Seed     *uint64      `hcl:"seed,optional"`
	Rules    *hclRules    `hcl:"rules,block"`
	Log      *hclLog      `hcl:"log,block"`
	Audio    *hclAudio    `hcl:"audio,block"`
	Scores   *hclScores   `hcl:"scores,block"`
	Bindings *hclBindings `hcl:"bindings,block"`
}

type hclRules struct {
	FallInterval *float64 `hcl:"fall_interval,optional"`
	LockBonus    *int     `hcl:"lock_bonus,optional"`
	LineBonus    *int     `hcl:"line_bonus,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type hclAudio struct {
	Enabled *bool    `hcl:"enabled,optional"`
	Volume  *float64 `hcl:"volume,optional"`
}

type hclScores struct {
	Path  *string `hcl:"path,optional"`
	Limit *int    `hcl:"limit,optional"`
}

type hclBindings struct {
	Left     []string `hcl:"left,optional"`
	Right    []string `hcl:"right,optional"`
	SoftDrop []string `hcl:"soft_drop,optional"`
	HardDrop []string `hcl:"hard_drop,optional"`
	Rotate   []string `hcl:"rotate,optional"`
	Restart  []string `hcl:"restart,optional"`
	Pause    []string `hcl:"pause,optional"`
	Quit     []string `hcl:"quit,optional"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (f *hclFile) apply(cfg *Config) {
	set(&cfg.Seed, f.Seed)

	if r := f.Rules; r != nil {
		set(&cfg.Rules.FallInterval, r.FallInterval)
		set(&cfg.Rules.LockBonus, r.LockBonus)
		set(&cfg.Rules.LineBonus, r.LineBonus)
	}

	if l := f.Log; l != nil {
		set(&cfg.Log.Level, l.Level)
		set(&cfg.Log.Format, l.Format)
	}

	if a := f.Audio; a != nil {
		set(&cfg.Audio.Enabled, a.Enabled)
		set(&cfg.Audio.Volume, a.Volume)
	}

	if s := f.Scores; s != nil {
		set(&cfg.Scores.Path, s.Path)
		set(&cfg.Scores.Limit, s.Limit)
	}

	if b := f.Bindings; b != nil {
		for action, keys := range map[play.Action][]string{
			play.ActionLeft:     b.Left,
			play.ActionRight:    b.Right,
			play.ActionSoftDrop: b.SoftDrop,
			play.ActionHardDrop: b.HardDrop,
			play.ActionRotate:   b.Rotate,
			play.ActionRestart:  b.Restart,
			play.ActionPause:    b.Pause,
			play.ActionQuit:     b.Quit,
		} {
			if keys != nil {
				cfg.Bindings[action] = keys
			}
		}
	}
}
