package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/ctxlog"
	"github.com/plus3/blockfall/play"
)

// Player is a play.Listener that plays a cue for each event. Until Init
// succeeds every cue is dropped.
type Player struct {
	volume float64

	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
}

func NewPlayer(volume float64) *Player {
	return &Player{
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

func (p *Player) play(ctx context.Context, name string, build func() (beep.Streamer, error)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	s, err := build()
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Failed to build audio cue.", "cue", name, "error", err)
		return
	}

	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

func (p *Player) PieceLocked(ctx context.Context) {
	p.play(ctx, "lock", lockCue)
}

func (p *Player) LinesCleared(ctx context.Context, n int) {
	p.play(ctx, "lines", func() (beep.Streamer, error) { return linesCue(n) })
}

func (p *Player) GameOver(ctx context.Context, s play.Summary) {
	p.play(ctx, "game over", gameOverCue)
}

var _ play.Listener = (*Player)(nil)
