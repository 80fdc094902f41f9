// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

const (
	lockTone     = 220.0
	lockDuration = 40 * time.Millisecond

	// Line clears climb in major thirds from C5, one note per row.
	lineRoot     = 523.25
	lineDuration = 80 * time.Millisecond

	gameOverDuration = 200 * time.Millisecond
)

var gameOverTones = [...]float64{392.00, 329.63, 261.63}

// note is a sine tone of fixed length that fades out over its last quarter.
func note(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create %v Hz tone: %w", freq, err)
	}
	n := sampleRate.N(d)
	return &fade{streamer: beep.Take(n, sine), total: n, release: n / 4}, nil
}

// chord mixes a note with its octave.
func chord(freq float64, d time.Duration) (beep.Streamer, error) {
	root, err := note(freq, d)
	if err != nil {
		return nil, err
	}
	octave, err := note(freq*2, d)
	if err != nil {
		return nil, err
	}
	return beep.Mix(withVolume(root, 0.7), withVolume(octave, 0.3)), nil
}

func lockCue() (beep.Streamer, error) {
	return note(lockTone, lockDuration)
}

func linesCue(n int) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, n)
	for i := 0; i < n; i++ {
		s, err := chord(lineRoot*math.Pow(2, float64(4*i)/12), lineDuration)
		if err != nil {
			return nil, err
		}
		notes = append(notes, s)
	}
	return beep.Seq(notes...), nil
}

func gameOverCue() (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(gameOverTones))
	for _, freq := range gameOverTones {
		s, err := note(freq, gameOverDuration)
		if err != nil {
			return nil, err
		}
		notes = append(notes, s)
	}
	return beep.Seq(notes...), nil
}

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// fade ramps the last release samples of a total-sample stream down to zero.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.position >= start && f.release > 0 {
			gain := float64(f.total-f.position) / float64(f.release)
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error {
	return f.streamer.Err()
}
