// Package audio plays the editor's error bell.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	bellFreq     = 880.0
	bellDuration = 60 * time.Millisecond
	bufferPeriod = 100 * time.Millisecond
)

// Bell plays a short tone when the editor rejects a command
// A nil or disabled Bell is silent; all methods are safe for concurrent use
type Bell struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewBell opens the audio device unless enabled is false
// Volume is linear in [0, 1]; the bell stays silent if the device cannot be opened
func NewBell(enabled bool, volume float64) (*Bell, error) {
	b := &Bell{mixer: &beep.Mixer{}, volume: volume}
	if !enabled {
		return b, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferPeriod)); err != nil {
		return b, fmt.Errorf("audio device: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return b, nil
}

// Ring queues one bell tone without blocking
func (b *Bell) Ring() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return
	}

	tone, err := Tone(sampleRate, bellFreq, bellDuration, b.volume)
	if err != nil {
		return
	}
	speaker.Lock()
	b.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops playback and releases the audio device
func (b *Bell) Close() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.initialized = false
}

// Tone is a sine of freq Hz lasting d at linear volume
func Tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return withVolume(beep.Take(sr.N(d), sine), volume), nil
}

// withVolume scales s linearly; Log2(0) is -Inf, so zero volume is silent
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
