// Package sound synthesizes the engine note heard in the simulation screen.
package sound

import (
	"fmt"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate = 44100

	channels       = 2
	bytesPerSample = 2
	frameBytes     = channels * bytesPerSample
	amplitude      = 12000.0
)

// EngineSound is an endless PCM stream (16-bit little endian stereo) whose
// pitch follows the engine's firing frequency. The player pulls from it on
// its own goroutine, so parameters are guarded by a mutex.
type EngineSound struct {
	mutex      sync.Mutex
	sampleRate int
	frequency  float64 // firing pulses per second
	throttle   float64
	running    bool
	phase      float64 // position within the current pulse, 0 to <1
	rumble     float64 // slow phase for the low end
}

// NewEngineSound creates a silent stream
func NewEngineSound(sampleRate int) *EngineSound {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}
	return &EngineSound{sampleRate: sampleRate}
}

// Set updates the note from the engine, once per tick
func (s *EngineSound) Set(frequency, throttle float64, running bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.frequency = math.Max(frequency, 0)
	s.throttle = math.Min(math.Max(throttle, 0), 1)
	s.running = running
}

// Read fills p with whole stereo frames. It never ends.
func (s *EngineSound) Read(p []byte) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	frames := len(p) / frameBytes
	step := s.frequency / float64(s.sampleRate)
	volume := 0.35 + 0.65*s.throttle

	for i := 0; i < frames; i++ {
		var v float64
		if s.running && s.frequency > 0 {
			// each combustion pulse is a decaying thump, with a sine underneath
			pulse := math.Exp(-6*s.phase) * (1 - 2*s.phase)
			body := math.Sin(2 * math.Pi * s.rumble)
			v = (0.7*pulse + 0.3*body) * volume

			s.phase += step
			s.phase -= math.Floor(s.phase)
			s.rumble += step / 2
			s.rumble -= math.Floor(s.rumble)
		}

		sample := int16(v * amplitude)
		for ch := 0; ch < channels; ch++ {
			base := i*frameBytes + ch*bytesPerSample
			p[base] = byte(sample)
			p[base+1] = byte(sample >> 8)
		}
	}
	return frames * frameBytes, nil
}

// Player plays an EngineSound through an ebiten audio context
type Player struct {
	sound  *EngineSound
	player *audio.Player
}

// NewPlayer starts streaming sound on ctx
func NewPlayer(ctx *audio.Context, sound *EngineSound) (*Player, error) {
	p, err := ctx.NewPlayer(sound)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player: %w", err)
	}
	p.SetVolume(0.6)
	p.Play()
	return &Player{sound: sound, player: p}, nil
}

// Sound returns the stream being played
func (p *Player) Sound() *EngineSound {
	return p.sound
}

// Close stops playback
func (p *Player) Close() error {
	return p.player.Close()
}
