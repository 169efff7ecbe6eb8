// Package audio plays short synthesized cues for game events through
// the system speaker. Initialization failure is non-fatal; the game
// runs silently.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRateHz = 44100

// Player fires sound cues. The zero value is unusable; construct with
// NewPlayer.
type Player struct {
	rate  beep.SampleRate
	muted atomic.Bool
}

// NewPlayer initializes the speaker. The returned error means no audio
// device; callers should fall back to silence rather than abort.
func NewPlayer() (*Player, error) {
	rate := beep.SampleRate(sampleRateHz)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Player{rate: rate}, nil
}

// Eat plays the food-consumed blip
func (p *Player) Eat() {
	p.play(Tone(880, 50*time.Millisecond, WaveSine, p.rate))
}

// GameOver plays a short descending run
func (p *Player) GameOver() {
	p.play(beep.Seq(
		Tone(440, 120*time.Millisecond, WaveSquare, p.rate),
		Tone(330, 120*time.Millisecond, WaveSquare, p.rate),
		Tone(220, 240*time.Millisecond, WaveSquare, p.rate),
	))
}

// Toggle flips the mute state
func (p *Player) Toggle() {
	p.muted.Store(!p.muted.Load())
}

// Close shuts the speaker down
func (p *Player) Close() {
	speaker.Close()
}

func (p *Player) play(st beep.Streamer) {
	if p.muted.Load() {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: st,
		Base:     2,
		Volume:   -1,
	})
}
