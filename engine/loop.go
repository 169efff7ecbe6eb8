package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/input"
	"github.com/lixenwraith/serpent/render"
)

// Sounds is the cue surface the loop fires game events into
type Sounds interface {
	Eat()
	GameOver()
	Toggle()
}

// NopSounds is the silent fallback when audio is unavailable
type NopSounds struct{}

func (NopSounds) Eat()      {}
func (NopSounds) GameOver() {}
func (NopSounds) Toggle()   {}

// Loop runs a session in real time: a fixed-interval ticker advances
// the world while an input goroutine feeds terminal events into the
// select. Input is handled even while paused or after loss, so quit
// and restart always work.
type Loop struct {
	screen  tcell.Screen
	session *Session
	view    *render.View
	keys    *input.KeyTable
	sounds  Sounds

	interval time.Duration
	paused   bool
}

// NewLoop wires a loop from its collaborators. Speed is in world steps
// per second.
func NewLoop(screen tcell.Screen, session *Session, view *render.View, keys *input.KeyTable, sounds Sounds, speed float64) *Loop {
	return &Loop{
		screen:   screen,
		session:  session,
		view:     view,
		keys:     keys,
		sounds:   sounds,
		interval: time.Duration(float64(time.Second) / speed),
	}
}

// Run plays until the player quits. A finished game stays on screen
// with its report until restart or quit.
func (l *Loop) Run() error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go l.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	if err := l.draw(); err != nil {
		return err
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				l.screen.Sync()
				if err := l.draw(); err != nil {
					return err
				}
				continue
			}

			intent := l.keys.Translate(ev)
			switch intent.Type {
			case input.IntentQuit:
				return nil
			case input.IntentTurn:
				if !l.paused {
					l.session.Turn(intent.Direction)
				}
			case input.IntentPause:
				if !l.session.Over() {
					l.paused = !l.paused
					if err := l.draw(); err != nil {
						return err
					}
				}
			case input.IntentRestart:
				if err := l.session.Restart(); err != nil {
					return err
				}
				l.paused = false
				if err := l.draw(); err != nil {
					return err
				}
			case input.IntentToggleMute:
				l.sounds.Toggle()
			}

		case <-ticker.C:
			if l.paused || l.session.Over() {
				continue
			}

			eaten := l.session.FoodEaten()
			running := l.session.Tick()
			switch {
			case !running:
				l.sounds.GameOver()
			case l.session.FoodEaten() > eaten:
				l.sounds.Eat()
			}

			if err := l.draw(); err != nil {
				return err
			}
		}
	}
}

func (l *Loop) draw() error {
	return l.view.Draw(l.session.World(), render.Stats{
		Length:    l.session.Length(),
		FoodEaten: l.session.FoodEaten(),
	}, l.paused, l.session.Over())
}
