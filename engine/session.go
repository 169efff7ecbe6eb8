// Package engine drives the simulation: a Session owns one game's
// snake, world and score and advances tick by tick; a Loop runs the
// fixed-interval timer and terminal input around it.
package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/parameter"
	"github.com/lixenwraith/serpent/snake"
	"github.com/lixenwraith/serpent/world"
)

// Config holds the adjustable game parameters
type Config struct {
	Height int
	Width  int
	Length int

	// Seed for food placement; zero draws from the clock
	Seed int64
}

func (c Config) withDefaults() Config {
	if c.Height == 0 {
		c.Height = parameter.DefaultHeight
	}
	if c.Width == 0 {
		c.Width = parameter.DefaultWidth
	}
	if c.Length == 0 {
		c.Length = parameter.DefaultLength
	}
	return c
}

// Session is one game from spawn to loss. It has no notion of real
// time or terminals; Tick advances exactly one step, so tests and the
// Loop drive it the same way.
type Session struct {
	cfg Config

	snake     *snake.Snake
	world     *world.World
	foodEaten int
	over      bool
}

// NewSession builds a fresh game from the config
func NewSession(cfg Config) (*Session, error) {
	s := &Session{cfg: cfg.withDefaults()}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) reset() error {
	sn, err := snake.New(s.cfg.Length)
	if err != nil {
		return err
	}

	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w, err := world.New(sn, &world.Config{
		Height: s.cfg.Height,
		Width:  s.cfg.Width,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return err
	}

	s.snake = sn
	s.world = w
	s.foodEaten = 0
	s.over = false
	return nil
}

// Restart discards the current game and spawns a new one with the same
// config
func (s *Session) Restart() error {
	return s.reset()
}

// Turn forwards a steering input to the snake. Ignored once the game
// is over.
func (s *Session) Turn(d core.Direction) {
	if s.over {
		return
	}
	s.snake.Turn(d)
}

// Tick advances the game one step: move, then judge loss, then handle
// food. Returns true while the game is still running.
func (s *Session) Tick() bool {
	if s.over {
		return false
	}

	s.world.Step()
	if s.world.IsLoss() {
		s.over = true
		return false
	}
	if s.world.IsOnFood() {
		s.snake.Grow(1)
		s.foodEaten++
		s.world.EatFood()
	}
	return true
}

// World exposes the underlying world for rendering
func (s *Session) World() *world.World {
	return s.world
}

// Over reports whether the game has ended
func (s *Session) Over() bool {
	return s.over
}

// Length returns the snake's current length
func (s *Session) Length() int {
	return s.snake.Length()
}

// FoodEaten returns how many pieces of food this game has consumed
func (s *Session) FoodEaten() int {
	return s.foodEaten
}
