// Package world owns the bounded grid the snake moves on: the
// authoritative head position, the food cell, and the per-tick step.
// The grid itself is derived state, rasterized on demand from the
// snake's segment chain; only the food cell persists between renders.
package world

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/parameter"
	"github.com/lixenwraith/serpent/snake"
)

// World is the grid simulation around a single snake
type World struct {
	snake  *snake.Snake
	head   core.Point
	height int
	width  int

	foodGlyph rune
	food      core.Point
	hasFood   bool

	// The cell the tail vacated on the most recent step. Still lethal
	// for that tick: the head stepping onto it is a collision, because
	// loss is judged against the body as it stood before the move.
	vacated    core.Point
	hasVacated bool

	rng *rand.Rand
}

// Config carries optional construction overrides
type Config struct {
	// Position places the head; default is half the height down and a
	// quarter of the width in.
	Position *core.Point

	// Height and Width size the grid; zero means the default 16
	Height int
	Width  int

	// FoodGlyph overrides the food display character
	FoodGlyph rune

	// Rand supplies the food placement source; seed it for
	// reproducible games. Defaults to a time-seeded source.
	Rand *rand.Rand
}

// New creates a world around the given snake and places the first
// food. The start column must leave room for the snake's initial body
// to its west, and the initial body must lie fully on the grid.
func New(s *snake.Snake, cfg ...*Config) (*World, error) {
	height := parameter.DefaultHeight
	width := parameter.DefaultWidth
	foodGlyph := rune(parameter.GlyphFood)
	var pos *core.Point
	var rng *rand.Rand

	if len(cfg) > 0 && cfg[0] != nil {
		c := cfg[0]
		if c.Height != 0 {
			height = c.Height
		}
		if c.Width != 0 {
			width = c.Width
		}
		if c.FoodGlyph != 0 {
			foodGlyph = c.FoodGlyph
		}
		pos = c.Position
		rng = c.Rand
	}

	if height < 1 || width < 1 {
		return nil, &core.ConfigurationError{Reason: fmt.Sprintf("grid %dx%d must have positive dimensions", height, width)}
	}

	head := core.Point{Row: height / parameter.StartRowDivisor, Col: width / parameter.StartColDivisor}
	if pos != nil {
		head = *pos
	}
	if head.Col < s.Length()-1 {
		return nil, &core.ConfigurationError{
			Reason: fmt.Sprintf("snake of length %d is too long to start at column %d", s.Length(), head.Col),
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := &World{
		snake:     s,
		head:      head,
		height:    height,
		width:     width,
		foodGlyph: foodGlyph,
		rng:       rng,
	}

	// Surface a body that hangs off the grid as a construction error,
	// not a deferred rasterization failure
	if _, err := w.Grid(); err != nil {
		return nil, &core.ConfigurationError{Reason: err.Error()}
	}

	w.PlaceFood()
	return w, nil
}

// Snake returns the world's snake
func (w *World) Snake() *snake.Snake {
	return w.snake
}

// Head returns the current head position
func (w *World) Head() core.Point {
	return w.head
}

// Size returns the grid dimensions
func (w *World) Size() (height, width int) {
	return w.height, w.width
}

// Step advances the simulation one tick: the snake's segment chain
// shifts (consuming any queued turn), and the head moves one cell along
// the resulting heading. Step never fails; it may leave the head out of
// bounds or on the body, which IsLoss detects afterwards.
func (w *World) Step() {
	// Remember the tail cell before the move; the body check in IsLoss
	// must see the snake as it stood when the head entered its new cell
	tail := w.snake.Trace(w.head, w.snake.Length())
	w.vacated = tail[len(tail)-1].Point
	w.hasVacated = true

	dir := w.snake.Advance()
	w.head = w.head.Move(dir)
}

// IsLoss reports whether the game is over: the head has left the grid
// or collided with the snake's own body. Loss is a normal terminal
// condition, not an error.
func (w *World) IsLoss() bool {
	if !w.head.In(w.height, w.width) {
		return true
	}
	cells := w.snake.Trace(w.head, w.snake.Length())
	for _, c := range cells[1:] {
		if c.Point == w.head {
			return true
		}
	}
	return w.hasVacated && w.head == w.vacated
}

// IsOnFood reports whether the head sits on the food cell
func (w *World) IsOnFood() bool {
	return w.hasFood && w.head == w.food
}
