// Package snake models the snake as an ordered chain of directional
// segments. Each segment records the distance behind the head at which
// its direction takes over, so the whole body is reconstructed by
// walking length cells from the head through the chain. Segments are
// never removed; once the tail passes a segment's span it simply covers
// zero cells.
package snake

import (
	"fmt"

	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/parameter"
)

// Segment is one directional run of the body. Distance is the number of
// cells behind the head at which the run begins; the head segment sits
// at distance 0.
type Segment struct {
	Distance  int
	Direction core.Direction
}

// Snake is the segment-chain body model. It owns no position; the world
// tracks the head cell and asks the snake to advance each tick.
type Snake struct {
	length   int
	segments []Segment
	glyphs   core.GlyphSet

	// A queued turn, applied on the next Advance. Turning twice within
	// one tick replaces the earlier heading rather than stacking it.
	pending    core.Direction
	hasPending bool
}

// Config carries optional construction overrides
type Config struct {
	// Segments is the initial chain, head first. Defaults to a single
	// eastbound segment at distance 0.
	Segments []Segment

	// Glyphs overrides the display character set
	Glyphs *core.GlyphSet
}

// New creates a snake of the given starting length. Every initial
// segment must begin before the tail, i.e. at distance < length-1, so
// at least one tail cell exists behind it.
func New(length int, cfg ...*Config) (*Snake, error) {
	if length < 1 {
		return nil, &core.ConfigurationError{Reason: fmt.Sprintf("snake length %d must be positive", length)}
	}

	segments := []Segment{{Distance: 0, Direction: core.East}}
	glyphs := parameter.DefaultGlyphs
	if len(cfg) > 0 && cfg[0] != nil {
		if cfg[0].Segments != nil {
			segments = append([]Segment(nil), cfg[0].Segments...)
		}
		if cfg[0].Glyphs != nil {
			glyphs = *cfg[0].Glyphs
		}
	}

	if len(segments) == 0 {
		return nil, &core.ConfigurationError{Reason: "snake needs at least one segment"}
	}
	prev := segments[0].Distance
	for _, seg := range segments {
		if seg.Distance >= length-1 {
			return nil, &core.ConfigurationError{Reason: "segment begins at or after tail"}
		}
		if seg.Distance < prev {
			return nil, &core.ConfigurationError{Reason: "segments must be ordered by distance from head"}
		}
		prev = seg.Distance
	}

	return &Snake{
		length:   length,
		segments: segments,
		glyphs:   glyphs,
	}, nil
}

// Length returns the snake's total cell count
func (s *Snake) Length() int {
	return s.length
}

// Glyphs returns the snake's display character set
func (s *Snake) Glyphs() core.GlyphSet {
	return s.glyphs
}

// Heading returns the direction the head is currently traveling.
// A queued turn does not change the heading until the next Advance.
func (s *Snake) Heading() core.Direction {
	return s.segments[0].Direction
}

// Segments returns a copy of the segment chain, head first
func (s *Snake) Segments() []Segment {
	return append([]Segment(nil), s.segments...)
}

// Turn queues a change of heading for the next tick. The turn is
// deferred: it takes effect when the world next steps. A second Turn
// before that step replaces the first.
func (s *Snake) Turn(d core.Direction) {
	s.pending = d
	s.hasPending = true
}

// Grow adds delta cells to the snake's tail. The segment chain is
// untouched; the body walk simply extends further along the last run,
// so the tail visibly lengthens over the following ticks.
func (s *Snake) Grow(delta int) {
	s.length += delta
}

// Advance performs the per-tick segment bookkeeping and returns the
// heading for this tick. With a queued turn, every existing segment
// shifts one cell further from the head and the new heading becomes the
// head segment at distance 0. Without one, every segment but the head
// shifts, the head run extending by the cell the head is about to move
// into.
func (s *Snake) Advance() core.Direction {
	if s.hasPending {
		for i := range s.segments {
			s.segments[i].Distance++
		}
		s.segments = append([]Segment{{Distance: 0, Direction: s.pending}}, s.segments...)
		s.hasPending = false
	} else {
		for i := 1; i < len(s.segments); i++ {
			s.segments[i].Distance++
		}
	}
	return s.segments[0].Direction
}

func (s *Snake) String() string {
	return fmt.Sprintf("Snake of length %d traveling %s", s.length, s.Heading())
}
