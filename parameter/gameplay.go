package parameter

import "github.com/lixenwraith/serpent/core"

// Board dimensions
const (
	DefaultHeight = 16
	DefaultWidth  = 16
)

// Snake spawn parameters
const (
	DefaultLength = 3

	// Start position fractions: the snake spawns halfway down from the
	// upper wall and a quarter of the way in from the left wall
	StartRowDivisor = 2
	StartColDivisor = 4
)

// Speed: world steps per second, and the flag-adjustable bounds
const (
	DefaultSpeedFloat = 2.0
	MinSpeedFloat     = 0.5
	MaxSpeedFloat     = 30.0
)

// Grid glyphs
const (
	GlyphBlank  = ' '
	GlyphBorder = 'W'
	GlyphFood   = '*'
)

// DefaultGlyphs is the classic head/body/tail character set
var DefaultGlyphs = core.GlyphSet{
	Head:       'X',
	Horizontal: '-',
	Vertical:   '|',
	Tail:       'x',
}
