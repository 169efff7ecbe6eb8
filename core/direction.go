package core

import "fmt"

// Direction is a cardinal heading on the grid
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Delta returns the per-step row/col displacement for the direction.
// Rows grow downward, so North is -1.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default: // West
		return 0, -1
	}
}

// Horizontal reports whether the direction runs along a row
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// Code returns the single-character wire code for the direction
func (d Direction) Code() byte {
	switch d {
	case North:
		return 'N'
	case South:
		return 'S'
	case East:
		return 'E'
	default:
		return 'W'
	}
}

func (d Direction) String() string {
	return string(d.Code())
}

// ParseDirection maps a single-character code (N/S/E/W) to a Direction
func ParseDirection(c byte) (Direction, error) {
	switch c {
	case 'N':
		return North, nil
	case 'S':
		return South, nil
	case 'E':
		return East, nil
	case 'W':
		return West, nil
	}
	return North, fmt.Errorf("unknown direction code %q", c)
}
