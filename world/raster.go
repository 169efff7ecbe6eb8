package world

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/parameter"
)

// OutOfBoundsError reports a body cell falling outside the grid during
// rasterization. It indicates broken step/turn bookkeeping and is
// fatal; a lost game never produces it because the driver stops
// rendering once IsLoss reports true.
type OutOfBoundsError struct {
	Point core.Point
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("snake is out of bounds at (%d,%d)", e.Point.Row, e.Point.Col)
}

// Grid rasterizes the current state into a height×width rune matrix:
// blank cells, the persisted food glyph, and the snake walked head to
// tail with direction-appropriate body glyphs. The head and tail cells
// are overwritten with their own glyphs last, so a head sitting on food
// shows the head.
func (w *World) Grid() ([][]rune, error) {
	grid := make([][]rune, w.height)
	for r := range grid {
		grid[r] = make([]rune, w.width)
		for c := range grid[r] {
			grid[r][c] = parameter.GlyphBlank
		}
	}

	if w.hasFood {
		grid[w.food.Row][w.food.Col] = w.foodGlyph
	}

	glyphs := w.snake.Glyphs()
	cells := w.snake.Trace(w.head, w.snake.Length())
	for _, c := range cells {
		if !c.Point.In(w.height, w.width) {
			return nil, &OutOfBoundsError{Point: c.Point}
		}
		if c.Direction.Horizontal() {
			grid[c.Point.Row][c.Point.Col] = glyphs.Horizontal
		} else {
			grid[c.Point.Row][c.Point.Col] = glyphs.Vertical
		}
	}

	tail := cells[len(cells)-1].Point
	grid[tail.Row][tail.Col] = glyphs.Tail
	grid[w.head.Row][w.head.Col] = glyphs.Head

	return grid, nil
}

// Render produces the bordered text view of the grid. Pure read; no
// state changes.
func (w *World) Render() (string, error) {
	grid, err := w.Grid()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow((w.height + 2) * (w.width + 3))

	border := strings.Repeat(string(parameter.GlyphBorder), w.width+2)
	b.WriteString(border)
	b.WriteByte('\n')
	for _, row := range grid {
		b.WriteRune(parameter.GlyphBorder)
		for _, cell := range row {
			b.WriteRune(cell)
		}
		b.WriteRune(parameter.GlyphBorder)
		b.WriteByte('\n')
	}
	b.WriteString(border)

	return b.String(), nil
}
