package world

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/serpent/core"
)

func TestGridScenario(t *testing.T) {
	w := newTestWorld(t, 3, nil)

	grid, err := w.Grid()
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}

	if grid[8][4] != 'X' {
		t.Errorf("Expected head glyph at (8,4), got %q", grid[8][4])
	}
	if grid[8][3] != '-' {
		t.Errorf("Expected horizontal body glyph at (8,3), got %q", grid[8][3])
	}
	if grid[8][2] != 'x' {
		t.Errorf("Expected tail glyph at (8,2), got %q", grid[8][2])
	}
}

func TestGridSingleHeadAndTail(t *testing.T) {
	w := newTestWorld(t, 4, nil)

	// Bend the body so horizontal and vertical glyphs both appear
	w.Snake().Turn(core.North)
	w.Step()
	w.Step()

	grid, err := w.Grid()
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}

	heads, tails, horizontals, verticals := 0, 0, 0, 0
	for _, row := range grid {
		for _, cell := range row {
			switch cell {
			case 'X':
				heads++
			case 'x':
				tails++
			case '-':
				horizontals++
			case '|':
				verticals++
			}
		}
	}

	if heads != 1 {
		t.Errorf("Expected exactly one head glyph, got %d", heads)
	}
	if tails != 1 {
		t.Errorf("Expected exactly one tail glyph, got %d", tails)
	}
	if horizontals == 0 || verticals == 0 {
		t.Errorf("Expected both body orientations on a bent snake, got %d horizontal, %d vertical",
			horizontals, verticals)
	}
	if heads+tails+horizontals+verticals != 4 {
		t.Errorf("Expected 4 snake cells, got %d", heads+tails+horizontals+verticals)
	}
}

func TestGridPreservesFood(t *testing.T) {
	w := newTestWorld(t, 3, nil)

	food, ok := w.Food()
	if !ok {
		t.Fatal("Expected food placed at construction")
	}

	// Food is persisted state; repeated rasterization must re-apply it
	for i := 0; i < 3; i++ {
		grid, err := w.Grid()
		if err != nil {
			t.Fatalf("Grid failed: %v", err)
		}
		if grid[food.Row][food.Col] != '*' {
			t.Errorf("Render %d: expected food glyph at (%d,%d), got %q",
				i, food.Row, food.Col, grid[food.Row][food.Col])
		}
	}
}

func TestGridHeadCoversFood(t *testing.T) {
	w := newTestWorld(t, 3, nil)

	w.food = w.Head()
	w.hasFood = true

	grid, err := w.Grid()
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	if grid[8][4] != 'X' {
		t.Errorf("Expected head glyph over food, got %q", grid[8][4])
	}
}

func TestGridOutOfBounds(t *testing.T) {
	w := newTestWorld(t, 3, &Config{Position: &core.Point{Row: 8, Col: 14}})

	w.Step()
	w.Step() // head leaves the grid

	_, err := w.Grid()
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("Expected OutOfBoundsError with head off the grid, got %v", err)
	}
	if oob.Point != (core.Point{Row: 8, Col: 16}) {
		t.Errorf("Expected offending point (8,16), got (%d,%d)", oob.Point.Row, oob.Point.Col)
	}
}

func TestRenderBorder(t *testing.T) {
	w := newTestWorld(t, 3, nil)

	out, err := w.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 18 {
		t.Fatalf("Expected 18 lines for a 16-high grid, got %d", len(lines))
	}

	full := strings.Repeat("W", 18)
	if lines[0] != full {
		t.Errorf("Expected top border %q, got %q", full, lines[0])
	}
	if lines[17] != full {
		t.Errorf("Expected bottom border %q, got %q", full, lines[17])
	}
	for i := 1; i < 17; i++ {
		if len(lines[i]) != 18 || lines[i][0] != 'W' || lines[i][17] != 'W' {
			t.Errorf("Line %d: expected W-framed row, got %q", i, lines[i])
		}
	}

	if !strings.Contains(out, "X") {
		t.Error("Expected rendered head glyph")
	}
	if !strings.Contains(out, "*") {
		t.Error("Expected rendered food glyph")
	}
}
