package core

import "testing"

func TestDirectionDeltas(t *testing.T) {
	cases := []struct {
		dir    Direction
		dr, dc int
	}{
		{North, -1, 0},
		{South, 1, 0},
		{East, 0, 1},
		{West, 0, -1},
	}

	for _, c := range cases {
		dr, dc := c.dir.Delta()
		if dr != c.dr || dc != c.dc {
			t.Errorf("Expected %s delta (%d,%d), got (%d,%d)", c.dir, c.dr, c.dc, dr, dc)
		}
	}
}

func TestDirectionCodes(t *testing.T) {
	for _, d := range []Direction{North, South, East, West} {
		parsed, err := ParseDirection(d.Code())
		if err != nil {
			t.Fatalf("ParseDirection(%q) failed: %v", d.Code(), err)
		}
		if parsed != d {
			t.Errorf("Expected %s to round-trip through its code, got %s", d, parsed)
		}
	}

	if _, err := ParseDirection('X'); err == nil {
		t.Error("Expected error for unknown direction code")
	}
}

func TestDirectionHorizontal(t *testing.T) {
	if !East.Horizontal() || !West.Horizontal() {
		t.Error("Expected East and West to be horizontal")
	}
	if North.Horizontal() || South.Horizontal() {
		t.Error("Expected North and South to be vertical")
	}
}

func TestPointMove(t *testing.T) {
	p := Point{Row: 5, Col: 5}

	if got := p.Move(North); got != (Point{Row: 4, Col: 5}) {
		t.Errorf("Expected (4,5), got (%d,%d)", got.Row, got.Col)
	}
	if got := p.Move(East).Back(East); got != p {
		t.Errorf("Expected Move then Back to return to origin, got (%d,%d)", got.Row, got.Col)
	}
}

func TestPointIn(t *testing.T) {
	if !(Point{Row: 0, Col: 0}).In(16, 16) {
		t.Error("Expected origin to be in bounds")
	}
	if (Point{Row: 16, Col: 0}).In(16, 16) {
		t.Error("Expected row 16 to be out of bounds on a 16-high grid")
	}
	if (Point{Row: 0, Col: -1}).In(16, 16) {
		t.Error("Expected negative column to be out of bounds")
	}
}
