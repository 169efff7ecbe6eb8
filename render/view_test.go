package render

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/snake"
	"github.com/lixenwraith/serpent/world"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 24)
	return screen
}

func newTestWorld(t *testing.T) *world.World {
	t.Helper()

	s, err := snake.New(3)
	if err != nil {
		t.Fatalf("snake.New failed: %v", err)
	}
	w, err := world.New(s, &world.Config{Rand: rand.New(rand.NewSource(1))})
	if err != nil {
		t.Fatalf("world.New failed: %v", err)
	}
	return w
}

func cellRune(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()

	contents, width, _ := screen.GetContents()
	return contents[y*width+x].Runes[0]
}

func TestDrawFrame(t *testing.T) {
	screen := newTestScreen(t)
	w := newTestWorld(t)

	view := NewView(screen)
	if err := view.Draw(w, Stats{Length: 3, FoodEaten: 0}, false, false); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	// Border corners: grid cell (0,0) sits at screen (1,1)
	for _, corner := range [][2]int{{0, 0}, {17, 0}, {0, 17}, {17, 17}} {
		if r := cellRune(t, screen, corner[0], corner[1]); r != 'W' {
			t.Errorf("Expected border at (%d,%d), got %q", corner[0], corner[1], r)
		}
	}

	// Head at grid (8,4) -> screen (5,9)
	if r := cellRune(t, screen, 5, 9); r != 'X' {
		t.Errorf("Expected head glyph at screen (5,9), got %q", r)
	}
	if r := cellRune(t, screen, 4, 9); r != '-' {
		t.Errorf("Expected body glyph at screen (4,9), got %q", r)
	}
	if r := cellRune(t, screen, 3, 9); r != 'x' {
		t.Errorf("Expected tail glyph at screen (3,9), got %q", r)
	}

	// Status line below the bottom border
	if r := cellRune(t, screen, 2, 18); r != 'L' {
		t.Errorf("Expected status line to start with Length, got %q", r)
	}
}

func TestDrawGameOverSkipsGrid(t *testing.T) {
	screen := newTestScreen(t)
	w := newTestWorld(t)

	// Drive the head off the board; rasterization would now fail
	for i := 0; i < 12; i++ {
		w.Step()
	}
	if !w.IsLoss() {
		t.Fatal("Expected lost world")
	}

	view := NewView(screen)
	if err := view.Draw(w, Stats{Length: 3, FoodEaten: 0}, false, true); err != nil {
		t.Fatalf("Expected game-over draw to skip rasterization, got %v", err)
	}

	// The overlay must be on screen
	contents, width, height := screen.GetContents()
	found := false
	for y := 0; y < height && !found; y++ {
		line := make([]rune, 0, width)
		for x := 0; x < width; x++ {
			line = append(line, contents[y*width+x].Runes[0])
		}
		if containsRunes(line, "GAME OVER") {
			found = true
		}
	}
	if !found {
		t.Error("Expected GAME OVER overlay text")
	}
}

func containsRunes(line []rune, sub string) bool {
	s := string(line)
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func TestDrawPausedOverlay(t *testing.T) {
	screen := newTestScreen(t)
	w := newTestWorld(t)

	view := NewView(screen)
	if err := view.Draw(w, Stats{Length: 3, FoodEaten: 0}, true, false); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	contents, width, height := screen.GetContents()
	found := false
	for y := 0; y < height && !found; y++ {
		line := make([]rune, 0, width)
		for x := 0; x < width; x++ {
			line = append(line, contents[y*width+x].Runes[0])
		}
		if containsRunes(line, "PAUSED") {
			found = true
		}
	}
	if !found {
		t.Error("Expected PAUSED overlay text")
	}
}
