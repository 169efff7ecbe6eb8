package world

import "github.com/lixenwraith/serpent/core"

// Food returns the current food cell, if one is placed
func (w *World) Food() (core.Point, bool) {
	return w.food, w.hasFood
}

// PlaceFood puts one piece of food on a uniformly random cell not
// occupied by the snake, resampling until a free cell comes up. With
// one free cell on a saturated board this still terminates; boards
// nearly the size of the snake would want a free-list instead.
func (w *World) PlaceFood() {
	w.placeFoodAvoiding(core.Point{Row: -1, Col: -1})
}

// EatFood clears the food under the head and places a replacement,
// never on the just-vacated cell. The caller grows the snake; the
// world only manages the food.
func (w *World) EatFood() {
	eaten := w.food
	w.hasFood = false
	w.placeFoodAvoiding(eaten)
}

func (w *World) placeFoodAvoiding(exclude core.Point) {
	occupied := make(map[core.Point]bool, w.snake.Length())
	for _, c := range w.snake.Trace(w.head, w.snake.Length()) {
		occupied[c.Point] = true
	}

	for {
		p := core.Point{Row: w.rng.Intn(w.height), Col: w.rng.Intn(w.width)}
		if occupied[p] || p == exclude {
			continue
		}
		w.food = p
		w.hasFood = true
		return
	}
}
