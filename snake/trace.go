package snake

import "github.com/lixenwraith/serpent/core"

// Cell is one body cell produced by tracing the chain: its grid point
// and the direction of the segment run covering it.
type Cell struct {
	Point     core.Point
	Direction core.Direction
}

// Trace walks n cells back from the head through the segment chain and
// returns them head first. Cell 0 is the head itself. Each cell steps
// one grid position opposite its segment's direction; a run spans from
// its segment's distance up to the next segment's distance, and the
// last run continues indefinitely, so n may exceed the snake's length
// to recover recently vacated cells.
//
// The walk is pure coordinate arithmetic; bounds checking is the
// caller's concern.
func (s *Snake) Trace(head core.Point, n int) []Cell {
	cells := make([]Cell, 0, n)
	pointer := head
	idx := 0
	for d := 0; d < n; d++ {
		for idx+1 < len(s.segments) && s.segments[idx+1].Distance <= d {
			idx++
		}
		dir := s.segments[idx].Direction
		cells = append(cells, Cell{Point: pointer, Direction: dir})
		pointer = pointer.Back(dir)
	}
	return cells
}
