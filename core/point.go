package core

// Point represents a 2D grid coordinate
type Point struct {
	Row, Col int
}

// Move returns the point one cell away in the given direction
func (p Point) Move(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Back returns the point one cell away opposite the given direction
func (p Point) Back(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row - dr, Col: p.Col - dc}
}

// In reports whether the point lies inside a height×width grid
func (p Point) In(height, width int) bool {
	return p.Row >= 0 && p.Row < height && p.Col >= 0 && p.Col < width
}
