package core

// GlyphSet holds the display characters for the snake's cells
type GlyphSet struct {
	Head       rune
	Horizontal rune
	Vertical   rune
	Tail       rune
}

// Contains reports whether r is one of the set's glyphs
func (g GlyphSet) Contains(r rune) bool {
	return r == g.Head || r == g.Horizontal || r == g.Vertical || r == g.Tail
}

// Body reports whether r is a body or tail glyph (anything lethal to
// run the head into)
func (g GlyphSet) Body(r rune) bool {
	return r == g.Horizontal || r == g.Vertical || r == g.Tail
}
