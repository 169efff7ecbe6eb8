// Package render draws the world onto a tcell screen: the bordered
// grid, a status line, and the pause/game-over overlays. The plain-text
// rendering of the grid itself lives with the world; this package only
// puts frames on a terminal.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/parameter"
	"github.com/lixenwraith/serpent/world"
)

// Stats is the per-frame score readout
type Stats struct {
	Length    int
	FoodEaten int
}

// View renders frames to a terminal screen
type View struct {
	screen tcell.Screen

	borderStyle tcell.Style
	snakeStyle  tcell.Style
	headStyle   tcell.Style
	foodStyle   tcell.Style
	textStyle   tcell.Style
	alertStyle  tcell.Style
}

// NewView creates a view on the given screen
func NewView(screen tcell.Screen) *View {
	return &View{
		screen:      screen,
		borderStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
		snakeStyle:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
		headStyle:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		foodStyle:   tcell.StyleDefault.Foreground(tcell.ColorRed),
		textStyle:   tcell.StyleDefault,
		alertStyle:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
}

// Draw renders one frame. After a loss the grid is left as the final
// frame showed it (the head may be off the board, which the world
// refuses to rasterize) and only the report overlay is painted on top.
func (v *View) Draw(w *world.World, st Stats, paused, over bool) error {
	height, width := w.Size()

	if !over {
		grid, err := w.Grid()
		if err != nil {
			return err
		}

		v.screen.Clear()
		v.drawBorder(height, width)

		glyphs := w.Snake().Glyphs()
		food, hasFood := w.Food()
		for r, row := range grid {
			for c, cell := range row {
				style := v.textStyle
				switch {
				case cell == glyphs.Head:
					style = v.headStyle
				case glyphs.Body(cell):
					style = v.snakeStyle
				case hasFood && food.Row == r && food.Col == c:
					style = v.foodStyle
				}
				v.screen.SetContent(c+1, r+1, cell, nil, style)
			}
		}

		status := fmt.Sprintf(" Length: %d   Food eaten: %d ", st.Length, st.FoodEaten)
		v.drawText(1, height+2, status, v.textStyle)
	}

	if paused {
		v.drawCentered(width, height/2+1, "PAUSED", v.alertStyle)
	}
	if over {
		v.drawCentered(width, height/2, "GAME OVER", v.alertStyle)
		v.drawCentered(width, height/2+1, fmt.Sprintf("length %d, food eaten %d", st.Length, st.FoodEaten), v.textStyle)
		v.drawCentered(width, height/2+2, "r: restart  q: quit", v.textStyle)
	}

	v.screen.Show()
	return nil
}

// drawBorder frames the grid with the wall glyph. Grid cell (0,0)
// lands at screen (1,1).
func (v *View) drawBorder(height, width int) {
	for x := 0; x < width+2; x++ {
		v.screen.SetContent(x, 0, parameter.GlyphBorder, nil, v.borderStyle)
		v.screen.SetContent(x, height+1, parameter.GlyphBorder, nil, v.borderStyle)
	}
	for y := 1; y <= height; y++ {
		v.screen.SetContent(0, y, parameter.GlyphBorder, nil, v.borderStyle)
		v.screen.SetContent(width+1, y, parameter.GlyphBorder, nil, v.borderStyle)
	}
}

func (v *View) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// drawCentered centers text horizontally over the bordered grid
func (v *View) drawCentered(width, y int, text string, style tcell.Style) {
	x := (width + 2 - len(text)) / 2
	if x < 0 {
		x = 0
	}
	v.drawText(x, y, text, style)
}
