package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// doorWidth is the number of columns one door and its gap occupy.
const doorWidth = 6

// View is everything the floor screen shows.
type View struct {
	Floor        int
	Lives        int
	MaxLives     int
	Doors        int
	Selected     int      // highlighted door, 1-based; 0 for none
	Relics       []string // display strings, glyph first
	Memory       bool
	Messages     []string
	Achievements []string
	Notice       string // persistence problems
	Prompt       []string
}

// Renderer draws the tower onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders the whole floor screen and shows it.
func (r *Renderer) Draw(v View) {
	r.screen.Clear()
	y := r.drawTitle(v.Floor)
	y = r.drawStatus(y+1, v)
	y = r.drawDoors(y+1, v.Doors, v.Selected)
	if v.Memory {
		r.drawText(2, y, glyphMemory+" Memory Door: the safe door is the one from two floors ago.", memoryStyle)
	}
	r.DrawHUD(v)
	if len(v.Prompt) > 0 {
		r.DrawModal(v.Prompt)
	}
	r.screen.Show()
}

// drawDoors draws a row of doors with their numbers underneath and returns
// the first row below them.
func (r *Renderer) drawDoors(y, doors, selected int) int {
	for i := 1; i <= doors; i++ {
		x := 2 + (i-1)*doorWidth
		style := doorStyle
		if i == selected {
			style = selectedStyle
		}
		r.putGlyph(x+1, y, glyphDoor, style)
		r.drawText(x, y+1, "["+string(rune('0'+i))+"]", style)
	}
	return y + 3
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) int {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return x
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	w := runewidth.StringWidth(glyph)
	if w == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
	if w < 1 {
		w = 1
	}
	return x + w
}

// drawText writes text at (x, y), advancing by each rune's display width,
// and stops at the right edge. It returns the column after the text.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	sw, _ := r.screen.Size()
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > sw {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		if w == 2 {
			r.screen.SetContent(x+1, y, ' ', nil, style)
		}
		x += w
	}
	return x
}

func (r *Renderer) drawHLine(y int, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
