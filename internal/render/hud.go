package render

import (
	"fmt"
	"strings"

	"mind-tower/assets"
)

// messageRows is how many log lines the HUD keeps on screen.
const messageRows = 6

func (r *Renderer) drawTitle(floor int) int {
	band := assets.BandFor(floor)
	x := r.putGlyph(2, 1, assets.GlyphTower, titleStyle(band))
	r.drawText(x+1, 1, "MIND TOWER  "+band.Name, titleStyle(band))
	return 2
}

// drawStatus renders the floor, lives and relics lines and returns the
// first free row.
func (r *Renderer) drawStatus(y int, v View) int {
	x := r.drawText(2, y, fmt.Sprintf("Floor: %d   Lives: ", v.Floor), statusStyle)
	for i := 0; i < max(v.MaxLives, v.Lives); i++ {
		glyph := assets.GlyphLife
		if i >= v.Lives {
			glyph = assets.GlyphLostLife
		}
		x = r.putGlyph(x, y, glyph, statusStyle)
	}
	relics := "none"
	if len(v.Relics) > 0 {
		relics = strings.Join(v.Relics, ", ")
	}
	r.drawText(2, y+1, "Relics: "+relics, relicStyle)
	return y + 3
}

// DrawHUD renders the message log, achievements and key hints at the
// bottom of the screen.
func (r *Renderer) DrawHUD(v View) {
	_, screenH := r.screen.Size()
	hudY := screenH - messageRows - 5

	r.drawHLine(hudY, separatorStyle)

	start := len(v.Messages) - messageRows
	if start < 0 {
		start = 0
	}
	for i, msg := range v.Messages[start:] {
		r.drawText(2, hudY+1+i, msg, messageStyle)
	}

	footY := hudY + messageRows + 1
	r.drawHLine(footY, separatorStyle)
	ach := "None"
	if len(v.Achievements) > 0 {
		ach = strings.Join(v.Achievements, ", ")
	}
	x := r.putGlyph(2, footY+1, assets.GlyphAchievement, achievementStyle)
	r.drawText(x+1, footY+1, "Achievements: "+ach, achievementStyle)
	if v.Notice != "" {
		r.drawText(2, footY+2, v.Notice, noticeStyle)
	}
	r.drawText(2, footY+3, "[1-6] Open a door   [r] Reset   [q] Quit", hintStyle)
}

// DrawModal draws lines in a bordered box centred on the screen.
func (r *Renderer) DrawModal(lines []string) {
	sw, sh := r.screen.Size()
	width := 0
	for _, l := range lines {
		width = max(width, stringWidth(l))
	}
	width += 4
	height := len(lines) + 2
	x0 := max((sw-width)/2, 0)
	y0 := max((sh-height)/2, 0)

	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			ch := ' '
			switch {
			case (y == y0 || y == y0+height-1) && (x == x0 || x == x0+width-1):
				ch = '+'
			case y == y0 || y == y0+height-1:
				ch = '─'
			case x == x0 || x == x0+width-1:
				ch = '│'
			}
			r.screen.SetContent(x, y, ch, nil, modalStyle)
		}
	}
	for i, l := range lines {
		r.drawText(x0+2, y0+1+i, l, modalStyle)
	}
}

// Summary is the data of the game over screen.
type Summary struct {
	Floor        int
	Achievements []string
	RelicsHeld   int
	TrapsDodged  int
}

// DrawGameOver renders the end-of-run screen.
func (r *Renderer) DrawGameOver(s Summary) {
	r.screen.Clear()
	sw, _ := r.screen.Size()
	label := func(y int, l, v string) {
		r.drawText(2, y, l, dimStyle)
		r.drawText(22, y, v, statusStyle)
	}

	y := 1
	r.drawHLine(y, separatorStyle)
	y += 2
	r.drawText(2, y, "THE TOWER CLAIMS YOU", goldStyle)
	badge := "[GAME OVER]"
	r.drawText(sw-len(badge)-1, y, badge, dangerStyle)
	y += 2

	label(y, "Floor Reached:", fmt.Sprintf("%d", s.Floor))
	y++
	label(y, "Relics Held:", fmt.Sprintf("%d", s.RelicsHeld))
	y++
	label(y, "Traps Dodged:", fmt.Sprintf("%d", s.TrapsDodged))
	y++
	ach := "None"
	if len(s.Achievements) > 0 {
		ach = strings.Join(s.Achievements, ", ")
	}
	label(y, "Achievements:", ach)
	y += 2

	r.drawHLine(y, separatorStyle)
	y += 2
	r.drawText(2, y, "[R] Climb Again", safeStyle)
	r.drawText(20, y, "[Q] Quit", dangerStyle)
	r.screen.Show()
}
