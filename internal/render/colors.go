package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"mind-tower/assets"
)

const (
	glyphDoor   = assets.GlyphDoor
	glyphMemory = assets.GlyphMemory
)

var (
	base             = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle      = base.Foreground(tcell.ColorWhite)
	relicStyle       = base.Foreground(tcell.NewRGBColor(150, 220, 255))
	doorStyle        = base.Foreground(tcell.ColorWhite)
	selectedStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(180, 100, 255))
	memoryStyle      = base.Foreground(tcell.ColorAqua)
	messageStyle     = base.Foreground(tcell.ColorLightYellow)
	achievementStyle = base.Foreground(tcell.ColorGreen)
	noticeStyle      = base.Foreground(tcell.ColorOrange)
	hintStyle        = base.Foreground(tcell.ColorGray)
	separatorStyle   = base.Foreground(tcell.ColorGray)
	modalStyle       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(60, 20, 80))
	dimStyle         = base.Foreground(tcell.ColorLightYellow)
	goldStyle        = base.Foreground(tcell.ColorYellow)
	safeStyle        = base.Foreground(tcell.ColorGreen)
	dangerStyle      = base.Foreground(tcell.ColorRed)
)

// titleStyle colours the title in the band's colour.
func titleStyle(b assets.Band) tcell.Style {
	return base.Foreground(tcell.NewRGBColor(b.Color[0], b.Color[1], b.Color[2])).Bold(true)
}

func stringWidth(s string) int { return runewidth.StringWidth(s) }
