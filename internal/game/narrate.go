package game

import (
	"fmt"

	"mind-tower/assets"
	"mind-tower/internal/tower"
)

// narrate turns engine events into log lines.
func (g *Game) narrate(events []tower.Event) []string {
	var lines []string
	for _, ev := range events {
		switch ev.Kind {
		case tower.EventSafeAdvance:
			lines = append(lines, assets.MsgSafeAdvance)
		case tower.EventTrapHit:
			lines = append(lines, assets.GlyphTrap+" "+assets.MsgTrapHit)
		case tower.EventPhoenixSave:
			lines = append(lines, assets.MsgPhoenixSave)
		case tower.EventLoopSameFloor:
			lines = append(lines, assets.MsgLoopSameFloor)
		case tower.EventRelicFound:
			info := assets.Relic(string(ev.Relic))
			lines = append(lines, fmt.Sprintf(assets.MsgRelicFound, info.Glyph+" "+string(ev.Relic)))
		case tower.EventMiniBossChallenge:
			lines = append(lines, assets.GlyphMiniBoss+" "+assets.MsgMiniBoss)
		case tower.EventMiniBossSuccess:
			lines = append(lines, assets.MsgMiniBossSuccess)
		case tower.EventMiniBossFail:
			lines = append(lines, assets.MsgMiniBossFail)
		case tower.EventAchievementUnlocked:
			title, ok := assets.AchievementTitles[string(ev.Achievement)]
			if !ok {
				title = string(ev.Achievement)
			}
			lines = append(lines, fmt.Sprintf(assets.MsgAchievement, title))
		case tower.EventGameOver:
			lines = append(lines, fmt.Sprintf(assets.MsgGameOver, ev.Floor))
		case tower.EventNextFloorReady:
			if ev.Memory {
				lines = append(lines, assets.GlyphMemory+" "+assets.MsgMemoryDoor)
			}
			if ev.Floor > 1 && (ev.Floor-1)%5 == 0 && advanced(events) {
				lines = append(lines, g.bandLore(ev.Floor))
			}
		}
	}
	return lines
}

// advanced reports whether the player climbed during this transition.
func advanced(events []tower.Event) bool {
	for _, ev := range events {
		if ev.Kind == tower.EventSafeAdvance {
			return true
		}
	}
	return false
}

// bandLore picks an atmospheric line for the band floor belongs to.
func (g *Game) bandLore(floor int) string {
	band := assets.BandFor(floor)
	if len(band.Lore) == 0 {
		return fmt.Sprintf(assets.MsgEnterFloor, floor)
	}
	return band.Name + ": " + band.Lore[g.rng.Intn(len(band.Lore))]
}

// play maps sound cues to the terminal bell. Only traps ring; the other
// cues have no terminal equivalent.
func (g *Game) play(cues []tower.Cue) {
	for _, c := range cues {
		if c == tower.CueTrap {
			if err := g.screen.Beep(); err != nil {
				g.logger.Debug("beep failed", "error", err)
			}
			return
		}
	}
}
