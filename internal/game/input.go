package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionDigit1
	ActionDigit2
	ActionDigit3
	ActionDigit4
	ActionDigit5
	ActionDigit6
	ActionDigit7
	ActionDigit8
	ActionDigit9
	ActionLeft
	ActionRight
	ActionConfirm
	ActionYes
	ActionReset
	ActionQuit
	ActionCancel
)

// IsDigit reports whether a is a number key.
func (a Action) IsDigit() bool { return a >= ActionDigit1 && a <= ActionDigit9 }

// Digit returns the number of a digit action.
func (a Action) Digit() int { return int(a-ActionDigit1) + 1 }

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape:
		return ActionCancel
	}

	// Rune keys.
	r := ev.Rune()
	switch {
	case r >= '1' && r <= '9':
		return ActionDigit1 + Action(r-'1')
	}
	switch r {
	case 'h', 'H':
		return ActionLeft
	case 'l', 'L':
		return ActionRight
	case ' ':
		return ActionConfirm
	case 'y', 'Y':
		return ActionYes
	case 'r', 'R':
		return ActionReset
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
