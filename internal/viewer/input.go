package viewer

import "github.com/gdamore/tcell/v2"

// Action represents a viewer command.
type Action uint8

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionPrevious
	ActionTheme
	ActionQuit
)

// keyToAction maps a tcell key event to a viewer action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRight, tcell.KeyEnter:
		return ActionRegenerate
	case tcell.KeyLeft:
		return ActionPrevious
	}

	// Rune keys.
	switch ev.Rune() {
	case 'r', 'R', 'n', 'N', ' ':
		return ActionRegenerate
	case 'p', 'P':
		return ActionPrevious
	case 't', 'T':
		return ActionTheme
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
