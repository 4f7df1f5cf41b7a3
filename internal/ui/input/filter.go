package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"upkeep/internal/action"
	"upkeep/internal/ui/state"
)

// handleFilterKey edits the live filter. Navigation keys still work so the
// list can be walked while narrowing it; j, k, and F are therefore not
// typable in a filter.
func handleFilterKey(s *state.AppState, msg tea.KeyMsg) action.Action {
	switch msg.String() {
	case "esc":
		s.LeaveFilterMode(true)
	case "F":
		s.LeaveFilterMode(false)
	case "j", "down":
		s.MoveCursor(1)
	case "k", "up":
		s.MoveCursor(-1)
	case " ", "space":
		s.ToggleSelected()
	case "backspace":
		s.BackspaceFilter()
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				s.AppendFilterRune(r)
			}
		}
	}
	return nil
}
