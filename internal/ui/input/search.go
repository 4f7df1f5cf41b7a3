package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"upkeep/internal/action"
	"upkeep/internal/ui/state"
)

// handleSearchKey runs the Search tab, where printable keys type into the
// query. Esc clears the query first and only quits once it is empty.
func handleSearchKey(s *state.AppState, msg tea.KeyMsg) action.Action {
	switch msg.String() {
	case "q", "ctrl+c":
		return action.Quit{}
	case "esc":
		if s.SearchQuery != "" {
			s.ClearSearch()
			return nil
		}
		return action.Quit{}
	case "tab":
		s.SwitchTab(true)
	case "shift+tab":
		s.SwitchTab(false)
	case "down":
		s.MoveCursor(1)
	case "up":
		s.MoveCursor(-1)
	case " ", "space":
		s.ToggleSelected()
	case "?":
		s.ToggleInfoPane()
	case "enter":
		return s.InstallSelected()
	case "backspace":
		s.BackspaceSearch()
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				s.AppendSearchRune(r)
			}
		}
	}
	return nil
}
