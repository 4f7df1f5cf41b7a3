package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"upkeep/internal/action"
	"upkeep/internal/ui/state"
)

// handleNewsKey runs the News tab: plain j/k walk the article list,
// shifted keys scroll the article body.
func handleNewsKey(s *state.AppState, msg tea.KeyMsg) action.Action {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return action.Quit{}
	case "tab":
		s.SwitchTab(true)
	case "shift+tab":
		s.SwitchTab(false)
	case "j", "down":
		s.MoveNewsCursor(1)
	case "k", "up":
		s.MoveNewsCursor(-1)
	case "J", "shift+down":
		s.ScrollNews(3)
	case "K", "shift+up":
		s.ScrollNews(-3)
	case "pgdown":
		s.ScrollNews(10)
	case "pgup":
		s.ScrollNews(-10)
	case "r":
		s.RefreshNews()
	case "o", "enter":
		return action.OpenArticle{}
	case "?":
		s.ToggleInfoPane()
	}
	return nil
}
