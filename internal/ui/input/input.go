// Package input translates key presses into state transitions and actions.
// The active mode is derived from state: filter editing wins, then the
// Search and News tabs get their own handlers, everything else is normal
// mode.
package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"upkeep/internal/action"
	"upkeep/internal/ui/state"
)

// HandleKey routes a key press to the active mode's handler. A nil action
// means the key only changed state (or did nothing).
func HandleKey(s *state.AppState, msg tea.KeyMsg) action.Action {
	switch {
	case s.FilterMode:
		return handleFilterKey(s, msg)
	case s.Tab == state.TabSearch:
		return handleSearchKey(s, msg)
	case s.Tab == state.TabNews:
		return handleNewsKey(s, msg)
	default:
		return handleNormalKey(s, msg)
	}
}
