package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"upkeep/internal/action"
	"upkeep/internal/ui/state"
)

// handleNormalKey covers the Updates, Installed, Orphans, and Rebuilds tabs
func handleNormalKey(s *state.AppState, msg tea.KeyMsg) action.Action {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return action.Quit{}
	case "tab":
		s.SwitchTab(true)
	case "shift+tab":
		s.SwitchTab(false)
	case "j", "down":
		s.MoveCursor(1)
	case "k", "up":
		s.MoveCursor(-1)
	case " ", "space":
		s.ToggleSelected()
	case "a":
		s.SelectAll()
	case "n":
		s.SelectNone()
	case "r":
		s.RefreshCurrentTab()
	case "u":
		return s.RunSelectedUpdate()
	case "d":
		return s.UninstallSelected(false)
	case "D":
		return s.UninstallSelected(true)
	case "i":
		return s.ReinstallSelected(false)
	case "I":
		return s.ReinstallSelected(true)
	case "f":
		s.EnterFilterMode()
	case "b":
		if s.Tab == state.TabInstalled {
			return action.ExportBackup{}
		}
	case "y":
		if s.Tab == state.TabInstalled {
			return action.CopyPackageList{}
		}
	case "enter":
		return s.RunPrimaryAction()
	case "?":
		s.ToggleInfoPane()
	}
	return nil
}
