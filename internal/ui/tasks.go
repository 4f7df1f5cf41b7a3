package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"upkeep/internal/backup"
	"upkeep/internal/news"
	"upkeep/internal/pacman"
	"upkeep/internal/rebuilds"
	"upkeep/internal/ui/state"
)

// tickInterval is how often debounce deadlines are polled
const tickInterval = 80 * time.Millisecond

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadCmd turns a queued load into a background command. Inputs are copied
// out of state here so the goroutine never touches it.
func (m *Model) loadCmd(kind state.LoadKind) tea.Cmd {
	switch kind {
	case state.LoadUpdates:
		helper := m.state.Config.AurHelper
		return func() tea.Msg {
			return updatesLoadedMsg{
				pacman: pacman.CheckUpdates(),
				aur:    pacman.CheckAurUpdates(helper),
			}
		}
	case state.LoadInstalled:
		return func() tea.Msg {
			return installedLoadedMsg{packages: pacman.GetInstalled()}
		}
	case state.LoadOrphans:
		return func() tea.Msg {
			return orphansLoadedMsg{packages: pacman.GetOrphans()}
		}
	case state.LoadRebuilds:
		checks := m.state.Checks
		return func() tea.Msg {
			return rebuildsCheckedMsg{issues: rebuilds.RunChecks(checks)}
		}
	case state.LoadNews:
		installed := m.state.InstalledNames()
		return func() tea.Msg {
			items, err := news.Fetch(installed)
			return newsLoadedMsg{items: items, err: err}
		}
	}
	return nil
}

// drainLoads converts every queued load into a command
func (m *Model) drainLoads() []tea.Cmd {
	var cmds []tea.Cmd
	for _, kind := range m.state.DrainLoads() {
		if cmd := m.loadCmd(kind); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func searchCmd(req state.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		return searchFinishedMsg{id: req.ID, results: pacman.Search(req.Query)}
	}
}

func infoCmd(req state.InfoRequest) tea.Cmd {
	return func() tea.Msg {
		info := pacman.FetchInfo(req.Name)
		if info == nil {
			info = req.Fallback
		}
		return infoFetchedMsg{id: req.ID, info: info}
	}
}

func exportBackupCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := backup.ExportPackages()
		return backupDoneMsg{result: result, err: err}
	}
}

func copyPackageListCmd() tea.Cmd {
	return func() tea.Msg {
		list, official, aur, err := backup.PackageList()
		if err == nil {
			err = backup.CopyToClipboard(list)
		}
		return clipboardDoneMsg{official: official, aur: aur, err: err}
	}
}
