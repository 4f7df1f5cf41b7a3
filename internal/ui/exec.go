package ui

import (
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"upkeep/internal/action"
)

// runAction turns a resolved action into a command. Package-manager actions
// suspend the UI and run in the foreground so pacman can prompt; the
// commandDoneMsg kind drives the post-command refresh.
func (m *Model) runAction(act action.Action) tea.Cmd {
	if act == nil {
		return nil
	}

	helper := m.state.Config.AurHelper

	switch a := act.(type) {
	case action.Quit:
		m.quitting = true
		return tea.Quit

	case action.RunUpdate:
		if len(a.Packages) == 0 {
			return m.foreground(exec.Command(helper, "-Syu"), "update")
		}
		args := append([]string{"-S", "--needed"}, a.Packages...)
		return m.foreground(exec.Command(helper, args...), "update")

	case action.RunRebuild:
		return m.foreground(exec.Command("sh", "-c", a.Command), "rebuild")

	case action.Uninstall:
		args := append([]string{"-R"}, a.Packages...)
		return m.foreground(exec.Command(helper, args...), "uninstall")

	case action.UninstallWithDeps:
		args := append([]string{"-Rns"}, a.Packages...)
		return m.foreground(exec.Command(helper, args...), "uninstall")

	case action.Reinstall:
		args := append([]string{"-S"}, a.Packages...)
		return m.foreground(exec.Command(helper, args...), "reinstall")

	case action.ForceRebuild:
		args := append([]string{"-S", "--rebuild"}, a.Packages...)
		return m.foreground(exec.Command(helper, args...), "reinstall")

	case action.Install:
		args := append([]string{"-S"}, a.Packages...)
		return m.foreground(exec.Command(helper, args...), "install")

	case action.ExportBackup:
		return exportBackupCmd()

	case action.CopyPackageList:
		return copyPackageListCmd()

	case action.OpenArticle:
		return m.openArticleCmd()
	}
	return nil
}

// foreground hands the terminal to an external command
func (m *Model) foreground(c *exec.Cmd, kind string) tea.Cmd {
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return commandDoneMsg{kind: kind, err: err}
	})
}

// afterCommand reloads whatever data the finished command invalidated
func (m *Model) afterCommand(kind string) {
	switch kind {
	case "update":
		m.state.Refresh()
	case "rebuild":
		m.state.RefreshRebuilds()
	case "uninstall":
		m.state.RefreshInstalled()
		m.state.RefreshOrphans()
	case "reinstall":
		m.state.RefreshInstalled()
	case "install":
		m.state.RefreshInstalled()
		// Installed markers in the search results are stale now
		m.state.ReRunSearch()
	}
}
