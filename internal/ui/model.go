// Package ui is the Bubble Tea front end. The model owns the AppState,
// routes key presses through the input package, and turns queued background
// work into commands whose results flow back as messages.
package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"upkeep/internal/config"
	"upkeep/internal/rebuilds"
	"upkeep/internal/ui/input"
	"upkeep/internal/ui/state"
	"upkeep/internal/ui/views"
)

// Model is the Bubble Tea model
type Model struct {
	state   *state.AppState
	spinner spinner.Model
	program *tea.Program

	width  int
	height int

	quitting bool
}

// NewModel creates the model with loaded config and rebuild checks
func NewModel(cfg config.Config, checks []rebuilds.Check) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &Model{
		state:   state.NewAppState(cfg, checks),
		spinner: sp,
	}
}

// SetProgram gives the model the program handle, needed to release the
// terminal for the article pager.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// State exposes the application state, for tests
func (m *Model) State() *state.AppState {
	return m.state
}

// Init starts the initial full refresh and the debounce clock
func (m *Model) Init() tea.Cmd {
	m.state.Refresh()
	cmds := append(m.drainLoads(), tick(), m.spinner.Tick)
	return tea.Batch(cmds...)
}

// Update is the single consumer of all messages; state is only ever
// mutated here.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		m.state.StatusMessage = ""
		act := input.HandleKey(m.state, msg)
		if cmd := m.runAction(act); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.quitting {
			return m, tea.Quit
		}

	case tickMsg:
		search, info := m.state.TickDebounce()
		if search != nil {
			cmds = append(cmds, searchCmd(*search))
		}
		if info != nil {
			cmds = append(cmds, infoCmd(*info))
		}
		cmds = append(cmds, tick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case updatesLoadedMsg:
		m.state.ApplyUpdates(msg.pacman, msg.aur)

	case installedLoadedMsg:
		m.state.ApplyInstalled(msg.packages)

	case orphansLoadedMsg:
		m.state.ApplyOrphans(msg.packages)

	case rebuildsCheckedMsg:
		m.state.ApplyRebuilds(msg.issues)

	case searchFinishedMsg:
		m.state.ApplySearch(msg.id, msg.results)

	case infoFetchedMsg:
		m.state.ApplyInfo(msg.id, msg.info)

	case newsLoadedMsg:
		if msg.err != nil {
			log.Printf("news fetch failed: %v", msg.err)
		}
		m.state.ApplyNews(msg.items, msg.err)

	case commandDoneMsg:
		if msg.err != nil {
			log.Printf("%s command failed: %v", msg.kind, msg.err)
			m.state.StatusMessage = "Command failed, see upkeep.log"
		}
		m.afterCommand(msg.kind)

	case backupDoneMsg:
		if msg.err != nil {
			log.Printf("backup export failed: %v", msg.err)
			m.state.StatusMessage = "Export failed, see upkeep.log"
		} else {
			m.state.StatusMessage = views.BackupStatus(msg.result)
		}

	case clipboardDoneMsg:
		if msg.err != nil {
			log.Printf("clipboard copy failed: %v", msg.err)
			m.state.StatusMessage = "Copy failed, see upkeep.log"
		} else {
			m.state.StatusMessage = views.ClipboardStatus(msg.official, msg.aur)
		}

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("article pager failed: %v", msg.err)
		}
	}

	cmds = append(cmds, m.drainLoads()...)
	return m, tea.Batch(cmds...)
}

// View delegates rendering to the views package
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return views.Render(m.state, m.spinner.View(), m.width, m.height)
}
