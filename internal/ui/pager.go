package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"upkeep/internal/news"
)

// openArticleCmd shows the cursor article full screen in the ov pager
func (m *Model) openArticleCmd() tea.Cmd {
	item, ok := m.state.CurrentNewsItem()
	if !ok {
		return nil
	}
	program := m.program
	return func() tea.Msg {
		return pagerDoneMsg{err: showArticleInPager(program, item)}
	}
}

func showArticleInPager(program *tea.Program, item news.Item) error {
	if program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control so ov can take over
	if err := program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov a moment to fully exit before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(renderArticle(item)))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// renderArticle lays an article out as plain text for the pager
func renderArticle(item news.Item) string {
	var b strings.Builder
	b.WriteString(item.Title + "\n")
	b.WriteString(item.Author + " - " + item.PubDate + "\n")
	b.WriteString(item.Link + "\n")
	if len(item.RelatedPackages) > 0 {
		b.WriteString("Installed: " + strings.Join(item.RelatedPackages, ", ") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(item.Description)
	b.WriteString("\n")
	return b.String()
}
