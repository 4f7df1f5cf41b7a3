package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upkeep/internal/backup"
	"upkeep/internal/config"
	"upkeep/internal/news"
	"upkeep/internal/pacman"
	"upkeep/internal/ui/state"
)

func newViewState() *state.AppState {
	return state.NewAppState(config.Default(), nil)
}

func TestRenderEmptyUpdates(t *testing.T) {
	s := newViewState()

	out := Render(s, "", 120, 40)

	assert.Contains(t, out, "upkeep")
	assert.Contains(t, out, "No updates available")
	assert.Contains(t, out, "No package info available")
}

func TestRenderLoadingState(t *testing.T) {
	s := newViewState()
	s.Refresh()

	out := Render(s, "*", 120, 40)

	assert.Contains(t, out, "Checking for updates...")
}

func TestRenderUpdateRows(t *testing.T) {
	s := newViewState()
	s.Packages = []pacman.Package{
		{Name: "firefox", OldVersion: "128.0-1", NewVersion: "129.0-1", Selected: true},
		{Name: "yay", OldVersion: "12.0-1", NewVersion: "12.1-1", Source: pacman.SourceAur},
	}
	s.UpdatesCursor = 0

	out := Render(s, "", 120, 40)

	assert.Contains(t, out, "firefox")
	assert.Contains(t, out, "yay (AUR)")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, ">> ")
	assert.Contains(t, out, "129.0-1")
}

func TestRenderFilterBar(t *testing.T) {
	s := newViewState()
	s.Packages = []pacman.Package{{Name: "zsh"}}
	s.FilterMode = true
	s.FilterText = "zs"

	out := Render(s, "", 120, 40)

	assert.Contains(t, out, "Filter: zs█")
}

func TestRenderFilterNoMatches(t *testing.T) {
	s := newViewState()
	s.Packages = []pacman.Package{{Name: "zsh"}}
	s.FilterText = "nope"

	out := Render(s, "", 120, 40)

	assert.Contains(t, out, "No packages match filter")
	assert.Contains(t, out, "(0 matches)")
}

func TestRenderSearchTab(t *testing.T) {
	s := newViewState()
	s.Tab = state.TabSearch
	s.SearchQuery = "fire"
	s.SearchResults = []pacman.SearchResult{
		{Name: "firefox", Version: "129.0-1", Repository: "extra", Installed: true},
		{Name: "firejail", Version: "0.9-1", Repository: "AUR"},
	}
	s.SearchCursor = 1

	out := Render(s, "", 120, 40)

	assert.Contains(t, out, "Search: fire█")
	assert.Contains(t, out, "Search Results (2)")
	assert.Contains(t, out, "[=]")
}

func TestRenderSearchPrompt(t *testing.T) {
	s := newViewState()
	s.Tab = state.TabSearch

	out := Render(s, "", 120, 40)

	assert.Contains(t, out, "Type to search packages...")
}

func TestRenderNewsTab(t *testing.T) {
	s := newViewState()
	s.Tab = state.TabNews
	s.NewsItems = []news.Item{
		{
			Title:             "Manual intervention required for grub",
			Author:            "Levente Polyak",
			PubDate:           "Aug 20, 2026",
			RequiresAttention: true,
			RelatedPackages:   []string{"grub"},
		},
	}
	s.NewsCursor = 0
	s.RefreshNewsInfo()

	out := Render(s, "", 120, 40)

	assert.Contains(t, out, "Arch News (1 attention, 1 related)")
	assert.Contains(t, out, "Aug 20")
	assert.Contains(t, out, "Levente Polyak")
	assert.Contains(t, out, "Article")
}

func TestRenderRebuildsEmptyHint(t *testing.T) {
	s := newViewState()
	s.Tab = state.TabRebuilds

	out := Render(s, "", 120, 40)

	assert.Contains(t, out, "No rebuild checks configured")
	assert.Contains(t, out, "checks.toml")
}

func TestRenderInfoPane(t *testing.T) {
	s := newViewState()
	s.Packages = []pacman.Package{{Name: "ripgrep"}}
	s.PkgInfo = &pacman.PackageInfo{
		Name:        "ripgrep",
		Version:     "14.1.0-1",
		Description: "A search tool",
		Size:        "6.1 MiB",
		Repository:  "extra",
		RequiredBy:  []string{"fzf-extras"},
	}

	out := Render(s, "", 120, 40)

	assert.Contains(t, out, "14.1.0-1")
	assert.Contains(t, out, "6.1 MiB")
	assert.Contains(t, out, "fzf-extras")
	assert.Contains(t, out, "Optional for: None")
}

func TestStatusLineWidthTiers(t *testing.T) {
	s := newViewState()

	assert.Contains(t, Render(s, "", 120, 40), "Pacman: 0 updates")
	assert.Contains(t, Render(s, "", 70, 40), "Pac: 0")
	assert.Contains(t, Render(s, "", 50, 40), "P:0")
}

func TestStatusMessageReplacesCounts(t *testing.T) {
	s := newViewState()
	s.StatusMessage = "Export failed, see upkeep.log"

	out := Render(s, "", 120, 40)

	assert.Contains(t, out, "Export failed, see upkeep.log")
	assert.NotContains(t, out, "Pacman: 0 updates")
}

func TestRenderLineCount(t *testing.T) {
	s := newViewState()

	out := Render(s, "", 120, 40)

	// header 3 + status 1 + content 34 + help 2
	require.Len(t, strings.Split(out, "\n"), 40)
}

func TestBackupStatus(t *testing.T) {
	result := backup.ExportResult{
		PackagesPath: "/home/u/.config/upkeep/backups/packages-2026-08-25.txt",
		AurPath:      "/home/u/.config/upkeep/backups/aur-2026-08-25.txt",
		Official:     412,
		Aur:          37,
	}
	assert.Equal(t,
		"Exported 412 official + 37 AUR packages to /home/u/.config/upkeep/backups",
		BackupStatus(result))
}

func TestClipboardStatus(t *testing.T) {
	assert.Equal(t,
		"Copied 412 official + 37 AUR package names to clipboard",
		ClipboardStatus(412, 37))
}

func TestFormatPackageName(t *testing.T) {
	assert.Equal(t, "firefox                       ", formatPackageName("firefox", "", 30))
	assert.Equal(t, "yay (AUR)                     ", formatPackageName("yay", " (AUR)", 30))

	long := formatPackageName("a-very-long-package-name-indeed-truly", " (AUR)", 20)
	assert.Len(t, long, 20)
	assert.Contains(t, long, "... (AUR)")
}
