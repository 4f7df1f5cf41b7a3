package ui

import (
	"time"

	"upkeep/internal/backup"
	"upkeep/internal/news"
	"upkeep/internal/pacman"
	"upkeep/internal/rebuilds"
)

// tickMsg drives the debounce clock
type tickMsg time.Time

// updatesLoadedMsg carries the pacman and AUR update lists
type updatesLoadedMsg struct {
	pacman []pacman.Package
	aur    []pacman.Package
}

type installedLoadedMsg struct {
	packages []pacman.InstalledPackage
}

type orphansLoadedMsg struct {
	packages []pacman.InstalledPackage
}

type rebuildsCheckedMsg struct {
	issues []rebuilds.Issue
}

// searchFinishedMsg carries results stamped with the request generation
type searchFinishedMsg struct {
	id      uint64
	results []pacman.SearchResult
}

// infoFetchedMsg carries package info stamped with the request generation
type infoFetchedMsg struct {
	id   uint64
	info *pacman.PackageInfo
}

type newsLoadedMsg struct {
	items []news.Item
	err   error
}

// commandDoneMsg arrives after an external package-manager command has run
// in the foreground; kind selects which data to reload.
type commandDoneMsg struct {
	kind string
	err  error
}

type backupDoneMsg struct {
	result backup.ExportResult
	err    error
}

type clipboardDoneMsg struct {
	official int
	aur      int
	err      error
}

type pagerDoneMsg struct {
	err error
}
