package pacman

import "strings"

// Source indicates where a package comes from
type Source int

const (
	SourcePacman Source = iota
	SourceAur
)

// Label returns the suffix shown next to AUR packages in lists
func (s Source) Label() string {
	if s == SourceAur {
		return " (AUR)"
	}
	return ""
}

// Package represents an available update
type Package struct {
	Name       string
	OldVersion string
	NewVersion string
	Source     Source
	Selected   bool
}

func (p Package) DisplayName() string { return p.Name }

// InstalledPackage represents one explicitly installed (or orphaned) package
type InstalledPackage struct {
	Name     string
	Version  string
	Source   Source
	Selected bool
}

func (p InstalledPackage) DisplayName() string { return p.Name }

// SearchResult is one row from a combined repo + AUR search
type SearchResult struct {
	Name        string
	Version     string
	Description string
	Repository  string
	Installed   bool
	Selected    bool
}

func (r SearchResult) DisplayName() string { return r.Name }

// PackageInfo is the detail projection shown in the info pane.
// AUR-only fields (Maintainer, Votes) are zero for repo packages.
type PackageInfo struct {
	Name          string
	Version       string
	Description   string
	Size          string
	Repository    string
	InstallDate   string
	InstallReason string
	URL           string
	BuildDate     string
	RequiredBy    []string
	OptionalFor   []string
	Maintainer    string
	Votes         int
}

// Named is anything that can be filtered by name
type Named interface {
	DisplayName() string
}

// Indexed pairs an item with its index in the underlying collection,
// so filtered views can address the real slice element.
type Indexed[T any] struct {
	Index int
	Item  T
}

// FilterItems returns the items whose name contains the query
// (case-insensitive), paired with their real indices. An empty query
// returns everything.
func FilterItems[T Named](items []T, query string) []Indexed[T] {
	out := make([]Indexed[T], 0, len(items))
	if query == "" {
		for i, item := range items {
			out = append(out, Indexed[T]{Index: i, Item: item})
		}
		return out
	}
	q := strings.ToLower(query)
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.DisplayName()), q) {
			out = append(out, Indexed[T]{Index: i, Item: item})
		}
	}
	return out
}
