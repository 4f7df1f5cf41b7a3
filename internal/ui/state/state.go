// Package state contains all the application state and the transitions on
// it. Everything here runs on the update loop; background work is requested
// through queued loads and pending debounced requests that the model drains
// into commands.
package state

import (
	"time"

	"upkeep/internal/action"
	"upkeep/internal/config"
	"upkeep/internal/news"
	"upkeep/internal/pacman"
	"upkeep/internal/rebuilds"
)

// Debounce windows. Search waits for the user to stop typing; the info pane
// waits for navigation to settle.
const (
	SearchDebounce = 350 * time.Millisecond
	InfoDebounce   = 100 * time.Millisecond
)

// Tab identifies one of the main views
type Tab int

const (
	TabUpdates Tab = iota
	TabInstalled
	TabOrphans
	TabRebuilds
	TabSearch
	TabNews
)

func (t Tab) String() string {
	switch t {
	case TabUpdates:
		return "Updates"
	case TabInstalled:
		return "Installed"
	case TabOrphans:
		return "Orphans"
	case TabRebuilds:
		return "Rebuilds"
	case TabSearch:
		return "Search"
	case TabNews:
		return "News"
	}
	return "Unknown"
}

// Next returns the tab after t in the ring
func (t Tab) Next() Tab {
	if t == TabNews {
		return TabUpdates
	}
	return t + 1
}

// Prev returns the tab before t in the ring
func (t Tab) Prev() Tab {
	if t == TabUpdates {
		return TabNews
	}
	return t - 1
}

// LoadKind is a background load the model must dispatch
type LoadKind int

const (
	LoadUpdates LoadKind = iota
	LoadInstalled
	LoadOrphans
	LoadRebuilds
	LoadNews
)

// SearchRequest is a debounced search ready to run
type SearchRequest struct {
	ID    uint64
	Query string
}

// InfoRequest is a debounced info fetch ready to run. Fallback carries
// search-result data for packages the local database does not know.
type InfoRequest struct {
	ID       uint64
	Name     string
	Fallback *pacman.PackageInfo
}

type pendingInfo struct {
	name     string
	fallback *pacman.PackageInfo
}

// AppState contains all the application state. Cursor fields hold indices
// into the view each tab displays (the filtered view for Updates and
// Installed), with -1 meaning no selection.
type AppState struct {
	Config config.Config
	Checks []rebuilds.Check

	Tab Tab

	Packages  []pacman.Package
	Installed []pacman.InstalledPackage
	Orphans   []pacman.InstalledPackage
	Issues    []rebuilds.Issue

	UpdatesCursor   int
	InstalledCursor int
	OrphansCursor   int
	RebuildsCursor  int
	SearchCursor    int
	NewsCursor      int

	SearchQuery    string
	SearchResults  []pacman.SearchResult
	SearchLoading  bool
	pendingSearch  string
	hasSearch      bool
	searchDeadline time.Time
	searchID       uint64

	NewsItems   []news.Item
	NewsLoading bool
	NewsError   bool
	NewsInfo    *news.Info
	NewsScroll  int

	PendingTasks int

	FilterMode bool
	FilterText string

	ShowInfoPane bool
	PkgInfo      *pacman.PackageInfo
	InfoLoading  bool
	pendingFetch *pendingInfo
	infoDeadline time.Time
	infoID       uint64

	StatusMessage string

	queuedLoads []LoadKind

	now func() time.Time
}

// NewAppState creates the initial state
func NewAppState(cfg config.Config, checks []rebuilds.Check) *AppState {
	return &AppState{
		Config:          cfg,
		Checks:          checks,
		Tab:             TabUpdates,
		UpdatesCursor:   -1,
		InstalledCursor: -1,
		OrphansCursor:   -1,
		RebuildsCursor:  -1,
		SearchCursor:    -1,
		NewsCursor:      -1,
		ShowInfoPane:    true,
		now:             time.Now,
	}
}

// SetClock overrides the time source, for tests
func (s *AppState) SetClock(now func() time.Time) {
	s.now = now
}

// Loading reports whether any refresh tasks are still in flight
func (s *AppState) Loading() bool {
	return s.PendingTasks > 0
}

// clampCursor keeps a cursor valid after its list was replaced
func clampCursor(cursor *int, n int) {
	if n == 0 {
		*cursor = -1
		return
	}
	c := *cursor
	if c < 0 {
		c = 0
	}
	if c > n-1 {
		c = n - 1
	}
	*cursor = c
}

// Refreshes. Each queued load produces exactly one result message that
// decrements PendingTasks.

// Refresh reloads updates, installed packages, and rebuild issues
func (s *AppState) Refresh() {
	s.PendingTasks += 3
	s.queuedLoads = append(s.queuedLoads, LoadUpdates, LoadInstalled, LoadRebuilds)
}

func (s *AppState) RefreshInstalled() {
	s.PendingTasks++
	s.queuedLoads = append(s.queuedLoads, LoadInstalled)
}

func (s *AppState) RefreshOrphans() {
	s.PendingTasks++
	s.queuedLoads = append(s.queuedLoads, LoadOrphans)
}

func (s *AppState) RefreshRebuilds() {
	s.PendingTasks++
	s.queuedLoads = append(s.queuedLoads, LoadRebuilds)
}

// RefreshNews reloads the feed. News tracks its own loading flag so the
// global spinner is not held hostage by a slow feed.
func (s *AppState) RefreshNews() {
	s.NewsLoading = true
	s.NewsError = false
	s.queuedLoads = append(s.queuedLoads, LoadNews)
}

// DrainLoads returns and clears the queued background loads
func (s *AppState) DrainLoads() []LoadKind {
	loads := s.queuedLoads
	s.queuedLoads = nil
	return loads
}

// Result application. Stale search and info results (ID mismatch) are
// silently discarded.

// ApplyUpdates installs the combined pacman and AUR update lists
func (s *AppState) ApplyUpdates(pacmanPkgs, aurPkgs []pacman.Package) {
	s.taskDone()
	s.Packages = append(pacmanPkgs, aurPkgs...)
	clampCursor(&s.UpdatesCursor, len(s.FilteredUpdates()))
	if s.ShowInfoPane && s.Tab == TabUpdates {
		s.refreshPackageInfo()
	}
}

func (s *AppState) ApplyInstalled(pkgs []pacman.InstalledPackage) {
	s.taskDone()
	s.Installed = pkgs
	clampCursor(&s.InstalledCursor, len(s.FilteredInstalled()))
	if s.ShowInfoPane && s.Tab == TabInstalled {
		s.refreshPackageInfo()
	}
	// The feed may have loaded before the installed list existed
	s.rematchNewsPackages()
}

func (s *AppState) ApplyOrphans(pkgs []pacman.InstalledPackage) {
	s.taskDone()
	s.Orphans = pkgs
	clampCursor(&s.OrphansCursor, len(s.Orphans))
	if s.ShowInfoPane && s.Tab == TabOrphans {
		s.refreshPackageInfo()
	}
}

func (s *AppState) ApplyRebuilds(issues []rebuilds.Issue) {
	s.taskDone()
	s.Issues = issues
	clampCursor(&s.RebuildsCursor, len(s.Issues))
	if s.ShowInfoPane && s.Tab == TabRebuilds {
		s.refreshPackageInfo()
	}
}

// ApplySearch installs search results unless they are stale
func (s *AppState) ApplySearch(id uint64, results []pacman.SearchResult) {
	if id != s.searchID {
		return
	}
	s.SearchResults = results
	s.SearchLoading = false
	clampCursor(&s.SearchCursor, len(s.SearchResults))
	if s.ShowInfoPane {
		s.refreshPackageInfo()
	}
}

// ApplyInfo installs fetched package info unless it is stale
func (s *AppState) ApplyInfo(id uint64, info *pacman.PackageInfo) {
	if id != s.infoID {
		return
	}
	s.PkgInfo = info
	s.InfoLoading = false
}

func (s *AppState) ApplyNews(items []news.Item, err error) {
	s.NewsLoading = false
	if err != nil {
		s.NewsError = true
		return
	}
	s.NewsItems = items
	s.NewsError = false
	clampCursor(&s.NewsCursor, len(s.NewsItems))
	if s.ShowInfoPane && s.Tab == TabNews {
		s.RefreshNewsInfo()
	}
}

func (s *AppState) taskDone() {
	if s.PendingTasks > 0 {
		s.PendingTasks--
	}
}

// Filtered views. Only Updates and Installed have a text filter; the
// cursors on those tabs index into these views.

func (s *AppState) FilteredUpdates() []pacman.Indexed[pacman.Package] {
	return pacman.FilterItems(s.Packages, s.FilterText)
}

func (s *AppState) FilteredInstalled() []pacman.Indexed[pacman.InstalledPackage] {
	return pacman.FilterItems(s.Installed, s.FilterText)
}

// Navigation and selection

// SwitchTab moves forward or backward through the tab ring, leaving filter
// mode and lazily loading the target tab's data.
func (s *AppState) SwitchTab(forward bool) {
	if forward {
		s.Tab = s.Tab.Next()
	} else {
		s.Tab = s.Tab.Prev()
	}
	s.FilterMode = false
	s.FilterText = ""
	s.loadTabData()
	if s.ShowInfoPane {
		if s.Tab == TabNews {
			s.RefreshNewsInfo()
		} else {
			s.refreshPackageInfo()
		}
	}
}

// loadTabData loads a tab's data the first time it is shown
func (s *AppState) loadTabData() {
	switch s.Tab {
	case TabInstalled:
		if len(s.Installed) == 0 {
			s.RefreshInstalled()
		}
	case TabOrphans:
		if len(s.Orphans) == 0 {
			s.RefreshOrphans()
		}
	case TabNews:
		if len(s.NewsItems) == 0 {
			s.RefreshNews()
		}
	}
}

// RefreshCurrentTab reloads the data behind the active tab
func (s *AppState) RefreshCurrentTab() {
	switch s.Tab {
	case TabUpdates:
		s.Refresh()
	case TabInstalled:
		s.RefreshInstalled()
	case TabOrphans:
		s.RefreshOrphans()
	case TabRebuilds:
		s.RefreshRebuilds()
	case TabNews:
		s.RefreshNews()
	}
}

// cursorAndLen returns the active tab's cursor and view length
func (s *AppState) cursorAndLen() (*int, int) {
	switch s.Tab {
	case TabUpdates:
		return &s.UpdatesCursor, len(s.FilteredUpdates())
	case TabInstalled:
		return &s.InstalledCursor, len(s.FilteredInstalled())
	case TabOrphans:
		return &s.OrphansCursor, len(s.Orphans)
	case TabRebuilds:
		return &s.RebuildsCursor, len(s.Issues)
	case TabSearch:
		return &s.SearchCursor, len(s.SearchResults)
	}
	return &s.NewsCursor, len(s.NewsItems)
}

// MoveCursor moves the active tab's cursor by delta, clamped to the view
func (s *AppState) MoveCursor(delta int) {
	if s.Tab == TabNews {
		s.MoveNewsCursor(delta)
		return
	}

	cursor, n := s.cursorAndLen()
	if n == 0 {
		return
	}
	c := *cursor
	if c < 0 {
		c = 0
	}
	c += delta
	if c < 0 {
		c = 0
	}
	if c > n-1 {
		c = n - 1
	}
	*cursor = c

	if s.ShowInfoPane {
		s.refreshPackageInfo()
	}
}

// ToggleSelected flips the selection mark under the cursor
func (s *AppState) ToggleSelected() {
	switch s.Tab {
	case TabUpdates:
		if filtered := s.FilteredUpdates(); s.UpdatesCursor >= 0 && s.UpdatesCursor < len(filtered) {
			real := filtered[s.UpdatesCursor].Index
			s.Packages[real].Selected = !s.Packages[real].Selected
		}
	case TabInstalled:
		if filtered := s.FilteredInstalled(); s.InstalledCursor >= 0 && s.InstalledCursor < len(filtered) {
			real := filtered[s.InstalledCursor].Index
			s.Installed[real].Selected = !s.Installed[real].Selected
		}
	case TabOrphans:
		if s.OrphansCursor >= 0 && s.OrphansCursor < len(s.Orphans) {
			s.Orphans[s.OrphansCursor].Selected = !s.Orphans[s.OrphansCursor].Selected
		}
	case TabRebuilds:
		if s.RebuildsCursor >= 0 && s.RebuildsCursor < len(s.Issues) {
			s.Issues[s.RebuildsCursor].Selected = !s.Issues[s.RebuildsCursor].Selected
		}
	case TabSearch:
		if s.SearchCursor >= 0 && s.SearchCursor < len(s.SearchResults) {
			s.SearchResults[s.SearchCursor].Selected = !s.SearchResults[s.SearchCursor].Selected
		}
	}
}

// SelectAll marks every row in the current view. On filtered tabs only the
// visible rows are marked; on Search, installed packages stay unmarked.
func (s *AppState) SelectAll() {
	switch s.Tab {
	case TabUpdates:
		for _, entry := range s.FilteredUpdates() {
			s.Packages[entry.Index].Selected = true
		}
	case TabInstalled:
		for _, entry := range s.FilteredInstalled() {
			s.Installed[entry.Index].Selected = true
		}
	case TabOrphans:
		for i := range s.Orphans {
			s.Orphans[i].Selected = true
		}
	case TabRebuilds:
		for i := range s.Issues {
			s.Issues[i].Selected = true
		}
	case TabSearch:
		for i := range s.SearchResults {
			if !s.SearchResults[i].Installed {
				s.SearchResults[i].Selected = true
			}
		}
	}
}

// SelectNone clears selection marks in the current view
func (s *AppState) SelectNone() {
	switch s.Tab {
	case TabUpdates:
		for _, entry := range s.FilteredUpdates() {
			s.Packages[entry.Index].Selected = false
		}
	case TabInstalled:
		for _, entry := range s.FilteredInstalled() {
			s.Installed[entry.Index].Selected = false
		}
	case TabOrphans:
		for i := range s.Orphans {
			s.Orphans[i].Selected = false
		}
	case TabRebuilds:
		for i := range s.Issues {
			s.Issues[i].Selected = false
		}
	case TabSearch:
		for i := range s.SearchResults {
			s.SearchResults[i].Selected = false
		}
	}
}

// Filter editing

// EnterFilterMode starts filter editing on tabs that support it
func (s *AppState) EnterFilterMode() {
	if s.Tab == TabUpdates || s.Tab == TabInstalled {
		s.FilterMode = true
	}
}

// LeaveFilterMode exits filter editing; clearing also drops the filter text
func (s *AppState) LeaveFilterMode(clear bool) {
	s.FilterMode = false
	if clear {
		s.FilterText = ""
	}
}

// AppendFilterRune extends the filter text and reclamps the cursor
func (s *AppState) AppendFilterRune(r rune) {
	s.FilterText += string(r)
	s.clampFilterCursor()
}

// BackspaceFilter removes the last filter rune
func (s *AppState) BackspaceFilter() {
	if s.FilterText != "" {
		runes := []rune(s.FilterText)
		s.FilterText = string(runes[:len(runes)-1])
	}
	s.clampFilterCursor()
}

func (s *AppState) clampFilterCursor() {
	switch s.Tab {
	case TabUpdates:
		clampCursor(&s.UpdatesCursor, len(s.FilteredUpdates()))
	case TabInstalled:
		clampCursor(&s.InstalledCursor, len(s.FilteredInstalled()))
	}
}

// Search tab

// AppendSearchRune extends the query and reschedules the debounced search
func (s *AppState) AppendSearchRune(r rune) {
	s.SearchQuery += string(r)
	s.scheduleSearch()
}

// BackspaceSearch removes the last query rune and reschedules
func (s *AppState) BackspaceSearch() {
	if s.SearchQuery != "" {
		runes := []rune(s.SearchQuery)
		s.SearchQuery = string(runes[:len(runes)-1])
	}
	s.scheduleSearch()
}

// ClearSearch drops the query and results immediately
func (s *AppState) ClearSearch() {
	s.SearchQuery = ""
	s.scheduleSearch()
}

// ReRunSearch schedules the current query again, used after an install
// changes which results count as installed.
func (s *AppState) ReRunSearch() {
	s.scheduleSearch()
}

// scheduleSearch arms the search debounce, or clears results synchronously
// when the query is too short to search.
func (s *AppState) scheduleSearch() {
	if len(s.SearchQuery) >= 2 {
		s.pendingSearch = s.SearchQuery
		s.hasSearch = true
		s.searchDeadline = s.now().Add(SearchDebounce)
		return
	}
	s.hasSearch = false
	s.SearchResults = nil
	s.SearchCursor = -1
	s.SearchLoading = false
	// Invalidate any in-flight searches
	s.searchID++
}

// TickDebounce fires expired debounce deadlines. It returns the search and
// info requests the model should dispatch, either of which may be nil.
func (s *AppState) TickDebounce() (*SearchRequest, *InfoRequest) {
	now := s.now()

	var search *SearchRequest
	if s.hasSearch && !now.Before(s.searchDeadline) {
		s.hasSearch = false
		s.searchID++
		s.SearchLoading = true
		search = &SearchRequest{ID: s.searchID, Query: s.pendingSearch}
	}

	var info *InfoRequest
	if s.pendingFetch != nil && !now.Before(s.infoDeadline) {
		fetch := s.pendingFetch
		s.pendingFetch = nil
		s.infoID++
		s.InfoLoading = true
		info = &InfoRequest{ID: s.infoID, Name: fetch.name, Fallback: fetch.fallback}
	}

	return search, info
}

// Info pane

// ToggleInfoPane shows or hides the detail pane. Hiding invalidates any
// fetch still in flight.
func (s *AppState) ToggleInfoPane() {
	s.ShowInfoPane = !s.ShowInfoPane
	if s.ShowInfoPane {
		if s.Tab == TabNews {
			s.RefreshNewsInfo()
		} else {
			s.refreshPackageInfo()
		}
		return
	}
	s.PkgInfo = nil
	s.NewsInfo = nil
	s.pendingFetch = nil
	s.InfoLoading = false
	s.infoID++
}

// refreshPackageInfo schedules a debounced info fetch for the row under the
// cursor. Search rows carry a fallback built from the result itself, so
// uninstalled AUR packages still show something.
func (s *AppState) refreshPackageInfo() {
	if s.Tab == TabSearch {
		if s.SearchCursor >= 0 && s.SearchCursor < len(s.SearchResults) {
			result := s.SearchResults[s.SearchCursor]
			s.pendingFetch = &pendingInfo{
				name: result.Name,
				fallback: &pacman.PackageInfo{
					Name:        result.Name,
					Version:     result.Version,
					Description: result.Description,
					Repository:  result.Repository,
				},
			}
			s.infoDeadline = s.now().Add(InfoDebounce)
			return
		}
		s.clearPendingInfo()
		return
	}

	if name, ok := s.SelectedPackageName(); ok {
		s.pendingFetch = &pendingInfo{name: name}
		s.infoDeadline = s.now().Add(InfoDebounce)
		return
	}
	s.clearPendingInfo()
}

func (s *AppState) clearPendingInfo() {
	s.pendingFetch = nil
	s.PkgInfo = nil
	s.InfoLoading = false
}

// SelectedPackageName resolves the cursor row to a package name
func (s *AppState) SelectedPackageName() (string, bool) {
	switch s.Tab {
	case TabUpdates:
		if filtered := s.FilteredUpdates(); s.UpdatesCursor >= 0 && s.UpdatesCursor < len(filtered) {
			return filtered[s.UpdatesCursor].Item.Name, true
		}
	case TabInstalled:
		if filtered := s.FilteredInstalled(); s.InstalledCursor >= 0 && s.InstalledCursor < len(filtered) {
			return filtered[s.InstalledCursor].Item.Name, true
		}
	case TabOrphans:
		if s.OrphansCursor >= 0 && s.OrphansCursor < len(s.Orphans) {
			return s.Orphans[s.OrphansCursor].Name, true
		}
	case TabRebuilds:
		if s.RebuildsCursor >= 0 && s.RebuildsCursor < len(s.Issues) {
			return s.Issues[s.RebuildsCursor].Name, true
		}
	case TabSearch:
		if s.SearchCursor >= 0 && s.SearchCursor < len(s.SearchResults) {
			return s.SearchResults[s.SearchCursor].Name, true
		}
	}
	return "", false
}

// News tab

// MoveNewsCursor moves through the article list and resets article scroll
func (s *AppState) MoveNewsCursor(delta int) {
	if len(s.NewsItems) == 0 {
		return
	}
	c := s.NewsCursor
	if c < 0 {
		c = 0
	}
	c += delta
	if c < 0 {
		c = 0
	}
	if c > len(s.NewsItems)-1 {
		c = len(s.NewsItems) - 1
	}
	s.NewsCursor = c
	s.NewsScroll = 0

	if s.ShowInfoPane {
		s.RefreshNewsInfo()
	}
}

// ScrollNews scrolls the article pane, clamped to its content
func (s *AppState) ScrollNews(delta int) {
	s.NewsScroll += delta
	if s.NewsScroll < 0 {
		s.NewsScroll = 0
	}
	if s.NewsInfo != nil {
		headerLines := 4
		if len(s.NewsInfo.RelatedPackages) > 0 {
			headerLines = 5
		}
		maxScroll := headerLines + len(s.NewsInfo.Content) - 3
		if maxScroll < 0 {
			maxScroll = 0
		}
		if s.NewsScroll > maxScroll {
			s.NewsScroll = maxScroll
		}
	}
}

// RefreshNewsInfo projects the cursor article into the reading pane
func (s *AppState) RefreshNewsInfo() {
	if s.NewsCursor >= 0 && s.NewsCursor < len(s.NewsItems) {
		info := s.NewsItems[s.NewsCursor].ToInfo()
		s.NewsInfo = &info
		return
	}
	s.NewsInfo = nil
}

// CurrentNewsItem returns the article under the cursor
func (s *AppState) CurrentNewsItem() (news.Item, bool) {
	if s.NewsCursor >= 0 && s.NewsCursor < len(s.NewsItems) {
		return s.NewsItems[s.NewsCursor], true
	}
	return news.Item{}, false
}

// rematchNewsPackages recomputes related packages once the installed list
// is known, since the feed can finish loading first.
func (s *AppState) rematchNewsPackages() {
	if len(s.NewsItems) == 0 || len(s.Installed) == 0 {
		return
	}
	names := s.InstalledNames()
	for i := range s.NewsItems {
		item := &s.NewsItems[i]
		fullText := item.Title + " " + item.Description
		item.RelatedPackages = news.FindRelatedPackages(fullText, names)
	}
	if s.ShowInfoPane && s.Tab == TabNews {
		s.RefreshNewsInfo()
	}
}

// InstalledNames lists the names of all installed packages
func (s *AppState) InstalledNames() []string {
	names := make([]string, len(s.Installed))
	for i, pkg := range s.Installed {
		names[i] = pkg.Name
	}
	return names
}

// Header counts

func (s *AppState) PacmanCount() int {
	n := 0
	for _, p := range s.Packages {
		if p.Source == pacman.SourcePacman {
			n++
		}
	}
	return n
}

func (s *AppState) AurCount() int {
	return len(s.Packages) - s.PacmanCount()
}

func (s *AppState) InstalledAurCount() int {
	n := 0
	for _, p := range s.Installed {
		if p.Source == pacman.SourceAur {
			n++
		}
	}
	return n
}

func (s *AppState) NewsAttentionCount() int {
	n := 0
	for _, item := range s.NewsItems {
		if item.RequiresAttention {
			n++
		}
	}
	return n
}

func (s *AppState) NewsRelatedCount() int {
	n := 0
	for _, item := range s.NewsItems {
		if len(item.RelatedPackages) > 0 {
			n++
		}
	}
	return n
}

// Action resolution. Explicit selection marks win; otherwise the cursor
// row is used; with neither, the action is a no-op (nil).

// RunSelectedUpdate updates the explicitly selected packages
func (s *AppState) RunSelectedUpdate() action.Action {
	if s.Tab != TabUpdates {
		return nil
	}
	var names []string
	for _, p := range s.Packages {
		if p.Selected {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return action.RunUpdate{Packages: names}
}

// UninstallSelected removes the selected or cursored package on the
// Installed and Orphans tabs.
func (s *AppState) UninstallSelected(withDeps bool) action.Action {
	var pool []pacman.InstalledPackage
	switch s.Tab {
	case TabInstalled:
		pool = s.Installed
	case TabOrphans:
		pool = s.Orphans
	default:
		return nil
	}

	var names []string
	for _, p := range pool {
		if p.Selected {
			names = append(names, p.Name)
		}
	}

	if len(names) == 0 {
		switch s.Tab {
		case TabInstalled:
			filtered := s.FilteredInstalled()
			if s.InstalledCursor < 0 || s.InstalledCursor >= len(filtered) {
				return nil
			}
			names = []string{filtered[s.InstalledCursor].Item.Name}
		case TabOrphans:
			if s.OrphansCursor < 0 || s.OrphansCursor >= len(s.Orphans) {
				return nil
			}
			names = []string{s.Orphans[s.OrphansCursor].Name}
		}
	}

	if withDeps {
		return action.UninstallWithDeps{Packages: names}
	}
	return action.Uninstall{Packages: names}
}

// ReinstallSelected reinstalls or force-rebuilds on the Installed tab
func (s *AppState) ReinstallSelected(forceRebuild bool) action.Action {
	if s.Tab != TabInstalled {
		return nil
	}

	var names []string
	for _, p := range s.Installed {
		if p.Selected {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		filtered := s.FilteredInstalled()
		if s.InstalledCursor < 0 || s.InstalledCursor >= len(filtered) {
			return nil
		}
		names = []string{filtered[s.InstalledCursor].Item.Name}
	}

	if forceRebuild {
		return action.ForceRebuild{Packages: names}
	}
	return action.Reinstall{Packages: names}
}

// InstallSelected installs from the Search tab, skipping rows that are
// already installed.
func (s *AppState) InstallSelected() action.Action {
	if s.Tab != TabSearch {
		return nil
	}

	var names []string
	for _, r := range s.SearchResults {
		if r.Selected && !r.Installed {
			names = append(names, r.Name)
		}
	}
	if len(names) == 0 {
		if s.SearchCursor >= 0 && s.SearchCursor < len(s.SearchResults) {
			if r := s.SearchResults[s.SearchCursor]; !r.Installed {
				return action.Install{Packages: []string{r.Name}}
			}
		}
		return nil
	}
	return action.Install{Packages: names}
}

// RunPrimaryAction resolves Enter: update everything on Updates, run the
// selected rebuild commands on Rebuilds.
func (s *AppState) RunPrimaryAction() action.Action {
	switch s.Tab {
	case TabUpdates:
		return action.RunUpdate{}
	case TabRebuilds:
		var commands []string
		for _, issue := range s.Issues {
			if issue.Selected {
				commands = append(commands, issue.RebuildCommand)
			}
		}
		if len(commands) > 0 {
			return action.RunRebuild{Command: joinCommands(commands)}
		}
		if s.RebuildsCursor >= 0 && s.RebuildsCursor < len(s.Issues) {
			return action.RunRebuild{Command: s.Issues[s.RebuildsCursor].RebuildCommand}
		}
	}
	return nil
}

func joinCommands(commands []string) string {
	joined := commands[0]
	for _, cmd := range commands[1:] {
		joined += " && " + cmd
	}
	return joined
}
