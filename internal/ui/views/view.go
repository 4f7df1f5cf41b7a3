// Package views renders the application state into the terminal frame.
// Rendering is pure: everything is derived from the AppState each frame.
package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"upkeep/internal/backup"
	"upkeep/internal/news"
	"upkeep/internal/ui/state"
)

var styles = NewStyles()

// The frame is header (3) + status (1) + content + help (2); the detail
// pane takes the bottom of the content area.
const (
	headerHeight   = 3
	helpHeight     = 2
	infoPaneHeight = 10
)

// Render produces the complete frame
func Render(s *state.AppState, spin string, width, height int) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	contentHeight := height - headerHeight - 1 - helpHeight
	if contentHeight < 5 {
		contentHeight = 5
	}

	sections := []string{
		renderHeader(s, width),
		renderStatus(s, spin, width),
		renderContent(s, width, contentHeight),
		renderHelp(s, width),
	}
	return strings.Join(sections, "\n")
}

// BackupStatus is the status line shown after a successful export
func BackupStatus(result backup.ExportResult) string {
	return fmt.Sprintf("Exported %d official + %d AUR packages to %s",
		result.Official, result.Aur, filepath.Dir(result.PackagesPath))
}

// ClipboardStatus is the status line shown after copying the package list
func ClipboardStatus(official, aur int) string {
	return fmt.Sprintf("Copied %d official + %d AUR package names to clipboard", official, aur)
}

// fit pads or truncates a styled line to an exact cell width. Wrapping is
// never wanted here, so truncation is done by hand, ANSI-aware.
func fit(line string, width int) string {
	line = truncateANSI(line, width)
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

// truncateANSI cuts a line to the given cell width, keeping escape
// sequences intact and closing any styling left open at the cut.
func truncateANSI(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	w := 0
	inEscape := false
	for _, r := range s {
		if inEscape {
			b.WriteRune(r)
			if r != '[' && r >= '@' && r <= '~' {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			inEscape = true
			b.WriteRune(r)
			continue
		}
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	b.WriteString("\x1b[0m")
	return b.String()
}

// truncatePad left-aligns s into exactly max cells, with an ellipsis when
// it does not fit.
func truncatePad(s string, max int) string {
	if len(s) > max {
		cut := max - 3
		if cut < 0 {
			cut = 0
		}
		s = s[:cut] + "..."
	}
	return fmt.Sprintf("%-*s", max, s)
}

// formatPackageName fits "name (AUR)" into a fixed column, truncating the
// name but never the source label.
func formatPackageName(name, sourceLabel string, width int) string {
	combined := name + sourceLabel
	if len(combined) <= width {
		return fmt.Sprintf("%-*s", width, combined)
	}
	avail := width - len(sourceLabel) - 3
	if avail < 0 {
		avail = 0
	}
	if avail > len(name) {
		avail = len(name)
	}
	return fmt.Sprintf("%-*s", width, name[:avail]+"..."+sourceLabel)
}

// box draws a bordered pane with the title embedded in the top edge
func box(title string, active bool, width, height int, lines []string) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	border := styles.BorderInactive
	titleStyle := styles.TitleInactive
	if active {
		border = styles.BorderActive
		titleStyle = styles.TitleActive
	}

	dashes := inner - 1 - lipgloss.Width(title)
	if dashes < 0 {
		dashes = 0
	}

	var b strings.Builder
	b.WriteString(border.Render("┌─"))
	b.WriteString(titleStyle.Render(title))
	b.WriteString(border.Render(strings.Repeat("─", dashes) + "┐"))

	rows := height - 2
	for i := 0; i < rows; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		b.WriteString("\n")
		b.WriteString(border.Render("│"))
		b.WriteString(fit(line, inner))
		b.WriteString(border.Render("│"))
	}

	b.WriteString("\n")
	b.WriteString(border.Render("└" + strings.Repeat("─", inner) + "┘"))
	return b.String()
}

// emptyBox is a pane holding only a dimmed message
func emptyBox(title, message string, width, height int) string {
	var lines []string
	for _, line := range strings.Split(message, "\n") {
		lines = append(lines, styles.Disabled.Render(line))
	}
	return box(title, true, width, height, lines)
}

// listBox scrolls rows so the cursor stays visible and frames them
func listBox(title string, rows []string, cursor, width, height int) string {
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}
	if start > end {
		start = end
	}
	return box(title, true, width, height, rows[start:end])
}

// cursorPrefix mirrors the list highlight symbol
func cursorPrefix(isCursor bool) string {
	if isCursor {
		return ">> "
	}
	return "   "
}

func checkbox(selected bool) string {
	if selected {
		return styles.Active.Render("[x] ")
	}
	return styles.Disabled.Render("[ ] ")
}

// Header and status

func renderHeader(s *state.AppState, width int) string {
	tabs := []state.Tab{
		state.TabUpdates, state.TabInstalled, state.TabOrphans,
		state.TabRebuilds, state.TabSearch, state.TabNews,
	}
	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		name := tab.String()
		if tab == s.Tab {
			parts[i] = styles.TabSelected.Render(name)
		} else {
			parts[i] = name
		}
	}
	line := " " + strings.Join(parts, styles.Disabled.Render(" │ "))
	return box(" upkeep ", true, width, headerHeight, []string{line})
}

// pick highlights a count once it is nonzero
func pick(n int, hot lipgloss.Style) lipgloss.Style {
	if n > 0 {
		return hot
	}
	return styles.Active
}

// renderStatus shows transient messages, or the summary counts in one of
// three width tiers.
func renderStatus(s *state.AppState, spin string, width int) string {
	if s.StatusMessage != "" {
		return fit(" "+styles.Active.Render(s.StatusMessage), width)
	}

	pac := s.PacmanCount()
	aur := s.AurCount()
	inst := len(s.Installed)
	instAur := s.InstalledAurCount()
	orph := len(s.Orphans)
	reb := len(s.Issues)

	pacStyle := pick(pac, styles.Warning)
	aurStyle := pick(aur, styles.Warning)
	orphStyle := pick(orph, styles.Warning)
	rebStyle := pick(reb, styles.Error)
	sep := styles.Disabled.Render(" | ")

	var line string
	switch {
	case width >= 100:
		loading := ""
		if s.Loading() {
			loading = " " + spin + " loading..."
		}
		line = " Pacman: " + pacStyle.Render(fmt.Sprintf("%d updates", pac)) + sep +
			"AUR: " + aurStyle.Render(fmt.Sprintf("%d updates", aur)) + sep +
			"Installed: " + styles.Active.Render(fmt.Sprintf("%d", inst)) +
			styles.Disabled.Render(fmt.Sprintf(" (%d AUR)", instAur)) + sep +
			"Orphans: " + orphStyle.Render(fmt.Sprintf("%d", orph)) + sep +
			"Rebuilds: " + rebStyle.Render(fmt.Sprintf("%d issues", reb)) +
			styles.Warning.Render(loading)
	case width >= 60:
		loading := ""
		if s.Loading() {
			loading = " " + spin
		}
		line = " Pac: " + pacStyle.Render(fmt.Sprintf("%d", pac)) + sep +
			"AUR: " + aurStyle.Render(fmt.Sprintf("%d", aur)) + sep +
			"Inst: " + styles.Active.Render(fmt.Sprintf("%d", inst)) +
			styles.Disabled.Render(fmt.Sprintf(" (%d)", instAur)) + sep +
			"Orph: " + orphStyle.Render(fmt.Sprintf("%d", orph)) + sep +
			"Reb: " + rebStyle.Render(fmt.Sprintf("%d", reb)) +
			styles.Warning.Render(loading)
	default:
		loading := ""
		if s.Loading() {
			loading = " " + spin
		}
		line = " P:" + pacStyle.Render(fmt.Sprintf("%d", pac)) +
			" A:" + aurStyle.Render(fmt.Sprintf("%d", aur)) +
			" I:" + styles.Active.Render(fmt.Sprintf("%d", inst)) +
			" O:" + orphStyle.Render(fmt.Sprintf("%d", orph)) +
			" R:" + rebStyle.Render(fmt.Sprintf("%d", reb)) +
			loading
	}
	return fit(line, width)
}

// Tab content

func renderContent(s *state.AppState, width, height int) string {
	switch s.Tab {
	case state.TabUpdates:
		return renderUpdates(s, width, height)
	case state.TabInstalled:
		return renderInstalled(s, width, height)
	case state.TabOrphans:
		return renderOrphans(s, width, height)
	case state.TabRebuilds:
		return renderRebuilds(s, width, height)
	case state.TabSearch:
		return renderSearch(s, width, height)
	}
	return renderNews(s, width, height)
}

func renderFilterBar(s *state.AppState, matches, width int) string {
	if s.FilterMode {
		return fit(styles.Warning.Render(fmt.Sprintf(" Filter: %s█", s.FilterText)), width)
	}
	return fit(styles.Disabled.Render(fmt.Sprintf(" Filter: %s (%d matches)", s.FilterText, matches)), width)
}

func renderUpdates(s *state.AppState, width, height int) string {
	var sections []string

	listHeight := height
	if s.ShowInfoPane {
		listHeight -= infoPaneHeight
	}

	filtered := s.FilteredUpdates()
	showFilter := s.FilterMode || s.FilterText != ""
	if showFilter {
		listHeight--
		sections = append(sections, renderFilterBar(s, len(filtered), width))
	}
	if listHeight < 3 {
		listHeight = 3
	}

	switch {
	case len(s.Packages) == 0:
		message := "No updates available"
		if s.Loading() {
			message = "Checking for updates..."
		}
		sections = append(sections, emptyBox(" Packages ", message, width, listHeight))
	case len(filtered) == 0 && s.FilterText != "":
		sections = append(sections, emptyBox(" Packages ", "No packages match filter", width, listHeight))
	default:
		rows := make([]string, len(filtered))
		for i, entry := range filtered {
			pkg := entry.Item
			name := formatPackageName(pkg.Name, pkg.Source.Label(), 30)
			if i == s.UpdatesCursor {
				name = styles.RowHighlight.Render(name)
			}
			rows[i] = cursorPrefix(i == s.UpdatesCursor) + checkbox(pkg.Selected) + name + " " +
				styles.Disabled.Render(truncatePad(pkg.OldVersion, 14)+" -> ") +
				styles.Active.Render(pkg.NewVersion)
		}
		sections = append(sections, listBox(" Packages ", rows, s.UpdatesCursor, width, listHeight))
	}

	if s.ShowInfoPane {
		sections = append(sections, renderInfoPane(s, width))
	}
	return strings.Join(sections, "\n")
}

func renderInstalled(s *state.AppState, width, height int) string {
	var sections []string

	listHeight := height
	if s.ShowInfoPane {
		listHeight -= infoPaneHeight
	}

	filtered := s.FilteredInstalled()
	showFilter := s.FilterMode || s.FilterText != ""
	if showFilter {
		listHeight--
		sections = append(sections, renderFilterBar(s, len(filtered), width))
	}
	if listHeight < 3 {
		listHeight = 3
	}

	switch {
	case len(s.Installed) == 0:
		message := "No explicitly installed packages found"
		if s.Loading() {
			message = "Loading installed packages..."
		}
		sections = append(sections, emptyBox(" Installed Packages ", message, width, listHeight))
	case len(filtered) == 0 && s.FilterText != "":
		sections = append(sections, emptyBox(" Installed Packages ", "No packages match filter", width, listHeight))
	default:
		rows := make([]string, len(filtered))
		for i, entry := range filtered {
			pkg := entry.Item
			name := formatPackageName(pkg.Name, pkg.Source.Label(), 36)
			if i == s.InstalledCursor {
				name = styles.RowHighlight.Render(name)
			}
			rows[i] = cursorPrefix(i == s.InstalledCursor) + checkbox(pkg.Selected) + name + " " +
				styles.Disabled.Render(pkg.Version)
		}
		sections = append(sections, listBox(" Installed Packages ", rows, s.InstalledCursor, width, listHeight))
	}

	if s.ShowInfoPane {
		sections = append(sections, renderInfoPane(s, width))
	}
	return strings.Join(sections, "\n")
}

func renderOrphans(s *state.AppState, width, height int) string {
	var sections []string

	listHeight := height
	if s.ShowInfoPane {
		listHeight -= infoPaneHeight
	}
	if listHeight < 3 {
		listHeight = 3
	}

	if len(s.Orphans) == 0 {
		message := "No orphan packages found"
		if s.Loading() {
			message = "Checking for orphan packages..."
		}
		sections = append(sections, emptyBox(" Orphan Packages ", message, width, listHeight))
	} else {
		rows := make([]string, len(s.Orphans))
		for i, pkg := range s.Orphans {
			name := formatPackageName(pkg.Name, pkg.Source.Label(), 36)
			if i == s.OrphansCursor {
				name = styles.RowHighlight.Render(name)
			}
			rows[i] = cursorPrefix(i == s.OrphansCursor) + checkbox(pkg.Selected) + name + " " +
				styles.Disabled.Render(pkg.Version)
		}
		sections = append(sections, listBox(" Orphan Packages ", rows, s.OrphansCursor, width, listHeight))
	}

	if s.ShowInfoPane {
		sections = append(sections, renderInfoPane(s, width))
	}
	return strings.Join(sections, "\n")
}

func renderRebuilds(s *state.AppState, width, height int) string {
	var sections []string

	listHeight := height
	if s.ShowInfoPane {
		listHeight -= infoPaneHeight
	}
	if listHeight < 3 {
		listHeight = 3
	}

	if len(s.Issues) == 0 {
		var message string
		switch {
		case s.Loading():
			message = "Checking for rebuild issues..."
		case len(s.Checks) == 0:
			message = "No rebuild checks configured\nAdd checks to ~/.config/upkeep/checks.toml"
		default:
			message = "No rebuild issues detected"
		}
		sections = append(sections, emptyBox(" Rebuild Issues ", message, width, listHeight))
	} else {
		rows := make([]string, len(s.Issues))
		for i, issue := range s.Issues {
			name := issue.Name
			if i == s.RebuildsCursor {
				name = styles.RowHighlight.Render(name)
			} else {
				name = styles.Error.Render(name)
			}
			rows[i] = cursorPrefix(i == s.RebuildsCursor) + checkbox(issue.Selected) + name +
				styles.Disabled.Render(" - needs rebuild")
		}
		sections = append(sections, listBox(" Rebuild Issues ", rows, s.RebuildsCursor, width, listHeight))
	}

	if s.ShowInfoPane {
		sections = append(sections, renderInfoPane(s, width))
	}
	return strings.Join(sections, "\n")
}

func renderSearch(s *state.AppState, width, height int) string {
	var sections []string

	listHeight := height - 1
	if s.ShowInfoPane {
		listHeight -= infoPaneHeight
	}
	if listHeight < 3 {
		listHeight = 3
	}

	sections = append(sections, fit(styles.Warning.Render(fmt.Sprintf(" Search: %s█", s.SearchQuery)), width))

	if len(s.SearchResults) == 0 {
		var message string
		switch {
		case len(s.SearchQuery) < 2:
			message = "Type to search packages..."
		case s.SearchLoading:
			message = "Searching..."
		default:
			message = "No results found"
		}
		sections = append(sections, emptyBox(" Search Results ", message, width, listHeight))
	} else {
		rows := make([]string, len(s.SearchResults))
		for i, result := range s.SearchResults {
			mark := checkbox(result.Selected)
			if !result.Selected && result.Installed {
				mark = styles.Disabled.Render("[=] ")
			}
			name := formatPackageName(result.Name, fmt.Sprintf(" (%s)", result.Repository), 36)
			switch {
			case i == s.SearchCursor:
				name = styles.RowHighlight.Render(name)
			case result.Installed:
				name = styles.Disabled.Render(name)
			}
			rows[i] = cursorPrefix(i == s.SearchCursor) + mark + name + " " +
				styles.Disabled.Render(result.Version)
		}
		title := fmt.Sprintf(" Search Results (%d) ", len(s.SearchResults))
		sections = append(sections, listBox(title, rows, s.SearchCursor, width, listHeight))
	}

	if s.ShowInfoPane {
		sections = append(sections, renderInfoPane(s, width))
	}
	return strings.Join(sections, "\n")
}

func renderNews(s *state.AppState, width, height int) string {
	// The article pane gets half the screen, unlike the fixed pane elsewhere
	listHeight := height
	articleHeight := 0
	if s.ShowInfoPane {
		articleHeight = height / 2
		listHeight = height - articleHeight
	}
	if listHeight < 3 {
		listHeight = 3
	}

	var sections []string

	if len(s.NewsItems) == 0 {
		var message string
		switch {
		case s.NewsLoading:
			message = "Loading Arch Linux news..."
		case s.NewsError:
			message = "Failed to fetch news (press r to retry)"
		default:
			message = "No news items available"
		}
		sections = append(sections, emptyBox(" Arch News ", message, width, listHeight))
	} else {
		rows := make([]string, len(s.NewsItems))
		for i, item := range s.NewsItems {
			star := " "
			if len(item.RelatedPackages) > 0 {
				star = styles.NewsRelated.Render("*")
			}
			bang := " "
			if item.RequiresAttention {
				bang = styles.NewsAttention.Render("!")
			}

			title := truncatePad(item.Title, 60)
			switch {
			case i == s.NewsCursor:
				title = styles.RowHighlight.Render(title)
			case item.RequiresAttention:
				title = styles.NewsAttention.Render(title)
			}

			rows[i] = cursorPrefix(i == s.NewsCursor) + star + bang + " " +
				styles.Disabled.Render(fmt.Sprintf("%-6s ", news.ShortDate(item.PubDate))) +
				title + styles.Disabled.Render(" - "+item.Author)
		}

		attention := s.NewsAttentionCount()
		related := s.NewsRelatedCount()
		title := fmt.Sprintf(" Arch News (%d) ", len(s.NewsItems))
		if attention > 0 || related > 0 {
			title = fmt.Sprintf(" Arch News (%d attention, %d related) ", attention, related)
		}
		sections = append(sections, listBox(title, rows, s.NewsCursor, width, listHeight))
	}

	if s.ShowInfoPane {
		sections = append(sections, renderArticlePane(s, width, articleHeight))
	}
	return strings.Join(sections, "\n")
}

// Detail panes

func renderInfoPane(s *state.AppState, width int) string {
	info := s.PkgInfo
	if info == nil {
		return box(" Info ", false, width, infoPaneHeight,
			[]string{styles.Disabled.Render("No package info available")})
	}

	repo := ""
	if info.Repository != "" {
		repo = styles.Disabled.Render(fmt.Sprintf("(%s)", info.Repository))
	}
	line1 := styles.TitleActive.Render(info.Name) + " " + styles.Active.Render(info.Version) + " " + repo

	installInfo := ""
	switch {
	case info.InstallDate != "" && info.InstallReason != "":
		installInfo = fmt.Sprintf(" | %s | %s", info.InstallDate, info.InstallReason)
	case info.InstallDate != "":
		installInfo = fmt.Sprintf(" | %s", info.InstallDate)
	}
	line3 := styles.Disabled.Render("Size: ") + styles.Active.Render(info.Size) +
		styles.Disabled.Render(installInfo)

	line4 := styles.Disabled.Render("URL: ") + styles.Active.Render(info.URL)
	line5 := styles.Disabled.Render("Built: ") + styles.Active.Render(info.BuildDate)

	line6 := styles.Disabled.Render("Required by: None")
	if len(info.RequiredBy) > 0 {
		line6 = styles.Disabled.Render("Required by: ") +
			styles.Active.Render(truncatePad(strings.Join(info.RequiredBy, ", "), 60))
	}
	line7 := styles.Disabled.Render("Optional for: None")
	if len(info.OptionalFor) > 0 {
		line7 = styles.Disabled.Render("Optional for: ") +
			styles.Active.Render(truncatePad(strings.Join(info.OptionalFor, ", "), 60))
	}

	line8 := ""
	if info.Maintainer != "" {
		line8 = styles.Disabled.Render("Maintainer: ") + styles.Active.Render(info.Maintainer)
	}
	if info.Votes > 0 {
		if line8 != "" {
			line8 += styles.Disabled.Render(" | ")
		}
		line8 += styles.Disabled.Render("Votes: ") + styles.Active.Render(fmt.Sprintf("%d", info.Votes))
	}

	lines := []string{line1, info.Description, line3, line4, line5, line6, line7, line8}
	return box(" Info ", false, width, infoPaneHeight, lines)
}

func renderArticlePane(s *state.AppState, width, height int) string {
	title := " Article (Shift+↑/↓ to scroll) "
	info := s.NewsInfo
	if info == nil {
		return box(title, false, width, height,
			[]string{styles.Disabled.Render("Select a news item to view details")})
	}

	lines := []string{
		styles.TitleActive.Render(info.Title),
		styles.Disabled.Render("By: ") + styles.Active.Render(info.Author) +
			styles.Disabled.Render(" | "+info.Date),
		styles.Disabled.Render("Link: ") + styles.Active.Render(info.Link),
	}
	if len(info.RelatedPackages) > 0 {
		lines = append(lines, styles.Disabled.Render("Related: ")+
			styles.NewsRelated.Render(strings.Join(info.RelatedPackages, ", ")))
	}
	lines = append(lines, "")
	lines = append(lines, info.Content...)

	if s.NewsScroll < len(lines) {
		lines = lines[s.NewsScroll:]
	} else {
		lines = nil
	}
	return box(title, false, width, height, lines)
}

// Help bar

type helpEntry struct {
	key   string
	label string
	style *lipgloss.Style
}

func helpLine(width int, entries []helpEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		keyStyle := styles.HelpKey
		if e.style != nil {
			keyStyle = *e.style
		}
		parts[i] = keyStyle.Render(e.key) + styles.Help.Render(" "+e.label)
	}
	line := strings.Join(parts, styles.Help.Render(" | "))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func renderHelp(s *state.AppState, width int) string {
	var line1, line2 string
	switch s.Tab {
	case state.TabUpdates:
		line1 = helpLine(width, []helpEntry{
			{key: "f/F", label: "Filter"},
			{key: "u", label: "Update"},
			{key: "Enter", label: "Update All"},
			{key: "a/n", label: "All/None"},
		})
		line2 = helpLine(width, []helpEntry{
			{key: "Space", label: "Select"},
			{key: "?", label: "Info"},
			{key: "r", label: "Refresh"},
			{key: "q", label: "Quit"},
		})
	case state.TabInstalled:
		line1 = helpLine(width, []helpEntry{
			{key: "f/F", label: "Filter"},
			{key: "d/D", label: "Remove/+Deps"},
			{key: "i/I", label: "Reinstall/src"},
			{key: "b/y", label: "Backup/Copy"},
			{key: "a/n", label: "All/None"},
		})
		line2 = helpLine(width, []helpEntry{
			{key: "Space", label: "Select"},
			{key: "?", label: "Info"},
			{key: "r", label: "Refresh"},
			{key: "q", label: "Quit"},
		})
	case state.TabOrphans:
		line1 = helpLine(width, []helpEntry{
			{key: "d/D", label: "Remove/+Deps"},
			{key: "a/n", label: "All/None"},
		})
		line2 = helpLine(width, []helpEntry{
			{key: "Space", label: "Select"},
			{key: "?", label: "Info"},
			{key: "r", label: "Refresh"},
			{key: "q", label: "Quit"},
		})
	case state.TabRebuilds:
		line1 = helpLine(width, []helpEntry{
			{key: "Enter", label: "Fix"},
			{key: "a/n", label: "All/None"},
		})
		line2 = helpLine(width, []helpEntry{
			{key: "Space", label: "Select"},
			{key: "?", label: "Info"},
			{key: "r", label: "Refresh"},
			{key: "q", label: "Quit"},
		})
	case state.TabSearch:
		line1 = helpLine(width, []helpEntry{
			{key: "Type", label: "to search"},
			{key: "Enter", label: "Install"},
			{key: "Esc", label: "Clear"},
		})
		line2 = helpLine(width, []helpEntry{
			{key: "Space", label: "Select"},
			{key: "?", label: "Info"},
			{key: "q", label: "Quit"},
		})
	default:
		line1 = helpLine(width, []helpEntry{
			{key: "↑/↓", label: "Navigate"},
			{key: "Shift+↑/↓", label: "Scroll"},
			{key: "o", label: "Open"},
			{key: "*", label: "related", style: &styles.NewsRelated},
			{key: "!", label: "attention", style: &styles.NewsAttention},
		})
		line2 = helpLine(width, []helpEntry{
			{key: "?", label: "Article"},
			{key: "r", label: "Refresh"},
			{key: "q", label: "Quit"},
		})
	}
	return line1 + "\n" + line2
}
