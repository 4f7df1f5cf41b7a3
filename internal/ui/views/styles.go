package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	TitleActive    lipgloss.Style
	TitleInactive  lipgloss.Style
	BorderActive   lipgloss.Style
	BorderInactive lipgloss.Style
	Active        lipgloss.Style
	Warning       lipgloss.Style
	Error         lipgloss.Style
	Disabled      lipgloss.Style
	RowHighlight  lipgloss.Style
	TabSelected   lipgloss.Style
	HelpKey       lipgloss.Style
	Help          lipgloss.Style
	NewsRelated   lipgloss.Style
	NewsAttention lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		TitleActive:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		TitleInactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		BorderActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		BorderInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Active:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Warning:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Disabled:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		RowHighlight:  lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("238")),
		TabSelected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		HelpKey:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Help:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		NewsRelated:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // blue
		NewsAttention: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}
