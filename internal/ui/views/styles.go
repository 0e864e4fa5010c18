package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	FocusedLabel  lipgloss.Style
	Counter       lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Dropdown      lipgloss.Style
	Emphasis      lipgloss.Style
	HighlightBg   lipgloss.Style
	Fallback      lipgloss.Style
	Placeholder   lipgloss.Style
	Checkbox      lipgloss.Style
	Button        lipgloss.Style
	ButtonReady   lipgloss.Style
	ButtonFocused lipgloss.Style
	Toast         lipgloss.Style
	StatusLoading lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FocusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Counter:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Dim:          lipgloss.NewStyle().Faint(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(1, 2),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		Emphasis:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Fallback:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true), // yellow
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Checkbox:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Button:        lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		ButtonReady:   lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("78")).Bold(true),
		ButtonFocused: lipgloss.NewStyle().Underline(true),
		Toast:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
