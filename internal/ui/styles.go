package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the active control, selected rows
	ColorMuted     = "241" // Gray - for inactive controls, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for gantt bars
	ColorError     = "196" // Red - for errors
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title   lipgloss.Style // Bold accent color - for main titles
	Box     lipgloss.Style // Rounded border box (highlight border)
	Control lipgloss.Style // Inactive mode control
	Active  lipgloss.Style // Active mode control
	Muted   lipgloss.Style // Dimmed text
	Normal  lipgloss.Style // Normal text
	Hint    lipgloss.Style // Help/hint text
	Status  lipgloss.Style // Status line
	Section lipgloss.Style // Column/section headers
	Bar     lipgloss.Style // Gantt bars
	Modal   lipgloss.Style // Modal box
	Error   lipgloss.Style // Inline errors
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Control: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Active: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 1),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Bar: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2).
		Margin(1),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorError)),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Active
	d.Styles.SelectedDesc = Styles.Active
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
