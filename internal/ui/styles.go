package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for ids, borders
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorBadge     = "63"  // Violet - for category badges
)

// Card geometry. cardWidth is the outer width including the border.
const (
	cardWidth  = 38
	cardGap    = 1
	defaultCol = 80
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title        lipgloss.Style // Bold accent color - page title
	Subtitle     lipgloss.Style // Muted - line under the title
	TitleWarning lipgloss.Style // Bold danger color - error title

	BoxDanger lipgloss.Style // Error panel (danger border)
	Card      lipgloss.Style // One fact

	FactID   lipgloss.Style // "#12" in a card header
	Category lipgloss.Style // Category badge
	FactText lipgloss.Style // Body text of a card

	Normal lipgloss.Style // Normal text
	Hint   lipgloss.Style // Help/hint text
	Status lipgloss.Style // Spinner and loading text
	Empty  lipgloss.Style // Empty state text (muted, italic)
	Footer lipgloss.Style // Total count line
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	FactID: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Category: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBadge)),
	FactText: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
}
