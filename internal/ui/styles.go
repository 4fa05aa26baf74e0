package ui

import (
	"github.com/charmbracelet/lipgloss"

	"phiview/internal/content"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, section titles
	ColorMuted     = "241" // Gray - for captions, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for borders, very dim text

	// Card accent colors
	ColorYellow = "220" // photodiode
	ColorBlue   = "39"  // camera
	ColorPurple = "135" // brain
	ColorGreen  = "78"
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	// Title styles
	Heading lipgloss.Style // Bold accent color - screen header
	Section lipgloss.Style // Section titles (highlight color)

	// Box styles
	Card      lipgloss.Style // Comparison card (rounded border)
	CodePanel lipgloss.Style // Bordered monospace panel

	// Text styles
	Normal   lipgloss.Style // Body text (text color)
	Caption  lipgloss.Style // Row labels (muted)
	Value    lipgloss.Style // Row values (bold; accent applied per row)
	Hint     lipgloss.Style // Help/hint text (muted color)
	Citation lipgloss.Style // Reference strings (dim)
	Selected lipgloss.Style // Highlighted/selected items
	Empty    lipgloss.Style // Empty state text (muted, italic)
}{
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	CodePanel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 2).
		Foreground(lipgloss.Color(ColorText)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Caption: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Value: lipgloss.NewStyle().
		Bold(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Citation: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}

// AccentColor maps a content accent token to its ANSI color.
func AccentColor(a content.Accent) string {
	switch a {
	case content.AccentYellow:
		return ColorYellow
	case content.AccentBlue:
		return ColorBlue
	case content.AccentPurple:
		return ColorPurple
	case content.AccentGreen:
		return ColorGreen
	default:
		return ColorText
	}
}

// AccentStyle returns a foreground style for an accent token.
func AccentStyle(a content.Accent) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(AccentColor(a)))
}
