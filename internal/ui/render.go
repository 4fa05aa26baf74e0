package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"phiview/internal/content"
)

const (
	// minRenderWidth keeps degenerate terminal sizes readable.
	minRenderWidth = 40
	// minCardWidth is the narrowest a comparison card may get before the
	// row falls back to vertical stacking. An 80-column terminal keeps
	// the three cards side by side.
	minCardWidth = 22
)

// RenderScreen produces the complete styled text for a screen at the
// given width. It is a pure function of its inputs: no state is read or
// written, and identical calls yield identical strings.
func RenderScreen(s content.Screen, width int) string {
	if width < minRenderWidth {
		width = minRenderWidth
	}

	var b strings.Builder
	for _, el := range s.Elements {
		b.WriteString(renderElement(el, width))
	}
	return b.String()
}

// renderElement dispatches on the concrete element type. Unknown types
// render as nothing rather than panicking.
func renderElement(el content.Element, width int) string {
	switch el := el.(type) {
	case content.Heading:
		return Styles.Heading.Render(el.Text) + "\n"
	case content.Section:
		return Styles.Section.Render(el.Title) + "\n"
	case content.Paragraph:
		return Styles.Normal.Width(width).Render(el.Text) + "\n"
	case content.Spacer:
		if el.Lines <= 0 {
			return ""
		}
		return strings.Repeat("\n", el.Lines)
	case content.LabeledRow:
		return renderRow(el, width) + "\n"
	case content.ComparisonRow:
		return renderComparisonRow(el, width) + "\n"
	case content.CodeBlock:
		return renderCode(el, width) + "\n"
	case content.References:
		return renderReferences(el, width)
	default:
		return ""
	}
}

// renderRow renders a caption line above a bold value. The row's accent
// colors the value; AccentDefault keeps the normal text color.
func renderRow(r content.LabeledRow, width int) string {
	value := Styles.Value.Inherit(AccentStyle(r.Accent)).Width(width).Render(r.Value)
	return Styles.Caption.Render(r.Label) + "\n" + value
}

// renderComparisonRow lays cards out side by side when the terminal is
// wide enough, otherwise stacks them vertically in the same order.
func renderComparisonRow(row content.ComparisonRow, width int) string {
	n := len(row.Cards)
	if n == 0 {
		return Styles.Empty.Render("(no examples)")
	}

	// Border and gap overhead per card: 2 border cols + 2 padding + 1 gap.
	cardWidth := (width / n) - 3
	if cardWidth >= minCardWidth {
		rendered := make([]string, n)
		for i, c := range row.Cards {
			rendered[i] = renderCard(c, cardWidth)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	// Narrow terminal: full-width cards, one per line.
	parts := make([]string, n)
	for i, c := range row.Cards {
		parts[i] = renderCard(c, width-4)
	}
	return strings.Join(parts, "\n")
}

// renderCard renders one example system: accent-colored icon, title, and
// the three labeled rows in fixed order.
func renderCard(c content.ComparisonCard, innerWidth int) string {
	var b strings.Builder
	b.WriteString(AccentStyle(c.Accent).Render(c.Icon) + "  " + Styles.Value.Render(c.Title))
	for _, r := range c.Rows() {
		b.WriteString("\n\n")
		b.WriteString(renderRow(r, innerWidth))
	}
	return Styles.Card.Width(innerWidth).Render(b.String())
}

// renderCode renders the fixed string verbatim inside a bordered,
// padded panel that fills the available width. The content is never
// parsed or reflowed; lines longer than the panel are left to the
// terminal to clip.
func renderCode(c content.CodeBlock, width int) string {
	return Styles.CodePanel.Width(width).Render(c.Text)
}

// renderReferences renders numbered citation lines.
func renderReferences(r content.References, width int) string {
	var b strings.Builder
	for i, cit := range r.Citations {
		line := fmt.Sprintf("[%d] %s", i+1, cit.Text)
		b.WriteString(Styles.Citation.Width(width).Render(line) + "\n")
	}
	return b.String()
}
