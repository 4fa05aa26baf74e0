package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient hint bar shown after SPC.
// Displays SPC-prefixed bindings in a compact bar format. When the
// handler is mid-sequence (e.g. "SPC t"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler) string {
	if keyHandler == nil {
		return ""
	}
	currentSeq := ""
	if len(keyHandler.Buffer) > 0 {
		currentSeq = strings.Join(keyHandler.Buffer, " ")
	}
	hints := keyHandler.Registry.LeaderHints(currentSeq)
	if len(hints) == 0 {
		return ""
	}

	// Sort keys for stable display
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Convert hints to key.Binding slice for bubbles/help
	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	helpModel := help.New()
	helpModel.Styles.ShortKey = Styles.Selected
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	content := Styles.Hint.Render(prefix) + " " + helpModel.ShortHelpView(bindings)
	return boxStyle.Render(content)
}
