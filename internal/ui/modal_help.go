package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DismissModalMsg asks the app to close the active overlay.
type DismissModalMsg struct{}

// HelpModal lists the key bindings for the current mode. Esc or ? closes it.
type HelpModal struct {
	Mode AppMode
}

// Ensure HelpModal implements View.
var _ View = (*HelpModal)(nil)

// NewHelpModal creates the help overlay for the given mode.
func NewHelpModal(mode AppMode) *HelpModal {
	return &HelpModal{Mode: mode}
}

// Init implements View.
func (m *HelpModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *HelpModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

type helpEntry struct {
	key  string
	desc string
}

// entries returns the bindings shown for the modal's mode.
func (m *HelpModal) entries() []helpEntry {
	common := []helpEntry{
		{"?", "This help"},
		{"SPC q / q", "Quit"},
		{"SPC t", "Topic index"},
	}
	switch m.Mode {
	case ModeReader:
		return append([]helpEntry{
			{"j / k", "Scroll down / up"},
			{"ctrl+d / ctrl+u", "Page down / up"},
			{"g / G", "Top / bottom"},
			{"esc", "Back to topics"},
		}, common...)
	default:
		return append([]helpEntry{
			{"j / k", "Move down / up"},
			{"enter", "Open topic"},
		}, common...)
	}
}

// View implements View.
func (m *HelpModal) View() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1)

	content := Styles.Heading.Render("Keys: "+m.Mode.String()) + "\n\n"
	for _, e := range m.entries() {
		content += Styles.Selected.Render(padKey(e.key)) + "  " + Styles.Normal.Render(e.desc) + "\n"
	}
	content += "\n" + Styles.Hint.Render("Esc: close")
	return boxStyle.Render(content)
}

// padKey right-pads key labels so descriptions line up.
func padKey(k string) string {
	const w = 15
	for len(k) < w {
		k += " "
	}
	return k
}
