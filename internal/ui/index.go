package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"phiview/internal/content"
)

// topicItem implements list.Item for a registered screen.
type topicItem struct {
	screen content.Screen
}

func (t topicItem) FilterValue() string { return t.screen.Title }
func (t topicItem) Title() string       { return t.screen.Title }
func (t topicItem) Description() string { return "" }

// IndexView lists every registered screen. Enter (handled by app.go)
// opens the selected screen in a ReaderView.
type IndexView struct {
	list    list.Model
	Screens []content.Screen
}

// Ensure IndexView implements View.
var _ View = (*IndexView)(nil)

// NewIndexView creates the topic index from the content registry.
func NewIndexView() *IndexView {
	screens := content.Screens()

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	delegate.ShowDescription = false
	delegate.Styles.SelectedTitle = Styles.Selected
	delegate.Styles.SelectedDesc = Styles.Selected
	delegate.Styles.NormalTitle = Styles.Caption
	delegate.Styles.NormalDesc = Styles.Caption

	items := make([]list.Item, len(screens))
	for i, s := range screens {
		items[i] = topicItem{screen: s}
	}

	l := list.New(items, delegate, 0, 0)
	l.Title = "Topics"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent))

	return &IndexView{
		list:    l,
		Screens: screens,
	}
}

// Selected returns the index of the currently selected screen.
func (d *IndexView) Selected() int {
	return d.list.Index()
}

// SelectedScreen returns the currently selected screen, if any.
func (d *IndexView) SelectedScreen() (content.Screen, bool) {
	i := d.list.Index()
	if i < 0 || i >= len(d.Screens) {
		return content.Screen{}, false
	}
	return d.Screens[i], true
}

// Init implements View.
func (d *IndexView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *IndexView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		d.list.SetWidth(msg.Width)
		d.list.SetHeight(msg.Height - 4) // Reserve space for header and hint
		return d, nil
	}

	// Pass all messages to list.Model - it handles j/k/g/G navigation natively.
	// Enter is handled by app.go at the application level.
	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

// View implements View.
func (d *IndexView) View() string {
	// Set default dimensions if not set (for tests)
	if d.list.Width() == 0 {
		d.list.SetWidth(80)
	}
	if d.list.Height() == 0 {
		d.list.SetHeight(20)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Topics (%d)\n", len(d.Screens)))
	b.WriteString(Styles.Hint.Render("Press [enter] to read, [SPC] for commands") + "\n\n")
	b.WriteString(d.list.View())
	return b.String()
}
