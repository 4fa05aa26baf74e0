package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"

	"phiview/internal/content"
)

// ReaderView presents one rendered screen inside a scrollable viewport.
// The screen data is immutable; the view re-renders it only when the
// window size changes, always producing the same output for the same
// width.
type ReaderView struct {
	Screen   content.Screen
	viewport viewport.Model
	width    int
	height   int
}

// Ensure ReaderView implements View.
var _ View = (*ReaderView)(nil)

// NewReaderView creates a reader for the given screen with default
// dimensions. SetSize adjusts them once the real window size is known.
func NewReaderView(s content.Screen) *ReaderView {
	v := &ReaderView{
		Screen: s,
		width:  80,
		height: 24,
	}
	v.viewport = viewport.New(v.width, v.contentHeight())
	v.refreshContent()
	return v
}

// Init implements View.
func (v *ReaderView) Init() tea.Cmd {
	return v.viewport.Init()
}

// Update implements View.
func (v *ReaderView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			v.viewport.LineDown(1)
			return v, nil
		case "k", "up":
			v.viewport.LineUp(1)
			return v, nil
		case "ctrl+d", "pgdown":
			v.viewport.ViewDown()
			return v, nil
		case "ctrl+u", "pgup":
			v.viewport.ViewUp()
			return v, nil
		case "g", "home":
			v.viewport.GotoTop()
			return v, nil
		case "G", "end":
			v.viewport.GotoBottom()
			return v, nil
		case "esc":
			return v, nil // Caller handles back navigation
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *ReaderView) View() string {
	hint := Styles.Hint.Render("j/k scroll · esc back · ? help")
	return v.viewport.View() + "\n" + hint
}

// SetSize resizes the viewport and re-renders the screen at the new
// width. Scroll position is preserved by the viewport where possible.
func (v *ReaderView) SetSize(width, height int) {
	if width > 0 {
		v.width = width
	}
	if height > 0 {
		v.height = height
	}
	v.viewport.Width = v.width
	v.viewport.Height = v.contentHeight()
	v.refreshContent()
}

// ScrollPercent reports how far the reader has scrolled, for tests and
// future status display.
func (v *ReaderView) ScrollPercent() float64 {
	return v.viewport.ScrollPercent()
}

// contentHeight reserves one line for the hint bar.
func (v *ReaderView) contentHeight() int {
	h := v.height - 1
	if h < 1 {
		h = 1
	}
	return h
}

// refreshContent rebuilds the viewport content from the screen data.
func (v *ReaderView) refreshContent() {
	v.viewport.SetContent(RenderScreen(v.Screen, v.width))
}
