package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"phiview/internal/content"
)

// OpenScreenMsg is sent when the user opens a screen from the index.
// Name is the screen's fixed registry name.
type OpenScreenMsg struct {
	Name string
}

// ShowTopicsMsg returns to the topic index (SPC t).
type ShowTopicsMsg struct{}

// ShowHelpMsg opens the help overlay (?).
type ShowHelpMsg struct{}

// AppModel is the root model: a topic index plus a reader for the
// currently open screen.
type AppModel struct {
	Mode       AppMode
	Index      *IndexView
	Reader     *ReaderView
	KeyHandler *KeyHandler
	Overlay    OverlaySlot

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		// Both views track the window size so switching modes needs no resync.
		if a.Index != nil {
			v, _ := a.Index.Update(msg)
			a.Index = v.(*IndexView)
		}
		if a.Reader != nil {
			v, _ := a.Reader.Update(msg)
			a.Reader = v.(*ReaderView)
		}
		return a, nil
	case DismissModalMsg:
		a.Overlay.Clear()
		return a, nil
	case ShowHelpMsg:
		a.Overlay.Show(Overlay{View: NewHelpModal(a.Mode), Dismiss: "esc"})
		return a, nil
	case ShowTopicsMsg:
		a.Mode = ModeIndex
		a.Reader = nil
		return a, nil
	case OpenScreenMsg:
		s, ok := content.Lookup(msg.Name)
		if !ok {
			return a, nil
		}
		a.Mode = ModeReader
		a.Reader = NewReaderView(s)
		if a.width > 0 {
			a.Reader.SetSize(a.width, a.height)
		}
		return a, a.Reader.Init()
	case tea.KeyMsg:
		// Active overlay gets the key first.
		if ov, ok := a.Overlay.Active(); ok {
			if ov.IsDismissKey(msg.String()) {
				a.Overlay.Clear()
				return a, nil
			}
			cmd, _ := a.Overlay.Update(msg)
			return a, cmd
		}
		// Keybind system (leader key, SPC-prefixed commands)
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		// App-level navigation
		if a.Mode == ModeReader && msg.String() == "esc" {
			a.Mode = ModeIndex
			a.Reader = nil
			return a, nil
		}
		if a.Mode == ModeIndex && msg.String() == "enter" {
			if s, ok := a.Index.SelectedScreen(); ok {
				return a, func() tea.Msg {
					return OpenScreenMsg{Name: s.Name}
				}
			}
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if ov, ok := a.Overlay.Active(); ok {
		return ov.View.View()
	}
	base := a.currentView().View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler)
	}
	return base
}

func (a *appModelAdapter) currentView() View {
	switch a.Mode {
	case ModeIndex:
		if a.Index != nil {
			return a.Index
		}
		return NewIndexView()
	case ModeReader:
		if a.Reader != nil {
			return a.Reader
		}
	}
	return NewIndexView()
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeIndex:
		if d, ok := v.(*IndexView); ok {
			a.Index = d
		}
	case ModeReader:
		if r, ok := v.(*ReaderView); ok {
			a.Reader = r
		}
	}
}

// NewAppModel creates the root application model.
func NewAppModel() *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC t", func() tea.Msg { return ShowTopicsMsg{} }, "Topics")
	reg.BindWithDesc("?", func() tea.Msg { return ShowHelpMsg{} }, "Help")
	return &AppModel{
		Mode:       ModeIndex,
		Index:      NewIndexView(),
		KeyHandler: NewKeyHandler(reg),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
