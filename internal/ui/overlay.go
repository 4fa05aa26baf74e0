package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal view drawn over the current mode, dismissed by a
// single key. phiview only ever shows one overlay at a time (the help
// modal), so this holds a slot rather than a stack.
type Overlay struct {
	View    View
	Dismiss string // Key that dismisses (e.g. "esc")
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return key == o.Dismiss
}

// OverlaySlot holds the active overlay, if any. The zero value is empty.
type OverlaySlot struct {
	active *Overlay
}

// Show replaces the active overlay.
func (s *OverlaySlot) Show(o Overlay) {
	s.active = &o
}

// Clear removes the active overlay, reporting whether one was present.
func (s *OverlaySlot) Clear() bool {
	had := s.active != nil
	s.active = nil
	return had
}

// Active returns the current overlay, or false when none is shown.
func (s *OverlaySlot) Active() (*Overlay, bool) {
	if s.active == nil {
		return nil, false
	}
	return s.active, true
}

// Update passes msg to the active overlay's Update and replaces its View
// with the result. Returns false when no overlay is shown.
func (s *OverlaySlot) Update(msg tea.Msg) (tea.Cmd, bool) {
	if s.active == nil {
		return nil, false
	}
	newView, cmd := s.active.View.Update(msg)
	s.active.View = newView
	return cmd, true
}
