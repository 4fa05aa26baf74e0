package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"phiview/internal/content"
)

func TestIndexView_ListsRegisteredScreens(t *testing.T) {
	d := NewIndexView()

	out := d.View()
	if !strings.Contains(out, "Topics (1)") {
		t.Error("expected topic count in index view")
	}
	if !strings.Contains(out, content.QuantityTitle) {
		t.Errorf("expected %q in index view", content.QuantityTitle)
	}
	if !strings.Contains(out, "enter") {
		t.Error("expected enter hint in index view")
	}
}

func TestIndexView_SelectedScreen(t *testing.T) {
	d := NewIndexView()

	if d.Selected() != 0 {
		t.Fatalf("expected initial selection 0, got %d", d.Selected())
	}
	s, ok := d.SelectedScreen()
	if !ok {
		t.Fatal("expected a selected screen")
	}
	if s.Name != content.QuantityScreenName {
		t.Errorf("expected %q selected, got %q", content.QuantityScreenName, s.Name)
	}
}

func TestIndexView_NavigationStaysInBounds(t *testing.T) {
	d := NewIndexView()

	// With a single topic, j/k are no-ops.
	d.Update(keyMsg("j"))
	if d.Selected() != 0 {
		t.Errorf("j with single topic: expected 0, got %d", d.Selected())
	}
	d.Update(keyMsg("k"))
	if d.Selected() != 0 {
		t.Errorf("k with single topic: expected 0, got %d", d.Selected())
	}
}

func TestIndexView_WindowSize(t *testing.T) {
	d := NewIndexView()

	d.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	out := d.View()
	if !strings.Contains(out, content.QuantityTitle) {
		t.Error("expected topic title after resize")
	}
}
