package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"phiview/internal/content"
)

func newTestApp() (*AppModel, *appModelAdapter) {
	m := NewAppModel()
	return m, &appModelAdapter{AppModel: m}
}

func TestApp_StartsOnIndex(t *testing.T) {
	m, adapter := newTestApp()

	if m.Mode != ModeIndex {
		t.Fatalf("expected ModeIndex at start, got %v", m.Mode)
	}
	if !strings.Contains(adapter.View(), "Topics") {
		t.Error("expected topic index at start")
	}
}

func TestApp_EnterOpensReader(t *testing.T) {
	m, adapter := newTestApp()

	_, cmd := adapter.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected enter to produce a command")
	}
	msg := cmd()
	open, ok := msg.(OpenScreenMsg)
	if !ok {
		t.Fatalf("expected OpenScreenMsg, got %T", msg)
	}
	if open.Name != content.QuantityScreenName {
		t.Errorf("expected %q, got %q", content.QuantityScreenName, open.Name)
	}

	adapter.Update(msg)
	if m.Mode != ModeReader {
		t.Fatalf("expected ModeReader after open, got %v", m.Mode)
	}
	if m.Reader == nil {
		t.Fatal("expected reader view after open")
	}
	if !strings.Contains(adapter.View(), content.QuantityTitle) {
		t.Error("expected screen header in reader")
	}
}

func TestApp_EscReturnsToIndex(t *testing.T) {
	m, adapter := newTestApp()

	adapter.Update(OpenScreenMsg{Name: content.QuantityScreenName})
	if m.Mode != ModeReader {
		t.Fatal("expected ModeReader after open")
	}

	adapter.Update(keyMsg("esc"))
	if m.Mode != ModeIndex {
		t.Errorf("expected ModeIndex after esc, got %v", m.Mode)
	}
	if m.Reader != nil {
		t.Error("expected reader to be discarded on esc")
	}
}

func TestApp_UnknownScreenIgnored(t *testing.T) {
	m, adapter := newTestApp()

	adapter.Update(OpenScreenMsg{Name: "nope"})
	if m.Mode != ModeIndex {
		t.Errorf("unknown screen should not change mode, got %v", m.Mode)
	}
}

func TestApp_HelpOverlay(t *testing.T) {
	m, adapter := newTestApp()

	_, cmd := adapter.Update(keyMsg("?"))
	if cmd == nil {
		t.Fatal("expected ? to produce a command")
	}
	adapter.Update(cmd())
	if _, ok := m.Overlay.Active(); !ok {
		t.Fatal("expected help overlay after ?")
	}
	if !strings.Contains(adapter.View(), "Keys") {
		t.Error("expected key listing in help overlay")
	}

	adapter.Update(keyMsg("esc"))
	if _, ok := m.Overlay.Active(); ok {
		t.Error("expected esc to dismiss help overlay")
	}
}

func TestApp_OverlayConsumesKeys(t *testing.T) {
	m, adapter := newTestApp()

	adapter.Update(ShowHelpMsg{})
	// With the overlay up, enter must not open the reader.
	adapter.Update(keyMsg("enter"))
	if m.Mode != ModeIndex {
		t.Error("overlay should swallow keys meant for the index")
	}
}

func TestApp_LeaderQuit(t *testing.T) {
	_, adapter := newTestApp()

	adapter.Update(keyMsg(" "))
	_, cmd := adapter.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected SPC q to produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg from SPC q, got %T", cmd())
	}
}

func TestApp_LeaderHintBar(t *testing.T) {
	m, adapter := newTestApp()

	adapter.Update(keyMsg(" "))
	if !m.KeyHandler.LeaderWaiting {
		t.Fatal("expected leader mode after SPC")
	}
	out := adapter.View()
	if !strings.Contains(out, "Quit") || !strings.Contains(out, "Topics") {
		t.Error("expected leader hints in view while waiting")
	}
}

func TestApp_TopicsKeybindFromReader(t *testing.T) {
	m, adapter := newTestApp()

	adapter.Update(OpenScreenMsg{Name: content.QuantityScreenName})
	adapter.Update(keyMsg(" "))
	_, cmd := adapter.Update(keyMsg("t"))
	if cmd == nil {
		t.Fatal("expected SPC t to produce a command")
	}
	adapter.Update(cmd())
	if m.Mode != ModeIndex {
		t.Errorf("expected ModeIndex after SPC t, got %v", m.Mode)
	}
}

func TestApp_WindowSizeReachesReader(t *testing.T) {
	m, adapter := newTestApp()

	adapter.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	adapter.Update(OpenScreenMsg{Name: content.QuantityScreenName})
	if m.Reader.width != 120 {
		t.Errorf("expected reader to open at window width 120, got %d", m.Reader.width)
	}

	adapter.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	if m.Reader.width != 90 {
		t.Errorf("expected reader resized to 90, got %d", m.Reader.width)
	}
}
