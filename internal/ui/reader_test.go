package ui

import (
	"strings"
	"testing"

	"phiview/internal/content"
)

func newTestReader(t *testing.T) *ReaderView {
	t.Helper()
	return NewReaderView(content.QuantityScreen())
}

func TestReaderView_ShowsHeaderAtTop(t *testing.T) {
	v := newTestReader(t)

	out := v.View()
	if !strings.Contains(out, content.QuantityTitle) {
		t.Error("expected screen header at top of reader")
	}
	if !strings.Contains(out, "esc back") {
		t.Error("expected hint bar below viewport")
	}
}

func TestReaderView_ScrollKeys(t *testing.T) {
	v := newTestReader(t)

	if v.ScrollPercent() != 0 {
		t.Fatalf("expected reader to start at top, got %f", v.ScrollPercent())
	}

	v.Update(keyMsg("j"))
	if v.ScrollPercent() <= 0 {
		t.Error("j should scroll down")
	}

	v.Update(keyMsg("k"))
	if v.ScrollPercent() != 0 {
		t.Error("k should scroll back to top")
	}

	v.Update(keyMsg("G"))
	if v.ScrollPercent() != 1 {
		t.Errorf("G should scroll to bottom, got %f", v.ScrollPercent())
	}

	v.Update(keyMsg("g"))
	if v.ScrollPercent() != 0 {
		t.Errorf("g should scroll to top, got %f", v.ScrollPercent())
	}
}

func TestReaderView_PageKeys(t *testing.T) {
	v := newTestReader(t)

	v.Update(keyMsg("ctrl+d"))
	after := v.ScrollPercent()
	if after <= 0 {
		t.Fatal("ctrl+d should page down")
	}

	v.Update(keyMsg("ctrl+u"))
	if v.ScrollPercent() >= after {
		t.Error("ctrl+u should page back up")
	}
}

func TestReaderView_RerenderOnResize(t *testing.T) {
	v := newTestReader(t)

	before := v.View()
	v.SetSize(120, 40)
	wide := v.View()
	if wide == before {
		t.Error("expected re-render at new width")
	}

	// Same size again: identical output (deterministic render).
	v.SetSize(120, 40)
	if v.View() != wide {
		t.Error("expected identical output for identical size")
	}

	if !strings.Contains(wide, content.QuantityTitle) {
		t.Error("expected header after resize")
	}
}

func TestReaderView_DegenerateSize(t *testing.T) {
	v := newTestReader(t)

	// Zero and negative sizes must not panic or zero out the viewport.
	v.SetSize(0, 0)
	v.SetSize(-5, -5)
	if v.View() == "" {
		t.Error("expected non-empty view at degenerate sizes")
	}
}
