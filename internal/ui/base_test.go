package ui

import "testing"

func TestBase_Size(t *testing.T) {
	var b Base
	b.SetSize(80, 24)

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("Size() = %dx%d, want 80x24", w, h)
	}
	if b.Width() != 80 {
		t.Errorf("Width() = %d, want 80", b.Width())
	}
	if b.Height() != 24 {
		t.Errorf("Height() = %d, want 24", b.Height())
	}
}

func TestBase_ListHeight(t *testing.T) {
	var b Base
	b.SetSize(80, 24)

	if got := b.ListHeight(PanelOverhead); got != 24-PanelOverhead {
		t.Errorf("ListHeight(%d) = %d, want %d", PanelOverhead, got, 24-PanelOverhead)
	}
}

func TestBase_Focus(t *testing.T) {
	var b Base
	if b.IsFocused() {
		t.Error("zero value should be unfocused")
	}
	b.SetFocused(true)
	if !b.IsFocused() {
		t.Error("SetFocused(true) not reflected")
	}
}
