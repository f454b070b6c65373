package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LN405Rx/lectern/internal/ui/popup"
)

// fakePopup records key presses; enter emits a command like a real popup
// confirming a selection.
type fakePopup struct {
	content    string
	width      int
	height     int
	keyHistory []string
}

var _ popup.Popup = (*fakePopup)(nil)

func newFakePopup(content string) *fakePopup {
	return &fakePopup{content: content}
}

func (m *fakePopup) Init() tea.Cmd {
	return func() tea.Msg { return "init" }
}

func (m *fakePopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.keyHistory = append(m.keyHistory, key.String())
		if key.Type == tea.KeyEnter {
			return m, func() tea.Msg { return "confirmed" }
		}
	}
	return m, nil
}

func (m *fakePopup) View() string {
	return m.content
}

func (m *fakePopup) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func TestNewPopupHarness(t *testing.T) {
	fake := newFakePopup("Go to page")
	h := NewPopupHarness(fake)

	if h.Popup() != fake {
		t.Error("Popup() should return the underlying popup")
	}
	if len(h.Commands()) != 1 {
		t.Errorf("expected 1 init command, got %d", len(h.Commands()))
	}
}

func TestPopupHarness_SetSize(t *testing.T) {
	fake := newFakePopup("Go to page")
	h := NewPopupHarness(fake)

	h.SetSize(80, 24)

	if fake.width != 80 || fake.height != 24 {
		t.Errorf("SetSize not propagated: got %dx%d, want 80x24", fake.width, fake.height)
	}
}

func TestPopupHarness_View(t *testing.T) {
	const content = "Open document"
	fake := newFakePopup(content)
	h := NewPopupHarness(fake)

	if h.View() != content {
		t.Errorf("View() = %q, want %q", h.View(), content)
	}
}

func TestPopupHarness_SendKey(t *testing.T) {
	fake := newFakePopup("Go to page")
	h := NewPopupHarness(fake)
	h.ClearCommands()

	h.SendKey("4")
	h.SendKey("2")

	if len(fake.keyHistory) != 2 {
		t.Errorf("expected 2 keys, got %d", len(fake.keyHistory))
	}
	if fake.keyHistory[0] != "4" || fake.keyHistory[1] != "2" {
		t.Errorf("key history = %v, want [4, 2]", fake.keyHistory)
	}
}

func TestPopupHarness_SendSpecialKeys(t *testing.T) {
	fake := newFakePopup("Voice")
	h := NewPopupHarness(fake)
	h.ClearCommands()

	h.SendEnter()
	h.SendEscape()
	h.SendUp()
	h.SendDown()
	h.SendTab()

	if len(fake.keyHistory) != 5 {
		t.Errorf("expected 5 keys, got %d", len(fake.keyHistory))
	}

	expected := []string{"enter", "esc", "up", "down", "tab"}
	for i, exp := range expected {
		if fake.keyHistory[i] != exp {
			t.Errorf("key %d = %q, want %q", i, fake.keyHistory[i], exp)
		}
	}
}

func TestPopupHarness_Commands(t *testing.T) {
	fake := newFakePopup("Voice")
	h := NewPopupHarness(fake)
	h.ClearCommands()

	h.SendEnter()

	if len(h.Commands()) != 1 {
		t.Errorf("expected 1 command, got %d", len(h.Commands()))
	}

	last := h.LastCommand()
	if last == nil {
		t.Fatal("LastCommand() returned nil")
	}

	msg := ExecuteCmd(last)
	if msg != "confirmed" {
		t.Errorf("command result = %v, want 'confirmed'", msg)
	}
}

func TestPopupHarness_ClearCommands(t *testing.T) {
	fake := newFakePopup("Voice")
	h := NewPopupHarness(fake)

	if len(h.Commands()) == 0 {
		t.Error("expected init command before clear")
	}

	h.ClearCommands()

	if len(h.Commands()) != 0 {
		t.Error("expected no commands after clear")
	}
	if h.LastCommand() != nil {
		t.Error("LastCommand() should be nil after clear")
	}
}

func TestPopupHarness_ExecuteAndSend(t *testing.T) {
	fake := newFakePopup("Voice")
	h := NewPopupHarness(fake)
	h.ClearCommands()

	cmd := func() tea.Msg {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}

	msg, resultCmd := h.ExecuteAndSend(cmd)

	if msg == nil {
		t.Error("expected message from ExecuteAndSend")
	}
	if resultCmd == nil {
		t.Error("expected result command from enter key")
	}
}

func TestPopupHarness_ViewContains(t *testing.T) {
	fake := newFakePopup("chapter one.pdf")
	h := NewPopupHarness(fake)

	if !h.ViewContains("chapter") {
		t.Error("ViewContains should find 'chapter'")
	}
	if h.ViewContains("appendix") {
		t.Error("ViewContains should not find 'appendix'")
	}
}

func TestPopupHarness_AssertViewContains(t *testing.T) {
	fake := newFakePopup("chapter one.pdf")
	h := NewPopupHarness(fake)

	if err := h.AssertViewContains("chapter"); err != "" {
		t.Errorf("unexpected error: %s", err)
	}
	if err := h.AssertViewContains("appendix"); err == "" {
		t.Error("expected error for missing content")
	}
}

func TestPopupHarness_AssertViewNotContains(t *testing.T) {
	fake := newFakePopup("chapter one.pdf")
	h := NewPopupHarness(fake)

	if err := h.AssertViewNotContains("appendix"); err != "" {
		t.Errorf("unexpected error: %s", err)
	}
	if err := h.AssertViewNotContains("chapter"); err == "" {
		t.Error("expected error for present content")
	}
}

func TestExecuteCmd_Nil(t *testing.T) {
	msg := ExecuteCmd(nil)
	if msg != nil {
		t.Errorf("ExecuteCmd(nil) = %v, want nil", msg)
	}
}
