package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LN405Rx/lectern/internal/ui/popup"
)

// PopupHarness drives a popup.Popup through simulated key presses and
// collects the commands it emits, so tests can assert on both the rendered
// view and the actions sent back to the app.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes the popup and captures its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the wrapped popup for type assertions.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// SetSize forwards dimensions to the popup.
func (h *PopupHarness) SetSize(width, height int) {
	h.popup.SetSize(width, height)
}

// View renders the popup content.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// SendMsg delivers a message and returns the command it produced.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey delivers a rune key press.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey delivers a non-rune key such as enter or escape.
func (h *PopupHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// SendEnter delivers the enter key.
func (h *PopupHarness) SendEnter() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEnter)
}

// SendEscape delivers the escape key.
func (h *PopupHarness) SendEscape() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEscape)
}

// SendUp delivers the up arrow key.
func (h *PopupHarness) SendUp() tea.Cmd {
	return h.SendSpecialKey(tea.KeyUp)
}

// SendDown delivers the down arrow key.
func (h *PopupHarness) SendDown() tea.Cmd {
	return h.SendSpecialKey(tea.KeyDown)
}

// SendTab delivers the tab key.
func (h *PopupHarness) SendTab() tea.Cmd {
	return h.SendSpecialKey(tea.KeyTab)
}

// Commands returns everything collected since creation or ClearCommands.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands drops the collected commands.
func (h *PopupHarness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns its message, nil-safe.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// ExecuteAndSend runs a command and feeds its message back to the popup,
// which is how async flows like the file picker's directory read complete.
func (h *PopupHarness) ExecuteAndSend(cmd tea.Cmd) (tea.Msg, tea.Cmd) {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil, nil
	}
	resultCmd := h.SendMsg(msg)
	return msg, resultCmd
}

// ViewContains reports whether the stripped view contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}

// AssertViewContains returns a failure message when substr is missing.
func (h *PopupHarness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// AssertViewNotContains returns a failure message when substr is present.
func (h *PopupHarness) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}
