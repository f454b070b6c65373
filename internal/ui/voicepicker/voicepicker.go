// Package voicepicker provides a popup for choosing the speech voice.
package voicepicker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LN405Rx/lectern/internal/speech"
	"github.com/LN405Rx/lectern/internal/ui"
	"github.com/LN405Rx/lectern/internal/ui/action"
	"github.com/LN405Rx/lectern/internal/ui/list"
	"github.com/LN405Rx/lectern/internal/ui/popup"
	"github.com/LN405Rx/lectern/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const chromeHeight = 4 // title, blank line, blank line, footer

// Model holds the state for the voice picker popup.
type Model struct {
	ui.Base
	list    list.Model[speech.Voice]
	current string // ID of the voice in use
}

// New creates a voice picker over the given voices. current is the ID of
// the active voice; the cursor starts there.
func New(voices []speech.Voice, current string) *Model {
	l := list.New[speech.Voice](ui.ScrollMargin)
	l.SetItems(voices)
	l.SetFocused(true)

	m := &Model{list: l, current: current}
	for i, v := range voices {
		if v.ID == current {
			m.list.Cursor().SetPos(i)
			break
		}
	}
	return m
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.list.SetSize(width, height)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	m.list.Cursor().EnsureVisible(m.list.Len(), m.visibleHeight())
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			return m, func() tea.Msg { return ActionMsg(Close{}) }
		}
	}

	result := m.list.Update(msg, m.list.Len())
	if result.Action == list.ActionEnter {
		if voice, ok := m.list.Selected(); ok {
			return m, func() tea.Msg { return ActionMsg(Select{Voice: voice}) }
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	t := styles.T()

	var b strings.Builder
	b.WriteString(t.S().Title.Render("Voice"))
	b.WriteString("\n\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(t.S().Subtle.Render("enter select · esc close"))
	return b.String()
}

func (m *Model) renderList() string {
	t := styles.T()

	if m.list.Len() == 0 {
		return t.S().Subtle.Render("No voices available")
	}

	width := maxRowWidth(m.list.Items())
	start, end := m.list.Cursor().VisibleRange(m.list.Len(), m.visibleHeight())

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		v := m.list.Items()[i]
		marker := "  "
		if v.ID == m.current {
			marker = "● "
		}
		row := marker + voiceLabel(v)
		if w := lipgloss.Width(row); w < width {
			row += strings.Repeat(" ", width-w)
		}
		if i == m.list.SelectedIndex() {
			lines = append(lines, t.S().Cursor.Render(row))
		} else {
			lines = append(lines, t.S().Base.Render(row))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) visibleHeight() int {
	return max(m.Height()-chromeHeight, 1)
}

func voiceLabel(v speech.Voice) string {
	label := v.Name
	if label == "" {
		label = v.ID
	}
	if v.Language != "" {
		label = fmt.Sprintf("%s (%s)", label, v.Language)
	}
	return label
}

func maxRowWidth(voices []speech.Voice) int {
	w := 0
	for _, v := range voices {
		if lw := lipgloss.Width(voiceLabel(v)) + 2; lw > w {
			w = lw
		}
	}
	return w
}

// ActionMsg creates an action.Msg for a voice picker action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "voicepicker", Action: a}
}
