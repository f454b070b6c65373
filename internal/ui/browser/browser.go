// Package browser provides a popup for picking a PDF document to load.
package browser

import (
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LN405Rx/lectern/internal/ui"
	"github.com/LN405Rx/lectern/internal/ui/action"
	"github.com/LN405Rx/lectern/internal/ui/popup"
	"github.com/LN405Rx/lectern/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const chromeHeight = 4 // title, blank line, blank line, footer

// Model holds the state for the document browser popup.
type Model struct {
	ui.Base
	picker filepicker.Model
}

// New creates a browser rooted at dir.
func New(dir string) *Model {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = []string{".pdf"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.ShowPermissions = false
	fp.AutoHeight = false

	t := styles.T()
	fp.Styles = filepicker.DefaultStyles()
	fp.Styles.Cursor = t.S().Reading
	fp.Styles.Selected = t.S().Reading
	fp.Styles.Directory = t.S().Title
	fp.Styles.File = t.S().Base
	fp.Styles.DisabledFile = t.S().Subtle
	fp.Styles.EmptyDirectory = t.S().Subtle

	return &Model{picker: fp}
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.picker.Height = max(height-chromeHeight, 1)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return m.picker.Init()
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			return m, func() tea.Msg { return ActionMsg(Close{}) }
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		return m, func() tea.Msg { return ActionMsg(Open{Path: path}) }
	}

	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	t := styles.T()

	var b strings.Builder
	b.WriteString(t.S().Title.Render("Open document"))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	b.WriteString(t.S().Subtle.Render("enter open · esc close"))
	return b.String()
}

// ActionMsg creates an action.Msg for a browser action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "browser", Action: a}
}
