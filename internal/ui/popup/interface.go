package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component the app renders over the page view.
type Popup interface {
	// Init returns the popup's initial command, if any.
	Init() tea.Cmd

	// Update handles a message and returns the updated popup and a command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the content, without the outer border or centering.
	View() string

	// SetSize tells the popup how much room its content has.
	SetSize(width, height int)
}
