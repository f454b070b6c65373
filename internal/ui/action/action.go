// Package action defines the message type UI components emit toward the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component asks the app to do. ActionType returns a
// stable string identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an Action with the name of the component that produced it. The
// app routes on Source, then on the concrete Action type.
type Msg struct {
	Source string // component name: "browser", "voicepicker", ...
	Action Action
}

var _ tea.Msg = Msg{}
