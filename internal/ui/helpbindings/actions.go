package helpbindings

import (
	"github.com/LN405Rx/lectern/internal/ui/action"
)

// Close asks the app to dismiss the help popup.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "helpbindings.close" }

// ActionMsg wraps a help popup action for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "helpbindings", Action: a}
}
