package textinput

import (
	"github.com/LN405Rx/lectern/internal/ui/action"
)

// Result carries the submitted or canceled input back to the app.
type Result struct {
	Text     string
	Context  any  // opaque value the caller passed to Start
	Canceled bool // escape pressed
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "textinput.result" }

// ActionMsg wraps a text input action for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "textinput", Action: a}
}
