package voicepicker

import (
	"github.com/LN405Rx/lectern/internal/speech"
	"github.com/LN405Rx/lectern/internal/ui/action"
)

// Select signals a voice was chosen.
type Select struct {
	Voice speech.Voice
}

// ActionType implements action.Action.
func (a Select) ActionType() string { return "voicepicker.select" }

// Close signals the voice picker should close without a selection.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "voicepicker.close" }

// Verify interfaces at compile time.
var (
	_ action.Action = Select{}
	_ action.Action = Close{}
)
