package browser

import "github.com/LN405Rx/lectern/internal/ui/action"

// Open signals a document was picked and should be loaded.
type Open struct {
	Path string
}

// ActionType implements action.Action.
func (a Open) ActionType() string { return "browser.open" }

// Close signals the browser popup should close without a selection.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "browser.close" }

// Verify interfaces at compile time.
var (
	_ action.Action = Open{}
	_ action.Action = Close{}
)
