package app

import (
	"time"

	"github.com/LN405Rx/lectern/internal/reader"
)

// TickMsg drives the once-per-second redraw while reading, keeping the
// utterance position in the status bar current.
type TickMsg time.Time

// StateChangedMsg is sent when the reader state changes.
type StateChangedMsg struct {
	Previous reader.State
	Current  reader.State
}

// PageChangedMsg is sent when the current page changes through navigation
// or auto-advance.
type PageChangedMsg struct {
	Previous int
	Current  int
}

// DocumentLoadedMsg is sent when a document finishes loading.
type DocumentLoadedMsg struct {
	Path      string
	Name      string
	PageCount int
}

// DocumentFinishedMsg is sent when the last page has been read.
type DocumentFinishedMsg struct {
	Name string
}

// ReaderErrorMsg is sent when the reader reports an asynchronous error.
type ReaderErrorMsg struct {
	Operation string
	Err       error
}

// SubscriptionClosedMsg is sent when the reader service shuts down.
type SubscriptionClosedMsg struct{}

// UtteranceFinishedMsg is sent when the speech engine finishes an
// utterance naturally.
type UtteranceFinishedMsg struct{}

// EngineErrorMsg is sent when the speech engine reports an error from
// synthesis or playback.
type EngineErrorMsg struct {
	Err error
}

// StderrMsg carries a line of captured stderr output from C audio
// libraries that would otherwise corrupt the TUI.
type StderrMsg struct {
	Line string
}

// DocumentLoadResultMsg is the result of an asynchronous document load.
type DocumentLoadResultMsg struct {
	Path string
	Err  error
}
