package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LN405Rx/lectern/internal/notify"
	"github.com/LN405Rx/lectern/internal/reader"
	"github.com/LN405Rx/lectern/internal/stderr"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchReaderEvents returns a command that waits for the next reader
// service event and converts it to a tea.Msg. The handler re-arms it.
func (m Model) WatchReaderEvents() tea.Cmd {
	if m.readerSub == nil {
		return nil
	}
	sub := m.readerSub
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg{Previous: e.Previous, Current: e.Current}
		case e := <-sub.PageChanged:
			return PageChangedMsg{Previous: e.Previous, Current: e.Current}
		case e := <-sub.Loaded:
			return DocumentLoadedMsg{Path: e.Path, Name: e.Name, PageCount: e.PageCount}
		case e := <-sub.Finished:
			return DocumentFinishedMsg{Name: e.Name}
		case e := <-sub.Error:
			return ReaderErrorMsg{Operation: e.Operation, Err: e.Err}
		case <-sub.Done:
			return SubscriptionClosedMsg{}
		}
	}
}

// WatchUtteranceFinished returns a command that waits for the speech engine
// to finish an utterance naturally. Manual stops are not signalled.
func (m Model) WatchUtteranceFinished() tea.Cmd {
	ch := m.Reader.Engine().FinishedChan()
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return UtteranceFinishedMsg{}
	}
}

// WatchEngineErrors returns a command that waits for an asynchronous
// synthesis or playback error from the speech engine.
func (m Model) WatchEngineErrors() tea.Cmd {
	ch := m.Reader.Engine().ErrorChan()
	return func() tea.Msg {
		err, ok := <-ch
		if !ok {
			return nil
		}
		return EngineErrorMsg{Err: err}
	}
}

// WatchStderr returns a command that waits for stderr output captured
// from C libraries.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}

// notifyFinishedCmd sends a desktop notification when a document has been
// read to the end.
func (m Model) notifyFinishedCmd(name string) tea.Cmd {
	if m.Notifier == nil {
		return nil
	}
	notifier := m.Notifier
	return func() tea.Msg {
		_, _ = notifier.Notify(notify.Notification{
			Title:   "Lectern",
			Body:    "Finished reading " + name,
			Timeout: -1,
		})
		return nil
	}
}

// LoadDocumentCmd extracts a document off the UI goroutine.
func LoadDocumentCmd(svc reader.Service, path string) tea.Cmd {
	return func() tea.Msg {
		err := svc.Load(path)
		return DocumentLoadResultMsg{Path: path, Err: err}
	}
}
