package app

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/LN405Rx/lectern/internal/errmsg"
	"github.com/LN405Rx/lectern/internal/keymap"
	"github.com/LN405Rx/lectern/internal/reader"
	"github.com/LN405Rx/lectern/internal/ui/action"
	"github.com/LN405Rx/lectern/internal/ui/browser"
	"github.com/LN405Rx/lectern/internal/ui/helpbindings"
	"github.com/LN405Rx/lectern/internal/ui/statusbar"
	"github.com/LN405Rx/lectern/internal/ui/textinput"
	"github.com/LN405Rx/lectern/internal/ui/voicepicker"
)

const (
	rateStep   = 10
	volumeStep = 0.05
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.layout()
		m.Popups.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case action.Msg:
		return m.handleAction(msg)

	case TickMsg:
		if m.Reader.IsPlaying() {
			return m, TickCmd()
		}
		return m, nil

	case StateChangedMsg:
		m.PageView.SetReading(msg.Current == reader.StatePlaying)
		var cmd tea.Cmd
		if msg.Current == reader.StatePlaying {
			cmd = TickCmd()
		}
		return m, tea.Batch(m.WatchReaderEvents(), cmd)

	case PageChangedMsg:
		m.showPage(msg.Current)
		return m, m.WatchReaderEvents()

	case DocumentLoadedMsg:
		m.PageView.SetDocument(msg.Name)
		m.Notice = ""
		m.layout()
		m.showPage(m.Reader.PageIndex())
		m.Logger.Info("document loaded",
			zap.String("path", msg.Path),
			zap.Int("pages", msg.PageCount))
		return m, m.WatchReaderEvents()

	case DocumentFinishedMsg:
		m.setNotice("Finished reading "+msg.Name, false)
		return m, tea.Batch(m.WatchReaderEvents(), m.notifyFinishedCmd(msg.Name))

	case ReaderErrorMsg:
		op := errmsg.OpSpeechSynthesize
		if msg.Operation == "load" {
			op = errmsg.OpDocumentLoad
		}
		m.setNotice(errmsg.Format(op, msg.Err), true)
		m.Logger.Error("reader error",
			zap.String("operation", msg.Operation),
			zap.Error(msg.Err))
		return m, m.WatchReaderEvents()

	case SubscriptionClosedMsg:
		return m, tea.Quit

	case StderrMsg:
		m.Logger.Warn("audio backend stderr", zap.String("line", msg.Line))
		return m, WatchStderr()

	case UtteranceFinishedMsg:
		m.Reader.UtteranceFinished()
		return m, m.WatchUtteranceFinished()

	case EngineErrorMsg:
		m.setNotice(errmsg.Format(errmsg.OpSpeechSynthesize, msg.Err), true)
		m.Logger.Error("speech engine error", zap.Error(msg.Err))
		return m, m.WatchEngineErrors()

	case DocumentLoadResultMsg:
		if msg.Err != nil {
			m.setNotice(errmsg.FormatWith(errmsg.OpDocumentLoad, msg.Path, msg.Err), true)
			m.Logger.Error("document load failed",
				zap.String("path", msg.Path),
				zap.Error(msg.Err))
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A key press dismisses any transient notice.
	if m.Notice != "" {
		m.Notice = ""
		m.layout()
	}

	if m.Popups.Active() != PopupNone {
		// ctrl+c always quits, even inside a popup.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, m.Popups.Update(msg)
	}

	switch m.resolver.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionHelp:
		return m, m.Popups.ShowHelp()

	case keymap.ActionOpenBrowser:
		return m, m.Popups.ShowBrowser(m.Config.InputDir)

	case keymap.ActionPlayPause:
		m.checkf(m.Reader.Toggle(), errmsg.OpReadingStart)
		return m, nil

	case keymap.ActionStop:
		m.checkf(m.Reader.Stop(), errmsg.OpReadingStop)
		return m, nil

	case keymap.ActionNextPage:
		m.checkf(m.Reader.NextPage(), errmsg.OpPageChange)
		return m, nil

	case keymap.ActionPrevPage:
		m.checkf(m.Reader.PreviousPage(), errmsg.OpPageChange)
		return m, nil

	case keymap.ActionFirstPage:
		m.checkf(m.Reader.JumpToPage(0), errmsg.OpPageChange)
		return m, nil

	case keymap.ActionLastPage:
		m.checkf(m.Reader.JumpToPage(m.Reader.PageCount()-1), errmsg.OpPageChange)
		return m, nil

	case keymap.ActionGotoPage:
		if m.Reader.Document() == nil {
			return m, nil
		}
		return m, m.Popups.ShowGotoPage()

	case keymap.ActionRateUp:
		m.adjustRate(rateStep)
		return m, nil

	case keymap.ActionRateDown:
		m.adjustRate(-rateStep)
		return m, nil

	case keymap.ActionVolumeUp:
		m.adjustVolume(volumeStep)
		return m, nil

	case keymap.ActionVolumeDown:
		m.adjustVolume(-volumeStep)
		return m, nil

	case keymap.ActionNextVoice:
		voices := m.Reader.Voices()
		if len(voices) == 0 {
			return m, nil
		}
		return m, m.Popups.ShowVoices(voices, m.Reader.Voice())

	case keymap.ActionScrollUp:
		m.PageView.ScrollUp()
		return m, nil

	case keymap.ActionScrollDown:
		m.PageView.ScrollDown()
		return m, nil

	case keymap.ActionScrollHalfUp:
		m.PageView.HalfPageUp()
		return m, nil

	case keymap.ActionScrollHalfDown:
		m.PageView.HalfPageDown()
		return m, nil
	}

	return m, nil
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case browser.Open:
		m.Popups.Close()
		return m, LoadDocumentCmd(m.Reader, a.Path)

	case browser.Close:
		m.Popups.Close()
		return m, nil

	case voicepicker.Select:
		m.Popups.Close()
		m.checkf(m.Reader.SetVoice(a.Voice.ID), errmsg.OpSpeechVoice)
		return m, nil

	case voicepicker.Close, helpbindings.Close:
		m.Popups.Close()
		return m, nil

	case textinput.Result:
		m.Popups.Close()
		if a.Canceled || a.Text == "" {
			return m, nil
		}
		page, err := strconv.Atoi(a.Text)
		if err != nil {
			return m, nil
		}
		// User-facing page numbers are 1-based.
		m.checkf(m.Reader.JumpToPage(page-1), errmsg.OpPageChange)
		return m, nil
	}

	return m, nil
}

// showPage updates the page view with the current page text.
func (m *Model) showPage(index int) {
	m.PageView.SetPage(index, m.Reader.PageCount(), m.Reader.PageText())
	m.PageView.SetReading(m.Reader.IsPlaying())
}

// adjustRate changes the speaking rate by delta wpm, clamped to valid bounds.
func (m *Model) adjustRate(delta int) {
	rate := min(max(m.Reader.Rate()+delta, reader.MinRate), reader.MaxRate)
	m.checkf(m.Reader.SetRate(rate), errmsg.OpSpeechRate)
}

// adjustVolume changes the volume by delta, clamped to 0..1.
func (m *Model) adjustVolume(delta float64) {
	vol := min(max(m.Reader.Volume()+delta, 0), 1)
	m.checkf(m.Reader.SetVolume(vol), errmsg.OpSpeechVolume)
}

// checkf records a failed operation as an error notice.
func (m *Model) checkf(err error, op errmsg.Op) {
	if err == nil {
		return
	}
	m.setNotice(errmsg.Format(op, err), true)
	m.Logger.Warn("operation failed",
		zap.String("operation", string(op)),
		zap.Error(err))
}

func (m *Model) setNotice(text string, isErr bool) {
	m.Notice = text
	m.NoticeIsErr = isErr
	m.layout()
}

// layout sizes the page view, reserving a line for the notice when shown.
func (m *Model) layout() {
	height := m.Height - statusbar.Height()
	if m.Notice != "" {
		height--
	}
	m.PageView.SetSize(m.Width, height)
}
