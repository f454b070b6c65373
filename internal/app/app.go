// Package app contains the root bubbletea model wiring the reader service
// to the terminal UI.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/LN405Rx/lectern/internal/config"
	"github.com/LN405Rx/lectern/internal/keymap"
	"github.com/LN405Rx/lectern/internal/notify"
	"github.com/LN405Rx/lectern/internal/reader"
	"github.com/LN405Rx/lectern/internal/ui/pageview"
)

// Model is the root application model containing all state.
type Model struct {
	Reader   reader.Service
	Config   *config.Config
	Logger   *zap.Logger
	Notifier notify.Notifier

	PageView *pageview.Model
	Popups   PopupManager

	// Notification shown at the bottom of the screen until the next key press.
	Notice      string
	NoticeIsErr bool

	Width  int
	Height int

	readerSub *reader.Subscription
	resolver  *keymap.Resolver
}

// New creates the root model. The caller owns the reader service and is
// responsible for closing it after the program exits. notifier may be nil
// when desktop notifications are unavailable.
func New(cfg *config.Config, svc reader.Service, logger *zap.Logger, notifier notify.Notifier) Model {
	return Model{
		Reader:    svc,
		Config:    cfg,
		Logger:    logger,
		Notifier:  notifier,
		PageView:  pageview.New(),
		Popups:    NewPopupManager(),
		readerSub: svc.Subscribe(),
		resolver:  keymap.NewResolver(keymap.All),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.WatchReaderEvents(),
		m.WatchUtteranceFinished(),
		m.WatchEngineErrors(),
		WatchStderr(),
	)
}
