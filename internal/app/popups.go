package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LN405Rx/lectern/internal/speech"
	"github.com/LN405Rx/lectern/internal/ui/browser"
	"github.com/LN405Rx/lectern/internal/ui/helpbindings"
	"github.com/LN405Rx/lectern/internal/ui/overlay"
	"github.com/LN405Rx/lectern/internal/ui/popup"
	"github.com/LN405Rx/lectern/internal/ui/textinput"
	"github.com/LN405Rx/lectern/internal/ui/voicepicker"
)

// PopupType identifies which popup is currently active.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupHelp
	PopupBrowser
	PopupGotoPage
	PopupVoices
)

// PopupManager owns the modal popups. At most one popup is active at a time.
type PopupManager struct {
	active PopupType

	help      helpbindings.Model
	gotoInput textinput.Model
	browser   *browser.Model
	voices    *voicepicker.Model

	width  int
	height int
}

// NewPopupManager creates a PopupManager with initialized components.
func NewPopupManager() PopupManager {
	return PopupManager{
		help:      helpbindings.New(),
		gotoInput: textinput.New(),
	}
}

// SetSize updates the dimensions used for popup rendering.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.help.SetSize(width, height)
	p.gotoInput.SetSize(width, height)
	if p.browser != nil {
		p.browser.SetSize(p.browserWidth(), p.browserHeight())
	}
	if p.voices != nil {
		p.voices.SetSize(width, height)
	}
}

// Active returns which popup is currently shown.
func (p *PopupManager) Active() PopupType {
	return p.active
}

// Close dismisses the active popup.
func (p *PopupManager) Close() {
	switch p.active {
	case PopupGotoPage:
		p.gotoInput.Reset()
	case PopupBrowser:
		p.browser = nil
	case PopupVoices:
		p.voices = nil
	}
	p.active = PopupNone
}

// ShowHelp opens the key binding help popup.
func (p *PopupManager) ShowHelp() tea.Cmd {
	p.active = PopupHelp
	p.help.SetContexts([]string{"global", "reading", "pages", "speech", "view"})
	p.help.SetSize(p.width, p.height)
	return p.help.Init()
}

// ShowBrowser opens the document browser rooted at dir.
func (p *PopupManager) ShowBrowser(dir string) tea.Cmd {
	p.browser = browser.New(dir)
	p.browser.SetSize(p.browserWidth(), p.browserHeight())
	p.active = PopupBrowser
	return p.browser.Init()
}

// ShowGotoPage opens the go-to-page input.
func (p *PopupManager) ShowGotoPage() tea.Cmd {
	p.gotoInput.Start("Go to page", "", nil, p.width, p.height)
	p.gotoInput.SetNumeric(true)
	p.active = PopupGotoPage
	return p.gotoInput.Init()
}

// ShowVoices opens the voice picker. current is the active voice ID.
func (p *PopupManager) ShowVoices(voices []speech.Voice, current string) tea.Cmd {
	p.voices = voicepicker.New(voices, current)
	p.voices.SetSize(p.width, p.height)
	p.active = PopupVoices
	return p.voices.Init()
}

// Update routes a message to the active popup.
func (p *PopupManager) Update(msg tea.Msg) tea.Cmd {
	switch p.active {
	case PopupHelp:
		updated, cmd := p.help.Update(msg)
		p.help = *updated.(*helpbindings.Model)
		return cmd
	case PopupGotoPage:
		updated, cmd := p.gotoInput.Update(msg)
		p.gotoInput = *updated.(*textinput.Model)
		return cmd
	case PopupBrowser:
		updated, cmd := p.browser.Update(msg)
		p.browser = updated.(*browser.Model)
		return cmd
	case PopupVoices:
		updated, cmd := p.voices.Update(msg)
		p.voices = updated.(*voicepicker.Model)
		return cmd
	}
	return nil
}

// RenderOverlay composes the active popup over the base view.
func (p *PopupManager) RenderOverlay(base string) string {
	var content string
	size := popup.SizeAuto

	switch p.active {
	case PopupNone:
		return base
	case PopupHelp:
		content = p.help.View()
	case PopupGotoPage:
		content = p.gotoInput.View()
	case PopupBrowser:
		content = p.browser.View()
		size = popup.SizeLarge
	case PopupVoices:
		content = p.voices.View()
	}

	rendered := popup.RenderBordered(content, p.width, p.height, size)
	return overlay.Compose(base, rendered, p.width)
}

func (p *PopupManager) browserWidth() int {
	return p.width * popup.SizeLarge.WidthPct / 100
}

func (p *PopupManager) browserHeight() int {
	return p.height * popup.SizeLarge.HeightPct / 100
}
