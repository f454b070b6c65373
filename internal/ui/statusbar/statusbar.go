// Package statusbar renders the bottom reading status bar.
package statusbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/LN405Rx/lectern/internal/reader"
	"github.com/LN405Rx/lectern/internal/ui/render"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
)

// State holds everything needed to render the status bar.
type State struct {
	ReaderState reader.State
	Document    string // document name, "" when nothing loaded
	PageIndex   int    // 0-based
	PageCount   int
	Position    time.Duration // position within the current utterance
	Duration    time.Duration // duration of the current utterance
	Rate        int           // words per minute
	Volume      float64       // 0.0..1.0
	Voice       string        // voice ID, "" for default
}

// Height returns the total height of the status bar.
func Height() int {
	return 3 // top border + content + bottom border
}

// NewState builds a State snapshot from the reading service.
func NewState(svc reader.Service) State {
	sess := svc.Session()
	return State{
		ReaderState: sess.State,
		Document:    sess.DocumentName,
		PageIndex:   sess.PageIndex,
		PageCount:   sess.PageCount,
		Position:    svc.Position(),
		Duration:    svc.Duration(),
		Rate:        sess.Rate,
		Volume:      sess.Volume,
		Voice:       sess.Voice,
	}
}

// Render returns the status bar string for the given width.
func Render(s State, width int) string {
	innerWidth := max(width-6, 0)

	if s.Document == "" {
		hint := hintStyle().Render("No document — press 'o' to open a PDF")
		return barStyle().Padding(0, 2).Width(width - 2).Render(
			render.Pad(hint, innerWidth))
	}

	status := stateSymbol(s.ReaderState)
	pages := fmt.Sprintf("page %d/%d", s.PageIndex+1, s.PageCount)
	params := fmt.Sprintf("%d wpm · %d%%", s.Rate, int(s.Volume*100))
	if s.Voice != "" {
		params = s.Voice + " · " + params
	}

	timeStr := ""
	if s.ReaderState.IsActive() {
		timeStr = fmt.Sprintf("%s / %s", formatDuration(s.Position), formatDuration(s.Duration))
	}

	separator := "   "
	sepWidth := lipgloss.Width(separator)

	// Fixed-width segments on the right
	right := pages + separator + params
	if timeStr != "" {
		right += separator + timeStr
	}
	rightWidth := lipgloss.Width(right)

	statusWidth := lipgloss.Width(status + "  ")

	// Remaining space is split between the document name and the progress bar
	availableForName := innerWidth - statusWidth - rightWidth - sepWidth*2 - 2*minBarWidth

	name := render.TruncateEllipsis(s.Document, max(availableForName, 10))
	nameWidth := lipgloss.Width(name)

	barWidth := max(innerWidth-statusWidth-nameWidth-rightWidth-sepWidth*2, minBarWidth)

	var ratio float64
	if s.Duration > 0 {
		ratio = float64(s.Position) / float64(s.Duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)
	bar := progressFilledStyle().Render(strings.Repeat("━", filled)) +
		progressEmptyStyle().Render(strings.Repeat("─", barWidth-filled))

	var content strings.Builder
	content.WriteString(titleStyle().Render(name))
	content.WriteString(separator)
	content.WriteString(status)
	content.WriteString("  ")
	content.WriteString(bar)
	content.WriteString(separator)
	content.WriteString(metaStyle().Render(right))

	return barStyle().Padding(0, 2).Width(width - 2).Render(content.String())
}

const minBarWidth = 5

func stateSymbol(s reader.State) string {
	switch s {
	case reader.StatePlaying:
		return playingStyle().Render(playSymbol)
	case reader.StatePaused:
		return pausedStyle().Render(pauseSymbol)
	default:
		return stoppedStyle().Render(stopSymbol)
	}
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
