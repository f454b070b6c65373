// Package pageview renders the text of the current document page.
package pageview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LN405Rx/lectern/internal/ui"
	"github.com/LN405Rx/lectern/internal/ui/render"
	"github.com/LN405Rx/lectern/internal/ui/styles"
)

const (
	headerHeight   = 2 // title line + separator
	contentPadding = 2
)

// Model holds the state for the page view panel.
type Model struct {
	ui.Base

	docName   string
	pageIndex int // 0-based
	pageCount int
	reading   bool

	text      string   // sanitized page text
	wrapped   []string // text wrapped to the last render width
	wrapWidth int
	offset    int
}

// New creates an empty page view.
func New() *Model {
	return &Model{}
}

// SetDocument sets the document name shown in the header and clears the page.
func (m *Model) SetDocument(name string) {
	m.docName = name
	m.text = ""
	m.wrapped = nil
	m.wrapWidth = 0
	m.offset = 0
}

// SetPage replaces the displayed page. Scroll position resets to the top.
func (m *Model) SetPage(index, count int, text string) {
	m.pageIndex = index
	m.pageCount = count
	m.text = render.SanitizeBlock(text)
	m.wrapped = nil
	m.wrapWidth = 0
	m.offset = 0
}

// SetReading marks whether the displayed page is being read aloud.
func (m *Model) SetReading(reading bool) {
	m.reading = reading
}

// PageIndex returns the 0-based index of the displayed page.
func (m *Model) PageIndex() int {
	return m.pageIndex
}

// ScrollUp moves the view up by one line.
func (m *Model) ScrollUp() {
	if m.offset > 0 {
		m.offset--
	}
}

// ScrollDown moves the view down by one line.
func (m *Model) ScrollDown() {
	if m.offset < m.maxScroll() {
		m.offset++
	}
}

// HalfPageUp moves the view up by half the visible height.
func (m *Model) HalfPageUp() {
	m.offset = max(m.offset-m.visibleHeight()/2, 0)
}

// HalfPageDown moves the view down by half the visible height.
func (m *Model) HalfPageDown() {
	m.offset = min(m.offset+m.visibleHeight()/2, m.maxScroll())
}

// View renders the panel.
func (m *Model) View() string {
	width, height := m.Size()
	if width <= 0 || height <= 0 {
		return ""
	}

	innerWidth := width - ui.BorderHeight - contentPadding*2

	var b strings.Builder
	b.WriteString(m.renderHeader(innerWidth))
	b.WriteString("\n")
	b.WriteString(render.Separator(innerWidth))
	b.WriteString("\n")
	b.WriteString(m.renderBody(innerWidth))

	return styles.PanelStyle(m.IsFocused()).
		Padding(0, contentPadding).
		Width(width - ui.BorderHeight).
		Height(height - ui.BorderHeight).
		Render(b.String())
}

func (m *Model) renderHeader(width int) string {
	t := styles.T()

	if m.docName == "" {
		return render.Pad(t.S().Subtle.Render("Lectern"), width)
	}

	title := m.docName
	if m.reading {
		title = "▶ " + title
	}
	left := render.TruncateEllipsis(title, max(width-12, 10))
	if m.reading {
		left = t.S().Reading.Render(left)
	} else {
		left = t.S().Title.Render(left)
	}

	right := t.S().Muted.Render(fmt.Sprintf("%d/%d", m.pageIndex+1, m.pageCount))
	return render.Row(left, right, width)
}

func (m *Model) renderBody(width int) string {
	visible := m.visibleHeight()
	if visible <= 0 {
		return ""
	}

	if m.docName == "" {
		return m.renderCentered("Press 'o' to open a PDF document", visible, width)
	}

	lines := m.wrapLines(width)
	if len(lines) == 0 {
		return m.renderCentered("(blank page)", visible, width)
	}

	start := min(m.offset, m.maxScroll())
	end := min(start+visible, len(lines))

	out := make([]string, 0, visible)
	body := styles.T().S().Base
	for _, line := range lines[start:end] {
		out = append(out, body.Render(render.Pad(line, width)))
	}
	for len(out) < visible {
		out = append(out, render.EmptyLine(width))
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderCentered(msg string, height, width int) string {
	t := styles.T()
	lines := make([]string, height)
	for i := range lines {
		if i == height/2 {
			pad := max((width-lipgloss.Width(msg))/2, 0)
			lines[i] = strings.Repeat(" ", pad) + t.S().Subtle.Render(msg)
		} else {
			lines[i] = render.EmptyLine(width)
		}
	}
	return strings.Join(lines, "\n")
}

// wrapLines wraps the page text to the given width, caching the result
// until the width or text changes.
func (m *Model) wrapLines(width int) []string {
	if width <= 0 {
		return nil
	}
	if m.wrapped != nil && m.wrapWidth == width {
		return m.wrapped
	}
	m.wrapWidth = width
	if strings.TrimSpace(m.text) == "" {
		m.wrapped = []string{}
		return m.wrapped
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(m.text)
	m.wrapped = strings.Split(wrapped, "\n")

	// A rewrap can shrink the line count below the current offset.
	m.offset = min(m.offset, m.maxScroll())
	return m.wrapped
}

func (m *Model) visibleHeight() int {
	_, height := m.Size()
	return max(height-ui.BorderHeight-headerHeight, 0)
}

func (m *Model) maxScroll() int {
	return max(len(m.wrapped)-m.visibleHeight(), 0)
}
