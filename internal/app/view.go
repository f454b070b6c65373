package app

import (
	"strings"

	"github.com/LN405Rx/lectern/internal/ui/render"
	"github.com/LN405Rx/lectern/internal/ui/statusbar"
	"github.com/LN405Rx/lectern/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	view := m.PageView.View()
	view += "\n" + statusbar.Render(statusbar.NewState(m.Reader), m.Width)

	if m.Notice != "" {
		view += "\n" + m.renderNotice()
	}

	view = enforceHeight(view, m.Height)
	return m.Popups.RenderOverlay(view)
}

func (m Model) renderNotice() string {
	t := styles.T()
	style := t.S().Success
	if m.NoticeIsErr {
		style = t.S().Error
	}
	return style.Render(render.TruncateEllipsis(m.Notice, m.Width))
}

// enforceHeight pads or truncates the view to exactly the given height.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		return strings.Join(lines[:height], "\n")
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
