package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LN405Rx/lectern/internal/ui/styles"
)

// SizeConfig defines how a popup is sized relative to the screen.
type SizeConfig struct {
	WidthPct  int // percentage of screen width (0 = fit content)
	HeightPct int // percentage of screen height (0 = fit content)
	MaxWidth  int // cap in columns when fitting content (0 = none)
}

// Common sizes.
var (
	SizeLarge = SizeConfig{WidthPct: 80, HeightPct: 70} // document browser
	SizeAuto  = SizeConfig{}                            // help, go-to-page, voices
)

// RenderBordered wraps content in a rounded border, sizes it per the config
// and centers it on the screen.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := dimensions(content, screenW, screenH, size)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(width - 2). // border columns
		Height(height - 2).
		Padding(1, 2)

	box := boxStyle.Render(content)
	return Center(box, screenW, screenH)
}

// Center positions pre-rendered content in the middle of the terminal.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxHeight := len(lines)
	boxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > boxWidth {
			boxWidth = w
		}
	}

	padTop := (termHeight - boxHeight) / 2
	padLeft := (termWidth - boxWidth) / 2

	if padTop < 0 {
		padTop = 0
	}
	if padLeft < 0 {
		padLeft = 0
	}

	var result strings.Builder
	for range padTop {
		result.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	for _, line := range lines {
		result.WriteString(strings.Repeat(" ", padLeft))
		result.WriteString(line)
		result.WriteString("\n")
	}

	return result.String()
}

func dimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	contentWidth := maxLineWidth(content)
	contentWidth += 6 // padding + border
	if size.MaxWidth > 0 && contentWidth > size.MaxWidth {
		contentWidth = size.MaxWidth
	}
	maxWidth := screenW - 4
	if contentWidth > maxWidth {
		contentWidth = maxWidth
	}

	contentHeight := strings.Count(content, "\n") + 1
	contentHeight += 4 // padding + border
	maxHeight := screenH - 4
	if contentHeight > maxHeight {
		contentHeight = maxHeight
	}

	return contentWidth, contentHeight
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		w := lipgloss.Width(line)
		if w > maxW {
			maxW = w
		}
	}
	return maxW
}
