// Package overlay composes a popup over a base view without disturbing the
// styling of either.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose lays overlay on top of base. Visible overlay characters replace
// the base at the same column; rows and columns where the overlay is blank
// show through. Both inputs may carry ANSI styling.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue
		}

		// Visible extent of the overlay row, in display columns.
		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}
		trimmed := strings.TrimRight(plainOverlay, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		overlayContent := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		baseWidth := ansi.StringWidth(ansi.Strip(baseLine))
		if baseWidth < width {
			baseLine += strings.Repeat(" ", width-baseWidth)
		}

		result := ansi.Cut(baseLine, 0, startCol) + overlayContent
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}

		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}
