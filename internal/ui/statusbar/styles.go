package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LN405Rx/lectern/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border)
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func metaStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func playingStyle() lipgloss.Style {
	return styles.T().S().Reading
}

func pausedStyle() lipgloss.Style {
	return styles.T().S().Warning
}

func stoppedStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func progressFilledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func progressEmptyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().FgSubtle)
}
