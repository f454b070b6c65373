package styles

import "github.com/charmbracelet/lipgloss"

var (
	unfocusedPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(defaultTheme.Border)

	focusedPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(defaultTheme.BorderFocus)
)

// PanelStyle returns the bordered panel style for the given focus state.
func PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return focusedPanelStyle
	}
	return unfocusedPanelStyle
}
