// Package ui holds the shared layout primitives for the TUI components.
package ui

// Layout constants shared across panels and popups.
const (
	// ScrollMargin is the number of rows kept visible above and below a
	// list cursor while scrolling.
	ScrollMargin = 3

	// BorderHeight is the vertical space a panel border consumes.
	BorderHeight = 2

	// HeaderHeight is the space a panel header and its separator consume.
	HeaderHeight = 2

	// PanelOverhead is the total vertical chrome of a bordered panel with
	// a header: contentHeight = panelHeight - PanelOverhead.
	PanelOverhead = BorderHeight + HeaderHeight
)
