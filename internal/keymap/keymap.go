// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding for documentation and dispatch.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "reading", "pages", "speech", "view"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit application", "global"},
	{[]string{"?"}, ActionHelp, "Show help", "global"},
	{[]string{"o"}, ActionOpenBrowser, "Open document", "global"},

	// Reading
	{[]string{"space"}, ActionPlayPause, "Play/pause", "reading"},
	{[]string{"s"}, ActionStop, "Stop", "reading"},

	// Page navigation
	{[]string{"n", "right", "pgdown"}, ActionNextPage, "Next page", "pages"},
	{[]string{"p", "left", "pgup"}, ActionPrevPage, "Previous page", "pages"},
	{[]string{"home"}, ActionFirstPage, "First page", "pages"},
	{[]string{"end"}, ActionLastPage, "Last page", "pages"},
	{[]string{":"}, ActionGotoPage, "Go to page", "pages"},

	// Speech parameters
	{[]string{"+", "="}, ActionRateUp, "Faster (+10 wpm)", "speech"},
	{[]string{"-"}, ActionRateDown, "Slower (-10 wpm)", "speech"},
	{[]string{"up"}, ActionVolumeUp, "Volume up", "speech"},
	{[]string{"down"}, ActionVolumeDown, "Volume down", "speech"},
	{[]string{"v"}, ActionNextVoice, "Next voice", "speech"},

	// Page view scrolling
	{[]string{"k"}, ActionScrollUp, "Scroll up", "view"},
	{[]string{"j"}, ActionScrollDown, "Scroll down", "view"},
	{[]string{"ctrl+u"}, ActionScrollHalfUp, "Scroll half page up", "view"},
	{[]string{"ctrl+d"}, ActionScrollHalfDown, "Scroll half page down", "view"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
