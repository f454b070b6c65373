// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionOpenBrowser Action = "open_browser"

	// Reading actions
	ActionPlayPause Action = "play_pause"
	ActionStop      Action = "stop"

	// Page navigation actions
	ActionNextPage  Action = "next_page"
	ActionPrevPage  Action = "prev_page"
	ActionFirstPage Action = "first_page"
	ActionLastPage  Action = "last_page"
	ActionGotoPage  Action = "goto_page"

	// Speech parameter actions
	ActionRateUp     Action = "rate_up"
	ActionRateDown   Action = "rate_down"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"
	ActionNextVoice  Action = "next_voice"

	// Page view scrolling
	ActionScrollUp       Action = "scroll_up"
	ActionScrollDown     Action = "scroll_down"
	ActionScrollHalfUp   Action = "scroll_half_up"
	ActionScrollHalfDown Action = "scroll_half_down"
)
