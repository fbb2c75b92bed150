// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit    Action = "quit"
	ActionHelp    Action = "help"
	ActionRefresh Action = "refresh"

	// Feed paging
	ActionNextPage Action = "next_page"
	ActionPrevPage Action = "prev_page"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionTap         Action = "tap" // same as clicking the media surface
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"

	// Tabs
	ActionTabHome    Action = "tab_home"
	ActionTabSearch  Action = "tab_search"
	ActionTabInbox   Action = "tab_inbox"
	ActionTabProfile Action = "tab_profile"
)
