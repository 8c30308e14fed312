// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionHelp       Action = "help"
	ActionNextScreen Action = "next_screen"
	ActionSearch     Action = "search"
	ActionRefresh    Action = "refresh_library"

	// Screen switching
	ActionViewLibrary    Action = "view_library"
	ActionViewNowPlaying Action = "view_now_playing"
	ActionViewSettings   Action = "view_settings"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionNextTrack   Action = "next_track"
	ActionPrevTrack   Action = "prev_track"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Selection/activation actions
	ActionSelect Action = "select" // enter - play track / toggle setting
)
