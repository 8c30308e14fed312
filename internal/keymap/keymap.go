package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "library", "settings"
}

// All contains all key bindings, in help order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionNextScreen, []string{"tab"}, "Next screen", "global"},
	{ActionViewLibrary, []string{"1"}, "Library", "global"},
	{ActionViewNowPlaying, []string{"2"}, "Now playing", "global"},
	{ActionViewSettings, []string{"3"}, "Settings", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"n"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p"}, "Previous track", "playback"},
	{ActionSeekBack, []string{"left", "h"}, "Seek back", "playback"},
	{ActionSeekForward, []string{"right", "l"}, "Seek forward", "playback"},

	// Library
	{ActionMoveUp, []string{"k", "up"}, "Move up", "library"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "library"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "library"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "library"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page up", "library"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page down", "library"},
	{ActionSelect, []string{"enter"}, "Play track", "library"},
	{ActionSearch, []string{"/"}, "Search (esc clears)", "library"},
	{ActionRefresh, []string{"r"}, "Refresh library", "library"},

	// Settings
	{ActionSelect, []string{"enter"}, "Toggle setting", "settings"},
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

// Contexts lists the binding contexts in help order.
func Contexts() []string {
	return []string{"global", "playback", "library", "settings"}
}
