// internal/playback/state.go
package playback

// State represents the controller state machine.
//
//	           Select / Cue / Next / Prev (from any state)
//	┌───────┐ ─────────────────────────────▶ ┌─────────┐
//	│ Empty │                                │ Loading │◀──────────┐
//	└───────┘                                └─────────┘           │
//	                        loaded, autoplay │       │ loaded,     │
//	                                         ▼       ▼ no autoplay │
//	                        ┌──────────────┐  toggle ┌─────────────┐
//	                        │ ReadyPlaying │◀───────▶│ ReadyPaused │
//	                        └──────────────┘         └─────────────┘
//	                                 │ finish edge                 │
//	                                 └─────────── Next ────────────┘
//
// Toggle while Loading arms autoplay and leaves the state unchanged.
// Toggle while Empty is a no-op. There is no terminal state.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateReadyPaused
	StateReadyPlaying
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateLoading:
		return "Loading"
	case StateReadyPaused:
		return "ReadyPaused"
	case StateReadyPlaying:
		return "ReadyPlaying"
	default:
		return "Unknown"
	}
}

// IsReady returns true once the engine reports the track loaded.
func (s State) IsReady() bool {
	return s == StateReadyPaused || s == StateReadyPlaying
}
