package library

import "github.com/llehouerou/cadence/internal/catalog"

// Source identifies the library screen in action messages.
const Source = "library"

// TrackSelected is emitted when the user picks a track to play.
type TrackSelected struct {
	Track catalog.Track
}

// ActionType implements action.Action.
func (TrackSelected) ActionType() string { return "library.track_selected" }

// RefreshRequested is emitted when the user asks for a rescan.
type RefreshRequested struct{}

// ActionType implements action.Action.
func (RefreshRequested) ActionType() string { return "library.refresh_requested" }
