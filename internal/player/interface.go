// internal/player/interface.go
package player

import "time"

// Interface is the audio engine contract. Load is asynchronous: the engine
// reports completion through Status. Only the most recent Load counts.
type Interface interface {
	Load(ref string)
	Play()
	Pause()
	Seek(pos time.Duration) error
	Status() Status
	Close() error
}

// Status is a snapshot of the engine, read on every UI tick.
type Status struct {
	Ref          string // reference of the most recent Load
	Loaded       bool
	Playing      bool
	Position     time.Duration
	Duration     time.Duration
	JustFinished bool  // true from end of stream until the next Load, Play or Seek
	Err          error // load failure for Ref, nil otherwise
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
