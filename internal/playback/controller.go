// Package playback owns the playback session: the current track, the
// autoplay intent and the finish-edge guard. It drives a player.Interface
// and is meant to be called from a single goroutine (the UI loop).
package playback

import (
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/cadence/internal/catalog"
	"github.com/llehouerou/cadence/internal/player"
)

// Controller is the playback state machine. It is not safe for concurrent
// use; all methods must be called from the goroutine that owns the UI.
type Controller struct {
	engine  player.Interface
	catalog *catalog.Catalog
	log     *zap.Logger

	current *catalog.Track

	// autoplay means "start playing as soon as the engine reports loaded".
	// Set on every track change, consumed by Observe.
	autoplay bool

	// finishedGuard turns the engine's level-triggered JustFinished into a
	// single advance: set when an advance fires, cleared once JustFinished
	// drops back to false.
	finishedGuard bool

	status  player.Status
	lastErr error
}

// New creates a controller around engine.
func New(engine player.Interface, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{engine: engine, log: log}
}

// SetCatalog replaces the catalog. Playback of the current track is left
// alone even when the new catalog no longer contains it. If nothing has been
// selected yet, the first track is cued without autoplay.
func (c *Controller) SetCatalog(cat *catalog.Catalog) {
	c.catalog = cat
	c.log.Info("catalog replaced", zap.Int("tracks", cat.Len()))

	if c.current != nil {
		if !cat.Contains(c.current.ID) {
			c.log.Debug("current track not in new catalog", zap.String("id", c.current.ID))
		}
		return
	}
	if first, ok := cat.First(); ok {
		c.Cue(first)
	}
}

// Catalog returns the current catalog (possibly nil).
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Select makes t the current track and plays it once loaded.
func (c *Controller) Select(t catalog.Track) {
	c.queue(t, true)
}

// Cue makes t the current track without starting playback.
func (c *Controller) Cue(t catalog.Track) {
	c.queue(t, false)
}

func (c *Controller) queue(t catalog.Track, autoplay bool) {
	c.current = &t
	c.autoplay = autoplay
	c.status = player.Status{Ref: t.AudioRef}
	c.lastErr = nil
	c.engine.Load(t.AudioRef)
	c.log.Debug("track queued",
		zap.String("id", t.ID),
		zap.String("title", t.Title),
		zap.Bool("autoplay", autoplay))
}

// TogglePlayPause pauses a playing track, plays a paused one, and arms
// autoplay for a track that is still loading. No-op without a track.
func (c *Controller) TogglePlayPause() {
	if c.current == nil {
		return
	}
	switch {
	case c.status.Playing:
		c.autoplay = false
		c.engine.Pause()
	case !c.status.Loaded:
		c.autoplay = true
		return
	default:
		c.autoplay = false
		c.engine.Play()
	}
	c.refresh()
}

// Next selects the cyclic successor of the current track.
// With no current track, or one missing from the catalog, it selects the
// first track. No-op on an empty catalog.
func (c *Controller) Next() {
	if t, ok := c.catalog.Next(c.currentID()); ok {
		c.Select(t)
	}
}

// Prev selects the cyclic predecessor of the current track, with the same
// fallback rules as Next.
func (c *Controller) Prev() {
	if t, ok := c.catalog.Prev(c.currentID()); ok {
		c.Select(t)
	}
}

// Seek moves playback to pos. Ignored until the engine reports loaded.
// Engine failures are logged and otherwise swallowed.
func (c *Controller) Seek(pos time.Duration) {
	if c.current == nil || !c.status.Loaded {
		return
	}
	pos = max(pos, 0)
	if err := c.engine.Seek(pos); err != nil {
		c.log.Warn("seek failed",
			zap.String("id", c.current.ID),
			zap.Duration("position", pos),
			zap.Error(err))
		return
	}
	c.refresh()
}

// SeekBy moves playback by delta relative to the last known position.
func (c *Controller) SeekBy(delta time.Duration) {
	c.Seek(c.status.Position + delta)
}

// Observe feeds an engine status snapshot into the state machine. It must be
// called on every status tick. It returns true when the snapshot caused an
// automatic advance to the next track.
func (c *Controller) Observe(s player.Status) bool {
	if c.current == nil {
		c.status = s
		return false
	}
	// A snapshot for another reference belongs to a superseded load.
	if s.Ref != c.current.AudioRef {
		return false
	}
	c.status = s

	if s.Err != nil && c.lastErr == nil {
		c.lastErr = s.Err
		c.log.Warn("track failed to load",
			zap.String("id", c.current.ID),
			zap.String("ref", c.current.AudioRef),
			zap.Error(s.Err))
	}

	if s.Loaded && c.autoplay {
		c.autoplay = false
		c.engine.Play()
		c.refresh()
	}

	if !s.JustFinished {
		c.finishedGuard = false
		return false
	}
	if c.finishedGuard {
		return false
	}
	c.finishedGuard = true
	c.log.Debug("track finished", zap.String("id", c.current.ID))
	c.Next()
	return true
}

// refresh re-reads the engine after a direct command so the UI does not
// wait a tick to reflect it. Finish edges are still only handled by Observe.
func (c *Controller) refresh() {
	if s := c.engine.Status(); s.Ref == c.status.Ref {
		c.status = s
	}
}

func (c *Controller) currentID() string {
	if c.current == nil {
		return ""
	}
	return c.current.ID
}

// State returns the derived state machine state.
func (c *Controller) State() State {
	switch {
	case c.current == nil:
		return StateEmpty
	case !c.status.Loaded:
		return StateLoading
	case c.status.Playing:
		return StateReadyPlaying
	default:
		return StateReadyPaused
	}
}

// Current returns the current track.
func (c *Controller) Current() (catalog.Track, bool) {
	if c.current == nil {
		return catalog.Track{}, false
	}
	return *c.current, true
}

// AutoplayPending reports whether the track will start once loaded.
func (c *Controller) AutoplayPending() bool {
	return c.autoplay
}

// IsPlaying reports whether the engine is playing the current track.
func (c *Controller) IsPlaying() bool {
	return c.current != nil && c.status.Playing
}

// IsLoaded reports whether the engine has loaded the current track.
func (c *Controller) IsLoaded() bool {
	return c.current != nil && c.status.Loaded
}

// Position returns the playback position of the current track.
func (c *Controller) Position() time.Duration {
	if c.current == nil {
		return 0
	}
	return c.status.Position
}

// Duration returns the engine duration, or the track's advisory duration
// until the engine has loaded it.
func (c *Controller) Duration() time.Duration {
	if c.current == nil {
		return 0
	}
	if c.status.Loaded && c.status.Duration > 0 {
		return c.status.Duration
	}
	return c.current.Duration
}

// LastError returns the load error for the current track, if any.
func (c *Controller) LastError() error {
	return c.lastErr
}
