// Package catalog holds the ordered, read-only list of playable tracks and the
// cyclic traversal the player uses for next/previous.
package catalog

import "github.com/samber/lo"

// Catalog is an ordered sequence of tracks with unique IDs.
// A nil *Catalog behaves as an empty catalog.
type Catalog struct {
	tracks []Track
	index  map[string]int
}

// New builds a catalog from tracks, keeping order.
// Tracks whose ID was already seen are dropped (first wins).
func New(tracks []Track) *Catalog {
	c := &Catalog{
		tracks: make([]Track, 0, len(tracks)),
		index:  make(map[string]int, len(tracks)),
	}
	for _, t := range tracks {
		if _, dup := c.index[t.ID]; dup {
			continue
		}
		c.index[t.ID] = len(c.tracks)
		c.tracks = append(c.tracks, t)
	}
	return c
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tracks)
}

// IsEmpty returns true if the catalog has no tracks.
func (c *Catalog) IsEmpty() bool {
	return c.Len() == 0
}

// Tracks returns a copy of all tracks in order.
func (c *Catalog) Tracks() []Track {
	if c == nil {
		return nil
	}
	out := make([]Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

// At returns the track at index i.
func (c *Catalog) At(i int) (Track, bool) {
	if c == nil || i < 0 || i >= len(c.tracks) {
		return Track{}, false
	}
	return c.tracks[i], true
}

// First returns the first track.
func (c *Catalog) First() (Track, bool) {
	return c.At(0)
}

// IndexOf returns the position of the track with the given ID, or -1.
func (c *Catalog) IndexOf(id string) int {
	if c == nil {
		return -1
	}
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// Get returns the track with the given ID.
func (c *Catalog) Get(id string) (Track, bool) {
	return c.At(c.IndexOf(id))
}

// Contains reports whether a track with the given ID is in the catalog.
func (c *Catalog) Contains(id string) bool {
	return c.IndexOf(id) >= 0
}

// Next returns the cyclic successor of the track with the given ID.
// An unknown ID yields the first track. Returns false only on an empty catalog.
func (c *Catalog) Next(id string) (Track, bool) {
	return c.step(id, 1)
}

// Prev returns the cyclic predecessor of the track with the given ID.
// An unknown ID yields the first track. Returns false only on an empty catalog.
func (c *Catalog) Prev(id string) (Track, bool) {
	return c.step(id, -1)
}

func (c *Catalog) step(id string, delta int) (Track, bool) {
	n := c.Len()
	if n == 0 {
		return Track{}, false
	}
	i := c.IndexOf(id)
	if i < 0 {
		return c.tracks[0], true
	}
	return c.tracks[(i+delta+n)%n], true
}

// TotalSize returns the summed on-disk size of all tracks.
func (c *Catalog) TotalSize() int64 {
	if c == nil {
		return 0
	}
	return lo.SumBy(c.tracks, func(t Track) int64 { return t.Size })
}
