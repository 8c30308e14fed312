package catalog

import (
	"fmt"
	"strings"
	"time"
)

// UnknownArtist is shown when a track carries no artist metadata.
const UnknownArtist = "Unknown Artist"

// Track is one playable item. Tracks are values: a catalog hands out copies.
type Track struct {
	ID         string
	Title      string
	Artist     string
	ArtworkURL string
	Duration   time.Duration // advisory, the engine reports the real one once loaded
	AudioRef   string        // file path or http(s) URL
	Size       int64         // bytes on disk, 0 when unknown
}

// PlaceholderArtwork returns the deterministic artwork reference for a track
// that has none of its own.
func PlaceholderArtwork(id string) string {
	return fmt.Sprintf("https://picsum.photos/seed/rnmusic-%s/300", id)
}

// Artwork returns the track artwork reference, falling back to the placeholder.
func (t Track) Artwork() string {
	if t.ArtworkURL != "" {
		return t.ArtworkURL
	}
	return PlaceholderArtwork(t.ID)
}

// DisplayArtist returns the artist, or UnknownArtist when empty.
func (t Track) DisplayArtist() string {
	if strings.TrimSpace(t.Artist) == "" {
		return UnknownArtist
	}
	return t.Artist
}

// IsRemote reports whether the audio reference points at a URL.
func (t Track) IsRemote() bool {
	return strings.HasPrefix(t.AudioRef, "http://") || strings.HasPrefix(t.AudioRef, "https://")
}
