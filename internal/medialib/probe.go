package medialib

import (
	"os"

	"github.com/dhowden/tag"

	"github.com/llehouerou/cadence/internal/player"
)

// Probe reads tags and the decoded duration of an audio file.
// Missing or unreadable tags are not an error; an undecodable stream is.
func Probe(path string) (Metadata, error) {
	var meta Metadata
	if f, err := os.Open(path); err == nil {
		if m, err := tag.ReadFrom(f); err == nil {
			meta.Title = m.Title()
			meta.Artist = m.Artist()
			if meta.Artist == "" {
				meta.Artist = m.AlbumArtist()
			}
		}
		f.Close()
	}

	d, err := player.ProbeDuration(path)
	if err != nil {
		return meta, err
	}
	meta.Duration = d
	return meta, nil
}
