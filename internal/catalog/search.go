package catalog

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// Filter returns the tracks whose title or artist contains query,
// compared case-insensitively. An empty query returns every track.
func (c *Catalog) Filter(query string) []Track {
	return Filter(c.Tracks(), query)
}

// Filter applies the library search to an arbitrary track slice.
func Filter(tracks []Track, query string) []Track {
	q := strings.TrimSpace(query)
	if q == "" {
		return tracks
	}
	fold := cases.Fold()
	needle := fold.String(q)
	return lo.Filter(tracks, func(t Track, _ int) bool {
		return strings.Contains(fold.String(t.Title), needle) ||
			strings.Contains(fold.String(t.DisplayArtist()), needle)
	})
}
