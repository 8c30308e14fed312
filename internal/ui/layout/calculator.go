// Package layout provides pure functions for UI dimension calculations.
package layout

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight    int
	PlayerBarHeight int // 0 when no mini player is shown
	StatusHeight    int
}

// ContentHeight calculates the rows left for the active screen: the window
// minus header, mini player and status line. Never negative.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.PlayerBarHeight
	height -= opts.StatusHeight
	return max(height, 0)
}

// ArtworkHeight returns the artwork rows that fit above detailRows of text
// in a screen of the given height, capped at maxHeight. Zero means the
// artwork is hidden; anything below minHeight is not worth drawing.
func ArtworkHeight(screenHeight, detailRows, minHeight, maxHeight int) int {
	h := min(screenHeight-detailRows, maxHeight)
	if h < minHeight {
		return 0
	}
	return h
}

// TrackColumns splits the text width of a track row between the title
// (three fifths) and the artist, leaving one column between them.
func TrackColumns(width int) (title, artist int) {
	if width < 3 {
		return max(width, 1), 0
	}
	title = width * 3 / 5
	artist = width - title - 1
	return title, artist
}
