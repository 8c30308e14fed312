package ui

// Base provides size and focus bookkeeping for screen models.
// Embed it to get the standard methods.
//
//	type Model struct {
//	    ui.Base
//	    cursor cursor.Cursor
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the screen is the active one.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the screen is the active one.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the screen dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the screen width.
func (b Base) Width() int {
	return b.width
}

// Height returns the screen height.
func (b Base) Height() int {
	return b.height
}

// ListHeight returns the rows left for a list after overhead, never negative.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
