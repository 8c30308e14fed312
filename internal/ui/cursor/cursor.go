// Package cursor tracks the selected row and scroll offset of a list.
package cursor

import "github.com/llehouerou/cadence/internal/keymap"

// Cursor manages cursor position and scroll offset for a scrollable list.
// List length and viewport height are passed in on every call since both
// change as the catalog is refreshed or the terminal resized.
type Cursor struct {
	pos    int
	offset int // first visible index
	margin int // rows kept visible above and below the cursor
}

// New creates a cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta, clamped to the list. No-op on an empty list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump moves the cursor to pos, clamped to the list. No-op on an empty list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.scroll(listLen, height)
}

// Reset moves the cursor back to the first row.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// Clamp pulls the cursor back inside a list that shrank.
func (c *Cursor) Clamp(listLen, height int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(c.pos, listLen-1)
	c.scroll(listLen, height)
}

func (c *Cursor) scroll(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// HandleAction applies a navigation action and reports whether it was one.
func (c *Cursor) HandleAction(a keymap.Action, listLen, height int) bool {
	switch a {
	case keymap.ActionMoveDown:
		c.Move(1, listLen, height)
	case keymap.ActionMoveUp:
		c.Move(-1, listLen, height)
	case keymap.ActionJumpStart:
		c.Jump(0, listLen, height)
	case keymap.ActionJumpEnd:
		c.Jump(listLen-1, listLen, height)
	case keymap.ActionPageDown:
		c.Move(max(height-1, 1), listLen, height)
	case keymap.ActionPageUp:
		c.Move(-max(height-1, 1), listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	return max(0, min(v, maxVal))
}
