// Package overlay draws a box over an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Center draws box over the middle of base. The base view is padded to
// width x height first; cells outside the box keep their styling.
func Center(base, box string, width, height int) string {
	boxLines := strings.Split(box, "\n")
	boxWidth := 0
	for _, l := range boxLines {
		boxWidth = max(boxWidth, ansi.StringWidth(l))
	}
	top := max((height-len(boxLines))/2, 0)
	left := max((width-boxWidth)/2, 0)
	return At(base, box, left, top, width, height)
}

// At draws box over base with its top-left corner at column x, row y.
func At(base, box string, x, y, width, height int) string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = pad(l, width)
	}

	for i, boxLine := range strings.Split(box, "\n") {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		lines[row] = splice(lines[row], boxLine, x, width)
	}
	return strings.Join(lines, "\n")
}

// splice replaces the cells of line starting at col with insert.
func splice(line, insert string, col, width int) string {
	insert = ansi.Truncate(insert, max(width-col, 0), "")
	end := col + ansi.StringWidth(insert)

	out := ansi.Cut(line, 0, col) + insert
	if end < width {
		out += ansi.Cut(line, end, width)
	}
	return out
}

func pad(line string, width int) string {
	if w := ansi.StringWidth(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}
