// Package help renders the key binding overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/ui/render"
	"github.com/llehouerou/cadence/internal/ui/styles"
)

const keyColumn = 16

var contextLabels = map[string]string{
	"global":   "Global",
	"playback": "Playback",
	"library":  "Library",
	"settings": "Settings",
}

// keyLabel shows the space binding by name.
func keyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

// Render centers Box in a width x height area.
func Render(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, Box(height))
}

// Box lists every binding grouped by context in a bordered panel at most
// height rows tall.
func Box(height int) string {
	s := styles.T().S()

	var lines []string
	for _, ctx := range keymap.Contexts() {
		bindings := keymap.ByContext(ctx)
		if len(bindings) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, s.Header.Render(contextLabels[ctx]))
		for _, b := range bindings {
			keys := lo.Uniq(lo.Map(b.Keys, func(k string, _ int) string { return keyLabel(k) }))
			lines = append(lines,
				s.Title.Render(render.Pad(strings.Join(keys, "/"), keyColumn))+
					s.Muted.Render(b.Description))
		}
	}
	lines = append(lines, "", s.Subtle.Render("? or esc to close"))

	if height > 2 && len(lines) > height-2 {
		lines = lines[:height-2]
	}
	return s.Panel.Padding(0, 2).Render(strings.Join(lines, "\n"))
}
