package styles

import (
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ArtworkColors derives the two gradient stops of the placeholder cover for
// seed. The same seed always yields the same pair.
func ArtworkColors(seed string) (from, to colorful.Color) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	sum := h.Sum32()

	hue := float64(sum % 360)
	shift := 40 + float64((sum>>9)%80)
	from = colorful.Hcl(hue, 0.55, 0.45).Clamped()
	to = colorful.Hcl(hue+shift, 0.65, 0.75).Clamped()
	return from, to
}

// Artwork renders a width x height block filled with a diagonal gradient
// keyed on seed, used in place of a cover image.
func Artwork(seed string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	from, to := ArtworkColors(seed)
	steps := Blend(width+height-1, from, to)

	lines := make([]string, height)
	var b strings.Builder
	for y := range height {
		b.Reset()
		for x := range width {
			c := steps[x+y]
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(c.Hex())).
				Render("█"))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
