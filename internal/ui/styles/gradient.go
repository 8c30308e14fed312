package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral is used when a theme color is not a #rrggbb hex value.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient renders text with a horizontal color gradient, blended per
// grapheme cluster in HCL space.
func Gradient(text string, bold bool, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	colors := Blend(len(clusters), toColorful(from), toColorful(to))
	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i].Hex()))
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// Blend returns n colors evenly spaced from a to b. A single color is a.
func Blend(n int, a, b colorful.Color) []colorful.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []colorful.Color{a}
	}
	out := make([]colorful.Color, n)
	for i := range n {
		out[i] = a.BlendHcl(b, float64(i)/float64(n-1)).Clamped()
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}
