// Package headerbar renders the screen tabs at the top of the window.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cadence/internal/ui"
	"github.com/llehouerou/cadence/internal/ui/render"
	"github.com/llehouerou/cadence/internal/ui/styles"
)

// Height is the fixed height of the header bar: the tabs and a rule.
const Height = ui.TabBarHeight

// Tab is one entry of the header bar.
type Tab struct {
	Key  string
	Name string
	ID   string
}

// Tabs lists the screens in display order.
var Tabs = []Tab{
	{"1", "Library", "library"},
	{"2", "Now Playing", "nowplaying"},
	{"3", "Settings", "settings"},
}

// Render returns the header bar for the given width with active highlighted.
// The app name is shown on the right when there is room.
func Render(active string, width int) string {
	if width <= 0 {
		return ""
	}
	t := styles.T()
	st := t.S()

	parts := make([]string, 0, len(Tabs))
	for _, tab := range Tabs {
		label := tab.Key + " " + tab.Name
		if tab.ID == active {
			parts = append(parts, st.TabOn.Render(label))
		} else {
			parts = append(parts, st.TabOff.Render(label))
		}
	}
	tabs := strings.Join(parts, " ")

	line := tabs
	brand := styles.Gradient("cadence", true, t.Primary, t.Secondary)
	if lipgloss.Width(tabs)+lipgloss.Width(brand)+2 <= width {
		line = render.Row(tabs, brand, width)
	}
	return line + "\n" + st.Subtle.Render(render.Separator(width))
}
