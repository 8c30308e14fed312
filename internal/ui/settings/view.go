package settings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cadence/internal/ui/render"
	"github.com/llehouerou/cadence/internal/ui/styles"
)

const maxWidth = 60

// View renders the settings screen.
func (m Model) View() string {
	width, height := m.Width(), m.Height()
	if width <= 0 || height <= 0 {
		return ""
	}
	t := styles.T()
	st := t.S()
	w := min(width-2, maxWidth)

	lines := []string{styles.Gradient("Settings", true, t.Primary, t.Secondary), ""}
	section := ""
	for i, it := range m.items {
		if s := sectionOf(it); s != section {
			section = s
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, st.Header.Render(section))
		}
		lines = append(lines, m.renderItem(it, i == m.cursor.Pos(), w))
	}
	lines = append(lines, "", st.Subtle.Render("Version "+Version))

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	out := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
	if got := strings.Split(out, "\n"); len(got) > height {
		out = strings.Join(got[:height], "\n")
	}
	return out
}

func sectionOf(it Item) string {
	if it.Toggle {
		return "Preferences"
	}
	return "Legal"
}

func (m Model) renderItem(it Item, selected bool, width int) string {
	st := styles.T().S()

	right := "›"
	if it.Toggle {
		right = "○ off"
		if it.On {
			right = "● on"
		}
	}
	label := render.Truncate(it.Label, max(width-8, 1))

	if selected && m.IsFocused() {
		return st.Cursor.Render(render.Row(" "+label, right+" ", width))
	}
	rightStyle := st.Muted
	if it.Toggle && it.On {
		rightStyle = st.Playing
	}
	return render.Row(" "+st.Base.Render(label), rightStyle.Render(right)+" ", width)
}
