package library

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/cadence/internal/catalog"
	"github.com/llehouerou/cadence/internal/ui/layout"
	"github.com/llehouerou/cadence/internal/ui/playerbar"
	"github.com/llehouerou/cadence/internal/ui/render"
	"github.com/llehouerou/cadence/internal/ui/styles"
)

const (
	markerWidth   = 5
	durationWidth = 7
)

// View renders the library screen.
func (m Model) View() string {
	width, height := m.Width(), m.Height()
	if width <= 0 || height <= 0 {
		return ""
	}
	st := styles.T().S()

	lines := make([]string, 0, height)
	lines = append(lines, m.renderHeader(width))
	lines = append(lines, m.search.View())
	lines = append(lines, st.Subtle.Render(render.Separator(width)))

	listHeight := m.listHeight()
	body := m.renderBody(width, listHeight)
	for len(body) < listHeight {
		body = append(body, "")
	}
	lines = append(lines, body...)
	lines = append(lines, st.Muted.Render(render.Truncate(m.footer(), width)))

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHeader(width int) string {
	t := styles.T()
	title := styles.Gradient("Library", true, t.Primary, t.Secondary)
	if m.loading {
		return render.Row(title, t.S().Muted.Render("Scanning…"), width)
	}
	return title
}

func (m Model) renderBody(width, height int) []string {
	if height <= 0 {
		return nil
	}
	st := styles.T().S()
	if len(m.tracks) == 0 {
		var msg string
		switch {
		case m.loading:
			msg = st.Muted.Render("Scanning library…")
		case m.message != "":
			msg = st.Warning.Render(render.Truncate(m.message, width))
		case len(m.all) == 0:
			msg = st.Muted.Render("No tracks found")
		default:
			msg = st.Muted.Render(render.Truncate(fmt.Sprintf("No matches for %q", m.Query()), width))
		}
		return []string{msg}
	}

	start, end := m.cursor.VisibleRange(len(m.tracks), height)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderRow(m.tracks[i], i == m.cursor.Pos(), width))
	}
	return rows
}

func (m Model) renderRow(tr catalog.Track, selected bool, width int) string {
	st := styles.T().S()
	current := tr.ID == m.currentID

	marker := strings.Repeat(" ", markerWidth)
	if current {
		if m.playing {
			marker = playerbar.WaveFrame(m.elapsed)
		} else {
			marker = "  ▶  "
		}
	}

	textWidth := max(width-markerWidth-durationWidth-2, 2)
	titleWidth, artistWidth := layout.TrackColumns(textWidth)

	title := render.TruncateAndPad(tr.Title, titleWidth)
	artist := render.TruncateAndPad(tr.DisplayArtist(), artistWidth)
	dur := fmt.Sprintf("%*s", durationWidth, render.Duration(tr.Duration))

	if selected && m.IsFocused() {
		row := marker + " " + title + " " + artist + " " + dur
		return st.Cursor.Render(render.TruncateAndPad(row, width))
	}

	markerStyle, titleStyle := st.Subtle, st.Base
	if current {
		markerStyle, titleStyle = st.Playing, st.Playing
	}
	return markerStyle.Render(marker) + " " +
		titleStyle.Render(title) + " " +
		st.Muted.Render(artist) + " " +
		st.Subtle.Render(dur)
}

func (m Model) footer() string {
	total := len(m.all)
	var count string
	if m.Query() != "" {
		count = fmt.Sprintf("%d of %d tracks", len(m.tracks), total)
	} else {
		count = plural(total, "track")
	}
	if m.totalSize > 0 {
		count += " · " + humanize.Bytes(uint64(m.totalSize))
	}
	return count
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
