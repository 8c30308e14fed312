// Package playerbar renders the mini player shown under the library and
// settings screens, and the progress bar shared with the now-playing screen.
package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cadence/internal/catalog"
	"github.com/llehouerou/cadence/internal/playback"
	"github.com/llehouerou/cadence/internal/ui/render"
	"github.com/llehouerou/cadence/internal/ui/styles"
)

const (
	playSymbol    = "▶"
	pauseSymbol   = "⏸"
	loadingSymbol = "…"
)

// Height is the rendered height of the mini player, borders included.
const Height = 3

// State holds everything needed to render the mini player.
type State struct {
	HasTrack bool
	Track    catalog.Track
	Playing  bool
	Loading  bool
	Position time.Duration
	Duration time.Duration
}

// NewState reads the mini player state from the playback controller.
func NewState(c *playback.Controller) State {
	t, ok := c.Current()
	if !ok {
		return State{}
	}
	return State{
		HasTrack: true,
		Track:    t,
		Playing:  c.IsPlaying(),
		Loading:  c.State() == playback.StateLoading,
		Position: c.Position(),
		Duration: c.Duration(),
	}
}

// Status returns the transport symbol for the state.
func (s State) Status() string {
	switch {
	case s.Loading:
		return loadingSymbol
	case s.Playing:
		return pauseSymbol // the action space would perform
	default:
		return playSymbol
	}
}

// Render returns the mini player for the given width, or "" without a track.
//
//	╭──────────────────────────────────────────────────╮
//	│ ██ Neon Dreams · Starlight Symphony  ━━━──  ⏸    │
//	╰──────────────────────────────────────────────────╯
func Render(s State, width int) string {
	if !s.HasTrack || width < 10 {
		return ""
	}
	st := styles.T().S()
	inner := width - 4 // border and padding

	thumb := styles.Artwork(s.Track.ID, 2, 1)
	status := st.Playing.Render(s.Status())
	timeStr := render.Duration(s.Position) + " / " + render.Duration(s.Duration)

	fixed := lipgloss.Width(thumb) + 1 + lipgloss.Width(timeStr) + 2 + lipgloss.Width(s.Status()) + 2
	barWidth := 0
	if inner-fixed > 40 {
		barWidth = min((inner-fixed)/3, 30)
	}
	textWidth := max(inner-fixed-barWidth-1, 1)

	title := s.Track.Title
	artist := s.Track.DisplayArtist()
	plain := render.TruncateAndPad(title+" · "+artist, textWidth)
	var text string
	if strings.HasPrefix(plain, title+" · ") {
		text = st.Title.Render(title) + st.Muted.Render(plain[len(title):])
	} else {
		text = st.Title.Render(plain)
	}

	var b strings.Builder
	b.WriteString(thumb)
	b.WriteString(" ")
	b.WriteString(text)
	if barWidth > 0 {
		b.WriteString(" ")
		b.WriteString(ProgressBar(s.Position, s.Duration, barWidth))
	}
	b.WriteString("  ")
	b.WriteString(st.Muted.Render(timeStr))
	b.WriteString("  ")
	b.WriteString(status)

	return st.Panel.Padding(0, 1).Width(width - 2).Render(b.String())
}

// ProgressBar renders a ━━━─── bar filled to position/duration.
func ProgressBar(position, duration time.Duration, width int) string {
	if width <= 0 {
		return ""
	}
	var ratio float64
	if duration > 0 {
		ratio = min(max(float64(position)/float64(duration), 0), 1)
	}
	filled := int(float64(width) * ratio)
	t := styles.T()
	return lipgloss.NewStyle().Foreground(t.Primary).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", width-filled))
}
