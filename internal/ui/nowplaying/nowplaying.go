// Package nowplaying provides the now-playing screen: placeholder artwork,
// track details, the scrubber and transport hints.
package nowplaying

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/ui"
	"github.com/llehouerou/cadence/internal/ui/layout"
	"github.com/llehouerou/cadence/internal/ui/playerbar"
	"github.com/llehouerou/cadence/internal/ui/render"
	"github.com/llehouerou/cadence/internal/ui/styles"
)

const (
	maxArtHeight = 12
	maxBarWidth  = 60
	// Rows below the artwork: blank, title, artist, blank, bar, times,
	// blank, status, hints, error.
	detailRows = 10
)

// Model is the now-playing screen.
type Model struct {
	ui.Base
	keys  *keymap.Resolver
	state playerbar.State
	err   string
}

// New creates the now-playing screen.
func New(keys *keymap.Resolver) Model {
	return Model{keys: keys}
}

// SetState updates the displayed playback state.
func (m *Model) SetState(s playerbar.State) {
	m.state = s
}

// SetError sets the load error line; "" clears it.
func (m *Model) SetError(msg string) {
	m.err = msg
}

// View renders the screen.
func (m Model) View() string {
	width, height := m.Width(), m.Height()
	if width <= 0 || height <= 0 {
		return ""
	}
	st := styles.T().S()

	if !m.state.HasTrack {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			st.Muted.Render("Nothing is playing"))
	}

	s := m.state
	barWidth := max(min(width-4, maxBarWidth), ui.MinProgressBarWidth)

	var parts []string
	// Two rows for the artwork border.
	if artH := layout.ArtworkHeight(height, detailRows+2, 2, maxArtHeight); artH > 0 {
		art := styles.Artwork(s.Track.ID, artH*2, artH)
		parts = append(parts, st.Panel.Render(art), "")
	}

	parts = append(parts,
		st.Title.Render(render.Truncate(s.Track.Title, barWidth)),
		st.Muted.Render(render.Truncate(s.Track.DisplayArtist(), barWidth)),
		"",
		playerbar.ProgressBar(s.Position, s.Duration, barWidth),
		st.Subtle.Render(render.Row(render.Duration(s.Position), render.Duration(s.Duration), barWidth)),
		"",
		st.Playing.Render(m.status()),
		st.Subtle.Render(render.Truncate(m.hints(), width)),
	)
	if m.err != "" {
		parts = append(parts, st.Error.Render(render.Truncate(m.err, width)))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) status() string {
	switch {
	case m.state.Loading:
		return "Loading…"
	case m.state.Playing:
		return "▶ Playing"
	default:
		return "⏸ Paused"
	}
}

type hint struct {
	action keymap.Action
	label  string
}

var transportHints = []hint{
	{keymap.ActionPrevTrack, "prev"},
	{keymap.ActionPlayPause, "play/pause"},
	{keymap.ActionNextTrack, "next"},
	{keymap.ActionSeekBack, "back"},
	{keymap.ActionSeekForward, "forward"},
}

func (m Model) hints() string {
	labels := lo.FilterMap(transportHints, func(h hint, _ int) (string, bool) {
		keys := m.keys.KeysFor(h.action)
		if len(keys) == 0 {
			return "", false
		}
		return keyLabel(keys[0]) + " " + h.label, true
	})
	return strings.Join(labels, "  ·  ")
}

// keyLabel prints arrow keys as arrows.
func keyLabel(k string) string {
	switch k {
	case "left":
		return "←"
	case "right":
		return "→"
	case " ":
		return "space"
	}
	return k
}
