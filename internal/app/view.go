package app

import (
	"strings"

	"github.com/llehouerou/cadence/internal/ui"
	"github.com/llehouerou/cadence/internal/ui/headerbar"
	"github.com/llehouerou/cadence/internal/ui/help"
	"github.com/llehouerou/cadence/internal/ui/layout"
	"github.com/llehouerou/cadence/internal/ui/overlay"
	"github.com/llehouerou/cadence/internal/ui/playerbar"
	"github.com/llehouerou/cadence/internal/ui/render"
	"github.com/llehouerou/cadence/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	parts := []string{headerbar.Render(string(m.Screen), m.Width)}
	switch m.Screen {
	case ScreenLibrary:
		parts = append(parts, m.Library.View())
	case ScreenNowPlaying:
		parts = append(parts, m.NowPlaying.View())
	case ScreenSettings:
		parts = append(parts, m.Settings.View())
	}
	if m.showMiniPlayer() {
		parts = append(parts, playerbar.Render(playerbar.NewState(m.Playback), m.Width))
	}
	parts = append(parts, m.renderStatus())
	view := strings.Join(parts, "\n")

	if m.ShowHelp {
		view = overlay.Center(view, help.Box(m.Height), m.Width, m.Height)
	}
	return view
}

func (m Model) renderStatus() string {
	st := styles.T().S()
	if m.Status != "" {
		return st.Error.Render(render.Truncate(m.Status, m.Width))
	}
	return st.Subtle.Render(render.Truncate("? help · tab switch screen · q quit", m.Width))
}

// showMiniPlayer reports whether the mini player sits under the screen.
func (m Model) showMiniPlayer() bool {
	if m.Screen == ScreenNowPlaying {
		return false
	}
	_, ok := m.Playback.Current()
	return ok && m.Width >= 10
}

// contentHeight returns the rows left for the active screen.
func (m Model) contentHeight() int {
	opts := layout.ContentOpts{HeaderHeight: headerbar.Height, StatusHeight: ui.StatusHeight}
	if m.showMiniPlayer() {
		opts.PlayerBarHeight = playerbar.Height
	}
	return layout.ContentHeight(m.Height, opts)
}

// resize hands every screen its share of the window.
func (m *Model) resize() {
	h := m.contentHeight()
	m.Library.SetSize(m.Width, h)
	m.NowPlaying.SetSize(m.Width, h)
	m.Settings.SetSize(m.Width, h)
}
