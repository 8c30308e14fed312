package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/cadence/internal/catalog"
	"github.com/llehouerou/cadence/internal/errmsg"
	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/ui/action"
	"github.com/llehouerou/cadence/internal/ui/library"
	"github.com/llehouerou/cadence/internal/ui/playerbar"
	"github.com/llehouerou/cadence/internal/ui/settings"
	"github.com/llehouerou/cadence/internal/ui/styles"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case WatchStartedMsg:
		if msg.Err != nil {
			m.log.Warn("library watcher unavailable", zap.Error(msg.Err))
			m.notice = errmsg.Line(errmsg.Format(errmsg.OpLibraryWatch, msg.Err))
			m.sync()
			return m, nil
		}
		m.changes = msg.Changes
		return m, waitForChange(m.changes)

	case LibraryChangedMsg:
		m.log.Info("library folders changed")
		cmd := m.rescan()
		return m, tea.Batch(cmd, waitForChange(m.changes))

	case watchClosedMsg:
		m.changes = nil
		return m, nil

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other component messages go to the search box.
	var cmd tea.Cmd
	m.Library, cmd = m.Library.Update(msg)
	return m, cmd
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.Playback.Observe(m.engine.Status()) {
		if t, ok := m.Playback.Current(); ok {
			m.log.Debug("advanced to next track", zap.String("id", t.ID))
		}
	}
	m.elapsed = now.Sub(m.started)
	m.sync()
	return m, m.tickCmd()
}

func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	m.Scanning = false
	cat := msg.Catalog
	if cat == nil {
		cat = catalog.New(nil)
	}

	switch {
	case msg.Err == nil:
		m.log.Info("library scanned", zap.Int("tracks", cat.Len()))
	case errors.Is(msg.Err, catalog.ErrPermissionDenied), errors.Is(msg.Err, catalog.ErrEmptyCatalog):
		m.log.Info("library scan returned no tracks", zap.Error(msg.Err))
	default:
		m.log.Error("library scan failed", zap.Error(msg.Err))
	}

	m.Library.SetCatalog(cat)
	m.Library.SetMessage(catalog.Message(msg.Err))
	m.Playback.SetCatalog(cat)
	m.sync()
	return m, nil
}

func (m *Model) rescan() tea.Cmd {
	if m.Scanning {
		return nil
	}
	m.Scanning = true
	m.Library.SetLoading(true)
	return m.scanCmd()
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	m.log.Debug("action", zap.String("source", msg.Source), zap.String("type", msg.Action.ActionType()))

	switch a := msg.Action.(type) {
	case library.TrackSelected:
		m.Playback.Select(a.Track)
		m.switchTo(ScreenNowPlaying)
	case library.RefreshRequested:
		cmd := m.rescan()
		m.sync()
		return m, cmd
	case settings.ToggleChanged:
		m.log.Info("setting changed", zap.String("label", a.Label), zap.Bool("on", a.On))
		if a.Label == settings.DarkMode {
			styles.SetDark(a.On)
		}
	}
	m.sync()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.ShowHelp {
		if key == "?" || key == "esc" || m.keys.Resolve(key) == keymap.ActionQuit {
			m.ShowHelp = false
		}
		return m, nil
	}

	if m.Screen == ScreenLibrary && m.Library.Capturing() {
		var cmd tea.Cmd
		m.Library, cmd = m.Library.Update(msg)
		return m, cmd
	}

	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = true
	case keymap.ActionNextScreen:
		m.nextScreen()
	case keymap.ActionViewLibrary:
		m.switchTo(ScreenLibrary)
	case keymap.ActionViewNowPlaying:
		m.switchTo(ScreenNowPlaying)
	case keymap.ActionViewSettings:
		m.switchTo(ScreenSettings)
	case keymap.ActionPlayPause:
		m.Playback.TogglePlayPause()
	case keymap.ActionNextTrack:
		m.Playback.Next()
	case keymap.ActionPrevTrack:
		m.Playback.Prev()
	case keymap.ActionSeekForward:
		m.Playback.SeekBy(m.cfg.Playback.SeekStep)
	case keymap.ActionSeekBack:
		m.Playback.SeekBy(-m.cfg.Playback.SeekStep)
	default:
		return m.updateScreen(msg)
	}
	m.sync()
	return m, nil
}

// updateScreen forwards a key to the active screen.
func (m Model) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Screen {
	case ScreenLibrary:
		m.Library, cmd = m.Library.Update(msg)
	case ScreenSettings:
		m.Settings, cmd = m.Settings.Update(msg)
	case ScreenNowPlaying:
	}
	return m, cmd
}

// sync pushes the controller state into the screens.
func (m *Model) sync() {
	state := playerbar.NewState(m.Playback)
	m.Library.SetNowPlaying(state.Track.ID, state.Playing)
	m.Library.SetElapsed(m.elapsed)
	m.NowPlaying.SetState(state)

	m.Status = m.notice
	if err := m.Playback.LastError(); err != nil {
		m.Status = errmsg.Line(errmsg.FormatWith(errmsg.OpTrackLoad, state.Track.Title, err))
	}
	m.NowPlaying.SetError(m.Status)
	m.resize()
}
