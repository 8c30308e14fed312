package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cadence/internal/catalog"
	"github.com/llehouerou/cadence/internal/medialib"
)

// tickCmd schedules the next status poll.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.Playback.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// scanCmd rebuilds the catalog from the source, or the demo catalog.
func (m Model) scanCmd() tea.Cmd {
	ctx, src, pageSize := m.ctx, m.source, m.cfg.Library.PageSize
	return func() tea.Msg {
		if src == nil {
			return CatalogLoadedMsg{Catalog: catalog.Demo()}
		}
		cat, err := catalog.Scan(ctx, src, pageSize)
		return CatalogLoadedMsg{Catalog: cat, Err: err}
	}
}

func (m Model) startWatchCmd() tea.Cmd {
	ctx, w := m.ctx, m.watcher
	return func() tea.Msg {
		ch, err := w.Watch(ctx, medialib.DefaultDebounce)
		return WatchStartedMsg{Changes: ch, Err: err}
	}
}

// waitForChange blocks until the watcher reports a change.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return watchClosedMsg{}
		}
		return LibraryChangedMsg{}
	}
}
