package library

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/ui/action"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.clearSearch()
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.refilter()
		m.cursor.Reset()
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if m.search.Value() != "" {
			m.clearSearch()
		}
		return m, nil
	}

	a := m.keys.Resolve(msg.String())
	switch a {
	case keymap.ActionSearch:
		m.searching = true
		return m, m.search.Focus()
	case keymap.ActionRefresh:
		return m, action.Cmd(Source, RefreshRequested{})
	case keymap.ActionSelect:
		if t, ok := m.Selected(); ok {
			return m, action.Cmd(Source, TrackSelected{Track: t})
		}
		return m, nil
	}

	m.cursor.HandleAction(a, len(m.tracks), m.listHeight())
	return m, nil
}

func (m *Model) clearSearch() {
	m.searching = false
	m.search.Blur()
	m.search.SetValue("")
	m.refilter()
	m.cursor.Reset()
}
