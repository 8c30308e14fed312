package settings

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/ui/action"
)

// Source identifies the settings screen in action messages.
const Source = "settings"

// ToggleChanged is emitted when the user flips a toggle.
type ToggleChanged struct {
	Label string
	On    bool
}

// ActionType implements action.Action.
func (ToggleChanged) ActionType() string { return "settings.toggle_changed" }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	a := m.keys.Resolve(key.String())
	if a == keymap.ActionSelect {
		return m.toggle()
	}
	m.cursor.HandleAction(a, len(m.items), len(m.items))
	return m, nil
}

func (m Model) toggle() (Model, tea.Cmd) {
	pos := m.cursor.Pos()
	if pos >= len(m.items) || !m.items[pos].Toggle {
		return m, nil
	}
	// Copy before writing so earlier values of the model keep their rows.
	m.items = append([]Item(nil), m.items...)
	m.items[pos].On = !m.items[pos].On
	it := m.items[pos]
	return m, action.Cmd(Source, ToggleChanged{Label: it.Label, On: it.On})
}
