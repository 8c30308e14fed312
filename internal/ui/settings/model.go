// Package settings provides the settings screen: a list of in-memory
// toggles, the legal links and the version line.
package settings

import (
	"github.com/samber/lo"

	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/ui"
	"github.com/llehouerou/cadence/internal/ui/cursor"
)

// Version is shown at the bottom of the screen.
const Version = "1.0.0"

// Toggle labels.
const (
	DarkMode          = "Dark Mode"
	EqualizerPresets  = "Equalizer Presets"
	OfflineMode       = "Offline Mode"
	PushNotifications = "Push Notifications"
	ClearCache        = "Clear Cache"
)

// Item is one row of the settings list.
type Item struct {
	Label  string
	Toggle bool // false for links
	On     bool
}

func defaultItems() []Item {
	return []Item{
		{Label: DarkMode, Toggle: true, On: true},
		{Label: EqualizerPresets, Toggle: true},
		{Label: OfflineMode, Toggle: true},
		{Label: PushNotifications, Toggle: true},
		{Label: ClearCache, Toggle: true},
		{Label: "Privacy Policy"},
		{Label: "Terms of Service"},
	}
}

// Model is the settings screen state.
type Model struct {
	ui.Base
	keys   *keymap.Resolver
	items  []Item
	cursor cursor.Cursor
}

// New creates the settings screen with its defaults.
func New(keys *keymap.Resolver) Model {
	return Model{
		keys:   keys,
		items:  defaultItems(),
		cursor: cursor.New(0),
	}
}

// Items returns a copy of the rows.
func (m Model) Items() []Item {
	return append([]Item(nil), m.items...)
}

// IsOn reports the state of the toggle with the given label.
func (m Model) IsOn(label string) bool {
	it, ok := lo.Find(m.items, func(it Item) bool { return it.Label == label })
	return ok && it.On
}

// SetToggle sets a toggle without emitting an action.
func (m *Model) SetToggle(label string, on bool) {
	for i := range m.items {
		if m.items[i].Label == label && m.items[i].Toggle {
			m.items[i].On = on
		}
	}
}

// CursorPos returns the selected row.
func (m Model) CursorPos() int {
	return m.cursor.Pos()
}
