// Package action defines the messages screens use to report user intent to
// the application model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a screen asks the application to do.
// ActionType returns a stable identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the screen that emitted it.
type Msg struct {
	Source string // "library", "settings", ...
	Action Action
}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}

var _ tea.Msg = Msg{}
