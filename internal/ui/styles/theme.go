// Package styles holds the color themes and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Name string

	// Brand/accent colors
	Primary   lipgloss.Color // Green - playing track, active toggles
	Secondary lipgloss.Color // Lighter accent for gradients

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	Border lipgloss.Color

	// Status colors
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Header  lipgloss.Style // screen titles
	Playing lipgloss.Style // currently playing track
	Cursor  lipgloss.Style
	Panel   lipgloss.Style // rounded border around the mini player and art
	TabOn   lipgloss.Style
	TabOff  lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var darkTheme = Theme{
	Name:      "dark",
	Primary:   lipgloss.Color("#10B981"),
	Secondary: lipgloss.Color("#6EE7B7"),
	FgBase:    lipgloss.Color("#F5F5F5"),
	FgMuted:   lipgloss.Color("#A3A3A3"),
	FgSubtle:  lipgloss.Color("#5C5C5C"),
	BgBase:    lipgloss.Color("#121212"),
	BgCursor:  lipgloss.Color("#262626"),
	Border:    lipgloss.Color("#3F3F46"),
	Error:     lipgloss.Color("#EF4444"),
	Warning:   lipgloss.Color("#F59E0B"),
}

var lightTheme = Theme{
	Name:      "light",
	Primary:   lipgloss.Color("#047857"),
	Secondary: lipgloss.Color("#10B981"),
	FgBase:    lipgloss.Color("#171717"),
	FgMuted:   lipgloss.Color("#525252"),
	FgSubtle:  lipgloss.Color("#A3A3A3"),
	BgBase:    lipgloss.Color("#FAFAFA"),
	BgCursor:  lipgloss.Color("#E5E5E5"),
	Border:    lipgloss.Color("#D4D4D4"),
	Error:     lipgloss.Color("#B91C1C"),
	Warning:   lipgloss.Color("#B45309"),
}

// current is only touched from the UI goroutine.
var current = &darkTheme

// T returns the active theme.
func T() *Theme {
	return current
}

// SetDark switches between the dark and light themes.
func SetDark(on bool) {
	if on {
		current = &darkTheme
	} else {
		current = &lightTheme
	}
}

// IsDark reports whether the dark theme is active.
func IsDark() bool {
	return current == &darkTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Header:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Playing: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		TabOn: lipgloss.NewStyle().
			Foreground(t.BgBase).
			Background(t.Primary).
			Bold(true).
			Padding(0, 1),
		TabOff: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Padding(0, 1),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
