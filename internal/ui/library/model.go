// Package library provides the library screen: a searchable list of the
// catalog with the current track marked.
package library

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/llehouerou/cadence/internal/catalog"
	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/ui"
	"github.com/llehouerou/cadence/internal/ui/cursor"
)

// Rows taken by the header, search box, separator and footer.
const overhead = 4

// Model is the library screen state.
type Model struct {
	ui.Base
	keys *keymap.Resolver

	all       []catalog.Track
	tracks    []catalog.Track // all, filtered by the search query
	totalSize int64

	search    textinput.Model
	searching bool

	cursor cursor.Cursor

	currentID string
	playing   bool
	elapsed   time.Duration // drives the playing indicator

	loading bool
	message string
}

// New creates an empty library screen.
func New(keys *keymap.Resolver) Model {
	ti := textinput.New()
	ti.Placeholder = "Find your music..."
	ti.Prompt = "/ "
	ti.CharLimit = 120

	return Model{
		keys:   keys,
		search: ti,
		cursor: cursor.New(ui.ScrollMargin),
	}
}

// SetCatalog replaces the listed tracks. The search query is kept.
func (m *Model) SetCatalog(cat *catalog.Catalog) {
	m.all = nil
	m.totalSize = 0
	if cat != nil {
		m.all = cat.Tracks()
		m.totalSize = cat.TotalSize()
	}
	m.loading = false
	m.refilter()
	m.cursor.Clamp(len(m.tracks), m.listHeight())
}

// SetLoading shows or hides the loading indicator.
func (m *Model) SetLoading(loading bool) {
	m.loading = loading
}

// IsLoading reports whether a scan is in progress.
func (m Model) IsLoading() bool {
	return m.loading
}

// SetMessage sets the message shown instead of an empty list
// (permission denied, scan failure). An empty string clears it.
func (m *Model) SetMessage(msg string) {
	m.message = msg
}

// Message returns the current empty-state message.
func (m Model) Message() string {
	return m.message
}

// SetNowPlaying marks the current track and whether it is playing.
func (m *Model) SetNowPlaying(id string, playing bool) {
	m.currentID = id
	m.playing = playing
}

// SetElapsed advances the playing indicator animation.
func (m *Model) SetElapsed(d time.Duration) {
	m.elapsed = d
}

// SetSize updates the dimensions and keeps the cursor in view.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.search.Width = max(width-6, 1)
	m.cursor.Clamp(len(m.tracks), m.listHeight())
}

// Capturing reports whether the search box owns the keyboard.
func (m Model) Capturing() bool {
	return m.searching
}

// Query returns the current search query.
func (m Model) Query() string {
	return m.search.Value()
}

// Tracks returns the visible tracks, filtered by the query.
func (m Model) Tracks() []catalog.Track {
	return m.tracks
}

// Selected returns the track under the cursor.
func (m Model) Selected() (catalog.Track, bool) {
	pos := m.cursor.Pos()
	if pos < 0 || pos >= len(m.tracks) {
		return catalog.Track{}, false
	}
	return m.tracks[pos], true
}

// CursorPos returns the cursor row.
func (m Model) CursorPos() int {
	return m.cursor.Pos()
}

func (m *Model) refilter() {
	m.tracks = catalog.Filter(m.all, m.search.Value())
}

func (m Model) listHeight() int {
	return m.ListHeight(overhead)
}
