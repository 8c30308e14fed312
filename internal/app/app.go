// Package app wires the playback controller, the catalog scan and the
// screens into the root bubbletea model.
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/cadence/internal/catalog"
	"github.com/llehouerou/cadence/internal/config"
	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/playback"
	"github.com/llehouerou/cadence/internal/player"
	"github.com/llehouerou/cadence/internal/ui/library"
	"github.com/llehouerou/cadence/internal/ui/nowplaying"
	"github.com/llehouerou/cadence/internal/ui/settings"
)

// Screen identifies one of the top-level screens.
type Screen string

const (
	ScreenLibrary    Screen = "library"
	ScreenNowPlaying Screen = "nowplaying"
	ScreenSettings   Screen = "settings"
)

var screenOrder = []Screen{ScreenLibrary, ScreenNowPlaying, ScreenSettings}

// Watcher reports changes to the library folders.
type Watcher interface {
	Watch(ctx context.Context, debounce time.Duration) (<-chan struct{}, error)
}

// Deps are the collaborators of the root model.
type Deps struct {
	Context context.Context // canceled on shutdown; defaults to Background
	Config  *config.Config
	Engine  player.Interface
	Source  catalog.Source // nil plays the demo catalog
	Watcher Watcher        // nil disables folder watching
	Log     *zap.Logger
}

// Model is the root application model.
type Model struct {
	ctx     context.Context
	cfg     *config.Config
	log     *zap.Logger
	keys    *keymap.Resolver
	engine  player.Interface
	source  catalog.Source
	watcher Watcher

	Playback *playback.Controller

	Library    library.Model
	NowPlaying nowplaying.Model
	Settings   settings.Model

	Screen   Screen
	ShowHelp bool
	Status   string // one-line error shown above the bottom edge
	notice   string // status kept until restart, superseded by load errors
	Scanning bool

	changes <-chan struct{}
	started time.Time
	elapsed time.Duration
	Width   int
	Height  int
}

// New creates the root model. Nothing runs until Init.
func New(d Deps) Model {
	if d.Context == nil {
		d.Context = context.Background()
	}
	if d.Config == nil {
		d.Config = config.Default()
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	keys := keymap.Default()

	m := Model{
		ctx:        d.Context,
		cfg:        d.Config,
		log:        d.Log,
		keys:       keys,
		engine:     d.Engine,
		source:     d.Source,
		watcher:    d.Watcher,
		Playback:   playback.New(d.Engine, d.Log.Named("playback")),
		Library:    library.New(keys),
		NowPlaying: nowplaying.New(keys),
		Settings:   settings.New(keys),
		Screen:     ScreenLibrary,
		Scanning:   true,
		started:    time.Now(),
	}
	m.Library.SetLoading(true)
	m.focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.scanCmd(), m.tickCmd()}
	if m.watcher != nil && m.cfg.Library.Watch && !m.cfg.UseDemo() {
		cmds = append(cmds, m.startWatchCmd())
	}
	return tea.Batch(cmds...)
}

// focus marks the active screen as focused and the others as not.
func (m *Model) focus() {
	m.Library.SetFocused(m.Screen == ScreenLibrary)
	m.NowPlaying.SetFocused(m.Screen == ScreenNowPlaying)
	m.Settings.SetFocused(m.Screen == ScreenSettings)
}

// switchTo makes s the active screen.
func (m *Model) switchTo(s Screen) {
	m.Screen = s
	m.focus()
	m.resize()
}

func (m *Model) nextScreen() {
	for i, s := range screenOrder {
		if s == m.Screen {
			m.switchTo(screenOrder[(i+1)%len(screenOrder)])
			return
		}
	}
	m.switchTo(ScreenLibrary)
}
