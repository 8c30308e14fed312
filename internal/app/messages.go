package app

import (
	"time"

	"github.com/llehouerou/cadence/internal/catalog"
)

// TickMsg drives the status poll and the playing indicator.
type TickMsg time.Time

// CatalogLoadedMsg carries the result of a library scan.
type CatalogLoadedMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

// WatchStartedMsg is sent once the folder watcher is running.
type WatchStartedMsg struct {
	Changes <-chan struct{}
	Err     error
}

// LibraryChangedMsg is sent when the library folders changed on disk.
type LibraryChangedMsg struct{}

// watchClosedMsg ends the watch loop.
type watchClosedMsg struct{}
