// Package medialib exposes music folders on disk the way a device media
// library does: a permission check and a paginated listing of audio assets.
package medialib

import "time"

// DefaultPageSize is the number of assets returned per page when a query
// does not say otherwise.
const DefaultPageSize = 200

// Permission is the outcome of a permission request.
type Permission int

const (
	PermissionUndetermined Permission = iota
	PermissionGranted
	PermissionDenied
)

// String returns the permission name.
func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "undetermined"
	}
}

// Asset is one audio file found by a scan.
type Asset struct {
	ID       string
	Filename string
	Title    string // from embedded tags, may be empty
	Artist   string // from embedded tags, may be empty
	Duration time.Duration
	URI      string
	ModTime  time.Time
	Size     int64
}

// Query selects one page of assets.
type Query struct {
	First int    // page size, DefaultPageSize when <= 0
	After string // cursor returned by the previous page, empty for the first
}

// Page is one slice of the asset listing.
type Page struct {
	Assets      []Asset
	EndCursor   string
	HasNextPage bool
}
