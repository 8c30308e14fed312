package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/llehouerou/cadence/internal/medialib"
)

var (
	// ErrPermissionDenied means the media library refused access.
	ErrPermissionDenied = errors.New("media library permission denied")
	// ErrEmptyCatalog means the scan succeeded but found nothing playable.
	ErrEmptyCatalog = errors.New("no playable tracks found")
	// ErrScanFailed wraps any other scan failure.
	ErrScanFailed = errors.New("media library scan failed")
)

// User-visible messages for scan outcomes.
const (
	MsgPermissionDenied = "Permission to access media files was denied. Enable it in settings."
	MsgEmpty            = "No audio files were found on this device. Add music and press r to refresh."
	MsgScanFailed       = "Something went wrong while scanning for audio files."
)

// Source is the device media library a catalog is scanned from.
type Source interface {
	RequestPermission(ctx context.Context) (medialib.Permission, error)
	Assets(ctx context.Context, q medialib.Query) (medialib.Page, error)
}

// Scan builds a catalog from every page of src, keeping only entries with
// a positive duration and a resolvable reference.
//
// The returned catalog is never nil. On ErrEmptyCatalog it is empty; on
// ErrPermissionDenied and ErrScanFailed it is empty as well.
func Scan(ctx context.Context, src Source, pageSize int) (*Catalog, error) {
	perm, err := src.RequestPermission(ctx)
	if err != nil {
		return New(nil), fmt.Errorf("%w: %w", ErrScanFailed, err)
	}
	if perm != medialib.PermissionGranted {
		return New(nil), ErrPermissionDenied
	}

	var assets []medialib.Asset
	q := medialib.Query{First: pageSize}
	for {
		page, err := src.Assets(ctx, q)
		if err != nil {
			return New(nil), fmt.Errorf("%w: %w", ErrScanFailed, err)
		}
		assets = append(assets, page.Assets...)
		if !page.HasNextPage {
			break
		}
		q.After = page.EndCursor
	}

	playable := lo.Filter(assets, func(a medialib.Asset, _ int) bool {
		return a.Duration > 0 && a.URI != ""
	})
	tracks := lo.Map(playable, func(a medialib.Asset, i int) Track {
		return FromAsset(a, i)
	})

	c := New(tracks)
	if c.IsEmpty() {
		return c, ErrEmptyCatalog
	}
	return c, nil
}

// FromAsset maps a library asset to a track. index is the asset position
// in the filtered listing and only names untitled files.
func FromAsset(a medialib.Asset, index int) Track {
	title := strings.TrimSpace(a.Title)
	if title == "" {
		title = strings.TrimSuffix(a.Filename, filepath.Ext(a.Filename))
	}
	if title == "" {
		title = fmt.Sprintf("Track %d", index+1)
	}
	artist := strings.TrimSpace(a.Artist)
	if artist == "" {
		artist = UnknownArtist
	}
	return Track{
		ID:       a.ID,
		Title:    title,
		Artist:   artist,
		Duration: a.Duration.Round(time.Second),
		AudioRef: a.URI,
		Size:     a.Size,
	}
}

// Message returns the library screen text for a scan error, or "" for nil.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPermissionDenied):
		return MsgPermissionDenied
	case errors.Is(err, ErrEmptyCatalog):
		return MsgEmpty
	default:
		return MsgScanFailed
	}
}
