package medialib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/llehouerou/cadence/internal/player"
)

const numWorkers = 8

// ErrInvalidCursor is returned when a page cursor does not belong to the
// current listing (a new first page was requested in between).
var ErrInvalidCursor = errors.New("medialib: invalid cursor")

// Metadata is what a probe learns about one file.
type Metadata struct {
	Title    string
	Artist   string
	Duration time.Duration
}

// ProbeFunc reads metadata from an audio file.
type ProbeFunc func(path string) (Metadata, error)

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger used for skipped files and watcher errors.
func WithLogger(log *zap.Logger) Option {
	return func(l *Library) { l.log = log }
}

// WithProbe replaces the metadata probe. Tests use it to avoid decoding.
func WithProbe(p ProbeFunc) Option {
	return func(l *Library) { l.probe = p }
}

// Library lists audio files under a set of root folders.
type Library struct {
	roots []string
	log   *zap.Logger
	probe ProbeFunc

	mu         sync.Mutex
	snapshot   []fileEntry
	generation int
}

type fileEntry struct {
	path    string
	modTime time.Time
	size    int64
}

// New creates a library over the given root folders.
func New(roots []string, opts ...Option) *Library {
	l := &Library{
		roots: roots,
		log:   zap.NewNop(),
		probe: Probe,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Roots returns the configured root folders.
func (l *Library) Roots() []string {
	return l.roots
}

// RequestPermission checks that every existing root can be listed.
// Roots that do not exist are ignored; a root that cannot be read for
// permission reasons denies access to the whole library.
func (l *Library) RequestPermission(ctx context.Context) (Permission, error) {
	for _, root := range l.roots {
		if err := ctx.Err(); err != nil {
			return PermissionUndetermined, err
		}
		denied, err := checkReadable(root)
		if err != nil {
			return PermissionUndetermined, fmt.Errorf("check %s: %w", root, err)
		}
		if denied {
			l.log.Warn("media library permission denied", zap.String("root", root))
			return PermissionDenied, nil
		}
	}
	return PermissionGranted, nil
}

func checkReadable(root string) (denied bool, err error) {
	fi, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if errors.Is(err, fs.ErrPermission) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if !fi.IsDir() {
		return false, nil
	}

	f, err := os.Open(root)
	if errors.Is(err, fs.ErrPermission) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := f.ReadDir(1); err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, fs.ErrPermission) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// Assets returns one page of the listing, newest first.
// A query without cursor rescans the roots and starts a new listing.
func (l *Library) Assets(ctx context.Context, q Query) (Page, error) {
	first := q.First
	if first <= 0 {
		first = DefaultPageSize
	}

	l.mu.Lock()
	if q.After == "" {
		entries, err := l.discover(ctx)
		if err != nil {
			l.mu.Unlock()
			return Page{}, err
		}
		l.snapshot = entries
		l.generation++
	}
	offset, err := l.parseCursor(q.After)
	if err != nil {
		l.mu.Unlock()
		return Page{}, err
	}
	end := min(offset+first, len(l.snapshot))
	slice := l.snapshot[offset:end]
	total := len(l.snapshot)
	gen := l.generation
	l.mu.Unlock()

	assets, err := l.describe(ctx, slice)
	if err != nil {
		return Page{}, err
	}
	return Page{
		Assets:      assets,
		EndCursor:   strconv.Itoa(gen) + ":" + strconv.Itoa(end),
		HasNextPage: end < total,
	}, nil
}

// parseCursor must be called with l.mu held.
func (l *Library) parseCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	genStr, offStr, ok := strings.Cut(cursor, ":")
	if !ok {
		return 0, ErrInvalidCursor
	}
	gen, err := strconv.Atoi(genStr)
	if err != nil || gen != l.generation {
		return 0, ErrInvalidCursor
	}
	off, err := strconv.Atoi(offStr)
	if err != nil || off < 0 || off > len(l.snapshot) {
		return 0, ErrInvalidCursor
	}
	return off, nil
}

// discover walks all roots and returns music files sorted by mod time.
func (l *Library) discover(ctx context.Context) ([]fileEntry, error) {
	var entries []fileEntry
	for _, root := range l.roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Unreadable entries are skipped so one bad folder does not hide the rest.
			if walkErr != nil {
				l.log.Debug("skip unreadable path", zap.String("path", path), zap.Error(walkErr))
				return nil
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !player.IsMusicFile(path) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil //nolint:nilerr // skip files we cannot stat
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			entries = append(entries, fileEntry{
				path:    abs,
				modTime: info.ModTime(),
				size:    info.Size(),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].modTime.Equal(entries[j].modTime) {
			return entries[i].modTime.After(entries[j].modTime)
		}
		return entries[i].path < entries[j].path
	})
	return entries, nil
}

// describe probes entries in parallel and returns assets in input order.
func (l *Library) describe(ctx context.Context, entries []fileEntry) ([]Asset, error) {
	assets := make([]Asset, len(entries))
	work := make(chan int)

	var wg sync.WaitGroup
	for range min(numWorkers, max(len(entries), 1)) {
		wg.Go(func() {
			for i := range work {
				assets[i] = l.describeOne(entries[i])
			}
		})
	}

	var err error
feed:
	for i := range entries {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case work <- i:
		}
	}
	close(work)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (l *Library) describeOne(e fileEntry) Asset {
	a := Asset{
		ID:       AssetID(e.path),
		Filename: filepath.Base(e.path),
		URI:      e.path,
		ModTime:  e.modTime,
		Size:     e.size,
	}
	meta, err := l.probe(e.path)
	if err != nil {
		l.log.Debug("probe failed", zap.String("path", e.path), zap.Error(err))
		return a
	}
	a.Title = meta.Title
	a.Artist = meta.Artist
	a.Duration = meta.Duration
	return a
}

// AssetID returns the stable identifier for a file path.
func AssetID(path string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+path)).String()
}
