package medialib

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce groups bursts of file events (a copy of an album) into
// a single change notification.
const DefaultDebounce = 2 * time.Second

// Watch reports changes under the library roots. Each value on the returned
// channel means "something changed since the last notification"; the channel
// closes when ctx is done.
func (l *Library) Watch(ctx context.Context, debounce time.Duration) (<-chan struct{}, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, root := range l.roots {
		l.addTree(w, root)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer w.Close()

		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Create) {
					l.addTree(w, ev.Name)
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.log.Warn("library watcher error", zap.Error(err))
			case <-fire:
				fire = nil
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}

// addTree watches dir and every non-hidden directory below it.
// fsnotify does not recurse on its own.
func (l *Library) addTree(w *fsnotify.Watcher, dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil //nolint:nilerr // unreadable dirs are simply not watched
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			l.log.Debug("watch dir", zap.String("path", path), zap.Error(err))
		}
		return nil
	})
}
