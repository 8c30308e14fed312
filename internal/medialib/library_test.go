package medialib

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeProbe(path string) (Metadata, error) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, "broken") {
		return Metadata{}, errors.New("cannot decode")
	}
	return Metadata{
		Title:    strings.ToUpper(strings.TrimSuffix(name, filepath.Ext(name))),
		Artist:   "Tester",
		Duration: 90 * time.Second,
	}, nil
}

// writeFiles creates files under dir with increasing modification times in
// the order given.
func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		mt := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mt, mt))
	}
}

func listAll(t *testing.T, lib *Library, pageSize int) ([]Asset, int) {
	t.Helper()
	var (
		all   []Asset
		pages int
		q     = Query{First: pageSize}
	)
	for {
		page, err := lib.Assets(context.Background(), q)
		require.NoError(t, err)
		pages++
		all = append(all, page.Assets...)
		if !page.HasNextPage {
			return all, pages
		}
		q.After = page.EndCursor
	}
}

func TestAssets_OrderedByModTime(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "c.mp3", "a/b.flac", "a.ogg", "notes.txt", "d.wav")
	lib := New([]string{dir}, WithProbe(fakeProbe))

	assets, pages := listAll(t, lib, DefaultPageSize)

	assert.Equal(t, 1, pages)
	names := make([]string, len(assets))
	for i, a := range assets {
		names[i] = a.Filename
	}
	assert.Equal(t, []string{"d.wav", "a.ogg", "b.flac", "c.mp3"}, names)
	assert.Equal(t, "D", assets[0].Title)
	assert.Equal(t, "Tester", assets[0].Artist)
	assert.Equal(t, 90*time.Second, assets[0].Duration)
	assert.True(t, filepath.IsAbs(assets[0].URI))
	assert.Equal(t, int64(1), assets[0].Size)
}

func TestAssets_SameModTimeOrderedByPath(t *testing.T) {
	dir := t.TempDir()
	mt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, name := range []string{"b.mp3", "a.mp3"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		require.NoError(t, os.Chtimes(path, mt, mt))
	}
	lib := New([]string{dir}, WithProbe(fakeProbe))

	assets, _ := listAll(t, lib, DefaultPageSize)

	require.Len(t, assets, 2)
	assert.Equal(t, "a.mp3", assets[0].Filename)
}

func TestAssets_Paginates(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "1.mp3", "2.mp3", "3.mp3", "4.mp3", "5.mp3")
	lib := New([]string{dir}, WithProbe(fakeProbe))

	assets, pages := listAll(t, lib, 2)

	assert.Len(t, assets, 5)
	assert.Equal(t, 3, pages)
	assert.Equal(t, "5.mp3", assets[0].Filename)
	assert.Equal(t, "1.mp3", assets[4].Filename)
}

func TestAssets_SkipsHiddenDirs(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "keep.mp3", ".cache/skip.mp3")
	lib := New([]string{dir}, WithProbe(fakeProbe))

	assets, _ := listAll(t, lib, DefaultPageSize)

	require.Len(t, assets, 1)
	assert.Equal(t, "keep.mp3", assets[0].Filename)
}

func TestAssets_ProbeFailureKeepsAssetWithoutDuration(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "fine.mp3", "broken.mp3")
	lib := New([]string{dir}, WithProbe(fakeProbe))

	assets, _ := listAll(t, lib, DefaultPageSize)

	require.Len(t, assets, 2)
	assert.Zero(t, assets[0].Duration)
	assert.Empty(t, assets[0].Title)
	assert.Equal(t, 90*time.Second, assets[1].Duration)
}

func TestAssets_MissingRootIsEmpty(t *testing.T) {
	lib := New([]string{filepath.Join(t.TempDir(), "nope")}, WithProbe(fakeProbe))

	page, err := lib.Assets(context.Background(), Query{})

	require.NoError(t, err)
	assert.Empty(t, page.Assets)
	assert.False(t, page.HasNextPage)
}

func TestAssets_StaleCursorRejected(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "1.mp3", "2.mp3", "3.mp3")
	lib := New([]string{dir}, WithProbe(fakeProbe))
	ctx := context.Background()

	first, err := lib.Assets(ctx, Query{First: 1})
	require.NoError(t, err)
	_, err = lib.Assets(ctx, Query{First: 1})
	require.NoError(t, err)

	_, err = lib.Assets(ctx, Query{First: 1, After: first.EndCursor})
	assert.ErrorIs(t, err, ErrInvalidCursor)

	_, err = lib.Assets(ctx, Query{First: 1, After: "garbage"})
	assert.ErrorIs(t, err, ErrInvalidCursor)
}

func TestAssets_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "1.mp3")
	lib := New([]string{dir}, WithProbe(fakeProbe))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lib.Assets(ctx, Query{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRequestPermission(t *testing.T) {
	dir := t.TempDir()
	lib := New([]string{dir, filepath.Join(dir, "missing")})

	perm, err := lib.RequestPermission(context.Background())

	require.NoError(t, err)
	assert.Equal(t, PermissionGranted, perm)
}

func TestRequestPermission_Unreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0o000))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	perm, err := New([]string{dir}).RequestPermission(context.Background())

	require.NoError(t, err)
	assert.Equal(t, PermissionDenied, perm)
}

func TestAssetID_Stable(t *testing.T) {
	a := AssetID("/music/a.mp3")

	assert.Equal(t, a, AssetID("/music/a.mp3"))
	assert.NotEqual(t, a, AssetID("/music/b.mp3"))
	assert.Len(t, a, 36)
}

func TestPermission_String(t *testing.T) {
	assert.Equal(t, "granted", PermissionGranted.String())
	assert.Equal(t, "denied", PermissionDenied.String())
	assert.Equal(t, "undetermined", PermissionUndetermined.String())
}
