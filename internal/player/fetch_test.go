package player

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRemote(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"https://example.com/a.mp3", true},
		{"http://example.com/a.mp3", true},
		{"/music/a.mp3", false},
		{"file:///music/a.mp3", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsRemote(tt.ref); got != tt.want {
			t.Errorf("IsRemote(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestResolve_LocalRefs(t *testing.T) {
	f := NewFetcher(t.TempDir())

	got, err := f.Resolve(context.Background(), "/music/a.mp3")
	require.NoError(t, err)
	assert.Equal(t, "/music/a.mp3", got)

	got, err = f.Resolve(context.Background(), "file:///music/b.flac")
	require.NoError(t, err)
	assert.Equal(t, "/music/b.flac", got)
}

func TestResolve_DownloadsOnce(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("audio-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := NewFetcher(dir)
	ref := srv.URL + "/songs/track.ogg"

	path, err := f.Resolve(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".ogg", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))

	again, err := f.Resolve(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, path, again)
	assert.Equal(t, int32(1), hits.Load())

	// No partial files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".part-"), e.Name())
	}
}

func TestResolve_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	dir := t.TempDir()
	_, err := NewFetcher(dir).Resolve(context.Background(), srv.URL+"/missing.mp3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestCachePath_DefaultsToMP3(t *testing.T) {
	f := NewFetcher("/cache")

	p, err := f.cachePath("https://example.com/stream?id=1")
	require.NoError(t, err)
	assert.Equal(t, ".mp3", filepath.Ext(p))

	other, err := f.cachePath("https://example.com/stream?id=2")
	require.NoError(t, err)
	assert.NotEqual(t, p, other)
}
