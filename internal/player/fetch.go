package player

import (
	"context"
	"crypto/sha1" //nolint:gosec // cache key, not a security boundary
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Fetcher turns an audio reference into a local file path.
// Remote references are downloaded once into the cache directory.
type Fetcher struct {
	CacheDir string
	Client   *http.Client
}

// NewFetcher creates a fetcher caching downloads under dir.
func NewFetcher(dir string) *Fetcher {
	return &Fetcher{
		CacheDir: dir,
		Client:   &http.Client{Timeout: 2 * time.Minute},
	}
}

// IsRemote reports whether ref is an http(s) URL.
func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Resolve returns a readable local path for ref.
func (f *Fetcher) Resolve(ctx context.Context, ref string) (string, error) {
	if after, ok := strings.CutPrefix(ref, "file://"); ok {
		return after, nil
	}
	if !IsRemote(ref) {
		return ref, nil
	}

	dest, err := f.cachePath(ref)
	if err != nil {
		return "", err
	}
	if fi, err := os.Stat(dest); err == nil && fi.Size() > 0 {
		return dest, nil
	}
	if err := f.download(ctx, ref, dest); err != nil {
		return "", fmt.Errorf("download %s: %w", ref, err)
	}
	return dest, nil
}

func (f *Fetcher) cachePath(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		ext = extMP3
	}
	sum := sha1.Sum([]byte(ref)) //nolint:gosec // cache key only
	return filepath.Join(f.CacheDir, hex.EncodeToString(sum[:])+ext), nil
}

func (f *Fetcher) download(ctx context.Context, ref, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := os.MkdirAll(f.CacheDir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.CacheDir, ".part-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dest)
}
