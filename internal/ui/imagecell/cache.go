package imagecell

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const cacheMaxAge = 30 * 24 * time.Hour

// Cache keeps resized PNGs on disk so returning to a page does not decode
// and resample the source again. A nil *Cache is valid and caches nothing.
type Cache struct {
	dir string
}

// NewCache creates the cache under dir, or $XDG_CACHE_HOME/reels/images
// when dir is empty, and prunes stale entries in the background.
func NewCache(dir string) (*Cache, error) {
	if dir == "" {
		dir = filepath.Join(xdg.CacheHome, "reels", "images")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image cache: %w", err)
	}
	c := &Cache{dir: dir}
	go c.prune(time.Now().Add(-cacheMaxAge))
	return c, nil
}

func cacheKey(source string, width, height int, modTime time.Time) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%d:%d:%d", source, width, height, modTime.UnixNano()))
	return hex.EncodeToString(sum[:])
}

func (c *Cache) path(source string, width, height int, modTime time.Time) string {
	return filepath.Join(c.dir, cacheKey(source, width, height, modTime)+".png")
}

// Get returns cached PNG data, or nil.
func (c *Cache) Get(source string, width, height int, modTime time.Time) []byte {
	if c == nil {
		return nil
	}
	p := c.path(source, width, height, modTime)
	data, err := os.ReadFile(p)
	if err != nil {
		return nil
	}
	now := time.Now()
	_ = os.Chtimes(p, now, now)
	return data
}

// Put stores PNG data.
func (c *Cache) Put(source string, width, height int, modTime time.Time, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(c.path(source, width, height, modTime), data, 0o600)
}

func (c *Cache) prune(cutoff time.Time) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name()))
		}
	}
}
