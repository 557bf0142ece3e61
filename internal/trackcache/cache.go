// Package trackcache keeps recently decoded tracks so reloading the same file
// skips the decode. It is an explicit component handed to whoever loads
// tracks; nothing in the player reaches for it implicitly.
package trackcache

import (
	"context"
	"crypto/sha256"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/llehouerou/vivid/internal/track"
)

// DefaultSize is the number of decoded tracks kept when no size is given.
const DefaultSize = 8

// Key identifies file contents.
type Key [sha256.Size]byte

// KeyOf hashes data.
func KeyOf(data []byte) Key { return sha256.Sum256(data) }

// Loader is the subset of track.Loader used by Cache.
type Loader interface {
	Load(ctx context.Context, name string, data []byte) *track.Track
}

// Cache is an LRU of Ready tracks keyed by content hash.
// Only Ready tracks are stored; failed decodes are never cached.
type Cache struct {
	loader Loader
	tracks *lru.Cache[Key, *track.Track]
	logger *slog.Logger
}

// New creates a cache holding up to size tracks.
func New(loader Loader, size int, logger *slog.Logger) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cache{loader: loader, logger: logger}
	tracks, err := lru.NewWithEvict(size, func(_ Key, t *track.Track) {
		c.logger.Debug("evicting decoded track", "track", t.Name())
	})
	if err != nil {
		return nil, err
	}
	c.tracks = tracks
	return c, nil
}

// Load returns the cached track for data when present, otherwise starts a
// decode through the underlying loader and caches the track once Ready.
func (c *Cache) Load(ctx context.Context, name string, data []byte) *track.Track {
	key := KeyOf(data)
	if t, ok := c.tracks.Get(key); ok {
		c.logger.Debug("decoded track cache hit", "track", name)
		return t
	}

	t := c.loader.Load(ctx, name, data)
	t.Await(func(ready *track.Track) {
		c.tracks.Add(key, ready)
	}, func(error) {})
	return t
}

// Len returns the number of cached tracks.
func (c *Cache) Len() int { return c.tracks.Len() }

// Purge drops every cached track.
func (c *Cache) Purge() { c.tracks.Purge() }
