package repository

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/0xalexb/komposera/defaults"
)

// Caching wraps a defaults.Repository with a per-path cache. Hits hand
// out fresh clones so the engine's in-place mutation never reaches the
// cached copy, and concurrent misses for one path collapse into a single
// underlying load. Not-found results are cached too; a composition asks
// for the same missing path only once.
type Caching struct {
	inner defaults.Repository
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	loaded *defaults.Loaded
	err    error
}

// NewCaching wraps inner with caching. The cache keys on the config path
// alone; the primary flag only affects logging in the wrapped
// repository.
func NewCaching(inner defaults.Repository) *Caching {
	return &Caching{
		inner:   inner,
		entries: make(map[string]*cacheEntry),
	}
}

// LoadConfig implements defaults.Repository.
func (c *Caching) LoadConfig(path string, primary bool) (*defaults.Loaded, error) {
	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()

	if !ok {
		v, _, _ := c.group.Do(path, func() (any, error) {
			loaded, err := c.inner.LoadConfig(path, primary)
			e := &cacheEntry{loaded: loaded, err: err}
			c.mu.Lock()
			c.entries[path] = e
			c.mu.Unlock()
			return e, nil
		})
		entry = v.(*cacheEntry)
	}

	if entry.err != nil {
		return nil, entry.err
	}
	return entry.loaded.Clone(), nil
}

// Sources implements defaults.Repository.
func (c *Caching) Sources() []defaults.SourceInfo {
	return c.inner.Sources()
}
