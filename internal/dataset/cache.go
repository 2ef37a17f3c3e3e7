package dataset

import (
	"log"
	"os"
	"sync"
	"time"
)

// Cache memoizes the loaded table keyed by file path + modification
// time. Gin serves requests concurrently, so access is guarded by a
// RWMutex; the returned slice is treated as immutable by all callers.
type Cache struct {
	path string

	mu      sync.RWMutex
	rows    []PriceObservation
	modTime time.Time
	size    int64
	loaded  bool
}

func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Path returns the source file location.
func (c *Cache) Path() string { return c.path }

// Snapshot returns the current table, reloading from disk when the
// source file changed since the last load. Callers must not mutate
// the returned slice.
func (c *Cache) Snapshot() ([]PriceObservation, error) {
	info, err := os.Stat(c.path)
	if err != nil {
		return nil, &LoadError{Path: c.path, Err: err}
	}

	c.mu.RLock()
	if c.loaded && info.ModTime().Equal(c.modTime) && info.Size() == c.size {
		rows := c.rows
		c.mu.RUnlock()
		return rows, nil
	}
	c.mu.RUnlock()

	return c.reload(info.ModTime(), info.Size())
}

// Invalidate discards the cached table; the next Snapshot reloads.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.rows = nil
	c.loaded = false
	c.mu.Unlock()
}

func (c *Cache) reload(modTime time.Time, size int64) ([]PriceObservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have reloaded while we waited for the lock.
	if c.loaded && modTime.Equal(c.modTime) && size == c.size {
		return c.rows, nil
	}

	rows, err := Load(c.path)
	if err != nil {
		return nil, err
	}

	c.rows = rows
	c.modTime = modTime
	c.size = size
	c.loaded = true

	log.Printf("[DATASET] loaded %s: %d observations", c.path, len(rows))
	return rows, nil
}
