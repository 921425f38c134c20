package texture

import "sync"

// Cache decodes each texture path at most once per run. The bake pipeline
// is single-threaded today; the lock keeps the cache safe if baking ever
// fans out across goroutines.
type Cache struct {
	mu      sync.RWMutex
	grids   map[string]*Grid
	maxSize int
}

// NewCache creates an empty cache. maxSize is forwarded to Load.
func NewCache(maxSize int) *Cache {
	return &Cache{
		grids:   make(map[string]*Grid),
		maxSize: maxSize,
	}
}

// Get returns the grid for path, loading and caching it on first use.
func (c *Cache) Get(path string) (*Grid, error) {
	c.mu.RLock()
	if g, ok := c.grids[path]; ok {
		c.mu.RUnlock()
		return g, nil
	}
	c.mu.RUnlock()

	g, err := Load(path, c.maxSize)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if cached, ok := c.grids[path]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.grids[path] = g
	c.mu.Unlock()

	return g, nil
}
