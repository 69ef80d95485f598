package template

import (
	"sync"
	"time"

	"github.com/mailgun/raymond/v2"
)

// cacheEntry holds a compiled template function together with the source
// modification time used for invalidation.
type cacheEntry struct {
	tpl     *raymond.Template
	modTime time.Time
}

// Cache memoizes compiled template functions by template id. In
// development mode the engine compares on-disk mtimes against the cached
// entry and recompiles on mismatch; otherwise entries live until Clear or
// an explicit Invalidate from the file watcher.
type Cache struct {
	entries map[string]cacheEntry
	mutex   sync.RWMutex
}

// NewCache creates an empty compilation cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Get returns the cached compiled template for id, if present.
func (c *Cache) Get(id string) (*raymond.Template, time.Time, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, ok := c.entries[id]
	if !ok {
		return nil, time.Time{}, false
	}
	return entry.tpl, entry.modTime, true
}

// Put stores a compiled template under id.
func (c *Cache) Put(id string, tpl *raymond.Template, modTime time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries[id] = cacheEntry{tpl: tpl, modTime: modTime}
}

// Invalidate drops the entry for id. Recompilation is idempotent, so a
// racing watcher event at worst causes one extra compile.
func (c *Cache) Invalidate(id string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.entries, id)
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}
