package cache

import (
	"sort"
	"sync"

	"github.com/goliatone/go-gconfig/pkg/value"
)

// ChangeFunc is notified when an entry is overwritten with a different value.
type ChangeFunc func(previous, next Entry)

// Entry records the last value resolved for a key.
type Entry struct {
	Type     value.Type
	Key      string
	Value    string
	OnChange ChangeFunc
}

// Cache maps keys to the last entry written for them. Entries are never
// evicted; the cache lives as long as its owner.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New builds an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

// Set inserts or overwrites the entry stored under entry.Key. When an existing
// entry with a different value is replaced, the incoming entry's OnChange hook
// runs after the write is visible.
func (c *Cache) Set(entry Entry) {
	c.mu.Lock()
	if c.entries == nil {
		c.entries = make(map[string]Entry)
	}
	previous, existed := c.entries[entry.Key]
	c.entries[entry.Key] = entry
	c.mu.Unlock()

	if existed && previous.Value != entry.Value && entry.OnChange != nil {
		entry.OnChange(previous, entry)
	}
}

// Get returns the entry stored under key, if any.
func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

// Len reports the number of cached keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Keys returns the cached keys in lexical order.
func (c *Cache) Keys() []string {
	c.mu.RLock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	c.mu.RUnlock()
	sort.Strings(keys)
	return keys
}
