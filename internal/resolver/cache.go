package resolver

import (
	"time"

	"github.com/puzpuzpuz/xsync/v4"
)

// DefaultTTL is how long a resolved lookup stays cached.
const DefaultTTL = 30 * time.Minute

// cacheKey identifies one lookup.
type cacheKey struct {
	path    string
	variant string
}

type cacheEntry struct {
	result  *StyleResult
	expires time.Time
}

// Cache memoizes resolved lookups with an absolute expiry. It is safe for
// concurrent use. Two goroutines missing on the same key may both compute;
// the later store wins, which is harmless because resolution is pure.
type Cache struct {
	entries *xsync.Map[cacheKey, cacheEntry]
	ttl     time.Duration
	now     func() time.Time
}

// NewCache creates a cache whose entries live for ttl. A non-positive ttl
// selects DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: xsync.NewMap[cacheKey, cacheEntry](),
		ttl:     ttl,
		now:     time.Now,
	}
}

// TTL returns the entry lifetime.
func (c *Cache) TTL() time.Duration { return c.ttl }

func (c *Cache) get(key cacheKey) (*StyleResult, bool) {
	e, ok := c.entries.Load(key)
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expires) {
		c.entries.Delete(key)
		return nil, false
	}
	return e.result, true
}

func (c *Cache) put(key cacheKey, r *StyleResult) {
	c.entries.Store(key, cacheEntry{result: r, expires: c.now().Add(c.ttl)})
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int { return c.entries.Size() }

// Clear drops every entry.
func (c *Cache) Clear() { c.entries.Clear() }
