package roster

import (
	"context"
	"sync"
	"time"
)

// CachedSource wraps a Source with a bounded-lifetime cache so that a
// page render does not hit the external spreadsheet on every request.
type CachedSource struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
}

type cacheKey struct {
	month int
	year  int
}

type cacheEntry struct {
	planned   []PlannedShift
	fetchedAt time.Time
}

func NewCachedSource(source Source, ttl time.Duration) *CachedSource {
	return &CachedSource{
		source:  source,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[cacheKey]cacheEntry),
	}
}

func (c *CachedSource) Fetch(ctx context.Context, month, year int) ([]PlannedShift, error) {
	key := cacheKey{month: month, year: year}

	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()

	if ok && c.now().Sub(entry.fetchedAt) < c.ttl {
		return entry.planned, nil
	}

	planned, err := c.source.Fetch(ctx, month, year)
	if err != nil {
		// Serve a stale entry over failing the whole page.
		if ok {
			return entry.planned, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{planned: planned, fetchedAt: c.now()}
	c.mu.Unlock()

	return planned, nil
}
