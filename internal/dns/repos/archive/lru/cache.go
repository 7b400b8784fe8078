package lru

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haukened/rr-zone/internal/dns/domain"
	"github.com/haukened/rr-zone/internal/dns/repos/archive"
)

// zoneCache is an LRU-backed implementation of archive.ZoneCache.
// It tracks basic metrics: hits, misses, and evictions.
type zoneCache struct {
	lru       *lru.Cache[string, []domain.TypedRecord]
	hits      uint64
	misses    uint64
	evictions uint64
}

// disabledCache is a no-op ZoneCache used when size <= 0.
type disabledCache struct{}

// New creates a new ZoneCache holding up to size decoded zones. If size <= 0, a
// disabled no-op cache is returned that always misses and tracks no metrics.
func New(size int) (archive.ZoneCache, error) {
	if size <= 0 {
		return &disabledCache{}, nil
	}

	var zc zoneCache
	// Use NewWithEvict to observe evictions, including Purge-induced ones.
	cache, err := lru.NewWithEvict(size, func(_ string, _ []domain.TypedRecord) {
		atomic.AddUint64(&zc.evictions, 1)
	})
	if err != nil {
		return nil, err
	}
	zc.lru = cache
	return &zc, nil
}

// Get looks up a zone by origin. When found, increments hits; otherwise increments misses.
func (c *zoneCache) Get(origin string) ([]domain.TypedRecord, bool) {
	if val, ok := c.lru.Get(origin); ok {
		atomic.AddUint64(&c.hits, 1)
		return val, true
	}
	atomic.AddUint64(&c.misses, 1)
	return nil, false
}

func (c *zoneCache) Put(origin string, records []domain.TypedRecord) {
	c.lru.Add(origin, records)
}

// Remove drops one zone. It counts as an eviction.
func (c *zoneCache) Remove(origin string) { c.lru.Remove(origin) }

func (c *zoneCache) Len() int { return c.lru.Len() }

// Purge clears all entries. Evictions are counted via the eviction callback.
func (c *zoneCache) Purge() { c.lru.Purge() }

// Stats returns cumulative hit/miss/eviction counters.
func (c *zoneCache) Stats() (hits, misses, evictions uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses), atomic.LoadUint64(&c.evictions)
}

// disabledCache implementation

func (d *disabledCache) Get(string) ([]domain.TypedRecord, bool) { return nil, false }

func (d *disabledCache) Put(string, []domain.TypedRecord) {}

func (d *disabledCache) Remove(string) {}

func (d *disabledCache) Len() int { return 0 }

func (d *disabledCache) Purge() {}

func (d *disabledCache) Stats() (uint64, uint64, uint64) { return 0, 0, 0 }

var _ archive.ZoneCache = (*zoneCache)(nil)
var _ archive.ZoneCache = (*disabledCache)(nil)
