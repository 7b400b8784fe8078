package archive

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/haukened/rr-zone/internal/dns/common/clock"
	"github.com/haukened/rr-zone/internal/dns/common/log"
	"github.com/haukened/rr-zone/internal/dns/common/utils"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// ErrEmptyOrigin is returned when a zone is stored without an origin.
var ErrEmptyOrigin = errors.New("zone origin is empty")

// repository implements the Repository interface by composing a Store,
// a Bloom filter (via factory), and a ZoneCache. It applies a cache → store
// pipeline on zone reads and a bloom → store pipeline on name lookups.
// gen is bumped under mu by every write; a read only fills the cache when
// gen has not moved since its cache check.
type repository struct {
	mu      sync.RWMutex
	gen     uint64
	store   Store
	cache   ZoneCache
	bloom   BloomFilter
	factory BloomFactory
	fpRate  float64
	codec   Codec
	clock   clock.Clock
	log     log.Logger
}

// Options carries the optional collaborators of a repository.
type Options struct {
	Codec  Codec
	Clock  clock.Clock
	Logger log.Logger
}

// NewRepository constructs a Repository and loads its Bloom filter from the store.
// fpRate is the target false-positive rate for the Bloom filter when rebuilding.
func NewRepository(store Store, cache ZoneCache, factory BloomFactory, fpRate float64, opts Options) (Repository, error) {
	r := &repository{
		store:   store,
		cache:   cache,
		factory: factory,
		fpRate:  fpRate,
		codec:   opts.Codec,
		clock:   clock.Or(opts.Clock),
		log:     log.With(opts.Logger, map[string]any{"component": "archive"}),
	}
	if r.codec == nil {
		r.codec = NewZoneFileCodec()
	}
	if err := r.Rebuild(); err != nil {
		return nil, err
	}
	return r, nil
}

// Put encodes and stores a zone, replacing any previous copy. Owner names
// must be absolute so the stored text reads back the same.
func (r *repository) Put(origin string, records []domain.TypedRecord) error {
	co := utils.CanonicalDNSName(origin)
	if co == "" {
		return ErrEmptyOrigin
	}
	text, err := r.codec.Encode(utils.AbsoluteName(co), records)
	if err != nil {
		return fmt.Errorf("encode zone %s: %w", co, err)
	}

	names := ownerNames(records)
	if err := r.store.PutZone(co, text, names, r.clock.Now().Unix()); err != nil {
		return fmt.Errorf("store zone %s: %w", co, err)
	}

	r.mu.Lock()
	if r.bloom != nil {
		for _, n := range names {
			r.bloom.Add([]byte(n))
		}
	}
	r.gen++
	r.cache.Remove(co)
	r.mu.Unlock()

	r.log.Debug(map[string]any{"origin": co, "records": len(records), "names": len(names)}, "zone stored")
	return nil
}

// Get returns the records of a stored zone.
func (r *repository) Get(origin string) ([]domain.TypedRecord, bool, error) {
	co := utils.CanonicalDNSName(origin)
	// 1) checkCache
	recs, ok, gen := r.checkCache(co)
	if ok {
		return recs, true, nil
	}
	// 2) checkStore
	text, ok, err := r.store.GetZone(co)
	if err != nil || !ok {
		return nil, false, err
	}
	recs, err = r.codec.Decode(utils.AbsoluteName(co), text)
	if err != nil {
		return nil, false, fmt.Errorf("decode zone %s: %w", co, err)
	}
	// 3) updateCache
	r.updateCache(co, recs, gen)
	return recs, true, nil
}

// FindZone returns the origin of the zone that holds name. Indexed owner
// names are tried first; otherwise the closest enclosing stored zone, down
// to the registrable domain, is returned.
func (r *repository) FindZone(name string) (string, bool, error) {
	cn := utils.CanonicalDNSName(name)
	if cn == "" {
		return "", false, nil
	}

	if r.checkBloom(cn) {
		origin, ok, err := r.store.LookupName(cn)
		if err != nil {
			return "", false, err
		}
		if ok {
			return utils.AbsoluteName(origin), true, nil
		}
	}

	apex := utils.CanonicalDNSName(utils.ZoneApex(cn))
	for a := cn; a != ""; {
		ok, err := r.store.HasZone(a)
		if err != nil {
			return "", false, err
		}
		if ok {
			return utils.AbsoluteName(a), true, nil
		}
		if a == apex {
			break
		}
		i := strings.IndexByte(a, '.')
		if i < 0 {
			break
		}
		a = a[i+1:]
	}
	return "", false, nil
}

// Delete removes a zone and its owner names. The Bloom filter keeps stale
// names until the next Rebuild; lookups still go through the store.
func (r *repository) Delete(origin string) error {
	co := utils.CanonicalDNSName(origin)
	if err := r.store.DeleteZone(co, r.clock.Now().Unix()); err != nil {
		return fmt.Errorf("delete zone %s: %w", co, err)
	}
	r.mu.Lock()
	r.gen++
	r.cache.Remove(co)
	r.mu.Unlock()
	return nil
}

// Zones lists stored origins in absolute form.
func (r *repository) Zones() ([]string, error) {
	zones, err := r.store.Zones()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(zones))
	for i, z := range zones {
		out[i] = utils.AbsoluteName(z)
	}
	return out, nil
}

// Rebuild reloads the Bloom filter from the store's name index and purges the cache.
func (r *repository) Rebuild() error {
	st := r.store.Stats()
	bf := r.factory.New(st.Names, r.fpRate)
	if err := r.store.VisitNames(func(name string) bool {
		bf.Add([]byte(name))
		return true
	}); err != nil {
		return fmt.Errorf("rebuild bloom: %w", err)
	}

	r.mu.Lock()
	r.bloom = bf
	r.gen++
	r.cache.Purge()
	r.mu.Unlock()

	r.log.Debug(map[string]any{"names": st.Names, "zones": st.Zones}, "bloom rebuilt")
	return nil
}

func (r *repository) Stats() RepoStats {
	hits, misses, evictions := r.cache.Stats()
	return RepoStats{
		Cache: CacheStats{Size: r.cache.Len(), Hits: hits, Misses: misses, Evictions: evictions},
		Store: r.store.Stats(),
	}
}

// checkBloom returns true if we should consult the store (maybe-positive),
// or false if the name is definitely not indexed. If no bloom is loaded,
// returns true to allow authoritative checking.
func (r *repository) checkBloom(cn string) bool {
	r.mu.RLock()
	bf := r.bloom
	r.mu.RUnlock()
	if bf == nil {
		return true
	}
	return bf.MightContain([]byte(cn))
}

func (r *repository) checkCache(co string) ([]domain.TypedRecord, bool, uint64) {
	r.mu.RLock()
	recs, ok := r.cache.Get(co)
	gen := r.gen
	r.mu.RUnlock()
	return recs, ok, gen
}

// updateCache drops recs when a write happened after the read began, since
// they may predate it.
func (r *repository) updateCache(co string, recs []domain.TypedRecord, gen uint64) {
	r.mu.Lock()
	if r.gen == gen {
		r.cache.Put(co, recs)
	}
	r.mu.Unlock()
}

// ownerNames returns the distinct canonical owner names of records.
func ownerNames(records []domain.TypedRecord) []string {
	seen := make(map[string]bool, len(records))
	var names []string
	for _, rec := range records {
		n := utils.CanonicalDNSName(rec.Header().Name)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	return names
}
