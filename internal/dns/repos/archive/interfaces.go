// Package archive keeps parsed zones in a persistent store as master file
// text, with an owner-name index for finding the zone a name belongs to.
// Reads go through an LRU of decoded zones and a Bloom filter of owner names
// before touching the store.
package archive

import "github.com/haukened/rr-zone/internal/dns/domain"

// BloomSizer computes Bloom filter parameters from capacity (n) and target FP rate (p).
// It returns m (number of bits) and k (number of hash functions).
type BloomSizer interface {
	Size(n uint64, p float64) (m uint64, k uint8)
}

// BloomFilter is the minimal interface the repository needs from Bloom filters.
type BloomFilter interface {
	Add(key []byte)
	MightContain(key []byte) bool
}

// BloomFactory builds filters sized for a dataset.
type BloomFactory interface {
	New(capacity uint64, fpRate float64) BloomFilter
}

// ZoneCache caches decoded zones by canonical origin with basic metrics.
type ZoneCache interface {
	Get(origin string) ([]domain.TypedRecord, bool)
	Put(origin string, records []domain.TypedRecord)
	Remove(origin string)
	Len() int
	Purge()
	Stats() (hits, misses, evictions uint64)
}

// Store is the persistent zone index. Origins and names are canonical
// (lower case, no trailing dot).
//   - PutZone replaces the zone text and its owner names in one transaction
//   - LookupName returns the origin indexed for an exact owner name
//   - VisitNames walks every indexed owner name until visit returns false
type Store interface {
	PutZone(origin string, text []byte, names []string, updatedUnix int64) error
	GetZone(origin string) ([]byte, bool, error)
	HasZone(origin string) (bool, error)
	DeleteZone(origin string, updatedUnix int64) error
	LookupName(name string) (string, bool, error)
	VisitNames(visit func(name string) bool) error
	Zones() ([]string, error)
	Stats() StoreStats
	Close() error
}

// Codec converts between records and the text kept in the store.
type Codec interface {
	Encode(origin string, records []domain.TypedRecord) ([]byte, error)
	Decode(origin string, text []byte) ([]domain.TypedRecord, error)
}

// Repository is the composition layer that wires cache → bloom → store.
type Repository interface {
	Put(origin string, records []domain.TypedRecord) error
	Get(origin string) ([]domain.TypedRecord, bool, error)
	FindZone(name string) (string, bool, error)
	Delete(origin string) error
	Zones() ([]string, error)
	Rebuild() error
	Stats() RepoStats
}
