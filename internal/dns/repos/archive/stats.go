package archive

// CacheStats reports lightweight cache metrics.
// All fields are best-effort snapshots and may be updated concurrently.
type CacheStats struct {
	Size      int    // current number of entries
	Hits      uint64 // total cache hits since construction
	Misses    uint64 // total cache misses since construction
	Evictions uint64 // total evictions since construction
}

// StoreStats reports lightweight store metrics and metadata.
type StoreStats struct {
	Version     uint64 // bumped on every write (0 if unknown)
	UpdatedUnix int64  // last updated unix time (0 if unknown)
	Zones       uint64 // number of stored zones
	Names       uint64 // number of indexed owner names
}

// RepoStats exposes repository-level counters and underlying store stats.
type RepoStats struct {
	Cache CacheStats
	Store StoreStats
}
