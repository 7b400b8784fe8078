// Package memstore is an in-memory archive.Store for tests and for running
// without an archive file.
package memstore

import (
	"sort"
	"sync"

	"github.com/haukened/rr-zone/internal/dns/repos/archive"
)

// Store keeps zone text and the owner-name index in maps guarded by an RWMutex.
type Store struct {
	mu      sync.RWMutex
	zones   map[string][]byte
	names   map[string]string
	version uint64
	updated int64
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		zones: make(map[string][]byte),
		names: make(map[string]string),
	}
}

func (s *Store) PutZone(origin string, text []byte, names []string, updatedUnix int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dropNames(origin)
	s.zones[origin] = append([]byte(nil), text...)
	for _, n := range names {
		s.names[n] = origin
	}
	s.version++
	s.updated = updatedUnix
	return nil
}

func (s *Store) GetZone(origin string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.zones[origin]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), text...), true, nil
}

func (s *Store) HasZone(origin string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.zones[origin]
	return ok, nil
}

func (s *Store) DeleteZone(origin string, updatedUnix int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.zones[origin]; !ok {
		return nil
	}
	s.dropNames(origin)
	delete(s.zones, origin)
	s.version++
	s.updated = updatedUnix
	return nil
}

func (s *Store) LookupName(name string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	origin, ok := s.names[name]
	return origin, ok, nil
}

// VisitNames walks the names in sorted order, matching the bolt store.
func (s *Store) VisitNames(visit func(name string) bool) error {
	s.mu.RLock()
	names := make([]string, 0, len(s.names))
	for n := range s.names {
		names = append(names, n)
	}
	s.mu.RUnlock()

	sort.Strings(names)
	for _, n := range names {
		if !visit(n) {
			break
		}
	}
	return nil
}

func (s *Store) Zones() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	zones := make([]string, 0, len(s.zones))
	for z := range s.zones {
		zones = append(zones, z)
	}
	sort.Strings(zones)
	return zones, nil
}

func (s *Store) Stats() archive.StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return archive.StoreStats{
		Version:     s.version,
		UpdatedUnix: s.updated,
		Zones:       uint64(len(s.zones)),
		Names:       uint64(len(s.names)),
	}
}

func (s *Store) Close() error { return nil }

// dropNames must be called with the write lock held.
func (s *Store) dropNames(origin string) {
	for n, o := range s.names {
		if o == origin {
			delete(s.names, n)
		}
	}
}

var _ archive.Store = (*Store)(nil)
