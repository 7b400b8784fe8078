package archive

import (
	"errors"
	"testing"
	"time"

	"github.com/haukened/rr-zone/internal/dns/common/clock"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// --- fakes ---

type fakeStore struct {
	zones     map[string][]byte
	names     map[string]string
	getCalls  int
	lookups   int
	putErr    error
	lastNames []string
	lastUnix  int64
	afterGet  func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{zones: map[string][]byte{}, names: map[string]string{}}
}

func (s *fakeStore) PutZone(origin string, text []byte, names []string, updatedUnix int64) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.zones[origin] = text
	for _, n := range names {
		s.names[n] = origin
	}
	s.lastNames = names
	s.lastUnix = updatedUnix
	return nil
}

func (s *fakeStore) GetZone(origin string) ([]byte, bool, error) {
	s.getCalls++
	t, ok := s.zones[origin]
	if hook := s.afterGet; hook != nil {
		s.afterGet = nil
		hook()
	}
	return t, ok, nil
}

func (s *fakeStore) HasZone(origin string) (bool, error) {
	_, ok := s.zones[origin]
	return ok, nil
}

func (s *fakeStore) DeleteZone(origin string, _ int64) error {
	delete(s.zones, origin)
	return nil
}

func (s *fakeStore) LookupName(name string) (string, bool, error) {
	s.lookups++
	o, ok := s.names[name]
	return o, ok, nil
}

func (s *fakeStore) VisitNames(visit func(string) bool) error {
	for n := range s.names {
		if !visit(n) {
			break
		}
	}
	return nil
}

func (s *fakeStore) Zones() ([]string, error) {
	var out []string
	for z := range s.zones {
		out = append(out, z)
	}
	return out, nil
}

func (s *fakeStore) Stats() StoreStats {
	return StoreStats{Zones: uint64(len(s.zones)), Names: uint64(len(s.names))}
}

func (s *fakeStore) Close() error { return nil }

type fakeCache struct {
	m       map[string][]domain.TypedRecord
	removed []string
	purges  int
}

func newFakeCache() *fakeCache { return &fakeCache{m: map[string][]domain.TypedRecord{}} }

func (c *fakeCache) Get(o string) ([]domain.TypedRecord, bool) {
	v, ok := c.m[o]
	return v, ok
}
func (c *fakeCache) Put(o string, r []domain.TypedRecord) { c.m[o] = r }
func (c *fakeCache) Remove(o string)                      { c.removed = append(c.removed, o); delete(c.m, o) }
func (c *fakeCache) Len() int                             { return len(c.m) }
func (c *fakeCache) Purge()                               { c.purges++; c.m = map[string][]domain.TypedRecord{} }
func (c *fakeCache) Stats() (uint64, uint64, uint64)      { return 1, 2, 3 }

// setBloom is an exact set, so tests can reason about negatives.
type setBloom map[string]bool

func (b setBloom) Add(k []byte)               { b[string(k)] = true }
func (b setBloom) MightContain(k []byte) bool { return b[string(k)] }

type fakeFactory struct {
	last     setBloom
	capacity uint64
}

func (f *fakeFactory) New(capacity uint64, _ float64) BloomFilter {
	f.capacity = capacity
	f.last = setBloom{}
	return f.last
}

type fakeCodec struct {
	decodes int
	err     error
}

func (c *fakeCodec) Encode(origin string, records []domain.TypedRecord) ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	return []byte(origin), nil
}

func (c *fakeCodec) Decode(origin string, _ []byte) ([]domain.TypedRecord, error) {
	c.decodes++
	return records(origin), nil
}

func records(origin string) []domain.TypedRecord {
	return []domain.TypedRecord{
		&domain.ARecord{ResourceRecord: domain.ResourceRecord{Name: origin, Type: domain.RRTypeA}, Address: "192.0.2.1"},
		&domain.ARecord{ResourceRecord: domain.ResourceRecord{Name: "www." + origin, Type: domain.RRTypeA}, Address: "192.0.2.2"},
		&domain.AAAARecord{ResourceRecord: domain.ResourceRecord{Name: "WWW." + origin, Type: domain.RRTypeAAAA}, Address: "2001:db8::2"},
	}
}

type fixture struct {
	repo    *repository
	store   *fakeStore
	cache   *fakeCache
	factory *fakeFactory
	codec   *fakeCodec
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{store: newFakeStore(), cache: newFakeCache(), factory: &fakeFactory{}, codec: &fakeCodec{}}
	r, err := NewRepository(f.store, f.cache, f.factory, 0.01, Options{
		Codec: f.codec,
		Clock: &clock.MockClock{CurrentTime: time.Unix(1700000000, 0)},
	})
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	f.repo = r.(*repository)
	return f
}

func TestRepository_PutIndexesNames(t *testing.T) {
	f := newFixture(t)
	if err := f.repo.Put("Example.COM.", records("example.com.")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if _, ok := f.store.zones["example.com"]; !ok {
		t.Fatalf("expected canonical origin key, got %v", f.store.zones)
	}
	if len(f.store.lastNames) != 2 {
		t.Fatalf("expected 2 distinct names, got %v", f.store.lastNames)
	}
	if f.store.lastUnix != 1700000000 {
		t.Fatalf("expected clock time, got %d", f.store.lastUnix)
	}
	if !f.factory.last["www.example.com"] {
		t.Fatalf("expected bloom to learn new names")
	}
	if len(f.cache.removed) != 1 || f.cache.removed[0] != "example.com" {
		t.Fatalf("expected cache invalidation, got %v", f.cache.removed)
	}
}

func TestRepository_PutErrors(t *testing.T) {
	f := newFixture(t)
	if err := f.repo.Put("", nil); !errors.Is(err, ErrEmptyOrigin) {
		t.Fatalf("expected ErrEmptyOrigin, got %v", err)
	}

	f.codec.err = errors.New("boom")
	if err := f.repo.Put("example.com", nil); err == nil {
		t.Fatalf("expected encode error")
	}

	f.codec.err = nil
	f.store.putErr = errors.New("disk full")
	if err := f.repo.Put("example.com", nil); err == nil {
		t.Fatalf("expected store error")
	}
}

func TestRepository_GetUsesCache(t *testing.T) {
	f := newFixture(t)
	_ = f.repo.Put("example.com", records("example.com."))

	recs, ok, err := f.repo.Get("example.com.")
	if err != nil || !ok || len(recs) != 3 {
		t.Fatalf("Get unexpected: %v ok=%v err=%v", recs, ok, err)
	}
	if _, ok, _ := f.repo.Get("EXAMPLE.com"); !ok {
		t.Fatalf("expected cached hit")
	}
	if f.codec.decodes != 1 || f.store.getCalls != 1 {
		t.Fatalf("expected one decode and one store read, got %d/%d", f.codec.decodes, f.store.getCalls)
	}

	if _, ok, err := f.repo.Get("missing.test"); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
}

func TestRepository_GetSkipsCacheAfterConcurrentWrite(t *testing.T) {
	f := newFixture(t)
	_ = f.repo.Put("example.com", records("example.com."))

	// A Put lands between Get's store read and its cache fill.
	f.store.afterGet = func() {
		if err := f.repo.Put("example.com", records("example.com.")); err != nil {
			t.Errorf("Put: %v", err)
		}
	}
	if _, ok, err := f.repo.Get("example.com"); !ok || err != nil {
		t.Fatalf("Get unexpected: ok=%v err=%v", ok, err)
	}
	if _, cached := f.cache.m["example.com"]; cached {
		t.Fatalf("expected read that raced a write to stay out of the cache")
	}

	if _, ok, _ := f.repo.Get("example.com"); !ok {
		t.Fatalf("expected zone")
	}
	if f.store.getCalls != 2 {
		t.Fatalf("expected a second store read, got %d", f.store.getCalls)
	}
	if _, cached := f.cache.m["example.com"]; !cached {
		t.Fatalf("expected quiet read to fill the cache")
	}
}

func TestRepository_DeleteInvalidatesInFlightRead(t *testing.T) {
	f := newFixture(t)
	_ = f.repo.Put("example.com", records("example.com."))

	f.store.afterGet = func() {
		if err := f.repo.Delete("example.com"); err != nil {
			t.Errorf("Delete: %v", err)
		}
	}
	_, _, _ = f.repo.Get("example.com")

	if _, ok, _ := f.repo.Get("example.com"); ok {
		t.Fatalf("expected deleted zone to miss, not come back from the cache")
	}
}

func TestRepository_FindZone(t *testing.T) {
	f := newFixture(t)
	_ = f.repo.Put("example.com", records("example.com."))
	_ = f.repo.Put("sub.example.com", nil)

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"www.example.com.", "example.com.", true},
		{"deep.sub.example.com", "sub.example.com.", true},
		{"other.example.com", "example.com.", true},
		{"example.org", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok, err := f.repo.FindZone(tt.name)
		if err != nil || ok != tt.wantOK || got != tt.want {
			t.Errorf("FindZone(%q) = %q, %v, %v; want %q, %v", tt.name, got, ok, err, tt.want, tt.wantOK)
		}
	}
}

func TestRepository_FindZone_BloomNegativeSkipsIndex(t *testing.T) {
	f := newFixture(t)
	_ = f.repo.Put("example.com", records("example.com."))

	before := f.store.lookups
	if _, _, err := f.repo.FindZone("nothere.example.com"); err != nil {
		t.Fatalf("FindZone: %v", err)
	}
	if f.store.lookups != before {
		t.Fatalf("expected bloom negative to skip the name index")
	}
	if _, _, _ = f.repo.FindZone("www.example.com"); f.store.lookups != before+1 {
		t.Fatalf("expected bloom positive to consult the name index")
	}
}

func TestRepository_DeleteZonesRebuildStats(t *testing.T) {
	f := newFixture(t)
	_ = f.repo.Put("example.com", records("example.com."))
	_ = f.repo.Put("example.org", records("example.org."))

	zones, err := f.repo.Zones()
	if err != nil || len(zones) != 2 {
		t.Fatalf("Zones unexpected: %v err=%v", zones, err)
	}
	for _, z := range zones {
		if z != "example.com." && z != "example.org." {
			t.Fatalf("expected absolute origins, got %v", zones)
		}
	}

	if err := f.repo.Delete("example.org."); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := f.repo.Get("example.org"); ok {
		t.Fatalf("expected deleted zone to miss")
	}

	purges := f.cache.purges
	if err := f.repo.Rebuild(); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if f.cache.purges != purges+1 {
		t.Fatalf("expected rebuild to purge the cache")
	}
	if f.factory.capacity != uint64(len(f.store.names)) {
		t.Fatalf("expected bloom sized from store names, got %d", f.factory.capacity)
	}

	st := f.repo.Stats()
	if st.Cache.Hits != 1 || st.Cache.Misses != 2 || st.Cache.Evictions != 3 || st.Store.Zones != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestOwnerNames(t *testing.T) {
	got := ownerNames(records("example.com."))
	want := []string{"example.com", "www.example.com"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("ownerNames = %v; want %v", got, want)
	}
}
