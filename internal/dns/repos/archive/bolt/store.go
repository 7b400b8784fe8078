package bolt

import (
	"encoding/binary"
	"sort"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/haukened/rr-zone/internal/dns/repos/archive"
)

var (
	bucketZones = []byte("zones")
	bucketNames = []byte("names")
	bucketMeta  = []byte("meta")

	keyVersion = []byte("version")
	keyUpdated = []byte("updated")
)

// boltStore implements archive.Store using bbolt.
// zones: origin → master file text; names: owner name → origin.
type boltStore struct {
	db *bbolt.DB
}

// New opens (or creates) a Bolt database at path and ensures buckets exist.
func New(path string) (archive.Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketZones, bucketNames, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Close() error { return s.db.Close() }

// PutZone replaces the zone text and its name index entries atomically.
func (s *boltStore) PutZone(origin string, text []byte, names []string, updatedUnix int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := dropNames(tx, origin); err != nil {
			return err
		}
		if err := tx.Bucket(bucketZones).Put([]byte(origin), text); err != nil {
			return err
		}
		nb := tx.Bucket(bucketNames)
		for _, n := range names {
			if err := nb.Put([]byte(n), []byte(origin)); err != nil {
				return err
			}
		}
		return bumpMeta(tx, updatedUnix)
	})
}

func (s *boltStore) GetZone(origin string) ([]byte, bool, error) {
	var text []byte
	var ok bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketZones).Get([]byte(origin)); v != nil {
			// bbolt values are only valid for the life of the transaction.
			text, ok = append([]byte{}, v...), true
		}
		return nil
	})
	return text, ok, err
}

func (s *boltStore) HasZone(origin string) (bool, error) {
	var present bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		present = tx.Bucket(bucketZones).Get([]byte(origin)) != nil
		return nil
	})
	return present, err
}

func (s *boltStore) DeleteZone(origin string, updatedUnix int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		zb := tx.Bucket(bucketZones)
		if zb.Get([]byte(origin)) == nil {
			return nil
		}
		if err := dropNames(tx, origin); err != nil {
			return err
		}
		if err := zb.Delete([]byte(origin)); err != nil {
			return err
		}
		return bumpMeta(tx, updatedUnix)
	})
}

func (s *boltStore) LookupName(name string) (string, bool, error) {
	var origin string
	var ok bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketNames).Get([]byte(name)); v != nil {
			origin, ok = string(v), true
		}
		return nil
	})
	return origin, ok, err
}

// VisitNames walks the name index in key order. If visit returns false, iteration stops.
func (s *boltStore) VisitNames(visit func(name string) bool) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketNames).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if !visit(string(k)) {
				return nil
			}
		}
		return nil
	})
}

func (s *boltStore) Zones() ([]string, error) {
	var zones []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketZones).ForEach(func(k, _ []byte) error {
			zones = append(zones, string(k))
			return nil
		})
	})
	sort.Strings(zones)
	return zones, err
}

func (s *boltStore) Stats() archive.StoreStats {
	st := archive.StoreStats{}
	_ = s.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketZones); b != nil {
			st.Zones = uint64(b.Stats().KeyN)
		}
		if b := tx.Bucket(bucketNames); b != nil {
			st.Names = uint64(b.Stats().KeyN)
		}
		if b := tx.Bucket(bucketMeta); b != nil {
			if v := b.Get(keyVersion); len(v) == 8 {
				st.Version = binary.BigEndian.Uint64(v)
			}
			if v := b.Get(keyUpdated); len(v) == 8 {
				st.UpdatedUnix = int64(binary.BigEndian.Uint64(v))
			}
		}
		return nil
	})
	return st
}

// dropNames deletes every name index entry that points at origin.
func dropNames(tx *bbolt.Tx, origin string) error {
	nb := tx.Bucket(bucketNames)
	var stale [][]byte
	if err := nb.ForEach(func(k, v []byte) error {
		if string(v) == origin {
			stale = append(stale, append([]byte(nil), k...))
		}
		return nil
	}); err != nil {
		return err
	}
	for _, k := range stale {
		if err := nb.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

func bumpMeta(tx *bbolt.Tx, updatedUnix int64) error {
	b := tx.Bucket(bucketMeta)
	var version uint64
	if v := b.Get(keyVersion); len(v) == 8 {
		version = binary.BigEndian.Uint64(v)
	}
	vbuf := make([]byte, 8)
	ubuf := make([]byte, 8)
	binary.BigEndian.PutUint64(vbuf, version+1)
	binary.BigEndian.PutUint64(ubuf, uint64(updatedUnix))
	if err := b.Put(keyVersion, vbuf); err != nil {
		return err
	}
	return b.Put(keyUpdated, ubuf)
}

var _ archive.Store = (*boltStore)(nil)
