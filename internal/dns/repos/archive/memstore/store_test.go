package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGetLookup(t *testing.T) {
	s := New()
	require.NoError(t, s.PutZone("example.com", []byte("zone"), []string{"example.com", "www.example.com"}, 10))

	text, ok, err := s.GetZone("example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "zone", string(text))

	origin, ok, err := s.LookupName("www.example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "example.com", origin)

	st := s.Stats()
	assert.Equal(t, uint64(1), st.Zones)
	assert.Equal(t, uint64(2), st.Names)
	assert.Equal(t, uint64(1), st.Version)
	assert.Equal(t, int64(10), st.UpdatedUnix)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := New()
	in := []byte("zone")
	require.NoError(t, s.PutZone("example.com", in, nil, 1))
	in[0] = 'X'

	text, _, _ := s.GetZone("example.com")
	text[1] = 'Y'
	again, _, _ := s.GetZone("example.com")
	assert.Equal(t, "zone", string(again))
}

func TestStore_ReplaceAndDelete(t *testing.T) {
	s := New()
	require.NoError(t, s.PutZone("example.com", []byte("a"), []string{"old.example.com"}, 1))
	require.NoError(t, s.PutZone("example.com", []byte("b"), []string{"new.example.com"}, 2))

	_, ok, _ := s.LookupName("old.example.com")
	assert.False(t, ok)

	var names []string
	require.NoError(t, s.VisitNames(func(n string) bool { names = append(names, n); return true }))
	assert.Equal(t, []string{"new.example.com"}, names)

	require.NoError(t, s.DeleteZone("example.com", 3))
	ok, _ = s.HasZone("example.com")
	assert.False(t, ok)
	zones, _ := s.Zones()
	assert.Empty(t, zones)
	assert.Equal(t, uint64(3), s.Stats().Version)

	require.NoError(t, s.DeleteZone("example.com", 4))
	assert.Equal(t, uint64(3), s.Stats().Version)
	assert.NoError(t, s.Close())
}
