package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRRClass(t *testing.T) {
	tests := []struct {
		in   string
		want RRClass
	}{
		{"IN", RRClassIN},
		{"in", RRClassIN},
		{"CS", RRClassCS},
		{"ch", RRClassCH},
		{"Hs", RRClassHS},
		{"ANY", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := ParseRRClass(tt.in); got != tt.want {
			t.Errorf("ParseRRClass(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRRClass_String(t *testing.T) {
	assert.Equal(t, "IN", RRClassIN.String())
	assert.Equal(t, "CH", RRClassCH.String())
	assert.Equal(t, "UNKNOWN", RRClass(42).String())
}

func TestIsClassKeyword(t *testing.T) {
	assert.True(t, IsClassKeyword("in"))
	assert.True(t, IsClassKeyword("HS"))
	assert.False(t, IsClassKeyword("A"))
	assert.False(t, IsClassKeyword("3600"))
}

func TestRRClass_TextMarshalling(t *testing.T) {
	b, err := RRClass(0).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "IN", string(b))

	var c RRClass
	require.NoError(t, c.UnmarshalText([]byte("")))
	assert.Equal(t, RRClassIN, c)
	require.NoError(t, c.UnmarshalText([]byte("ch")))
	assert.Equal(t, RRClassCH, c)
	assert.Error(t, c.UnmarshalText([]byte("XX")))
}
