// Package rrdata is the RDATA codec table: one decoder and one encoder per
// supported record type, converting between presentation text and the typed
// records in package domain.
package rrdata

import (
	"errors"
	"strconv"
	"strings"
)

// ErrUnknownType is returned for a record type outside the supported set.
var ErrUnknownType = errors.New("unknown record type")

type unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// parseUint is the single parse-or-default rule for integer fields:
// a missing, malformed or out-of-range token yields 0.
func parseUint[T unsigned](s string) T {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v > uint64(^T(0)) {
		return 0
	}
	return T(v)
}

// parseFloat applies the same rule to decimal fields.
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatUint[T unsigned](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// field returns the i-th token or "" past the end.
func field(f []string, i int) string {
	if i < len(f) {
		return f[i]
	}
	return ""
}

// rest joins the tokens from i onward with sep.
func rest(f []string, i int, sep string) string {
	if i >= len(f) {
		return ""
	}
	return strings.Join(f[i:], sep)
}

// rootIfEmpty writes an empty domain-name field as the root name so the
// fields after it keep their positions.
func rootIfEmpty(name string) string {
	if name == "" {
		return "."
	}
	return name
}

// join renders RDATA fields separated by single spaces, skipping empty
// trailing parts. Callers fill empty leading or middle fields first.
func join(parts ...string) string {
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, " ")
}
