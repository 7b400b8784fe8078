package wire

import (
	"errors"
	"fmt"

	"github.com/miekg/dns"

	"github.com/haukened/rr-zone/internal/dns/domain"
)

// ErrRoundTrip is returned when a record reads back from wire format with
// different fields.
var ErrRoundTrip = errors.New("record changed in wire round trip")

// Problem is a record that miekg/dns rejected.
type Problem struct {
	Index int
	Name  string
	Type  domain.RRType
	Err   error
}

// Report summarizes a Check run.
type Report struct {
	Checked     int
	Unsupported int
	Problems    []Problem
}

// OK reports whether every supported record passed.
func (r Report) OK() bool { return len(r.Problems) == 0 }

// Check runs every record through Pack and Unpack and compares the miekg/dns
// forms of the record before and after, field by field. Types miekg/dns
// does not know are counted as unsupported rather than reported as problems.
func Check(records []domain.TypedRecord, origin string) Report {
	var rep Report
	for i, rec := range records {
		err := roundTrip(rec, origin)
		switch {
		case errors.Is(err, ErrUnsupportedType):
			rep.Unsupported++
			continue
		case err != nil:
			h := rec.Header()
			rep.Problems = append(rep.Problems, Problem{Index: i, Name: h.Name, Type: h.Type, Err: err})
		}
		rep.Checked++
	}
	return rep
}

func roundTrip(rec domain.TypedRecord, origin string) error {
	msg, err := Pack(rec, origin)
	if err != nil {
		return err
	}
	back, err := Unpack(msg)
	if err != nil {
		return fmt.Errorf("unpack: %w", err)
	}
	want, err := ToRR(rec, origin)
	if err != nil {
		return err
	}
	got, err := ToRR(back, ".")
	if err != nil {
		return fmt.Errorf("re-encode: %w", err)
	}
	return compareRR(want, got)
}

// compareRR reports how b differs from a. Names compare case-insensitively.
func compareRR(a, b dns.RR) error {
	if a.Header().Ttl != b.Header().Ttl {
		return fmt.Errorf("%w: ttl %d became %d", ErrRoundTrip, a.Header().Ttl, b.Header().Ttl)
	}
	if !dns.IsDuplicate(a, b) {
		return fmt.Errorf("%w: %q became %q", ErrRoundTrip, a.String(), b.String())
	}
	return nil
}
