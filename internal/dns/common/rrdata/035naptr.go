package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeNAPTR reads `order preference "flags" "service" "regexp" replacement`.
// All quotes are dropped from the string fields; regexp and replacement
// default to ".".
func decodeNAPTR(rr domain.ResourceRecord) *domain.NAPTRRecord {
	f := lexer.Fields(rr.RData)
	orDot := func(i int) string {
		if i >= len(f) {
			return "."
		}
		return lexer.StripQuotes(f[i])
	}
	return &domain.NAPTRRecord{
		ResourceRecord: rr,
		Order:          parseUint[uint16](field(f, 0)),
		Preference:     parseUint[uint16](field(f, 1)),
		Flags:          lexer.StripQuotes(field(f, 2)),
		Service:        lexer.StripQuotes(field(f, 3)),
		Regexp:         orDot(4),
		Replacement:    orDot(5),
	}
}

func encodeNAPTR(r *domain.NAPTRRecord) string {
	return join(
		formatUint(r.Order),
		formatUint(r.Preference),
		lexer.Quote(r.Flags),
		lexer.Quote(r.Service),
		lexer.Quote(r.Regexp),
		rootIfEmpty(r.Replacement),
	)
}
