package rrdata

import (
	"strings"

	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeTXT expects RDATA already reduced to its text by Normalize. RDATA that
// still carries quoted spans is reduced here with single-space joining.
func decodeTXT(rr domain.ResourceRecord) *domain.TXTRecord {
	return &domain.TXTRecord{ResourceRecord: rr, Text: characterText(rr.RData)}
}

func encodeTXT(r *domain.TXTRecord) string {
	return lexer.Quote(r.Text)
}

// characterText concatenates the quoted spans of s, or returns s trimmed when
// it has none.
func characterText(s string) string {
	s = strings.TrimSpace(s)
	if !lexer.ContainsUnquoted(s, '"') {
		return s
	}
	spans := lexer.QuotedSpans(s)
	if len(spans) == 0 {
		return s
	}
	return strings.Join(spans, " ")
}
