package rrdata

import (
	"strings"

	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// Normalize prepares raw RDATA text for Decode. TXT and SPF are reduced to the
// contents of their quoted strings, joined by a space when preserveSpacing is
// set and by nothing otherwise; unquoted text is kept as is. Every other type
// has its unquoted whitespace collapsed.
func Normalize(t domain.RRType, rdata string, preserveSpacing bool) string {
	rdata = lexer.CollapseSpace(rdata)
	switch t {
	case domain.RRTypeTXT, domain.RRTypeSPF:
		spans := lexer.QuotedSpans(rdata)
		if spans == nil {
			return rdata
		}
		sep := ""
		if preserveSpacing {
			sep = " "
		}
		return strings.Join(spans, sep)
	default:
		return rdata
	}
}
