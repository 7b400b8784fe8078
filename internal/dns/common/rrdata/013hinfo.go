package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeHINFO reads two character-strings, `"cpu" "os"`.
func decodeHINFO(rr domain.ResourceRecord) *domain.HINFORecord {
	f := lexer.Fields(rr.RData)
	return &domain.HINFORecord{
		ResourceRecord: rr,
		CPU:            lexer.Unquote(field(f, 0)),
		OS:             lexer.Unquote(field(f, 1)),
	}
}

func encodeHINFO(r *domain.HINFORecord) string {
	return lexer.Quote(r.CPU) + " " + lexer.Quote(r.OS)
}
