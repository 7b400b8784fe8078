package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeURI reads `priority weight "target"`.
func decodeURI(rr domain.ResourceRecord) *domain.URIRecord {
	f := lexer.Fields(rr.RData)
	return &domain.URIRecord{
		ResourceRecord: rr,
		Priority:       parseUint[uint16](field(f, 0)),
		Weight:         parseUint[uint16](field(f, 1)),
		Target:         lexer.Unquote(field(f, 2)),
	}
}

func encodeURI(r *domain.URIRecord) string {
	return join(formatUint(r.Priority), formatUint(r.Weight), lexer.Quote(r.Target))
}
