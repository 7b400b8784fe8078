package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeSRV reads "priority weight port target".
func decodeSRV(rr domain.ResourceRecord) *domain.SRVRecord {
	f := lexer.Fields(rr.RData)
	return &domain.SRVRecord{
		ResourceRecord: rr,
		Priority:       parseUint[uint16](field(f, 0)),
		Weight:         parseUint[uint16](field(f, 1)),
		Port:           parseUint[uint16](field(f, 2)),
		Target:         field(f, 3),
	}
}

func encodeSRV(r *domain.SRVRecord) string {
	return join(formatUint(r.Priority), formatUint(r.Weight), formatUint(r.Port), rootIfEmpty(r.Target))
}
