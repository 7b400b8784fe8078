package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeMX reads "preference exchange".
func decodeMX(rr domain.ResourceRecord) *domain.MXRecord {
	f := lexer.Fields(rr.RData)
	return &domain.MXRecord{
		ResourceRecord: rr,
		Priority:       parseUint[uint16](field(f, 0)),
		Exchange:       field(f, 1),
	}
}

func encodeMX(r *domain.MXRecord) string {
	return join(formatUint(r.Priority), rootIfEmpty(r.Exchange))
}
