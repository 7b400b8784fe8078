package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeSMIMEA uses the RFC 8162 layout, identical to TLSA:
// "usage selector matching-type data...".
func decodeSMIMEA(rr domain.ResourceRecord) *domain.SMIMEARecord {
	f := lexer.Fields(rr.RData)
	return &domain.SMIMEARecord{
		ResourceRecord:      rr,
		Usage:               parseUint[uint8](field(f, 0)),
		Selector:            parseUint[uint8](field(f, 1)),
		MatchingType:        parseUint[uint8](field(f, 2)),
		CertAssociationData: rest(f, 3, " "),
	}
}

func encodeSMIMEA(r *domain.SMIMEARecord) string {
	return join(formatUint(r.Usage), formatUint(r.Selector), formatUint(r.MatchingType), r.CertAssociationData)
}
