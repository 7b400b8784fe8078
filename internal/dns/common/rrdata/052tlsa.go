package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeTLSA reads "usage selector matching-type data...".
func decodeTLSA(rr domain.ResourceRecord) *domain.TLSARecord {
	f := lexer.Fields(rr.RData)
	return &domain.TLSARecord{
		ResourceRecord:             rr,
		Usage:                      parseUint[uint8](field(f, 0)),
		Selector:                   parseUint[uint8](field(f, 1)),
		MatchingType:               parseUint[uint8](field(f, 2)),
		CertificateAssociationData: rest(f, 3, " "),
	}
}

func encodeTLSA(r *domain.TLSARecord) string {
	return join(formatUint(r.Usage), formatUint(r.Selector), formatUint(r.MatchingType), r.CertificateAssociationData)
}
