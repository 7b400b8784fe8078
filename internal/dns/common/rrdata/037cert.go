package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeCERT reads "type key-tag algorithm certificate...".
func decodeCERT(rr domain.ResourceRecord) *domain.CERTRecord {
	f := lexer.Fields(rr.RData)
	return &domain.CERTRecord{
		ResourceRecord: rr,
		CertType:       parseUint[uint16](field(f, 0)),
		KeyTag:         parseUint[uint16](field(f, 1)),
		Algorithm:      parseUint[uint8](field(f, 2)),
		Certificate:    rest(f, 3, " "),
	}
}

func encodeCERT(r *domain.CERTRecord) string {
	return join(formatUint(r.CertType), formatUint(r.KeyTag), formatUint(r.Algorithm), r.Certificate)
}
