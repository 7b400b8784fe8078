package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeDNSKEY reads "flags protocol algorithm public-key...". Base64 key
// material split over several tokens is rejoined with single spaces.
func decodeDNSKEY(rr domain.ResourceRecord) *domain.DNSKEYRecord {
	f := lexer.Fields(rr.RData)
	return &domain.DNSKEYRecord{
		ResourceRecord: rr,
		Flags:          parseUint[uint16](field(f, 0)),
		Protocol:       parseUint[uint8](field(f, 1)),
		Algorithm:      parseUint[uint8](field(f, 2)),
		PublicKey:      rest(f, 3, " "),
	}
}

func encodeDNSKEY(r *domain.DNSKEYRecord) string {
	return join(formatUint(r.Flags), formatUint(r.Protocol), formatUint(r.Algorithm), r.PublicKey)
}
