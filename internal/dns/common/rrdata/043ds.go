package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeDS reads "key-tag algorithm digest-type digest". A hex digest split over
// several tokens is rejoined without separators.
func decodeDS(rr domain.ResourceRecord) *domain.DSRecord {
	f := lexer.Fields(rr.RData)
	return &domain.DSRecord{
		ResourceRecord: rr,
		KeyTag:         parseUint[uint16](field(f, 0)),
		Algorithm:      parseUint[uint8](field(f, 1)),
		DigestType:     parseUint[uint8](field(f, 2)),
		Digest:         rest(f, 3, ""),
	}
}

func encodeDS(r *domain.DSRecord) string {
	return join(formatUint(r.KeyTag), formatUint(r.Algorithm), formatUint(r.DigestType), r.Digest)
}
