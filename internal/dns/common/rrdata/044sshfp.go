package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeSSHFP reads "algorithm fp-type fingerprint". A fingerprint split over
// several tokens is rejoined without separators.
func decodeSSHFP(rr domain.ResourceRecord) *domain.SSHFPRecord {
	f := lexer.Fields(rr.RData)
	return &domain.SSHFPRecord{
		ResourceRecord:  rr,
		Algorithm:       parseUint[uint8](field(f, 0)),
		FingerprintType: parseUint[uint8](field(f, 1)),
		Fingerprint:     rest(f, 2, ""),
	}
}

func encodeSSHFP(r *domain.SSHFPRecord) string {
	return join(formatUint(r.Algorithm), formatUint(r.FingerprintType), r.Fingerprint)
}
