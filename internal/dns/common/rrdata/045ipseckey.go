package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeIPSECKEY reads "precedence gateway-type algorithm gateway public-key...".
func decodeIPSECKEY(rr domain.ResourceRecord) *domain.IPSECKEYRecord {
	f := lexer.Fields(rr.RData)
	return &domain.IPSECKEYRecord{
		ResourceRecord: rr,
		Precedence:     parseUint[uint8](field(f, 0)),
		GatewayType:    parseUint[uint8](field(f, 1)),
		Algorithm:      parseUint[uint8](field(f, 2)),
		Gateway:        field(f, 3),
		PublicKey:      rest(f, 4, " "),
	}
}

func encodeIPSECKEY(r *domain.IPSECKEYRecord) string {
	return join(formatUint(r.Precedence), formatUint(r.GatewayType), formatUint(r.Algorithm), rootIfEmpty(r.Gateway), r.PublicKey)
}
