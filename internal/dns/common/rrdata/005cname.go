package rrdata

import (
	"strings"

	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeCNAME takes the target as already qualified by the resolver.
func decodeCNAME(rr domain.ResourceRecord) *domain.CNAMERecord {
	return &domain.CNAMERecord{ResourceRecord: rr, Target: strings.TrimSpace(rr.RData)}
}

func encodeCNAME(r *domain.CNAMERecord) string {
	return r.Target
}
