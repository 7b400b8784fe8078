package rrdata

import (
	"strings"

	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeA reads "192.0.2.1".
func decodeA(rr domain.ResourceRecord) *domain.ARecord {
	return &domain.ARecord{ResourceRecord: rr, Address: strings.TrimSpace(rr.RData)}
}

func encodeA(r *domain.ARecord) string {
	return r.Address
}
