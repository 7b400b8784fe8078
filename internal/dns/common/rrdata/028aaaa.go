package rrdata

import (
	"strings"

	"github.com/haukened/rr-zone/internal/dns/domain"
)

func decodeAAAA(rr domain.ResourceRecord) *domain.AAAARecord {
	return &domain.AAAARecord{ResourceRecord: rr, Address: strings.TrimSpace(rr.RData)}
}

func encodeAAAA(r *domain.AAAARecord) string {
	return r.Address
}
