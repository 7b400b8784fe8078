package rrdata

import (
	"strings"

	"github.com/haukened/rr-zone/internal/dns/domain"
)

func decodeALIAS(rr domain.ResourceRecord) *domain.ALIASRecord {
	return &domain.ALIASRecord{ResourceRecord: rr, Target: strings.TrimSpace(rr.RData)}
}

func encodeALIAS(r *domain.ALIASRecord) string {
	return r.Target
}
