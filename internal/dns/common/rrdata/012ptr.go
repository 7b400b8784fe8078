package rrdata

import (
	"strings"

	"github.com/haukened/rr-zone/internal/dns/domain"
)

func decodePTR(rr domain.ResourceRecord) *domain.PTRRecord {
	return &domain.PTRRecord{ResourceRecord: rr, PTRDName: strings.TrimSpace(rr.RData)}
}

func encodePTR(r *domain.PTRRecord) string {
	return r.PTRDName
}
