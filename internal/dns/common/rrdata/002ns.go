package rrdata

import (
	"strings"

	"github.com/haukened/rr-zone/internal/dns/domain"
)

func decodeNS(rr domain.ResourceRecord) *domain.NSRecord {
	return &domain.NSRecord{ResourceRecord: rr, Host: strings.TrimSpace(rr.RData)}
}

func encodeNS(r *domain.NSRecord) string {
	return r.Host
}
