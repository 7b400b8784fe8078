package rrdata

import (
	"strings"

	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

func decodeDNAME(rr domain.ResourceRecord) *domain.DNAMERecord {
	return &domain.DNAMERecord{ResourceRecord: rr, Target: lexer.Unquote(strings.TrimSpace(rr.RData))}
}

func encodeDNAME(r *domain.DNAMERecord) string {
	return r.Target
}
