package rrdata

import (
	"strings"

	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

func decodeOPENPGPKEY(rr domain.ResourceRecord) *domain.OPENPGPKEYRecord {
	return &domain.OPENPGPKEYRecord{ResourceRecord: rr, PublicKey: lexer.Unquote(strings.TrimSpace(rr.RData))}
}

func encodeOPENPGPKEY(r *domain.OPENPGPKEYRecord) string {
	return r.PublicKey
}
