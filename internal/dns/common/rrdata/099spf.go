package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// SPF shares the TXT presentation format.
func decodeSPF(rr domain.ResourceRecord) *domain.SPFRecord {
	return &domain.SPFRecord{ResourceRecord: rr, Text: characterText(rr.RData)}
}

func encodeSPF(r *domain.SPFRecord) string {
	return lexer.Quote(r.Text)
}
