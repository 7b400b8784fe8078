package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeRP reads "mbox-dname txt-dname".
func decodeRP(rr domain.ResourceRecord) *domain.RPRecord {
	f := lexer.Fields(rr.RData)
	return &domain.RPRecord{
		ResourceRecord: rr,
		Mailbox:        lexer.Unquote(field(f, 0)),
		TXTDomain:      lexer.Unquote(field(f, 1)),
	}
}

func encodeRP(r *domain.RPRecord) string {
	return join(rootIfEmpty(r.Mailbox), rootIfEmpty(r.TXTDomain))
}
