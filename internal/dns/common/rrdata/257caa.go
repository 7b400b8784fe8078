package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeCAA reads `flag tag "value"`. The value is everything after the tag.
func decodeCAA(rr domain.ResourceRecord) *domain.CAARecord {
	f := lexer.Fields(rr.RData)
	return &domain.CAARecord{
		ResourceRecord: rr,
		Flag:           parseUint[uint8](field(f, 0)),
		Tag:            lexer.Unquote(field(f, 1)),
		Value:          lexer.Unquote(rest(f, 2, " ")),
	}
}

// encodeCAA writes an empty tag as "" so the value stays third.
func encodeCAA(r *domain.CAARecord) string {
	tag := r.Tag
	if tag == "" {
		tag = `""`
	}
	return join(formatUint(r.Flag), tag, lexer.Quote(r.Value))
}
