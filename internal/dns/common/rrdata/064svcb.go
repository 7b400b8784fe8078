package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeSVCB reads "priority target [params...]". SvcParams stay in
// presentation form.
func decodeSVCB(rr domain.ResourceRecord) *domain.SVCBRecord {
	priority, target, params := decodeServiceBinding(rr.RData)
	return &domain.SVCBRecord{ResourceRecord: rr, Priority: priority, Target: target, Params: params}
}

func encodeSVCB(r *domain.SVCBRecord) string {
	return encodeServiceBinding(r.Priority, r.Target, r.Params)
}

func decodeServiceBinding(rdata string) (uint16, string, string) {
	f := lexer.Fields(rdata)
	return parseUint[uint16](field(f, 0)), field(f, 1), rest(f, 2, " ")
}

// encodeServiceBinding writes "." for an empty target, which RFC 9460 reads as the owner name.
func encodeServiceBinding(priority uint16, target, params string) string {
	return join(formatUint(priority), rootIfEmpty(target), params)
}
