package rrdata

import (
	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// decodeSOA reads "mname rname serial refresh retry expire minimum".
func decodeSOA(rr domain.ResourceRecord) *domain.SOARecord {
	f := lexer.Fields(rr.RData)
	return &domain.SOARecord{
		ResourceRecord: rr,
		MName:          field(f, 0),
		RName:          field(f, 1),
		Serial:         parseUint[uint32](field(f, 2)),
		Refresh:        parseUint[uint32](field(f, 3)),
		Retry:          parseUint[uint32](field(f, 4)),
		Expire:         parseUint[uint32](field(f, 5)),
		Minimum:        parseUint[uint32](field(f, 6)),
	}
}

func encodeSOA(r *domain.SOARecord) string {
	return join(
		rootIfEmpty(r.MName),
		rootIfEmpty(r.RName),
		formatUint(r.Serial),
		formatUint(r.Refresh),
		formatUint(r.Retry),
		formatUint(r.Expire),
		formatUint(r.Minimum),
	)
}
