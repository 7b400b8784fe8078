// Package wire converts typed zone records to and from github.com/miekg/dns
// resource records, and through them to the RFC 1035 wire format. It is the
// interoperability check for everything the zone file codec produces.
package wire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/haukened/rr-zone/internal/dns/common/rrdata"
	"github.com/haukened/rr-zone/internal/dns/common/utils"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// ErrUnsupportedType is returned for record types miekg/dns has no mnemonic for (ALIAS).
var ErrUnsupportedType = errors.New("record type not supported by miekg/dns")

// ToRR renders rec as a master file line and parses it with the miekg/dns zone
// parser. Relative names are completed with origin.
func ToRR(rec domain.TypedRecord, origin string) (dns.RR, error) {
	h := rec.Header()
	if _, ok := dns.StringToType[h.Type.String()]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, h.Type)
	}
	rdata, err := rrdata.Encode(rec)
	if err != nil {
		return nil, err
	}
	class := h.Class
	if class == 0 {
		class = domain.RRClassIN
	}
	name := h.Name
	if name == "" {
		name = "@"
	}
	line := fmt.Sprintf("%s\t%d\t%s\t%s\t%s\n", name, h.TTL, class, h.Type, rdata)

	if origin == "" {
		origin = "."
	}
	zp := dns.NewZoneParser(strings.NewReader(line), utils.AbsoluteName(origin), "")
	rr, ok := zp.Next()
	if err := zp.Err(); err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no record parsed from %q", strings.TrimSpace(line))
	}
	return rr, nil
}

// FromRR converts a miekg/dns record into a typed record. The RDATA text is
// taken from the record's presentation form; multiple TXT strings are
// concatenated without a separator.
func FromRR(rr dns.RR) (domain.TypedRecord, error) {
	hdr := rr.Header()
	t := domain.RRType(hdr.Rrtype)
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %s", rrdata.ErrUnknownType, dns.TypeToString[hdr.Rrtype])
	}

	text := strings.TrimPrefix(rr.String(), hdr.String())
	return rrdata.Decode(domain.ResourceRecord{
		Name:  strings.ToLower(hdr.Name),
		TTL:   hdr.Ttl,
		Class: domain.RRClass(hdr.Class),
		Type:  t,
		RData: rrdata.Normalize(t, text, false),
	})
}

// Pack encodes rec in uncompressed wire format.
func Pack(rec domain.TypedRecord, origin string) ([]byte, error) {
	rr, err := ToRR(rec, origin)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, dns.Len(rr))
	off, err := dns.PackRR(rr, buf, 0, nil, false)
	if err != nil {
		return nil, err
	}
	return buf[:off], nil
}

// Unpack decodes one wire-format record.
func Unpack(msg []byte) (domain.TypedRecord, error) {
	rr, _, err := dns.UnpackRR(msg, 0)
	if err != nil {
		return nil, err
	}
	return FromRR(rr)
}
