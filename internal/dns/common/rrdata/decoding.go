package rrdata

import (
	"fmt"

	"github.com/haukened/rr-zone/internal/dns/domain"
)

// Decode converts a generic record into its typed form. The header fields are
// copied unchanged. Missing or malformed RDATA fields fall back to their
// defaults; the only error is a type outside the supported set.
func Decode(rr domain.ResourceRecord) (domain.TypedRecord, error) {
	switch rr.Type {
	case domain.RRTypeA: // 1
		return decodeA(rr), nil
	case domain.RRTypeNS: // 2
		return decodeNS(rr), nil
	case domain.RRTypeCNAME: // 5
		return decodeCNAME(rr), nil
	case domain.RRTypeSOA: // 6
		return decodeSOA(rr), nil
	case domain.RRTypePTR: // 12
		return decodePTR(rr), nil
	case domain.RRTypeHINFO: // 13
		return decodeHINFO(rr), nil
	case domain.RRTypeMX: // 15
		return decodeMX(rr), nil
	case domain.RRTypeTXT: // 16
		return decodeTXT(rr), nil
	case domain.RRTypeRP: // 17
		return decodeRP(rr), nil
	case domain.RRTypeAAAA: // 28
		return decodeAAAA(rr), nil
	case domain.RRTypeLOC: // 29
		return decodeLOC(rr), nil
	case domain.RRTypeSRV: // 33
		return decodeSRV(rr), nil
	case domain.RRTypeNAPTR: // 35
		return decodeNAPTR(rr), nil
	case domain.RRTypeCERT: // 37
		return decodeCERT(rr), nil
	case domain.RRTypeDNAME: // 39
		return decodeDNAME(rr), nil
	case domain.RRTypeDS: // 43
		return decodeDS(rr), nil
	case domain.RRTypeSSHFP: // 44
		return decodeSSHFP(rr), nil
	case domain.RRTypeIPSECKEY: // 45
		return decodeIPSECKEY(rr), nil
	case domain.RRTypeDNSKEY: // 48
		return decodeDNSKEY(rr), nil
	case domain.RRTypeTLSA: // 52
		return decodeTLSA(rr), nil
	case domain.RRTypeSMIMEA: // 53
		return decodeSMIMEA(rr), nil
	case domain.RRTypeOPENPGPKEY: // 61
		return decodeOPENPGPKEY(rr), nil
	case domain.RRTypeSVCB: // 64
		return decodeSVCB(rr), nil
	case domain.RRTypeHTTPS: // 65
		return decodeHTTPS(rr), nil
	case domain.RRTypeSPF: // 99
		return decodeSPF(rr), nil
	case domain.RRTypeURI: // 256
		return decodeURI(rr), nil
	case domain.RRTypeCAA: // 257
		return decodeCAA(rr), nil
	case domain.RRTypeALIAS: // 65401
		return decodeALIAS(rr), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, rr.Type)
	}
}

// New returns the zero-valued typed record for t with only the type set.
func New(t domain.RRType) (domain.TypedRecord, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	// Decoding empty RDATA applies every field default.
	return Decode(domain.ResourceRecord{Type: t})
}
