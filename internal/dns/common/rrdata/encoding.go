package rrdata

import (
	"fmt"

	"github.com/haukened/rr-zone/internal/dns/domain"
)

// Encode renders the RDATA presentation text of a typed record. Every numeric
// field is written, zero included, and free-text fields are quoted.
func Encode(rec domain.TypedRecord) (string, error) {
	switch r := rec.(type) {
	case *domain.ARecord: // 1
		return encodeA(r), nil
	case *domain.NSRecord: // 2
		return encodeNS(r), nil
	case *domain.CNAMERecord: // 5
		return encodeCNAME(r), nil
	case *domain.SOARecord: // 6
		return encodeSOA(r), nil
	case *domain.PTRRecord: // 12
		return encodePTR(r), nil
	case *domain.HINFORecord: // 13
		return encodeHINFO(r), nil
	case *domain.MXRecord: // 15
		return encodeMX(r), nil
	case *domain.TXTRecord: // 16
		return encodeTXT(r), nil
	case *domain.RPRecord: // 17
		return encodeRP(r), nil
	case *domain.AAAARecord: // 28
		return encodeAAAA(r), nil
	case *domain.LOCRecord: // 29
		return encodeLOC(r), nil
	case *domain.SRVRecord: // 33
		return encodeSRV(r), nil
	case *domain.NAPTRRecord: // 35
		return encodeNAPTR(r), nil
	case *domain.CERTRecord: // 37
		return encodeCERT(r), nil
	case *domain.DNAMERecord: // 39
		return encodeDNAME(r), nil
	case *domain.DSRecord: // 43
		return encodeDS(r), nil
	case *domain.SSHFPRecord: // 44
		return encodeSSHFP(r), nil
	case *domain.IPSECKEYRecord: // 45
		return encodeIPSECKEY(r), nil
	case *domain.DNSKEYRecord: // 48
		return encodeDNSKEY(r), nil
	case *domain.TLSARecord: // 52
		return encodeTLSA(r), nil
	case *domain.SMIMEARecord: // 53
		return encodeSMIMEA(r), nil
	case *domain.OPENPGPKEYRecord: // 61
		return encodeOPENPGPKEY(r), nil
	case *domain.SVCBRecord: // 64
		return encodeSVCB(r), nil
	case *domain.HTTPSRecord: // 65
		return encodeHTTPS(r), nil
	case *domain.SPFRecord: // 99
		return encodeSPF(r), nil
	case *domain.URIRecord: // 256
		return encodeURI(r), nil
	case *domain.CAARecord: // 257
		return encodeCAA(r), nil
	case *domain.ALIASRecord: // 65401
		return encodeALIAS(r), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownType, rec)
	}
}
