package domain

import (
	"fmt"
	"strings"
)

// RRType represents a DNS resource record type (e.g. A, AAAA, MX).
// See IANA DNS Parameters for assigned codes.
type RRType uint16

// DNS Resource Record Type constants
const (
	RRTypeA          RRType = 1     // A - IPv4 address
	RRTypeNS         RRType = 2     // NS - Name server
	RRTypeCNAME      RRType = 5     // CNAME - Canonical name
	RRTypeSOA        RRType = 6     // SOA - Start of authority
	RRTypePTR        RRType = 12    // PTR - Pointer
	RRTypeHINFO      RRType = 13    // HINFO - Host information
	RRTypeMX         RRType = 15    // MX - Mail exchange
	RRTypeTXT        RRType = 16    // TXT - Text
	RRTypeRP         RRType = 17    // RP - Responsible person
	RRTypeAAAA       RRType = 28    // AAAA - IPv6 address
	RRTypeLOC        RRType = 29    // LOC - Location
	RRTypeSRV        RRType = 33    // SRV - Service
	RRTypeNAPTR      RRType = 35    // NAPTR - Naming authority pointer
	RRTypeCERT       RRType = 37    // CERT - Certificate
	RRTypeDNAME      RRType = 39    // DNAME - Delegation name
	RRTypeDS         RRType = 43    // DS - Delegation signer
	RRTypeSSHFP      RRType = 44    // SSHFP - SSH key fingerprint
	RRTypeIPSECKEY   RRType = 45    // IPSECKEY - IPsec key
	RRTypeDNSKEY     RRType = 48    // DNSKEY - DNS key
	RRTypeTLSA       RRType = 52    // TLSA - TLS association
	RRTypeSMIMEA     RRType = 53    // SMIMEA - S/MIME association
	RRTypeOPENPGPKEY RRType = 61    // OPENPGPKEY - OpenPGP key
	RRTypeSVCB       RRType = 64    // SVCB - Service binding
	RRTypeHTTPS      RRType = 65    // HTTPS - HTTPS binding
	RRTypeSPF        RRType = 99    // SPF - Sender policy framework
	RRTypeURI        RRType = 256   // URI - Uniform resource identifier
	RRTypeCAA        RRType = 257   // CAA - Certificate authority authorization
	RRTypeALIAS      RRType = 65401 // ALIAS - apex CNAME flattening (private use)
)

var rrTypeNames = map[RRType]string{
	RRTypeA:          "A",
	RRTypeNS:         "NS",
	RRTypeCNAME:      "CNAME",
	RRTypeSOA:        "SOA",
	RRTypePTR:        "PTR",
	RRTypeHINFO:      "HINFO",
	RRTypeMX:         "MX",
	RRTypeTXT:        "TXT",
	RRTypeRP:         "RP",
	RRTypeAAAA:       "AAAA",
	RRTypeLOC:        "LOC",
	RRTypeSRV:        "SRV",
	RRTypeNAPTR:      "NAPTR",
	RRTypeCERT:       "CERT",
	RRTypeDNAME:      "DNAME",
	RRTypeDS:         "DS",
	RRTypeSSHFP:      "SSHFP",
	RRTypeIPSECKEY:   "IPSECKEY",
	RRTypeDNSKEY:     "DNSKEY",
	RRTypeTLSA:       "TLSA",
	RRTypeSMIMEA:     "SMIMEA",
	RRTypeOPENPGPKEY: "OPENPGPKEY",
	RRTypeSVCB:       "SVCB",
	RRTypeHTTPS:      "HTTPS",
	RRTypeSPF:        "SPF",
	RRTypeURI:        "URI",
	RRTypeCAA:        "CAA",
	RRTypeALIAS:      "ALIAS",
}

var rrTypeValues = func() map[string]RRType {
	m := make(map[string]RRType, len(rrTypeNames))
	for t, s := range rrTypeNames {
		m[s] = t
	}
	return m
}()

// AllRRTypes returns every supported type in ascending code order.
func AllRRTypes() []RRType {
	return []RRType{
		RRTypeA, RRTypeNS, RRTypeCNAME, RRTypeSOA, RRTypePTR, RRTypeHINFO, RRTypeMX,
		RRTypeTXT, RRTypeRP, RRTypeAAAA, RRTypeLOC, RRTypeSRV, RRTypeNAPTR, RRTypeCERT,
		RRTypeDNAME, RRTypeDS, RRTypeSSHFP, RRTypeIPSECKEY, RRTypeDNSKEY, RRTypeTLSA,
		RRTypeSMIMEA, RRTypeOPENPGPKEY, RRTypeSVCB, RRTypeHTTPS, RRTypeSPF, RRTypeURI,
		RRTypeCAA, RRTypeALIAS,
	}
}

// IsValid returns true if the RRType is one of the supported types.
func (t RRType) IsValid() bool {
	_, ok := rrTypeNames[t]
	return ok
}

// String returns the textual representation of the RRType.
// For unknown types, it returns "UNKNOWN(<value>)".
func (t RRType) String() string {
	if s, ok := rrTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN(%d)", t)
}

// RRTypeFromString converts a record type mnemonic (any case) to its RRType value.
// Unknown mnemonics return 0.
func RRTypeFromString(s string) RRType {
	return rrTypeValues[strings.ToUpper(strings.TrimSpace(s))]
}

// MarshalText renders the type mnemonic.
func (t RRType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("unsupported record type %d", uint16(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts a type mnemonic in any case.
func (t *RRType) UnmarshalText(b []byte) error {
	v := RRTypeFromString(string(b))
	if v == 0 {
		return fmt.Errorf("unsupported record type %q", string(b))
	}
	*t = v
	return nil
}
