package domain

// TypedRecord is a record whose RDATA has been decoded into named fields.
// The set of implementations is closed: one pointer type per supported RRType.
type TypedRecord interface {
	Header() *ResourceRecord
	isTypedRecord()
}

// ARecord holds an IPv4 address.
type ARecord struct {
	ResourceRecord
	Address string `json:"address"`
}

// AAAARecord holds an IPv6 address.
type AAAARecord struct {
	ResourceRecord
	Address string `json:"address"`
}

type CNAMERecord struct {
	ResourceRecord
	Target string `json:"target"`
}

type DNAMERecord struct {
	ResourceRecord
	Target string `json:"target"`
}

// ALIASRecord is the provider-specific apex alias; it has the same shape as CNAME.
type ALIASRecord struct {
	ResourceRecord
	Target string `json:"target"`
}

type NSRecord struct {
	ResourceRecord
	Host string `json:"host"`
}

type PTRRecord struct {
	ResourceRecord
	PTRDName string `json:"ptrdname"`
}

// TXTRecord carries the concatenated text of all character-strings.
type TXTRecord struct {
	ResourceRecord
	Text string `json:"text"`
}

type SPFRecord struct {
	ResourceRecord
	Text string `json:"text"`
}

type MXRecord struct {
	ResourceRecord
	Priority uint16 `json:"priority"`
	Exchange string `json:"exchange"`
}

type SOARecord struct {
	ResourceRecord
	MName   string `json:"mname"`
	RName   string `json:"rname"`
	Serial  uint32 `json:"serial"`
	Refresh uint32 `json:"refresh"`
	Retry   uint32 `json:"retry"`
	Expire  uint32 `json:"expire"`
	Minimum uint32 `json:"minimum"`
}

type SRVRecord struct {
	ResourceRecord
	Priority uint16 `json:"priority"`
	Weight   uint16 `json:"weight"`
	Port     uint16 `json:"port"`
	Target   string `json:"target"`
}

type CAARecord struct {
	ResourceRecord
	Flag  uint8  `json:"flag"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// DMS is one LOC coordinate in degrees, minutes and seconds. Minutes may be
// fractional.
type DMS struct {
	Degrees    uint16  `json:"degrees"`
	Minutes    float64 `json:"minutes"`
	Seconds    float64 `json:"seconds"`
	Hemisphere string  `json:"hemisphere"`
}

// LOCRecord is an RFC 1876 location. Altitude and the size/precision values are
// in meters; Meters records whether the source text carried the "m" unit so it
// can be written back the same way.
type LOCRecord struct {
	ResourceRecord
	Latitude       DMS     `json:"latitude"`
	Longitude      DMS     `json:"longitude"`
	Altitude       float64 `json:"altitude"`
	Size           float64 `json:"size"`
	HorizPrecision float64 `json:"horizPrecision"`
	VertPrecision  float64 `json:"vertPrecision"`
	Meters         bool    `json:"meters,omitempty"`
}

type DSRecord struct {
	ResourceRecord
	KeyTag     uint16 `json:"keyTag"`
	Algorithm  uint8  `json:"algorithm"`
	DigestType uint8  `json:"digestType"`
	Digest     string `json:"digest"`
}

type DNSKEYRecord struct {
	ResourceRecord
	Flags     uint16 `json:"flags"`
	Protocol  uint8  `json:"protocol"`
	Algorithm uint8  `json:"algorithm"`
	PublicKey string `json:"publicKey"`
}

type TLSARecord struct {
	ResourceRecord
	Usage                      uint8  `json:"usage"`
	Selector                   uint8  `json:"selector"`
	MatchingType               uint8  `json:"matchingType"`
	CertificateAssociationData string `json:"certificateAssociationData"`
}

type SMIMEARecord struct {
	ResourceRecord
	Usage               uint8  `json:"usage"`
	Selector            uint8  `json:"selector"`
	MatchingType        uint8  `json:"matchingType"`
	CertAssociationData string `json:"certAssociationData"`
}

type SSHFPRecord struct {
	ResourceRecord
	Algorithm       uint8  `json:"algorithm"`
	FingerprintType uint8  `json:"fingerprintType"`
	Fingerprint     string `json:"fingerprint"`
}

// HTTPSRecord keeps the SvcParams as their presentation text.
type HTTPSRecord struct {
	ResourceRecord
	Priority uint16 `json:"priority"`
	Target   string `json:"target"`
	Params   string `json:"params,omitempty"`
}

type SVCBRecord struct {
	ResourceRecord
	Priority uint16 `json:"priority"`
	Target   string `json:"target"`
	Params   string `json:"params,omitempty"`
}

type IPSECKEYRecord struct {
	ResourceRecord
	Precedence  uint8  `json:"precedence"`
	GatewayType uint8  `json:"gatewayType"`
	Algorithm   uint8  `json:"algorithm"`
	Gateway     string `json:"gateway"`
	PublicKey   string `json:"publicKey"`
}

type NAPTRRecord struct {
	ResourceRecord
	Order       uint16 `json:"order"`
	Preference  uint16 `json:"preference"`
	Flags       string `json:"flags"`
	Service     string `json:"service"`
	Regexp      string `json:"regexp"`
	Replacement string `json:"replacement"`
}

type CERTRecord struct {
	ResourceRecord
	CertType    uint16 `json:"certType"`
	KeyTag      uint16 `json:"keyTag"`
	Algorithm   uint8  `json:"algorithm"`
	Certificate string `json:"certificate"`
}

type URIRecord struct {
	ResourceRecord
	Priority uint16 `json:"priority"`
	Weight   uint16 `json:"weight"`
	Target   string `json:"target"`
}

type HINFORecord struct {
	ResourceRecord
	CPU string `json:"cpu"`
	OS  string `json:"os"`
}

type OPENPGPKEYRecord struct {
	ResourceRecord
	PublicKey string `json:"publicKey"`
}

type RPRecord struct {
	ResourceRecord
	Mailbox   string `json:"mailbox"`
	TXTDomain string `json:"txtDomain"`
}

func (*ARecord) isTypedRecord()          {}
func (*AAAARecord) isTypedRecord()       {}
func (*CNAMERecord) isTypedRecord()      {}
func (*DNAMERecord) isTypedRecord()      {}
func (*ALIASRecord) isTypedRecord()      {}
func (*NSRecord) isTypedRecord()         {}
func (*PTRRecord) isTypedRecord()        {}
func (*TXTRecord) isTypedRecord()        {}
func (*SPFRecord) isTypedRecord()        {}
func (*MXRecord) isTypedRecord()         {}
func (*SOARecord) isTypedRecord()        {}
func (*SRVRecord) isTypedRecord()        {}
func (*CAARecord) isTypedRecord()        {}
func (*LOCRecord) isTypedRecord()        {}
func (*DSRecord) isTypedRecord()         {}
func (*DNSKEYRecord) isTypedRecord()     {}
func (*TLSARecord) isTypedRecord()       {}
func (*SMIMEARecord) isTypedRecord()     {}
func (*SSHFPRecord) isTypedRecord()      {}
func (*HTTPSRecord) isTypedRecord()      {}
func (*SVCBRecord) isTypedRecord()       {}
func (*IPSECKEYRecord) isTypedRecord()   {}
func (*NAPTRRecord) isTypedRecord()      {}
func (*CERTRecord) isTypedRecord()       {}
func (*URIRecord) isTypedRecord()        {}
func (*HINFORecord) isTypedRecord()      {}
func (*OPENPGPKEYRecord) isTypedRecord() {}
func (*RPRecord) isTypedRecord()         {}
