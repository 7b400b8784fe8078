package wire

import (
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-zone/internal/dns/domain"
)

func header(name string, t domain.RRType) domain.ResourceRecord {
	return domain.ResourceRecord{Name: name, TTL: 300, Class: domain.RRClassIN, Type: t}
}

func TestToRR_RelativeNameUsesOrigin(t *testing.T) {
	rec := &domain.ARecord{ResourceRecord: header("www", domain.RRTypeA), Address: "192.0.2.1"}

	rr, err := ToRR(rec, "example.com")
	require.NoError(t, err)

	a, ok := rr.(*dns.A)
	require.True(t, ok)
	assert.Equal(t, "www.example.com.", a.Hdr.Name)
	assert.Equal(t, uint32(300), a.Hdr.Ttl)
	assert.Equal(t, "192.0.2.1", a.A.String())
}

func TestToRR_DefaultsClassAndApex(t *testing.T) {
	rec := &domain.MXRecord{
		ResourceRecord: domain.ResourceRecord{TTL: 60, Type: domain.RRTypeMX},
		Priority:       10,
		Exchange:       "mail.example.com.",
	}

	rr, err := ToRR(rec, "example.com.")
	require.NoError(t, err)

	mx, ok := rr.(*dns.MX)
	require.True(t, ok)
	assert.Equal(t, "example.com.", mx.Hdr.Name)
	assert.Equal(t, uint16(dns.ClassINET), mx.Hdr.Class)
	assert.Equal(t, uint16(10), mx.Preference)
	assert.Equal(t, "mail.example.com.", mx.Mx)
}

func TestToRR_SOA(t *testing.T) {
	rec := &domain.SOARecord{
		ResourceRecord: header("example.com.", domain.RRTypeSOA),
		MName:          "ns1.example.com.",
		RName:          "hostmaster.example.com.",
		Serial:         2025091801,
		Refresh:        7200,
		Retry:          3600,
		Expire:         1209600,
		Minimum:        300,
	}

	rr, err := ToRR(rec, "")
	require.NoError(t, err)

	soa, ok := rr.(*dns.SOA)
	require.True(t, ok)
	assert.Equal(t, uint32(2025091801), soa.Serial)
	assert.Equal(t, uint32(1209600), soa.Expire)
	assert.Equal(t, "hostmaster.example.com.", soa.Mbox)
}

func TestToRR_Unsupported(t *testing.T) {
	rec := &domain.ALIASRecord{ResourceRecord: header("example.com.", domain.RRTypeALIAS), Target: "cdn.example.net."}

	_, err := ToRR(rec, "example.com.")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestToRR_BadRData(t *testing.T) {
	rec := &domain.ARecord{ResourceRecord: header("www.example.com.", domain.RRTypeA), Address: "not-an-ip"}

	_, err := ToRR(rec, "example.com.")
	assert.Error(t, err)
}

func TestFromRR_TXTConcatenates(t *testing.T) {
	rr := &dns.TXT{
		Hdr: dns.RR_Header{Name: "Sel._domainkey.Example.com.", Rrtype: dns.TypeTXT, Class: dns.ClassINET, Ttl: 120},
		Txt: []string{"v=DKIM1; k=rsa; ", "p=MIGf"},
	}

	rec, err := FromRR(rr)
	require.NoError(t, err)

	txt, ok := rec.(*domain.TXTRecord)
	require.True(t, ok)
	assert.Equal(t, "sel._domainkey.example.com.", txt.Name)
	assert.Equal(t, uint32(120), txt.TTL)
	assert.Equal(t, domain.RRClassIN, txt.Class)
	assert.Equal(t, "v=DKIM1; k=rsa; p=MIGf", txt.Text)
}

func TestFromRR_SRV(t *testing.T) {
	rr, err := dns.NewRR("_sip._tcp.example.com. 600 IN SRV 10 60 5060 sip.example.com.")
	require.NoError(t, err)

	rec, err := FromRR(rr)
	require.NoError(t, err)

	srv, ok := rec.(*domain.SRVRecord)
	require.True(t, ok)
	assert.Equal(t, uint16(10), srv.Priority)
	assert.Equal(t, uint16(60), srv.Weight)
	assert.Equal(t, uint16(5060), srv.Port)
	assert.Equal(t, "sip.example.com.", srv.Target)
}

func TestFromRR_UnknownType(t *testing.T) {
	rr := &dns.NULL{Hdr: dns.RR_Header{Name: "example.com.", Rrtype: dns.TypeNULL, Class: dns.ClassINET}}

	_, err := FromRR(rr)
	assert.Error(t, err)
}

func TestPackUnpack(t *testing.T) {
	recs := []domain.TypedRecord{
		&domain.AAAARecord{ResourceRecord: header("v6.example.com.", domain.RRTypeAAAA), Address: "2001:db8::1"},
		&domain.CNAMERecord{ResourceRecord: header("www.example.com.", domain.RRTypeCNAME), Target: "example.com."},
		&domain.CAARecord{ResourceRecord: header("example.com.", domain.RRTypeCAA), Flag: 0, Tag: "issue", Value: "letsencrypt.org"},
	}

	for _, rec := range recs {
		t.Run(rec.Header().Type.String(), func(t *testing.T) {
			msg, err := Pack(rec, "example.com.")
			require.NoError(t, err)
			require.NotEmpty(t, msg)

			got, err := Unpack(msg)
			require.NoError(t, err)
			assert.NotEmpty(t, got.Header().RData)
			got.Header().RData = ""
			assert.Equal(t, rec, got)
		})
	}
}

func TestUnpack_Truncated(t *testing.T) {
	_, err := Unpack([]byte{0x03, 'w', 'w'})
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	recs := []domain.TypedRecord{
		&domain.ARecord{ResourceRecord: header("example.com.", domain.RRTypeA), Address: "192.0.2.1"},
		&domain.ALIASRecord{ResourceRecord: header("example.com.", domain.RRTypeALIAS), Target: "cdn.example.net."},
		&domain.ARecord{ResourceRecord: header("bad.example.com.", domain.RRTypeA), Address: "300.1.1.1"},
		&domain.NSRecord{ResourceRecord: header("example.com.", domain.RRTypeNS), Host: "ns1.example.com."},
	}

	rep := Check(recs, "example.com.")
	assert.False(t, rep.OK())
	assert.Equal(t, 3, rep.Checked)
	assert.Equal(t, 1, rep.Unsupported)
	require.Len(t, rep.Problems, 1)
	assert.Equal(t, 2, rep.Problems[0].Index)
	assert.Equal(t, "bad.example.com.", rep.Problems[0].Name)
	assert.Equal(t, domain.RRTypeA, rep.Problems[0].Type)
}

func TestCheck_RoundTripsCommonTypes(t *testing.T) {
	recs := []domain.TypedRecord{
		&domain.SOARecord{ResourceRecord: header("example.com.", domain.RRTypeSOA),
			MName: "ns1.example.com.", RName: "hostmaster.example.com.", Serial: 2024010101, Refresh: 7200, Retry: 3600, Expire: 1209600, Minimum: 300},
		&domain.NSRecord{ResourceRecord: header("example.com.", domain.RRTypeNS), Host: "ns1.example.com."},
		&domain.ARecord{ResourceRecord: header("www", domain.RRTypeA), Address: "192.0.2.1"},
		&domain.AAAARecord{ResourceRecord: header("www", domain.RRTypeAAAA), Address: "2001:db8::1"},
		&domain.MXRecord{ResourceRecord: header("example.com.", domain.RRTypeMX), Priority: 10, Exchange: "mail"},
		&domain.TXTRecord{ResourceRecord: header("example.com.", domain.RRTypeTXT), Text: "v=spf1 -all"},
		&domain.SRVRecord{ResourceRecord: header("_sip._tcp", domain.RRTypeSRV), Priority: 10, Weight: 60, Port: 5060, Target: "sip.example.com."},
		&domain.CAARecord{ResourceRecord: header("example.com.", domain.RRTypeCAA), Tag: "issue", Value: "letsencrypt.org"},
		&domain.PTRRecord{ResourceRecord: header("1.2.0.192.in-addr.arpa.", domain.RRTypePTR), PTRDName: "www.example.com."},
		&domain.NAPTRRecord{ResourceRecord: header("example.com.", domain.RRTypeNAPTR),
			Order: 100, Preference: 10, Flags: "U", Service: "E2U+sip", Regexp: "!^.*$!sip:info@example.com!", Replacement: "."},
		&domain.DSRecord{ResourceRecord: header("example.com.", domain.RRTypeDS),
			KeyTag: 60485, Algorithm: 5, DigestType: 1, Digest: "2BB183AF5F22588179A53B0A98631FAD1A292118"},
		&domain.SSHFPRecord{ResourceRecord: header("host.example.com.", domain.RRTypeSSHFP),
			Algorithm: 2, FingerprintType: 1, Fingerprint: "123456789ABCDEF67890123456789ABCDEF67890"},
	}

	rep := Check(recs, "example.com.")
	assert.True(t, rep.OK(), "unexpected problems: %+v", rep.Problems)
	assert.Equal(t, len(recs), rep.Checked)
	assert.Zero(t, rep.Unsupported)
}

func TestCheck_FractionalLOCMinutes(t *testing.T) {
	recs := []domain.TypedRecord{
		&domain.LOCRecord{
			ResourceRecord: header("example.com.", domain.RRTypeLOC),
			Latitude:       domain.DMS{Degrees: 51, Minutes: 30.5, Hemisphere: "N"},
			Longitude:      domain.DMS{Degrees: 0, Minutes: 7, Hemisphere: "W"},
			Size:           1, HorizPrecision: 10000, VertPrecision: 10,
		},
	}

	rep := Check(recs, "example.com.")
	require.Len(t, rep.Problems, 1)
	assert.Equal(t, domain.RRTypeLOC, rep.Problems[0].Type)
	assert.NotErrorIs(t, rep.Problems[0].Err, ErrRoundTrip)
}

func TestCompareRR(t *testing.T) {
	mustRR := func(s string) dns.RR {
		rr, err := dns.NewRR(s)
		require.NoError(t, err)
		return rr
	}
	a := mustRR("www.example.com. 300 IN A 192.0.2.1")

	assert.NoError(t, compareRR(a, mustRR("WWW.Example.COM. 300 IN A 192.0.2.1")))

	err := compareRR(a, mustRR("www.example.com. 60 IN A 192.0.2.1"))
	assert.ErrorIs(t, err, ErrRoundTrip)
	assert.Contains(t, err.Error(), "ttl 300 became 60")

	err = compareRR(a, mustRR("www.example.com. 300 IN A 192.0.2.2"))
	assert.ErrorIs(t, err, ErrRoundTrip)
	assert.Contains(t, err.Error(), "192.0.2.2")
}
