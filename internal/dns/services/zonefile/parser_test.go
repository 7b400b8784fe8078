package zonefile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-zone/internal/dns/domain"
)

const sampleZone = `$ORIGIN example.com.
$TTL 1h
@	IN	SOA	ns1.example.com. hostmaster.example.com. (
		2024010101 ; serial
		7200       ; refresh
		3600       ; retry
		1209600    ; expire
		300 )      ; minimum
	IN	NS	ns1
	IN	MX	10 mail.example.com.
www	300	IN	A	192.0.2.10
	IN	AAAA	2001:db8::10
ftp	IN	CNAME	www
txt	IN	TXT	"v=spf1 ; not a comment" "second"
`

func TestParse_SampleZone(t *testing.T) {
	zone, err := Parse(sampleZone, DefaultParseOptions())
	require.NoError(t, err)

	assert.Equal(t, "example.com.", zone.Origin)
	assert.Equal(t, uint32(3600), zone.TTL)
	require.Len(t, zone.Records, 7)
	assert.Equal(t, []domain.RRType{
		domain.RRTypeSOA, domain.RRTypeNS, domain.RRTypeMX, domain.RRTypeA,
		domain.RRTypeAAAA, domain.RRTypeCNAME, domain.RRTypeTXT,
	}, zone.Types())

	soa, ok := zone.Records[0].(*domain.SOARecord)
	require.True(t, ok)
	assert.Equal(t, "example.com.", soa.Name)
	assert.Equal(t, "ns1.example.com.", soa.MName)
	assert.Equal(t, "hostmaster.example.com.", soa.RName)
	assert.Equal(t, uint32(2024010101), soa.Serial)
	assert.Equal(t, uint32(7200), soa.Refresh)
	assert.Equal(t, uint32(3600), soa.Retry)
	assert.Equal(t, uint32(1209600), soa.Expire)
	assert.Equal(t, uint32(300), soa.Minimum)

	ns := zone.Records[1].(*domain.NSRecord)
	assert.Equal(t, "example.com.", ns.Name)
	assert.Equal(t, "ns1", ns.Host)

	mx := zone.Records[2].(*domain.MXRecord)
	assert.Equal(t, uint16(10), mx.Priority)
	assert.Equal(t, "mail.example.com.", mx.Exchange)

	a := zone.Records[3].(*domain.ARecord)
	assert.Equal(t, "www.example.com.", a.Name)
	assert.Equal(t, uint32(300), a.TTL)
	assert.Equal(t, "192.0.2.10", a.Address)

	aaaa := zone.Records[4].(*domain.AAAARecord)
	assert.Equal(t, "www.example.com.", aaaa.Name)
	assert.Equal(t, uint32(3600), aaaa.TTL)

	cname := zone.Records[5].(*domain.CNAMERecord)
	assert.Equal(t, "ftp.example.com.", cname.Name)
	assert.Equal(t, "www.example.com.", cname.Target)

	txt := zone.Records[6].(*domain.TXTRecord)
	assert.Equal(t, "v=spf1 ; not a comment second", txt.Text)
}

func TestParse_TXTSpacing(t *testing.T) {
	zone, err := Parse(`txt.example.com. IN TXT "abc" "def"`, ParseOptions{KeepTrailingDot: true})
	require.NoError(t, err)
	assert.Equal(t, "abcdef", zone.Records[0].(*domain.TXTRecord).Text)
}

func TestParse_MultiLineSOAEqualsSingleLine(t *testing.T) {
	multi := "example.com. IN SOA ns1.example.com. admin.example.com. (\n" +
		"   1 ; serial\n" +
		"   7200\n" +
		"   3600\n" +
		"   1209600\n" +
		"   300 )\n"
	single := "example.com. IN SOA ns1.example.com. admin.example.com. 1 7200 3600 1209600 300\n"

	a, err := Parse(multi, DefaultParseOptions())
	require.NoError(t, err)
	b, err := Parse(single, DefaultParseOptions())
	require.NoError(t, err)
	assert.Equal(t, b.Records, a.Records)
	assert.Equal(t, "example.com.", a.Origin)
}

func TestParse_InfersOriginFromSOA(t *testing.T) {
	zone, err := Parse("example.org 3600 IN SOA ns1 admin 1 2 3 4 5\nwww IN A 192.0.2.1\n", DefaultParseOptions())
	require.NoError(t, err)
	assert.Equal(t, "example.org.", zone.Origin)
	assert.Equal(t, "example.org.", zone.Records[0].Header().Name)
	assert.Equal(t, "www.example.org.", zone.Records[1].Header().Name)
}

func TestParse_OriginOption(t *testing.T) {
	zone, err := Parse("www IN A 192.0.2.1", ParseOptions{Origin: "example.net", DefaultTTL: 60, KeepTrailingDot: true})
	require.NoError(t, err)
	assert.Equal(t, "www.example.net.", zone.Records[0].Header().Name)
	assert.Equal(t, uint32(60), zone.Records[0].Header().TTL)
}

func TestParse_DropTrailingDot(t *testing.T) {
	zone, err := Parse(sampleZone, ParseOptions{PreserveSpacing: true})
	require.NoError(t, err)
	assert.Equal(t, "example.com", zone.Records[0].Header().Name)
	assert.Equal(t, "www.example.com", zone.Records[5].(*domain.CNAMERecord).Target)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     error
		wantLine int
	}{
		{"unterminated paren", "$ORIGIN example.com.\n@ IN SOA a b (\n 1 2 3", ErrUnterminatedParen, 2},
		{"missing type", "$ORIGIN example.com.\nwww 300 IN\n", ErrMissingType, 2},
		{"unknown type", "www IN BOGUS data\n", ErrUnknownType, 1},
		{"include", "$INCLUDE other.zone\n", ErrUnsupportedDirective, 1},
		{"generate", "$GENERATE 1-10 host$ A 10.0.0.$\n", ErrUnsupportedDirective, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone, err := Parse(tt.input, DefaultParseOptions())
			require.Error(t, err)
			assert.Nil(t, zone)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var le *LineError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, tt.wantLine, le.Line)
		})
	}
}

func TestParse_GenerateParseIsIdempotent(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"sample zone", sampleZone},
		{"zero ttl", "$ORIGIN example.com.\n$TTL 300\nhost 0 IN A 192.0.2.4\nwww IN A 192.0.2.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := Parse(tt.input, DefaultParseOptions())
			require.NoError(t, err)

			opts := DefaultGenerateOptions()
			opts.Origin = first.Origin
			opts.TTL = first.TTL
			opts.KeepHeaders = true
			g, err := NewGenerator(opts)
			require.NoError(t, err)
			text, err := g.GenerateTyped(first.Records)
			require.NoError(t, err)

			second, err := Parse(text, DefaultParseOptions())
			require.NoError(t, err)
			assert.Equal(t, first.Origin, second.Origin)
			assert.Equal(t, first.TTL, second.TTL)
			assert.Equal(t, first.Records, second.Records)
		})
	}
}

func TestParse_ZeroTTLIsKept(t *testing.T) {
	zone, err := Parse("$ORIGIN example.com.\n$TTL 300\nhost 0 IN A 192.0.2.4\n", DefaultParseOptions())
	require.NoError(t, err)
	require.Len(t, zone.Records, 1)
	assert.Equal(t, uint32(0), zone.Records[0].Header().TTL)

	g, err := NewGenerator(DefaultGenerateOptions())
	require.NoError(t, err)
	text, err := g.GenerateTyped(zone.Records)
	require.NoError(t, err)
	assert.Contains(t, text, "host.example.com.\t0\tIN\tA\t192.0.2.4\n")
}

func TestZone_Grouped(t *testing.T) {
	zone, err := Parse(sampleZone, DefaultParseOptions())
	require.NoError(t, err)
	groups := zone.Grouped()
	assert.Len(t, groups, 7)
	assert.Len(t, groups[domain.RRTypeA], 1)
}
