package archive

import (
	"github.com/haukened/rr-zone/internal/dns/domain"
	"github.com/haukened/rr-zone/internal/dns/services/zonefile"
)

// zoneFileCodec stores zones as plain master file text.
type zoneFileCodec struct{}

// NewZoneFileCodec returns a Codec backed by the zone file generator and parser.
func NewZoneFileCodec() Codec { return zoneFileCodec{} }

func (zoneFileCodec) Encode(origin string, records []domain.TypedRecord) ([]byte, error) {
	opts := zonefile.DefaultGenerateOptions()
	opts.Origin = origin
	opts.KeepComments = false
	g, err := zonefile.NewGenerator(opts)
	if err != nil {
		return nil, err
	}
	text, err := g.GenerateTyped(records)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

func (zoneFileCodec) Decode(origin string, text []byte) ([]domain.TypedRecord, error) {
	opts := zonefile.DefaultParseOptions()
	opts.Origin = origin
	z, err := zonefile.Parse(string(text), opts)
	if err != nil {
		return nil, err
	}
	return z.Records, nil
}
