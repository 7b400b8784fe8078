package zone

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/knadh/koanf"
	jsonparser "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"

	"github.com/haukened/rr-zone/internal/dns/domain"
	"github.com/haukened/rr-zone/internal/dns/services/zonefile"
)

// document is the structured form of a zone. Records is either a flat list or
// a map from type name to list.
type document struct {
	Origin  string `json:"origin,omitempty"`
	TTL     uint32 `json:"ttl"`
	Records any    `json:"records"`
}

// WriteRecords writes z to w as JSON, YAML or TOML. flatten writes a single
// record list in source order; otherwise records are grouped by type.
func WriteRecords(w io.Writer, z *zonefile.Zone, format string, flatten bool) error {
	parser, err := parserFor(format)
	if err != nil {
		return err
	}

	doc := document{Origin: z.Origin, TTL: z.TTL}
	if flatten {
		recs := z.Records
		if recs == nil {
			recs = []domain.TypedRecord{}
		}
		doc.Records = recs
	} else {
		grouped := make(map[string][]domain.TypedRecord)
		for t, recs := range z.Grouped() {
			grouped[t.String()] = recs
		}
		doc.Records = grouped
	}

	// Typed records render through their JSON tags and text marshalers, then
	// load into koanf so every output format sees the same tree.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode zone: %w", err)
	}
	k := koanf.New(keyDelim)
	if err := k.Load(rawbytes.Provider(b), jsonparser.Parser()); err != nil {
		return fmt.Errorf("failed to load encoded zone: %w", err)
	}

	out, err := parser.Marshal(integers(k.Raw()).(map[string]any))
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", format, err)
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// integers turns whole float64 values back into int64 so YAML and TOML do not
// render counters like TTLs as floats.
func integers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = integers(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = integers(val)
		}
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return int64(t)
		}
		return t
	default:
		return v
	}
}
