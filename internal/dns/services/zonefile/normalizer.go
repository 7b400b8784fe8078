package zonefile

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/haukened/rr-zone/internal/dns/common/rrdata"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// InputRecord is a loosely typed record as read from JSON, YAML or TOML:
// header keys (name, ttl, class, type, rdata) plus the type's own fields.
type InputRecord map[string]any

// FieldMap renames caller keys to canonical field names, per record type:
// FieldMap["MX"]["priority"] = "pref" reads MX priorities from "pref".
// The "*" entry applies to every type.
type FieldMap map[string]map[string]string

const anyType = "*"

var headerKeys = map[string]bool{"name": true, "ttl": true, "class": true, "type": true, "rdata": true}

var locDistanceKeys = []string{"altitude", "size", "horizPrecision", "vertPrecision"}

// normalizer turns InputRecords into typed records. Records without a ttl
// key get ttl; an explicit 0 is kept.
type normalizer struct {
	fields FieldMap
	ttl    uint32
}

func (n normalizer) normalize(in InputRecord) (domain.TypedRecord, error) {
	m := n.remap(in, anyType)

	rrType, err := inputType(m["type"])
	if err != nil {
		return nil, err
	}
	m = n.remap(m, rrType.String())

	if name, _ := m["name"].(string); strings.TrimSpace(name) == "" {
		return nil, ErrMissingName
	}
	switch v := m["ttl"].(type) {
	case nil:
		m["ttl"] = n.ttl
	case string:
		if strings.TrimSpace(v) == "" {
			m["ttl"] = n.ttl
		} else {
			m["ttl"] = NormalizeTTL(v)
		}
	}
	if rrType == domain.RRTypeLOC {
		for _, k := range locDistanceKeys {
			if s, ok := m[k].(string); ok {
				v, trimmed := rrdata.TrimMeters(strings.TrimSpace(s))
				m[k] = v
				if trimmed {
					m["meters"] = true
				}
			}
		}
	}

	rec, err := rrdata.New(rrType)
	if err != nil {
		return nil, err
	}
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		Metadata:         &md,
		Result:           rec,
		Squash:           true,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(map[string]any(m)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidField, err)
	}

	if rdata, ok := m["rdata"].(string); ok && rdata != "" && !hasTypedFields(md.Keys) {
		rr := *rec.Header()
		rr.RData = rrdata.Normalize(rrType, rdata, true)
		return rrdata.Decode(rr)
	}
	return rec, nil
}

// remap copies in, renaming the caller keys configured for section.
func (n normalizer) remap(in map[string]any, section string) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	for canonical, key := range n.fields[section] {
		if v, ok := in[key]; ok {
			delete(out, key)
			out[canonical] = v
		}
	}
	return out
}

func inputType(v any) (domain.RRType, error) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return 0, ErrMissingType
	}
	t := domain.RRTypeFromString(s)
	if !t.IsValid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownType, s)
	}
	return t, nil
}

func hasTypedFields(keys []string) bool {
	for _, k := range keys {
		if !headerKeys[k] {
			return true
		}
	}
	return false
}
