package zone

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"

	"github.com/haukened/rr-zone/internal/dns/services/zonefile"
)

// LoadFieldMap reads a per-type field map for zonefile.GenerateOptions.
// value is either an inline JSON object or the path of a YAML, JSON or TOML
// file, shaped as
//
//	{"MX": {"priority": "pref", "exchange": "host"}, "*": {"name": "fqdn"}}
//
// Type keys are matched case-insensitively. An empty value yields a nil map.
func LoadFieldMap(value string) (zonefile.FieldMap, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	k := koanf.New(keyDelim)
	if strings.HasPrefix(value, "{") {
		if err := k.Load(rawbytes.Provider([]byte(value)), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load inline field map: %w", err)
		}
		return fieldMap(k.Raw(), "inline field map")
	}

	parser, err := parserFor(filepath.Ext(value))
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(value), parser); err != nil {
		return nil, fmt.Errorf("failed to load field map %s: %w", value, err)
	}
	return fieldMap(k.Raw(), value)
}

// fieldMap validates the decoded shape: type keys holding string-to-string maps.
func fieldMap(raw map[string]any, source string) (zonefile.FieldMap, error) {
	types := make([]string, 0, len(raw))
	for t := range raw {
		types = append(types, t)
	}
	sort.Strings(types)

	fm := make(zonefile.FieldMap, len(raw))
	for _, t := range types {
		section, ok := stringMap(raw[t])
		if !ok {
			return nil, fmt.Errorf("invalid field map in %s: %q is not an object", source, t)
		}
		fields := make(map[string]string, len(section))
		for canonical, v := range section {
			key, ok := v.(string)
			if !ok || key == "" {
				return nil, fmt.Errorf("invalid field map in %s: %s.%s must name a field", source, t, canonical)
			}
			fields[canonical] = key
		}
		fm[strings.ToUpper(t)] = fields
	}
	return fm, nil
}
