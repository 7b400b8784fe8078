// Package zone provides file I/O for zones: BIND master files in a directory,
// structured record files in YAML, JSON or TOML, and structured output of
// parsed zones in the same formats.
package zone

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"

	"github.com/haukened/rr-zone/internal/dns/common/utils"
	"github.com/haukened/rr-zone/internal/dns/services/zonefile"
)

// keyDelim separates koanf key paths. Owner names contain dots, so "." cannot be used.
const keyDelim = "/"

var zoneFileExts = map[string]bool{".zone": true, ".db": true}

// ErrUnsupportedFormat is returned for a file extension or format name with no parser.
var ErrUnsupportedFormat = errors.New("unsupported format")

// RecordFile is a structured record file: an optional origin and default TTL
// plus loosely typed records ready for zonefile.Generate.
type RecordFile struct {
	Origin  string
	TTL     uint32
	Records []zonefile.InputRecord
}

// LoadZoneDirectory walks dir, parsing every master file (*.zone, *.db)
// and returning the zones keyed by origin. Files that share an origin are merged
// and files without records are skipped.
// Returns an error if any file fails to parse.
func LoadZoneDirectory(dir string, opts zonefile.ParseOptions) (map[string]*zonefile.Zone, error) {
	zones := make(map[string]*zonefile.Zone)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if !zoneFileExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		z, err := LoadZoneFile(path, opts)
		if err != nil {
			return fmt.Errorf("error parsing zone file %s: %w", path, err)
		}
		if len(z.Records) == 0 {
			return nil
		}
		key := zoneKey(z)
		if key == "" {
			return fmt.Errorf("zone file %s has no origin", path)
		}
		if prev, ok := zones[key]; ok {
			prev.Records = append(prev.Records, z.Records...)
			return nil
		}
		zones[key] = z
		return nil
	})
	if err != nil {
		return nil, err
	}
	return zones, nil
}

// LoadZoneFile reads and parses one master file.
func LoadZoneFile(path string, opts zonefile.ParseOptions) (*zonefile.Zone, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zone file %s: %w", path, err)
	}
	return zonefile.Parse(string(b), opts)
}

// zoneKey is the origin of z, or the registrable domain of its first record.
func zoneKey(z *zonefile.Zone) string {
	if z.Origin != "" {
		return utils.AbsoluteName(z.Origin)
	}
	if len(z.Records) > 0 {
		return utils.ZoneApex(z.Records[0].Header().Name)
	}
	return ""
}

// parserFor picks the koanf parser for a file extension or format name.
func parserFor(format string) (koanf.Parser, error) {
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "yaml", "yml":
		return yaml.Parser(), nil
	case "json":
		return json.Parser(), nil
	case "toml":
		return toml.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// LoadRecordFile reads a YAML, JSON or TOML record file. Records come from a
// "records" list of objects, and from owner sections in the form
//
//	zone_root: example.com
//	www:
//	  A: ["192.0.2.1", "192.0.2.2"]
//
// where each value is the record's RDATA text. "origin" and "zone_root" are
// synonyms; "ttl" accepts any TTL form.
func LoadRecordFile(path string) (*RecordFile, error) {
	parser, err := parserFor(filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	k := koanf.New(keyDelim)
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to load record file %s: %w", path, err)
	}
	return recordFile(k, path)
}

// ReadRecords decodes a record file held in memory, in the named format.
func ReadRecords(data []byte, format string) (*RecordFile, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}

	k := koanf.New(keyDelim)
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("failed to load %s records: %w", format, err)
	}
	return recordFile(k, format+" input")
}

// recordFile extracts a RecordFile from loaded keys; source names it in errors.
func recordFile(k *koanf.Koanf, source string) (*RecordFile, error) {
	rf := &RecordFile{Origin: k.String("origin")}
	if rf.Origin == "" {
		rf.Origin = k.String("zone_root")
	}
	if rf.Origin != "" {
		rf.Origin = utils.AbsoluteName(strings.ToLower(rf.Origin))
	}
	if k.Exists("ttl") {
		rf.TTL = zonefile.NormalizeTTL(k.String("ttl"))
	}

	raw := k.Raw()
	list, err := recordList(raw["records"])
	if err != nil {
		return nil, fmt.Errorf("invalid records in %s: %w", source, err)
	}
	rf.Records = append(rf.Records, list...)

	owners := make([]string, 0, len(raw))
	for name := range raw {
		switch name {
		case "origin", "zone_root", "ttl", "records":
			continue
		}
		owners = append(owners, name)
	}
	sort.Strings(owners)
	for _, name := range owners {
		section, ok := stringMap(raw[name])
		if !ok {
			continue
		}
		rf.Records = append(rf.Records, ownerRecords(expandName(name, rf.Origin), section)...)
	}
	return rf, nil
}

// recordList converts a decoded "records" value into InputRecords.
func recordList(v any) ([]zonefile.InputRecord, error) {
	if v == nil {
		return nil, nil
	}
	var items []any
	switch l := v.(type) {
	case []any:
		items = l
	case []map[string]any:
		for _, m := range l {
			items = append(items, m)
		}
	default:
		return nil, fmt.Errorf("records must be a list, got %T", v)
	}

	out := make([]zonefile.InputRecord, 0, len(items))
	for i, item := range items {
		m, ok := stringMap(item)
		if !ok {
			return nil, fmt.Errorf("record %d is not an object", i)
		}
		out = append(out, zonefile.InputRecord(m))
	}
	return out, nil
}

// ownerRecords builds one InputRecord per RDATA value in an owner section.
func ownerRecords(name string, section map[string]any) []zonefile.InputRecord {
	types := make([]string, 0, len(section))
	for t := range section {
		types = append(types, t)
	}
	sort.Strings(types)

	var out []zonefile.InputRecord
	for _, t := range types {
		for _, rdata := range toStringValues(section[t]) {
			out = append(out, zonefile.InputRecord{"name": name, "type": t, "rdata": rdata})
		}
	}
	return out
}

// stringMap normalizes the map types produced by the YAML, JSON and TOML decoders.
func stringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// expandName returns the fully qualified name for an owner label, expanding '@'
// to the origin and appending the origin when the label is not already absolute.
func expandName(label, origin string) string {
	return utils.Qualify(strings.ToLower(label), origin)
}

// toStringValues converts a decoded value (string or list of strings) into its
// non-empty strings. Other element types are skipped.
func toStringValues(val any) []string {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		return []string{s}
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}
