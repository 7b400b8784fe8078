// Package zonefile converts between BIND master file text and typed records.
//
// Parse runs the sanitizer, resolves owner, TTL and class for every record and
// decodes the RDATA through the rrdata codec table. Generate runs the inverse:
// loosely typed input records are normalized, encoded and assembled into a
// zone document.
package zonefile

import (
	"github.com/haukened/rr-zone/internal/dns/common/log"
	"github.com/haukened/rr-zone/internal/dns/common/rrdata"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// ParseOptions controls how zone text is interpreted.
type ParseOptions struct {
	// PreserveSpacing joins multiple TXT/SPF strings with a space instead of nothing.
	PreserveSpacing bool
	// KeepTrailingDot keeps the root dot on qualified owner names and CNAME targets.
	KeepTrailingDot bool
	// Origin seeds the origin before any $ORIGIN directive or SOA record.
	Origin string
	// DefaultTTL seeds the default TTL; 0 means DefaultTTL.
	DefaultTTL uint32
	Logger     log.Logger
}

// DefaultParseOptions returns options with spacing and trailing dots preserved.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{PreserveSpacing: true, KeepTrailingDot: true}
}

// Parse converts master file text into a Zone. It stops at the first
// structural error, which is returned as a *LineError.
func Parse(input string, opts ParseOptions) (*Zone, error) {
	logger := log.With(opts.Logger, map[string]any{"component": "zonefile.parse"})

	lines, err := sanitize(input)
	if err != nil {
		return nil, err
	}

	pc := newParseContext(opts, logger)
	zone := &Zone{}
	for _, l := range lines {
		if isDirective(l) {
			if err := pc.applyDirective(l); err != nil {
				return nil, err
			}
			continue
		}
		rr, err := pc.resolve(l)
		if err != nil {
			return nil, err
		}
		rec, err := rrdata.Decode(rr)
		if err != nil {
			return nil, &LineError{Line: l.Line, Text: l.Text, Err: err}
		}
		zone.Records = append(zone.Records, rec)
	}

	zone.Origin = pc.origin
	zone.TTL = pc.defaultTTL
	logger.Debug(map[string]any{
		"origin":  zone.Origin,
		"ttl":     zone.TTL,
		"lines":   len(lines),
		"records": len(zone.Records),
	}, "zone parsed")
	return zone, nil
}

// Zone is the result of parsing one master file.
type Zone struct {
	Origin  string               `json:"origin,omitempty"`
	TTL     uint32               `json:"ttl"`
	Records []domain.TypedRecord `json:"records"`
}

// Types returns the record types present, in first-seen order.
func (z *Zone) Types() []domain.RRType {
	seen := make(map[domain.RRType]bool)
	var types []domain.RRType
	for _, r := range z.Records {
		t := r.Header().Type
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	return types
}

// Grouped returns the records keyed by type, each group in source order.
func (z *Zone) Grouped() map[domain.RRType][]domain.TypedRecord {
	groups := make(map[domain.RRType][]domain.TypedRecord)
	for _, r := range z.Records {
		t := r.Header().Type
		groups[t] = append(groups[t], r)
	}
	return groups
}
