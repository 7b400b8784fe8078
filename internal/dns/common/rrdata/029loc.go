package rrdata

import (
	"strings"

	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// RFC 1876 defaults for the optional trailing LOC values, in meters.
const (
	locDefaultAltitude       = 0
	locDefaultSize           = 1
	locDefaultHorizPrecision = 10000
	locDefaultVertPrecision  = 10
)

// decodeLOC reads
//
//	d1 [m1 [s1]] {N|S} d2 [m2 [s2]] {E|W} [alt[m] [siz[m] [hp[m] [vp[m]]]]]
//
// Minutes and seconds are only consumed while the next token is not the
// hemisphere letter. A missing hemisphere defaults to N or E.
func decodeLOC(rr domain.ResourceRecord) *domain.LOCRecord {
	f := lexer.Fields(rr.RData)
	rec := &domain.LOCRecord{ResourceRecord: rr}

	i := 0
	rec.Latitude, i = decodeDMS(f, i, "N", "S")
	rec.Longitude, i = decodeDMS(f, i, "E", "W")

	rec.Altitude, i = locMeters(f, i, locDefaultAltitude, &rec.Meters)
	rec.Size, i = locMeters(f, i, locDefaultSize, &rec.Meters)
	rec.HorizPrecision, i = locMeters(f, i, locDefaultHorizPrecision, &rec.Meters)
	rec.VertPrecision, _ = locMeters(f, i, locDefaultVertPrecision, &rec.Meters)
	return rec
}

func decodeDMS(f []string, i int, pos, neg string) (domain.DMS, int) {
	isHemisphere := func(s string) bool {
		return strings.EqualFold(s, pos) || strings.EqualFold(s, neg)
	}
	d := domain.DMS{Hemisphere: pos}
	d.Degrees = parseUint[uint16](field(f, i))
	i++
	if i < len(f) && !isHemisphere(f[i]) {
		d.Minutes = parseFloat(f[i])
		i++
	}
	if i < len(f) && !isHemisphere(f[i]) {
		d.Seconds = parseFloat(f[i])
		i++
	}
	if i < len(f) && isHemisphere(f[i]) {
		d.Hemisphere = strings.ToUpper(f[i])
		i++
	}
	return d, i
}

// locMeters parses an optional distance with an optional "m" unit suffix.
func locMeters(f []string, i int, def float64, meters *bool) (float64, int) {
	if i >= len(f) {
		return def, i
	}
	tok, trimmed := TrimMeters(f[i])
	if trimmed {
		*meters = true
	}
	return parseFloat(tok), i + 1
}

// TrimMeters strips a trailing "m" or "M" unit and reports whether one was present.
func TrimMeters(s string) (string, bool) {
	if n := len(s); n > 0 && (s[n-1] == 'm' || s[n-1] == 'M') {
		return s[:n-1], true
	}
	return s, false
}

func encodeLOC(r *domain.LOCRecord) string {
	unit := ""
	if r.Meters {
		unit = "m"
	}
	return join(
		encodeDMS(r.Latitude, "N"),
		encodeDMS(r.Longitude, "E"),
		formatFloat(r.Altitude)+unit,
		formatFloat(r.Size)+unit,
		formatFloat(r.HorizPrecision)+unit,
		formatFloat(r.VertPrecision)+unit,
	)
}

func encodeDMS(d domain.DMS, def string) string {
	hemi := d.Hemisphere
	if hemi == "" {
		hemi = def
	}
	return join(formatUint(d.Degrees), formatFloat(d.Minutes), formatFloat(d.Seconds), strings.ToUpper(hemi))
}
