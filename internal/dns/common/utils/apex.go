package utils

import "golang.org/x/net/publicsuffix"

// ZoneApex returns the registrable domain (eTLD+1) of name in absolute form,
// e.g. "www.example.co.uk." gives "example.co.uk.". Names that have no
// registrable part fall back to the canonical name itself.
func ZoneApex(name string) string {
	name = CanonicalDNSName(name)
	if name == "" {
		return ""
	}
	apex, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		apex = name
	}
	return AbsoluteName(apex)
}
