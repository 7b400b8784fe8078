// Package utils holds small name helpers shared by the zone codec and its repositories.
package utils

import (
	"strings"

	"github.com/miekg/dns"
)

// CanonicalDNSName lowercases and trims a name and drops every trailing dot.
// It is the key form used by the archive indexes.
func CanonicalDNSName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimRight(name, ".")
}

// IsAbsolute reports whether name ends with the root label.
func IsAbsolute(name string) bool {
	return strings.HasSuffix(name, ".")
}

// AbsoluteName returns name with exactly one trailing dot. The root stays ".".
func AbsoluteName(name string) string {
	name = strings.TrimRight(strings.TrimSpace(name), ".")
	return name + "."
}

// Qualify expands a zone file name against origin: "@" becomes the origin,
// absolute names are returned as is and relative names get ".origin" appended.
// With an empty origin a relative name is returned unchanged.
func Qualify(name, origin string) string {
	switch {
	case name == "@":
		if origin == "" {
			return name
		}
		return origin
	case IsAbsolute(name), origin == "":
		return name
	case origin == ".":
		return name + "."
	default:
		return name + "." + origin
	}
}

// TrimDot removes a single trailing dot unless name is the root.
func TrimDot(name string) string {
	if len(name) > 1 && IsAbsolute(name) {
		return name[:len(name)-1]
	}
	return name
}

// IsDomainName reports whether s is a syntactically valid presentation-format
// domain name, relative or absolute. "@" is accepted as the origin shorthand.
func IsDomainName(s string) bool {
	if s == "@" {
		return true
	}
	if s == "" {
		return false
	}
	_, ok := dns.IsDomainName(s)
	return ok
}
