package domain

import (
	"fmt"
	"strings"
)

// RRClass represents a DNS class (usually IN for Internet).
type RRClass uint16

// DNS Resource Record Class constants
const (
	RRClassIN RRClass = 1 // IN - Internet
	RRClassCS RRClass = 2 // CS - CSNET (obsolete)
	RRClassCH RRClass = 3 // CH - Chaos
	RRClassHS RRClass = 4 // HS - Hesiod
)

// IsValid returns true if the RRClass is one of the supported classes.
func (c RRClass) IsValid() bool {
	switch c {
	case RRClassIN, RRClassCS, RRClassCH, RRClassHS:
		return true
	default:
		return false
	}
}

// String returns the textual representation of the RRClass.
func (c RRClass) String() string {
	switch c {
	case RRClassIN:
		return "IN"
	case RRClassCS:
		return "CS"
	case RRClassCH:
		return "CH"
	case RRClassHS:
		return "HS"
	default:
		return "UNKNOWN"
	}
}

// ParseRRClass converts a class keyword (any case) to an RRClass value.
// Unknown keywords return 0.
func ParseRRClass(s string) RRClass {
	switch strings.ToUpper(s) {
	case "IN":
		return RRClassIN
	case "CS":
		return RRClassCS
	case "CH":
		return RRClassCH
	case "HS":
		return RRClassHS
	default:
		return 0
	}
}

// IsClassKeyword reports whether s is a class keyword in any case.
func IsClassKeyword(s string) bool {
	return ParseRRClass(s) != 0
}

// MarshalText renders the class keyword; the zero value renders as IN.
func (c RRClass) MarshalText() ([]byte, error) {
	if c == 0 {
		c = RRClassIN
	}
	if !c.IsValid() {
		return nil, fmt.Errorf("unsupported record class %d", uint16(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText accepts a class keyword in any case; empty input means IN.
func (c *RRClass) UnmarshalText(b []byte) error {
	if len(strings.TrimSpace(string(b))) == 0 {
		*c = RRClassIN
		return nil
	}
	v := ParseRRClass(strings.TrimSpace(string(b)))
	if v == 0 {
		return fmt.Errorf("unsupported record class %q", string(b))
	}
	*c = v
	return nil
}
