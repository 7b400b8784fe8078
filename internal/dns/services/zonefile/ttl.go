package zonefile

import (
	"math"
	"strconv"
	"strings"
)

// DefaultTTL applies when neither the record nor a $TTL directive sets one.
const DefaultTTL uint32 = 3600

var ttlUnits = map[byte]float64{
	's': 1,
	'm': 60,
	'h': 3600,
	'd': 86400,
	'w': 604800,
}

// NormalizeTTL converts a TTL token to seconds. It accepts plain seconds
// ("300"), a number with a unit ("1h", "1.5d") and BIND compound forms
// ("1h30m"). Anything else yields DefaultTTL.
func NormalizeTTL(s string) uint32 {
	if v, ok := parseTTL(s); ok {
		return v
	}
	return DefaultTTL
}

// isTTL reports whether s is a TTL token that NormalizeTTL would accept.
func isTTL(s string) bool {
	_, ok := parseTTL(s)
	return ok
}

func parseTTL(s string) (uint32, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32(v), true
	}

	var total float64
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
			j++
		}
		if j == i || j == len(s) {
			return 0, false
		}
		num, err := strconv.ParseFloat(s[i:j], 64)
		if err != nil {
			return 0, false
		}
		unit, ok := ttlUnits[s[j]]
		if !ok {
			return 0, false
		}
		total += num * unit
		i = j + 1
	}
	if total > math.MaxUint32 {
		return 0, false
	}
	return uint32(total), true
}
