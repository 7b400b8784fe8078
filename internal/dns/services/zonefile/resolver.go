package zonefile

import (
	"fmt"
	"strings"

	"github.com/haukened/rr-zone/internal/dns/common/lexer"
	"github.com/haukened/rr-zone/internal/dns/common/log"
	"github.com/haukened/rr-zone/internal/dns/common/rrdata"
	"github.com/haukened/rr-zone/internal/dns/common/utils"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// maxPrefixTokens is the most tokens that may precede the type: owner, TTL and class.
const maxPrefixTokens = 3

// parseContext is the mutable state of one Parse call.
type parseContext struct {
	origin     string
	defaultTTL uint32
	lastOwner  string
	opts       ParseOptions
	log        log.Logger
}

func newParseContext(opts ParseOptions, logger log.Logger) *parseContext {
	pc := &parseContext{defaultTTL: DefaultTTL, opts: opts, log: logger}
	if opts.Origin != "" {
		pc.origin = utils.AbsoluteName(strings.ToLower(opts.Origin))
	}
	if opts.DefaultTTL != 0 {
		pc.defaultTTL = opts.DefaultTTL
	}
	return pc
}

func isDirective(l logicalLine) bool {
	return strings.HasPrefix(l.Text, "$")
}

// applyDirective handles $ORIGIN and $TTL.
func (pc *parseContext) applyDirective(l logicalLine) error {
	fields := lexer.Fields(strings.ToLower(l.Text))
	name := fields[0]
	switch name {
	case "$origin", "$ttl":
	default:
		return &LineError{Line: l.Line, Text: l.Text, Err: fmt.Errorf("%w: %s", ErrUnsupportedDirective, name)}
	}
	if len(fields) < 2 {
		return &LineError{Line: l.Line, Text: l.Text, Err: fmt.Errorf("%w: %s needs a value", ErrMalformedDirective, name)}
	}

	value := fields[1]
	if name == "$ttl" {
		pc.defaultTTL = NormalizeTTL(value)
		pc.log.Debug(map[string]any{"line": l.Line, "ttl": pc.defaultTTL}, "default TTL set")
		return nil
	}
	if !utils.IsAbsolute(value) && pc.origin != "" {
		value = utils.Qualify(value, pc.origin)
	}
	pc.origin = utils.AbsoluteName(value)
	pc.lastOwner = pc.origin
	pc.log.Debug(map[string]any{"line": l.Line, "origin": pc.origin}, "origin set")
	return nil
}

// resolve splits a logical record line into its generic record.
func (pc *parseContext) resolve(l logicalLine) (domain.ResourceRecord, error) {
	toks := lexer.Tokens(l.Text)
	blank := l.blankOwner()

	typeIdx, err := locateType(toks, blank)
	if err != nil {
		return domain.ResourceRecord{}, &LineError{Line: l.Line, Text: strings.TrimSpace(l.Text), Err: err}
	}
	rrType := domain.RRTypeFromString(toks[typeIdx].Text)
	rdata := strings.TrimSpace(l.Text[toks[typeIdx].End:])

	prefix := toks[:typeIdx]
	if len(prefix) > maxPrefixTokens {
		pc.log.Debug(map[string]any{"line": l.Line, "ignored": len(prefix) - maxPrefixTokens}, "extra tokens before type ignored")
	}
	owner, ttl, class := pc.disambiguate(prefix, blank)

	owner = strings.ToLower(owner)
	if pc.origin == "" && rrType == domain.RRTypeSOA && owner != "@" {
		// The SOA owner defines the origin, so it is absolute by definition.
		pc.origin = utils.AbsoluteName(owner)
		owner = pc.origin
		pc.log.Debug(map[string]any{"line": l.Line, "origin": pc.origin}, "origin taken from SOA owner")
	}

	pc.lastOwner = owner

	name := pc.qualify(owner)
	if rrType == domain.RRTypeCNAME {
		rdata = pc.qualify(rdata)
	}

	return domain.ResourceRecord{
		Name:  name,
		TTL:   ttl,
		Class: class,
		Type:  rrType,
		RData: rrdata.Normalize(rrType, rdata, pc.opts.PreserveSpacing),
	}, nil
}

// disambiguate assigns the owner, TTL and class from the tokens before the
// type. The tokens are read nearest-to-type first; blank means the line
// started with whitespace and the owner is inherited.
func (pc *parseContext) disambiguate(prefix []lexer.Token, blank bool) (string, uint32, domain.RRClass) {
	var near []string
	for i := len(prefix) - 1; i >= 0 && len(near) < maxPrefixTokens; i-- {
		near = append(near, prefix[i].Text)
	}

	owner := pc.inheritedOwner()
	ttl := pc.defaultTTL
	class := domain.RRClassIN

	switch len(near) {
	case 0:
	case 1:
		first := near[0]
		switch {
		case domain.IsClassKeyword(first) && blank:
			class = domain.ParseRRClass(first)
		case domain.IsClassKeyword(first):
			owner = first
		case blank:
			ttl = NormalizeTTL(first)
		default:
			owner = first
		}
	case 2:
		first, second := near[0], near[1]
		if domain.IsClassKeyword(first) {
			class = domain.ParseRRClass(first)
			if blank {
				ttl = NormalizeTTL(second)
			} else {
				owner = second
			}
		} else {
			ttl = NormalizeTTL(first)
			if blank {
				class = classOrIN(second)
			} else {
				owner = second
			}
		}
	default:
		first, second, third := near[0], near[1], near[2]
		if domain.IsClassKeyword(first) {
			class = domain.ParseRRClass(first)
			ttl = NormalizeTTL(second)
		} else {
			ttl = NormalizeTTL(first)
			class = classOrIN(second)
		}
		owner = third
	}
	return owner, ttl, class
}

func (pc *parseContext) inheritedOwner() string {
	if pc.lastOwner != "" {
		return pc.lastOwner
	}
	return "@"
}

// qualify expands name against the current origin and applies the trailing-dot policy.
func (pc *parseContext) qualify(name string) string {
	name = utils.Qualify(name, pc.origin)
	if !pc.opts.KeepTrailingDot {
		name = utils.TrimDot(name)
	}
	return name
}

func classOrIN(s string) domain.RRClass {
	if c := domain.ParseRRClass(s); c != 0 {
		return c
	}
	return domain.RRClassIN
}

// locateType returns the index of the record type token. It prefers the first
// type mnemonic whose preceding tokens form a legal prefix (owner in column 0,
// then only TTL and class tokens). Failing that, it falls back to the last
// type mnemonic before the first quoted token.
func locateType(toks []lexer.Token, blank bool) (int, error) {
	minIdx := 1
	if blank {
		minIdx = 0
	}

	fallback := -1
	for i := minIdx; i < len(toks); i++ {
		if toks[i].Quoted {
			break
		}
		if !domain.RRTypeFromString(toks[i].Text).IsValid() {
			continue
		}
		if legalPrefix(toks[minIdx:i]) {
			return i, nil
		}
		fallback = i
	}
	if fallback >= 0 {
		return fallback, nil
	}

	for i := minIdx; i+1 < len(toks); i++ {
		if domain.IsClassKeyword(toks[i].Text) && legalPrefix(toks[minIdx:i]) {
			return 0, fmt.Errorf("%w: %s", ErrUnknownType, toks[i+1].Text)
		}
	}
	return 0, ErrMissingType
}

// legalPrefix reports whether every token is a TTL or class keyword, with at
// most one of each.
func legalPrefix(toks []lexer.Token) bool {
	if len(toks) > 2 {
		return false
	}
	var ttls, classes int
	for _, t := range toks {
		switch {
		case domain.IsClassKeyword(t.Text):
			classes++
		case isTTL(t.Text):
			ttls++
		default:
			return false
		}
	}
	return ttls <= 1 && classes <= 1
}
