// Package lexer holds the quote-aware scanning primitives shared by the zone file
// sanitizer, the record resolver and the RDATA decoders. A double quote opens or
// closes a quoted span unless it is escaped by a backslash; whitespace, comment
// markers and parentheses inside a quoted span are literal.
package lexer

import "strings"

// Token is one presentation-format word. Quoted spans are atomic, so a token may
// contain whitespace. Start and End are byte offsets into the scanned string.
type Token struct {
	Text   string
	Start  int
	End    int
	Quoted bool
}

// scan visits every byte of s. inQuote is the quote state before the byte is
// applied; escaped is true when the byte follows an unescaped backslash.
// Returning false stops the walk.
func scan(s string, visit func(i int, c byte, inQuote, escaped bool) bool) {
	inQuote, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !visit(i, c, inQuote, escaped) {
			return
		}
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '"':
			inQuote = !inQuote
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// IndexUnquoted returns the index of the first occurrence of c outside quoted
// spans and not escaped, or -1.
func IndexUnquoted(s string, c byte) int {
	idx := -1
	scan(s, func(i int, b byte, inQuote, escaped bool) bool {
		if b == c && !inQuote && !escaped {
			idx = i
			return false
		}
		return true
	})
	return idx
}

// ContainsUnquoted reports whether c occurs outside quoted spans.
func ContainsUnquoted(s string, c byte) bool {
	return IndexUnquoted(s, c) >= 0
}

// RemoveUnquoted drops every unquoted, unescaped occurrence of c.
func RemoveUnquoted(s string, c byte) string {
	if !ContainsUnquoted(s, c) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	scan(s, func(_ int, ch byte, inQuote, escaped bool) bool {
		if ch != c || inQuote || escaped {
			b.WriteByte(ch)
		}
		return true
	})
	return b.String()
}

// StripComment removes everything from the first unquoted ';' and trims
// trailing whitespace. Leading whitespace is kept.
func StripComment(line string) string {
	if i := IndexUnquoted(line, ';'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimRight(line, " \t\r")
}

// Tokens splits s on unquoted whitespace.
func Tokens(s string) []Token {
	var toks []Token
	start := -1
	quoted := false
	scan(s, func(i int, c byte, inQuote, escaped bool) bool {
		if isSpace(c) && !inQuote && !escaped {
			if start >= 0 {
				toks = append(toks, Token{Text: s[start:i], Start: start, End: i, Quoted: quoted})
				start, quoted = -1, false
			}
			return true
		}
		if start < 0 {
			start = i
		}
		if c == '"' && !escaped {
			quoted = true
		}
		return true
	})
	if start >= 0 {
		toks = append(toks, Token{Text: s[start:], Start: start, End: len(s), Quoted: quoted})
	}
	return toks
}

// Fields returns the text of each token in s.
func Fields(s string) []string {
	toks := Tokens(s)
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

// QuotedSpans returns the inner text of every quoted span in s, escapes intact.
// An unterminated span runs to the end of s.
func QuotedSpans(s string) []string {
	var spans []string
	open := -1
	scan(s, func(i int, c byte, inQuote, escaped bool) bool {
		if c != '"' || escaped {
			return true
		}
		if !inQuote {
			open = i + 1
		} else {
			spans = append(spans, s[open:i])
			open = -1
		}
		return true
	})
	if open >= 0 {
		spans = append(spans, s[open:])
	}
	return spans
}

// CollapseSpace trims s and replaces each run of unquoted whitespace with a
// single space. Whitespace inside quoted spans is untouched.
func CollapseSpace(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	scan(s, func(_ int, c byte, inQuote, escaped bool) bool {
		if isSpace(c) && !inQuote && !escaped {
			pending = true
			return true
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteByte(c)
		return true
	})
	return b.String()
}

// Unquote strips one enclosing pair of double quotes.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// StripQuotes removes every double quote that is not escaped.
func StripQuotes(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	scan(s, func(_ int, c byte, _, escaped bool) bool {
		if c != '"' || escaped {
			b.WriteByte(c)
		}
		return true
	})
	return b.String()
}

// Quote wraps s in double quotes, escaping any quote that is not already escaped.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	if escaped {
		b.WriteByte('\\')
	}
	b.WriteByte('"')
	return b.String()
}
