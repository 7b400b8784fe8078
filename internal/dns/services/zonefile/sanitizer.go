package zonefile

import (
	"strings"

	"github.com/haukened/rr-zone/internal/dns/common/lexer"
)

// logicalLine is one record or directive after comments are stripped and
// parenthesized continuations are joined. Line is the 1-based source line it
// started on. A leading space marks an omitted owner name.
type logicalLine struct {
	Text string
	Line int
}

func (l logicalLine) blankOwner() bool {
	return strings.HasPrefix(l.Text, " ")
}

// sanitize turns raw zone text into logical lines.
func sanitize(input string) ([]logicalLine, error) {
	var (
		out   []logicalLine
		buf   strings.Builder
		open  bool
		start int
	)

	for i, raw := range strings.Split(input, "\n") {
		n := i + 1
		raw = strings.TrimSuffix(raw, "\r")
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}

		line := lexer.StripComment(raw)
		if strings.TrimSpace(line) == "" {
			continue
		}
		opens := lexer.ContainsUnquoted(line, '(')
		closes := lexer.ContainsUnquoted(line, ')')
		line = lexer.RemoveUnquoted(lexer.RemoveUnquoted(line, '('), ')')

		switch {
		case !open && opens && !closes:
			open, start = true, n
			buf.Reset()
			buf.WriteString(line)
		case !open:
			if ll, ok := cleanLine(line, n); ok {
				out = append(out, ll)
			}
		case closes:
			buf.WriteByte(' ')
			buf.WriteString(strings.TrimSpace(line))
			open = false
			if ll, ok := cleanLine(buf.String(), start); ok {
				out = append(out, ll)
			}
		default:
			buf.WriteByte(' ')
			buf.WriteString(strings.TrimSpace(line))
		}
	}

	if open {
		return nil, &LineError{Line: start, Text: strings.TrimSpace(buf.String()), Err: ErrUnterminatedParen}
	}
	return out, nil
}

// cleanLine collapses unquoted whitespace, keeping a single leading space when
// the source line started with blank space.
func cleanLine(s string, n int) (logicalLine, bool) {
	blank := len(s) > 0 && (s[0] == ' ' || s[0] == '\t')
	text := lexer.CollapseSpace(s)
	if text == "" {
		return logicalLine{}, false
	}
	if blank {
		text = " " + text
	}
	return logicalLine{Text: text, Line: n}, true
}
