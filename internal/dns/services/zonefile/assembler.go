package zonefile

import (
	"fmt"
	"strings"
	"time"

	"github.com/haukened/rr-zone/internal/dns/common/rrdata"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// exportTimeFormat is ISO 8601 in UTC with milliseconds.
const exportTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// assembler lays out a zone document: banner, directives, one block per
// record type in first-seen order, then the footer.
type assembler struct {
	origin   string
	ttl      uint32
	tool     string
	exported time.Time
	comments bool
	headers  bool
	directs  bool
}

func (a assembler) assemble(records []domain.TypedRecord) (string, error) {
	var blocks []string
	if a.headers {
		blocks = append(blocks, a.banner())
	}
	if a.directs {
		blocks = append(blocks, a.directives())
	}

	order, groups := groupByType(records)
	for _, t := range order {
		var b strings.Builder
		if a.comments {
			fmt.Fprintf(&b, ";; %s records\n", t)
		}
		for i, rec := range groups[t] {
			line, err := a.line(rec)
			if err != nil {
				return "", err
			}
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(line)
		}
		blocks = append(blocks, b.String())
	}
	if a.headers {
		blocks = append(blocks, a.footer())
	}
	return strings.Join(blocks, "\n\n") + "\n", nil
}

// line renders "name<TAB>ttl<TAB>class<TAB>type<TAB>rdata" with the record's own TTL.
func (a assembler) line(rec domain.TypedRecord) (string, error) {
	h := rec.Header()
	rdata, err := rrdata.Encode(rec)
	if err != nil {
		return "", err
	}
	class := h.Class
	if class == 0 {
		class = domain.RRClassIN
	}
	return strings.Join([]string{h.Name, fmt.Sprint(h.TTL), class.String(), h.Type.String(), rdata}, "\t"), nil
}

func (a assembler) directives() string {
	var lines []string
	if a.origin != "" {
		lines = append(lines, "$ORIGIN "+a.origin)
	}
	lines = append(lines, fmt.Sprintf("$TTL %d", a.ttl))
	return strings.Join(lines, "\n")
}

var bannerRule = ";; " + strings.Repeat("=", 50)

// banner is the informational header: zone and export time, the attribution
// block naming the exporting tool, then the disclaimers.
func (a assembler) banner() string {
	rule := bannerRule
	lines := []string{
		";;",
		";; Domain:     " + a.origin,
		";; Exported:   " + a.exported.UTC().Format(exportTimeFormat),
		";;",
		rule,
		";;",
		";; core: " + a.tool,
		";;",
		rule,
		";;",
		";; This file is an export for review and archival.",
		";; Check it before loading it on a production name server.",
		";;",
		";; Master file format: RFC 1035 section 5",
		";;   https://www.rfc-editor.org/rfc/rfc1035.txt",
		";;",
		rule,
	}
	return strings.Join(lines, "\n")
}

func (a assembler) footer() string {
	return strings.Join([]string{
		bannerRule,
		";; End of zone " + a.origin,
		bannerRule,
	}, "\n")
}

func groupByType(records []domain.TypedRecord) ([]domain.RRType, map[domain.RRType][]domain.TypedRecord) {
	z := Zone{Records: records}
	return z.Types(), z.Grouped()
}
