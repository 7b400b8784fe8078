package zonefile

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/haukened/rr-zone/internal/dns/common/clock"
	"github.com/haukened/rr-zone/internal/dns/common/log"
	"github.com/haukened/rr-zone/internal/dns/common/utils"
	"github.com/haukened/rr-zone/internal/dns/domain"
)

// DefaultTool is the attribution written into generated banners.
const DefaultTool = "rr-zone"

// GenerateOptions controls zone document generation.
type GenerateOptions struct {
	// Origin is written as $ORIGIN. Empty means infer from the SOA owner or
	// the registrable domain of the first record.
	Origin string `validate:"omitempty,domain_name"`
	// TTL is written as $TTL and given to input records without a ttl key.
	// Typed records always keep their own TTL. 0 means DefaultTTL.
	TTL            uint32
	FieldMap       FieldMap
	KeepComments   bool
	KeepHeaders    bool
	KeepDirectives bool
	Tool           string `validate:"max=128"`
	Clock          clock.Clock
	Logger         log.Logger
}

// DefaultGenerateOptions returns options with comments and directives on and
// the banner off.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		TTL:            DefaultTTL,
		KeepComments:   true,
		KeepDirectives: true,
		Tool:           DefaultTool,
	}
}

// Validate checks the options with the shared validator rules.
func (o GenerateOptions) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterValidations(v); err != nil {
		return err
	}
	return v.Struct(o)
}

// RegisterValidations adds the "domain_name" tag used by zone options and config.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("domain_name", func(fl validator.FieldLevel) bool {
		return utils.IsDomainName(fl.Field().String())
	})
}

// Generator renders typed or loosely typed records as zone text.
type Generator struct {
	opts GenerateOptions
	norm normalizer
	log  log.Logger
}

// NewGenerator validates opts and fills in defaults.
func NewGenerator(opts GenerateOptions) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generate options: %w", err)
	}
	if opts.TTL == 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Tool == "" {
		opts.Tool = DefaultTool
	}
	opts.Clock = clock.Or(opts.Clock)
	return &Generator{
		opts: opts,
		norm: normalizer{fields: opts.FieldMap, ttl: opts.TTL},
		log:  log.With(opts.Logger, map[string]any{"component": "zonefile.generate"}),
	}, nil
}

// Generate renders loosely typed input records. A record without a name or
// with an unknown type aborts generation with its index.
func (g *Generator) Generate(records []InputRecord) (string, error) {
	typed := make([]domain.TypedRecord, 0, len(records))
	for i, in := range records {
		rec, err := g.norm.normalize(in)
		if err != nil {
			return "", fmt.Errorf("record %d: %w", i, err)
		}
		typed = append(typed, rec)
	}
	return g.GenerateTyped(typed)
}

// GenerateTyped renders typed records.
func (g *Generator) GenerateTyped(records []domain.TypedRecord) (string, error) {
	origin := g.opts.Origin
	if origin == "" {
		origin = inferOrigin(records)
		g.log.Debug(map[string]any{"origin": origin}, "origin inferred")
	}
	a := assembler{
		origin:   origin,
		ttl:      g.opts.TTL,
		tool:     g.opts.Tool,
		exported: g.opts.Clock.Now(),
		comments: g.opts.KeepComments,
		headers:  g.opts.KeepHeaders,
		directs:  g.opts.KeepDirectives,
	}
	out, err := a.assemble(records)
	if err != nil {
		return "", err
	}
	g.log.Debug(map[string]any{"origin": origin, "records": len(records)}, "zone generated")
	return out, nil
}

// Generate is a convenience wrapper around NewGenerator and Generator.Generate.
func Generate(records []InputRecord, opts GenerateOptions) (string, error) {
	g, err := NewGenerator(opts)
	if err != nil {
		return "", err
	}
	return g.Generate(records)
}

// inferOrigin takes the first SOA owner, else the registrable domain of the first record.
func inferOrigin(records []domain.TypedRecord) string {
	for _, r := range records {
		if r.Header().Type == domain.RRTypeSOA {
			return utils.AbsoluteName(r.Header().Name)
		}
	}
	if len(records) > 0 {
		return utils.ZoneApex(records[0].Header().Name)
	}
	return ""
}
