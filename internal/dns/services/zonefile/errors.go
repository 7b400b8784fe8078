package zonefile

import (
	"errors"
	"fmt"

	"github.com/haukened/rr-zone/internal/dns/common/rrdata"
)

var (
	// ErrUnterminatedParen means a "(" continuation was never closed.
	ErrUnterminatedParen = errors.New("unterminated parenthesis")
	// ErrMissingType means no record type token could be located.
	ErrMissingType = errors.New("missing record type")
	// ErrUnknownType wraps rrdata.ErrUnknownType so either sentinel matches.
	ErrUnknownType = fmt.Errorf("zone file: %w", rrdata.ErrUnknownType)
	// ErrUnsupportedDirective is returned for $INCLUDE, $GENERATE and unknown directives.
	ErrUnsupportedDirective = errors.New("unsupported directive")
	// ErrMalformedDirective is returned when $ORIGIN or $TTL has no value.
	ErrMalformedDirective = errors.New("malformed directive")
	// ErrMissingName is returned when a generate input record has no name.
	ErrMissingName = errors.New("missing record name")
	// ErrInvalidField is returned when a generate input field cannot be coerced.
	ErrInvalidField = errors.New("invalid record field")
)

// LineError attaches the source position to a parse failure.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
