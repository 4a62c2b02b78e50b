package schema

import (
	"fmt"
	"strings"

	"github.com/voyantsec/voyant/internal/value"
)

// UnknownFieldError reports a field name absent from the registry.
type UnknownFieldError struct {
	Field      string
	Suggestion string // closest registered name, empty if nothing plausible
}

func (e *UnknownFieldError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown field %q (did you mean %q?)", e.Field, e.Suggestion)
	}
	return fmt.Sprintf("unknown field %q", e.Field)
}

// ValidationError reports a candidate value rejected by a field's
// validators. Messages holds one entry per reason.
type ValidationError struct {
	Field    string
	Value    value.Value
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %q with value '%s': %s",
		e.Field, e.Value, strings.Join(e.Messages, "; "))
}
