package schema

import (
	"fmt"
	"net/netip"
	"slices"
	"strings"

	"github.com/voyantsec/voyant/internal/value"
)

// Validator checks a fully-formed candidate value for one field. It returns
// nil on success or an error describing every reason the value is rejected.
// Validators see the whole value, not single list elements.
type Validator func(v value.Value) error

// messages is a multi-reason validator failure.
type messages []string

func (m messages) Error() string { return strings.Join(m, "; ") }

// Validate runs the field's validators in order against the candidate value
// and wraps the first failure into a *ValidationError.
func Validate(d *Descriptor, v value.Value) error {
	for _, check := range d.Validators {
		if err := check(v); err != nil {
			verr := &ValidationError{Field: d.Name, Value: v}
			if msgs, ok := err.(messages); ok {
				verr.Messages = msgs
			} else {
				verr.Messages = []string{err.Error()}
			}
			return verr
		}
	}
	return nil
}

// OneOf restricts a scalar to a fixed set of values.
func OneOf(allowed []string) Validator {
	return func(v value.Value) error {
		if !slices.Contains(allowed, v.String()) {
			return fmt.Errorf("invalid value %q: must be %s", v, formatOptions(allowed))
		}
		return nil
	}
}

// EachOneOf restricts every list element to a fixed vocabulary. The failure
// lists the offending values and the full allowed set.
func EachOneOf(allowed []string) Validator {
	return func(v value.Value) error {
		var invalid []string
		for _, e := range v.Elems() {
			if !slices.Contains(allowed, e.String()) {
				invalid = append(invalid, fmt.Sprintf("%q", e))
			}
		}
		if len(invalid) > 0 {
			return messages{
				"invalid values: " + strings.Join(invalid, ", "),
				"valid choices are: " + formatOptions(allowed),
			}
		}
		return nil
	}
}

// CountryCodes requires every list element to be an ISO 3166-1 alpha-2 code.
func CountryCodes(v value.Value) error {
	var invalid []string
	for _, e := range v.Elems() {
		if !isCountryCode(e.String()) {
			invalid = append(invalid, fmt.Sprintf("%q", e))
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("the following country codes are invalid: %s", strings.Join(invalid, ", "))
	}
	return nil
}

// IPsOrNetworks requires every list element to parse as an IP address or a
// CIDR network.
func IPsOrNetworks(v value.Value) error {
	for _, e := range v.Elems() {
		s := e.String()
		if _, err := netip.ParseAddr(s); err == nil {
			continue
		}
		if _, err := netip.ParsePrefix(s); err == nil {
			continue
		}
		return fmt.Errorf("invalid IP address or network %q", s)
	}
	return nil
}

// MinInt requires an integer scalar of at least min.
func MinInt(min int64) Validator {
	return func(v value.Value) error {
		if v.Kind() == value.KindInt && v.IntVal() < min {
			return fmt.Errorf("must be at least %d", min)
		}
		return nil
	}
}

// MinFloat requires a numeric scalar of at least min.
func MinFloat(min float64) Validator {
	return func(v value.Value) error {
		switch v.Kind() {
		case value.KindFloat:
			if v.FloatVal() < min {
				return fmt.Errorf("must be at least %g", min)
			}
		case value.KindInt:
			if float64(v.IntVal()) < min {
				return fmt.Errorf("must be at least %g", min)
			}
		}
		return nil
	}
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
