package assign

import "fmt"

// SyntaxError reports an expression without a '=' separator.
type SyntaxError struct {
	Item string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid syntax %q: must be FIELD=VALUE", e.Item)
}

// TypeMismatchError reports append/remove attempted on a scalar field.
// Field is filled in by the caller once the target field is known.
type TypeMismatchError struct {
	Field string
	Mode  Mode
}

func (e *TypeMismatchError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("cannot %s: field is not a list; use override", e.Mode)
	}
	return fmt.Sprintf("cannot %s %q: field is not a list; use override", e.Mode, e.Field)
}
