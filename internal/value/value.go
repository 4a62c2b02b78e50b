// Package value provides the tagged scalar type used by settings expressions.
//
// Every value flowing between the expression parser, the mutation engine and
// the field registry is a Value: an int, float, bool or string scalar, or an
// ordered list of such scalars. The discriminant is explicit so downstream
// code can handle each case exhaustively instead of type-switching on any.
package value

import (
	"strconv"
	"strings"
)

// Kind discriminates the payload of a Value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindList
)

// String returns a human-readable kind name for listings and error messages.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindList:
		return "list"
	default:
		return "string"
	}
}

// Value is a tagged union over int, float, bool, string or an ordered list of
// scalar Values. The zero Value is the empty string.
type Value struct {
	kind  Kind
	i     int64
	f     float64
	b     bool
	s     string
	elems []Value
}

// Str returns a string Value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a float Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// List returns a list Value over the given scalar elements.
// A nil slice yields an empty (but still list-kinded) Value.
func List(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindList, elems: elems}
}

// Strings returns a list Value over string elements.
func Strings(ss ...string) Value {
	elems := make([]Value, len(ss))
	for i, s := range ss {
		elems[i] = Str(s)
	}
	return Value{kind: KindList, elems: elems}
}

// Kind returns the discriminant.
func (v Value) Kind() Kind { return v.kind }

// IsList reports whether the value is a list.
func (v Value) IsList() bool { return v.kind == KindList }

// IntVal returns the integer payload. Only meaningful for KindInt.
func (v Value) IntVal() int64 { return v.i }

// FloatVal returns the float payload. Only meaningful for KindFloat.
func (v Value) FloatVal() float64 { return v.f }

// BoolVal returns the boolean payload. Only meaningful for KindBool.
func (v Value) BoolVal() bool { return v.b }

// StrVal returns the string payload. Only meaningful for KindString.
func (v Value) StrVal() string { return v.s }

// Elems returns the list elements. Nil for non-list values.
func (v Value) Elems() []Value { return v.elems }

// Len returns the number of list elements, or 0 for scalars.
func (v Value) Len() int { return len(v.elems) }

// Equal reports whether two values have the same kind and payload.
// Lists compare element-wise in order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	case KindList:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(o.elems[i]) {
				return false
			}
		}
		return true
	default:
		return v.s == o.s
	}
}

// String renders the value for display in messages and listings.
// Lists render as [a, b, c].
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		parts := make([]string, len(v.elems))
		for i, e := range v.elems {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return v.s
	}
}

// Cast converts a raw expression token to a typed scalar. Rules are tried in
// order and casting never fails: trim whitespace and strip at most one
// matching pair of surrounding quotes, then all-digits means integer, then a
// parseable float means float, then "true"/"false" (any case) means boolean,
// and anything else stays a string.
func Cast(raw string) Value {
	s := stripQuotes(strings.TrimSpace(raw))

	if isDigits(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i)
		}
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}

	switch strings.ToLower(s) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	return Str(s)
}

// stripQuotes removes one matching pair of surrounding single or double quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
