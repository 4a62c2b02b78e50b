// Package assign parses FIELD=VALUE expressions and applies
// override/append/remove mutations to typed settings values.
package assign

import (
	"strings"

	"github.com/voyantsec/voyant/internal/value"
)

// Mode is the mutation applied by one assignment.
type Mode int

const (
	Override Mode = iota
	Remove
	Append
)

// String returns the flag-style mode name used in messages.
func (m Mode) String() string {
	switch m {
	case Remove:
		return "remove"
	case Append:
		return "append"
	default:
		return "override"
	}
}

// Assignment is one parsed FIELD=VALUE item tagged with its mode.
type Assignment struct {
	Field string
	Mode  Mode
	Value value.Value
}

// Parse splits a FIELD=VALUE expression into the field name and a typed
// value. A bracketed right-hand side always parses to a list, even with a
// single element; a bare token parses to a scalar via value.Cast.
func Parse(item string) (string, value.Value, error) {
	field, raw, ok := strings.Cut(item, "=")
	if !ok {
		return "", value.Value{}, &SyntaxError{Item: item}
	}

	field = strings.TrimSpace(field)
	raw = strings.TrimSpace(raw)

	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") && len(raw) >= 2 {
		return field, parseList(raw[1 : len(raw)-1]), nil
	}

	return field, value.Cast(raw), nil
}

// parseList parses the interior of a bracketed value into a list.
func parseList(inner string) value.Value {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return value.List()
	}

	var tokens []string
	if strings.ContainsAny(inner, `'"`) {
		tokens = splitQuoted(inner)
	} else {
		// No quotes: plain comma split covers both "a,b,c" and "a, b, c".
		tokens = strings.Split(inner, ",")
	}

	var elems []value.Value
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		elems = append(elems, value.Cast(tok))
	}
	return value.List(elems...)
}

// splitQuoted splits a comma-separated run on commas that sit outside
// quotes, so 'val 1','val 2' yields two tokens instead of a naive comma
// split. The quote character that opened a run is the only one that closes
// it. Quotes stay in the tokens; value.Cast strips them.
func splitQuoted(inner string) []string {
	var (
		tokens    []string
		current   strings.Builder
		inQuotes  bool
		quoteChar byte
	)

	for i := 0; i < len(inner); i++ {
		ch := inner[i]
		switch {
		case (ch == '\'' || ch == '"') && (!inQuotes || ch == quoteChar):
			if inQuotes {
				inQuotes = false
				quoteChar = 0
			} else {
				inQuotes = true
				quoteChar = ch
			}
			current.WriteByte(ch)
		case ch == ',' && !inQuotes:
			if s := strings.TrimSpace(current.String()); s != "" {
				tokens = append(tokens, s)
			}
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		tokens = append(tokens, s)
	}

	return tokens
}
