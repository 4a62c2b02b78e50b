package assign

import (
	"errors"
	"testing"

	"github.com/voyantsec/voyant/internal/value"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		item      string
		wantField string
		want      value.Value
	}{
		// Scalars
		{"x=42", "x", value.Int(42)},
		{"x=3.5", "x", value.Float(3.5)},
		{"x=true", "x", value.Bool(true)},
		{"x=hello", "x", value.Str("hello")},
		{"x='hello world'", "x", value.Str("hello world")},
		{" x = 42 ", "x", value.Int(42)},
		// Values containing '=' split on the first occurrence only
		{"x=a=b", "x", value.Str("a=b")},
		// Bracket syntax always yields a list, even for one element
		{"x=[1,2,3]", "x", value.List(value.Int(1), value.Int(2), value.Int(3))},
		{"x=[42]", "x", value.List(value.Int(42))},
		{"x=[]", "x", value.List()},
		{"x=[ ]", "x", value.List()},
		// Legacy spaced form
		{"x=[a, b, c]", "x", value.Strings("a", "b", "c")},
		// Quoted elements keep embedded separators
		{"x=['a b','c']", "x", value.Strings("a b", "c")},
		{`x=["val 1","val 2"]`, "x", value.Strings("val 1", "val 2")},
		{`x=['one, two','three']`, "x", value.Strings("one, two", "three")},
		// Mixed quoted and bare elements
		{`x=['a b',c,42]`, "x", value.List(value.Str("a b"), value.Str("c"), value.Int(42))},
		// Empty tokens are dropped
		{"x=[a,,b]", "x", value.Strings("a", "b")},
		{"x=[a, ,b]", "x", value.Strings("a", "b")},
	}

	for _, tt := range tests {
		field, v, err := Parse(tt.item)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.item, err)
			continue
		}
		if field != tt.wantField {
			t.Errorf("Parse(%q) field = %q, want %q", tt.item, field, tt.wantField)
		}
		if !v.Equal(tt.want) {
			t.Errorf("Parse(%q) value = %v (%s), want %v (%s)", tt.item, v, v.Kind(), tt.want, tt.want.Kind())
		}
	}
}

func TestParseSyntaxError(t *testing.T) {
	t.Parallel()

	for _, item := range []string{"badtoken", "", "no equals here"} {
		_, _, err := Parse(item)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("Parse(%q) error = %v, want *SyntaxError", item, err)
			continue
		}
		if syntaxErr.Item != item {
			t.Errorf("Parse(%q) error names %q", item, syntaxErr.Item)
		}
	}
}

func TestSplitQuoted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		inner string
		want  []string
	}{
		{"'a b','c d'", []string{"'a b'", "'c d'"}},
		{`"a,b",c`, []string{`"a,b"`, "c"}},
		// A double quote inside single quotes does not close the run
		{`'it"s',x`, []string{`'it"s'`, "x"}},
		{"'trailing'", []string{"'trailing'"}},
	}

	for _, tt := range tests {
		got := splitQuoted(tt.inner)
		if len(got) != len(tt.want) {
			t.Errorf("splitQuoted(%q) = %v, want %v", tt.inner, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitQuoted(%q)[%d] = %q, want %q", tt.inner, i, got[i], tt.want[i])
			}
		}
	}
}
