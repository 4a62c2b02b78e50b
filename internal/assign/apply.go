package assign

import "github.com/voyantsec/voyant/internal/value"

// Apply computes the new value for a field from its current value and one
// assignment. listField tells whether the field holds an ordered list; for
// list fields a scalar assignment is first wrapped into a singleton list.
//
// Override replaces the current value wholly. Append adds only elements not
// already present, preserving order, so repeating the same append is a no-op.
// Remove filters out every element equal to one of the given values;
// removing absent elements is a no-op. Append and remove are rejected on
// scalar fields.
func Apply(current value.Value, listField bool, mode Mode, v value.Value) (value.Value, error) {
	if listField && !v.IsList() {
		v = value.List(v)
	}

	if !listField {
		if mode != Override {
			return value.Value{}, &TypeMismatchError{Mode: mode}
		}
		return v, nil
	}

	switch mode {
	case Override:
		return v, nil
	case Append:
		elems := append([]value.Value(nil), current.Elems()...)
		for _, e := range v.Elems() {
			if !containsValue(elems, e) {
				elems = append(elems, e)
			}
		}
		return value.List(elems...), nil
	default: // Remove
		var elems []value.Value
		for _, e := range current.Elems() {
			if !containsValue(v.Elems(), e) {
				elems = append(elems, e)
			}
		}
		return value.List(elems...), nil
	}
}

func containsValue(elems []value.Value, v value.Value) bool {
	for _, e := range elems {
		if e.Equal(v) {
			return true
		}
	}
	return false
}
