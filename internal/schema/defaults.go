package schema

import (
	"github.com/voyantsec/voyant/internal/settings"
	"github.com/voyantsec/voyant/internal/value"
)

// FillDefaults resets fields of the record to their shipped defaults and
// returns the names of the fields it updated, in registry order.
//
// In safe mode (force=false) only empty fields are touched: empty strings
// and empty lists. Booleans and numerics always carry a real value, so they
// are only overwritten in force mode. Defaults bypass the generic
// validators; they are trusted by construction.
func FillDefaults(rec *settings.Record, force bool) []string {
	var updated []string
	for _, d := range Fields().All() {
		if !force && !isEmpty(d.Get(rec)) {
			continue
		}
		// Setting a default can only fail on a shape mismatch, which the
		// registry rules out for its own defaults.
		if err := d.Set(rec, d.Default()); err != nil {
			continue
		}
		updated = append(updated, d.Name)
	}
	return updated
}

// isEmpty reports whether a value is empty-equivalent: an empty list or an
// empty string.
func isEmpty(v value.Value) bool {
	switch v.Kind() {
	case value.KindList:
		return v.Len() == 0
	case value.KindString:
		return v.StrVal() == ""
	default:
		return false
	}
}
