package main

import (
	"errors"

	"github.com/voyantsec/voyant/internal/assign"
	"github.com/voyantsec/voyant/internal/schema"
	"github.com/voyantsec/voyant/internal/settings"
)

// collectAssignments parses every CLI item into an assignment. Items are
// grouped by mode and processed in the fixed order override, remove, append;
// within a group the supplied order is kept. A single bad item fails the
// whole batch.
func collectAssignments(overrides, removes, appends []string) ([]assign.Assignment, error) {
	groups := []struct {
		mode  assign.Mode
		items []string
	}{
		{assign.Override, overrides},
		{assign.Remove, removes},
		{assign.Append, appends},
	}

	var out []assign.Assignment
	for _, g := range groups {
		for _, item := range g.items {
			field, v, err := assign.Parse(item)
			if err != nil {
				return nil, err
			}
			// Unknown names fail here, before any mutation happens.
			if _, err := schema.Fields().Lookup(field); err != nil {
				return nil, err
			}
			out = append(out, assign.Assignment{Field: field, Mode: g.mode, Value: v})
		}
	}
	return out, nil
}

// applyAssignments mutates the record in memory, one assignment at a time:
// registry lookup, mutation, validation of the full candidate value, then
// the typed write into the record. The first failure aborts with the record
// possibly half-mutated; callers must not persist on error.
func applyAssignments(rec *settings.Record, assignments []assign.Assignment) error {
	reg := schema.Fields()

	for _, a := range assignments {
		d, err := reg.Lookup(a.Field)
		if err != nil {
			return err
		}

		next, err := assign.Apply(d.Get(rec), d.List, a.Mode, a.Value)
		if err != nil {
			var mismatch *assign.TypeMismatchError
			if errors.As(err, &mismatch) {
				mismatch.Field = a.Field
			}
			return err
		}

		if err := schema.Validate(d, next); err != nil {
			return err
		}

		if err := d.Set(rec, next); err != nil {
			return err
		}
	}

	return nil
}

// checkAlertTypes re-validates the suppressed alert type vocabulary on the
// final record, independent of which assignments touched it. Invalid values
// that ended up persisted by older versions are caught here too.
func checkAlertTypes(rec *settings.Record) error {
	d, err := schema.Fields().Lookup("filtered_alerts_types")
	if err != nil {
		return err
	}
	return schema.Validate(d, d.Get(rec))
}
