package schema

import (
	"errors"
	"testing"

	"github.com/voyantsec/voyant/internal/settings"
	"github.com/voyantsec/voyant/internal/value"
)

func TestRegistryLookup(t *testing.T) {
	t.Parallel()

	for _, name := range Fields().Names() {
		d, err := Fields().Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
			continue
		}
		if d.Name != name {
			t.Errorf("Lookup(%q) returned descriptor %q", name, d.Name)
		}
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	t.Parallel()

	_, err := Fields().Lookup("alowed_countries")
	var unknown *UnknownFieldError
	if !errors.As(err, &unknown) {
		t.Fatalf("Lookup() error = %v, want *UnknownFieldError", err)
	}
	if unknown.Field != "alowed_countries" {
		t.Errorf("error field = %q", unknown.Field)
	}
	if unknown.Suggestion != "allowed_countries" {
		t.Errorf("suggestion = %q, want allowed_countries", unknown.Suggestion)
	}
}

func TestDescriptorRoundTrip(t *testing.T) {
	t.Parallel()

	rec := settings.Defaults()

	tests := []struct {
		field string
		set   value.Value
	}{
		{"ignored_users", value.Strings("bot", "audit")},
		{"alert_is_vip_only", value.Bool(true)},
		{"alert_minimum_risk_score", value.Str("High")},
		{"distance_accepted_km", value.Int(250)},
		{"velocity_accepted_kmh", value.Float(880.5)},
	}

	for _, tt := range tests {
		d, err := Fields().Lookup(tt.field)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", tt.field, err)
		}
		if err := d.Set(rec, tt.set); err != nil {
			t.Fatalf("Set(%q, %v) failed: %v", tt.field, tt.set, err)
		}
		if got := d.Get(rec); !got.Equal(tt.set) {
			t.Errorf("Get(%q) = %v, want %v", tt.field, got, tt.set)
		}
	}
}

func TestSetterShapeMismatch(t *testing.T) {
	t.Parallel()

	rec := settings.Defaults()

	tests := []struct {
		field string
		v     value.Value
	}{
		// A list assigned to a scalar field
		{"alert_is_vip_only", value.List(value.Bool(true))},
		{"distance_accepted_km", value.Strings("100")},
		// Payload of the wrong kind
		{"alert_is_vip_only", value.Str("yes")},
		{"distance_accepted_km", value.Str("far")},
		// A scalar where a list is required
		{"ignored_users", value.Str("bot")},
	}

	for _, tt := range tests {
		d, err := Fields().Lookup(tt.field)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", tt.field, err)
		}
		err = d.Set(rec, tt.v)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Set(%q, %v) error = %v, want *ValidationError", tt.field, tt.v, err)
		}
	}
}

func TestIntFieldAcceptsIntOnly(t *testing.T) {
	t.Parallel()

	rec := settings.Defaults()
	d, err := Fields().Lookup("user_max_days")
	if err != nil {
		t.Fatal(err)
	}

	if err := d.Set(rec, value.Int(90)); err != nil {
		t.Errorf("Set(int) failed: %v", err)
	}
	if err := d.Set(rec, value.Float(90.5)); err == nil {
		t.Error("Set(float) on integer field should fail")
	}
}

func TestFloatFieldAcceptsInt(t *testing.T) {
	t.Parallel()

	rec := settings.Defaults()
	d, err := Fields().Lookup("velocity_accepted_kmh")
	if err != nil {
		t.Fatal(err)
	}

	if err := d.Set(rec, value.Int(500)); err != nil {
		t.Fatalf("Set(int) on float field failed: %v", err)
	}
	if rec.VelocityAcceptedKmh != 500 {
		t.Errorf("velocity = %v, want 500", rec.VelocityAcceptedKmh)
	}
}

func TestDefaultsMatchRecordDefaults(t *testing.T) {
	t.Parallel()

	defs := settings.Defaults()
	for _, d := range Fields().All() {
		if !d.Default().Equal(d.Get(defs)) {
			t.Errorf("field %q default mismatch", d.Name)
		}
	}
}
