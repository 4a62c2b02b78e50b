// Package schema is the static field registry for the settings record.
//
// Every editable field is described once, at package initialization, by a
// Descriptor: its list-or-scalar shape, element kind, validators and typed
// accessors into settings.Record. Command logic never inspects the record
// directly; it goes through descriptors so unknown names, shape mismatches
// and constraint violations are caught before anything is persisted.
package schema

import (
	"github.com/sahilm/fuzzy"

	"github.com/voyantsec/voyant/internal/settings"
	"github.com/voyantsec/voyant/internal/value"
)

// Descriptor describes one editable settings field.
type Descriptor struct {
	Name       string
	List       bool       // ordered list field vs single scalar
	Elem       value.Kind // element kind for lists, value kind for scalars
	Doc        string     // one-line description for listings
	Validators []Validator

	Get func(*settings.Record) value.Value
	Set func(*settings.Record, value.Value) error
}

// Default returns the shipped default value for this field.
func (d *Descriptor) Default() value.Value {
	return d.Get(settings.Defaults())
}

// Registry maps field names to descriptors. It is built once and read-only
// afterwards.
type Registry struct {
	fields []*Descriptor
	byName map[string]*Descriptor
}

var std = buildRegistry()

// Fields returns the process-wide registry.
func Fields() *Registry { return std }

// All returns every descriptor in declaration order.
func (r *Registry) All() []*Descriptor { return r.fields }

// Names returns every field name in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.fields))
	for i, d := range r.fields {
		names[i] = d.Name
	}
	return names
}

// Lookup finds a descriptor by field name. Unknown names yield an
// *UnknownFieldError carrying the closest registered name as a suggestion.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	if d, ok := r.byName[name]; ok {
		return d, nil
	}

	err := &UnknownFieldError{Field: name}
	if matches := fuzzy.Find(name, r.Names()); len(matches) > 0 {
		// Find returns matches best-first.
		err.Suggestion = matches[0].Str
	}
	return nil, err
}

func buildRegistry() *Registry {
	fields := []*Descriptor{
		{
			Name: "ignored_users",
			List: true, Elem: value.KindString,
			Doc: "usernames excluded from detection",
			Get: func(r *settings.Record) value.Value { return value.Strings(r.IgnoredUsers...) },
			Set: setStringList("ignored_users", func(r *settings.Record) *[]string { return &r.IgnoredUsers }),
		},
		{
			Name: "enabled_users",
			List: true, Elem: value.KindString,
			Doc: "if non-empty, only these usernames are analyzed",
			Get: func(r *settings.Record) value.Value { return value.Strings(r.EnabledUsers...) },
			Set: setStringList("enabled_users", func(r *settings.Record) *[]string { return &r.EnabledUsers }),
		},
		{
			Name: "vip_users",
			List: true, Elem: value.KindString,
			Doc: "usernames treated as high-value targets",
			Get: func(r *settings.Record) value.Value { return value.Strings(r.VIPUsers...) },
			Set: setStringList("vip_users", func(r *settings.Record) *[]string { return &r.VIPUsers }),
		},
		{
			Name: "alert_is_vip_only",
			Elem: value.KindBool,
			Doc:  "raise alerts only for vip_users",
			Get:  func(r *settings.Record) value.Value { return value.Bool(r.AlertIsVIPOnly) },
			Set:  setBool("alert_is_vip_only", func(r *settings.Record) *bool { return &r.AlertIsVIPOnly }),
		},
		{
			Name: "alert_minimum_risk_score",
			Elem: value.KindString,
			Doc:  "lowest user risk score that still alerts",
			Validators: []Validator{
				OneOf(settings.RiskScores),
			},
			Get: func(r *settings.Record) value.Value { return value.Str(r.AlertMinimumRiskScore) },
			Set: setString("alert_minimum_risk_score", func(r *settings.Record) *string { return &r.AlertMinimumRiskScore }),
		},
		{
			Name: "filtered_alerts_types",
			List: true, Elem: value.KindString,
			Doc: "alert types suppressed before notification",
			Validators: []Validator{
				EachOneOf(settings.DetectionTypes),
			},
			Get: func(r *settings.Record) value.Value { return value.Strings(r.FilteredAlertTypes...) },
			Set: setStringList("filtered_alerts_types", func(r *settings.Record) *[]string { return &r.FilteredAlertTypes }),
		},
		{
			Name: "ignore_mobile_logins",
			Elem: value.KindBool,
			Doc:  "skip logins from mobile devices",
			Get:  func(r *settings.Record) value.Value { return value.Bool(r.IgnoreMobileLogins) },
			Set:  setBool("ignore_mobile_logins", func(r *settings.Record) *bool { return &r.IgnoreMobileLogins }),
		},
		{
			Name: "allowed_countries",
			List: true, Elem: value.KindString,
			Doc: "ISO 3166-1 alpha-2 codes that never trigger country alerts",
			Validators: []Validator{
				CountryCodes,
			},
			Get: func(r *settings.Record) value.Value { return value.Strings(r.AllowedCountries...) },
			Set: setStringList("allowed_countries", func(r *settings.Record) *[]string { return &r.AllowedCountries }),
		},
		{
			Name: "ignored_ips",
			List: true, Elem: value.KindString,
			Doc: "IP addresses or CIDR networks excluded from detection",
			Validators: []Validator{
				IPsOrNetworks,
			},
			Get: func(r *settings.Record) value.Value { return value.Strings(r.IgnoredIPs...) },
			Set: setStringList("ignored_ips", func(r *settings.Record) *[]string { return &r.IgnoredIPs }),
		},
		{
			Name: "distance_accepted_km",
			Elem: value.KindInt,
			Doc:  "distance below which travel is never impossible",
			Validators: []Validator{
				MinInt(0),
			},
			Get: func(r *settings.Record) value.Value { return value.Int(int64(r.DistanceAcceptedKm)) },
			Set: setInt("distance_accepted_km", func(r *settings.Record) *int { return &r.DistanceAcceptedKm }),
		},
		{
			Name: "velocity_accepted_kmh",
			Elem: value.KindFloat,
			Doc:  "highest travel speed considered plausible",
			Validators: []Validator{
				MinFloat(0),
			},
			Get: func(r *settings.Record) value.Value { return value.Float(r.VelocityAcceptedKmh) },
			Set: setFloat("velocity_accepted_kmh", func(r *settings.Record) *float64 { return &r.VelocityAcceptedKmh }),
		},
		{
			Name: "user_max_days",
			Elem: value.KindInt,
			Doc:  "days before an inactive user is forgotten",
			Validators: []Validator{
				MinInt(0),
			},
			Get: func(r *settings.Record) value.Value { return value.Int(int64(r.UserMaxDays)) },
			Set: setInt("user_max_days", func(r *settings.Record) *int { return &r.UserMaxDays }),
		},
		{
			Name: "login_max_days",
			Elem: value.KindInt,
			Doc:  "days of login history retained",
			Validators: []Validator{
				MinInt(0),
			},
			Get: func(r *settings.Record) value.Value { return value.Int(int64(r.LoginMaxDays)) },
			Set: setInt("login_max_days", func(r *settings.Record) *int { return &r.LoginMaxDays }),
		},
		{
			Name: "alert_max_days",
			Elem: value.KindInt,
			Doc:  "days of alert history retained",
			Validators: []Validator{
				MinInt(0),
			},
			Get: func(r *settings.Record) value.Value { return value.Int(int64(r.AlertMaxDays)) },
			Set: setInt("alert_max_days", func(r *settings.Record) *int { return &r.AlertMaxDays }),
		},
		{
			Name: "ip_max_days",
			Elem: value.KindInt,
			Doc:  "days of IP history retained",
			Validators: []Validator{
				MinInt(0),
			},
			Get: func(r *settings.Record) value.Value { return value.Int(int64(r.IPMaxDays)) },
			Set: setInt("ip_max_days", func(r *settings.Record) *int { return &r.IPMaxDays }),
		},
	}

	byName := make(map[string]*Descriptor, len(fields))
	for _, d := range fields {
		byName[d.Name] = d
	}
	return &Registry{fields: fields, byName: byName}
}

// Accessor builders. Setters enforce the field's shape: scalar fields reject
// list values, typed scalars reject payloads of the wrong kind. String
// targets accept any scalar through its display form, matching how the
// expression parser casts bare tokens.

func setStringList(name string, field func(*settings.Record) *[]string) func(*settings.Record, value.Value) error {
	return func(r *settings.Record, v value.Value) error {
		if !v.IsList() {
			return expectError(name, v, "a list value")
		}
		ss := make([]string, v.Len())
		for i, e := range v.Elems() {
			ss[i] = e.String()
		}
		*field(r) = ss
		return nil
	}
}

func setString(name string, field func(*settings.Record) *string) func(*settings.Record, value.Value) error {
	return func(r *settings.Record, v value.Value) error {
		if v.IsList() {
			return expectError(name, v, "a single value")
		}
		*field(r) = v.String()
		return nil
	}
}

func setBool(name string, field func(*settings.Record) *bool) func(*settings.Record, value.Value) error {
	return func(r *settings.Record, v value.Value) error {
		if v.Kind() != value.KindBool {
			return expectError(name, v, "a boolean value (true or false)")
		}
		*field(r) = v.BoolVal()
		return nil
	}
}

func setInt(name string, field func(*settings.Record) *int) func(*settings.Record, value.Value) error {
	return func(r *settings.Record, v value.Value) error {
		if v.Kind() != value.KindInt {
			return expectError(name, v, "an integer value")
		}
		*field(r) = int(v.IntVal())
		return nil
	}
}

func setFloat(name string, field func(*settings.Record) *float64) func(*settings.Record, value.Value) error {
	return func(r *settings.Record, v value.Value) error {
		switch v.Kind() {
		case value.KindFloat:
			*field(r) = v.FloatVal()
		case value.KindInt:
			*field(r) = float64(v.IntVal())
		default:
			return expectError(name, v, "a numeric value")
		}
		return nil
	}
}

func expectError(name string, v value.Value, want string) error {
	return &ValidationError{
		Field:    name,
		Value:    v,
		Messages: []string{"expected " + want},
	}
}
