package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/voyantsec/voyant/internal/settings"
	"github.com/voyantsec/voyant/internal/value"
)

func TestEachOneOfVocabulary(t *testing.T) {
	t.Parallel()

	d, err := Fields().Lookup("filtered_alerts_types")
	if err != nil {
		t.Fatal(err)
	}

	if err := Validate(d, value.Strings("New Device", "Imp Travel")); err != nil {
		t.Errorf("valid vocabulary rejected: %v", err)
	}

	err = Validate(d, value.Strings("New Device", "Bogus Type", "Also Bad"))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if verr.Field != "filtered_alerts_types" {
		t.Errorf("error field = %q", verr.Field)
	}
	if len(verr.Messages) != 2 {
		t.Fatalf("messages = %v, want invalid values and valid choices", verr.Messages)
	}
	// Offending values and the allowed set must both be listed
	if !strings.Contains(verr.Messages[0], `"Bogus Type"`) || !strings.Contains(verr.Messages[0], `"Also Bad"`) {
		t.Errorf("invalid values not listed: %q", verr.Messages[0])
	}
	for _, choice := range settings.DetectionTypes {
		if !strings.Contains(verr.Messages[1], choice) {
			t.Errorf("valid choice %q not listed in %q", choice, verr.Messages[1])
		}
	}
}

func TestCountryCodes(t *testing.T) {
	t.Parallel()

	if err := CountryCodes(value.Strings("IT", "fr", "US")); err != nil {
		t.Errorf("valid codes rejected: %v", err)
	}

	err := CountryCodes(value.Strings("IT", "XX", "Italy"))
	if err == nil {
		t.Fatal("invalid codes accepted")
	}
	if !strings.Contains(err.Error(), `"XX"`) || !strings.Contains(err.Error(), `"Italy"`) {
		t.Errorf("invalid entries not listed: %v", err)
	}
	if strings.Contains(err.Error(), `"IT"`) {
		t.Errorf("valid entry reported as invalid: %v", err)
	}
}

func TestIPsOrNetworks(t *testing.T) {
	t.Parallel()

	valid := [][]string{
		{"127.0.0.1"},
		{"10.0.0.0/8"},
		{"2001:db8::1"},
		{"2001:db8::/32"},
		{"192.168.1.1", "172.16.0.0/12"},
	}
	for _, ips := range valid {
		if err := IPsOrNetworks(value.Strings(ips...)); err != nil {
			t.Errorf("IPsOrNetworks(%v) = %v, want nil", ips, err)
		}
	}

	invalid := [][]string{
		{"not-an-ip"},
		{"10.0.0.0/33"},
		{"127.0.0.1", "999.1.1.1"},
	}
	for _, ips := range invalid {
		if err := IPsOrNetworks(value.Strings(ips...)); err == nil {
			t.Errorf("IPsOrNetworks(%v) = nil, want error", ips)
		}
	}
}

func TestOneOfRiskScore(t *testing.T) {
	t.Parallel()

	d, err := Fields().Lookup("alert_minimum_risk_score")
	if err != nil {
		t.Fatal(err)
	}

	for _, score := range settings.RiskScores {
		if err := Validate(d, value.Str(score)); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", score, err)
		}
	}

	err = Validate(d, value.Str("Critical"))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if !strings.Contains(verr.Error(), `"High"`) {
		t.Errorf("allowed set not listed: %v", verr)
	}
}

func TestMinInt(t *testing.T) {
	t.Parallel()

	check := MinInt(0)
	if err := check(value.Int(0)); err != nil {
		t.Errorf("MinInt(0)(0) = %v", err)
	}
	if err := check(value.Int(-1)); err == nil {
		t.Error("MinInt(0)(-1) = nil, want error")
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts []string
		want string
	}{
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" or "b"`},
		{[]string{"a", "b", "c"}, `"a", "b", or "c"`},
	}

	for _, tt := range tests {
		if got := formatOptions(tt.opts); got != tt.want {
			t.Errorf("formatOptions(%v) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}
