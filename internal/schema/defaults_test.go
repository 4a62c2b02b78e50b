package schema

import (
	"slices"
	"testing"

	"github.com/voyantsec/voyant/internal/settings"
)

func TestFillDefaultsSafeMode(t *testing.T) {
	t.Parallel()

	rec := settings.Defaults()
	rec.AllowedCountries = nil            // empty: gets the default
	rec.AlertMinimumRiskScore = ""        // empty: gets the default
	rec.IgnoredUsers = []string{"custom"} // populated: untouched
	rec.DistanceAcceptedKm = 42           // numerics are never empty

	updated := FillDefaults(rec, false)

	if !slices.Contains(updated, "allowed_countries") {
		t.Errorf("allowed_countries not updated: %v", updated)
	}
	if !slices.Contains(updated, "alert_minimum_risk_score") {
		t.Errorf("alert_minimum_risk_score not updated: %v", updated)
	}
	if slices.Contains(updated, "ignored_users") {
		t.Error("populated ignored_users was reset")
	}
	if slices.Contains(updated, "distance_accepted_km") {
		t.Error("numeric field treated as empty")
	}

	if len(rec.AllowedCountries) != 0 {
		t.Errorf("allowed_countries = %v, want default []", rec.AllowedCountries)
	}
	if rec.AlertMinimumRiskScore != settings.RiskScoreNone {
		t.Errorf("alert_minimum_risk_score = %q, want %q", rec.AlertMinimumRiskScore, settings.RiskScoreNone)
	}
	if rec.IgnoredUsers[0] != "custom" {
		t.Errorf("ignored_users = %v, want [custom]", rec.IgnoredUsers)
	}
	if rec.DistanceAcceptedKm != 42 {
		t.Errorf("distance_accepted_km = %d, want 42", rec.DistanceAcceptedKm)
	}
}

func TestFillDefaultsForceMode(t *testing.T) {
	t.Parallel()

	rec := settings.Defaults()
	rec.IgnoredUsers = []string{"custom"}
	rec.DistanceAcceptedKm = 42
	rec.AlertIsVIPOnly = true

	updated := FillDefaults(rec, true)

	if len(updated) != len(Fields().All()) {
		t.Errorf("force updated %d fields, want all %d", len(updated), len(Fields().All()))
	}

	def := settings.Defaults()
	if !slices.Equal(rec.IgnoredUsers, def.IgnoredUsers) {
		t.Errorf("ignored_users = %v, want %v", rec.IgnoredUsers, def.IgnoredUsers)
	}
	if rec.DistanceAcceptedKm != def.DistanceAcceptedKm {
		t.Errorf("distance_accepted_km = %d, want %d", rec.DistanceAcceptedKm, def.DistanceAcceptedKm)
	}
	if rec.AlertIsVIPOnly != def.AlertIsVIPOnly {
		t.Errorf("alert_is_vip_only = %v, want %v", rec.AlertIsVIPOnly, def.AlertIsVIPOnly)
	}
}
