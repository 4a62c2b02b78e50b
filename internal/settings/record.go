// Package settings holds the persisted detection settings record and its
// file-backed store. The record is a singleton: one JSON document under
// ~/.voyant/ that every invocation loads, mutates in memory and persists in
// a single atomic write.
package settings

// Record is the singleton detection settings document.
//
// List fields are ordered and behave like sets under append/remove.
// Day horizons bound how long users, logins, alerts and IPs are retained
// by the detection service.
type Record struct {
	IgnoredUsers          []string `json:"ignored_users"`
	EnabledUsers          []string `json:"enabled_users"`
	VIPUsers              []string `json:"vip_users"`
	AlertIsVIPOnly        bool     `json:"alert_is_vip_only"`
	AlertMinimumRiskScore string   `json:"alert_minimum_risk_score"`
	FilteredAlertTypes    []string `json:"filtered_alerts_types"`
	IgnoreMobileLogins    bool     `json:"ignore_mobile_logins"`
	AllowedCountries      []string `json:"allowed_countries"`
	IgnoredIPs            []string `json:"ignored_ips"`
	DistanceAcceptedKm    int      `json:"distance_accepted_km"`
	VelocityAcceptedKmh   float64  `json:"velocity_accepted_kmh"`
	UserMaxDays           int      `json:"user_max_days"`
	LoginMaxDays          int      `json:"login_max_days"`
	AlertMaxDays          int      `json:"alert_max_days"`
	IPMaxDays             int      `json:"ip_max_days"`
}

// Defaults returns a record populated with the shipped default for every
// field. A store that finds no settings file starts from this record, the
// same way a fresh database row would be created with column defaults.
func Defaults() *Record {
	return &Record{
		IgnoredUsers:          []string{"N/A", "Not Available"},
		EnabledUsers:          []string{},
		VIPUsers:              []string{},
		AlertIsVIPOnly:        false,
		AlertMinimumRiskScore: RiskScoreNone,
		FilteredAlertTypes:    []string{},
		IgnoreMobileLogins:    false,
		AllowedCountries:      []string{},
		IgnoredIPs:            []string{"127.0.0.1"},
		DistanceAcceptedKm:    100,
		VelocityAcceptedKmh:   300,
		UserMaxDays:           60,
		LoginMaxDays:          40,
		AlertMaxDays:          30,
		IPMaxDays:             30,
	}
}
