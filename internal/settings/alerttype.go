package settings

// Detection alert types raised by the service. The filtered_alerts_types
// field only accepts values from this vocabulary.
var DetectionTypes = []string{
	"New Device",
	"Imp Travel",
	"New Country",
	"User Risk Threshold",
	"Login Anomaly",
	"Anonymous IP Login",
	"Atypical Country",
}

// Risk score levels for alert_minimum_risk_score, ordered least to most severe.
const (
	RiskScoreNone   = "No risk"
	RiskScoreLow    = "Low"
	RiskScoreMedium = "Medium"
	RiskScoreHigh   = "High"
)

// RiskScores lists the accepted risk score levels in severity order.
var RiskScores = []string{RiskScoreNone, RiskScoreLow, RiskScoreMedium, RiskScoreHigh}
