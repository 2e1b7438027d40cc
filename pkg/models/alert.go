// Package models contains request/response models and business domain types.
package models

import "time"

// AlertSource identifies which external system produced an alert
type AlertSource string

const (
	// AlertSourcePagerDuty is the PagerDuty webhook ingress
	AlertSourcePagerDuty AlertSource = "pagerduty"
	// AlertSourceCloudWatch is the CloudWatch/SNS webhook ingress
	AlertSourceCloudWatch AlertSource = "cloudwatch"
	// AlertSourceManual is an operator-submitted alert
	AlertSourceManual AlertSource = "manual"
)

// IsValid checks if the alert source is valid
func (s AlertSource) IsValid() bool {
	return s == AlertSourcePagerDuty || s == AlertSourceCloudWatch || s == AlertSourceManual
}

// Severity is the alert severity as reported by the source
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// Alert is one externally-originated incident notification. It is immutable
// once ingested; dedup hits append later arrivals to the incident's alert
// history instead of mutating this value.
type Alert struct {
	ID          string         `json:"id"`
	Source      AlertSource    `json:"source"`
	Severity    Severity       `json:"severity"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Service     string         `json:"service"`
	Timestamp   time.Time      `json:"timestamp"`
	Raw         map[string]any `json:"raw,omitempty"`
}

// SubmitAlertRequest contains fields for the manual alert submission endpoint
type SubmitAlertRequest struct {
	Severity    string         `json:"severity"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Service     string         `json:"service"`
	Namespace   string         `json:"namespace,omitempty"`
	Raw         map[string]any `json:"raw,omitempty"`
}
