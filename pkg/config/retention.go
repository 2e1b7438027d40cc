package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// IncidentRetentionDays is how many days to keep terminal incidents
	// before deleting them. Cascade removes executions and approvals.
	IncidentRetentionDays int `yaml:"incident_retention_days"`

	// AuditRetentionDays is how many days to keep audit entries. Audit rows
	// are not foreign-keyed to incidents and outlive incident retention.
	AuditRetentionDays int `yaml:"audit_retention_days"`

	// EventTTL is the maximum age of Event rows before deletion. Events are
	// a live-stream catch-up buffer, not a durable record.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		IncidentRetentionDays: 30,
		AuditRetentionDays:    90,
		EventTTL:              1 * time.Hour,
		CleanupInterval:       12 * time.Hour,
	}
}
