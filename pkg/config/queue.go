package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how incidents are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and claims incidents.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentIncidents is the global limit of incidents being processed
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentIncidents int `yaml:"max_concurrent_incidents"`

	// PollInterval is the base interval for checking claimable incidents.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// IncidentTimeout is the per-incident processing deadline. On expiry the
	// task tree is torn down and the incident fails with reason timeout.
	IncidentTimeout time.Duration `yaml:"incident_timeout"`

	// ExecutionGracePeriod is how long a cancelled incident waits for an
	// already-issued command before tearing down, so the resulting record
	// still reaches the audit log.
	ExecutionGracePeriod time.Duration `yaml:"execution_grace_period"`

	// GracefulShutdownTimeout is the max time to wait for active incidents
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned incidents.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long an incident can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// HeartbeatInterval is how often workers update heartbeat_at on the
	// incidents they hold. Must be well under OrphanThreshold.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// QuietPeriod is the post-analysis wait before an empty plan is
	// abandoned when the alerting subject still looks unhealthy.
	QuietPeriod time.Duration `yaml:"quiet_period"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentIncidents:  5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		IncidentTimeout:         30 * time.Minute,
		ExecutionGracePeriod:    30 * time.Second,
		GracefulShutdownTimeout: 30 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		QuietPeriod:             2 * time.Minute,
	}
}
