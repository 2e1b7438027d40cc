package config

import (
	"fmt"
	"net/url"
	"os"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: adapters → LLM → queue → ingest
	// Autonomy is validated during resolution, before this runs.

	if err := v.validateAdapters(); err != nil {
		return fmt.Errorf("adapter validation failed: %w", err)
	}

	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("LLM validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateIngest(); err != nil {
		return fmt.Errorf("ingest validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateAdapters() error {
	builtin := GetBuiltinConfig()

	for name, adapter := range v.cfg.Adapters {
		// Validate adapter type
		if !adapter.Type.IsValid() {
			return NewValidationError("adapter", name, "type", fmt.Errorf("invalid adapter type: %s", adapter.Type))
		}

		// Disabled adapters keep their config but skip the strict checks;
		// an operator may stub one out while wiring credentials.
		if !adapter.Enabled {
			continue
		}

		// Validate type-specific fields
		switch adapter.Type {
		case AdapterTypeKubernetes:
			if adapter.Kubernetes == nil {
				return NewValidationError("adapter", name, "kubernetes", fmt.Errorf("kubernetes block required for kubernetes adapter"))
			}

		case AdapterTypeRunbook:
			if adapter.Runbook == nil {
				return NewValidationError("adapter", name, "runbook", fmt.Errorf("runbook block required for runbook adapter"))
			}
			if adapter.Runbook.RepoURL == "" {
				return NewValidationError("adapter", name, "runbook.repo_url", fmt.Errorf("repo_url required for enabled runbook adapter"))
			}
			if _, err := url.Parse(adapter.Runbook.RepoURL); err != nil {
				return NewValidationError("adapter", name, "runbook.repo_url", fmt.Errorf("invalid URL: %v", err))
			}

		case AdapterTypePrometheus:
			if adapter.Prometheus == nil || adapter.Prometheus.BaseURL == "" {
				return NewValidationError("adapter", name, "prometheus.base_url", fmt.Errorf("base_url required for enabled prometheus adapter"))
			}
			if _, err := url.Parse(adapter.Prometheus.BaseURL); err != nil {
				return NewValidationError("adapter", name, "prometheus.base_url", fmt.Errorf("invalid URL: %v", err))
			}

		case AdapterTypePagerDuty:
			if adapter.PagerDuty == nil {
				return NewValidationError("adapter", name, "pagerduty", fmt.Errorf("pagerduty block required for pagerduty adapter"))
			}
			if adapter.PagerDuty.APIKeyEnv != "" {
				if value := os.Getenv(adapter.PagerDuty.APIKeyEnv); value == "" {
					return NewValidationError("adapter", name, "pagerduty.api_key_env", fmt.Errorf("environment variable %s is not set", adapter.PagerDuty.APIKeyEnv))
				}
			}
		}

		// Validate masking configuration
		if adapter.Masking != nil && adapter.Masking.Enabled {
			// Validate pattern groups reference built-in patterns
			for _, groupName := range adapter.Masking.PatternGroups {
				if _, exists := builtin.PatternGroups[groupName]; !exists {
					return NewValidationError("adapter", name, "masking.pattern_groups", fmt.Errorf("pattern group '%s' not found", groupName))
				}
			}

			// Validate individual patterns reference built-in patterns
			for _, patternName := range adapter.Masking.Patterns {
				if _, exists := builtin.MaskingPatterns[patternName]; !exists {
					return NewValidationError("adapter", name, "masking.patterns", fmt.Errorf("pattern '%s' not found", patternName))
				}
			}

			// Validate custom patterns have required fields
			for i, pattern := range adapter.Masking.CustomPatterns {
				if pattern.Pattern == "" {
					return NewValidationError("adapter", name, fmt.Sprintf("masking.custom_patterns[%d].pattern", i), fmt.Errorf("pattern required"))
				}
				if pattern.Replacement == "" {
					return NewValidationError("adapter", name, fmt.Sprintf("masking.custom_patterns[%d].replacement", i), fmt.Errorf("replacement required"))
				}
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateLLM() error {
	llm := v.cfg.LLM

	// Validate provider type
	if !llm.Provider.IsValid() {
		return NewValidationError("llm", "llm", "provider", fmt.Errorf("invalid provider type: %s", llm.Provider))
	}

	// Validate model is not empty
	if llm.Model == "" {
		return NewValidationError("llm", "llm", "model", fmt.Errorf("model required"))
	}

	// Ollama serves without credentials; every other provider needs the key set
	if llm.Provider != LLMProviderTypeOllama && llm.APIKeyEnv != "" {
		if value := os.Getenv(llm.APIKeyEnv); value == "" {
			return NewValidationError("llm", "llm", "api_key_env", fmt.Errorf("environment variable %s is not set", llm.APIKeyEnv))
		}
	}

	if llm.BaseURL != "" {
		if _, err := url.Parse(llm.BaseURL); err != nil {
			return NewValidationError("llm", "llm", "base_url", fmt.Errorf("invalid URL: %v", err))
		}
	}

	if llm.MaxTokens < 0 {
		return NewValidationError("llm", "llm", "max_tokens", fmt.Errorf("must not be negative"))
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	if q == nil {
		return fmt.Errorf("queue configuration is nil")
	}
	if q.WorkerCount < 1 || q.WorkerCount > 50 {
		return fmt.Errorf("worker_count must be between 1 and 50, got %d", q.WorkerCount)
	}
	if q.MaxConcurrentIncidents < 1 {
		return fmt.Errorf("max_concurrent_incidents must be at least 1, got %d", q.MaxConcurrentIncidents)
	}
	if q.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %v", q.PollInterval)
	}
	if q.PollIntervalJitter < 0 {
		return fmt.Errorf("poll_interval_jitter must be non-negative, got %v", q.PollIntervalJitter)
	}
	if q.PollIntervalJitter >= q.PollInterval {
		return fmt.Errorf("poll_interval_jitter must be less than poll_interval (%v), got %v", q.PollInterval, q.PollIntervalJitter)
	}
	if q.IncidentTimeout <= 0 {
		return fmt.Errorf("incident_timeout must be positive, got %v", q.IncidentTimeout)
	}
	if q.GracefulShutdownTimeout <= 0 {
		return fmt.Errorf("graceful_shutdown_timeout must be positive, got %v", q.GracefulShutdownTimeout)
	}
	if q.OrphanDetectionInterval <= 0 {
		return fmt.Errorf("orphan_detection_interval must be positive, got %v", q.OrphanDetectionInterval)
	}
	if q.OrphanThreshold <= 0 {
		return fmt.Errorf("orphan_threshold must be positive, got %v", q.OrphanThreshold)
	}
	if q.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat_interval must be positive, got %v", q.HeartbeatInterval)
	}
	if q.HeartbeatInterval >= q.OrphanThreshold {
		return fmt.Errorf("heartbeat_interval must be less than orphan_threshold (%v), got %v", q.OrphanThreshold, q.HeartbeatInterval)
	}

	return nil
}

func (v *ConfigValidator) validateIngest() error {
	in := v.cfg.Ingest

	if in.MaxPendingIncidents < 1 {
		return NewValidationError("ingest", "ingest", "max_pending_incidents", fmt.Errorf("must be at least 1"))
	}
	if in.DedupWindow <= 0 {
		return NewValidationError("ingest", "ingest", "dedup_window", fmt.Errorf("must be positive"))
	}

	return nil
}
