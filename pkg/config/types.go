package config

import "time"

// Shared types used across configuration structs

// AdapterConfig defines one integration adapter instance
type AdapterConfig struct {
	Type    AdapterType `yaml:"type"`
	Enabled bool        `yaml:"enabled"`

	// FetchTimeout bounds one fetch-context call; the aggregator enforces it
	FetchTimeout time.Duration `yaml:"fetch_timeout,omitempty"`

	// MaxContextBytes caps fetch-context output; larger results are truncated
	// (never failed) and flagged in the bundle
	MaxContextBytes int `yaml:"max_context_bytes,omitempty"`

	// Masking applies secret masking to this adapter's context output
	Masking *MaskingConfig `yaml:"masking,omitempty"`

	// Exactly one of the following matches Type
	Kubernetes *KubernetesAdapterConfig `yaml:"kubernetes,omitempty"`
	Runbook    *RunbookAdapterConfig    `yaml:"runbook,omitempty"`
	Prometheus *PrometheusAdapterConfig `yaml:"prometheus,omitempty"`
	PagerDuty  *PagerDutyAdapterConfig  `yaml:"pagerduty,omitempty"`
}

// MaskingConfig defines secret masking for an adapter's context output
type MaskingConfig struct {
	Enabled        bool             `yaml:"enabled"`
	PatternGroups  []string         `yaml:"pattern_groups,omitempty"`
	Patterns       []string         `yaml:"patterns,omitempty"`
	CustomPatterns []MaskingPattern `yaml:"custom_patterns,omitempty"`
}

// MaskingPattern defines a regex-based masking pattern
type MaskingPattern struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description,omitempty"`
}

// KubernetesAdapterConfig configures the acting cluster adapter
type KubernetesAdapterConfig struct {
	// KubeconfigPath defaults to the KUBERNETES_KUBECONFIG_PATH env var;
	// empty means in-cluster config
	KubeconfigPath string `yaml:"kubeconfig_path,omitempty"`
	Context        string `yaml:"context,omitempty"`
	// DefaultNamespace is used when the alert names no namespace
	DefaultNamespace string `yaml:"default_namespace,omitempty"`
	// LogTailLines is how many log lines fetch-context pulls per pod
	LogTailLines int64 `yaml:"log_tail_lines,omitempty"`
}

// RunbookAdapterConfig configures the documentation adapter
type RunbookAdapterConfig struct {
	// RepoURL is the base URL runbooks are resolved against,
	// e.g. https://github.com/acme/runbooks/blob/main
	RepoURL        string        `yaml:"repo_url,omitempty"`
	TokenEnv       string        `yaml:"token_env,omitempty"` // defaults to GITHUB_TOKEN
	CacheTTL       time.Duration `yaml:"cache_ttl,omitempty"`
	AllowedDomains []string      `yaml:"allowed_domains,omitempty"`
}

// PrometheusAdapterConfig configures the metrics adapter
type PrometheusAdapterConfig struct {
	BaseURL string `yaml:"base_url"`
	// QueryWindow is the lookback range for rate queries
	QueryWindow time.Duration `yaml:"query_window,omitempty"`
}

// PagerDutyAdapterConfig configures the incident-management adapter
type PagerDutyAdapterConfig struct {
	BaseURL string `yaml:"base_url,omitempty"` // defaults to the public API
	// APIKeyEnv / FromEmailEnv name the env vars carrying credentials
	APIKeyEnv    string `yaml:"api_key_env,omitempty"`
	FromEmailEnv string `yaml:"from_email_env,omitempty"`
}

// LLMConfig configures the analysis model client
type LLMConfig struct {
	Provider LLMProviderType `yaml:"provider"`
	Model    string          `yaml:"model"`
	// BaseURL overrides the provider default (self-hosted gateways, Ollama host)
	BaseURL   string        `yaml:"base_url,omitempty"`
	APIKeyEnv string        `yaml:"api_key_env,omitempty"` // defaults to MODEL_API_KEY
	Timeout   time.Duration `yaml:"timeout,omitempty"`
	MaxTokens int           `yaml:"max_tokens,omitempty"`
}

// IngestConfig configures webhook ingress behavior
type IngestConfig struct {
	// WebhookSecretEnv names the env var holding the HMAC shared secret;
	// an empty resolved secret disables signature checks (with a warning)
	WebhookSecretEnv string `yaml:"webhook_secret_env,omitempty"`
	// MaxPendingIncidents is the queue-full threshold behind 429 responses
	MaxPendingIncidents int `yaml:"max_pending_incidents,omitempty"`
	// DedupWindow collapses same-fingerprint alerts into one incident
	DedupWindow time.Duration `yaml:"dedup_window,omitempty"`
}

