package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// VigilYAMLConfig represents the complete vigil.yaml file structure
type VigilYAMLConfig struct {
	System   *SystemYAMLConfig        `yaml:"system"`
	Adapters map[string]AdapterConfig `yaml:"adapters"`
	LLM      *LLMConfig               `yaml:"llm"`
	Autonomy *AutonomyYAMLConfig      `yaml:"autonomy"`
	Ingest   *IngestConfig            `yaml:"ingest"`
	Defaults *Defaults                `yaml:"defaults"`
	Queue    *QueueConfig             `yaml:"queue"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	DashboardURL     string           `yaml:"dashboard_url"`
	AllowedWSOrigins []string         `yaml:"allowed_ws_origins"`
	Slack            *SlackYAMLConfig `yaml:"slack"`
	Retention        *RetentionConfig `yaml:"retention"`
}

// SlackYAMLConfig holds Slack notification settings from YAML.
type SlackYAMLConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load vigil.yaml from configDir (missing file falls back to builtins)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined adapter configurations
//  5. Resolve LLM, autonomy, ingest, queue, and retention settings
//  6. Overlay environment variables on the resolved settings
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"adapters", stats.Adapters,
		"enabled_adapters", stats.EnabledAdapters,
		"autonomy_mode", cfg.Autonomy.Mode,
		"dry_run", cfg.Autonomy.DryRunMode)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load vigil.yaml (adapters, llm, autonomy, ingest, defaults, queue)
	vigilConfig, err := loader.loadVigilYAML()
	if err != nil {
		return nil, NewLoadError("vigil.yaml", err)
	}

	// 2. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 3. Merge built-in + user-defined adapters (user overrides built-in)
	adapters := mergeAdapters(builtin.Adapters, vigilConfig.Adapters)

	// 4. Apply adapter defaults (before validation)
	for _, adapter := range adapters {
		if adapter.FetchTimeout == 0 {
			adapter.FetchTimeout = 10 * time.Second
		}
		if adapter.MaxContextBytes == 0 {
			adapter.MaxContextBytes = 64 * 1024
		}
	}
	applyAdapterEnvOverrides(adapters)

	// 5. Resolve defaults (YAML overrides built-in)
	defaults := vigilConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}

	// Apply built-in defaults for any unset values
	builtinDefaults := DefaultDefaults()
	if defaults.Severity == "" {
		defaults.Severity = builtinDefaults.Severity
	}
	if defaults.Service == "" {
		defaults.Service = builtinDefaults.Service
	}
	if defaults.AlertMasking == nil {
		defaults.AlertMasking = builtinDefaults.AlertMasking
	}

	// 6. Resolve queue config (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve unset defaults
	queueConfig := DefaultQueueConfig()
	if vigilConfig.Queue != nil {
		// Merge user-provided config into defaults (non-zero values override)
		if err := mergo.Merge(queueConfig, vigilConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	applyQueueEnvOverrides(queueConfig)

	// 7. Resolve remaining sections with their defaults and env overlays
	llmConfig, err := resolveLLMConfig(vigilConfig.LLM)
	if err != nil {
		return nil, err
	}
	autonomyConfig, err := resolveAutonomyConfig(vigilConfig.Autonomy)
	if err != nil {
		return nil, err
	}
	ingestConfig := resolveIngestConfig(vigilConfig.Ingest)
	slackCfg := resolveSlackConfig(vigilConfig.System)
	retentionCfg := resolveRetentionConfig(vigilConfig.System)
	dashboardURL := resolveDashboardURL(vigilConfig.System)
	allowedWSOrigins := resolveAllowedWSOrigins(vigilConfig.System)

	return &Config{
		configDir:        configDir,
		Defaults:         defaults,
		Queue:            queueConfig,
		Retention:        retentionCfg,
		Adapters:         adapters,
		LLM:              llmConfig,
		Autonomy:         autonomyConfig,
		Ingest:           ingestConfig,
		Slack:            slackCfg,
		DashboardURL:     dashboardURL,
		AllowedWSOrigins: allowedWSOrigins,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadVigilYAML() (*VigilYAMLConfig, error) {
	var config VigilYAMLConfig

	// Initialize maps to avoid nil maps
	config.Adapters = make(map[string]AdapterConfig)

	if err := l.loadYAML("vigil.yaml", &config); err != nil {
		// A missing vigil.yaml is not fatal: builtins plus environment
		// variables are a complete configuration for the common deploy.
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No vigil.yaml found, using built-in configuration", "config_dir", l.configDir)
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// resolveLLMConfig resolves the model client configuration, applying defaults
// and the MODEL_* environment overrides.
func resolveLLMConfig(userCfg *LLMConfig) (*LLMConfig, error) {
	builtin := GetBuiltinConfig().LLM
	cfg := &builtin

	if userCfg != nil {
		if err := mergo.Merge(cfg, userCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	if v := os.Getenv("MODEL_PROVIDER"); v != "" {
		cfg.Provider = LLMProviderType(v)
	}
	if v := os.Getenv("MODEL_NAME"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("MODEL_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = "MODEL_API_KEY"
	}
	if cfg.BaseURL == "" && cfg.Provider == LLMProviderTypeOllama {
		cfg.BaseURL = "http://localhost:11434"
	}

	return cfg, nil
}

// resolveIngestConfig resolves webhook ingress configuration from YAML,
// applying defaults and environment overrides.
func resolveIngestConfig(userCfg *IngestConfig) *IngestConfig {
	cfg := &IngestConfig{
		WebhookSecretEnv:    "WEBHOOK_SECRET",
		MaxPendingIncidents: 100,
		DedupWindow:         5 * time.Minute,
	}

	if userCfg != nil {
		if userCfg.WebhookSecretEnv != "" {
			cfg.WebhookSecretEnv = userCfg.WebhookSecretEnv
		}
		if userCfg.MaxPendingIncidents > 0 {
			cfg.MaxPendingIncidents = userCfg.MaxPendingIncidents
		}
		if userCfg.DedupWindow > 0 {
			cfg.DedupWindow = userCfg.DedupWindow
		}
	}

	if v := os.Getenv("INCIDENT_DEDUP_WINDOW_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.DedupWindow = time.Duration(secs) * time.Second
		} else {
			slog.Warn("Ignoring invalid INCIDENT_DEDUP_WINDOW_SECONDS", "value", v)
		}
	}
	if v := os.Getenv("MAX_PENDING_INCIDENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxPendingIncidents = n
		} else {
			slog.Warn("Ignoring invalid MAX_PENDING_INCIDENTS", "value", v)
		}
	}

	return cfg
}

// applyAdapterEnvOverrides overlays adapter environment variables. Only the
// cluster adapter has dedicated variables; the rest are configured via YAML
// with {{.VAR}} expansion.
func applyAdapterEnvOverrides(adapters map[string]*AdapterConfig) {
	for _, adapter := range adapters {
		if adapter.Type != AdapterTypeKubernetes {
			continue
		}
		if adapter.Kubernetes == nil {
			adapter.Kubernetes = &KubernetesAdapterConfig{}
		}
		if v := os.Getenv("KUBERNETES_KUBECONFIG_PATH"); v != "" {
			adapter.Kubernetes.KubeconfigPath = v
		}
		if v := os.Getenv("KUBERNETES_CONTEXT"); v != "" {
			adapter.Kubernetes.Context = v
		}
	}
}

// applyQueueEnvOverrides overlays queue environment variables.
func applyQueueEnvOverrides(cfg *QueueConfig) {
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WorkerCount = n
		} else {
			slog.Warn("Ignoring invalid WORKER_COUNT", "value", v)
		}
	}
}

// resolveSlackConfig resolves Slack configuration from system YAML, applying defaults.
func resolveSlackConfig(sys *SystemYAMLConfig) *SlackConfig {
	cfg := &SlackConfig{
		Enabled:  false,
		TokenEnv: "SLACK_BOT_TOKEN",
	}

	if sys == nil || sys.Slack == nil {
		return cfg
	}

	s := sys.Slack
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.TokenEnv != "" {
		cfg.TokenEnv = s.TokenEnv
	}
	if s.Channel != "" {
		cfg.Channel = s.Channel
	}

	return cfg
}

// resolveDashboardURL resolves the dashboard base URL from system YAML, applying defaults.
func resolveDashboardURL(sys *SystemYAMLConfig) string {
	if sys != nil && sys.DashboardURL != "" {
		return sys.DashboardURL
	}
	return "http://localhost:5173"
}

// resolveRetentionConfig resolves retention configuration from system YAML,
// applying defaults and the RETENTION_DAYS / AUDIT_RETENTION_DAYS overrides.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys != nil && sys.Retention != nil {
		r := sys.Retention
		if r.IncidentRetentionDays > 0 {
			cfg.IncidentRetentionDays = r.IncidentRetentionDays
		}
		if r.AuditRetentionDays > 0 {
			cfg.AuditRetentionDays = r.AuditRetentionDays
		}
		if r.EventTTL > 0 {
			cfg.EventTTL = r.EventTTL
		}
		if r.CleanupInterval > 0 {
			cfg.CleanupInterval = r.CleanupInterval
		}
	}

	if v := os.Getenv("RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.IncidentRetentionDays = n
		} else {
			slog.Warn("Ignoring invalid RETENTION_DAYS", "value", v)
		}
	}
	if v := os.Getenv("AUDIT_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AuditRetentionDays = n
		} else {
			slog.Warn("Ignoring invalid AUDIT_RETENTION_DAYS", "value", v)
		}
	}

	return cfg
}

// resolveAllowedWSOrigins returns additional WebSocket origin patterns from system YAML.
func resolveAllowedWSOrigins(sys *SystemYAMLConfig) []string {
	if sys != nil {
		return sys.AllowedWSOrigins
	}
	return nil
}
