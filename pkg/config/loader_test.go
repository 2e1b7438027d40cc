package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/models"
)

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)
	t.Setenv("MODEL_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.NotNil(t, cfg.Adapters)
	assert.NotNil(t, cfg.LLM)
	assert.NotNil(t, cfg.Autonomy)
	assert.NotNil(t, cfg.Ingest)
	assert.NotNil(t, cfg.Queue)
	assert.NotNil(t, cfg.Retention)
	assert.NotNil(t, cfg.Defaults)

	// Built-in adapters merged in
	assert.Contains(t, cfg.Adapters, "kubernetes")
	assert.Contains(t, cfg.Adapters, "runbook")
	assert.Contains(t, cfg.Adapters, "prometheus")
	assert.Contains(t, cfg.Adapters, "pagerduty")

	// Only the cluster adapter is enabled without extra configuration
	assert.Equal(t, []string{"kubernetes"}, cfg.EnabledAdapterNames())

	stats := cfg.Stats()
	assert.Equal(t, 4, stats.Adapters)
	assert.Equal(t, 1, stats.EnabledAdapters)
}

func TestInitializeWithoutConfigFile(t *testing.T) {
	// No vigil.yaml at all: builtins plus env must be a complete config.
	t.Setenv("MODEL_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, cfg.Adapters, "kubernetes")
	assert.Equal(t, models.ModeApproval, cfg.Autonomy.Mode)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	invalidYAML := `adapters: [this is: not yaml`
	err := os.WriteFile(filepath.Join(configDir, "vigil.yaml"), []byte(invalidYAML), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	// Enabled prometheus adapter without a base URL must fail validation.
	invalidConfig := `
adapters:
  prometheus:
    type: prometheus
    enabled: true
    prometheus:
      base_url: ""
`
	err := os.WriteFile(filepath.Join(configDir, "vigil.yaml"), []byte(invalidConfig), 0644)
	require.NoError(t, err)

	t.Setenv("MODEL_API_KEY", "test-key")

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "base_url")
}

func TestLoadVigilYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
defaults:
  severity: "high"
  service: "platform"

adapters:
  prometheus:
    type: prometheus
    enabled: true
    prometheus:
      base_url: "http://prom.internal:9090"
      query_window: 30m

llm:
  provider: ollama
  model: "llama3"
  base_url: "http://ollama.internal:11434"

autonomy:
  mode: yolo
  confidence_threshold: 0.85

ingest:
  max_pending_incidents: 42

queue:
  worker_count: 3
`
	err := os.WriteFile(filepath.Join(configDir, "vigil.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	vigilConfig, err := loader.loadVigilYAML()

	require.NoError(t, err)
	assert.NotNil(t, vigilConfig.Defaults)
	assert.Equal(t, "high", vigilConfig.Defaults.Severity)
	assert.Len(t, vigilConfig.Adapters, 1)
	require.NotNil(t, vigilConfig.LLM)
	assert.Equal(t, LLMProviderTypeOllama, vigilConfig.LLM.Provider)
	require.NotNil(t, vigilConfig.Autonomy)
	assert.Equal(t, "yolo", vigilConfig.Autonomy.Mode)
	require.NotNil(t, vigilConfig.Autonomy.ConfidenceThreshold)
	assert.InDelta(t, 0.85, *vigilConfig.Autonomy.ConfidenceThreshold, 0.0001)
	require.NotNil(t, vigilConfig.Ingest)
	assert.Equal(t, 42, vigilConfig.Ingest.MaxPendingIncidents)
	require.NotNil(t, vigilConfig.Queue)
	assert.Equal(t, 3, vigilConfig.Queue.WorkerCount)
}

func TestInitializeMergesUserAdapters(t *testing.T) {
	configDir := t.TempDir()

	config := `
adapters:
  kubernetes:
    type: kubernetes
    enabled: true
    kubernetes:
      default_namespace: "payments"
      log_tail_lines: 200
  prometheus:
    type: prometheus
    enabled: true
    prometheus:
      base_url: "http://prom.internal:9090"
`
	err := os.WriteFile(filepath.Join(configDir, "vigil.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	t.Setenv("MODEL_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	k8s, err := cfg.GetAdapter("kubernetes")
	require.NoError(t, err)
	assert.Equal(t, "payments", k8s.Kubernetes.DefaultNamespace)
	assert.Equal(t, int64(200), k8s.Kubernetes.LogTailLines)

	// User adapter got the fetch defaults applied
	prom, err := cfg.GetAdapter("prometheus")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, prom.FetchTimeout)
	assert.Equal(t, 64*1024, prom.MaxContextBytes)

	assert.Equal(t, []string{"kubernetes", "prometheus"}, cfg.EnabledAdapterNames())
}

func TestEnvironmentVariableInterpolationInConfig(t *testing.T) {
	configDir := t.TempDir()

	config := `
adapters:
  prometheus:
    type: prometheus
    enabled: true
    prometheus:
      base_url: "{{.TEST_PROM_URL}}"
`
	err := os.WriteFile(filepath.Join(configDir, "vigil.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	t.Setenv("TEST_PROM_URL", "http://prom.example.com:9090")
	t.Setenv("MODEL_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	prom, err := cfg.GetAdapter("prometheus")
	require.NoError(t, err)
	assert.Equal(t, "http://prom.example.com:9090", prom.Prometheus.BaseURL)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("MODEL_API_KEY", "test-key")
	t.Setenv("AUTONOMY_MODE", "yolo")
	t.Setenv("CONFIDENCE_THRESHOLD", "0.95")
	t.Setenv("DRY_RUN_MODE", "true")
	t.Setenv("DESTRUCTIVE_OPERATIONS_ENABLED", "true")
	t.Setenv("INCIDENT_DEDUP_WINDOW_SECONDS", "600")
	t.Setenv("MAX_PENDING_INCIDENTS", "7")
	t.Setenv("WORKER_COUNT", "2")
	t.Setenv("RETENTION_DAYS", "14")
	t.Setenv("AUDIT_RETENTION_DAYS", "180")
	t.Setenv("KUBERNETES_KUBECONFIG_PATH", "/var/run/kube/config")
	t.Setenv("KUBERNETES_CONTEXT", "prod-east")

	ctx := context.Background()
	cfg, err := Initialize(ctx, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, models.ModeYolo, cfg.Autonomy.Mode)
	assert.InDelta(t, 0.95, cfg.Autonomy.ConfidenceThreshold, 0.0001)
	assert.True(t, cfg.Autonomy.DryRunMode)
	assert.True(t, cfg.Autonomy.DestructiveEnabled)
	assert.Equal(t, 10*time.Minute, cfg.Ingest.DedupWindow)
	assert.Equal(t, 7, cfg.Ingest.MaxPendingIncidents)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 14, cfg.Retention.IncidentRetentionDays)
	assert.Equal(t, 180, cfg.Retention.AuditRetentionDays)

	k8s, err := cfg.GetAdapter("kubernetes")
	require.NoError(t, err)
	assert.Equal(t, "/var/run/kube/config", k8s.Kubernetes.KubeconfigPath)
	assert.Equal(t, "prod-east", k8s.Kubernetes.Context)
}

func TestInvalidEnvironmentOverridesIgnored(t *testing.T) {
	t.Setenv("MODEL_API_KEY", "test-key")
	t.Setenv("AUTONOMY_MODE", "rampage")
	t.Setenv("CONFIDENCE_THRESHOLD", "lots")
	t.Setenv("WORKER_COUNT", "-3")

	ctx := context.Background()
	cfg, err := Initialize(ctx, t.TempDir())
	require.NoError(t, err)

	// Bad values fall back to defaults instead of failing startup
	assert.Equal(t, models.ModeApproval, cfg.Autonomy.Mode)
	assert.InDelta(t, 0.7, cfg.Autonomy.ConfidenceThreshold, 0.0001)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
}

// Helper function to set up test config directory
func setupTestConfigDir(t *testing.T) string {
	dir := t.TempDir()

	vigilYAML := `
defaults:
  severity: "medium"
`
	err := os.WriteFile(filepath.Join(dir, "vigil.yaml"), []byte(vigilYAML), 0644)
	require.NoError(t, err)

	return dir
}
