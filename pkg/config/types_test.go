package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAdapterConfigUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		check func(t *testing.T, cfg AdapterConfig)
	}{
		{
			name: "kubernetes adapter",
			yaml: `
type: kubernetes
enabled: true
fetch_timeout: 15s
kubernetes:
  kubeconfig_path: /etc/kube/config
  context: staging
  default_namespace: payments
  log_tail_lines: 250
`,
			check: func(t *testing.T, cfg AdapterConfig) {
				assert.Equal(t, AdapterTypeKubernetes, cfg.Type)
				assert.True(t, cfg.Enabled)
				assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
				require.NotNil(t, cfg.Kubernetes)
				assert.Equal(t, "/etc/kube/config", cfg.Kubernetes.KubeconfigPath)
				assert.Equal(t, "staging", cfg.Kubernetes.Context)
				assert.Equal(t, "payments", cfg.Kubernetes.DefaultNamespace)
				assert.Equal(t, int64(250), cfg.Kubernetes.LogTailLines)
			},
		},
		{
			name: "runbook adapter with masking",
			yaml: `
type: runbook
enabled: true
masking:
  enabled: true
  pattern_groups: [secrets]
  custom_patterns:
    - pattern: 'internal-id-\d+'
      replacement: '__MASKED_INTERNAL_ID__'
runbook:
  repo_url: https://github.com/acme/runbooks
  cache_ttl: 5m
  allowed_domains: [github.com]
`,
			check: func(t *testing.T, cfg AdapterConfig) {
				assert.Equal(t, AdapterTypeRunbook, cfg.Type)
				require.NotNil(t, cfg.Masking)
				assert.True(t, cfg.Masking.Enabled)
				assert.Equal(t, []string{"secrets"}, cfg.Masking.PatternGroups)
				require.Len(t, cfg.Masking.CustomPatterns, 1)
				assert.Equal(t, `internal-id-\d+`, cfg.Masking.CustomPatterns[0].Pattern)
				require.NotNil(t, cfg.Runbook)
				assert.Equal(t, 5*time.Minute, cfg.Runbook.CacheTTL)
			},
		},
		{
			name: "pagerduty adapter",
			yaml: `
type: pagerduty
enabled: true
pagerduty:
  api_key_env: PD_KEY
  from_email_env: PD_EMAIL
`,
			check: func(t *testing.T, cfg AdapterConfig) {
				assert.Equal(t, AdapterTypePagerDuty, cfg.Type)
				require.NotNil(t, cfg.PagerDuty)
				assert.Equal(t, "PD_KEY", cfg.PagerDuty.APIKeyEnv)
				assert.Equal(t, "PD_EMAIL", cfg.PagerDuty.FromEmailEnv)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg AdapterConfig
			require.NoError(t, yaml.Unmarshal([]byte(tt.yaml), &cfg))
			tt.check(t, cfg)
		})
	}
}

func TestLLMConfigUnmarshalYAML(t *testing.T) {
	raw := `
provider: ollama
model: llama3
base_url: http://ollama:11434
timeout: 90s
max_tokens: 2048
`
	var cfg LLMConfig
	require.NoError(t, yaml.Unmarshal([]byte(raw), &cfg))

	assert.Equal(t, LLMProviderTypeOllama, cfg.Provider)
	assert.Equal(t, "llama3", cfg.Model)
	assert.Equal(t, "http://ollama:11434", cfg.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, 2048, cfg.MaxTokens)
}
