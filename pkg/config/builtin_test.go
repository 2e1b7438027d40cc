package config

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuiltinConfig(t *testing.T) {
	// Test singleton pattern - should return same instance
	cfg1 := GetBuiltinConfig()
	cfg2 := GetBuiltinConfig()

	assert.Same(t, cfg1, cfg2, "GetBuiltinConfig should return same instance")
	assert.NotNil(t, cfg1, "Built-in config should not be nil")
}

func TestBuiltinConfigThreadSafety(t *testing.T) {
	const goroutines = 100

	var wg sync.WaitGroup
	configs := make([]*BuiltinConfig, goroutines)

	// Launch multiple goroutines to access config concurrently
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			configs[index] = GetBuiltinConfig()
		}(i)
	}

	wg.Wait()

	// All goroutines should get the same instance
	for i := 1; i < goroutines; i++ {
		assert.Same(t, configs[0], configs[i], "All goroutines should get same instance")
	}
}

func TestBuiltinAdapters(t *testing.T) {
	cfg := GetBuiltinConfig()

	tests := []struct {
		name        string
		adapterName string
		wantType    AdapterType
		wantEnabled bool
	}{
		{"kubernetes enabled by default", "kubernetes", AdapterTypeKubernetes, true},
		{"runbook disabled by default", "runbook", AdapterTypeRunbook, false},
		{"prometheus disabled by default", "prometheus", AdapterTypePrometheus, false},
		{"pagerduty disabled by default", "pagerduty", AdapterTypePagerDuty, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, ok := cfg.Adapters[tt.adapterName]
			require.True(t, ok, "builtin adapter %s should exist", tt.adapterName)
			assert.Equal(t, tt.wantType, adapter.Type)
			assert.Equal(t, tt.wantEnabled, adapter.Enabled)
		})
	}
}

func TestBuiltinKubernetesAdapterDefaults(t *testing.T) {
	cfg := GetBuiltinConfig()

	k8s := cfg.Adapters["kubernetes"]
	require.NotNil(t, k8s.Kubernetes)
	assert.Equal(t, "default", k8s.Kubernetes.DefaultNamespace)
	assert.Equal(t, int64(100), k8s.Kubernetes.LogTailLines)
	require.NotNil(t, k8s.Masking)
	assert.True(t, k8s.Masking.Enabled)
	assert.Contains(t, k8s.Masking.PatternGroups, "kubernetes")
}

func TestBuiltinPagerDutyAdapterDefaults(t *testing.T) {
	cfg := GetBuiltinConfig()

	pd := cfg.Adapters["pagerduty"]
	require.NotNil(t, pd.PagerDuty)
	assert.Equal(t, "https://api.pagerduty.com", pd.PagerDuty.BaseURL)
	assert.Equal(t, "INCIDENT_MANAGEMENT_API_KEY", pd.PagerDuty.APIKeyEnv)
	assert.Equal(t, "INCIDENT_MANAGEMENT_USER_EMAIL", pd.PagerDuty.FromEmailEnv)
}

func TestBuiltinLLMDefaults(t *testing.T) {
	cfg := GetBuiltinConfig()

	assert.Equal(t, LLMProviderTypeOpenAI, cfg.LLM.Provider)
	assert.NotEmpty(t, cfg.LLM.Model)
	assert.Equal(t, "MODEL_API_KEY", cfg.LLM.APIKeyEnv)
}

func TestBuiltinMaskingPatternsCompile(t *testing.T) {
	cfg := GetBuiltinConfig()

	require.NotEmpty(t, cfg.MaskingPatterns)
	for name, pattern := range cfg.MaskingPatterns {
		t.Run(name, func(t *testing.T) {
			_, err := regexp.Compile(pattern.Pattern)
			require.NoError(t, err, "builtin pattern %s must compile", name)
			assert.NotEmpty(t, pattern.Replacement)
		})
	}
}

func TestBuiltinPatternGroupsResolve(t *testing.T) {
	cfg := GetBuiltinConfig()

	require.NotEmpty(t, cfg.PatternGroups)
	for group, members := range cfg.PatternGroups {
		t.Run(group, func(t *testing.T) {
			require.NotEmpty(t, members)
			for _, member := range members {
				_, isPattern := cfg.MaskingPatterns[member]
				_, isCodeMasker := cfg.CodeMaskers[member]
				assert.True(t, isPattern || isCodeMasker,
					"group %s references unknown member %s", group, member)
			}
		})
	}
}
