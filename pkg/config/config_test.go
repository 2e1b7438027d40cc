package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigConvenienceMethods tests all convenience methods on Config
func TestConfigConvenienceMethods(t *testing.T) {
	cfg := &Config{
		configDir: "/test/config",
		Adapters: map[string]*AdapterConfig{
			"kubernetes": {Type: AdapterTypeKubernetes, Enabled: true},
			"prometheus": {Type: AdapterTypePrometheus, Enabled: false},
			"runbook":    {Type: AdapterTypeRunbook, Enabled: true},
		},
	}

	t.Run("ConfigDir", func(t *testing.T) {
		assert.Equal(t, "/test/config", cfg.ConfigDir())
	})

	t.Run("GetAdapter success", func(t *testing.T) {
		adapter, err := cfg.GetAdapter("kubernetes")
		require.NoError(t, err)
		assert.NotNil(t, adapter)
		assert.Equal(t, AdapterTypeKubernetes, adapter.Type)
	})

	t.Run("GetAdapter not found", func(t *testing.T) {
		_, err := cfg.GetAdapter("nonexistent")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAdapterNotFound)
	})

	t.Run("AdapterNames sorted", func(t *testing.T) {
		assert.Equal(t, []string{"kubernetes", "prometheus", "runbook"}, cfg.AdapterNames())
	})

	t.Run("EnabledAdapterNames sorted", func(t *testing.T) {
		assert.Equal(t, []string{"kubernetes", "runbook"}, cfg.EnabledAdapterNames())
	})
}

func TestConfigStats(t *testing.T) {
	cfg := &Config{
		Adapters: map[string]*AdapterConfig{
			"a1": {Enabled: true},
			"a2": {Enabled: false},
			"a3": {Enabled: true},
		},
	}

	stats := cfg.Stats()
	assert.Equal(t, 3, stats.Adapters)
	assert.Equal(t, 2, stats.EnabledAdapters)
}
