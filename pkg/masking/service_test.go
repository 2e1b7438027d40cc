package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigilops/vigil/pkg/config"
)

func maskedAdapter(groups ...string) *config.AdapterConfig {
	return &config.AdapterConfig{
		Masking: &config.MaskingConfig{Enabled: true, PatternGroups: groups},
	}
}

func TestNewServiceCompilesBuiltins(t *testing.T) {
	s := NewService(nil, testLogger())

	assert.Len(t, s.patterns, len(config.GetBuiltinConfig().MaskingPatterns))
	assert.Contains(t, s.codeMaskers, "kubernetes_secret")
	require.NotNil(t, s.alertSet)
	assert.Len(t, s.alertSet.patterns, 2)
}

func TestMaskContextDataPassthrough(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.AdapterConfig
	}{
		{name: "adapter not configured", cfg: nil},
		{name: "no masking section", cfg: &config.AdapterConfig{}},
		{
			name: "masking disabled",
			cfg: &config.AdapterConfig{
				Masking: &config.MaskingConfig{Enabled: false, PatternGroups: []string{"all"}},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			configs := map[string]*config.AdapterConfig{}
			if tc.cfg != nil {
				configs["prometheus"] = tc.cfg
			}
			s := NewService(configs, testLogger())

			data := map[string]any{"logs": "password=hunter2secret"}
			out := s.MaskContextData("prometheus", data)

			assert.Equal(t, data, out)
		})
	}
}

func TestMaskContextDataNil(t *testing.T) {
	s := NewService(map[string]*config.AdapterConfig{
		"prometheus": maskedAdapter("basic"),
	}, testLogger())

	assert.Nil(t, s.MaskContextData("prometheus", nil))
}

func TestMaskContextDataMasksStrings(t *testing.T) {
	s := NewService(map[string]*config.AdapterConfig{
		"prometheus": maskedAdapter("basic"),
	}, testLogger())

	out := s.MaskContextData("prometheus", map[string]any{
		"logs":    "login failed: password=hunter2secret for svc account",
		"queried": true,
		"count":   3,
	})

	logs, ok := out["logs"].(string)
	require.True(t, ok)
	assert.Contains(t, logs, "__MASKED_PASSWORD__")
	assert.NotContains(t, logs, "hunter2secret")
	assert.Equal(t, true, out["queried"])
	assert.Equal(t, 3, out["count"])
}

func TestMaskContextDataWalksNestedValues(t *testing.T) {
	s := NewService(map[string]*config.AdapterConfig{
		"kubernetes": maskedAdapter("basic"),
	}, testLogger())

	data := map[string]any{
		"deployment": map[string]any{
			"env_dump": "api_key: zyxwvutsrqponmlkjihg",
		},
		"pods": []map[string]any{
			{"log": "password=verysecret99", "restarts": 4},
		},
		"tags":   []string{"password=abcdefgh1"},
		"events": []any{"api_key: abcdefghij0123456789", 7},
	}
	out := s.MaskContextData("kubernetes", data)

	deployment := out["deployment"].(map[string]any)
	assert.Contains(t, deployment["env_dump"], "__MASKED_API_KEY__")

	pods := out["pods"].([]map[string]any)
	require.Len(t, pods, 1)
	assert.Contains(t, pods[0]["log"], "__MASKED_PASSWORD__")
	assert.Equal(t, 4, pods[0]["restarts"])

	tags := out["tags"].([]string)
	assert.Contains(t, tags[0], "__MASKED_PASSWORD__")

	events := out["events"].([]any)
	assert.Contains(t, events[0], "__MASKED_API_KEY__")
	assert.Equal(t, 7, events[1])
}

func TestMaskContextDataDoesNotMutateInput(t *testing.T) {
	s := NewService(map[string]*config.AdapterConfig{
		"kubernetes": maskedAdapter("basic"),
	}, testLogger())

	inner := map[string]any{"env_dump": "password=hunter2secret"}
	data := map[string]any{"deployment": inner}

	_ = s.MaskContextData("kubernetes", data)

	assert.Equal(t, "password=hunter2secret", inner["env_dump"])
}

func TestMaskContextDataCustomPatterns(t *testing.T) {
	s := NewService(map[string]*config.AdapterConfig{
		"runbook": {
			Masking: &config.MaskingConfig{
				Enabled: true,
				CustomPatterns: []config.MaskingPattern{
					{Pattern: `ticket-\d+`, Replacement: "[TICKET]"},
				},
			},
		},
	}, testLogger())

	out := s.MaskContextData("runbook", map[string]any{
		"content": "escalate via ticket-4231 when paged",
	})

	assert.Equal(t, "escalate via [TICKET] when paged", out["content"])
}

func TestMaskContextDataSecretManifest(t *testing.T) {
	s := NewService(map[string]*config.AdapterConfig{
		"kubernetes": maskedAdapter("kubernetes"),
	}, testLogger())

	manifest := `apiVersion: v1
kind: Secret
metadata:
  name: db-credentials
type: Opaque
data:
  ca.crt: dGhpcy1pcy1zZWNyZXQtc3R1ZmY=
`
	out := s.MaskContextData("kubernetes", map[string]any{"manifest": manifest})

	masked, ok := out["manifest"].(string)
	require.True(t, ok)
	assert.Contains(t, masked, SecretValueMask)
	assert.NotContains(t, masked, "dGhpcy1pcy1zZWNyZXQtc3R1ZmY=")
	assert.Contains(t, masked, "db-credentials")
}

func TestMaskAlertData(t *testing.T) {
	s := NewService(nil, testLogger())

	t.Run("masks credentials in payloads", func(t *testing.T) {
		out := s.MaskAlertData(`{"details": "password=hunter2secret"}`)
		assert.Contains(t, out, "__MASKED_PASSWORD__")
		assert.NotContains(t, out, "hunter2secret")
	})

	t.Run("leaves plain payloads alone", func(t *testing.T) {
		payload := `{"service": "checkout", "severity": "critical"}`
		assert.Equal(t, payload, s.MaskAlertData(payload))
	})

	t.Run("empty payload", func(t *testing.T) {
		assert.Equal(t, "", s.MaskAlertData(""))
	})
}
