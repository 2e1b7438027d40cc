package config

import (
	"sync"
	"time"
)

// BuiltinConfig holds all built-in configuration data.
// This provides default adapters, default LLM settings, and masking patterns.
type BuiltinConfig struct {
	Adapters        map[string]AdapterConfig
	LLM             LLMConfig
	MaskingPatterns map[string]MaskingPattern
	PatternGroups   map[string][]string
	CodeMaskers     map[string]string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		Adapters:        initBuiltinAdapters(),
		LLM:             initBuiltinLLM(),
		MaskingPatterns: initBuiltinMaskingPatterns(),
		PatternGroups:   initBuiltinPatternGroups(),
		CodeMaskers:     initBuiltinCodeMaskers(),
	}
}

// initBuiltinAdapters returns the adapter set available without any user
// configuration. Only the cluster adapter is enabled out of the box; the
// rest need credentials or endpoints and stay disabled until configured.
func initBuiltinAdapters() map[string]AdapterConfig {
	return map[string]AdapterConfig{
		"kubernetes": {
			Type:            AdapterTypeKubernetes,
			Enabled:         true,
			FetchTimeout:    10 * time.Second,
			MaxContextBytes: 64 * 1024,
			Masking: &MaskingConfig{
				Enabled:       true,
				PatternGroups: []string{"kubernetes"},
				Patterns:      []string{"certificate", "token"},
			},
			Kubernetes: &KubernetesAdapterConfig{
				DefaultNamespace: "default",
				LogTailLines:     100,
			},
		},
		"runbook": {
			Type:            AdapterTypeRunbook,
			Enabled:         false,
			FetchTimeout:    10 * time.Second,
			MaxContextBytes: 64 * 1024,
			Runbook: &RunbookAdapterConfig{
				TokenEnv: "GITHUB_TOKEN",
				CacheTTL: 10 * time.Minute,
				AllowedDomains: []string{
					"github.com",
					"raw.githubusercontent.com",
				},
			},
		},
		"prometheus": {
			Type:            AdapterTypePrometheus,
			Enabled:         false,
			FetchTimeout:    10 * time.Second,
			MaxContextBytes: 64 * 1024,
			Prometheus: &PrometheusAdapterConfig{
				QueryWindow: 15 * time.Minute,
			},
		},
		"pagerduty": {
			Type:            AdapterTypePagerDuty,
			Enabled:         false,
			FetchTimeout:    10 * time.Second,
			MaxContextBytes: 64 * 1024,
			PagerDuty: &PagerDutyAdapterConfig{
				BaseURL:      "https://api.pagerduty.com",
				APIKeyEnv:    "INCIDENT_MANAGEMENT_API_KEY",
				FromEmailEnv: "INCIDENT_MANAGEMENT_USER_EMAIL",
			},
		},
	}
}

func initBuiltinLLM() LLMConfig {
	return LLMConfig{
		Provider:  LLMProviderTypeOpenAI,
		Model:     "gpt-4o",
		APIKeyEnv: "MODEL_API_KEY",
		Timeout:   120 * time.Second,
		MaxTokens: 4096,
	}
}

func initBuiltinMaskingPatterns() map[string]MaskingPattern {
	return map[string]MaskingPattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey|key)["\']?\s*[:=]\s*["\']?([A-Za-z0-9_\-]{20,})["\']?`,
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
			Description: "API keys",
		},
		"password": {
			Pattern:     `(?i)(?:password|pwd|pass)["\']?\s*[:=]\s*["\']?([^"\'\s\n]{6,})["\']?`,
			Replacement: `"password": "__MASKED_PASSWORD__"`,
			Description: "Passwords",
		},
		"certificate": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `__MASKED_CERTIFICATE__`,
			Description: "SSL/TLS certificates",
		},
		"certificate_authority_data": {
			Pattern:     `(?i)certificate-authority-data:\s*([A-Za-z0-9+/]{20,}={0,2})`,
			Replacement: `certificate-authority-data: __MASKED_CA_CERTIFICATE__`,
			Description: "K8s CA data",
		},
		"token": {
			Pattern:     `(?i)(?:token|bearer|jwt)["\']?\s*[:=]\s*["\']?([A-Za-z0-9_\-\.]{20,})["\']?`,
			Replacement: `"token": "__MASKED_TOKEN__"`,
			Description: "Access tokens",
		},
		"email": {
			Pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9]+(?:[.-][A-Za-z0-9]+)*\.[A-Za-z]{2,63}\b`,
			Replacement: `__MASKED_EMAIL__`,
			Description: "Email addresses",
		},
		"ssh_key": {
			Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			Replacement: `__MASKED_SSH_KEY__`,
			Description: "SSH public keys",
		},
		"base64_secret": {
			Pattern:     `\b([A-Za-z0-9+/]{20,}={0,2})\b`,
			Replacement: `__MASKED_BASE64_VALUE__`,
			Description: "Base64 values (20+ chars)",
		},
		"private_key": {
			Pattern:     `(?i)(?:private[_-]?key)["\']?\s*[:=]\s*["\']?([A-Za-z0-9_\-\.]{20,})["\']?`,
			Replacement: `"private_key": "__MASKED_PRIVATE_KEY__"`,
			Description: "Private keys",
		},
		"secret_key": {
			Pattern:     `(?i)(?:secret[_-]?key)["\']?\s*[:=]\s*["\']?([A-Za-z0-9_\-\.]{20,})["\']?`,
			Replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
			Description: "Secret keys",
		},
		"aws_access_key": {
			Pattern:     `(?i)(?:aws[_-]?access[_-]?key[_-]?id)["\']?\s*[:=]\s*["\']?(AKIA[A-Z0-9]{16})["\']?`,
			Replacement: `"aws_access_key_id": "__MASKED_AWS_KEY__"`,
			Description: "AWS access keys",
		},
		"aws_secret_key": {
			Pattern:     `(?i)(?:aws[_-]?secret[_-]?access[_-]?key)["\']?\s*[:=]\s*["\']?([A-Za-z0-9/+=]{40})["\']?`,
			Replacement: `"aws_secret_access_key": "__MASKED_AWS_SECRET__"`,
			Description: "AWS secret keys",
		},
		"github_token": {
			Pattern:     `(?i)(?:github[_-]?token|gh[ps]_[A-Za-z0-9_]{36,255})`,
			Replacement: `__MASKED_GITHUB_TOKEN__`,
			Description: "GitHub tokens",
		},
		"slack_token": {
			Pattern:     `(?i)xox[baprs]-[A-Za-z0-9-]{10,72}`,
			Replacement: `__MASKED_SLACK_TOKEN__`,
			Description: "Slack tokens",
		},
	}
}

// initBuiltinPatternGroups returns predefined groups of masking patterns.
// Group members reference either MaskingPatterns (regex-based) or CodeMaskers
// (structural parsers such as kubernetes_secret, which masks only Secret data
// and leaves ConfigMaps untouched).
func initBuiltinPatternGroups() map[string][]string {
	return map[string][]string{
		"basic":      {"api_key", "password"},
		"secrets":    {"api_key", "password", "token", "private_key", "secret_key"},
		"security":   {"api_key", "password", "token", "certificate", "certificate_authority_data", "email", "ssh_key"},
		"kubernetes": {"kubernetes_secret", "api_key", "password", "certificate_authority_data"},
		"cloud":      {"aws_access_key", "aws_secret_key", "api_key", "token"},
		"all":        {"base64_secret", "api_key", "password", "certificate", "certificate_authority_data", "email", "token", "ssh_key", "private_key", "secret_key", "aws_access_key", "aws_secret_key", "github_token", "slack_token"},
	}
}

// initBuiltinCodeMaskers returns code-based maskers for masking that needs
// structural parsing rather than a regex sweep. Names here are registered by
// the masking service at startup.
func initBuiltinCodeMaskers() map[string]string {
	return map[string]string{
		"kubernetes_secret": "pkg/masking.KubernetesSecretMasker",
	}
}
