package config

// AdapterType defines the built-in integration adapter implementations
type AdapterType string

const (
	// AdapterTypeKubernetes is the cluster adapter (context + remediation)
	AdapterTypeKubernetes AdapterType = "kubernetes"
	// AdapterTypeRunbook fetches service runbooks from source control
	AdapterTypeRunbook AdapterType = "runbook"
	// AdapterTypePrometheus queries a Prometheus HTTP API for service metrics
	AdapterTypePrometheus AdapterType = "prometheus"
	// AdapterTypePagerDuty talks to the incident-management REST API
	AdapterTypePagerDuty AdapterType = "pagerduty"
)

// IsValid checks if the adapter type is valid
func (t AdapterType) IsValid() bool {
	switch t {
	case AdapterTypeKubernetes, AdapterTypeRunbook, AdapterTypePrometheus, AdapterTypePagerDuty:
		return true
	default:
		return false
	}
}

// LLMProviderType defines supported analysis model providers
type LLMProviderType string

const (
	// LLMProviderTypeOpenAI is any OpenAI-compatible chat-completions API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeOllama is a local Ollama server
	LLMProviderTypeOllama LLMProviderType = "ollama"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	return t == LLMProviderTypeOpenAI || t == LLMProviderTypeOllama
}
