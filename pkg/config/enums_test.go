package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdapterTypeIsValid(t *testing.T) {
	tests := []struct {
		name    string
		adapter AdapterType
		valid   bool
	}{
		{"kubernetes", AdapterTypeKubernetes, true},
		{"runbook", AdapterTypeRunbook, true},
		{"prometheus", AdapterTypePrometheus, true},
		{"pagerduty", AdapterTypePagerDuty, true},
		{"invalid", AdapterType("invalid"), false},
		{"empty", AdapterType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.adapter.IsValid())
		})
	}
}

func TestLLMProviderTypeIsValid(t *testing.T) {
	tests := []struct {
		name     string
		provider LLMProviderType
		valid    bool
	}{
		{"openai", LLMProviderTypeOpenAI, true},
		{"ollama", LLMProviderTypeOllama, true},
		{"invalid", LLMProviderType("invalid"), false},
		{"empty", LLMProviderType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.provider.IsValid())
		})
	}
}
