// Package config provides configuration management: adapter definitions,
// queue and retention settings, the autonomy posture, and system defaults.
package config

import (
	"fmt"
	"sort"

	"github.com/vigilops/vigil/pkg/models"
)

// Config is the umbrella configuration object that encapsulates
// all adapter definitions, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Retention and cleanup configuration
	Retention *RetentionConfig

	// Integration adapters by name (builtin merged with user overrides)
	Adapters map[string]*AdapterConfig

	// Analysis model client configuration
	LLM *LLMConfig

	// Autonomy posture resolved at startup (defaults, YAML, then env).
	// Runtime changes go through the AutonomyStore; this is the seed value.
	Autonomy *models.AutonomyConfig

	// Webhook ingress configuration
	Ingest *IngestConfig

	// Slack notification configuration
	Slack *SlackConfig

	// DashboardURL is the externally reachable UI base, used in notifications
	DashboardURL string `yaml:"dashboard_url,omitempty"`

	// AllowedWSOrigins lists origins accepted for websocket upgrades
	AllowedWSOrigins []string `yaml:"allowed_ws_origins,omitempty"`
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Adapters        int
	EnabledAdapters int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{Adapters: len(c.Adapters)}
	for _, a := range c.Adapters {
		if a.Enabled {
			s.EnabledAdapters++
		}
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetAdapter retrieves an adapter configuration by name.
func (c *Config) GetAdapter(name string) (*AdapterConfig, error) {
	a, ok := c.Adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAdapterNotFound, name)
	}
	return a, nil
}

// EnabledAdapterNames returns a sorted list of enabled adapter names.
func (c *Config) EnabledAdapterNames() []string {
	names := make([]string, 0, len(c.Adapters))
	for name, a := range c.Adapters {
		if a.Enabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// AdapterNames returns a sorted list of all configured adapter names.
func (c *Config) AdapterNames() []string {
	names := make([]string, 0, len(c.Adapters))
	for name := range c.Adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
