package config

// Defaults contains system-wide default configurations
// These values are used when specific components don't specify their own values
type Defaults struct {
	// Default severity assigned when an alert carries none
	Severity string `yaml:"severity,omitempty"`

	// Default service label when neither the payload nor routing rules name one
	Service string `yaml:"service,omitempty"`

	// Alert payload masking configuration
	AlertMasking *AlertMaskingDefaults `yaml:"alert_masking,omitempty"`
}

// AlertMaskingDefaults holds alert payload masking settings.
// Applied system-wide to all alert data before DB storage.
type AlertMaskingDefaults struct {
	Enabled      bool   `yaml:"enabled"`
	PatternGroup string `yaml:"pattern_group"`
}

// DefaultDefaults returns the built-in system defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		Severity: "medium",
		Service:  "unknown",
		AlertMasking: &AlertMaskingDefaults{
			Enabled:      true,
			PatternGroup: "basic",
		},
	}
}
