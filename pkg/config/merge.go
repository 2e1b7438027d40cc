package config

// mergeAdapters merges built-in and user-defined adapter configurations.
// User-defined adapters override built-in adapters with the same name.
func mergeAdapters(builtinAdapters map[string]AdapterConfig, userAdapters map[string]AdapterConfig) map[string]*AdapterConfig {
	result := make(map[string]*AdapterConfig)

	// First, add built-in adapters. Copies are deep so later env overlays
	// never write through to the builtin singleton.
	for name, adapter := range builtinAdapters {
		result[name] = copyAdapterConfig(adapter)
	}

	// Then, override with user-defined adapters (or add new ones)
	for name, userAdapter := range userAdapters {
		result[name] = copyAdapterConfig(userAdapter)
	}

	return result
}

// copyAdapterConfig returns a deep copy of an adapter configuration.
func copyAdapterConfig(a AdapterConfig) *AdapterConfig {
	out := a

	if a.Masking != nil {
		m := *a.Masking
		m.PatternGroups = append([]string(nil), a.Masking.PatternGroups...)
		m.Patterns = append([]string(nil), a.Masking.Patterns...)
		m.CustomPatterns = append([]MaskingPattern(nil), a.Masking.CustomPatterns...)
		out.Masking = &m
	}
	if a.Kubernetes != nil {
		k := *a.Kubernetes
		out.Kubernetes = &k
	}
	if a.Runbook != nil {
		r := *a.Runbook
		r.AllowedDomains = append([]string(nil), a.Runbook.AllowedDomains...)
		out.Runbook = &r
	}
	if a.Prometheus != nil {
		p := *a.Prometheus
		out.Prometheus = &p
	}
	if a.PagerDuty != nil {
		p := *a.PagerDuty
		out.PagerDuty = &p
	}

	return &out
}
