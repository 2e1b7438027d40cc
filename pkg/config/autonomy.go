package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/vigilops/vigil/pkg/models"
)

// AutonomyYAMLConfig is the autonomy block of vigil.yaml. Pointer fields
// distinguish "unset" from an explicit false/zero so defaults survive.
type AutonomyYAMLConfig struct {
	Mode                string                                   `yaml:"mode,omitempty"`
	ConfidenceThreshold *float64                                 `yaml:"confidence_threshold,omitempty"`
	RiskMatrix          map[models.RiskLevel][]models.ActionType `yaml:"risk_matrix,omitempty"`
	ApprovalRequiredFor []models.RiskLevel                       `yaml:"approval_required_for,omitempty"`
	DestructiveEnabled  *bool                                    `yaml:"destructive_operations_enabled,omitempty"`
	DryRunMode          *bool                                    `yaml:"dry_run_mode,omitempty"`
	YoloTrustAll        *bool                                    `yaml:"yolo_trust_all,omitempty"`
	ResolveOnClear      *bool                                    `yaml:"resolve_on_clear,omitempty"`
}

// DefaultAutonomyConfig returns the conservative built-in posture: approval
// mode, medium and high risk parked for a human, destructive verbs off.
func DefaultAutonomyConfig() *models.AutonomyConfig {
	return &models.AutonomyConfig{
		Mode:                models.ModeApproval,
		ConfidenceThreshold: 0.7,
		ApprovalRequiredFor: []models.RiskLevel{models.RiskMedium, models.RiskHigh},
		DestructiveEnabled:  false,
		DryRunMode:          false,
		EmergencyStop:       false,
		YoloTrustAll:        false,
		ResolveOnClear:      false,
	}
}

// resolveAutonomyConfig resolves the initial autonomy posture: built-in
// defaults, overridden by YAML, overridden by environment variables.
// The environment wins so a deploy can flip the mode without editing YAML.
func resolveAutonomyConfig(yamlCfg *AutonomyYAMLConfig) (*models.AutonomyConfig, error) {
	cfg := DefaultAutonomyConfig()

	if yamlCfg != nil {
		if yamlCfg.Mode != "" {
			cfg.Mode = models.AutonomyMode(yamlCfg.Mode)
		}
		if yamlCfg.ConfidenceThreshold != nil {
			cfg.ConfidenceThreshold = *yamlCfg.ConfidenceThreshold
		}
		if yamlCfg.RiskMatrix != nil {
			cfg.RiskMatrix = yamlCfg.RiskMatrix
		}
		if yamlCfg.ApprovalRequiredFor != nil {
			cfg.ApprovalRequiredFor = yamlCfg.ApprovalRequiredFor
		}
		if yamlCfg.DestructiveEnabled != nil {
			cfg.DestructiveEnabled = *yamlCfg.DestructiveEnabled
		}
		if yamlCfg.DryRunMode != nil {
			cfg.DryRunMode = *yamlCfg.DryRunMode
		}
		if yamlCfg.YoloTrustAll != nil {
			cfg.YoloTrustAll = *yamlCfg.YoloTrustAll
		}
		if yamlCfg.ResolveOnClear != nil {
			cfg.ResolveOnClear = *yamlCfg.ResolveOnClear
		}
	}

	applyAutonomyEnvOverrides(cfg)

	if !cfg.Mode.IsValid() {
		return nil, NewValidationError("autonomy", "autonomy", "mode",
			fmt.Errorf("%w: %q (expected yolo, approval, or plan)", ErrInvalidValue, cfg.Mode))
	}
	if cfg.ConfidenceThreshold < 0 || cfg.ConfidenceThreshold > 1 {
		return nil, NewValidationError("autonomy", "autonomy", "confidence_threshold",
			fmt.Errorf("%w: %v (expected 0..1)", ErrInvalidValue, cfg.ConfidenceThreshold))
	}
	for risk := range cfg.RiskMatrix {
		if !risk.IsValid() {
			return nil, NewValidationError("autonomy", "autonomy", "risk_matrix",
				fmt.Errorf("%w: unknown risk level %q", ErrInvalidValue, risk))
		}
	}
	for _, risk := range cfg.ApprovalRequiredFor {
		if !risk.IsValid() {
			return nil, NewValidationError("autonomy", "autonomy", "approval_required_for",
				fmt.Errorf("%w: unknown risk level %q", ErrInvalidValue, risk))
		}
	}

	return cfg, nil
}

// applyAutonomyEnvOverrides overlays the autonomy environment variables onto
// cfg. Invalid values are logged and ignored rather than failing startup.
func applyAutonomyEnvOverrides(cfg *models.AutonomyConfig) {
	if v := os.Getenv("AUTONOMY_MODE"); v != "" {
		mode := models.AutonomyMode(v)
		if mode.IsValid() {
			cfg.Mode = mode
		} else {
			slog.Warn("Ignoring invalid AUTONOMY_MODE", "value", v)
		}
	}
	if v := os.Getenv("CONFIDENCE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.ConfidenceThreshold = f
		} else {
			slog.Warn("Ignoring invalid CONFIDENCE_THRESHOLD", "value", v)
		}
	}
	overlayBoolEnv("DESTRUCTIVE_OPERATIONS_ENABLED", &cfg.DestructiveEnabled)
	overlayBoolEnv("DRY_RUN_MODE", &cfg.DryRunMode)
	overlayBoolEnv("YOLO_TRUST_ALL", &cfg.YoloTrustAll)
	overlayBoolEnv("RESOLVE_ON_CLEAR", &cfg.ResolveOnClear)
}

func overlayBoolEnv(name string, target *bool) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Ignoring invalid boolean environment variable", "name", name, "value", v)
		return
	}
	*target = b
}

// AutonomyStore holds the live autonomy posture. Readers get an immutable
// snapshot; writers replace the whole value. The gate and planner read it on
// every decision, so a mode flip applies to the next command, not the next
// incident.
type AutonomyStore struct {
	current atomic.Pointer[models.AutonomyConfig]
}

// NewAutonomyStore creates a store seeded with the given posture.
func NewAutonomyStore(initial *models.AutonomyConfig) *AutonomyStore {
	if initial == nil {
		panic("autonomy store requires an initial config")
	}
	s := &AutonomyStore{}
	s.current.Store(initial)
	return s
}

// Snapshot returns the current posture. Callers must not mutate it.
func (s *AutonomyStore) Snapshot() *models.AutonomyConfig {
	return s.current.Load()
}

// Update replaces the posture wholesale and returns the previous value.
func (s *AutonomyStore) Update(next *models.AutonomyConfig) *models.AutonomyConfig {
	if next == nil {
		panic("autonomy store update requires a config")
	}
	return s.current.Swap(next)
}

// SetEmergencyStop flips only the emergency stop flag, preserving the rest
// of the posture.
func (s *AutonomyStore) SetEmergencyStop(stop bool) *models.AutonomyConfig {
	for {
		old := s.current.Load()
		if old.EmergencyStop == stop {
			return old
		}
		next := *old
		next.EmergencyStop = stop
		if s.current.CompareAndSwap(old, &next) {
			return &next
		}
	}
}
