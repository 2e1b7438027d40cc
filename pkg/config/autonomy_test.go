package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/models"
)

func TestDefaultAutonomyConfig(t *testing.T) {
	cfg := DefaultAutonomyConfig()

	assert.Equal(t, models.ModeApproval, cfg.Mode)
	assert.InDelta(t, 0.7, cfg.ConfidenceThreshold, 0.0001)
	assert.Equal(t, []models.RiskLevel{models.RiskMedium, models.RiskHigh}, cfg.ApprovalRequiredFor)
	assert.False(t, cfg.DestructiveEnabled)
	assert.False(t, cfg.DryRunMode)
	assert.False(t, cfg.EmergencyStop)
	assert.False(t, cfg.YoloTrustAll)
	assert.False(t, cfg.ResolveOnClear)
	assert.Nil(t, cfg.RiskMatrix)
}

func TestResolveAutonomyConfig(t *testing.T) {
	threshold := 0.9
	yes := true

	tests := []struct {
		name    string
		yaml    *AutonomyYAMLConfig
		check   func(t *testing.T, cfg *models.AutonomyConfig)
		wantErr string
	}{
		{
			name: "nil yaml yields defaults",
			yaml: nil,
			check: func(t *testing.T, cfg *models.AutonomyConfig) {
				assert.Equal(t, models.ModeApproval, cfg.Mode)
			},
		},
		{
			name: "yaml overrides defaults",
			yaml: &AutonomyYAMLConfig{
				Mode:                "yolo",
				ConfidenceThreshold: &threshold,
				DryRunMode:          &yes,
			},
			check: func(t *testing.T, cfg *models.AutonomyConfig) {
				assert.Equal(t, models.ModeYolo, cfg.Mode)
				assert.InDelta(t, 0.9, cfg.ConfidenceThreshold, 0.0001)
				assert.True(t, cfg.DryRunMode)
				// Untouched fields keep defaults
				assert.False(t, cfg.DestructiveEnabled)
			},
		},
		{
			name: "risk matrix carried through",
			yaml: &AutonomyYAMLConfig{
				RiskMatrix: map[models.RiskLevel][]models.ActionType{
					models.RiskHigh: {models.ActionRollbackDeployment},
				},
			},
			check: func(t *testing.T, cfg *models.AutonomyConfig) {
				require.NotNil(t, cfg.RiskMatrix)
				assert.True(t, cfg.MatrixAllows(models.RiskHigh, models.ActionRollbackDeployment))
				assert.False(t, cfg.MatrixAllows(models.RiskHigh, models.ActionDeleteNamespace))
			},
		},
		{
			name:    "invalid mode rejected",
			yaml:    &AutonomyYAMLConfig{Mode: "turbo"},
			wantErr: "mode",
		},
		{
			name: "threshold out of range rejected",
			yaml: func() *AutonomyYAMLConfig {
				bad := 1.5
				return &AutonomyYAMLConfig{ConfidenceThreshold: &bad}
			}(),
			wantErr: "confidence_threshold",
		},
		{
			name: "unknown risk level in matrix rejected",
			yaml: &AutonomyYAMLConfig{
				RiskMatrix: map[models.RiskLevel][]models.ActionType{
					models.RiskLevel("extreme"): {models.ActionRestartPod},
				},
			},
			wantErr: "risk_matrix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := resolveAutonomyConfig(tt.yaml)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestResolveAutonomyConfigEnvWinsOverYAML(t *testing.T) {
	t.Setenv("AUTONOMY_MODE", "plan")

	threshold := 0.8
	cfg, err := resolveAutonomyConfig(&AutonomyYAMLConfig{
		Mode:                "yolo",
		ConfidenceThreshold: &threshold,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ModePlan, cfg.Mode)
	assert.InDelta(t, 0.8, cfg.ConfidenceThreshold, 0.0001)
}

func TestAutonomyStoreSnapshotAndUpdate(t *testing.T) {
	initial := DefaultAutonomyConfig()
	store := NewAutonomyStore(initial)

	snap := store.Snapshot()
	assert.Same(t, initial, snap)

	next := DefaultAutonomyConfig()
	next.Mode = models.ModeYolo
	prev := store.Update(next)

	assert.Same(t, initial, prev)
	assert.Same(t, next, store.Snapshot())
}

func TestAutonomyStoreSetEmergencyStop(t *testing.T) {
	store := NewAutonomyStore(DefaultAutonomyConfig())

	updated := store.SetEmergencyStop(true)
	assert.True(t, updated.EmergencyStop)
	assert.True(t, store.Snapshot().EmergencyStop)
	// The rest of the posture is preserved
	assert.Equal(t, models.ModeApproval, store.Snapshot().Mode)

	// Setting the same value is a no-op returning the current snapshot
	again := store.SetEmergencyStop(true)
	assert.Same(t, store.Snapshot(), again)

	cleared := store.SetEmergencyStop(false)
	assert.False(t, cleared.EmergencyStop)
}

func TestAutonomyStoreConcurrentReaders(t *testing.T) {
	store := NewAutonomyStore(DefaultAutonomyConfig())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				snap := store.Snapshot()
				// Snapshots are always internally consistent
				assert.True(t, snap.Mode.IsValid())
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(flip bool) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.SetEmergencyStop(flip)
			}
		}(i%2 == 0)
	}
	wg.Wait()
}

func TestAutonomyStorePanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewAutonomyStore(nil) })

	store := NewAutonomyStore(DefaultAutonomyConfig())
	assert.Panics(t, func() { store.Update(nil) })
}
