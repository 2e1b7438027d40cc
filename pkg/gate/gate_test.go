package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/models"
)

func yoloConfig() *models.AutonomyConfig {
	cfg := config.DefaultAutonomyConfig()
	cfg.Mode = models.ModeYolo
	cfg.DestructiveEnabled = true
	return cfg
}

func approvalConfig() *models.AutonomyConfig {
	cfg := config.DefaultAutonomyConfig()
	cfg.DestructiveEnabled = true
	return cfg
}

func command(risk models.RiskLevel) models.CommandSpec {
	return models.CommandSpec{
		TargetSystem:   "kubernetes",
		Verb:           "restart",
		ActionType:     models.ActionRestartDeployment,
		Rendered:       "kubectl rollout restart deployment/api -n prod",
		ClassifiedRisk: risk,
	}
}

func TestDecideForbiddenAlwaysSkips(t *testing.T) {
	forbidden := command(models.RiskHigh)
	forbidden.Forbidden = true
	forbidden.ForbiddenRule = "protected_resource_delete"

	for _, mode := range []models.AutonomyMode{models.ModeYolo, models.ModeApproval, models.ModePlan} {
		t.Run(string(mode), func(t *testing.T) {
			cfg := config.DefaultAutonomyConfig()
			cfg.Mode = mode

			d := Decide(forbidden, 1.0, cfg, false)

			assert.Equal(t, OutcomeSkip, d.Outcome)
			assert.Equal(t, models.SkipPolicyForbidden, d.Reason)
			assert.Equal(t, "protected_resource_delete", d.Detail)
		})
	}
}

func TestDecideEmergencyStop(t *testing.T) {
	cfg := yoloConfig()
	cfg.EmergencyStop = true

	d := Decide(command(models.RiskLow), 1.0, cfg, false)

	assert.Equal(t, OutcomePreview, d.Outcome)
	assert.Equal(t, models.SkipEmergencyStop, d.Reason)
}

func TestDecideEmergencyStopBeatsBreaker(t *testing.T) {
	cfg := yoloConfig()
	cfg.EmergencyStop = true

	d := Decide(command(models.RiskLow), 1.0, cfg, true)

	assert.Equal(t, models.SkipEmergencyStop, d.Reason)
}

func TestDecideBreakerOpen(t *testing.T) {
	d := Decide(command(models.RiskLow), 1.0, yoloConfig(), true)

	assert.Equal(t, OutcomePreview, d.Outcome)
	assert.Equal(t, models.SkipCircuitOpen, d.Reason)
}

func TestDecidePlanMode(t *testing.T) {
	cfg := config.DefaultAutonomyConfig()
	cfg.Mode = models.ModePlan

	d := Decide(command(models.RiskLow), 1.0, cfg, false)

	assert.Equal(t, OutcomePreview, d.Outcome)
	assert.Equal(t, models.SkipPlanMode, d.Reason)
}

func TestDecideDryRun(t *testing.T) {
	t.Run("config flag", func(t *testing.T) {
		cfg := yoloConfig()
		cfg.DryRunMode = true

		d := Decide(command(models.RiskLow), 1.0, cfg, false)

		assert.Equal(t, OutcomePreview, d.Outcome)
		assert.Equal(t, models.SkipDryRun, d.Reason)
	})

	t.Run("command flag", func(t *testing.T) {
		cmd := command(models.RiskLow)
		cmd.DryRun = true

		d := Decide(cmd, 1.0, yoloConfig(), false)

		assert.Equal(t, models.SkipDryRun, d.Reason)
	})
}

func TestDecideRiskMatrixExclusion(t *testing.T) {
	cfg := yoloConfig()
	cfg.RiskMatrix = map[models.RiskLevel][]models.ActionType{
		models.RiskMedium: {models.ActionScaleDeployment},
	}

	d := Decide(command(models.RiskMedium), 1.0, cfg, false)

	assert.Equal(t, OutcomeSkip, d.Outcome)
	assert.Equal(t, models.SkipPolicyForbidden, d.Reason)
	assert.Contains(t, d.Detail, "risk matrix excludes restart_deployment")

	allowed := command(models.RiskMedium)
	allowed.ActionType = models.ActionScaleDeployment
	assert.Equal(t, OutcomeExecute, Decide(allowed, 1.0, cfg, false).Outcome)
}

func TestDecideYoloConfidenceLadder(t *testing.T) {
	tests := []struct {
		name       string
		risk       models.RiskLevel
		confidence float64
		want       Outcome
	}{
		{name: "low at threshold", risk: models.RiskLow, confidence: 0.7, want: OutcomeExecute},
		{name: "low below threshold", risk: models.RiskLow, confidence: 0.69, want: OutcomeSkip},
		{name: "medium at floor", risk: models.RiskMedium, confidence: 0.8, want: OutcomeExecute},
		{name: "medium below floor", risk: models.RiskMedium, confidence: 0.79, want: OutcomeSkip},
		{name: "high at floor", risk: models.RiskHigh, confidence: 0.9, want: OutcomeExecute},
		{name: "high below floor", risk: models.RiskHigh, confidence: 0.89, want: OutcomeSkip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(command(tt.risk), tt.confidence, yoloConfig(), false)

			assert.Equal(t, tt.want, d.Outcome)
			if tt.want == OutcomeSkip {
				assert.Equal(t, models.SkipBelowConfidence, d.Reason)
				assert.Contains(t, d.Detail, string(tt.risk))
			}
		})
	}
}

func TestDecideYoloTrustAll(t *testing.T) {
	cfg := yoloConfig()
	cfg.YoloTrustAll = true

	d := Decide(command(models.RiskLow), 0.1, cfg, false)
	assert.Equal(t, OutcomeExecute, d.Outcome)

	// Trust-all relaxes only the low floor.
	d = Decide(command(models.RiskMedium), 0.79, cfg, false)
	assert.Equal(t, OutcomeSkip, d.Outcome)
	assert.Equal(t, models.SkipBelowConfidence, d.Reason)
}

func TestDecideRaisedGlobalThreshold(t *testing.T) {
	cfg := yoloConfig()
	cfg.ConfidenceThreshold = 0.95

	for _, risk := range []models.RiskLevel{models.RiskLow, models.RiskMedium, models.RiskHigh} {
		t.Run(string(risk), func(t *testing.T) {
			d := Decide(command(risk), 0.94, cfg, false)

			assert.Equal(t, OutcomeSkip, d.Outcome)
			assert.Equal(t, models.SkipBelowConfidence, d.Reason)
		})
	}
	assert.Equal(t, OutcomeExecute, Decide(command(models.RiskHigh), 0.95, cfg, false).Outcome)
}

func TestDecideApprovalRouting(t *testing.T) {
	cfg := approvalConfig()

	assert.Equal(t, OutcomeApproval, Decide(command(models.RiskMedium), 1.0, cfg, false).Outcome)
	assert.Equal(t, OutcomeApproval, Decide(command(models.RiskHigh), 1.0, cfg, false).Outcome)

	// Low risk is not routed for approval; the confidence ladder applies.
	d := Decide(command(models.RiskLow), 0.7, cfg, false)
	assert.Equal(t, OutcomeExecute, d.Outcome)

	d = Decide(command(models.RiskLow), 0.5, cfg, false)
	assert.Equal(t, OutcomeSkip, d.Outcome)
	assert.Equal(t, models.SkipBelowConfidence, d.Reason)
}

func TestDecideApprovalCustomSet(t *testing.T) {
	cfg := approvalConfig()
	cfg.ApprovalRequiredFor = []models.RiskLevel{models.RiskHigh}

	// Medium falls through to the confidence ladder at its own floor.
	assert.Equal(t, OutcomeExecute, Decide(command(models.RiskMedium), 0.8, cfg, false).Outcome)
	assert.Equal(t, OutcomeSkip, Decide(command(models.RiskMedium), 0.79, cfg, false).Outcome)
	assert.Equal(t, OutcomeApproval, Decide(command(models.RiskHigh), 1.0, cfg, false).Outcome)
}

func TestDecideApprovalEmptySetDefaults(t *testing.T) {
	cfg := approvalConfig()
	cfg.ApprovalRequiredFor = nil

	assert.Equal(t, OutcomeApproval, Decide(command(models.RiskMedium), 1.0, cfg, false).Outcome)
	assert.Equal(t, OutcomeApproval, Decide(command(models.RiskHigh), 1.0, cfg, false).Outcome)
	assert.Equal(t, OutcomeExecute, Decide(command(models.RiskLow), 0.9, cfg, false).Outcome)
}

func TestDecideNilConfigUsesDefaults(t *testing.T) {
	// The default posture keeps destructive operations disabled, so a
	// mutating command previews instead of reaching the approval queue.
	d := Decide(command(models.RiskMedium), 1.0, nil, false)

	assert.Equal(t, OutcomePreview, d.Outcome)
	assert.Equal(t, models.SkipDryRun, d.Reason)
}

func TestDecideDestructiveDisabled(t *testing.T) {
	cfg := yoloConfig()
	cfg.DestructiveEnabled = false

	for _, risk := range []models.RiskLevel{models.RiskMedium, models.RiskHigh} {
		t.Run(string(risk), func(t *testing.T) {
			d := Decide(command(risk), 1.0, cfg, false)

			assert.Equal(t, OutcomePreview, d.Outcome)
			assert.Equal(t, models.SkipDryRun, d.Reason)
			assert.Contains(t, d.Detail, "destructive operations are disabled")
		})
	}

	// Reads and upstream notifications are not mutations; they still run.
	d := Decide(command(models.RiskLow), 1.0, cfg, false)
	assert.Equal(t, OutcomeExecute, d.Outcome)
}

func TestDecideUnknownMode(t *testing.T) {
	cfg := config.DefaultAutonomyConfig()
	cfg.Mode = "supervised"

	d := Decide(command(models.RiskLow), 1.0, cfg, false)

	assert.Equal(t, OutcomePreview, d.Outcome)
	assert.Equal(t, models.SkipPlanMode, d.Reason)
	assert.Contains(t, d.Detail, "supervised")
}

func TestApprovalsFrozen(t *testing.T) {
	assert.False(t, ApprovalsFrozen(nil))
	assert.False(t, ApprovalsFrozen(config.DefaultAutonomyConfig()))

	cfg := config.DefaultAutonomyConfig()
	cfg.EmergencyStop = true
	assert.True(t, ApprovalsFrozen(cfg))
}
