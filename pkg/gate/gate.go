// Package gate decides, per expanded command, whether vigil may execute it
// autonomously, must park it for a human, or may only preview it. Decisions
// are pure functions of the command, its confidence, and the autonomy
// snapshot, so every decision is reproducible from the audit record.
package gate

import (
	"fmt"

	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/models"
)

// Outcome is the gate's verdict for one command.
type Outcome string

const (
	// OutcomeExecute runs the command now.
	OutcomeExecute Outcome = "auto_execute"
	// OutcomeApproval parks the command for a human decision.
	OutcomeApproval Outcome = "approval_required"
	// OutcomePreview records what would have run without running it.
	OutcomePreview Outcome = "preview_only"
	// OutcomeSkip refuses the command outright.
	OutcomeSkip Outcome = "skip"
)

// Decision carries the verdict plus the reason recorded for preview and
// skip outcomes.
type Decision struct {
	Outcome Outcome
	Reason  models.SkipReason
	Detail  string
}

// Per-risk confidence floors for autonomous execution. The low floor is the
// configurable confidence_threshold; these two are policy constants.
const (
	mediumRiskFloor = 0.8
	highRiskFloor   = 0.9
)

// Decide gates one command. Precedence: forbidden commands are refused in
// every mode; emergency stop blocks all mutating work unconditionally; an
// open breaker, plan/dry-run postures, and disabled destructive operations
// preview; then the mode policy applies, with the per-risk confidence
// ladder deciding autonomous execution.
func Decide(cmd models.CommandSpec, confidence float64, cfg *models.AutonomyConfig, breakerOpen bool) Decision {
	if cmd.Forbidden {
		return Decision{Outcome: OutcomeSkip, Reason: models.SkipPolicyForbidden, Detail: cmd.ForbiddenRule}
	}
	if cfg == nil {
		cfg = config.DefaultAutonomyConfig()
	}
	if cfg.EmergencyStop {
		return Decision{Outcome: OutcomePreview, Reason: models.SkipEmergencyStop}
	}
	if breakerOpen {
		return Decision{Outcome: OutcomePreview, Reason: models.SkipCircuitOpen}
	}
	if cfg.Mode == models.ModePlan {
		return Decision{Outcome: OutcomePreview, Reason: models.SkipPlanMode}
	}
	if cfg.DryRunMode || cmd.DryRun {
		return Decision{Outcome: OutcomePreview, Reason: models.SkipDryRun}
	}
	// destructive_operations_enabled=false means dry-run-only for anything
	// that mutates; low risk covers only reads and upstream notifications.
	if !cfg.DestructiveEnabled && cmd.ClassifiedRisk != models.RiskLow {
		return Decision{
			Outcome: OutcomePreview,
			Reason:  models.SkipDryRun,
			Detail:  "destructive operations are disabled",
		}
	}

	risk := cmd.ClassifiedRisk
	if !cfg.MatrixAllows(risk, cmd.ActionType) {
		return Decision{
			Outcome: OutcomeSkip,
			Reason:  models.SkipPolicyForbidden,
			Detail:  fmt.Sprintf("risk matrix excludes %s at %s risk", cmd.ActionType, risk),
		}
	}

	switch cfg.Mode {
	case models.ModeApproval:
		if requiresApproval(cfg, risk) {
			return Decision{Outcome: OutcomeApproval}
		}
	case models.ModeYolo:
	default:
		return Decision{
			Outcome: OutcomePreview,
			Reason:  models.SkipPlanMode,
			Detail:  fmt.Sprintf("unknown mode %q", cfg.Mode),
		}
	}

	threshold := confidenceFloor(risk, cfg)
	if confidence < threshold {
		return Decision{
			Outcome: OutcomeSkip,
			Reason:  models.SkipBelowConfidence,
			Detail:  fmt.Sprintf("confidence %.2f below %.2f for %s risk", confidence, threshold, risk),
		}
	}
	return Decision{Outcome: OutcomeExecute}
}

// confidenceFloor is the autonomous-execution ladder: high 0.9, medium 0.8,
// low the configured threshold. yolo_trust_all drops the low floor to zero
// (the operator contract that yolo trusts the model for low-risk work);
// raising confidence_threshold above a fixed floor raises that floor too.
func confidenceFloor(risk models.RiskLevel, cfg *models.AutonomyConfig) float64 {
	switch risk {
	case models.RiskHigh:
		return maxFloat(highRiskFloor, cfg.ConfidenceThreshold)
	case models.RiskMedium:
		return maxFloat(mediumRiskFloor, cfg.ConfidenceThreshold)
	}
	if cfg.Mode == models.ModeYolo && cfg.YoloTrustAll {
		return 0
	}
	return cfg.ConfidenceThreshold
}

// requiresApproval applies the approval routing set, defaulting to medium
// and high when the config carries none.
func requiresApproval(cfg *models.AutonomyConfig, risk models.RiskLevel) bool {
	if len(cfg.ApprovalRequiredFor) == 0 {
		return risk == models.RiskMedium || risk == models.RiskHigh
	}
	return cfg.RequiresApproval(risk)
}

// ApprovalsFrozen reports whether pending approval decisions are blocked.
// Under emergency stop, approvals are neither accepted nor rejected until
// the flag clears; the API surfaces this as a conflict.
func ApprovalsFrozen(cfg *models.AutonomyConfig) bool {
	return cfg != nil && cfg.EmergencyStop
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
