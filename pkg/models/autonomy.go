package models

// AutonomyMode is the operator-set policy controlling whether commands run
// automatically (yolo), only after approval (approval), or never (plan).
type AutonomyMode string

const (
	ModeYolo     AutonomyMode = "yolo"
	ModeApproval AutonomyMode = "approval"
	ModePlan     AutonomyMode = "plan"
)

// IsValid checks if the autonomy mode is valid
func (m AutonomyMode) IsValid() bool {
	return m == ModeYolo || m == ModeApproval || m == ModePlan
}

// AutonomyConfig is the process-wide, hot-reloadable execution policy.
// Readers receive an immutable snapshot; the operator API replaces the
// whole value atomically.
type AutonomyConfig struct {
	Mode                AutonomyMode               `json:"mode"`
	ConfidenceThreshold float64                    `json:"confidence_threshold"`
	RiskMatrix          map[RiskLevel][]ActionType `json:"risk_matrix,omitempty"`
	ApprovalRequiredFor []RiskLevel                `json:"approval_required_for"`
	DestructiveEnabled  bool                       `json:"destructive_operations_enabled"`
	DryRunMode          bool                       `json:"dry_run_mode"`
	EmergencyStop       bool                       `json:"emergency_stop"`
	YoloTrustAll        bool                       `json:"yolo_trust_all"`
	ResolveOnClear      bool                       `json:"resolve_on_clear"`
}

// MatrixAllows reports whether the risk matrix approves an action type at the
// given risk level. A nil matrix or an absent level imposes no restriction;
// an explicit (possibly empty) entry is an allowlist.
func (c *AutonomyConfig) MatrixAllows(risk RiskLevel, action ActionType) bool {
	if c.RiskMatrix == nil {
		return true
	}
	approved, ok := c.RiskMatrix[risk]
	if !ok {
		return true
	}
	for _, a := range approved {
		if a == action {
			return true
		}
	}
	return false
}

// RequiresApproval reports whether the risk level is routed to the approval
// queue in approval mode.
func (c *AutonomyConfig) RequiresApproval(risk RiskLevel) bool {
	for _, r := range c.ApprovalRequiredFor {
		if r == risk {
			return true
		}
	}
	return false
}
