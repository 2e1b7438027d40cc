package models

// RiskLevel is the policy tag controlling the autonomy gate decision
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// IsValid checks if the risk level is valid
func (r RiskLevel) IsValid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}

// rank orders risk levels for max-wins comparisons
func (r RiskLevel) rank() int {
	switch r {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	default:
		return 0
	}
}

// AtLeast returns the higher of the two risk levels. Planner-recomputed risk
// never drops below the level the analysis declared.
func (r RiskLevel) AtLeast(other RiskLevel) RiskLevel {
	if other.rank() > r.rank() {
		return other
	}
	return r
}

// ActionType tags one remediation action vocabulary entry
type ActionType string

// Kubernetes action vocabulary. apply_manifest is forbidden by default;
// the delete_* entries are permanently forbidden and exist only so that
// model output proposing them can be named in audit records.
const (
	ActionRestartPod         ActionType = "restart_pod"
	ActionRestartDeployment  ActionType = "restart_deployment"
	ActionScaleDeployment    ActionType = "scale_deployment"
	ActionPatchMemoryLimit   ActionType = "patch_memory_limit"
	ActionPatchCPULimit      ActionType = "patch_cpu_limit"
	ActionRollbackDeployment ActionType = "rollback_deployment"
	ActionSetImage           ActionType = "set_image"
	ActionApplyManifest      ActionType = "apply_manifest"
	ActionDeleteNamespace    ActionType = "delete_namespace"
	ActionDeleteNode         ActionType = "delete_node"
	ActionDeletePV           ActionType = "delete_pv"
)

// Incident-management action vocabulary (pagerduty adapter)
const (
	ActionAcknowledgeIncident ActionType = "acknowledge_incident"
	ActionResolveIncident     ActionType = "resolve_incident"
	ActionAddNote             ActionType = "add_note"
)

// IsKnown reports whether the action type belongs to the remediation
// vocabulary. Parsed model output proposing anything else is dropped.
func (a ActionType) IsKnown() bool {
	switch a {
	case ActionRestartPod, ActionRestartDeployment, ActionScaleDeployment,
		ActionPatchMemoryLimit, ActionPatchCPULimit, ActionRollbackDeployment,
		ActionSetImage, ActionApplyManifest, ActionDeleteNamespace,
		ActionDeleteNode, ActionDeletePV,
		ActionAcknowledgeIncident, ActionResolveIncident, ActionAddNote:
		return true
	}
	return false
}

// ResolutionAction is one proposed remediation step inside a plan
type ResolutionAction struct {
	ActionType        ActionType        `json:"action_type"`
	Params            map[string]string `json:"params"`
	Description       string            `json:"description,omitempty"`
	Confidence        float64           `json:"confidence"`
	RiskLevel         RiskLevel         `json:"risk_level"`
	EstimatedDuration string            `json:"estimated_duration,omitempty"`
	RollbackPossible  bool              `json:"rollback_possible"`
	Rollback          *RollbackSpec     `json:"rollback,omitempty"`
	Prerequisites     []ActionType      `json:"prerequisites,omitempty"`
	Commands          []CommandSpec     `json:"commands,omitempty"` // filled by the planner
}

// RollbackSpec describes how to undo an action if verification fails
type RollbackSpec struct {
	ActionType ActionType        `json:"action_type"`
	Params     map[string]string `json:"params"`
}

// CommandSpec is an expanded, concrete, adapter-targeted invocation derived
// from a ResolutionAction by the command planner.
type CommandSpec struct {
	TargetSystem   string            `json:"target_system"`
	Verb           string            `json:"verb"`
	ActionType     ActionType        `json:"action_type"`
	Args           map[string]string `json:"args"`
	Rendered       string            `json:"rendered,omitempty"` // human-readable command line
	DryRun         bool              `json:"dry_run"`
	Forbidden      bool              `json:"forbidden"`
	ForbiddenRule  string            `json:"forbidden_rule,omitempty"`
	ClassifiedRisk RiskLevel         `json:"classified_risk"`
}

// CommandResult is what an adapter returns from ExecuteAction
type CommandResult struct {
	Stdout     string         `json:"stdout,omitempty"`
	Stderr     string         `json:"stderr,omitempty"`
	ExitCode   int            `json:"exit_code"`
	DurationMs int64          `json:"duration_ms"`
	Detail     map[string]any `json:"detail,omitempty"`
}

// ResolutionPlan is the model-produced, parsed, typed plan for an incident
type ResolutionPlan struct {
	RootCause                 string             `json:"root_cause"`
	ImpactAssessment          string             `json:"impact_assessment,omitempty"`
	Diagnostics               []string           `json:"diagnostics,omitempty"` // immediate-actions section, never executable
	Actions                   []ResolutionAction `json:"actions"`
	MonitoringRecommendations []string           `json:"monitoring_recommendations,omitempty"`
}

// HasActions reports whether the plan proposes any remediation at all
func (p *ResolutionPlan) HasActions() bool {
	return p != nil && len(p.Actions) > 0
}
