package events

import (
	"github.com/vigilops/vigil/pkg/models"
)

// BasePayload carries the fields every event payload shares. IncidentID is
// empty only for fleet-wide events published on the global channel.
type BasePayload struct {
	Type       string `json:"type"`                  // one of the EventType* constants
	IncidentID string `json:"incident_id,omitempty"` // owning incident UUID
	Timestamp  string `json:"timestamp"`             // RFC3339Nano
}

// IncidentCreatedPayload is the payload for incident.created events.
// Published when webhook ingress accepts an alert and opens a new incident.
type IncidentCreatedPayload struct {
	BasePayload
	Service     string               `json:"service"`     // affected service name
	Severity    models.Severity      `json:"severity"`    // critical, high, medium, low
	Source      models.AlertSource   `json:"source"`      // pagerduty, cloudwatch, manual
	Title       string               `json:"title"`       // alert title
	State       models.IncidentState `json:"state"`       // always "received" at creation
	Fingerprint string               `json:"fingerprint"` // dedup fingerprint
}

// IncidentStatusPayload is the payload for incident.status events.
// Single event type for all state machine transitions; TerminalReason is
// set only when To is terminal.
type IncidentStatusPayload struct {
	BasePayload
	From           models.IncidentState  `json:"from"`
	To             models.IncidentState  `json:"to"`
	TerminalReason models.TerminalReason `json:"terminal_reason,omitempty"`
}

// PlannedActionSummary is one action line of a PlanCreatedPayload — enough
// for the dashboard to render the plan without refetching the incident.
type PlannedActionSummary struct {
	Index       int               `json:"index"`       // position in the plan
	ActionType  models.ActionType `json:"action_type"` // restart_pod, scale_deployment, etc.
	Description string            `json:"description"`
	RiskLevel   models.RiskLevel  `json:"risk_level"`
	Confidence  float64           `json:"confidence"` // 0.0 – 1.0
}

// PlanCreatedPayload is the payload for plan.created events.
// Published when analysis produces a resolution plan with executable actions.
type PlanCreatedPayload struct {
	BasePayload
	RootCause   string                 `json:"root_cause"`
	ActionCount int                    `json:"action_count"`
	Actions     []PlannedActionSummary `json:"actions"`
}

// ExecutionStartedPayload is the payload for execution.started events.
// Published when the executor issues a command against a target system.
type ExecutionStartedPayload struct {
	BasePayload
	ExecutionID string            `json:"execution_id"` // execution record UUID
	ActionIndex int               `json:"action_index"` // position in the plan
	ActionType  models.ActionType `json:"action_type"`
	Command     string            `json:"command"` // rendered command
	RiskLevel   models.RiskLevel  `json:"risk_level"`
}

// ExecutionCompletedPayload is the payload for execution.completed events.
// Published when an execution record settles. Skipped actions publish only
// this event; SkipReason says why no command was issued. VerificationPassed
// is set when the action carried a verification predicate.
type ExecutionCompletedPayload struct {
	BasePayload
	ExecutionID        string                 `json:"execution_id"` // execution record UUID
	ActionIndex        int                    `json:"action_index"`
	ActionType         models.ActionType      `json:"action_type"`
	Status             models.ExecutionStatus `json:"status"` // succeeded, failed, skipped, rolled_back
	SkipReason         models.SkipReason      `json:"skip_reason,omitempty"`
	Detail             string                 `json:"detail,omitempty"`
	VerificationPassed *bool                  `json:"verification_passed,omitempty"`
}

// ApprovalRequestedPayload is the payload for approval.requested events.
// Published when the autonomy gate parks an action pending a human decision.
type ApprovalRequestedPayload struct {
	BasePayload
	ApprovalID     string           `json:"approval_id"` // approval request UUID
	ActionIndex    int              `json:"action_index"`
	CommandPreview string           `json:"command_preview"` // rendered command shown to the operator
	RiskLevel      models.RiskLevel `json:"risk_level"`
	Confidence     float64          `json:"confidence"`
}

// ApprovalDecidedPayload is the payload for approval.decided events.
// Published when an operator approves or rejects a parked action.
type ApprovalDecidedPayload struct {
	BasePayload
	ApprovalID  string                  `json:"approval_id"`
	ActionIndex int                     `json:"action_index"`
	Decision    models.ApprovalDecision `json:"decision"` // approved, rejected
	DecidedBy   string                  `json:"decided_by"`
	Comment     string                  `json:"comment,omitempty"`
}

// BreakerStatusPayload is the payload for breaker.status events.
// Published on the global channel when the executor circuit breaker changes
// state; IncidentID stays empty because breaker state is fleet-wide.
type BreakerStatusPayload struct {
	BasePayload
	From                models.BreakerState `json:"from"`
	To                  models.BreakerState `json:"to"`
	ConsecutiveFailures uint32              `json:"consecutive_failures"`
}
