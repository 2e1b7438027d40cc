package models

import "time"

// ExecutionStatus is the lifecycle status of one executed (or skipped) command
type ExecutionStatus string

const (
	ExecutionPending    ExecutionStatus = "pending"
	ExecutionExecuting  ExecutionStatus = "executing"
	ExecutionSucceeded  ExecutionStatus = "succeeded"
	ExecutionFailed     ExecutionStatus = "failed"
	ExecutionRolledBack ExecutionStatus = "rolled_back"
	ExecutionSkipped    ExecutionStatus = "skipped"
	ExecutionRejected   ExecutionStatus = "rejected"
)

// IsValid checks if the execution status is valid
func (s ExecutionStatus) IsValid() bool {
	switch s {
	case ExecutionPending, ExecutionExecuting, ExecutionSucceeded,
		ExecutionFailed, ExecutionRolledBack, ExecutionSkipped, ExecutionRejected:
		return true
	default:
		return false
	}
}

// SkipReason explains why a command was skipped instead of executed
type SkipReason string

const (
	SkipPlanMode          SkipReason = "plan_mode"
	SkipDryRun            SkipReason = "dry_run"
	SkipEmergencyStop     SkipReason = "emergency_stop"
	SkipCircuitOpen       SkipReason = "circuit_open"
	SkipPolicyForbidden   SkipReason = "policy_forbidden"
	SkipUnresolvedTarget  SkipReason = "unresolved_target"
	SkipBelowConfidence   SkipReason = "below_confidence"
	SkipUnsupportedAction SkipReason = "unsupported_action"
	SkipApprovalRejected  SkipReason = "approval_rejected"
	SkipPrerequisite      SkipReason = "prerequisite_failed"
)

// VerificationResult records the post-execution predicate outcome
type VerificationResult struct {
	Predicate string         `json:"predicate"`
	Observed  map[string]any `json:"observed,omitempty"`
	Passed    bool           `json:"passed"`
	LatencyMs int64          `json:"latency_ms"`
}

// CreateExecutionRequest contains fields for persisting an execution record
type CreateExecutionRequest struct {
	IncidentID   string              `json:"incident_id"`
	ActionIndex  int                 `json:"action_index"`
	ActionType   ActionType          `json:"action_type"`
	Params       map[string]string   `json:"params,omitempty"`
	Command      *CommandSpec        `json:"command,omitempty"`
	Status       ExecutionStatus     `json:"status"`
	SkipReason   *SkipReason         `json:"skip_reason,omitempty"`
	Detail       string              `json:"detail,omitempty"`
	Stdout       string              `json:"stdout,omitempty"`
	Stderr       string              `json:"stderr,omitempty"`
	ExitCode     *int                `json:"exit_code,omitempty"`
	StartedAt    *time.Time          `json:"started_at,omitempty"`
	FinishedAt   *time.Time          `json:"finished_at,omitempty"`
	Verification *VerificationResult `json:"verification,omitempty"`
	RollbackOf   *string             `json:"rollback_of,omitempty"`
}

// UpdateExecutionRequest carries the settled state of an issued command. The
// executor persists an issuance record before running and overwrites it with
// these fields when the command settles; every field is written each time, so
// callers pass the complete outcome. StartedAt is the one exception: it is set
// only when a parked pending record is promoted to executing after approval.
type UpdateExecutionRequest struct {
	Status       ExecutionStatus     `json:"status"`
	SkipReason   *SkipReason         `json:"skip_reason,omitempty"`
	Detail       string              `json:"detail,omitempty"`
	Stdout       string              `json:"stdout,omitempty"`
	Stderr       string              `json:"stderr,omitempty"`
	ExitCode     *int                `json:"exit_code,omitempty"`
	StartedAt    *time.Time          `json:"started_at,omitempty"`
	FinishedAt   *time.Time          `json:"finished_at,omitempty"`
	Verification *VerificationResult `json:"verification,omitempty"`
}
