package models

import (
	"time"

	"github.com/vigilops/vigil/ent"
)

// IncidentState is the lifecycle state of an incident
type IncidentState string

const (
	// StateReceived means the incident is enqueued and waiting for a worker
	StateReceived IncidentState = "received"
	// StateDeduplicated means a worker claimed it and re-checked dedup
	StateDeduplicated IncidentState = "deduplicated"
	// StateContextGathering means the adapter fan-out is in progress
	StateContextGathering IncidentState = "context_gathering"
	// StateAnalyzing means the model request/parse is in progress
	StateAnalyzing IncidentState = "analyzing"
	// StateAnalysisFailed means the model timed out or the response did not parse
	StateAnalysisFailed IncidentState = "analysis_failed"
	// StateAnalysisEmpty means the plan parsed but proposes no remediation
	StateAnalysisEmpty IncidentState = "analysis_empty"
	// StateAwaitingApproval means an action is parked on a pending ApprovalRequest
	StateAwaitingApproval IncidentState = "awaiting_approval"
	// StateResuming means an approval was decided and the incident is re-queued
	StateResuming IncidentState = "resuming"
	// StateExecuting means commands are being issued
	StateExecuting IncidentState = "executing"
	// StateVerifying means execution finished and the outcome is being confirmed
	StateVerifying IncidentState = "verifying"
	// StateResolved is terminal: remediation verified (or subject confirmed gone)
	StateResolved IncidentState = "resolved"
	// StateFailed is terminal: the incident could not be remediated
	StateFailed IncidentState = "failed"
	// StateAbandoned is terminal: nothing was done on purpose
	StateAbandoned IncidentState = "abandoned"
)

// IsValid checks if the incident state is valid
func (s IncidentState) IsValid() bool {
	_, ok := incidentTransitions[s]
	return ok
}

// IsTerminal reports whether the state is terminal (incident becomes read-only)
func (s IncidentState) IsTerminal() bool {
	switch s {
	case StateResolved, StateFailed, StateAbandoned:
		return true
	default:
		return false
	}
}

// incidentTransitions is the legal-transition table. The state machine owns
// all mutation; every transition not listed here is rejected.
var incidentTransitions = map[IncidentState][]IncidentState{
	StateReceived:         {StateDeduplicated, StateFailed, StateAbandoned},
	StateDeduplicated:     {StateContextGathering, StateFailed, StateAbandoned},
	StateContextGathering: {StateAnalyzing, StateFailed, StateAbandoned},
	StateAnalyzing:        {StateAnalysisFailed, StateAnalysisEmpty, StateExecuting, StateAwaitingApproval, StateFailed, StateAbandoned},
	StateAnalysisFailed:   {StateFailed},
	StateAnalysisEmpty:    {StateResolved, StateAbandoned},
	StateAwaitingApproval: {StateResuming, StateFailed, StateAbandoned},
	StateResuming:         {StateExecuting, StateFailed, StateAbandoned},
	StateExecuting:        {StateAwaitingApproval, StateVerifying, StateFailed, StateAbandoned},
	StateVerifying:        {StateResolved, StateFailed, StateAbandoned},
	StateResolved:         {},
	StateFailed:           {},
	StateAbandoned:        {},
}

// CanTransition reports whether from → to is a legal state machine edge
func CanTransition(from, to IncidentState) bool {
	for _, next := range incidentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TerminalReason explains why an incident reached its terminal state
type TerminalReason string

const (
	ReasonRemediationVerified TerminalReason = "remediation_verified"
	ReasonSubjectGone         TerminalReason = "subject_gone"
	ReasonAutoRecovered       TerminalReason = "auto_recovered"
	ReasonExternalRecovery    TerminalReason = "external_recovery"
	ReasonAnalysisFailed      TerminalReason = "analysis_failed"
	ReasonNoExecutableActions TerminalReason = "no_executable_actions"
	ReasonExecutionFailed     TerminalReason = "execution_failed"
	ReasonTimeout             TerminalReason = "timeout"
	ReasonOperatorAbort       TerminalReason = "operator_abort"
)

// ContextBundle is the per-adapter result of a fetch-context call. Exactly
// one of Data or Error is meaningful, keyed on OK.
type ContextBundle struct {
	AdapterName string         `json:"adapter_name"`
	OK          bool           `json:"ok"`
	Data        map[string]any `json:"data,omitempty"`
	Error       string         `json:"error,omitempty"`
	DurationMs  int64          `json:"duration_ms"`
	Truncated   bool           `json:"truncated,omitempty"`
}

// IncidentFilters contains filtering options for listing incidents
type IncidentFilters struct {
	State         string     `json:"state,omitempty"`
	Source        string     `json:"source,omitempty"`
	Service       string     `json:"service,omitempty"`
	Severity      string     `json:"severity,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// IncidentResponse wraps an Incident with optional loaded edges
type IncidentResponse struct {
	*ent.Incident
}

// IncidentListResponse contains a paginated incident list
type IncidentListResponse struct {
	Incidents  []*ent.Incident `json:"incidents"`
	TotalCount int             `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}
