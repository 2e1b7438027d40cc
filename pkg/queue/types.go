// Package queue provides incident queue management and processing
// infrastructure: a worker pool that claims incidents off the database
// queue and drives each one through the response pipeline.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/vigilops/vigil/ent"
	"github.com/vigilops/vigil/pkg/events"
	"github.com/vigilops/vigil/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoIncidentsAvailable indicates no claimable incidents are in the queue.
	ErrNoIncidentsAvailable = errors.New("no incidents available")

	// ErrAtCapacity indicates the global concurrent incident limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// IncidentExecutor is the interface for incident processing.
//
// The executor owns the ENTIRE pipeline for one claimed incident:
// dedup re-check, context fan-out, analysis, planning, gating, execution,
// verification, and the terminal transition. It writes results
// PROGRESSIVELY during execution (state transitions, context, plan,
// execution records), not at the end. The worker only handles: claiming,
// heartbeat, cancellation registration, and notifications.
type IncidentExecutor interface {
	Execute(ctx context.Context, inc *ent.Incident) *ExecutionResult
}

// ParkedApproval describes the approval an incident is waiting on, so the
// worker can notify operators after the claim is released.
type ParkedApproval struct {
	ApprovalID     string
	ActionIndex    int
	CommandPreview string
	RiskLevel      models.RiskLevel
	Confidence     float64
}

// ExecutionResult is lightweight — just how the claim ended. Everything
// durable was already written by the executor during processing.
type ExecutionResult struct {
	// Outcome is the state the incident was left in: a terminal state, or
	// awaiting_approval when the incident parked.
	Outcome models.IncidentState

	// Reason is set when Outcome is terminal.
	Reason models.TerminalReason

	// RootCause is the analysis root cause, for notifications.
	RootCause string

	// Approval is set when Outcome is awaiting_approval.
	Approval *ParkedApproval

	// Error details (if the pipeline aborted).
	Error error
}

// EventSink is the subset of the event publisher the queue layer emits to.
// A nil sink disables streaming.
type EventSink interface {
	PublishIncidentStatus(ctx context.Context, incidentID string, payload events.IncidentStatusPayload) error
	PublishPlanCreated(ctx context.Context, incidentID string, payload events.PlanCreatedPayload) error
	PublishExecutionStarted(ctx context.Context, incidentID string, payload events.ExecutionStartedPayload) error
	PublishExecutionCompleted(ctx context.Context, incidentID string, payload events.ExecutionCompletedPayload) error
	PublishApprovalRequested(ctx context.Context, incidentID string, payload events.ApprovalRequestedPayload) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveIncidents  int            `json:"active_incidents"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
	OrphansFailed    int            `json:"orphans_failed"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                 string    `json:"id"`
	Status             string    `json:"status"` // "idle" or "working"
	CurrentIncidentID  string    `json:"current_incident_id,omitempty"`
	IncidentsProcessed int       `json:"incidents_processed"`
	LastActivity       time.Time `json:"last_activity"`
}
