package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Mirrors to the global incidents channel are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
// Internally, payloads are marshaled to JSON and routed to the appropriate
// channel (derived from incidentID) via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishIncidentCreated persists and broadcasts an incident.created event,
// with a transient mirror on the global incidents channel for the list page.
func (p *EventPublisher) PublishIncidentCreated(ctx context.Context, incidentID string, payload IncidentCreatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal IncidentCreatedPayload: %w", err)
	}
	return p.persistAndMirror(ctx, incidentID, payloadJSON)
}

// PublishIncidentStatus persists and broadcasts an incident.status event,
// with a transient mirror on the global incidents channel. Fired on every
// state machine transition, terminal ones included.
func (p *EventPublisher) PublishIncidentStatus(ctx context.Context, incidentID string, payload IncidentStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal IncidentStatusPayload: %w", err)
	}
	return p.persistAndMirror(ctx, incidentID, payloadJSON)
}

// PublishPlanCreated persists and broadcasts a plan.created event.
// Incident channel only — the list page does not render plans.
func (p *EventPublisher) PublishPlanCreated(ctx context.Context, incidentID string, payload PlanCreatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal PlanCreatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, incidentID, IncidentChannel(incidentID), payloadJSON)
}

// PublishExecutionStarted persists and broadcasts an execution.started event.
func (p *EventPublisher) PublishExecutionStarted(ctx context.Context, incidentID string, payload ExecutionStartedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ExecutionStartedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, incidentID, IncidentChannel(incidentID), payloadJSON)
}

// PublishExecutionCompleted persists and broadcasts an execution.completed
// event. Fired when an execution record settles — succeeded, failed, or
// skipped without ever starting.
func (p *EventPublisher) PublishExecutionCompleted(ctx context.Context, incidentID string, payload ExecutionCompletedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ExecutionCompletedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, incidentID, IncidentChannel(incidentID), payloadJSON)
}

// PublishApprovalRequested persists and broadcasts an approval.requested
// event, with a transient mirror on the global incidents channel so the
// list page can badge incidents waiting on a human.
func (p *EventPublisher) PublishApprovalRequested(ctx context.Context, incidentID string, payload ApprovalRequestedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ApprovalRequestedPayload: %w", err)
	}
	return p.persistAndMirror(ctx, incidentID, payloadJSON)
}

// PublishApprovalDecided persists and broadcasts an approval.decided event,
// with a transient mirror on the global incidents channel.
func (p *EventPublisher) PublishApprovalDecided(ctx context.Context, incidentID string, payload ApprovalDecidedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ApprovalDecidedPayload: %w", err)
	}
	return p.persistAndMirror(ctx, incidentID, payloadJSON)
}

// PublishBreakerStatus persists and broadcasts a breaker.status event on the
// global incidents channel. The events row carries an empty incident_id —
// breaker state is fleet-wide.
func (p *EventPublisher) PublishBreakerStatus(ctx context.Context, payload BreakerStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal BreakerStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, "", GlobalIncidentsChannel, payloadJSON)
}

// --- Internal core methods ---

// persistAndMirror persists an event on the incident channel and broadcasts
// a transient copy to the global incidents channel. Both publishes are
// best-effort: if the persistent one fails, the mirror is still attempted.
// Returns the first error encountered (if any).
func (p *EventPublisher) persistAndMirror(ctx context.Context, incidentID string, payloadJSON []byte) error {
	var firstErr error
	if err := p.persistAndNotify(ctx, incidentID, IncidentChannel(incidentID), payloadJSON); err != nil {
		slog.Warn("Failed to publish event to incident channel",
			"incident_id", incidentID, "error", err)
		firstErr = err
	}

	// The mirror is transient — the incident-channel row is the durable copy,
	// so a second events row would only duplicate catchup replay.
	if err := p.notifyOnly(ctx, GlobalIncidentsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to mirror event to global incidents channel",
			"incident_id", incidentID, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, incidentID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (incident_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		incidentID, channel, payloadJSON, time.Now().UTC(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type       string `json:"type"`
		IncidentID string `json:"incident_id"`
		DBEventID  *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":        routing.Type,
		"incident_id": routing.IncidentID,
		"truncated":   true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
