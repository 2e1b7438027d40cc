package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vigilops/vigil/pkg/models"
)

// EventService is the read side of the events table, the persistent backlog
// behind the live stream. The table is written by events.EventPublisher with
// raw SQL inside the NOTIFY transaction and has no ent entity; this service
// serves catchup queries for reconnecting WebSocket clients, the REST events
// endpoint, and retention pruning.
type EventService struct {
	db *sql.DB
}

// NewEventService creates a new EventService over the shared *sql.DB.
func NewEventService(db *sql.DB) *EventService {
	if db == nil {
		panic("NewEventService: db must not be nil")
	}
	return &EventService{db: db}
}

// EventsSince returns up to limit persisted events on a channel with id
// greater than sinceID, oldest first. The row id is the replay cursor.
// Satisfies events.CatchupQuerier.
func (s *EventService) EventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]models.StoredEvent, error) {
	if channel == "" {
		return nil, NewValidationError("channel", "cannot be empty")
	}
	if limit <= 0 {
		return nil, NewValidationError("limit", "must be positive")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, incident_id, channel, payload, created_at
		 FROM events
		 WHERE channel = $1 AND id > $2
		 ORDER BY id ASC
		 LIMIT $3`,
		channel, sinceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []models.StoredEvent
	for rows.Next() {
		var evt models.StoredEvent
		if err := rows.Scan(&evt.ID, &evt.IncidentID, &evt.Channel, &evt.Payload, &evt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read event rows: %w", err)
	}

	return events, nil
}

// PruneBefore deletes persisted events created before the cutoff and returns
// the number of rows removed. Called by the retention sweeper; catchup can
// only replay what retention kept, so the cutoff must exceed any plausible
// client reconnect gap.
func (s *EventService) PruneBefore(ctx context.Context, before time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to prune events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned events: %w", err)
	}
	return int(n), nil
}
