package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient operator search over incident titles and
// descriptions from the dashboard.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_incidents_title_gin
		ON incidents USING gin(to_tsvector('english', title))`)
	if err != nil {
		return fmt.Errorf("failed to create title GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_incidents_description_gin
		ON incidents USING gin(to_tsvector('english', COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create description GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express. At most one pending approval may exist per plan action;
// a second pending row for the same action would double-park the incident.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS approvalrequest_incident_action_pending
		ON approval_requests (incident_id, action_index)
		WHERE decision = 'pending'`)
	if err != nil {
		return fmt.Errorf("failed to create pending approval index: %w", err)
	}

	return nil
}

// CreateEventsTable creates the live-stream backlog table. The table has no
// Ent entity — the event publisher writes it with raw SQL — so Ent's schema
// tooling never creates it. Production schemas get it from the embedded
// migrations; this keeps test schemas, which use Ent's schema creation, in
// lockstep with them.
func CreateEventsTable(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS events (
			id          BIGSERIAL PRIMARY KEY,
			incident_id TEXT NOT NULL DEFAULT '',
			channel     TEXT NOT NULL,
			payload     JSONB NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS event_channel_created_at ON events (channel, created_at)`)
	if err != nil {
		return fmt.Errorf("failed to create events channel index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS event_created_at ON events (created_at)`)
	if err != nil {
		return fmt.Errorf("failed to create events created_at index: %w", err)
	}

	return nil
}
