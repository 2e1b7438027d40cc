package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/vigilops/vigil/test/database"
)

// seedEvent inserts a row directly with a chosen created_at. The production
// write path is events.EventPublisher, which wraps the INSERT and pg_notify
// in one transaction; these tests only need rows, not notifications.
func seedEvent(t *testing.T, db *sql.DB, incidentID, channel string, payload map[string]any, createdAt time.Time) int64 {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var id int64
	err = db.QueryRowContext(context.Background(),
		`INSERT INTO events (incident_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		incidentID, channel, data, createdAt).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestEventService_EventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.DB())
	ctx := context.Background()

	incidentID := uuid.New().String()
	channel := "incident:" + incidentID
	now := time.Now().UTC()

	id1 := seedEvent(t, client.DB(), incidentID, channel, map[string]any{"type": "incident.created", "seq": 1}, now)
	id2 := seedEvent(t, client.DB(), incidentID, channel, map[string]any{"type": "incident.status", "seq": 2}, now)
	id3 := seedEvent(t, client.DB(), incidentID, channel, map[string]any{"type": "plan.created", "seq": 3}, now)
	// Noise on an unrelated channel must never leak into results.
	seedEvent(t, client.DB(), uuid.New().String(), "incident:other", map[string]any{"seq": 99}, now)

	t.Run("zero cursor returns the full backlog in id order", func(t *testing.T) {
		events, err := service.EventsSince(ctx, channel, 0, 100)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, id1, events[0].ID)
		assert.Equal(t, id2, events[1].ID)
		assert.Equal(t, id3, events[2].ID)
		assert.Equal(t, incidentID, events[0].IncidentID)
		assert.Equal(t, channel, events[0].Channel)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(events[2].Payload, &payload))
		assert.Equal(t, "plan.created", payload["type"])
	})

	t.Run("cursor excludes rows already seen", func(t *testing.T) {
		events, err := service.EventsSince(ctx, channel, id1, 100)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, id2, events[0].ID)
		assert.Equal(t, id3, events[1].ID)
	})

	t.Run("cursor past the end returns nothing", func(t *testing.T) {
		events, err := service.EventsSince(ctx, channel, id3, 100)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("limit caps the page", func(t *testing.T) {
		events, err := service.EventsSince(ctx, channel, 0, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, id1, events[0].ID)
		assert.Equal(t, id2, events[1].ID)
	})

	t.Run("unknown channel is empty, not an error", func(t *testing.T) {
		events, err := service.EventsSince(ctx, "incident:"+uuid.New().String(), 0, 100)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("rejects bad arguments", func(t *testing.T) {
		_, err := service.EventsSince(ctx, "", 0, 100)
		assert.True(t, IsValidationError(err))

		_, err = service.EventsSince(ctx, channel, 0, 0)
		assert.True(t, IsValidationError(err))
	})
}

func TestEventService_PruneBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.DB())
	ctx := context.Background()

	incidentID := uuid.New().String()
	channel := "incident:" + incidentID
	now := time.Now().UTC()

	seedEvent(t, client.DB(), incidentID, channel, map[string]any{"seq": 1}, now.Add(-9*24*time.Hour))
	seedEvent(t, client.DB(), incidentID, channel, map[string]any{"seq": 2}, now.Add(-8*24*time.Hour))
	keptID := seedEvent(t, client.DB(), incidentID, channel, map[string]any{"seq": 3}, now)

	t.Run("removes only rows older than the cutoff", func(t *testing.T) {
		count, err := service.PruneBefore(ctx, now.Add(-7*24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		events, err := service.EventsSince(ctx, channel, 0, 100)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, keptID, events[0].ID)
	})

	t.Run("second sweep finds nothing", func(t *testing.T) {
		count, err := service.PruneBefore(ctx, now.Add(-7*24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
