package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/ent/incident"
	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/database"
	"github.com/vigilops/vigil/pkg/models"
	"github.com/vigilops/vigil/pkg/services"
	testdb "github.com/vigilops/vigil/test/database"
)

func setupServices(t *testing.T) (*database.Client, *services.IncidentService, *services.AuditService, *services.EventService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client,
		services.NewIncidentService(client.Client, time.Minute),
		services.NewAuditService(client.Client),
		services.NewEventService(client.DB())
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		IncidentRetentionDays: 30,
		AuditRetentionDays:    90,
		EventTTL:              time.Hour,
		CleanupInterval:       time.Hour,
	}
}

func ingestIncident(t *testing.T, incidents *services.IncidentService, title string) string {
	t.Helper()
	inc, created, err := incidents.Ingest(context.Background(), models.Alert{
		ID:          uuid.New().String(),
		Source:      models.AlertSourcePagerDuty,
		Severity:    models.SeverityHigh,
		Title:       title,
		Description: "pods are crash looping",
		Service:     "payments",
		Timestamp:   time.Now(),
	})
	require.NoError(t, err)
	require.True(t, created)
	return inc.ID
}

func TestService_PrunesOldTerminalIncidents(t *testing.T) {
	client, incidents, audits, events := setupServices(t)
	ctx := context.Background()

	id := ingestIncident(t, incidents, "old resolved incident")
	err := client.Incident.UpdateOneID(id).
		SetState(incident.StateResolved).
		SetTerminalOutcome(incident.TerminalOutcomeResolved).
		SetCompletedAt(time.Now().AddDate(0, 0, -40)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), incidents, audits, events)
	svc.runAll(ctx)

	_, err = incidents.Get(ctx, id)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_PreservesRecentAndActiveIncidents(t *testing.T) {
	client, incidents, audits, events := setupServices(t)
	ctx := context.Background()

	recent := ingestIncident(t, incidents, "recently resolved incident")
	err := client.Incident.UpdateOneID(recent).
		SetState(incident.StateResolved).
		SetTerminalOutcome(incident.TerminalOutcomeResolved).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	// Active incidents have no completed_at and are never pruned.
	active := ingestIncident(t, incidents, "long running incident")

	svc := NewService(retentionConfig(), incidents, audits, events)
	svc.runAll(ctx)

	_, err = incidents.Get(ctx, recent)
	assert.NoError(t, err)
	_, err = incidents.Get(ctx, active)
	assert.NoError(t, err)
}

func TestService_PrunesOldAuditEntries(t *testing.T) {
	client, incidents, audits, events := setupServices(t)
	ctx := context.Background()

	_, err := client.AuditEntry.Create().
		SetID(uuid.New().String()).
		SetIncidentID("inc-old").
		SetSeq(1).
		SetActor("executor").
		SetCommand("kubectl -n payments rollout restart deployment/api").
		SetCreatedAt(time.Now().AddDate(0, 0, -120)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := audits.Append(ctx, "inc-new", "executor", "kubectl get pods", nil, nil)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), incidents, audits, events)
	svc.runAll(ctx)

	old, err := audits.ListByIncident(ctx, "inc-old")
	require.NoError(t, err)
	assert.Empty(t, old)

	kept, err := audits.ListByIncident(ctx, "inc-new")
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, fresh.ID, kept[0].ID)
}

func TestService_PrunesOldEvents(t *testing.T) {
	client, incidents, audits, events := setupServices(t)
	ctx := context.Background()

	insertEvent := func(age time.Duration) {
		_, err := client.DB().ExecContext(ctx,
			`INSERT INTO events (incident_id, channel, payload, created_at) VALUES ($1, $2, $3, $4)`,
			"inc-1", "incidents", `{}`, time.Now().Add(-age))
		require.NoError(t, err)
	}
	insertEvent(2 * time.Hour)
	insertEvent(0)

	svc := NewService(retentionConfig(), incidents, audits, events)
	svc.runAll(ctx)

	stored, err := events.EventsSince(ctx, "incidents", 0, 10)
	require.NoError(t, err)
	assert.Len(t, stored, 1, "the expired event is deleted, the fresh one kept")
}

func TestService_ZeroConfigDisablesPruning(t *testing.T) {
	client, incidents, audits, events := setupServices(t)
	ctx := context.Background()

	id := ingestIncident(t, incidents, "ancient resolved incident")
	err := client.Incident.UpdateOneID(id).
		SetState(incident.StateResolved).
		SetTerminalOutcome(incident.TerminalOutcomeResolved).
		SetCompletedAt(time.Now().AddDate(-2, 0, 0)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(&config.RetentionConfig{CleanupInterval: time.Hour}, incidents, audits, events)
	svc.runAll(ctx)

	_, err = incidents.Get(ctx, id)
	assert.NoError(t, err)
}
