package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vigilops/vigil/ent"
	"github.com/vigilops/vigil/pkg/database"
	"github.com/vigilops/vigil/pkg/models"
)

// testAlert builds a valid PagerDuty-sourced alert. The title carries a
// generated pod name so fingerprint tests exercise signature normalization.
func testAlert(title string) models.Alert {
	return models.Alert{
		ID:          uuid.New().String(),
		Source:      models.AlertSourcePagerDuty,
		Severity:    models.SeverityHigh,
		Title:       title,
		Description: "pods are crash looping",
		Service:     "payments",
		Timestamp:   time.Now(),
		Raw:         map[string]any{"routing_key": "test"},
	}
}

// createTestIncident ingests a fresh incident in state received. Execution
// and approval records require one as their edge target.
func createTestIncident(t *testing.T, client *database.Client, title string) *ent.Incident {
	t.Helper()
	svc := NewIncidentService(client.Client, 0)
	inc, created, err := svc.Ingest(context.Background(), testAlert(title))
	require.NoError(t, err)
	require.True(t, created)
	return inc
}

// testCommand builds the expanded command spec used by execution fixtures.
func testCommand(action models.ActionType, args map[string]string) *models.CommandSpec {
	return &models.CommandSpec{
		TargetSystem:   "kubernetes",
		Verb:           "rollout-restart",
		ActionType:     action,
		Args:           args,
		Rendered:       "kubectl rollout restart deployment/payments -n prod",
		ClassifiedRisk: models.RiskMedium,
	}
}
