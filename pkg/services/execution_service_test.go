package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigilops/vigil/pkg/models"
	testdb "github.com/vigilops/vigil/test/database"
)

// redactingMasker stands in for the masking service in audit detail tests.
type redactingMasker struct{}

func (redactingMasker) MaskAlertData(data string) string {
	return strings.ReplaceAll(data, "hunter2", "***MASKED***")
}

func TestNewExecutionService(t *testing.T) {
	t.Run("panics when client is nil", func(t *testing.T) {
		assert.Panics(t, func() {
			NewExecutionService(nil, nil)
		})
	})

	t.Run("masker is optional", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		assert.NotNil(t, NewExecutionService(client.Client, nil))
	})
}

func TestExecutionService_RecordExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client, nil)
	audit := NewAuditService(client.Client)
	ctx := context.Background()

	t.Run("writes the record and its audit issuance", func(t *testing.T) {
		inc := createTestIncident(t, client, "pod payments-aaa11 CrashLoopBackOff")
		started := time.Now()
		params := map[string]string{"deployment": "payments", "namespace": "prod"}

		recordID, err := service.RecordExecution(ctx, models.CreateExecutionRequest{
			IncidentID:  inc.ID,
			ActionIndex: 0,
			ActionType:  models.ActionRestartDeployment,
			Params:      params,
			Command:     testCommand(models.ActionRestartDeployment, params),
			Status:      models.ExecutionExecuting,
			StartedAt:   &started,
		})
		require.NoError(t, err)
		require.NotEmpty(t, recordID)

		rec, err := service.Get(ctx, recordID)
		require.NoError(t, err)
		assert.Equal(t, inc.ID, rec.IncidentID)
		assert.Equal(t, 0, rec.ActionIndex)
		assert.Equal(t, string(models.ActionRestartDeployment), rec.ActionType)
		assert.Equal(t, "executing", string(rec.Status))
		assert.Equal(t, params, rec.Params)
		assert.Equal(t, "kubernetes", rec.Command["target_system"])
		assert.NotNil(t, rec.StartedAt)
		assert.Nil(t, rec.FinishedAt)

		entries, err := audit.ListByIncident(ctx, inc.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		entry := entries[0]
		assert.Equal(t, 1, entry.Seq)
		assert.Equal(t, ActorExecutor, entry.Actor)
		assert.Equal(t, "kubectl rollout restart deployment/payments -n prod", entry.Command)
		assert.Equal(t, recordID, entry.Detail["execution_id"])
		assert.Equal(t, string(models.RiskMedium), entry.Detail["risk"])
		// Open issuance: the result arrives when the command settles.
		assert.Nil(t, entry.Result)
	})

	t.Run("skips carry their result in the same entry", func(t *testing.T) {
		inc := createTestIncident(t, client, "pod billing-bbb22 CrashLoopBackOff")
		reason := models.SkipBelowConfidence

		recordID, err := service.RecordExecution(ctx, models.CreateExecutionRequest{
			IncidentID:  inc.ID,
			ActionIndex: 1,
			ActionType:  models.ActionScaleDeployment,
			Status:      models.ExecutionSkipped,
			SkipReason:  &reason,
			Detail:      "confidence 0.40 below required 0.80 for medium risk",
		})
		require.NoError(t, err)

		rec, err := service.Get(ctx, recordID)
		require.NoError(t, err)
		assert.Equal(t, "skipped", string(rec.Status))
		require.NotNil(t, rec.SkipReason)
		assert.Equal(t, string(models.SkipBelowConfidence), *rec.SkipReason)

		entries, err := audit.ListByIncident(ctx, inc.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, ActorGate, entries[0].Actor)
		require.NotNil(t, entries[0].Result)
		assert.Equal(t, "skipped", entries[0].Result["status"])
		assert.Equal(t, string(models.SkipBelowConfidence), entries[0].Result["skip_reason"])
	})

	t.Run("rejects invalid requests", func(t *testing.T) {
		_, err := service.RecordExecution(ctx, models.CreateExecutionRequest{
			ActionType: models.ActionRestartPod,
			Status:     models.ExecutionExecuting,
		})
		assert.True(t, IsValidationError(err))

		_, err = service.RecordExecution(ctx, models.CreateExecutionRequest{
			IncidentID:  "some-incident",
			ActionIndex: -1,
			ActionType:  models.ActionRestartPod,
			Status:      models.ExecutionExecuting,
		})
		assert.True(t, IsValidationError(err))

		_, err = service.RecordExecution(ctx, models.CreateExecutionRequest{
			IncidentID:  "some-incident",
			ActionIndex: 0,
			ActionType:  models.ActionRestartPod,
			Status:      "launched",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestExecutionService_UpdateExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client, nil)
	audit := NewAuditService(client.Client)
	ctx := context.Background()

	t.Run("settle writes the record and the audit result", func(t *testing.T) {
		inc := createTestIncident(t, client, "pod search-ccc33 OOMKilled")
		started := time.Now()
		recordID, err := service.RecordExecution(ctx, models.CreateExecutionRequest{
			IncidentID:  inc.ID,
			ActionIndex: 0,
			ActionType:  models.ActionPatchMemoryLimit,
			Command:     testCommand(models.ActionPatchMemoryLimit, nil),
			Status:      models.ExecutionExecuting,
			StartedAt:   &started,
		})
		require.NoError(t, err)

		exitCode := 0
		finished := time.Now()
		err = service.UpdateExecution(ctx, recordID, models.UpdateExecutionRequest{
			Status:     models.ExecutionSucceeded,
			ExitCode:   &exitCode,
			FinishedAt: &finished,
			Stdout:     "deployment.apps/search patched",
			Verification: &models.VerificationResult{
				Predicate: "deployment_ready",
				Passed:    true,
				LatencyMs: 850,
			},
		})
		require.NoError(t, err)

		rec, err := service.Get(ctx, recordID)
		require.NoError(t, err)
		assert.Equal(t, "succeeded", string(rec.Status))
		require.NotNil(t, rec.ExitCode)
		assert.Equal(t, 0, *rec.ExitCode)
		assert.NotNil(t, rec.FinishedAt)
		assert.Equal(t, "deployment.apps/search patched", rec.Stdout)
		assert.Equal(t, true, rec.Verification["passed"])

		entries, err := audit.ListByIncident(ctx, inc.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.NotNil(t, entries[0].Result)
		assert.Equal(t, "succeeded", entries[0].Result["status"])
		assert.Equal(t, true, entries[0].Result["verification_passed"])
	})

	t.Run("promotion is not a settle", func(t *testing.T) {
		inc := createTestIncident(t, client, "pod ledger-ddd44 OOMKilled")
		recordID, err := service.RecordExecution(ctx, models.CreateExecutionRequest{
			IncidentID:  inc.ID,
			ActionIndex: 0,
			ActionType:  models.ActionRollbackDeployment,
			Command:     testCommand(models.ActionRollbackDeployment, nil),
			Status:      models.ExecutionPending,
		})
		require.NoError(t, err)

		started := time.Now()
		err = service.UpdateExecution(ctx, recordID, models.UpdateExecutionRequest{
			Status:    models.ExecutionExecuting,
			StartedAt: &started,
		})
		require.NoError(t, err)

		rec, err := service.Get(ctx, recordID)
		require.NoError(t, err)
		assert.Equal(t, "executing", string(rec.Status))
		assert.NotNil(t, rec.StartedAt)

		// The issuance entry stays open through the promotion.
		entries, err := audit.ListByIncident(ctx, inc.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Nil(t, entries[0].Result)

		finished := time.Now()
		err = service.UpdateExecution(ctx, recordID, models.UpdateExecutionRequest{
			Status:     models.ExecutionFailed,
			Detail:     "rollout undo timed out",
			FinishedAt: &finished,
		})
		require.NoError(t, err)

		entries, err = audit.ListByIncident(ctx, inc.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.NotNil(t, entries[0].Result)
		assert.Equal(t, "failed", entries[0].Result["status"])
		assert.Equal(t, "rollout undo timed out", entries[0].Result["detail"])
	})

	t.Run("unknown record", func(t *testing.T) {
		err := service.UpdateExecution(ctx, "no-such-record", models.UpdateExecutionRequest{
			Status: models.ExecutionSucceeded,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		err := service.UpdateExecution(ctx, "whatever", models.UpdateExecutionRequest{
			Status: "finished",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestExecutionService_PendingRecord(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client, nil)
	ctx := context.Background()

	inc := createTestIncident(t, client, "pod gateway-eee55 CrashLoopBackOff")
	recordID, err := service.RecordExecution(ctx, models.CreateExecutionRequest{
		IncidentID:  inc.ID,
		ActionIndex: 2,
		ActionType:  models.ActionRestartDeployment,
		Command:     testCommand(models.ActionRestartDeployment, nil),
		Status:      models.ExecutionPending,
	})
	require.NoError(t, err)

	t.Run("finds the parked record", func(t *testing.T) {
		rec, err := service.PendingRecord(ctx, inc.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, recordID, rec.ID)
	})

	t.Run("other action index has no parked record", func(t *testing.T) {
		_, err := service.PendingRecord(ctx, inc.ID, 3)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("promoted records are no longer pending", func(t *testing.T) {
		started := time.Now()
		require.NoError(t, service.UpdateExecution(ctx, recordID, models.UpdateExecutionRequest{
			Status:    models.ExecutionExecuting,
			StartedAt: &started,
		}))

		_, err := service.PendingRecord(ctx, inc.ID, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExecutionService_ListByIncident(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client, nil)
	ctx := context.Background()

	inc := createTestIncident(t, client, "pod orders-fff66 CrashLoopBackOff")
	for _, idx := range []int{1, 0} {
		_, err := service.RecordExecution(ctx, models.CreateExecutionRequest{
			IncidentID:  inc.ID,
			ActionIndex: idx,
			ActionType:  models.ActionRestartPod,
			Status:      models.ExecutionExecuting,
		})
		require.NoError(t, err)
	}

	records, err := service.ListByIncident(ctx, inc.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 0, records[0].ActionIndex)
	assert.Equal(t, 1, records[1].ActionIndex)
}

func TestExecutionService_AuditDetailMasking(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client, redactingMasker{})
	audit := NewAuditService(client.Client)
	ctx := context.Background()

	inc := createTestIncident(t, client, "pod vault-ggg77 CrashLoopBackOff")
	params := map[string]string{"deployment": "vault", "db_password": "hunter2"}

	recordID, err := service.RecordExecution(ctx, models.CreateExecutionRequest{
		IncidentID:  inc.ID,
		ActionIndex: 0,
		ActionType:  models.ActionRestartDeployment,
		Params:      params,
		Command:     testCommand(models.ActionRestartDeployment, params),
		Status:      models.ExecutionExecuting,
	})
	require.NoError(t, err)

	entries, err := audit.ListByIncident(ctx, inc.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	masked, ok := entries[0].Detail["params"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "***MASKED***", masked["db_password"])
	assert.Equal(t, "vault", masked["deployment"])

	// The structured record keeps the original params; only the free-form
	// audit trail is scrubbed.
	rec, err := service.Get(ctx, recordID)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", rec.Params["db_password"])
}
