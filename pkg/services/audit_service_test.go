package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testdb "github.com/vigilops/vigil/test/database"
)

func TestNewAuditService(t *testing.T) {
	t.Run("panics when client is nil", func(t *testing.T) {
		assert.Panics(t, func() {
			NewAuditService(nil)
		})
	})
}

func TestAuditService_Append(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAuditService(client.Client)
	ctx := context.Background()

	t.Run("sequences entries per incident", func(t *testing.T) {
		inc := createTestIncident(t, client, "pod payments-aud01 CrashLoopBackOff")
		other := createTestIncident(t, client, "pod billing-aud02 CrashLoopBackOff")

		first, err := service.Append(ctx, inc.ID, ActorSystem, "alert accepted", nil, nil)
		require.NoError(t, err)
		second, err := service.Append(ctx, inc.ID, ActorSystem, "analysis requested",
			map[string]any{"model": "gpt-4o"}, nil)
		require.NoError(t, err)

		// A separate incident starts its own sequence.
		elsewhere, err := service.Append(ctx, other.ID, ActorSystem, "alert accepted", nil, nil)
		require.NoError(t, err)

		assert.Equal(t, 1, first.Seq)
		assert.Equal(t, 2, second.Seq)
		assert.Equal(t, 1, elsewhere.Seq)

		entries, err := service.ListByIncident(ctx, inc.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "alert accepted", entries[0].Command)
		assert.Equal(t, "analysis requested", entries[1].Command)
		assert.Equal(t, "gpt-4o", entries[1].Detail["model"])
	})

	t.Run("rejects incomplete entries", func(t *testing.T) {
		_, err := service.Append(ctx, "", ActorSystem, "something", nil, nil)
		assert.True(t, IsValidationError(err))

		_, err = service.Append(ctx, "some-incident", "", "something", nil, nil)
		assert.True(t, IsValidationError(err))

		_, err = service.Append(ctx, "some-incident", ActorSystem, "", nil, nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestAuditService_RecordResult(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAuditService(client.Client)
	ctx := context.Background()

	inc := createTestIncident(t, client, "pod search-aud03 OOMKilled")

	t.Run("closes the issuance entry", func(t *testing.T) {
		executionID := "exec-123"
		_, err := service.Append(ctx, inc.ID, ActorExecutor,
			"kubectl rollout restart deployment/search -n prod",
			map[string]any{"execution_id": executionID}, nil)
		require.NoError(t, err)

		err = service.RecordResult(ctx, inc.ID, executionID, map[string]any{
			"status":    "succeeded",
			"exit_code": 0,
		})
		require.NoError(t, err)

		entries, err := service.ListByIncident(ctx, inc.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.NotNil(t, entries[0].Result)
		assert.Equal(t, "succeeded", entries[0].Result["status"])
	})

	t.Run("missing issuance entry", func(t *testing.T) {
		err := service.RecordResult(ctx, inc.ID, "never-issued", map[string]any{"status": "failed"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("requires an execution id", func(t *testing.T) {
		err := service.RecordResult(ctx, inc.ID, "", nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestAuditService_PruneBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAuditService(client.Client)
	ctx := context.Background()

	inc := createTestIncident(t, client, "pod ledger-aud04 OOMKilled")
	_, err := service.Append(ctx, inc.ID, ActorSystem, "alert accepted", nil, nil)
	require.NoError(t, err)
	_, err = service.Append(ctx, inc.ID, ActorSystem, "analysis requested", nil, nil)
	require.NoError(t, err)

	t.Run("old cutoff removes nothing", func(t *testing.T) {
		n, err := service.PruneBefore(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("future cutoff removes everything", func(t *testing.T) {
		n, err := service.PruneBefore(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		entries, err := service.ListByIncident(ctx, inc.ID)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
