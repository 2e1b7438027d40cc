package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigilops/vigil/ent"
	"github.com/vigilops/vigil/pkg/database"
	"github.com/vigilops/vigil/pkg/models"
	testdb "github.com/vigilops/vigil/test/database"
)

func testApprovalRequest(incidentID string, actionIndex int) models.CreateApprovalRequest {
	return models.CreateApprovalRequest{
		IncidentID:     incidentID,
		ActionIndex:    actionIndex,
		CommandPreview: "kubectl rollout restart deployment/payments -n prod",
		RiskLevel:      models.RiskHigh,
		Confidence:     0.72,
	}
}

func createTestApproval(t *testing.T, client *database.Client, incidentID string, actionIndex int) *ent.ApprovalRequest {
	t.Helper()
	svc := NewApprovalService(client.Client)
	approval, err := svc.Create(context.Background(), testApprovalRequest(incidentID, actionIndex))
	require.NoError(t, err)
	return approval
}

func TestNewApprovalService(t *testing.T) {
	t.Run("panics when client is nil", func(t *testing.T) {
		assert.Panics(t, func() {
			NewApprovalService(nil)
		})
	})
}

func TestApprovalService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client)
	ctx := context.Background()

	t.Run("creates a pending request", func(t *testing.T) {
		inc := createTestIncident(t, client, "pod payments-app01 CrashLoopBackOff")

		approval, err := service.Create(ctx, testApprovalRequest(inc.ID, 0))
		require.NoError(t, err)

		assert.NotEmpty(t, approval.ID)
		assert.Equal(t, inc.ID, approval.IncidentID)
		assert.Equal(t, 0, approval.ActionIndex)
		assert.Equal(t, "pending", string(approval.Decision))
		assert.Equal(t, "high", string(approval.RiskLevel))
		assert.InDelta(t, 0.72, approval.Confidence, 0.001)
		assert.Nil(t, approval.DecidedBy)
		assert.Nil(t, approval.DecidedAt)
	})

	t.Run("second pending request for the same action is rejected", func(t *testing.T) {
		inc := createTestIncident(t, client, "pod billing-app02 CrashLoopBackOff")
		createTestApproval(t, client, inc.ID, 0)

		_, err := service.Create(ctx, testApprovalRequest(inc.ID, 0))
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("different action index is allowed", func(t *testing.T) {
		inc := createTestIncident(t, client, "pod search-app03 CrashLoopBackOff")
		createTestApproval(t, client, inc.ID, 0)

		_, err := service.Create(ctx, testApprovalRequest(inc.ID, 1))
		assert.NoError(t, err)
	})

	t.Run("rejects invalid requests", func(t *testing.T) {
		req := testApprovalRequest("", 0)
		_, err := service.Create(ctx, req)
		assert.True(t, IsValidationError(err))

		req = testApprovalRequest("some-incident", 0)
		req.CommandPreview = ""
		_, err = service.Create(ctx, req)
		assert.True(t, IsValidationError(err))

		req = testApprovalRequest("some-incident", 0)
		req.RiskLevel = "extreme"
		_, err = service.Create(ctx, req)
		assert.True(t, IsValidationError(err))

		req = testApprovalRequest("some-incident", 0)
		req.Confidence = 1.4
		_, err = service.Create(ctx, req)
		assert.True(t, IsValidationError(err))
	})
}

func TestApprovalService_Decide(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client)
	audit := NewAuditService(client.Client)
	ctx := context.Background()

	t.Run("approve stamps decision and audits it", func(t *testing.T) {
		inc := createTestIncident(t, client, "pod orders-dec01 CrashLoopBackOff")
		approval := createTestApproval(t, client, inc.ID, 0)

		decided, err := service.Decide(ctx, approval.ID, true, models.DecideApprovalRequest{
			DecidedBy: "oncall@example.com",
			Comment:   "rollout restart is safe here",
		}, false)
		require.NoError(t, err)

		assert.Equal(t, "approved", string(decided.Decision))
		require.NotNil(t, decided.DecidedBy)
		assert.Equal(t, "oncall@example.com", *decided.DecidedBy)
		assert.NotNil(t, decided.DecidedAt)
		require.NotNil(t, decided.Comment)
		assert.Equal(t, "rollout restart is safe here", *decided.Comment)

		entries, err := audit.ListByIncident(ctx, inc.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		entry := entries[0]
		assert.Equal(t, "oncall@example.com", entry.Actor)
		assert.Contains(t, entry.Command, "approved:")
		assert.Equal(t, approval.ID, entry.Detail["approval_id"])
		assert.Equal(t, "approved", entry.Result["decision"])
	})

	t.Run("reject stamps decision", func(t *testing.T) {
		inc := createTestIncident(t, client, "pod refunds-dec02 CrashLoopBackOff")
		approval := createTestApproval(t, client, inc.ID, 0)

		decided, err := service.Decide(ctx, approval.ID, false, models.DecideApprovalRequest{
			DecidedBy: "oncall@example.com",
		}, false)
		require.NoError(t, err)
		assert.Equal(t, "rejected", string(decided.Decision))
	})

	t.Run("deciding twice is rejected", func(t *testing.T) {
		inc := createTestIncident(t, client, "pod ledger-dec03 CrashLoopBackOff")
		approval := createTestApproval(t, client, inc.ID, 0)

		_, err := service.Decide(ctx, approval.ID, true, models.DecideApprovalRequest{
			DecidedBy: "first@example.com",
		}, false)
		require.NoError(t, err)

		_, err = service.Decide(ctx, approval.ID, false, models.DecideApprovalRequest{
			DecidedBy: "second@example.com",
		}, false)
		assert.ErrorIs(t, err, ErrAlreadyDecided)
	})

	t.Run("emergency stop freezes decisions", func(t *testing.T) {
		inc := createTestIncident(t, client, "pod vault-dec04 CrashLoopBackOff")
		approval := createTestApproval(t, client, inc.ID, 0)

		_, err := service.Decide(ctx, approval.ID, true, models.DecideApprovalRequest{
			DecidedBy: "oncall@example.com",
		}, true)
		assert.ErrorIs(t, err, ErrEmergencyStopActive)

		// The request is untouched and can be decided once the stop clears.
		decided, err := service.Decide(ctx, approval.ID, true, models.DecideApprovalRequest{
			DecidedBy: "oncall@example.com",
		}, false)
		require.NoError(t, err)
		assert.Equal(t, "approved", string(decided.Decision))
	})

	t.Run("unknown approval", func(t *testing.T) {
		_, err := service.Decide(ctx, "no-such-approval", true, models.DecideApprovalRequest{
			DecidedBy: "oncall@example.com",
		}, false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("requires an identity", func(t *testing.T) {
		_, err := service.Decide(ctx, "whatever", true, models.DecideApprovalRequest{}, false)
		assert.True(t, IsValidationError(err))
	})

	t.Run("a new pending request may follow a decision", func(t *testing.T) {
		inc := createTestIncident(t, client, "pod gateway-dec05 CrashLoopBackOff")
		approval := createTestApproval(t, client, inc.ID, 0)

		_, err := service.Decide(ctx, approval.ID, false, models.DecideApprovalRequest{
			DecidedBy: "oncall@example.com",
		}, false)
		require.NoError(t, err)

		// The partial unique index only guards pending rows.
		_, err = service.Create(ctx, testApprovalRequest(inc.ID, 0))
		assert.NoError(t, err)
	})
}

func TestApprovalService_Listing(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client)
	ctx := context.Background()

	first := createTestIncident(t, client, "pod alpha-lst01 CrashLoopBackOff")
	second := createTestIncident(t, client, "pod beta-lst02 CrashLoopBackOff")

	a1 := createTestApproval(t, client, first.ID, 0)
	a2 := createTestApproval(t, client, second.ID, 0)
	a3 := createTestApproval(t, client, second.ID, 1)

	_, err := service.Decide(ctx, a2.ID, true, models.DecideApprovalRequest{
		DecidedBy: "oncall@example.com",
	}, false)
	require.NoError(t, err)

	t.Run("pending lists undecided oldest first", func(t *testing.T) {
		resp, err := service.ListPending(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		require.Len(t, resp.Approvals, 2)
		assert.Equal(t, a1.ID, resp.Approvals[0].ID)
		assert.Equal(t, a3.ID, resp.Approvals[1].ID)
	})

	t.Run("by incident includes decided requests", func(t *testing.T) {
		approvals, err := service.ListByIncident(ctx, second.ID)
		require.NoError(t, err)
		assert.Len(t, approvals, 2)
	})

	t.Run("pending count", func(t *testing.T) {
		n, err := service.PendingCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("get returns the request", func(t *testing.T) {
		got, err := service.Get(ctx, a1.ID)
		require.NoError(t, err)
		assert.Equal(t, a1.ID, got.ID)

		_, err = service.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
