package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/models"
)

// TestIncidentChannelPayloads_ContainIncidentID is a contract test between
// the Go backend and the dashboard WebSocket client.
//
// The dashboard routes incoming WS events by inspecting `data.incident_id`
// in the JSON payload. ANY payload that is broadcast on an incident-specific
// channel (incident:{id}) or mirrored onto the global incidents channel MUST
// include a non-empty `incident_id` field — otherwise the dashboard silently
// drops it.
//
// All payload structs embed BasePayload which guarantees incident_id is
// present. This test guards against:
//   - A new payload struct that forgets to embed BasePayload
//   - A call site that forgets to populate BasePayload.IncidentID
func TestIncidentChannelPayloads_ContainIncidentID(t *testing.T) {
	const testIncidentID = "inc-contract-test"

	// Every payload type that flows through IncidentChannel(incidentID).
	// If you add a new payload that goes through an incident channel,
	// add it here — the test will fail if incident_id is missing.
	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "IncidentCreatedPayload",
			payload: IncidentCreatedPayload{
				BasePayload: BasePayload{
					Type:       EventTypeIncidentCreated,
					IncidentID: testIncidentID,
					Timestamp:  "2026-08-01T00:00:00Z",
				},
				Service:     "payments",
				Severity:    models.SeverityCritical,
				Source:      models.AlertSourcePagerDuty,
				Title:       "CrashLoopBackOff",
				State:       models.StateReceived,
				Fingerprint: "a1b2c3d4e5f60718",
			},
		},
		{
			name: "IncidentStatusPayload",
			payload: IncidentStatusPayload{
				BasePayload: BasePayload{
					Type:       EventTypeIncidentStatus,
					IncidentID: testIncidentID,
					Timestamp:  "2026-08-01T00:00:00Z",
				},
				From: models.StateReceived,
				To:   models.StateDeduplicated,
			},
		},
		{
			name: "PlanCreatedPayload",
			payload: PlanCreatedPayload{
				BasePayload: BasePayload{
					Type:       EventTypePlanCreated,
					IncidentID: testIncidentID,
					Timestamp:  "2026-08-01T00:00:00Z",
				},
				RootCause:   "missing ConfigMap",
				ActionCount: 1,
				Actions: []PlannedActionSummary{
					{Index: 0, ActionType: models.ActionRestartPod, Description: "restart crashing pod", RiskLevel: models.RiskLow, Confidence: 0.9},
				},
			},
		},
		{
			name: "ExecutionStartedPayload",
			payload: ExecutionStartedPayload{
				BasePayload: BasePayload{
					Type:       EventTypeExecutionStarted,
					IncidentID: testIncidentID,
					Timestamp:  "2026-08-01T00:00:00Z",
				},
				ExecutionID: "exec-1",
				ActionIndex: 0,
				ActionType:  models.ActionRestartPod,
				Command:     "kubectl delete pod payments-7f8d9 -n prod",
				RiskLevel:   models.RiskLow,
			},
		},
		{
			name: "ExecutionCompletedPayload",
			payload: ExecutionCompletedPayload{
				BasePayload: BasePayload{
					Type:       EventTypeExecutionCompleted,
					IncidentID: testIncidentID,
					Timestamp:  "2026-08-01T00:00:00Z",
				},
				ExecutionID: "exec-1",
				ActionIndex: 0,
				ActionType:  models.ActionRestartPod,
				Status:      models.ExecutionSucceeded,
			},
		},
		{
			name: "ApprovalRequestedPayload",
			payload: ApprovalRequestedPayload{
				BasePayload: BasePayload{
					Type:       EventTypeApprovalRequested,
					IncidentID: testIncidentID,
					Timestamp:  "2026-08-01T00:00:00Z",
				},
				ApprovalID:     "appr-1",
				ActionIndex:    0,
				CommandPreview: "kubectl scale deployment/payments --replicas=5 -n prod",
				RiskLevel:      models.RiskHigh,
				Confidence:     0.7,
			},
		},
		{
			name: "ApprovalDecidedPayload",
			payload: ApprovalDecidedPayload{
				BasePayload: BasePayload{
					Type:       EventTypeApprovalDecided,
					IncidentID: testIncidentID,
					Timestamp:  "2026-08-01T00:00:00Z",
				},
				ApprovalID:  "appr-1",
				ActionIndex: 0,
				Decision:    models.ApprovalApproved,
				DecidedBy:   "oncall@example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err, "failed to marshal %s", tt.name)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed), "failed to unmarshal %s", tt.name)

			iid, ok := parsed["incident_id"]
			assert.True(t, ok,
				"%s JSON is missing \"incident_id\" field — dashboard WS routing will silently drop this event", tt.name)
			assert.Equal(t, testIncidentID, iid,
				"%s incident_id has wrong value", tt.name)
		})
	}
}

// TestBreakerStatusPayload_OmitsIncidentID verifies the one fleet-wide
// payload. Breaker events go to GlobalIncidentsChannel with no owning
// incident; the dashboard recognizes them by the absent incident_id and
// routes them to the breaker banner instead of an incident row.
func TestBreakerStatusPayload_OmitsIncidentID(t *testing.T) {
	payload := BreakerStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeBreakerStatus,
			Timestamp: "2026-08-01T00:00:00Z",
		},
		From:                models.BreakerClosed,
		To:                  models.BreakerOpen,
		ConsecutiveFailures: 3,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	_, ok := parsed["incident_id"]
	assert.False(t, ok, "BreakerStatusPayload must omit incident_id — it is fleet-wide")
	assert.Equal(t, EventTypeBreakerStatus, parsed["type"])
}
