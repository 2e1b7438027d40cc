package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/models"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(PlanCreatedPayload{
			BasePayload: BasePayload{
				Type:       EventTypePlanCreated,
				IncidentID: "abc-123",
			},
			RootCause: "OOMKilled on payments",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypePlanCreated)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(PlanCreatedPayload{
			BasePayload: BasePayload{
				Type:       EventTypePlanCreated,
				IncidentID: "abc-123",
			},
			RootCause: strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(IncidentStatusPayload{
			BasePayload: BasePayload{
				Type:       EventTypeIncidentStatus,
				IncidentID: "abc-123",
			},
			From: models.StateReceived,
			To:   models.StateDeduplicated,
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(ExecutionCompletedPayload{
			BasePayload: BasePayload{
				Type:       EventTypeExecutionCompleted,
				IncidentID: "inc-789",
			},
			ExecutionID: "exec-456",
			Status:      models.ExecutionFailed,
			Detail:      strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeExecutionCompleted)
		assert.Contains(t, result, "inc-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes.
		// Marshal an empty struct first to measure the overhead of the struct's
		// fixed fields (keys, quotes, separators). The 20-byte safety margin
		// accounts for JSON encoding variability: if new fields with non-zero
		// defaults are added to PlanCreatedPayload, the base overhead grows
		// and the margin prevents the test from flipping unexpectedly.
		base, _ := json.Marshal(PlanCreatedPayload{
			BasePayload: BasePayload{Type: "t"},
		})
		contentSize := 7900 - len(base) - 20
		payload, _ := json.Marshal(PlanCreatedPayload{
			BasePayload: BasePayload{Type: "t"},
			RootCause:   strings.Repeat("b", contentSize),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(ExecutionStartedPayload{
			BasePayload: BasePayload{
				Type:       EventTypeExecutionStarted,
				IncidentID: "inc-1",
			},
			ExecutionID: "exec-1",
			Command:     "kubectl rollout restart deployment/payments -n prod",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "exec-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(ExecutionCompletedPayload{
			BasePayload: BasePayload{
				Type:       EventTypeExecutionCompleted,
				IncidentID: "inc-789",
			},
			ExecutionID: "exec-456",
			Detail:      strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "inc-789")
	})

	t.Run("truncated payload without incident_id keeps empty routing field", func(t *testing.T) {
		// Breaker events have no incident; the envelope still carries the
		// (empty) incident_id key so clients can route uniformly.
		payload, _ := json.Marshal(BreakerStatusPayload{
			BasePayload: BasePayload{
				Type: EventTypeBreakerStatus,
			},
			From: models.BreakerClosed,
			To:   models.BreakerOpen,
		})
		var m map[string]any
		require.NoError(t, json.Unmarshal(payload, &m))
		m["padding"] = strings.Repeat("x", 8000)
		padded, _ := json.Marshal(m)

		result, err := injectDBEventIDAndTruncate(padded, 99)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":99`)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestIncidentStatusPayload_JSON(t *testing.T) {
	payload := IncidentStatusPayload{
		BasePayload: BasePayload{
			Type:       EventTypeIncidentStatus,
			IncidentID: "inc-123",
			Timestamp:  "2026-08-10T12:00:00Z",
		},
		From:           models.StateVerifying,
		To:             models.StateResolved,
		TerminalReason: models.ReasonRemediationVerified,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded IncidentStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeIncidentStatus, decoded.Type)
	assert.Equal(t, "inc-123", decoded.IncidentID)
	assert.Equal(t, models.StateVerifying, decoded.From)
	assert.Equal(t, models.StateResolved, decoded.To)
	assert.Equal(t, models.ReasonRemediationVerified, decoded.TerminalReason)
	assert.Equal(t, "2026-08-10T12:00:00Z", decoded.Timestamp)
}

func TestIncidentStatusPayload_NonTerminalOmitsReason(t *testing.T) {
	// Mid-pipeline transitions carry no terminal reason
	payload := IncidentStatusPayload{
		BasePayload: BasePayload{
			Type:       EventTypeIncidentStatus,
			IncidentID: "inc-123",
			Timestamp:  "2026-08-10T12:00:00Z",
		},
		From: models.StateReceived,
		To:   models.StateDeduplicated,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "terminal_reason")
}

func TestPlanCreatedPayload_JSON(t *testing.T) {
	payload := PlanCreatedPayload{
		BasePayload: BasePayload{
			Type:       EventTypePlanCreated,
			IncidentID: "inc-200",
			Timestamp:  "2026-08-10T12:00:00Z",
		},
		RootCause:   "memory limit too low after traffic spike",
		ActionCount: 2,
		Actions: []PlannedActionSummary{
			{Index: 0, ActionType: models.ActionPatchMemoryLimit, Description: "raise memory limit", RiskLevel: models.RiskMedium, Confidence: 0.85},
			{Index: 1, ActionType: models.ActionRestartDeployment, Description: "restart to pick up limit", RiskLevel: models.RiskMedium, Confidence: 0.9},
		},
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded PlanCreatedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypePlanCreated, decoded.Type)
	assert.Equal(t, "inc-200", decoded.IncidentID)
	assert.Equal(t, 2, decoded.ActionCount)
	require.Len(t, decoded.Actions, 2)
	assert.Equal(t, models.ActionPatchMemoryLimit, decoded.Actions[0].ActionType)
	assert.Equal(t, 0.85, decoded.Actions[0].Confidence)
	assert.Equal(t, 1, decoded.Actions[1].Index)
}

func TestExecutionCompletedPayload_JSON(t *testing.T) {
	passed := true
	payload := ExecutionCompletedPayload{
		BasePayload: BasePayload{
			Type:       EventTypeExecutionCompleted,
			IncidentID: "inc-300",
			Timestamp:  "2026-08-10T12:00:00Z",
		},
		ExecutionID:        "exec-1",
		ActionIndex:        0,
		ActionType:         models.ActionRestartDeployment,
		Status:             models.ExecutionSucceeded,
		VerificationPassed: &passed,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded ExecutionCompletedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, models.ExecutionSucceeded, decoded.Status)
	require.NotNil(t, decoded.VerificationPassed)
	assert.True(t, *decoded.VerificationPassed)
	// Successful executions have no skip reason
	assert.NotContains(t, string(data), "skip_reason")
}

func TestExecutionCompletedPayload_SkipJSON(t *testing.T) {
	payload := ExecutionCompletedPayload{
		BasePayload: BasePayload{
			Type:       EventTypeExecutionCompleted,
			IncidentID: "inc-301",
			Timestamp:  "2026-08-10T12:00:00Z",
		},
		ExecutionID: "exec-2",
		ActionIndex: 1,
		ActionType:  models.ActionDeleteNamespace,
		Status:      models.ExecutionSkipped,
		SkipReason:  models.SkipPolicyForbidden,
		Detail:      "destructive operations are disabled",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded ExecutionCompletedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, models.ExecutionSkipped, decoded.Status)
	assert.Equal(t, models.SkipPolicyForbidden, decoded.SkipReason)
	assert.Nil(t, decoded.VerificationPassed)
}

func TestBreakerStatusPayload_JSON(t *testing.T) {
	payload := BreakerStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeBreakerStatus,
			Timestamp: "2026-08-10T12:00:00Z",
		},
		From:                models.BreakerClosed,
		To:                  models.BreakerOpen,
		ConsecutiveFailures: 3,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded BreakerStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeBreakerStatus, decoded.Type)
	assert.Equal(t, models.BreakerClosed, decoded.From)
	assert.Equal(t, models.BreakerOpen, decoded.To)
	assert.Equal(t, uint32(3), decoded.ConsecutiveFailures)

	// Fleet-wide events omit incident_id entirely
	assert.NotContains(t, string(data), "incident_id")
}
