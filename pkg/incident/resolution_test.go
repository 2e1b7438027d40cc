package incident

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vigilops/vigil/pkg/models"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name           string
		ev             Evidence
		resolveOnClear bool
		wantState      models.IncidentState
		wantReason     models.TerminalReason
	}{
		{
			name:       "verified execution resolves",
			ev:         Evidence{VerifiedSuccess: true, AttemptedExecution: true},
			wantState:  models.StateResolved,
			wantReason: models.ReasonRemediationVerified,
		},
		{
			name:       "verified wins even if problems linger elsewhere",
			ev:         Evidence{VerifiedSuccess: true, AttemptedExecution: true, ProblemsObserved: true},
			wantState:  models.StateResolved,
			wantReason: models.ReasonRemediationVerified,
		},
		{
			name:       "subject gone after an attempt resolves",
			ev:         Evidence{AttemptedExecution: true, SubjectGone: true},
			wantState:  models.StateResolved,
			wantReason: models.ReasonSubjectGone,
		},
		{
			name:       "subject gone without an attempt is not resolution",
			ev:         Evidence{SubjectGone: true},
			wantState:  models.StateAbandoned,
			wantReason: models.ReasonAutoRecovered,
		},
		{
			name:       "healthy with nothing done abandons as auto recovered",
			ev:         Evidence{},
			wantState:  models.StateAbandoned,
			wantReason: models.ReasonAutoRecovered,
		},
		{
			name:       "healthy after unverified attempt still abandons",
			ev:         Evidence{AttemptedExecution: true},
			wantState:  models.StateAbandoned,
			wantReason: models.ReasonAutoRecovered,
		},
		{
			name:           "resolve on clear opts healthy into resolved",
			ev:             Evidence{},
			resolveOnClear: true,
			wantState:      models.StateResolved,
			wantReason:     models.ReasonExternalRecovery,
		},
		{
			name:       "problems with nothing attempted fails",
			ev:         Evidence{ProblemsObserved: true},
			wantState:  models.StateFailed,
			wantReason: models.ReasonNoExecutableActions,
		},
		{
			name:       "problems after failed attempts fails",
			ev:         Evidence{AttemptedExecution: true, ProblemsObserved: true},
			wantState:  models.StateFailed,
			wantReason: models.ReasonExecutionFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, reason := Outcome(tt.ev, tt.resolveOnClear)

			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestAttempted(t *testing.T) {
	attempted := []models.ExecutionStatus{
		models.ExecutionSucceeded, models.ExecutionFailed, models.ExecutionRolledBack,
	}
	for _, status := range attempted {
		assert.True(t, Attempted(status), string(status))
	}

	notAttempted := []models.ExecutionStatus{
		models.ExecutionPending, models.ExecutionExecuting,
		models.ExecutionSkipped, models.ExecutionRejected,
	}
	for _, status := range notAttempted {
		assert.False(t, Attempted(status), string(status))
	}
}

func TestVerified(t *testing.T) {
	passed := &models.VerificationResult{Predicate: "deployment_healthy", Passed: true}
	failed := &models.VerificationResult{Predicate: "deployment_healthy", Passed: false}

	assert.True(t, Verified(models.ExecutionSucceeded, passed))
	assert.False(t, Verified(models.ExecutionSucceeded, failed))
	assert.False(t, Verified(models.ExecutionSucceeded, nil))
	assert.False(t, Verified(models.ExecutionFailed, passed))
	assert.False(t, Verified(models.ExecutionRolledBack, passed))
}

func TestAssessContext(t *testing.T) {
	healthyPod := map[string]any{"name": "api-1", "phase": "Running", "ready": "1/1", "restarts": 0}

	t.Run("failed fetch reads as problems present", func(t *testing.T) {
		gone, problems := AssessContext(nil)
		assert.False(t, gone)
		assert.True(t, problems)
	})

	t.Run("no pods and no deployment means subject gone", func(t *testing.T) {
		gone, problems := AssessContext(map[string]any{"pods": []map[string]any{}})
		assert.True(t, gone)
		assert.False(t, problems)
	})

	t.Run("healthy subject", func(t *testing.T) {
		gone, problems := AssessContext(map[string]any{
			"pods":       []map[string]any{healthyPod},
			"deployment": map[string]any{"name": "api", "desired": 1, "ready": 1, "unavailable": 0},
		})
		assert.False(t, gone)
		assert.False(t, problems)
	})

	t.Run("waiting reason flags problems", func(t *testing.T) {
		_, problems := AssessContext(map[string]any{
			"pods": []map[string]any{
				{"name": "api-2", "phase": "Running", "ready": "0/1", "waiting_reason": "CrashLoopBackOff"},
			},
		})
		assert.True(t, problems)
	})

	t.Run("pending phase flags problems", func(t *testing.T) {
		_, problems := AssessContext(map[string]any{
			"pods": []map[string]any{{"name": "api-3", "phase": "Pending", "ready": "0/1"}},
		})
		assert.True(t, problems)
	})

	t.Run("ready mismatch flags problems", func(t *testing.T) {
		_, problems := AssessContext(map[string]any{
			"pods": []map[string]any{{"name": "api-4", "phase": "Running", "ready": "1/2"}},
		})
		assert.True(t, problems)
	})

	t.Run("degraded deployment flags problems despite clean pods", func(t *testing.T) {
		_, problems := AssessContext(map[string]any{
			"pods":       []map[string]any{healthyPod},
			"deployment": map[string]any{"name": "api", "desired": 3, "ready": 1, "unavailable": 2},
		})
		assert.True(t, problems)
	})

	t.Run("historical restarts alone are not problems", func(t *testing.T) {
		_, problems := AssessContext(map[string]any{
			"pods": []map[string]any{
				{"name": "api-5", "phase": "Running", "ready": "1/1", "restarts": 7},
			},
		})
		assert.False(t, problems)
	})

	t.Run("completed job pods are not problems", func(t *testing.T) {
		_, problems := AssessContext(map[string]any{
			"pods": []map[string]any{{"name": "migrate-1", "phase": "Succeeded", "ready": "0/1"}},
		})
		assert.False(t, problems)
	})
}
