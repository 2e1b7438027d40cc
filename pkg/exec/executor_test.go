package exec

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/models"
)

type recordedCreate struct {
	id  string
	req models.CreateExecutionRequest
}

type recordedUpdate struct {
	id  string
	req models.UpdateExecutionRequest
}

type fakeSink struct {
	mu        sync.Mutex
	creates   []recordedCreate
	updates   []recordedUpdate
	createErr error
}

func (s *fakeSink) RecordExecution(_ context.Context, req models.CreateExecutionRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return "", s.createErr
	}
	id := fmt.Sprintf("exec-%d", len(s.creates)+1)
	s.creates = append(s.creates, recordedCreate{id: id, req: req})
	return id, nil
}

func (s *fakeSink) UpdateExecution(_ context.Context, id string, req models.UpdateExecutionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, recordedUpdate{id: id, req: req})
	return nil
}

func (s *fakeSink) lastUpdateFor(id string) (models.UpdateExecutionRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.updates) - 1; i >= 0; i-- {
		if s.updates[i].id == id {
			return s.updates[i].req, true
		}
	}
	return models.UpdateExecutionRequest{}, false
}

type scriptedAdapter struct {
	name    string
	actions []models.ActionType

	mu        sync.Mutex
	executed  []models.CommandSpec
	fail      map[models.ActionType]error
	flaky     map[models.ActionType]int // transient failures before success
	results   map[models.ActionType]*models.CommandResult
	verify    func(cmd models.CommandSpec) *models.VerificationResult
	verifyErr error
}

var (
	_ adapter.Adapter        = (*scriptedAdapter)(nil)
	_ adapter.ActionVerifier = (*scriptedAdapter)(nil)
)

func (a *scriptedAdapter) Name() string { return a.name }

func (a *scriptedAdapter) Connect(context.Context) ([]models.ActionType, error) {
	return a.actions, nil
}

func (a *scriptedAdapter) Health(context.Context) error { return nil }

func (a *scriptedAdapter) FetchContext(context.Context, adapter.ContextParams) (map[string]any, error) {
	return nil, nil
}

func (a *scriptedAdapter) Capabilities() []models.ActionType { return a.actions }

func (a *scriptedAdapter) ExecuteAction(_ context.Context, cmd models.CommandSpec) (*models.CommandResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.executed = append(a.executed, cmd)
	if n := a.flaky[cmd.ActionType]; n > 0 {
		a.flaky[cmd.ActionType] = n - 1
		return nil, adapter.Transient(errors.New("connection reset by peer"))
	}
	if err := a.fail[cmd.ActionType]; err != nil {
		return nil, err
	}
	if res := a.results[cmd.ActionType]; res != nil {
		return res, nil
	}
	return &models.CommandResult{Stdout: "ok"}, nil
}

// VerifyAction reports the scripted predicate; a nil script means the action
// has no predicate.
func (a *scriptedAdapter) VerifyAction(_ context.Context, cmd models.CommandSpec, _ time.Time) (*models.VerificationResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.verifyErr != nil {
		return nil, a.verifyErr
	}
	if a.verify == nil {
		return nil, nil
	}
	return a.verify(cmd), nil
}

func (a *scriptedAdapter) executedCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.executed)
}

func (a *scriptedAdapter) setFail(at models.ActionType, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fail == nil {
		a.fail = map[models.ActionType]error{}
	}
	a.fail[at] = err
}

func newTestExecutor(t *testing.T, a *scriptedAdapter) (*Executor, *fakeSink) {
	t.Helper()
	reg := adapter.NewRegistry()
	require.NoError(t, reg.Register(a))
	sink := &fakeSink{}
	ex, err := NewExecutor(reg, NewBreaker(testLogger(), nil), sink, testLogger())
	require.NoError(t, err)
	// Keep transient-failure retries from slowing the suite down.
	ex.retry.InitialBackoff = time.Millisecond
	ex.retry.MaxBackoff = time.Millisecond
	return ex, sink
}

func restartRequest() Request {
	return Request{
		IncidentID:  "inc-1",
		ActionIndex: 0,
		Action: models.ResolutionAction{
			ActionType: models.ActionRestartDeployment,
			Params:     map[string]string{"deployment": "api", "namespace": "prod"},
			Confidence: 0.9,
			RiskLevel:  models.RiskMedium,
		},
		Command: models.CommandSpec{
			TargetSystem:   "kubernetes",
			Verb:           "restart",
			ActionType:     models.ActionRestartDeployment,
			Args:           map[string]string{"deployment": "api", "namespace": "prod"},
			Rendered:       "kubectl rollout restart deployment/api -n prod",
			ClassifiedRisk: models.RiskMedium,
		},
	}
}

func TestExecuteSuccess(t *testing.T) {
	a := &scriptedAdapter{
		name:    "kubernetes",
		actions: []models.ActionType{models.ActionRestartDeployment},
		results: map[models.ActionType]*models.CommandResult{
			models.ActionRestartDeployment: {Stdout: "deployment.apps/api restarted", ExitCode: 0, DurationMs: 40},
		},
		verify: func(models.CommandSpec) *models.VerificationResult {
			return &models.VerificationResult{Predicate: "deployment_healthy", Passed: true, LatencyMs: 1200}
		},
	}
	ex, sink := newTestExecutor(t, a)

	out, err := ex.Execute(context.Background(), restartRequest())

	require.NoError(t, err)
	assert.Equal(t, models.ExecutionSucceeded, out.Status)
	assert.NotEmpty(t, out.RecordID)
	require.NotNil(t, out.Verification)
	assert.True(t, out.Verification.Passed)

	require.Len(t, sink.creates, 1)
	issued := sink.creates[0].req
	assert.Equal(t, models.ExecutionExecuting, issued.Status)
	assert.Equal(t, "inc-1", issued.IncidentID)
	assert.NotNil(t, issued.StartedAt)
	require.NotNil(t, issued.Command)
	assert.Equal(t, "kubectl rollout restart deployment/api -n prod", issued.Command.Rendered)

	update, ok := sink.lastUpdateFor(out.RecordID)
	require.True(t, ok)
	assert.Equal(t, models.ExecutionSucceeded, update.Status)
	assert.Equal(t, "deployment.apps/api restarted", update.Stdout)
	require.NotNil(t, update.ExitCode)
	assert.Equal(t, 0, *update.ExitCode)
	require.NotNil(t, update.Verification)
	assert.Equal(t, "deployment_healthy", update.Verification.Predicate)
	assert.NotNil(t, update.FinishedAt)
}

func TestExecuteRetriesTransientFailure(t *testing.T) {
	a := &scriptedAdapter{
		name:    "kubernetes",
		actions: []models.ActionType{models.ActionRestartDeployment},
		flaky:   map[models.ActionType]int{models.ActionRestartDeployment: 2},
	}
	ex, sink := newTestExecutor(t, a)

	out, err := ex.Execute(context.Background(), restartRequest())

	require.NoError(t, err)
	assert.Equal(t, models.ExecutionSucceeded, out.Status)
	assert.Equal(t, 3, a.executedCount())
	// Retries happen inside one breaker call and one issuance record.
	assert.Equal(t, uint32(0), ex.Breaker().Snapshot().ConsecutiveFailures)
	assert.Len(t, sink.creates, 1)
}

func TestExecuteDoesNotRetryPermanentFailure(t *testing.T) {
	a := &scriptedAdapter{
		name:    "kubernetes",
		actions: []models.ActionType{models.ActionRestartDeployment},
	}
	a.setFail(models.ActionRestartDeployment, errors.New("deployment not found"))
	ex, _ := newTestExecutor(t, a)

	out, err := ex.Execute(context.Background(), restartRequest())

	require.NoError(t, err)
	assert.Equal(t, models.ExecutionFailed, out.Status)
	assert.Equal(t, 1, a.executedCount())
}

func TestExecuteIssuanceWriteFailureBlocksExecution(t *testing.T) {
	a := &scriptedAdapter{name: "kubernetes", actions: []models.ActionType{models.ActionRestartDeployment}}
	reg := adapter.NewRegistry()
	require.NoError(t, reg.Register(a))
	sink := &fakeSink{createErr: errors.New("connection refused")}
	ex, err := NewExecutor(reg, NewBreaker(testLogger(), nil), sink, testLogger())
	require.NoError(t, err)

	_, err = ex.Execute(context.Background(), restartRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "issuance record")
	assert.Equal(t, 0, a.executedCount())
}

func TestExecuteFailureWithoutRollback(t *testing.T) {
	a := &scriptedAdapter{
		name:    "kubernetes",
		actions: []models.ActionType{models.ActionRestartDeployment},
		fail:    map[models.ActionType]error{models.ActionRestartDeployment: errors.New("connection refused")},
	}
	ex, sink := newTestExecutor(t, a)

	out, err := ex.Execute(context.Background(), restartRequest())

	require.NoError(t, err)
	assert.Equal(t, models.ExecutionFailed, out.Status)
	assert.Contains(t, out.Detail, "connection refused")
	assert.Empty(t, out.RollbackRecordID)
	require.Len(t, sink.creates, 1)

	update, ok := sink.lastUpdateFor(out.RecordID)
	require.True(t, ok)
	assert.Equal(t, models.ExecutionFailed, update.Status)
	assert.Contains(t, update.Detail, "connection refused")
}

func TestExecuteVerificationFailureRollsBack(t *testing.T) {
	a := &scriptedAdapter{
		name:    "kubernetes",
		actions: []models.ActionType{models.ActionPatchMemoryLimit},
		verify: func(cmd models.CommandSpec) *models.VerificationResult {
			// The original patch never lands; the rollback value does.
			return &models.VerificationResult{
				Predicate: "limit_applied",
				Passed:    cmd.Args["value"] == "512Mi",
			}
		},
	}
	ex, sink := newTestExecutor(t, a)

	req := Request{
		IncidentID:  "inc-1",
		ActionIndex: 1,
		Action: models.ResolutionAction{
			ActionType:       models.ActionPatchMemoryLimit,
			Params:           map[string]string{"deployment": "api", "value": "1Gi", "namespace": "prod"},
			Confidence:       0.85,
			RiskLevel:        models.RiskMedium,
			RollbackPossible: true,
			Rollback: &models.RollbackSpec{
				ActionType: models.ActionPatchMemoryLimit,
				Params:     map[string]string{"deployment": "api", "value": "512Mi", "namespace": "prod"},
			},
		},
		Command: models.CommandSpec{
			TargetSystem:   "kubernetes",
			Verb:           "patch",
			ActionType:     models.ActionPatchMemoryLimit,
			Args:           map[string]string{"deployment": "api", "value": "1Gi", "namespace": "prod"},
			Rendered:       `kubectl patch deployment api -n prod -p '{"memory":"1Gi"}'`,
			ClassifiedRisk: models.RiskMedium,
		},
	}
	out, err := ex.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.ExecutionRolledBack, out.Status)
	assert.Contains(t, out.Detail, "verification failed")
	require.NotEmpty(t, out.RollbackRecordID)
	assert.Equal(t, 2, a.executedCount())

	require.Len(t, sink.creates, 2)
	rollback := sink.creates[1].req
	require.NotNil(t, rollback.RollbackOf)
	assert.Equal(t, out.RecordID, *rollback.RollbackOf)
	assert.Equal(t, models.ActionPatchMemoryLimit, rollback.ActionType)
	assert.Equal(t, "512Mi", rollback.Params["value"])

	rbUpdate, ok := sink.lastUpdateFor(out.RollbackRecordID)
	require.True(t, ok)
	assert.Equal(t, models.ExecutionSucceeded, rbUpdate.Status)

	parentUpdate, ok := sink.lastUpdateFor(out.RecordID)
	require.True(t, ok)
	assert.Equal(t, models.ExecutionRolledBack, parentUpdate.Status)
}

func TestExecuteRollbackRefusedWhenForbidden(t *testing.T) {
	a := &scriptedAdapter{
		name:    "kubernetes",
		actions: []models.ActionType{models.ActionRestartDeployment, models.ActionDeleteNamespace},
		fail:    map[models.ActionType]error{models.ActionRestartDeployment: errors.New("timeout")},
	}
	ex, sink := newTestExecutor(t, a)

	req := restartRequest()
	req.Action.RollbackPossible = true
	req.Action.Rollback = &models.RollbackSpec{
		ActionType: models.ActionDeleteNamespace,
		Params:     map[string]string{"name": "prod"},
	}
	out, err := ex.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.ExecutionFailed, out.Status)
	assert.Empty(t, out.RollbackRecordID)
	assert.Len(t, sink.creates, 1)
	assert.Equal(t, 1, a.executedCount())
}

func TestExecuteForbiddenCommandNeverRuns(t *testing.T) {
	a := &scriptedAdapter{name: "kubernetes", actions: []models.ActionType{models.ActionDeleteNamespace}}
	ex, sink := newTestExecutor(t, a)

	req := restartRequest()
	req.Command.Forbidden = true
	req.Command.ForbiddenRule = "protected_resource_delete"
	out, err := ex.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.ExecutionSkipped, out.Status)
	assert.Equal(t, 0, a.executedCount())

	require.Len(t, sink.creates, 1)
	skip := sink.creates[0].req
	assert.Equal(t, models.ExecutionSkipped, skip.Status)
	require.NotNil(t, skip.SkipReason)
	assert.Equal(t, models.SkipPolicyForbidden, *skip.SkipReason)
	assert.Equal(t, "protected_resource_delete", skip.Detail)
}

func TestExecuteNoPredicate(t *testing.T) {
	a := &scriptedAdapter{name: "kubernetes", actions: []models.ActionType{models.ActionRestartDeployment}}
	ex, sink := newTestExecutor(t, a)

	out, err := ex.Execute(context.Background(), restartRequest())

	require.NoError(t, err)
	assert.Equal(t, models.ExecutionSucceeded, out.Status)
	assert.Nil(t, out.Verification)

	update, ok := sink.lastUpdateFor(out.RecordID)
	require.True(t, ok)
	assert.Nil(t, update.Verification)
}

func TestExecuteVerifierTransportErrorFails(t *testing.T) {
	a := &scriptedAdapter{
		name:      "kubernetes",
		actions:   []models.ActionType{models.ActionRestartDeployment},
		verifyErr: errors.New("watch closed"),
	}
	ex, _ := newTestExecutor(t, a)

	out, err := ex.Execute(context.Background(), restartRequest())

	require.NoError(t, err)
	assert.Equal(t, models.ExecutionFailed, out.Status)
	assert.Contains(t, out.Detail, "verifying")
}

func TestExecuteBreakerOpensAndRefuses(t *testing.T) {
	a := &scriptedAdapter{
		name:    "kubernetes",
		actions: []models.ActionType{models.ActionRestartDeployment},
		fail:    map[models.ActionType]error{models.ActionRestartDeployment: errors.New("api timeout")},
	}
	ex, sink := newTestExecutor(t, a)

	for i := 0; i < breakerFailureThreshold; i++ {
		out, err := ex.Execute(context.Background(), restartRequest())
		require.NoError(t, err)
		assert.Equal(t, models.ExecutionFailed, out.Status)
	}
	require.True(t, ex.Breaker().Open())

	out, err := ex.Execute(context.Background(), restartRequest())

	require.NoError(t, err)
	assert.True(t, out.BreakerOpen)
	assert.Equal(t, models.ExecutionSkipped, out.Status)
	assert.Equal(t, breakerFailureThreshold, a.executedCount())

	update, ok := sink.lastUpdateFor(out.RecordID)
	require.True(t, ok)
	require.NotNil(t, update.SkipReason)
	assert.Equal(t, models.SkipCircuitOpen, *update.SkipReason)
}

func TestExecuteAfterBreakerReset(t *testing.T) {
	a := &scriptedAdapter{
		name:    "kubernetes",
		actions: []models.ActionType{models.ActionRestartDeployment},
		fail:    map[models.ActionType]error{models.ActionRestartDeployment: errors.New("api timeout")},
	}
	ex, _ := newTestExecutor(t, a)

	for i := 0; i < breakerFailureThreshold; i++ {
		_, err := ex.Execute(context.Background(), restartRequest())
		require.NoError(t, err)
	}
	require.True(t, ex.Breaker().Open())

	ex.Breaker().Reset()
	a.setFail(models.ActionRestartDeployment, nil)

	out, err := ex.Execute(context.Background(), restartRequest())

	require.NoError(t, err)
	assert.Equal(t, models.ExecutionSucceeded, out.Status)
}

func TestExecuteCancelledContextStillRunsAndFlushes(t *testing.T) {
	a := &scriptedAdapter{name: "kubernetes", actions: []models.ActionType{models.ActionRestartDeployment}}
	ex, sink := newTestExecutor(t, a)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := ex.Execute(ctx, restartRequest())

	require.NoError(t, err)
	assert.Equal(t, models.ExecutionSucceeded, out.Status)
	_, ok := sink.lastUpdateFor(out.RecordID)
	assert.True(t, ok)
}

func TestRecordSkip(t *testing.T) {
	a := &scriptedAdapter{name: "kubernetes", actions: []models.ActionType{models.ActionRestartDeployment}}
	ex, sink := newTestExecutor(t, a)

	id, err := ex.RecordSkip(context.Background(), restartRequest(), models.SkipPlanMode, "autonomy mode is plan")

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, sink.creates, 1)
	rec := sink.creates[0].req
	assert.Equal(t, models.ExecutionSkipped, rec.Status)
	require.NotNil(t, rec.SkipReason)
	assert.Equal(t, models.SkipPlanMode, *rec.SkipReason)
	assert.Equal(t, "autonomy mode is plan", rec.Detail)
	require.NotNil(t, rec.Command)
	assert.Equal(t, "kubectl rollout restart deployment/api -n prod", rec.Command.Rendered)
	assert.Equal(t, 0, a.executedCount())
}

func TestRecordPending(t *testing.T) {
	a := &scriptedAdapter{name: "kubernetes", actions: []models.ActionType{models.ActionRestartDeployment}}
	ex, sink := newTestExecutor(t, a)

	id, err := ex.RecordPending(context.Background(), restartRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, sink.creates, 1)
	rec := sink.creates[0].req
	assert.Equal(t, models.ExecutionPending, rec.Status)
	assert.Nil(t, rec.SkipReason)
	assert.Equal(t, 0, a.executedCount())
}

func TestExecutePromotesParkedRecord(t *testing.T) {
	a := &scriptedAdapter{
		name:    "kubernetes",
		actions: []models.ActionType{models.ActionRestartDeployment},
		results: map[models.ActionType]*models.CommandResult{
			models.ActionRestartDeployment: {Stdout: "deployment.apps/api restarted", ExitCode: 0},
		},
	}
	ex, sink := newTestExecutor(t, a)

	parkedID, err := ex.RecordPending(context.Background(), restartRequest())
	require.NoError(t, err)

	req := restartRequest()
	req.RecordID = parkedID
	out, err := ex.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.ExecutionSucceeded, out.Status)
	assert.Equal(t, parkedID, out.RecordID)

	// The parked record is promoted, never duplicated.
	require.Len(t, sink.creates, 1)
	require.GreaterOrEqual(t, len(sink.updates), 2)
	promotion := sink.updates[0]
	assert.Equal(t, parkedID, promotion.id)
	assert.Equal(t, models.ExecutionExecuting, promotion.req.Status)
	assert.NotNil(t, promotion.req.StartedAt)

	settle, ok := sink.lastUpdateFor(parkedID)
	require.True(t, ok)
	assert.Equal(t, models.ExecutionSucceeded, settle.Status)
	assert.Equal(t, "deployment.apps/api restarted", settle.Stdout)
}
