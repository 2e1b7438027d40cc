package exec

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/models"
	"github.com/vigilops/vigil/pkg/plan"
)

// Per-command budgets. executionTimeout bounds the adapter call plus its
// verification window. cancelGrace is how long an in-flight command keeps
// running after the incident's context is cancelled; cutting a mutation off
// mid-flight is worse than letting it settle, so the record can say what
// actually happened.
const (
	executionTimeout = 5 * time.Minute
	cancelGrace      = 30 * time.Second
)

// errVerificationFailed marks a command whose post-execution predicate did
// not pass. It counts as a breaker failure like any execution error.
var errVerificationFailed = errors.New("verification failed")

// AuditSink persists execution records. RecordExecution returns the record
// id used for the settle update and for rollback linkage.
type AuditSink interface {
	RecordExecution(ctx context.Context, req models.CreateExecutionRequest) (string, error)
	UpdateExecution(ctx context.Context, id string, req models.UpdateExecutionRequest) error
}

// Request is one gated command to run.
type Request struct {
	IncidentID  string
	ActionIndex int
	Action      models.ResolutionAction
	Command     models.CommandSpec

	// RecordID, when set, names an existing pending record to promote instead
	// of creating a new issuance record. Used when an approved command resumes:
	// the parked record and the execution stay one row.
	RecordID string

	// Autonomy is the snapshot the gate decided under. Rollback commands are
	// classified against the same snapshot, not a fresh read.
	Autonomy *models.AutonomyConfig

	// OnStart, when set, observes the issuance record id as soon as it is
	// persisted, before the adapter runs. Long-running commands surface on
	// live streams through it. Not invoked for rollback records.
	OnStart func(recordID string)
}

// Outcome reports how one command settled.
type Outcome struct {
	RecordID     string
	Status       models.ExecutionStatus
	Detail       string
	Result       *models.CommandResult
	Verification *models.VerificationResult
	FinishedAt   time.Time

	// RollbackRecordID is set when a failed command ran its rollback.
	RollbackRecordID string

	// BreakerOpen reports that the breaker refused the command. The caller
	// should stop dispatching and preview the rest of the plan.
	BreakerOpen bool
}

// Executor runs commands for an incident: issuance record first, adapter
// execution through the breaker, verification, rollback on failure. Callers
// run one incident's commands sequentially; the executor holds no
// per-incident state.
type Executor struct {
	registry *adapter.Registry
	breaker  *Breaker
	audit    AuditSink
	retry    adapter.RetryConfig
	logger   *slog.Logger
}

// NewExecutor builds the executor. A nil breaker gets a fresh one with the
// default policy.
func NewExecutor(registry *adapter.Registry, breaker *Breaker, audit AuditSink, logger *slog.Logger) (*Executor, error) {
	if registry == nil {
		return nil, fmt.Errorf("adapter registry is required")
	}
	if audit == nil {
		return nil, fmt.Errorf("audit sink is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if breaker == nil {
		breaker = NewBreaker(logger, nil)
	}
	return &Executor{
		registry: registry,
		breaker:  breaker,
		audit:    audit,
		retry:    adapter.DefaultRetryConfig(),
		logger:   logger.With("component", "executor"),
	}, nil
}

// Breaker exposes the circuit breaker for gate input and the operator API.
func (e *Executor) Breaker() *Breaker { return e.breaker }

// Execute runs one command end to end. The issuance record is persisted
// before anything runs; if that write fails the command does not run. When
// the command fails and the action declares a rollback, the rollback runs as
// its own record linked via rollback_of, and a successful rollback settles
// the parent as rolled_back.
func (e *Executor) Execute(ctx context.Context, req Request) (Outcome, error) {
	if req.Command.Forbidden {
		// The gate refuses forbidden commands before dispatch; this is the
		// backstop for callers that skipped it.
		id, err := e.RecordSkip(ctx, req, models.SkipPolicyForbidden, req.Command.ForbiddenRule)
		return Outcome{RecordID: id, Status: models.ExecutionSkipped}, err
	}

	out, err := e.run(ctx, req, nil)
	if err != nil || out.Status != models.ExecutionFailed {
		return out, err
	}
	if !req.Action.RollbackPossible || req.Action.Rollback == nil {
		return out, nil
	}

	rbCmd := plan.RollbackCommand(req.Command, *req.Action.Rollback, req.Autonomy)
	if rbCmd.Forbidden {
		e.logger.Warn("rollback refused",
			"incident_id", req.IncidentID,
			"action_index", req.ActionIndex,
			"rule", rbCmd.ForbiddenRule)
		return out, nil
	}
	e.logger.Info("rolling back failed command",
		"incident_id", req.IncidentID,
		"action_index", req.ActionIndex,
		"rollback", rbCmd.Rendered)

	rbReq := req
	rbReq.Command = rbCmd
	rbReq.Action = models.ResolutionAction{
		ActionType: rbCmd.ActionType,
		Params:     rbCmd.Args,
		RiskLevel:  rbCmd.ClassifiedRisk,
	}
	rbOut, rbErr := e.run(ctx, rbReq, &out.RecordID)
	if rbOut.RecordID != "" {
		out.RollbackRecordID = rbOut.RecordID
	}
	if rbErr != nil {
		return out, rbErr
	}
	if rbOut.BreakerOpen {
		out.BreakerOpen = true
		return out, nil
	}
	if rbOut.Status == models.ExecutionSucceeded {
		out.Status = models.ExecutionRolledBack
		if err := e.flush(ctx, &out); err != nil {
			return out, err
		}
	}
	return out, nil
}

// run executes one command without rollback handling.
func (e *Executor) run(ctx context.Context, req Request, rollbackOf *string) (Outcome, error) {
	cmd := req.Command
	startedAt := time.Now()

	var recordID string
	if req.RecordID != "" && rollbackOf == nil {
		err := e.audit.UpdateExecution(ctx, req.RecordID, models.UpdateExecutionRequest{
			Status:    models.ExecutionExecuting,
			StartedAt: &startedAt,
		})
		if err != nil {
			return Outcome{}, fmt.Errorf("promoting pending record %s: %w", req.RecordID, err)
		}
		recordID = req.RecordID
	} else {
		var err error
		recordID, err = e.audit.RecordExecution(ctx, models.CreateExecutionRequest{
			IncidentID:  req.IncidentID,
			ActionIndex: req.ActionIndex,
			ActionType:  cmd.ActionType,
			Params:      cmd.Args,
			Command:     &cmd,
			Status:      models.ExecutionExecuting,
			StartedAt:   &startedAt,
			RollbackOf:  rollbackOf,
		})
		if err != nil {
			return Outcome{}, fmt.Errorf("persisting issuance record: %w", err)
		}
	}
	out := Outcome{RecordID: recordID, Status: models.ExecutionExecuting}
	if req.OnStart != nil && rollbackOf == nil {
		req.OnStart(recordID)
	}

	target, err := e.registry.Get(cmd.TargetSystem)
	if err != nil {
		out.Status = models.ExecutionFailed
		out.Detail = err.Error()
		out.FinishedAt = time.Now()
		if ferr := e.flush(ctx, &out); ferr != nil {
			return out, ferr
		}
		return out, fmt.Errorf("resolving adapter %q: %w", cmd.TargetSystem, err)
	}

	runCtx, finish := detachedContext(ctx)
	var (
		result       *models.CommandResult
		verification *models.VerificationResult
	)
	brkErr := e.breaker.Execute(func() error {
		// Transient adapter failures retry with backoff inside a single
		// breaker call; only the settled outcome counts against the circuit.
		execErr := adapter.Retry(runCtx, e.retry, string(cmd.ActionType), func(ctx context.Context) error {
			res, err := target.ExecuteAction(ctx, cmd)
			result = res
			return err
		})
		if execErr != nil {
			return execErr
		}
		v, verifyErr := e.verify(runCtx, target, cmd, startedAt)
		verification = v
		if verifyErr != nil {
			return fmt.Errorf("verifying: %w", verifyErr)
		}
		if v != nil && !v.Passed {
			return fmt.Errorf("%w: %s", errVerificationFailed, v.Predicate)
		}
		return nil
	})
	finish()

	out.FinishedAt = time.Now()
	out.Result = result
	out.Verification = verification
	switch {
	case brkErr == nil:
		out.Status = models.ExecutionSucceeded
	case errors.Is(brkErr, ErrBreakerOpen):
		out.Status = models.ExecutionSkipped
		out.Detail = brkErr.Error()
		out.BreakerOpen = true
	default:
		out.Status = models.ExecutionFailed
		out.Detail = brkErr.Error()
	}

	if err := e.flush(ctx, &out); err != nil {
		return out, err
	}

	durationMs := out.FinishedAt.Sub(startedAt).Milliseconds()
	if out.Status == models.ExecutionSucceeded {
		e.logger.Info("command executed",
			"incident_id", req.IncidentID,
			"action_type", cmd.ActionType,
			"rendered", cmd.Rendered,
			"duration_ms", durationMs)
	} else {
		e.logger.Warn("command did not execute cleanly",
			"incident_id", req.IncidentID,
			"action_type", cmd.ActionType,
			"status", out.Status,
			"detail", out.Detail,
			"duration_ms", durationMs)
	}
	return out, nil
}

// RecordSkip persists a command the gate refused or previewed. The fully
// rendered command goes on record so the trail shows what would have run.
func (e *Executor) RecordSkip(ctx context.Context, req Request, reason models.SkipReason, detail string) (string, error) {
	cmd := req.Command
	now := time.Now()
	id, err := e.audit.RecordExecution(ctx, models.CreateExecutionRequest{
		IncidentID:  req.IncidentID,
		ActionIndex: req.ActionIndex,
		ActionType:  cmd.ActionType,
		Params:      cmd.Args,
		Command:     &cmd,
		Status:      models.ExecutionSkipped,
		SkipReason:  &reason,
		Detail:      detail,
		FinishedAt:  &now,
	})
	if err != nil {
		return "", fmt.Errorf("persisting skip record: %w", err)
	}
	return id, nil
}

// RecordPending persists a command parked for approval. The approval flow
// settles the record when the operator decides.
func (e *Executor) RecordPending(ctx context.Context, req Request) (string, error) {
	cmd := req.Command
	id, err := e.audit.RecordExecution(ctx, models.CreateExecutionRequest{
		IncidentID:  req.IncidentID,
		ActionIndex: req.ActionIndex,
		ActionType:  cmd.ActionType,
		Params:      cmd.Args,
		Command:     &cmd,
		Status:      models.ExecutionPending,
	})
	if err != nil {
		return "", fmt.Errorf("persisting pending record: %w", err)
	}
	return id, nil
}

// flush overwrites the record with the outcome's final state. The write uses
// a cancellation-free context: even an aborted incident gets its records.
func (e *Executor) flush(ctx context.Context, out *Outcome) error {
	update := models.UpdateExecutionRequest{
		Status:       out.Status,
		Detail:       out.Detail,
		FinishedAt:   &out.FinishedAt,
		Verification: out.Verification,
	}
	if out.Status == models.ExecutionSkipped && out.BreakerOpen {
		reason := models.SkipCircuitOpen
		update.SkipReason = &reason
	}
	if out.Result != nil {
		update.Stdout = out.Result.Stdout
		update.Stderr = out.Result.Stderr
		code := out.Result.ExitCode
		update.ExitCode = &code
	}
	if err := e.audit.UpdateExecution(context.WithoutCancel(ctx), out.RecordID, update); err != nil {
		return fmt.Errorf("updating execution record %s: %w", out.RecordID, err)
	}
	return nil
}

func (e *Executor) verify(ctx context.Context, target adapter.Adapter, cmd models.CommandSpec, startedAt time.Time) (*models.VerificationResult, error) {
	verifier, ok := target.(adapter.ActionVerifier)
	if !ok {
		return nil, nil
	}
	return verifier.VerifyAction(ctx, cmd, startedAt)
}

// detachedContext returns a context that survives cancellation of parent for
// up to cancelGrace, bounded overall by executionTimeout. Callers must call
// finish when the command settles.
func detachedContext(parent context.Context) (context.Context, func()) {
	runCtx, cancel := context.WithTimeout(context.WithoutCancel(parent), executionTimeout)
	done := make(chan struct{})
	go func() {
		select {
		case <-parent.Done():
			t := time.NewTimer(cancelGrace)
			defer t.Stop()
			select {
			case <-done:
			case <-t.C:
				cancel()
			}
		case <-done:
		}
	}()

	var once sync.Once
	finish := func() {
		once.Do(func() { close(done) })
		cancel()
	}
	return runCtx, finish
}
