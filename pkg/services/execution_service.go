package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vigilops/vigil/ent"
	"github.com/vigilops/vigil/ent/executionrecord"
	"github.com/vigilops/vigil/pkg/exec"
	"github.com/vigilops/vigil/pkg/models"
)

// DetailMasker scrubs secret material from free-form text before it lands in
// the audit trail.
type DetailMasker interface {
	MaskAlertData(data string) string
}

// ExecutionService persists execution records and their paired audit trail
// entries. It is the executor's audit sink: the issuance audit entry and the
// execution record are both durable before a command runs, and the settle
// update writes the audit result.
type ExecutionService struct {
	client *ent.Client
	masker DetailMasker
}

var _ exec.AuditSink = (*ExecutionService)(nil)

// NewExecutionService creates a new ExecutionService. The masker may be nil;
// audit detail is then stored unmasked.
func NewExecutionService(client *ent.Client, masker DetailMasker) *ExecutionService {
	if client == nil {
		panic("NewExecutionService: client must not be nil")
	}
	return &ExecutionService{client: client, masker: masker}
}

// RecordExecution writes the audit issuance entry and then the execution
// record. Both writes precede any adapter call; if either fails the command
// must not run. Records created in a final status (skips) get their audit
// result in the same entry, so only genuinely open commands show an
// unresolved issuance.
func (s *ExecutionService) RecordExecution(ctx context.Context, req models.CreateExecutionRequest) (string, error) {
	if err := validateCreateExecution(req); err != nil {
		return "", err
	}
	recordID := uuid.New().String()

	actor := ActorExecutor
	if req.Status != models.ExecutionExecuting {
		actor = ActorGate
	}
	var result map[string]any
	if req.Status == models.ExecutionSkipped {
		result = map[string]any{"status": string(req.Status)}
		if req.SkipReason != nil {
			result["skip_reason"] = string(*req.SkipReason)
		}
		if req.Detail != "" {
			result["detail"] = req.Detail
		}
	}
	_, err := appendAuditEntry(ctx, s.client.AuditEntry,
		req.IncidentID, actor, s.mask(auditCommand(req)), s.issuanceDetail(recordID, req), result)
	if err != nil {
		return "", err
	}

	create := s.client.ExecutionRecord.Create().
		SetID(recordID).
		SetIncidentID(req.IncidentID).
		SetActionIndex(req.ActionIndex).
		SetActionType(string(req.ActionType)).
		SetStatus(executionrecord.Status(req.Status)).
		SetNillableExitCode(req.ExitCode).
		SetNillableStartedAt(req.StartedAt).
		SetNillableFinishedAt(req.FinishedAt).
		SetNillableRollbackOf(req.RollbackOf)
	if req.Params != nil {
		create = create.SetParams(req.Params)
	}
	if req.Command != nil {
		cmd, err := toMap(req.Command)
		if err != nil {
			return "", err
		}
		create = create.SetCommand(cmd)
	}
	if req.SkipReason != nil {
		create = create.SetSkipReason(string(*req.SkipReason))
	}
	if req.Detail != "" {
		create = create.SetDetail(req.Detail)
	}
	if req.Stdout != "" {
		create = create.SetStdout(req.Stdout)
	}
	if req.Stderr != "" {
		create = create.SetStderr(req.Stderr)
	}
	if req.Verification != nil {
		v, err := toMap(req.Verification)
		if err != nil {
			return "", err
		}
		create = create.SetVerification(v)
	}
	if err := create.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to create execution record: %w", err)
	}
	return recordID, nil
}

// UpdateExecution settles (or promotes) an execution record. A settle also
// closes the record's audit issuance entry with a result document; a missing
// result there is the crash signal, so a failed result write is logged and
// never fails the command that already ran.
func (s *ExecutionService) UpdateExecution(ctx context.Context, id string, req models.UpdateExecutionRequest) error {
	if !req.Status.IsValid() {
		return NewValidationError("status", fmt.Sprintf("invalid status: %s", req.Status))
	}
	rec, err := s.client.ExecutionRecord.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get execution record: %w", err)
	}

	update := s.client.ExecutionRecord.UpdateOneID(id).
		SetStatus(executionrecord.Status(req.Status)).
		SetNillableExitCode(req.ExitCode).
		SetNillableStartedAt(req.StartedAt).
		SetNillableFinishedAt(req.FinishedAt)
	if req.SkipReason != nil {
		update = update.SetSkipReason(string(*req.SkipReason))
	}
	if req.Detail != "" {
		update = update.SetDetail(req.Detail)
	}
	if req.Stdout != "" {
		update = update.SetStdout(req.Stdout)
	}
	if req.Stderr != "" {
		update = update.SetStderr(req.Stderr)
	}
	if req.Verification != nil {
		v, err := toMap(req.Verification)
		if err != nil {
			return err
		}
		update = update.SetVerification(v)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update execution record %s: %w", id, err)
	}

	// Promotion of a parked record back to executing is not a settle; its
	// result arrives with the real outcome.
	if req.Status == models.ExecutionExecuting {
		return nil
	}
	if err := recordAuditResult(ctx, s.client, rec.IncidentID, id, settleResult(req)); err != nil {
		slog.Warn("Failed to record audit result for execution",
			"execution_id", id, "incident_id", rec.IncidentID, "error", err)
	}
	return nil
}

// Get retrieves one execution record.
func (s *ExecutionService) Get(ctx context.Context, id string) (*ent.ExecutionRecord, error) {
	rec, err := s.client.ExecutionRecord.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution record: %w", err)
	}
	return rec, nil
}

// ListByIncident returns the incident's execution records in plan order.
func (s *ExecutionService) ListByIncident(ctx context.Context, incidentID string) ([]*ent.ExecutionRecord, error) {
	records, err := s.client.ExecutionRecord.Query().
		Where(executionrecord.IncidentIDEQ(incidentID)).
		Order(ent.Asc(executionrecord.FieldActionIndex), ent.Asc(executionrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list execution records: %w", err)
	}
	return records, nil
}

// PendingRecord finds the parked record for an action awaiting approval.
func (s *ExecutionService) PendingRecord(ctx context.Context, incidentID string, actionIndex int) (*ent.ExecutionRecord, error) {
	rec, err := s.client.ExecutionRecord.Query().
		Where(
			executionrecord.IncidentIDEQ(incidentID),
			executionrecord.ActionIndexEQ(actionIndex),
			executionrecord.StatusEQ(executionrecord.StatusPending),
		).
		Order(ent.Desc(executionrecord.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pending execution record: %w", err)
	}
	return rec, nil
}

// issuanceDetail builds the audit detail document linking the entry to its
// execution record. Parameter values pass through the masker; everything
// else here is engine-generated.
func (s *ExecutionService) issuanceDetail(recordID string, req models.CreateExecutionRequest) map[string]any {
	detail := map[string]any{
		"execution_id": recordID,
		"action_index": req.ActionIndex,
		"action_type":  string(req.ActionType),
	}
	if len(req.Params) > 0 {
		params := make(map[string]string, len(req.Params))
		for k, v := range req.Params {
			params[k] = s.mask(v)
		}
		detail["params"] = params
	}
	if req.Command != nil {
		detail["risk"] = string(req.Command.ClassifiedRisk)
		detail["target_system"] = req.Command.TargetSystem
		if req.Command.DryRun {
			detail["dry_run"] = true
		}
	}
	if req.RollbackOf != nil {
		detail["rollback_of"] = *req.RollbackOf
	}
	return detail
}

func (s *ExecutionService) mask(v string) string {
	if s.masker == nil || v == "" {
		return v
	}
	return s.masker.MaskAlertData(v)
}

func settleResult(req models.UpdateExecutionRequest) map[string]any {
	result := map[string]any{"status": string(req.Status)}
	if req.SkipReason != nil {
		result["skip_reason"] = string(*req.SkipReason)
	}
	if req.Detail != "" {
		result["detail"] = req.Detail
	}
	if req.ExitCode != nil {
		result["exit_code"] = *req.ExitCode
	}
	if req.Verification != nil {
		result["verification_passed"] = req.Verification.Passed
		result["verification_predicate"] = req.Verification.Predicate
	}
	if req.FinishedAt != nil {
		result["finished_at"] = req.FinishedAt.Format(time.RFC3339Nano)
	}
	return result
}

func auditCommand(req models.CreateExecutionRequest) string {
	if req.Command != nil && req.Command.Rendered != "" {
		return req.Command.Rendered
	}
	return string(req.ActionType)
}

func validateCreateExecution(req models.CreateExecutionRequest) error {
	if req.IncidentID == "" {
		return NewValidationError("incident_id", "must not be empty")
	}
	if req.ActionIndex < 0 {
		return NewValidationError("action_index", "must not be negative")
	}
	if req.ActionType == "" {
		return NewValidationError("action_type", "must not be empty")
	}
	if !req.Status.IsValid() {
		return NewValidationError("status", fmt.Sprintf("invalid status: %s", req.Status))
	}
	return nil
}
