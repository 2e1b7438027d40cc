package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vigilops/vigil/ent"
	"github.com/vigilops/vigil/ent/approvalrequest"
	"github.com/vigilops/vigil/pkg/models"
)

// ApprovalService handles the human-in-the-loop queue: creating approval
// requests when the gate routes a command to review, and recording operator
// decisions. A partial unique index keeps at most one pending request per
// plan action.
type ApprovalService struct {
	client *ent.Client
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(client *ent.Client) *ApprovalService {
	if client == nil {
		panic("NewApprovalService: client must not be nil")
	}
	return &ApprovalService{client: client}
}

// Create emits a pending approval request for one plan action. A second
// pending request for the same action returns ErrAlreadyExists.
func (s *ApprovalService) Create(ctx context.Context, req models.CreateApprovalRequest) (*ent.ApprovalRequest, error) {
	if err := validateCreateApproval(req); err != nil {
		return nil, err
	}
	approval, err := s.client.ApprovalRequest.Create().
		SetID(uuid.New().String()).
		SetIncidentID(req.IncidentID).
		SetActionIndex(req.ActionIndex).
		SetCommandPreview(req.CommandPreview).
		SetRiskLevel(approvalrequest.RiskLevel(req.RiskLevel)).
		SetConfidence(req.Confidence).
		SetDecision(approvalrequest.DecisionPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create approval request: %w", err)
	}
	return approval, nil
}

// Get retrieves an approval request by ID.
func (s *ApprovalService) Get(ctx context.Context, id string) (*ent.ApprovalRequest, error) {
	approval, err := s.client.ApprovalRequest.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get approval request: %w", err)
	}
	return approval, nil
}

// ListPending returns all undecided approval requests, oldest first.
func (s *ApprovalService) ListPending(ctx context.Context) (*models.ApprovalListResponse, error) {
	approvals, err := s.client.ApprovalRequest.Query().
		Where(approvalrequest.DecisionEQ(approvalrequest.DecisionPending)).
		Order(ent.Asc(approvalrequest.FieldRequestedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	return &models.ApprovalListResponse{
		Approvals:  approvals,
		TotalCount: len(approvals),
	}, nil
}

// ListByIncident returns the incident's approval requests in request order.
func (s *ApprovalService) ListByIncident(ctx context.Context, incidentID string) ([]*ent.ApprovalRequest, error) {
	approvals, err := s.client.ApprovalRequest.Query().
		Where(approvalrequest.IncidentIDEQ(incidentID)).
		Order(ent.Asc(approvalrequest.FieldRequestedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}
	return approvals, nil
}

// Decide records an operator decision on a pending approval request. Frozen
// means the emergency stop is engaged: no decision may land until it clears.
// Deciding an already-decided request returns ErrAlreadyDecided; losing the
// race to another operator reports the same.
func (s *ApprovalService) Decide(ctx context.Context, id string, approve bool, req models.DecideApprovalRequest, frozen bool) (*ent.ApprovalRequest, error) {
	if frozen {
		return nil, ErrEmergencyStopActive
	}
	if req.DecidedBy == "" {
		return nil, NewValidationError("decided_by", "must not be empty")
	}

	decision := approvalrequest.DecisionRejected
	if approve {
		decision = approvalrequest.DecisionApproved
	}
	update := s.client.ApprovalRequest.Update().
		Where(
			approvalrequest.IDEQ(id),
			approvalrequest.DecisionEQ(approvalrequest.DecisionPending),
		).
		SetDecision(decision).
		SetDecidedBy(req.DecidedBy).
		SetDecidedAt(time.Now())
	if req.Comment != "" {
		update = update.SetComment(req.Comment)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to decide approval %s: %w", id, err)
	}
	if n == 0 {
		exists, err := s.client.ApprovalRequest.Query().
			Where(approvalrequest.IDEQ(id)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check approval existence: %w", err)
		}
		if !exists {
			return nil, ErrNotFound
		}
		return nil, ErrAlreadyDecided
	}

	decided, err := s.client.ApprovalRequest.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload approval %s: %w", id, err)
	}

	// The decision belongs on the audit trail under the operator's name.
	// Trail failures do not undo a decision that already landed.
	detail := map[string]any{
		"approval_id":  decided.ID,
		"action_index": decided.ActionIndex,
		"decision":     string(decided.Decision),
	}
	if req.Comment != "" {
		detail["comment"] = req.Comment
	}
	command := fmt.Sprintf("%s: %s", decided.Decision, decided.CommandPreview)
	result := map[string]any{"decision": string(decided.Decision)}
	if _, err := appendAuditEntry(ctx, s.client.AuditEntry,
		decided.IncidentID, req.DecidedBy, command, detail, result); err != nil {
		slog.Warn("Failed to audit approval decision",
			"approval_id", id, "incident_id", decided.IncidentID, "error", err)
	}

	return decided, nil
}

// PendingCount returns the number of undecided approval requests.
func (s *ApprovalService) PendingCount(ctx context.Context) (int, error) {
	n, err := s.client.ApprovalRequest.Query().
		Where(approvalrequest.DecisionEQ(approvalrequest.DecisionPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending approvals: %w", err)
	}
	return n, nil
}

func validateCreateApproval(req models.CreateApprovalRequest) error {
	if req.IncidentID == "" {
		return NewValidationError("incident_id", "must not be empty")
	}
	if req.ActionIndex < 0 {
		return NewValidationError("action_index", "must not be negative")
	}
	if req.CommandPreview == "" {
		return NewValidationError("command_preview", "must not be empty")
	}
	if !req.RiskLevel.IsValid() {
		return NewValidationError("risk_level", fmt.Sprintf("invalid risk level: %s", req.RiskLevel))
	}
	if req.Confidence < 0 || req.Confidence > 1 {
		return NewValidationError("confidence", "must be between 0 and 1")
	}
	return nil
}
