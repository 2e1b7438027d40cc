package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"
	"github.com/vigilops/vigil/ent"
	"github.com/vigilops/vigil/ent/auditentry"
)

// Actor values for audit entries written by the engine itself. Operator
// actions record the operator's identity instead.
const (
	ActorExecutor = "executor"
	ActorGate     = "gate"
	ActorSystem   = "system"
)

// seqAttempts bounds retries when two writers race for the same audit
// sequence number. The unique (incident_id, seq) index turns the race into a
// constraint error; one retry re-reads the sequence.
const seqAttempts = 2

// AuditService maintains the append-only audit trail. Entries are ordered by
// a per-incident sequence number; entries describing a command are written in
// two steps (issuance, then result) so a crash in between stays visible as an
// issuance with no result.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	if client == nil {
		panic("NewAuditService: client must not be nil")
	}
	return &AuditService{client: client}
}

// Append writes one audit entry with the next sequence number for the
// incident. A nil result leaves the entry open for RecordResult.
func (s *AuditService) Append(ctx context.Context, incidentID, actor, command string, detail, result map[string]any) (*ent.AuditEntry, error) {
	if incidentID == "" {
		return nil, NewValidationError("incident_id", "must not be empty")
	}
	if actor == "" {
		return nil, NewValidationError("actor", "must not be empty")
	}
	if command == "" {
		return nil, NewValidationError("command", "must not be empty")
	}
	return appendAuditEntry(ctx, s.client.AuditEntry, incidentID, actor, command, detail, result)
}

// RecordResult closes the issuance entry for an execution record by writing
// its result document.
func (s *AuditService) RecordResult(ctx context.Context, incidentID, executionID string, result map[string]any) error {
	return recordAuditResult(ctx, s.client, incidentID, executionID, result)
}

// ListByIncident returns the incident's audit trail in sequence order.
func (s *AuditService) ListByIncident(ctx context.Context, incidentID string) ([]*ent.AuditEntry, error) {
	entries, err := s.client.AuditEntry.Query().
		Where(auditentry.IncidentIDEQ(incidentID)).
		Order(ent.Asc(auditentry.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}

// PruneBefore deletes audit entries created before the cutoff. Audit
// retention runs on its own schedule, independent of incident retention.
func (s *AuditService) PruneBefore(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.AuditEntry.Delete().
		Where(auditentry.CreatedAtLT(before)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune audit entries: %w", err)
	}
	return n, nil
}

// appendAuditEntry allocates the next per-incident sequence number and writes
// the entry. Shared with the execution service, which appends issuance
// entries alongside execution records.
func appendAuditEntry(ctx context.Context, c *ent.AuditEntryClient, incidentID, actor, command string, detail, result map[string]any) (*ent.AuditEntry, error) {
	var lastErr error
	for attempt := 0; attempt < seqAttempts; attempt++ {
		next, err := nextAuditSeq(ctx, c, incidentID)
		if err != nil {
			return nil, err
		}
		create := c.Create().
			SetID(uuid.New().String()).
			SetIncidentID(incidentID).
			SetSeq(next).
			SetActor(actor).
			SetCommand(command)
		if detail != nil {
			create = create.SetDetail(detail)
		}
		if result != nil {
			create = create.SetResult(result)
		}
		entry, err := create.Save(ctx)
		if err == nil {
			return entry, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to append audit entry: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to allocate audit sequence for incident %s: %w", incidentID, lastErr)
}

func nextAuditSeq(ctx context.Context, c *ent.AuditEntryClient, incidentID string) (int, error) {
	last, err := c.Query().
		Where(auditentry.IncidentIDEQ(incidentID)).
		Order(ent.Desc(auditentry.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to read audit sequence: %w", err)
	}
	return last.Seq + 1, nil
}

// recordAuditResult finds the issuance entry carrying the execution id in its
// detail document and writes the result. ErrNotFound means no issuance entry
// exists for that execution.
func recordAuditResult(ctx context.Context, client *ent.Client, incidentID, executionID string, result map[string]any) error {
	if executionID == "" {
		return NewValidationError("execution_id", "must not be empty")
	}
	entry, err := client.AuditEntry.Query().
		Where(
			auditentry.IncidentIDEQ(incidentID),
			func(sel *sql.Selector) {
				sel.Where(sqljson.ValueEQ(auditentry.FieldDetail, executionID, sqljson.Path("execution_id")))
			},
		).
		Order(ent.Desc(auditentry.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to find issuance entry for execution %s: %w", executionID, err)
	}
	err = client.AuditEntry.UpdateOneID(entry.ID).
		SetResult(result).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record audit result: %w", err)
	}
	return nil
}
