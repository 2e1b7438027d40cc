package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/vigilops/vigil/ent"
	"github.com/vigilops/vigil/ent/approvalrequest"
	"github.com/vigilops/vigil/ent/executionrecord"
	entincident "github.com/vigilops/vigil/ent/incident"
	"github.com/vigilops/vigil/pkg/incident"
	"github.com/vigilops/vigil/pkg/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200

	// maxRawResponseBytes bounds the stored model response so a single
	// verbose completion cannot bloat the incident row.
	maxRawResponseBytes = 65536
)

// finalizeTimeout bounds the detached terminal write. Losing a terminal
// transition to a shutdown cancel would leave the incident claimable forever.
const finalizeTimeout = 10 * time.Second

// PlanMeta carries analysis metadata persisted alongside the parsed plan.
type PlanMeta struct {
	RawResponse  string `json:"raw_response"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// IncidentService handles incident lifecycle operations: ingest with dedup,
// the legal-transition state machine, worker claiming, and the JSON column
// round-trips for context and plan. All state mutation goes through here.
type IncidentService struct {
	client      *ent.Client
	dedupWindow time.Duration
}

// NewIncidentService creates a new IncidentService. A dedupWindow of zero
// selects the default window.
func NewIncidentService(client *ent.Client, dedupWindow time.Duration) *IncidentService {
	if client == nil {
		panic("NewIncidentService: client must not be nil")
	}
	if dedupWindow <= 0 {
		dedupWindow = incident.DefaultDedupWindow
	}
	return &IncidentService{client: client, dedupWindow: dedupWindow}
}

// Ingest records an inbound alert. When a non-terminal incident with the same
// fingerprint saw an alert inside the dedup window, the alert is appended to
// that incident's history and created=false is returned; otherwise a fresh
// incident is created in state received. The duplicate row is locked for the
// history append so concurrent arrivals do not drop entries.
func (s *IncidentService) Ingest(ctx context.Context, alert models.Alert) (*ent.Incident, bool, error) {
	if err := validateAlert(alert); err != nil {
		return nil, false, err
	}
	arrivedAt := alert.Timestamp
	if arrivedAt.IsZero() {
		arrivedAt = time.Now()
	}
	fp := incident.Fingerprint(&alert)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := tx.Incident.Query().
		Where(
			entincident.FingerprintEQ(fp),
			entincident.StateNotIn(terminalStates()...),
		).
		Order(ent.Desc(entincident.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query incidents by fingerprint: %w", err)
	}

	if existing != nil && incident.Duplicate(models.IncidentState(existing.State), lastAlertSeen(existing), arrivedAt, s.dedupWindow) {
		am, err := toMap(alert)
		if err != nil {
			return nil, false, err
		}
		history := append(existing.AlertHistory, map[string]any{
			"alert":       am,
			"received_at": arrivedAt.Format(time.RFC3339Nano),
		})
		updated, err := tx.Incident.UpdateOneID(existing.ID).
			SetAlertHistory(history).
			Save(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("failed to append alert to incident %s: %w", existing.ID, err)
		}
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("failed to commit dedup append: %w", err)
		}
		slog.Info("Alert absorbed by existing incident",
			"incident_id", existing.ID, "fingerprint", fp, "alert_id", alert.ID)
		return updated, false, nil
	}

	am, err := toMap(alert)
	if err != nil {
		return nil, false, err
	}
	created, err := tx.Incident.Create().
		SetID(uuid.New().String()).
		SetFingerprint(fp).
		SetAlertID(alert.ID).
		SetSource(entincident.Source(alert.Source)).
		SetSeverity(entincident.Severity(alert.Severity)).
		SetService(alert.Service).
		SetTitle(alert.Title).
		SetDescription(alert.Description).
		SetAlert(am).
		SetState(entincident.StateReceived).
		Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create incident: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit incident creation: %w", err)
	}
	return created, true, nil
}

// Get retrieves an incident by ID with its execution records and approvals.
func (s *IncidentService) Get(ctx context.Context, id string) (*ent.Incident, error) {
	inc, err := s.client.Incident.Query().
		Where(entincident.IDEQ(id)).
		WithExecutions(func(q *ent.ExecutionRecordQuery) {
			q.Order(ent.Asc(executionrecord.FieldActionIndex), ent.Asc(executionrecord.FieldCreatedAt))
		}).
		WithApprovals(func(q *ent.ApprovalRequestQuery) {
			q.Order(ent.Asc(approvalrequest.FieldRequestedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}
	return inc, nil
}

// List retrieves incidents matching the filters, newest first.
func (s *IncidentService) List(ctx context.Context, filters models.IncidentFilters) (*models.IncidentListResponse, error) {
	if err := validateIncidentFilters(filters); err != nil {
		return nil, err
	}

	query := s.client.Incident.Query()
	if filters.State != "" {
		query = query.Where(entincident.StateEQ(entincident.State(filters.State)))
	}
	if filters.Source != "" {
		query = query.Where(entincident.SourceEQ(entincident.Source(filters.Source)))
	}
	if filters.Service != "" {
		query = query.Where(entincident.ServiceEQ(filters.Service))
	}
	if filters.Severity != "" {
		query = query.Where(entincident.SeverityEQ(entincident.Severity(filters.Severity)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(entincident.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(entincident.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	incidents, err := query.
		Order(ent.Desc(entincident.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}

	return &models.IncidentListResponse{
		Incidents:  incidents,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Transition moves an incident from one non-terminal state to another. The
// move must be a legal state machine edge and the incident must still be in
// the from state; a lost race returns ErrConcurrentModification. Terminal
// moves go through Finalize instead.
func (s *IncidentService) Transition(ctx context.Context, id string, from, to models.IncidentState) error {
	if !models.CanTransition(from, to) {
		return fmt.Errorf("%w: illegal transition %s -> %s", ErrInvalidInput, from, to)
	}
	if to.IsTerminal() {
		return fmt.Errorf("%w: terminal transition %s requires Finalize", ErrInvalidInput, to)
	}
	n, err := s.client.Incident.Update().
		Where(
			entincident.IDEQ(id),
			entincident.StateEQ(entincident.State(from)),
		).
		SetState(entincident.State(to)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to transition incident %s: %w", id, err)
	}
	if n == 0 {
		return s.missOrRace(ctx, id)
	}
	return nil
}

// Finalize moves an incident into a terminal state and stamps the outcome,
// reason and completion time. The worker claim is cleared so sweeps do not
// mistake the finished incident for an orphan. The write uses a detached
// context: a cancelled pipeline still gets its terminal record.
func (s *IncidentService) Finalize(ctx context.Context, id string, from, outcome models.IncidentState, reason models.TerminalReason, errMsg string) error {
	if !outcome.IsTerminal() {
		return fmt.Errorf("%w: %s is not a terminal state", ErrInvalidInput, outcome)
	}
	if !models.CanTransition(from, outcome) {
		return fmt.Errorf("%w: illegal transition %s -> %s", ErrInvalidInput, from, outcome)
	}

	dbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()

	update := s.client.Incident.Update().
		Where(
			entincident.IDEQ(id),
			entincident.StateEQ(entincident.State(from)),
		).
		SetState(entincident.State(outcome)).
		SetTerminalOutcome(entincident.TerminalOutcome(outcome)).
		SetTerminalReason(string(reason)).
		SetCompletedAt(time.Now()).
		ClearWorkerID().
		ClearHeartbeatAt()
	if errMsg != "" {
		update = update.SetErrorMessage(errMsg)
	}
	n, err := update.Save(dbCtx)
	if err != nil {
		return fmt.Errorf("failed to finalize incident %s: %w", id, err)
	}
	if n == 0 {
		return s.missOrRace(dbCtx, id)
	}
	return nil
}

// Claim atomically assigns the oldest claimable incident to a worker using
// FOR UPDATE SKIP LOCKED, so competing workers never block on or double-claim
// the same row. Returns ErrNotFound when the queue is empty.
func (s *IncidentService) Claim(ctx context.Context, workerID string) (*ent.Incident, error) {
	if workerID == "" {
		return nil, NewValidationError("worker_id", "must not be empty")
	}
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	next, err := tx.Incident.Query().
		Where(
			entincident.StateIn(entincident.StateReceived, entincident.StateResuming),
			entincident.WorkerIDIsNil(),
		).
		Order(ent.Asc(entincident.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query claimable incidents: %w", err)
	}

	claimed, err := tx.Incident.UpdateOneID(next.ID).
		SetWorkerID(workerID).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim incident %s: %w", next.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// Heartbeat refreshes the claim timestamp. Fails with
// ErrConcurrentModification when the worker no longer owns the incident.
func (s *IncidentService) Heartbeat(ctx context.Context, id, workerID string) error {
	n, err := s.client.Incident.Update().
		Where(
			entincident.IDEQ(id),
			entincident.WorkerIDEQ(workerID),
		).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat incident %s: %w", id, err)
	}
	if n == 0 {
		return s.missOrRace(ctx, id)
	}
	return nil
}

// Release gives up a worker's claim without changing state. Used when
// parking an incident for approval.
func (s *IncidentService) Release(ctx context.Context, id, workerID string) error {
	n, err := s.client.Incident.Update().
		Where(
			entincident.IDEQ(id),
			entincident.WorkerIDEQ(workerID),
		).
		ClearWorkerID().
		ClearHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release incident %s: %w", id, err)
	}
	if n == 0 {
		return s.missOrRace(ctx, id)
	}
	return nil
}

// ForceRelease clears a claim regardless of the owning worker. Only the
// orphan sweep uses this; normal release paths must prove ownership.
func (s *IncidentService) ForceRelease(ctx context.Context, id string) error {
	_, err := s.client.Incident.Update().
		Where(entincident.IDEQ(id)).
		ClearWorkerID().
		ClearHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to force-release incident %s: %w", id, err)
	}
	return nil
}

// Orphans lists claimed non-terminal incidents whose heartbeat is older than
// staleAfter. The caller decides whether each one is re-queued or failed.
func (s *IncidentService) Orphans(ctx context.Context, staleAfter time.Duration) ([]*ent.Incident, error) {
	cutoff := time.Now().Add(-staleAfter)
	orphans, err := s.client.Incident.Query().
		Where(
			entincident.StateNotIn(terminalStates()...),
			entincident.WorkerIDNotNil(),
			entincident.HeartbeatAtLT(cutoff),
		).
		Order(ent.Asc(entincident.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query orphaned incidents: %w", err)
	}
	return orphans, nil
}

// UpdateContext stores the adapter fan-out results on the incident.
func (s *IncidentService) UpdateContext(ctx context.Context, id string, bundles map[string]models.ContextBundle) error {
	doc, err := toMap(bundles)
	if err != nil {
		return err
	}
	err = s.client.Incident.UpdateOneID(id).SetContext(doc).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update incident context: %w", err)
	}
	return nil
}

// DecodeAlert reads the originating alert back out of an incident.
func DecodeAlert(inc *ent.Incident) (*models.Alert, error) {
	if len(inc.Alert) == 0 {
		return nil, fmt.Errorf("incident %s has no stored alert", inc.ID)
	}
	var alert models.Alert
	if err := fromMap(inc.Alert, &alert); err != nil {
		return nil, fmt.Errorf("failed to decode incident alert: %w", err)
	}
	return &alert, nil
}

// DecodeContext reads the stored adapter bundles back out of an incident.
// Returns nil when no context has been gathered yet.
func DecodeContext(inc *ent.Incident) (map[string]models.ContextBundle, error) {
	if len(inc.Context) == 0 {
		return nil, nil
	}
	var bundles map[string]models.ContextBundle
	if err := fromMap(inc.Context, &bundles); err != nil {
		return nil, fmt.Errorf("failed to decode incident context: %w", err)
	}
	return bundles, nil
}

// UpdatePlan stores the parsed resolution plan and its analysis metadata.
// The raw model response is truncated to a bounded size before persisting.
func (s *IncidentService) UpdatePlan(ctx context.Context, id string, plan *models.ResolutionPlan, meta PlanMeta) error {
	if plan == nil {
		return NewValidationError("plan", "must not be nil")
	}
	parsed, err := toMap(plan)
	if err != nil {
		return err
	}
	raw := meta.RawResponse
	if len(raw) > maxRawResponseBytes {
		raw = raw[:maxRawResponseBytes] + "\n...(truncated)"
	}
	doc := map[string]any{
		"parsed":        parsed,
		"raw_response":  raw,
		"model":         meta.Model,
		"input_tokens":  meta.InputTokens,
		"output_tokens": meta.OutputTokens,
	}
	err = s.client.Incident.UpdateOneID(id).SetPlan(doc).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update incident plan: %w", err)
	}
	return nil
}

// DecodePlan reads the stored resolution plan back out of an incident.
// Returns nil when no plan has been stored yet.
func DecodePlan(inc *ent.Incident) (*models.ResolutionPlan, error) {
	if len(inc.Plan) == 0 {
		return nil, nil
	}
	parsed, ok := inc.Plan["parsed"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("incident %s plan document has no parsed plan", inc.ID)
	}
	var plan models.ResolutionPlan
	if err := fromMap(parsed, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode incident plan: %w", err)
	}
	return &plan, nil
}

// SetNextAction advances the resume cursor to the first action index not yet
// decided or executed.
func (s *IncidentService) SetNextAction(ctx context.Context, id string, index int) error {
	if index < 0 {
		return NewValidationError("next_action", "must not be negative")
	}
	err := s.client.Incident.UpdateOneID(id).SetNextAction(index).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set next action: %w", err)
	}
	return nil
}

// CountByState returns incident counts grouped by state, for health
// reporting and gauges.
func (s *IncidentService) CountByState(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		State string `json:"state"`
		Count int    `json:"count"`
	}
	err := s.client.Incident.Query().
		GroupBy(entincident.FieldState).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents by state: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.State] = row.Count
	}
	return counts, nil
}

// PruneTerminal deletes terminal incidents completed before the cutoff.
// Execution records and approvals go with them via cascade; audit entries
// are retained on their own schedule.
func (s *IncidentService) PruneTerminal(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.Incident.Delete().
		Where(
			entincident.StateIn(terminalStates()...),
			entincident.CompletedAtLT(before),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune terminal incidents: %w", err)
	}
	return n, nil
}

// missOrRace disambiguates a zero-row conditional update: the incident either
// does not exist or was concurrently moved out from under the caller.
func (s *IncidentService) missOrRace(ctx context.Context, id string) error {
	exists, err := s.client.Incident.Query().
		Where(entincident.IDEQ(id)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check incident existence: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrConcurrentModification
}

func terminalStates() []entincident.State {
	return []entincident.State{
		entincident.StateResolved,
		entincident.StateFailed,
		entincident.StateAbandoned,
	}
}

// lastAlertSeen returns the arrival time of the incident's most recent alert.
// Pipeline writes bump updated_at, so the dedup window anchors on the history
// instead.
func lastAlertSeen(inc *ent.Incident) time.Time {
	seen := inc.CreatedAt
	for _, entry := range inc.AlertHistory {
		raw, ok := entry["received_at"].(string)
		if !ok {
			continue
		}
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			continue
		}
		if t.After(seen) {
			seen = t
		}
	}
	return seen
}

func validateAlert(alert models.Alert) error {
	if alert.ID == "" {
		return NewValidationError("id", "must not be empty")
	}
	if !alert.Source.IsValid() {
		return NewValidationError("source", fmt.Sprintf("invalid source: %s", alert.Source))
	}
	if !alert.Severity.IsValid() {
		return NewValidationError("severity", fmt.Sprintf("invalid severity: %s", alert.Severity))
	}
	if alert.Title == "" {
		return NewValidationError("title", "must not be empty")
	}
	if alert.Service == "" {
		return NewValidationError("service", "must not be empty")
	}
	return nil
}

func validateIncidentFilters(filters models.IncidentFilters) error {
	if filters.State != "" && !models.IncidentState(filters.State).IsValid() {
		return NewValidationError("state", fmt.Sprintf("invalid state: %s", filters.State))
	}
	if filters.Source != "" && !models.AlertSource(filters.Source).IsValid() {
		return NewValidationError("source", fmt.Sprintf("invalid source: %s", filters.Source))
	}
	if filters.Severity != "" && !models.Severity(filters.Severity).IsValid() {
		return NewValidationError("severity", fmt.Sprintf("invalid severity: %s", filters.Severity))
	}
	return nil
}
