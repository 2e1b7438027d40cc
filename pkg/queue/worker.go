package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vigilops/vigil/ent"
	entincident "github.com/vigilops/vigil/ent/incident"
	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/events"
	"github.com/vigilops/vigil/pkg/models"
	"github.com/vigilops/vigil/pkg/services"
	"github.com/vigilops/vigil/pkg/slack"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes incidents.
type Worker struct {
	id           string
	podID        string
	client       *ent.Client
	config       *config.QueueConfig
	incidents    *services.IncidentService
	executor     IncidentExecutor
	eventSink    EventSink
	slackService *slack.Service
	pool         IncidentRegistry
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup

	// Health tracking
	mu                 sync.RWMutex
	status             WorkerStatus
	currentIncidentID  string
	incidentsProcessed int
	lastActivity       time.Time
}

// IncidentRegistry is the subset of WorkerPool used by Worker for incident registration.
type IncidentRegistry interface {
	RegisterIncident(incidentID string, cancel context.CancelFunc)
	UnregisterIncident(incidentID string)
}

// NewWorker creates a new queue worker.
// eventSink may be nil (streaming disabled).
// slackService may be nil (Slack notifications disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, incidents *services.IncidentService, executor IncidentExecutor, pool IncidentRegistry, eventSink EventSink, slackService *slack.Service) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		incidents:    incidents,
		executor:     executor,
		eventSink:    eventSink,
		slackService: slackService,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                 w.id,
		Status:             string(w.status),
		CurrentIncidentID:  w.currentIncidentID,
		IncidentsProcessed: w.incidentsProcessed,
		LastActivity:       w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoIncidentsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing incident", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an incident, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Incident.Query().
		Where(
			entincident.StateNotIn(terminalIncidentStates()...),
			entincident.WorkerIDNotNil(),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active incidents: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentIncidents {
		return ErrAtCapacity
	}

	// 2. Claim the next incident (FOR UPDATE SKIP LOCKED inside the service)
	inc, err := w.incidents.Claim(ctx, w.id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return ErrNoIncidentsAvailable
		}
		return err
	}

	log := slog.With("incident_id", inc.ID, "worker_id", w.id)
	log.Info("Incident claimed", "state", inc.State, "service", inc.Service)

	// Send the Slack thread anchor for fresh incidents; resumed incidents
	// already have one and the service rediscovers it from channel history.
	slackThreadTS := w.notifySlackOpened(ctx, inc)

	w.setStatus(WorkerStatusWorking, inc.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create incident context with the processing deadline
	incidentCtx, cancelIncident := context.WithTimeout(ctx, w.config.IncidentTimeout)
	defer cancelIncident()

	// 4. Register cancel function for operator-triggered aborts
	w.pool.RegisterIncident(inc.ID, cancelIncident)
	defer w.pool.UnregisterIncident(inc.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(incidentCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, inc.ID)

	// 6. Run the pipeline
	result := w.executor.Execute(incidentCtx, inc)

	// 6a. Nil-guard: synthesize a safe result if the executor returned nil
	if result == nil {
		result = &ExecutionResult{Error: fmt.Errorf("executor returned nil result")}
	}

	// 7. Stop heartbeat
	cancelHeartbeat()

	// 8. Backstop: a pipeline abort without a decided outcome must not leave
	// the incident claimed forever. Use a background context — the incident
	// context may be cancelled.
	if result.Outcome == "" {
		w.failAbandonedClaim(context.Background(), inc, result, incidentCtx.Err())
	}

	// 9. Notifications
	switch {
	case result.Outcome == models.StateAwaitingApproval:
		w.notifySlackApproval(context.Background(), inc, result, slackThreadTS)
	case result.Outcome.IsTerminal():
		w.notifySlackTerminal(context.Background(), inc, result, slackThreadTS)
	}

	w.mu.Lock()
	w.incidentsProcessed++
	w.mu.Unlock()

	log.Info("Incident processing complete", "outcome", result.Outcome, "reason", result.Reason)
	return nil
}

// failAbandonedClaim finalizes an incident whose pipeline aborted without
// reaching a decision, releasing the claim so it cannot wedge the queue.
// ctxErr is the incident context's error, used to tell an operator
// cancellation apart from a deadline or a plain pipeline failure.
func (w *Worker) failAbandonedClaim(ctx context.Context, inc *ent.Incident, result *ExecutionResult, ctxErr error) {
	current, err := w.incidents.Get(ctx, inc.ID)
	if err != nil {
		slog.Error("Failed to load aborted incident", "incident_id", inc.ID, "error", err)
		return
	}
	state := models.IncidentState(current.State)
	if state.IsTerminal() || state == models.StateAwaitingApproval {
		return
	}

	errMsg := "pipeline aborted"
	if result.Error != nil {
		errMsg = result.Error.Error()
	}
	outcome := models.StateFailed
	reason := models.ReasonExecutionFailed
	switch {
	case errors.Is(ctxErr, context.DeadlineExceeded) || errors.Is(result.Error, context.DeadlineExceeded):
		reason = models.ReasonTimeout
	case errors.Is(ctxErr, context.Canceled) || errors.Is(result.Error, context.Canceled):
		// Cancellation only ever comes from an operator: an abort of this
		// incident or the emergency-stop sweep.
		outcome = models.StateAbandoned
		reason = models.ReasonOperatorAbort
	}
	if err := w.incidents.Finalize(ctx, inc.ID, state, outcome, reason, errMsg); err != nil {
		slog.Error("Failed to finalize aborted incident", "incident_id", inc.ID, "error", err)
		return
	}
	result.Outcome = outcome
	result.Reason = reason
	w.publishStatus(ctx, inc.ID, state, outcome, reason)
}

// runHeartbeat periodically refreshes the claim for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, incidentID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.incidents.Heartbeat(ctx, incidentID, w.id); err != nil {
				slog.Warn("Heartbeat update failed", "incident_id", incidentID, "error", err)
			}
		}
	}
}

// publishStatus publishes an incident state transition for real-time
// WebSocket delivery. Non-blocking: errors are logged.
func (w *Worker) publishStatus(ctx context.Context, incidentID string, from, to models.IncidentState, reason models.TerminalReason) {
	if w.eventSink == nil {
		return
	}
	payload := events.IncidentStatusPayload{
		BasePayload: events.BasePayload{
			Type:       events.EventTypeIncidentStatus,
			IncidentID: incidentID,
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		},
		From: from,
		To:   to,
	}
	if to.IsTerminal() {
		payload.TerminalReason = reason
	}
	if err := w.eventSink.PublishIncidentStatus(ctx, incidentID, payload); err != nil {
		slog.Warn("Failed to publish incident status",
			"incident_id", incidentID, "to", to, "error", err)
	}
}

// notifySlackOpened anchors the incident's Slack thread. Only fresh
// incidents (first claim, no plan yet) get an anchor.
func (w *Worker) notifySlackOpened(ctx context.Context, inc *ent.Incident) string {
	if w.slackService == nil || inc.State != entincident.StateReceived {
		return ""
	}
	return w.slackService.NotifyIncidentOpened(ctx, slack.IncidentOpenedInput{
		IncidentID: inc.ID,
		Service:    inc.Service,
		Title:      inc.Title,
		Severity:   models.Severity(inc.Severity),
		Source:     models.AlertSource(inc.Source),
	})
}

// notifySlackApproval announces the parked command in the incident thread.
func (w *Worker) notifySlackApproval(ctx context.Context, inc *ent.Incident, result *ExecutionResult, threadTS string) {
	if w.slackService == nil || result.Approval == nil {
		return
	}
	w.slackService.NotifyApprovalRequested(ctx, slack.ApprovalRequestedInput{
		IncidentID:     inc.ID,
		ApprovalID:     result.Approval.ApprovalID,
		CommandPreview: result.Approval.CommandPreview,
		RiskLevel:      result.Approval.RiskLevel,
		Confidence:     result.Approval.Confidence,
		ThreadTS:       threadTS,
	})
}

// notifySlackTerminal sends the terminal status notification.
func (w *Worker) notifySlackTerminal(ctx context.Context, inc *ent.Incident, result *ExecutionResult, threadTS string) {
	if w.slackService == nil {
		return
	}
	var errMsg string
	if result.Error != nil {
		errMsg = result.Error.Error()
	}
	w.slackService.NotifyIncidentFinalized(ctx, slack.IncidentFinalizedInput{
		IncidentID:   inc.ID,
		Service:      inc.Service,
		Outcome:      result.Outcome,
		Reason:       result.Reason,
		RootCause:    result.RootCause,
		ErrorMessage: errMsg,
		ThreadTS:     threadTS,
	})
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, incidentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentIncidentID = incidentID
	w.lastActivity = time.Now()
}

func terminalIncidentStates() []entincident.State {
	return []entincident.State{
		entincident.StateResolved,
		entincident.StateFailed,
		entincident.StateAbandoned,
	}
}
