package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vigilops/vigil/ent"
	entapproval "github.com/vigilops/vigil/ent/approvalrequest"
	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/adapter/kubernetes"
	"github.com/vigilops/vigil/pkg/adapter/pagerduty"
	"github.com/vigilops/vigil/pkg/analysis"
	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/events"
	"github.com/vigilops/vigil/pkg/exec"
	"github.com/vigilops/vigil/pkg/gate"
	"github.com/vigilops/vigil/pkg/incident"
	"github.com/vigilops/vigil/pkg/models"
	"github.com/vigilops/vigil/pkg/plan"
	"github.com/vigilops/vigil/pkg/services"
)

// Pipeline drives one claimed incident through the response flow:
// context fan-out, analysis, gated execution, verification, finalization.
// It is the IncidentExecutor the worker pool runs. A Pipeline holds no
// per-incident state; workers share one instance.
type Pipeline struct {
	incidents  *services.IncidentService
	executions *services.ExecutionService
	approvals  *services.ApprovalService
	aggregator *adapter.Aggregator
	registry   *adapter.Registry
	engine     *analysis.Engine
	planner    *plan.Planner
	executor   *exec.Executor
	autonomy   *config.AutonomyStore
	config     *config.QueueConfig
	eventSink  EventSink
	logger     *slog.Logger
}

// PipelineDeps names the collaborators a Pipeline needs. All fields except
// EventSink and Logger are required.
type PipelineDeps struct {
	Incidents  *services.IncidentService
	Executions *services.ExecutionService
	Approvals  *services.ApprovalService
	Aggregator *adapter.Aggregator
	Registry   *adapter.Registry
	Engine     *analysis.Engine
	Planner    *plan.Planner
	Executor   *exec.Executor
	Autonomy   *config.AutonomyStore
	Config     *config.QueueConfig
	EventSink  EventSink
	Logger     *slog.Logger
}

// NewPipeline builds the incident pipeline.
func NewPipeline(deps PipelineDeps) (*Pipeline, error) {
	switch {
	case deps.Incidents == nil:
		return nil, fmt.Errorf("incident service is required")
	case deps.Executions == nil:
		return nil, fmt.Errorf("execution service is required")
	case deps.Approvals == nil:
		return nil, fmt.Errorf("approval service is required")
	case deps.Aggregator == nil:
		return nil, fmt.Errorf("context aggregator is required")
	case deps.Registry == nil:
		return nil, fmt.Errorf("adapter registry is required")
	case deps.Engine == nil:
		return nil, fmt.Errorf("analysis engine is required")
	case deps.Planner == nil:
		return nil, fmt.Errorf("planner is required")
	case deps.Executor == nil:
		return nil, fmt.Errorf("executor is required")
	case deps.Autonomy == nil:
		return nil, fmt.Errorf("autonomy store is required")
	case deps.Config == nil:
		return nil, fmt.Errorf("queue config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		incidents:  deps.Incidents,
		executions: deps.Executions,
		approvals:  deps.Approvals,
		aggregator: deps.Aggregator,
		registry:   deps.Registry,
		engine:     deps.Engine,
		planner:    deps.Planner,
		executor:   deps.Executor,
		autonomy:   deps.Autonomy,
		config:     deps.Config,
		eventSink:  deps.EventSink,
		logger:     logger.With("component", "pipeline"),
	}, nil
}

// Execute processes one claimed incident to its next resting point: a
// terminal state, or parked awaiting approval. The returned result is never
// nil.
func (p *Pipeline) Execute(ctx context.Context, inc *ent.Incident) *ExecutionResult {
	alert, err := services.DecodeAlert(inc)
	if err != nil {
		return &ExecutionResult{Error: err}
	}

	switch models.IncidentState(inc.State) {
	case models.StateReceived:
		return p.runFresh(ctx, inc, alert)
	case models.StateResuming:
		return p.runResume(ctx, inc, alert)
	default:
		return &ExecutionResult{Error: fmt.Errorf("incident %s claimed in unexpected state %s", inc.ID, inc.State)}
	}
}

// runFresh is the first-claim path: dedup passed at ingest, so the incident
// moves straight through context gathering and analysis.
func (p *Pipeline) runFresh(ctx context.Context, inc *ent.Incident, alert *models.Alert) *ExecutionResult {
	log := p.logger.With("incident_id", inc.ID)

	if err := p.step(ctx, inc.ID, models.StateReceived, models.StateDeduplicated); err != nil {
		return &ExecutionResult{Error: err}
	}
	if err := p.step(ctx, inc.ID, models.StateDeduplicated, models.StateContextGathering); err != nil {
		return &ExecutionResult{Error: err}
	}

	// Context fan-out. Adapter failures degrade to partial context; the
	// aggregator never fails the gather wholesale.
	bundles := p.aggregator.Gather(ctx, p.contextParams(alert))
	if err := p.incidents.UpdateContext(ctx, inc.ID, bundlesToMap(bundles)); err != nil {
		return &ExecutionResult{Error: err}
	}

	if err := p.step(ctx, inc.ID, models.StateContextGathering, models.StateAnalyzing); err != nil {
		return &ExecutionResult{Error: err}
	}

	res, err := p.engine.Analyze(ctx, alert, inc.Fingerprint, bundles)
	if err != nil {
		log.Warn("Analysis failed", "error", err)
		return p.failAnalysis(ctx, inc.ID, err)
	}

	meta := services.PlanMeta{
		RawResponse:  res.Raw,
		Model:        res.Model,
		OutputTokens: res.Tokens,
	}
	if err := p.incidents.UpdatePlan(ctx, inc.ID, res.Plan, meta); err != nil {
		return &ExecutionResult{Error: err}
	}

	if !res.Plan.HasActions() {
		log.Info("Analysis produced no executable actions")
		if err := p.step(ctx, inc.ID, models.StateAnalyzing, models.StateAnalysisEmpty); err != nil {
			return &ExecutionResult{Error: err}
		}
		return p.finalizeEmpty(ctx, inc.ID, alert, res.Plan.RootCause)
	}

	p.publishPlan(ctx, inc.ID, res.Plan)

	if err := p.step(ctx, inc.ID, models.StateAnalyzing, models.StateExecuting); err != nil {
		return &ExecutionResult{Error: err}
	}
	return p.runActions(ctx, inc, alert, res.Plan, bundles, 0)
}

// runResume picks an incident back up after an approval decision. The plan
// and gathered context come from the incident row; execution restarts at
// the parked action.
func (p *Pipeline) runResume(ctx context.Context, inc *ent.Incident, alert *models.Alert) *ExecutionResult {
	resPlan, err := services.DecodePlan(inc)
	if err != nil {
		return &ExecutionResult{Error: err}
	}
	if resPlan == nil || !resPlan.HasActions() {
		return &ExecutionResult{Error: fmt.Errorf("incident %s resumed without a plan", inc.ID)}
	}
	bundleMap, err := services.DecodeContext(inc)
	if err != nil {
		return &ExecutionResult{Error: err}
	}

	if err := p.step(ctx, inc.ID, models.StateResuming, models.StateExecuting); err != nil {
		return &ExecutionResult{Error: err}
	}
	return p.runActions(ctx, inc, alert, resPlan, bundlesFromMap(bundleMap), inc.NextAction)
}

// runActions walks the plan from startIdx: expand each action, gate each
// command, execute or record why not. The loop either reaches the end and
// finalizes, or parks on an approval and returns with the claim released.
func (p *Pipeline) runActions(ctx context.Context, inc *ent.Incident, alert *models.Alert, resPlan *models.ResolutionPlan, bundles []models.ContextBundle, startIdx int) *ExecutionResult {
	log := p.logger.With("incident_id", inc.ID)
	pctx := plan.ContextFrom(bundles, kubernetes.Name, alertNamespace(alert))

	for i := startIdx; i < len(resPlan.Actions); i++ {
		action := resPlan.Actions[i]

		// Fresh posture per action: an emergency stop or mode flip engaged
		// mid-plan binds the next command, not the next incident.
		cfg := p.autonomy.Snapshot()
		expansion := p.planner.Expand(action, pctx, cfg)
		if expansion.Skipped {
			req := exec.Request{
				IncidentID:  inc.ID,
				ActionIndex: i,
				Action:      action,
				Command: models.CommandSpec{
					ActionType: action.ActionType,
					Args:       action.Params,
				},
			}
			recID, err := p.executor.RecordSkip(ctx, req, expansion.SkipReason, expansion.Detail)
			if err != nil {
				return &ExecutionResult{Error: err}
			}
			p.publishCompleted(ctx, inc.ID, recID, i, action.ActionType, models.ExecutionSkipped, expansion.SkipReason, expansion.Detail, nil)
			continue
		}

		for _, cmd := range expansion.Commands {
			cfg = p.autonomy.Snapshot()
			decision := gate.Decide(cmd, action.Confidence, cfg, p.executor.Breaker().Open())
			req := exec.Request{
				IncidentID:  inc.ID,
				ActionIndex: i,
				Action:      action,
				Command:     cmd,
				Autonomy:    cfg,
			}

			switch decision.Outcome {
			case gate.OutcomeSkip, gate.OutcomePreview:
				recID, err := p.executor.RecordSkip(ctx, req, decision.Reason, decision.Detail)
				if err != nil {
					return &ExecutionResult{Error: err}
				}
				p.publishCompleted(ctx, inc.ID, recID, i, cmd.ActionType, models.ExecutionSkipped, decision.Reason, decision.Detail, nil)

			case gate.OutcomeExecute:
				if result := p.dispatch(ctx, inc.ID, req); result != nil {
					return result
				}

			case gate.OutcomeApproval:
				result, settled := p.handleApproval(ctx, inc, req, cmd, action.Confidence, i)
				if !settled {
					return result
				}
				if result != nil {
					return result
				}
			}
		}
	}

	if err := p.step(ctx, inc.ID, models.StateExecuting, models.StateVerifying); err != nil {
		return &ExecutionResult{Error: err}
	}

	log.Info("Plan complete, verifying outcome")
	return p.finalize(ctx, inc.ID, alert, resPlan.RootCause)
}

// dispatch runs one gated-through command. A non-nil return aborts the
// pipeline; nil means the command settled (any way) and the loop continues.
func (p *Pipeline) dispatch(ctx context.Context, incidentID string, req exec.Request) *ExecutionResult {
	// Started events go out when the issuance record lands, not when the
	// command settles; operations that run minutes are visible meanwhile.
	req.OnStart = func(recordID string) {
		p.publishStarted(ctx, incidentID, recordID, req)
	}
	out, err := p.executor.Execute(ctx, req)
	if err != nil {
		return &ExecutionResult{Error: err}
	}
	var skipReason models.SkipReason
	if out.BreakerOpen {
		skipReason = models.SkipCircuitOpen
	}
	p.publishCompleted(ctx, incidentID, out.RecordID, req.ActionIndex, req.Command.ActionType, out.Status, skipReason, out.Detail, out.Verification)
	return nil
}

// handleApproval settles a command the gate routed to a human. If a prior
// decision for this action already exists (the resume path), the command
// executes or skips accordingly and settled is true. Otherwise the command
// parks: pending record, approval row, awaiting_approval transition, claim
// release — and the parked result comes back with settled false.
func (p *Pipeline) handleApproval(ctx context.Context, inc *ent.Incident, req exec.Request, cmd models.CommandSpec, confidence float64, actionIdx int) (*ExecutionResult, bool) {
	log := p.logger.With("incident_id", inc.ID, "action_index", actionIdx)

	prior, err := p.priorDecision(ctx, inc.ID, actionIdx)
	if err != nil {
		return &ExecutionResult{Error: err}, true
	}

	switch {
	case prior != nil && prior.Decision == entapproval.DecisionApproved:
		// Promote the parked pending record so the approval and the
		// execution stay one audit row.
		if rec, recErr := p.executions.PendingRecord(ctx, inc.ID, actionIdx); recErr == nil && rec != nil {
			req.RecordID = rec.ID
		}
		log.Info("Executing approved command", "approval_id", prior.ID)
		return p.dispatch(ctx, inc.ID, req), true

	case prior != nil && prior.Decision == entapproval.DecisionRejected:
		// The approval service settles the pending record at decision
		// time; nothing to execute and nothing to park.
		log.Info("Skipping rejected command", "approval_id", prior.ID)
		return nil, true
	}

	if _, err := p.executor.RecordPending(ctx, req); err != nil {
		return &ExecutionResult{Error: err}, true
	}
	approval, err := p.approvals.Create(ctx, models.CreateApprovalRequest{
		IncidentID:     inc.ID,
		ActionIndex:    actionIdx,
		CommandPreview: cmd.Rendered,
		RiskLevel:      cmd.ClassifiedRisk,
		Confidence:     confidence,
	})
	if err != nil {
		return &ExecutionResult{Error: err}, true
	}
	if err := p.incidents.SetNextAction(ctx, inc.ID, actionIdx); err != nil {
		return &ExecutionResult{Error: err}, true
	}
	if err := p.step(ctx, inc.ID, models.StateExecuting, models.StateAwaitingApproval); err != nil {
		return &ExecutionResult{Error: err}, true
	}

	// Release the claim so the incident parks without holding a worker.
	// The approval decision flips it to resuming and any worker re-claims.
	if inc.WorkerID != nil {
		if err := p.incidents.Release(ctx, inc.ID, *inc.WorkerID); err != nil {
			log.Warn("Failed to release parked incident", "error", err)
		}
	}

	p.publishApprovalRequested(ctx, inc.ID, approval.ID, actionIdx, cmd, confidence)
	log.Info("Command parked for approval",
		"approval_id", approval.ID,
		"risk", cmd.ClassifiedRisk,
		"command", cmd.Rendered)

	return &ExecutionResult{
		Outcome: models.StateAwaitingApproval,
		Approval: &ParkedApproval{
			ApprovalID:     approval.ID,
			ActionIndex:    actionIdx,
			CommandPreview: cmd.Rendered,
			RiskLevel:      cmd.ClassifiedRisk,
			Confidence:     confidence,
		},
	}, false
}

// priorDecision finds a settled approval for the given action, if any.
func (p *Pipeline) priorDecision(ctx context.Context, incidentID string, actionIdx int) (*ent.ApprovalRequest, error) {
	approvals, err := p.approvals.ListByIncident(ctx, incidentID)
	if err != nil {
		return nil, err
	}
	for _, a := range approvals {
		if a.ActionIndex == actionIdx && a.Decision != entapproval.DecisionPending {
			return a, nil
		}
	}
	return nil, nil
}

// failAnalysis routes model and parse failures through analysis_failed to
// the failed terminal state.
func (p *Pipeline) failAnalysis(ctx context.Context, incidentID string, cause error) *ExecutionResult {
	if err := p.step(ctx, incidentID, models.StateAnalyzing, models.StateAnalysisFailed); err != nil {
		return &ExecutionResult{Error: err}
	}
	if err := p.incidents.Finalize(ctx, incidentID, models.StateAnalysisFailed, models.StateFailed, models.ReasonAnalysisFailed, cause.Error()); err != nil {
		return &ExecutionResult{Error: err}
	}
	p.publishTerminal(ctx, incidentID, models.StateAnalysisFailed, models.StateFailed, models.ReasonAnalysisFailed)
	return &ExecutionResult{
		Outcome: models.StateFailed,
		Reason:  models.ReasonAnalysisFailed,
		Error:   cause,
	}
}

// finalizeEmpty settles an incident whose plan had no executable actions.
// Nothing was attempted, so resolved is off the table under the strict
// rule; the subject clearing on its own is abandoned as auto-recovered
// unless resolve_on_clear is set. A subject still unhealthy gets the quiet
// period to settle and is then abandoned — the empty-plan state has no
// failed edge.
func (p *Pipeline) finalizeEmpty(ctx context.Context, incidentID string, alert *models.Alert, rootCause string) *ExecutionResult {
	gone, problems := p.assessSubject(ctx, alert)
	if problems && !gone {
		p.logger.Info("Subject still unhealthy with empty plan, waiting out quiet period",
			"incident_id", incidentID, "quiet_period", p.config.QuietPeriod)
		select {
		case <-ctx.Done():
			return &ExecutionResult{Error: ctx.Err()}
		case <-time.After(p.config.QuietPeriod):
		}
		gone, problems = p.assessSubject(ctx, alert)
	}

	outcome := models.StateAbandoned
	reason := models.ReasonAutoRecovered
	if problems && !gone {
		reason = models.ReasonNoExecutableActions
	} else if cfg := p.autonomy.Snapshot(); cfg.ResolveOnClear && !gone {
		outcome = models.StateResolved
		reason = models.ReasonExternalRecovery
	}

	if err := p.incidents.Finalize(ctx, incidentID, models.StateAnalysisEmpty, outcome, reason, ""); err != nil {
		return &ExecutionResult{Error: err}
	}
	p.publishTerminal(ctx, incidentID, models.StateAnalysisEmpty, outcome, reason)
	result := &ExecutionResult{Outcome: outcome, Reason: reason, RootCause: rootCause}
	p.notifyUpstream(ctx, incidentID, alert, result)
	return result
}

// finalize applies the resolution rule: gather the evidence from the
// execution trail and a fresh look at the subject, settle the terminal
// state, and notify the alert's upstream.
func (p *Pipeline) finalize(ctx context.Context, incidentID string, alert *models.Alert, rootCause string) *ExecutionResult {
	ev, err := p.gatherEvidence(ctx, incidentID, alert)
	if err != nil {
		return &ExecutionResult{Error: err}
	}

	cfg := p.autonomy.Snapshot()
	outcome, reason := incident.Outcome(ev, cfg.ResolveOnClear)

	var errMsg string
	if outcome == models.StateFailed {
		errMsg = string(reason)
	}
	if err := p.incidents.Finalize(ctx, incidentID, models.StateVerifying, outcome, reason, errMsg); err != nil {
		return &ExecutionResult{Error: err}
	}
	p.publishTerminal(ctx, incidentID, models.StateVerifying, outcome, reason)

	result := &ExecutionResult{Outcome: outcome, Reason: reason, RootCause: rootCause}
	p.notifyUpstream(ctx, incidentID, alert, result)
	return result
}

// gatherEvidence reduces the incident's execution trail plus a fresh
// subject assessment into the resolution rule's inputs.
func (p *Pipeline) gatherEvidence(ctx context.Context, incidentID string, alert *models.Alert) (incident.Evidence, error) {
	records, err := p.executions.ListByIncident(ctx, incidentID)
	if err != nil {
		return incident.Evidence{}, err
	}

	var ev incident.Evidence
	for _, rec := range records {
		status := models.ExecutionStatus(rec.Status)
		if incident.Attempted(status) {
			ev.AttemptedExecution = true
		}
		var v *models.VerificationResult
		if passed, ok := rec.Verification["passed"].(bool); ok {
			v = &models.VerificationResult{Passed: passed}
		}
		if incident.Verified(status, v) {
			ev.VerifiedSuccess = true
		}
	}

	ev.SubjectGone, ev.ProblemsObserved = p.assessSubject(ctx, alert)
	return ev, nil
}

// assessSubject takes a fresh look at the alerting subject through the
// cluster adapter. A fetch failure reads as "still unhealthy": finalization
// must not resolve on a blind spot.
func (p *Pipeline) assessSubject(ctx context.Context, alert *models.Alert) (subjectGone, problemsObserved bool) {
	a, err := p.registry.Get(kubernetes.Name)
	if err != nil {
		return false, true
	}
	data, err := a.FetchContext(ctx, p.contextParams(alert))
	if err != nil {
		p.logger.Warn("Subject assessment fetch failed", "error", err)
		return false, true
	}
	return incident.AssessContext(data)
}

// notifyUpstream closes the loop with the alert's origin. Only PagerDuty
// alerts have an upstream to notify; failures are logged, never fatal —
// the incident is already settled.
func (p *Pipeline) notifyUpstream(ctx context.Context, incidentID string, alert *models.Alert, result *ExecutionResult) {
	if alert.Source != models.AlertSourcePagerDuty || alert.ID == "" {
		return
	}
	a, err := p.registry.Get(pagerduty.Name)
	if err != nil {
		return
	}

	var cmd models.CommandSpec
	if result.Outcome == models.StateResolved {
		cmd = models.CommandSpec{
			TargetSystem: pagerduty.Name,
			ActionType:   models.ActionResolveIncident,
			Args:         map[string]string{"incident_id": alert.ID},
		}
	} else {
		cmd = models.CommandSpec{
			TargetSystem: pagerduty.Name,
			ActionType:   models.ActionAddNote,
			Args: map[string]string{
				"incident_id": alert.ID,
				"content":     fmt.Sprintf("Automated response finished: %s (%s)", result.Outcome, result.Reason),
			},
		}
	}
	err = adapter.Retry(ctx, adapter.DefaultRetryConfig(), string(cmd.ActionType), func(ctx context.Context) error {
		_, execErr := a.ExecuteAction(ctx, cmd)
		return execErr
	})
	if err != nil {
		p.logger.Warn("Upstream notification failed",
			"incident_id", incidentID,
			"pagerduty_incident", alert.ID,
			"error", err)
	}
}

// step performs one state machine transition and publishes it.
func (p *Pipeline) step(ctx context.Context, incidentID string, from, to models.IncidentState) error {
	if err := p.incidents.Transition(ctx, incidentID, from, to); err != nil {
		return err
	}
	if p.eventSink != nil {
		payload := events.IncidentStatusPayload{
			BasePayload: events.BasePayload{
				Type:       events.EventTypeIncidentStatus,
				IncidentID: incidentID,
				Timestamp:  time.Now().Format(time.RFC3339Nano),
			},
			From: from,
			To:   to,
		}
		if err := p.eventSink.PublishIncidentStatus(ctx, incidentID, payload); err != nil {
			p.logger.Warn("Failed to publish status event", "incident_id", incidentID, "to", to, "error", err)
		}
	}
	return nil
}

// publishTerminal publishes the terminal transition with its reason.
func (p *Pipeline) publishTerminal(ctx context.Context, incidentID string, from, to models.IncidentState, reason models.TerminalReason) {
	if p.eventSink == nil {
		return
	}
	payload := events.IncidentStatusPayload{
		BasePayload: events.BasePayload{
			Type:       events.EventTypeIncidentStatus,
			IncidentID: incidentID,
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		},
		From:           from,
		To:             to,
		TerminalReason: reason,
	}
	if err := p.eventSink.PublishIncidentStatus(ctx, incidentID, payload); err != nil {
		p.logger.Warn("Failed to publish terminal event", "incident_id", incidentID, "error", err)
	}
}

func (p *Pipeline) publishPlan(ctx context.Context, incidentID string, resPlan *models.ResolutionPlan) {
	if p.eventSink == nil {
		return
	}
	actions := make([]events.PlannedActionSummary, len(resPlan.Actions))
	for i, a := range resPlan.Actions {
		actions[i] = events.PlannedActionSummary{
			Index:       i,
			ActionType:  a.ActionType,
			Description: a.Description,
			RiskLevel:   a.RiskLevel,
			Confidence:  a.Confidence,
		}
	}
	payload := events.PlanCreatedPayload{
		BasePayload: events.BasePayload{
			Type:       events.EventTypePlanCreated,
			IncidentID: incidentID,
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		},
		RootCause:   resPlan.RootCause,
		ActionCount: len(resPlan.Actions),
		Actions:     actions,
	}
	if err := p.eventSink.PublishPlanCreated(ctx, incidentID, payload); err != nil {
		p.logger.Warn("Failed to publish plan event", "incident_id", incidentID, "error", err)
	}
}

func (p *Pipeline) publishStarted(ctx context.Context, incidentID, executionID string, req exec.Request) {
	if p.eventSink == nil {
		return
	}
	payload := events.ExecutionStartedPayload{
		BasePayload: events.BasePayload{
			Type:       events.EventTypeExecutionStarted,
			IncidentID: incidentID,
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		},
		ExecutionID: executionID,
		ActionIndex: req.ActionIndex,
		ActionType:  req.Command.ActionType,
		Command:     req.Command.Rendered,
		RiskLevel:   req.Command.ClassifiedRisk,
	}
	if err := p.eventSink.PublishExecutionStarted(ctx, incidentID, payload); err != nil {
		p.logger.Warn("Failed to publish execution started event", "incident_id", incidentID, "error", err)
	}
}

func (p *Pipeline) publishCompleted(ctx context.Context, incidentID, executionID string, actionIdx int, actionType models.ActionType, status models.ExecutionStatus, skipReason models.SkipReason, detail string, verification *models.VerificationResult) {
	if p.eventSink == nil {
		return
	}
	payload := events.ExecutionCompletedPayload{
		BasePayload: events.BasePayload{
			Type:       events.EventTypeExecutionCompleted,
			IncidentID: incidentID,
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		},
		ExecutionID: executionID,
		ActionIndex: actionIdx,
		ActionType:  actionType,
		Status:      status,
		SkipReason:  skipReason,
		Detail:      detail,
	}
	if verification != nil {
		passed := verification.Passed
		payload.VerificationPassed = &passed
	}
	if err := p.eventSink.PublishExecutionCompleted(ctx, incidentID, payload); err != nil {
		p.logger.Warn("Failed to publish execution completed event", "incident_id", incidentID, "error", err)
	}
}

func (p *Pipeline) publishApprovalRequested(ctx context.Context, incidentID, approvalID string, actionIdx int, cmd models.CommandSpec, confidence float64) {
	if p.eventSink == nil {
		return
	}
	payload := events.ApprovalRequestedPayload{
		BasePayload: events.BasePayload{
			Type:       events.EventTypeApprovalRequested,
			IncidentID: incidentID,
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		},
		ApprovalID:     approvalID,
		ActionIndex:    actionIdx,
		CommandPreview: cmd.Rendered,
		RiskLevel:      cmd.ClassifiedRisk,
		Confidence:     confidence,
	}
	if err := p.eventSink.PublishApprovalRequested(ctx, incidentID, payload); err != nil {
		p.logger.Warn("Failed to publish approval event", "incident_id", incidentID, "error", err)
	}
}

// contextParams narrows the fan-out to the alert's subject.
func (p *Pipeline) contextParams(alert *models.Alert) adapter.ContextParams {
	return adapter.ContextParams{
		Service:   alert.Service,
		Namespace: alertNamespace(alert),
		Alert:     alert,
	}
}

// alertNamespace pulls the cluster namespace off the alert's raw payload.
// Empty means the cluster adapter's default.
func alertNamespace(alert *models.Alert) string {
	if alert == nil || alert.Raw == nil {
		return ""
	}
	if ns, ok := alert.Raw["namespace"].(string); ok {
		return ns
	}
	return ""
}

func bundlesToMap(bundles []models.ContextBundle) map[string]models.ContextBundle {
	m := make(map[string]models.ContextBundle, len(bundles))
	for _, b := range bundles {
		m[b.AdapterName] = b
	}
	return m
}

func bundlesFromMap(m map[string]models.ContextBundle) []models.ContextBundle {
	bundles := make([]models.ContextBundle, 0, len(m))
	for _, b := range m {
		bundles = append(bundles, b)
	}
	return bundles
}
