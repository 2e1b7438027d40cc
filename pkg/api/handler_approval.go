package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vigilops/vigil/pkg/events"
	"github.com/vigilops/vigil/pkg/gate"
	"github.com/vigilops/vigil/pkg/models"
	"github.com/vigilops/vigil/pkg/services"
)

// listApprovalsHandler handles GET /api/v1/approvals — pending requests
// oldest first, matching the order operators should work through them.
func (s *Server) listApprovalsHandler(c *gin.Context) {
	resp, err := s.approvals.ListPending(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) approveHandler(c *gin.Context) {
	s.decideApproval(c, true)
}

func (s *Server) rejectHandler(c *gin.Context) {
	s.decideApproval(c, false)
}

// decideApproval records the operator's decision, settles the pending
// execution record on rejection, and moves the incident to resuming so a
// worker re-claims it. A decision against an engaged emergency stop
// conflicts regardless of direction.
func (s *Server) decideApproval(c *gin.Context, approve bool) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req models.DecideApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.DecidedBy == "" {
		req.DecidedBy = extractAuthor(c)
	}

	frozen := gate.ApprovalsFrozen(s.autonomy.Snapshot())
	decided, err := s.approvals.Decide(ctx, id, approve, req, frozen)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	decision := models.ApprovalRejected
	if approve {
		decision = models.ApprovalApproved
	}

	// A rejected action never runs, so its pending record settles here.
	// An approved one stays pending until the resumed pipeline promotes
	// it to executing.
	if !approve {
		if err := s.settleRejectedRecord(c, decided.IncidentID, decided.ActionIndex); err != nil {
			slog.Error("Failed to settle rejected execution record",
				"approval_id", id, "incident_id", decided.IncidentID, "error", err)
		}
	}

	if err := s.incidents.Transition(ctx, decided.IncidentID, models.StateAwaitingApproval, models.StateResuming); err != nil {
		// The decision is durably recorded; a failed hand-back leaves the
		// incident parked for the orphan scan rather than losing the decision.
		slog.Error("Failed to move incident to resuming after approval decision",
			"approval_id", id, "incident_id", decided.IncidentID, "error", err)
		respondServiceError(c, err)
		return
	}

	s.publishApprovalDecided(ctx, decided.IncidentID, events.ApprovalDecidedPayload{
		BasePayload: events.BasePayload{
			Type:       events.EventTypeApprovalDecided,
			IncidentID: decided.IncidentID,
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		},
		ApprovalID:  decided.ID,
		ActionIndex: decided.ActionIndex,
		Decision:    decision,
		DecidedBy:   req.DecidedBy,
		Comment:     req.Comment,
	})

	slog.Info("Approval decided",
		"approval_id", id,
		"incident_id", decided.IncidentID,
		"decision", decision,
		"decided_by", req.DecidedBy)
	c.JSON(http.StatusOK, models.ApprovalResponse{ApprovalRequest: decided})
}

func (s *Server) settleRejectedRecord(c *gin.Context, incidentID string, actionIndex int) error {
	ctx := c.Request.Context()
	rec, err := s.executions.PendingRecord(ctx, incidentID, actionIndex)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil
		}
		return err
	}
	skip := models.SkipApprovalRejected
	now := time.Now().UTC()
	return s.executions.UpdateExecution(ctx, rec.ID, models.UpdateExecutionRequest{
		Status:     models.ExecutionRejected,
		SkipReason: &skip,
		Detail:     "rejected by " + extractAuthor(c),
		FinishedAt: &now,
	})
}

func (s *Server) publishApprovalDecided(ctx context.Context, incidentID string, payload events.ApprovalDecidedPayload) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishApprovalDecided(ctx, incidentID, payload); err != nil {
		slog.Warn("Failed to publish approval.decided event", "incident_id", incidentID, "error", err)
	}
}
