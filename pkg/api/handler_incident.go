package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vigilops/vigil/pkg/events"
	"github.com/vigilops/vigil/pkg/models"
)

// listIncidentsHandler handles GET /api/v1/incidents with filter and
// pagination query parameters.
func (s *Server) listIncidentsHandler(c *gin.Context) {
	filters := models.IncidentFilters{
		State:    c.Query("state"),
		Source:   c.Query("source"),
		Service:  c.Query("service"),
		Severity: c.Query("severity"),
	}
	var ok bool
	if filters.Limit, ok = intQuery(c, "limit", 50); !ok {
		return
	}
	if filters.Offset, ok = intQuery(c, "offset", 0); !ok {
		return
	}
	if t, ok := timeQuery(c, "created_after"); !ok {
		return
	} else if t != nil {
		filters.CreatedAfter = t
	}
	if t, ok := timeQuery(c, "created_before"); !ok {
		return
	} else if t != nil {
		filters.CreatedBefore = t
	}

	resp, err := s.incidents.List(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getIncidentHandler handles GET /api/v1/incidents/:id. The response
// carries the execution records and approvals as loaded edges.
func (s *Server) getIncidentHandler(c *gin.Context) {
	inc, err := s.incidents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.IncidentResponse{Incident: inc})
}

// listExecutionsHandler handles GET /api/v1/incidents/:id/executions.
func (s *Server) listExecutionsHandler(c *gin.Context) {
	records, err := s.executions.ListByIncident(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"executions": records, "total_count": len(records)})
}

// listAuditHandler handles GET /api/v1/incidents/:id/audit — the
// append-only audit trail, in sequence order.
func (s *Server) listAuditHandler(c *gin.Context) {
	entries, err := s.audits.ListByIncident(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total_count": len(entries)})
}

// listEventsHandler handles GET /api/v1/incidents/:id/events?since=N —
// the REST side of the live stream, used for catch-up and for refetching
// truncated NOTIFY payloads.
func (s *Server) listEventsHandler(c *gin.Context) {
	since, ok := int64Query(c, "since", 0)
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", 200)
	if !ok {
		return
	}

	incidentID := c.Param("id")
	stored, err := s.events.EventsSince(c.Request.Context(), events.IncidentChannel(incidentID), since, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.EventsResponse{Events: stored})
}

// abortIncidentHandler handles POST /api/v1/incidents/:id/abort. An
// incident a worker on this pod holds gets its context cancelled; a queued
// or parked incident is abandoned directly. Terminal incidents conflict.
func (s *Server) abortIncidentHandler(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	author := extractAuthor(c)

	inc, err := s.incidents.Get(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	state := models.IncidentState(inc.State)
	if state.IsTerminal() {
		c.JSON(http.StatusConflict, gin.H{"error": "incident is already in a terminal state"})
		return
	}

	if _, err := s.audits.Append(ctx, id, author, "abort incident",
		map[string]any{"state": inc.State}, nil); err != nil {
		slog.Warn("Failed to audit abort request", "incident_id", id, "error", err)
	}

	// Actively held on this pod: cancel the pipeline context and let the
	// worker settle the incident. In multi-pod deployments the holding pod
	// sees the cancel; others fall through to the direct path only when
	// the incident is not claimed at all.
	if s.workerPool != nil && s.workerPool.CancelIncident(id) {
		slog.Info("Incident abort signalled", "incident_id", id, "requested_by", author)
		c.JSON(http.StatusAccepted, gin.H{"status": "aborting"})
		return
	}

	if inc.WorkerID != nil {
		// Claimed by another pod; the operator retries there or waits for
		// the orphan scan.
		c.JSON(http.StatusConflict, gin.H{"error": "incident is being processed by another pod"})
		return
	}

	errMsg := "aborted by " + author
	if err := s.incidents.Finalize(ctx, id, state, models.StateAbandoned, models.ReasonOperatorAbort, errMsg); err != nil {
		respondServiceError(c, err)
		return
	}
	s.publishIncidentStatus(ctx, id, state, models.StateAbandoned, models.ReasonOperatorAbort)

	slog.Info("Incident aborted", "incident_id", id, "requested_by", author)
	c.JSON(http.StatusOK, gin.H{"status": "aborted"})
}

func (s *Server) publishIncidentStatus(ctx context.Context, id string, from, to models.IncidentState, reason models.TerminalReason) {
	if s.publisher == nil {
		return
	}
	payload := events.IncidentStatusPayload{
		BasePayload: events.BasePayload{
			Type:       events.EventTypeIncidentStatus,
			IncidentID: id,
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		},
		From: from,
		To:   to,
	}
	if to.IsTerminal() {
		payload.TerminalReason = reason
	}
	if err := s.publisher.PublishIncidentStatus(ctx, id, payload); err != nil {
		slog.Warn("Failed to publish incident status event", "incident_id", id, "error", err)
	}
}

// intQuery parses an integer query parameter, writing a 400 on garbage.
func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a non-negative integer"})
		return 0, false
	}
	return v, true
}

func int64Query(c *gin.Context, name string, def int64) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a non-negative integer"})
		return 0, false
	}
	return v, true
}

// timeQuery parses an RFC3339 query parameter. Returns (nil, true) when
// absent.
func timeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an RFC3339 timestamp"})
		return nil, false
	}
	return &t, true
}
