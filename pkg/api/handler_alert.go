package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vigilops/vigil/pkg/events"
	"github.com/vigilops/vigil/pkg/models"
)

// submitAlertHandler handles POST /api/v1/alerts — operator-submitted
// alerts, mostly for drills and testing the pipeline end to end.
func (s *Server) submitAlertHandler(c *gin.Context) {
	var req models.SubmitAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed JSON payload"})
		return
	}

	severity := models.Severity(req.Severity)
	if !severity.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "severity must be one of critical, high, medium, low"})
		return
	}

	raw := req.Raw
	if req.Namespace != "" {
		if raw == nil {
			raw = make(map[string]any)
		}
		raw["namespace"] = req.Namespace
	}

	alert := models.Alert{
		ID:          uuid.New().String(),
		Source:      models.AlertSourceManual,
		Severity:    severity,
		Title:       req.Title,
		Description: req.Description,
		Service:     req.Service,
		Timestamp:   time.Now().UTC(),
		Raw:         raw,
	}
	s.ingestAlert(c, alert)
}

// ingestAlert is the shared tail of every ingress path: queue-full check,
// dedup-aware ingest, created event, 202 response.
func (s *Server) ingestAlert(c *gin.Context, alert models.Alert) {
	ctx := c.Request.Context()

	if max := s.maxPendingIncidents(); max > 0 {
		counts, err := s.incidents.CountByState(ctx)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if counts[string(models.StateReceived)] >= max {
			ingressRejected.WithLabelValues(string(alert.Source), "queue_full").Inc()
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "ingest queue full, retry with backoff"})
			return
		}
	}

	inc, created, err := s.incidents.Ingest(ctx, alert)
	if err != nil {
		ingressRejected.WithLabelValues(string(alert.Source), "invalid").Inc()
		respondServiceError(c, err)
		return
	}

	if created {
		ingressAccepted.WithLabelValues(string(alert.Source)).Inc()
		s.publishIncidentCreated(ctx, inc.ID, alert, inc.Fingerprint)
	} else {
		ingressDeduplicated.WithLabelValues(string(alert.Source)).Inc()
	}

	c.JSON(http.StatusAccepted, gin.H{
		"incident_id":  inc.ID,
		"state":        inc.State,
		"deduplicated": !created,
	})
}

func (s *Server) maxPendingIncidents() int {
	if s.cfg == nil || s.cfg.Ingest == nil {
		return 0
	}
	return s.cfg.Ingest.MaxPendingIncidents
}

func (s *Server) publishIncidentCreated(ctx context.Context, incidentID string, alert models.Alert, fingerprint string) {
	if s.publisher == nil {
		return
	}
	payload := events.IncidentCreatedPayload{
		BasePayload: events.BasePayload{
			Type:       events.EventTypeIncidentCreated,
			IncidentID: incidentID,
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		},
		Service:     alert.Service,
		Severity:    alert.Severity,
		Source:      alert.Source,
		Title:       alert.Title,
		State:       models.StateReceived,
		Fingerprint: fingerprint,
	}
	if err := s.publisher.PublishIncidentCreated(ctx, incidentID, payload); err != nil {
		slog.Warn("Failed to publish incident created event", "incident_id", incidentID, "error", err)
	}
}
