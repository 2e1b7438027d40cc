package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vigilops/vigil/pkg/models"
)

// getAutonomyHandler handles GET /api/v1/autonomy.
func (s *Server) getAutonomyHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.autonomy.Snapshot())
}

// updateAutonomyHandler handles PUT /api/v1/autonomy. The posture is
// replaced wholesale; partial updates would make the snapshot semantics
// ambiguous for in-flight gate decisions.
func (s *Server) updateAutonomyHandler(c *gin.Context) {
	var next models.AutonomyConfig
	if err := c.ShouldBindJSON(&next); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if !next.Mode.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be one of yolo, approval, plan"})
		return
	}
	if next.ConfidenceThreshold < 0 || next.ConfidenceThreshold > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confidence_threshold must be between 0 and 1"})
		return
	}
	for _, risk := range next.ApprovalRequiredFor {
		if !risk.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "approval_required_for contains an unknown risk level: " + string(risk)})
			return
		}
	}

	// Emergency stop has its own endpoints; a posture update never flips it.
	next.EmergencyStop = s.autonomy.Snapshot().EmergencyStop

	prev := s.autonomy.Update(&next)
	s.auditSystemChange(c, "update autonomy posture",
		map[string]any{"mode": next.Mode, "previous_mode": prev.Mode, "dry_run": next.DryRunMode})
	slog.Info("Autonomy posture updated",
		"mode", next.Mode, "previous_mode", prev.Mode, "by", extractAuthor(c))
	c.JSON(http.StatusOK, &next)
}

// engageEmergencyStopHandler handles POST /api/v1/autonomy/emergency-stop.
// While engaged, every command routes to skip and approval decisions are
// refused.
func (s *Server) engageEmergencyStopHandler(c *gin.Context) {
	cfg := s.autonomy.SetEmergencyStop(true)
	// Sweep the pod's active incidents so work already inside a plan halts
	// too; the posture flag alone only binds commands not yet gated.
	var swept []string
	if s.workerPool != nil {
		swept = s.workerPool.CancelActive()
	}
	var detail map[string]any
	if len(swept) > 0 {
		detail = map[string]any{"cancelled_incidents": swept}
	}
	s.auditSystemChange(c, "engage emergency stop", detail)
	slog.Warn("Emergency stop engaged", "by", extractAuthor(c), "cancelled_incidents", len(swept))
	c.JSON(http.StatusOK, cfg)
}

// releaseEmergencyStopHandler handles DELETE /api/v1/autonomy/emergency-stop.
func (s *Server) releaseEmergencyStopHandler(c *gin.Context) {
	cfg := s.autonomy.SetEmergencyStop(false)
	s.auditSystemChange(c, "release emergency stop", nil)
	slog.Info("Emergency stop released", "by", extractAuthor(c))
	c.JSON(http.StatusOK, cfg)
}

// getBreakerHandler handles GET /api/v1/breaker.
func (s *Server) getBreakerHandler(c *gin.Context) {
	if s.breaker == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "circuit breaker not configured"})
		return
	}
	c.JSON(http.StatusOK, s.breaker.Snapshot())
}

// resetBreakerHandler handles POST /api/v1/breaker/reset — an explicit
// operator half-open override after an incident storm.
func (s *Server) resetBreakerHandler(c *gin.Context) {
	if s.breaker == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "circuit breaker not configured"})
		return
	}
	s.breaker.Reset()
	s.auditSystemChange(c, "reset circuit breaker", nil)
	slog.Info("Circuit breaker reset", "by", extractAuthor(c))
	c.JSON(http.StatusOK, s.breaker.Snapshot())
}

// systemAuditID is the incident id sentinel for fleet-level audit entries.
// Audit entries carry no foreign key, so the sentinel shares the table's
// per-incident sequencing without a backing incident row.
const systemAuditID = "system"

func (s *Server) auditSystemChange(c *gin.Context, action string, detail map[string]any) {
	if _, err := s.audits.Append(c.Request.Context(), systemAuditID, extractAuthor(c), action, detail, nil); err != nil {
		slog.Warn("Failed to audit system change", "action", action, "error", err)
	}
}
