package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vigilops/vigil/pkg/database"
	"github.com/vigilops/vigil/pkg/version"
)

// livenessHandler handles GET /healthz. It answers as long as the process
// is serving requests; dependency health lives under /api/v1/health.
func (s *Server) livenessHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// healthHandler handles GET /api/v1/health: database, worker pool, and
// breaker checks with an aggregate status. Unhealthy answers 503 so load
// balancers can take the pod out of rotation.
func (s *Server) healthHandler(c *gin.Context) {
	resp := HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.GitCommit,
		Checks:  make(map[string]HealthCheck),
	}

	dbHealth, err := database.Health(c.Request.Context(), s.dbClient.DB())
	if err != nil {
		resp.Checks["database"] = HealthCheck{
			Status:  healthStatusUnhealthy,
			Message: err.Error(),
			Details: dbHealth,
		}
		resp.Status = healthStatusUnhealthy
	} else {
		resp.Checks["database"] = HealthCheck{Status: healthStatusHealthy, Details: dbHealth}
	}

	if s.workerPool != nil {
		pool := s.workerPool.Health()
		check := HealthCheck{Status: healthStatusHealthy, Details: pool}
		switch {
		case !pool.IsHealthy:
			check.Status = healthStatusUnhealthy
			check.Message = pool.DBError
			resp.Status = healthStatusUnhealthy
		case pool.ActiveIncidents >= pool.MaxConcurrent:
			check.Status = healthStatusDegraded
			check.Message = "at incident capacity"
			if resp.Status == healthStatusHealthy {
				resp.Status = healthStatusDegraded
			}
		}
		resp.Checks["worker_pool"] = check
	}

	if s.breaker != nil {
		snap := s.breaker.Snapshot()
		check := HealthCheck{Status: healthStatusHealthy, Details: snap}
		// An open breaker is a deliberate safety posture, not an outage.
		if s.breaker.Open() {
			check.Status = healthStatusDegraded
			check.Message = "circuit breaker open: mutations suspended"
			if resp.Status == healthStatusHealthy {
				resp.Status = healthStatusDegraded
			}
		}
		resp.Checks["circuit_breaker"] = check
	}

	code := http.StatusOK
	if resp.Status == healthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}
