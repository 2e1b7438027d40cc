// Package api is the HTTP surface: webhook ingress, the operator API,
// health and metrics endpoints, and the websocket live stream.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/database"
	"github.com/vigilops/vigil/pkg/events"
	"github.com/vigilops/vigil/pkg/exec"
	"github.com/vigilops/vigil/pkg/queue"
	"github.com/vigilops/vigil/pkg/services"
)

// Server is the HTTP server. It owns no domain state: every handler goes
// through the service layer, the autonomy store, or the worker pool.
type Server struct {
	cfg        *config.Config
	dbClient   *database.Client
	incidents  *services.IncidentService
	executions *services.ExecutionService
	approvals  *services.ApprovalService
	audits     *services.AuditService
	events     *services.EventService
	publisher  *events.EventPublisher
	connMgr    *events.ConnectionManager
	autonomy   *config.AutonomyStore
	breaker    *exec.Breaker
	workerPool *queue.WorkerPool

	webhookSecret string
	authToken     string

	httpServer *http.Server
}

// ServerDeps carries the server's collaborators. Publisher, ConnMgr,
// Breaker, and WorkerPool may be nil; the corresponding endpoints degrade.
type ServerDeps struct {
	Config     *config.Config
	DBClient   *database.Client
	Incidents  *services.IncidentService
	Executions *services.ExecutionService
	Approvals  *services.ApprovalService
	Audits     *services.AuditService
	Events     *services.EventService
	Publisher  *events.EventPublisher
	ConnMgr    *events.ConnectionManager
	Autonomy   *config.AutonomyStore
	Breaker    *exec.Breaker
	WorkerPool *queue.WorkerPool

	// WebhookSecret is the HMAC shared secret for ingress signatures.
	// Empty disables signature checks (a warning is logged per request).
	WebhookSecret string

	// AuthToken protects the operator API when set.
	AuthToken string
}

// NewServer creates the API server.
func NewServer(deps ServerDeps) (*Server, error) {
	switch {
	case deps.Config == nil:
		return nil, fmt.Errorf("config is required")
	case deps.DBClient == nil:
		return nil, fmt.Errorf("database client is required")
	case deps.Incidents == nil:
		return nil, fmt.Errorf("incident service is required")
	case deps.Executions == nil:
		return nil, fmt.Errorf("execution service is required")
	case deps.Approvals == nil:
		return nil, fmt.Errorf("approval service is required")
	case deps.Audits == nil:
		return nil, fmt.Errorf("audit service is required")
	case deps.Events == nil:
		return nil, fmt.Errorf("event service is required")
	case deps.Autonomy == nil:
		return nil, fmt.Errorf("autonomy store is required")
	}
	return &Server{
		cfg:           deps.Config,
		dbClient:      deps.DBClient,
		incidents:     deps.Incidents,
		executions:    deps.Executions,
		approvals:     deps.Approvals,
		audits:        deps.Audits,
		events:        deps.Events,
		publisher:     deps.Publisher,
		connMgr:       deps.ConnMgr,
		autonomy:      deps.Autonomy,
		breaker:       deps.Breaker,
		workerPool:    deps.WorkerPool,
		webhookSecret: deps.WebhookSecret,
		authToken:     deps.AuthToken,
	}, nil
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(), gin.Recovery(), securityHeaders(), corsMiddleware(s.cfg.AllowedWSOrigins))

	// Unauthenticated surface: liveness, metrics, webhook ingress.
	// Webhooks authenticate with the HMAC signature, not the bearer token.
	r.GET("/healthz", s.livenessHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/webhook/pagerduty", s.pagerDutyWebhookHandler)
	r.POST("/webhook/cloudwatch", s.cloudWatchWebhookHandler)

	// Websocket upgrade carries the token as a query parameter because
	// browsers cannot set headers on the upgrade request.
	r.GET("/ws", s.websocketHandler)

	v1 := r.Group("/api/v1", bearerAuth(s.authToken))
	{
		v1.GET("/health", s.healthHandler)

		v1.POST("/alerts", s.submitAlertHandler)

		v1.GET("/incidents", s.listIncidentsHandler)
		v1.GET("/incidents/:id", s.getIncidentHandler)
		v1.GET("/incidents/:id/executions", s.listExecutionsHandler)
		v1.GET("/incidents/:id/audit", s.listAuditHandler)
		v1.GET("/incidents/:id/events", s.listEventsHandler)
		v1.POST("/incidents/:id/abort", s.abortIncidentHandler)

		v1.GET("/approvals", s.listApprovalsHandler)
		v1.POST("/approvals/:id/approve", s.approveHandler)
		v1.POST("/approvals/:id/reject", s.rejectHandler)

		v1.GET("/autonomy", s.getAutonomyHandler)
		v1.PUT("/autonomy", s.updateAutonomyHandler)
		v1.POST("/autonomy/emergency-stop", s.engageEmergencyStopHandler)
		v1.DELETE("/autonomy/emergency-stop", s.releaseEmergencyStopHandler)

		v1.GET("/breaker", s.getBreakerHandler)
		v1.POST("/breaker/reset", s.resetBreakerHandler)
	}

	return r
}

// Start begins serving on addr. Blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// StartWithListener serves on an existing listener. Tests use this to bind
// an ephemeral port before the server goroutine starts.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
