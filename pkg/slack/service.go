package slack

import (
	"context"
	"log/slog"
	"time"

	"github.com/vigilops/vigil/pkg/models"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// IncidentOpenedInput contains data for an incident-opened notification.
type IncidentOpenedInput struct {
	IncidentID string
	Service    string
	Title      string
	Severity   models.Severity
	Source     models.AlertSource
}

// ApprovalRequestedInput contains data for an approval notification.
type ApprovalRequestedInput struct {
	IncidentID     string
	ApprovalID     string
	CommandPreview string
	RiskLevel      models.RiskLevel
	Confidence     float64
	ThreadTS       string // cached from the opened notification
}

// IncidentFinalizedInput contains data for a terminal incident notification.
type IncidentFinalizedInput struct {
	IncidentID   string
	Service      string
	Outcome      models.IncidentState
	Reason       models.TerminalReason
	RootCause    string
	ErrorMessage string
	ThreadTS     string // cached from the opened notification
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyIncidentOpened posts the channel message that anchors the incident's
// thread. Returns the message timestamp so follow-ups can thread to it.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyIncidentOpened(ctx context.Context, input IncidentOpenedInput) string {
	if s == nil {
		return ""
	}

	blocks := BuildOpenedMessage(input, s.dashboardURL)
	ts, err := s.client.PostMessage(ctx, blocks, "", 5*time.Second)
	if err != nil {
		s.logger.Error("Failed to send Slack incident-opened notification",
			"incident_id", input.IncidentID,
			"error", err)
		return ""
	}
	return ts
}

// NotifyApprovalRequested posts an approval callout as a threaded reply so
// operators see the parked command in the incident's thread.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyApprovalRequested(ctx context.Context, input ApprovalRequestedInput) {
	if s == nil {
		return
	}

	threadTS := s.resolveThread(ctx, input.IncidentID, input.ThreadTS)
	blocks := BuildApprovalMessage(input, s.dashboardURL)
	if _, err := s.client.PostMessage(ctx, blocks, threadTS, 5*time.Second); err != nil {
		s.logger.Error("Failed to send Slack approval notification",
			"incident_id", input.IncidentID,
			"approval_id", input.ApprovalID,
			"error", err)
	}
}

// NotifyIncidentFinalized sends the terminal status notification.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyIncidentFinalized(ctx context.Context, input IncidentFinalizedInput) {
	if s == nil {
		return
	}

	threadTS := s.resolveThread(ctx, input.IncidentID, input.ThreadTS)
	blocks := BuildTerminalMessage(input, s.dashboardURL)
	if _, err := s.client.PostMessage(ctx, blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack terminal notification",
			"incident_id", input.IncidentID,
			"outcome", input.Outcome,
			"error", err)
	}
}

// resolveThread returns the cached thread timestamp, falling back to a
// channel-history search for the opened message. Incidents parked for
// approval resume on another worker, so the cached timestamp is often gone.
func (s *Service) resolveThread(ctx context.Context, incidentID, cached string) string {
	if cached != "" {
		return cached
	}
	threadTS, err := s.client.FindThread(ctx, threadMarker(incidentID))
	if err != nil {
		s.logger.Warn("Failed to find Slack thread for incident",
			"incident_id", incidentID,
			"error", err)
		return ""
	}
	return threadTS
}
