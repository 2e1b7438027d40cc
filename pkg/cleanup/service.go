// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes terminal incidents past their retention window (cascade
//     removes execution records and approval requests)
//   - Deletes audit entries past their own, longer window
//   - Removes Event rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config          *config.RetentionConfig
	incidentService *services.IncidentService
	auditService    *services.AuditService
	eventService    *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	incidentService *services.IncidentService,
	auditService *services.AuditService,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:          cfg,
		incidentService: incidentService,
		auditService:    auditService,
		eventService:    eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"incident_retention_days", s.config.IncidentRetentionDays,
		"audit_retention_days", s.config.AuditRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.pruneTerminalIncidents(ctx)
	s.pruneAuditEntries(ctx)
	s.pruneEvents(ctx)
}

func (s *Service) pruneTerminalIncidents(ctx context.Context) {
	if s.config.IncidentRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.config.IncidentRetentionDays)
	count, err := s.incidentService.PruneTerminal(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: incident prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned terminal incidents", "count", count, "cutoff", cutoff)
	}
}

func (s *Service) pruneAuditEntries(ctx context.Context) {
	if s.config.AuditRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.config.AuditRetentionDays)
	count, err := s.auditService.PruneBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: audit prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned audit entries", "count", count, "cutoff", cutoff)
	}
}

func (s *Service) pruneEvents(ctx context.Context) {
	if s.config.EventTTL <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.config.EventTTL)
	count, err := s.eventService.PruneBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: event prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned event rows", "count", count, "cutoff", cutoff)
	}
}
