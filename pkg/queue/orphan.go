package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vigilops/vigil/ent"
	entincident "github.com/vigilops/vigil/ent/incident"
	"github.com/vigilops/vigil/pkg/models"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
	orphansFailed    int
}

// runOrphanDetection periodically scans for incidents whose claiming worker
// stopped heartbeating. All pods run this independently — operations are
// idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds claimed incidents with stale heartbeats.
// Incidents orphaned before processing started (received, resuming) go back
// on the queue; incidents orphaned mid-pipeline fail with reason timeout —
// commands may have been issued and a blind re-run could double-execute.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.incidents.Orphans(ctx, p.config.OrphanThreshold)
	if err != nil {
		return err
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned incidents", "count", len(orphans))

	recovered, failed := 0, 0
	for _, inc := range orphans {
		requeued, err := p.recoverOrphanedIncident(ctx, inc)
		if err != nil {
			slog.Error("Failed to recover orphaned incident",
				"incident_id", inc.ID,
				"error", err)
			continue
		}
		if requeued {
			recovered++
		} else {
			failed++
		}
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.orphansFailed += failed
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedIncident settles one orphan. Returns true when the
// incident was re-queued, false when it was failed.
func (p *WorkerPool) recoverOrphanedIncident(ctx context.Context, inc *ent.Incident) (bool, error) {
	workerID := "unknown"
	if inc.WorkerID != nil {
		workerID = *inc.WorkerID
	}
	lastHeartbeat := "never"
	if inc.HeartbeatAt != nil {
		lastHeartbeat = inc.HeartbeatAt.Format(time.RFC3339)
	}
	log := slog.With("incident_id", inc.ID, "old_worker_id", workerID, "last_heartbeat", lastHeartbeat)

	state := models.IncidentState(inc.State)
	if state == models.StateReceived || state == models.StateResuming {
		if err := p.incidents.ForceRelease(ctx, inc.ID); err != nil {
			return false, fmt.Errorf("requeueing orphan: %w", err)
		}
		log.Warn("Orphaned incident returned to queue", "state", state)
		return true, nil
	}

	outcome := models.StateFailed
	if state == models.StateAnalysisEmpty {
		// The empty-plan state has no failed edge.
		outcome = models.StateAbandoned
	}
	errMsg := fmt.Sprintf("orphaned: no heartbeat from worker %s since %s", workerID, lastHeartbeat)
	if err := p.incidents.Finalize(ctx, inc.ID, state, outcome, models.ReasonTimeout, errMsg); err != nil {
		return false, fmt.Errorf("failing orphan: %w", err)
	}
	log.Warn("Orphaned incident failed", "state", state)
	return false, nil
}

// CleanupStartupOrphans settles incidents still claimed by this pod's
// workers from a previous run. Called once during startup, before the
// worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Incident.Query().
		Where(
			entincident.StateNotIn(
				entincident.StateResolved,
				entincident.StateFailed,
				entincident.StateAbandoned,
			),
			entincident.WorkerIDNotNil(),
			entincident.WorkerIDHasPrefix(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, inc := range orphans {
		state := entincident.State(inc.State)
		if state == entincident.StateReceived || state == entincident.StateResuming {
			err := inc.Update().
				ClearWorkerID().
				ClearHeartbeatAt().
				Exec(ctx)
			if err != nil {
				slog.Error("Failed to requeue startup orphan", "incident_id", inc.ID, "error", err)
				continue
			}
			slog.Info("Startup orphan returned to queue", "incident_id", inc.ID)
			continue
		}

		terminal := entincident.StateFailed
		terminalOutcome := entincident.TerminalOutcomeFailed
		if state == entincident.StateAnalysisEmpty {
			terminal = entincident.StateAbandoned
			terminalOutcome = entincident.TerminalOutcomeAbandoned
		}
		err := inc.Update().
			SetState(terminal).
			SetTerminalOutcome(terminalOutcome).
			SetTerminalReason(string(models.ReasonTimeout)).
			SetErrorMessage(fmt.Sprintf("orphaned: pod %s restarted while incident was in flight", podID)).
			SetCompletedAt(now).
			ClearWorkerID().
			ClearHeartbeatAt().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to fail startup orphan", "incident_id", inc.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan failed", "incident_id", inc.ID, "state", inc.State)
	}

	return nil
}
