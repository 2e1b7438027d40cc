package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vigilops/vigil/ent"
	entincident "github.com/vigilops/vigil/ent/incident"
	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/services"
	"github.com/vigilops/vigil/pkg/slack"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID        string
	client       *ent.Client
	config       *config.QueueConfig
	incidents    *services.IncidentService
	executor     IncidentExecutor
	eventSink    EventSink
	slackService *slack.Service
	workers      []*Worker
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup

	// Incident cancel registry: incident_id → cancel function
	activeIncidents map[string]context.CancelFunc
	mu              sync.RWMutex
	started         bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
// eventSink and slackService may be nil (streaming / notifications disabled).
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, incidents *services.IncidentService, executor IncidentExecutor, eventSink EventSink, slackService *slack.Service) *WorkerPool {
	return &WorkerPool{
		podID:           podID,
		client:          client,
		config:          cfg,
		incidents:       incidents,
		executor:        executor,
		eventSink:       eventSink,
		slackService:    slackService,
		workers:         make([]*Worker, 0, cfg.WorkerCount),
		stopCh:          make(chan struct{}),
		activeIncidents: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.incidents, p.executor, p, p.eventSink, p.slackService)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current incidents before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	// Log active incidents
	active := p.getActiveIncidentIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active incidents to complete",
			"count", len(active),
			"incident_ids", active)
	}

	// Signal all workers to stop (they finish current incidents)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal orphan detection to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterIncident stores a cancel function for operator-triggered aborts.
func (p *WorkerPool) RegisterIncident(incidentID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeIncidents[incidentID] = cancel
}

// UnregisterIncident removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterIncident(incidentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeIncidents, incidentID)
}

// CancelIncident triggers context cancellation for an incident on this pod.
// Returns true if the incident was found and cancelled on this pod.
func (p *WorkerPool) CancelIncident(incidentID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeIncidents[incidentID]; ok {
		cancel()
		return true
	}
	return false
}

// CancelActive cancels every incident this pod currently holds and returns
// their ids. The emergency stop uses this as its sweep: in-flight commands
// settle within their grace window, then the pipelines halt.
func (p *WorkerPool) CancelActive() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeIncidents))
	for id, cancel := range p.activeIncidents {
		cancel()
		ids = append(ids, id)
	}
	return ids
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Incident.Query().
		Where(
			entincident.StateIn(entincident.StateReceived, entincident.StateResuming),
			entincident.WorkerIDIsNil(),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	// Worker ids are prefixed with the pod id, so a prefix match counts
	// everything this pod currently holds.
	activeIncidents, errA := p.client.Incident.Query().
		Where(entincident.WorkerIDHasPrefix(p.podID)).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active incidents for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeIncidents <= p.config.MaxConcurrentIncidents && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	orphansFailed := p.orphans.orphansFailed
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active incidents query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveIncidents:  activeIncidents,
		MaxConcurrent:    p.config.MaxConcurrentIncidents,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
		OrphansFailed:    orphansFailed,
	}
}

// getActiveIncidentIDs returns IDs of currently processing incidents (for logging).
func (p *WorkerPool) getActiveIncidentIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	incidents := make([]string, 0, len(p.activeIncidents))
	for id := range p.activeIncidents {
		incidents = append(incidents, id)
	}
	return incidents
}
