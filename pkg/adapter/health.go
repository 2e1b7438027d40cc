package adapter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// HealthStatus is the last observed health of one adapter.
type HealthStatus struct {
	AdapterName  string    `json:"adapter_name"`
	Healthy      bool      `json:"healthy"`
	LastChecked  time.Time `json:"last_checked"`
	Error        string    `json:"error,omitempty"`
	Capabilities int       `json:"capabilities"`
}

// HealthMonitor periodically probes every registered adapter and caches the
// results for the health endpoint. A failed probe gets one reconnect-and-
// retry before the adapter is marked unhealthy.
type HealthMonitor struct {
	registry      *Registry
	checkInterval time.Duration

	statuses      map[string]*HealthStatus
	statusesMutex sync.RWMutex

	cancel context.CancelFunc
	done   chan struct{}
}

// NewHealthMonitor creates a monitor over the given registry. A
// non-positive interval falls back to HealthInterval.
func NewHealthMonitor(registry *Registry, checkInterval time.Duration) *HealthMonitor {
	if registry == nil {
		panic("registry is required")
	}
	if checkInterval <= 0 {
		checkInterval = HealthInterval
	}
	return &HealthMonitor{
		registry:      registry,
		checkInterval: checkInterval,
		statuses:      make(map[string]*HealthStatus),
	}
}

// Start launches the background check loop. No-op when already running.
func (m *HealthMonitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.loop(ctx)

	slog.Info("Adapter health monitor started", "interval", m.checkInterval)
}

// Stop halts the loop and waits for it to exit. The monitor can be
// started again afterwards.
func (m *HealthMonitor) Stop() {
	if m.cancel == nil {
		return
	}

	m.cancel()
	<-m.done

	m.cancel = nil
	m.done = nil

	m.statusesMutex.Lock()
	m.statuses = make(map[string]*HealthStatus)
	m.statusesMutex.Unlock()

	slog.Info("Adapter health monitor stopped")
}

func (m *HealthMonitor) loop(ctx context.Context) {
	defer close(m.done)

	// First pass immediately so the health endpoint has data at startup.
	m.checkAll(ctx)

	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.checkAll(ctx)
		}
	}
}

func (m *HealthMonitor) checkAll(ctx context.Context) {
	for _, a := range m.registry.All() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		m.checkAdapter(ctx, a)
	}
}

func (m *HealthMonitor) checkAdapter(ctx context.Context, a Adapter) {
	probeCtx, cancel := context.WithTimeout(ctx, HealthProbeTimeout)
	err := a.Health(probeCtx)
	cancel()

	if err != nil && ctx.Err() == nil {
		// One reconnect attempt: dropped connections are the common
		// failure and usually clear on a fresh client.
		reconCtx, reconCancel := context.WithTimeout(ctx, ConnectTimeout)
		_, reconErr := a.Connect(reconCtx)
		reconCancel()

		if reconErr == nil {
			retryCtx, retryCancel := context.WithTimeout(ctx, HealthProbeTimeout)
			err = a.Health(retryCtx)
			retryCancel()
		}
	}

	status := &HealthStatus{
		AdapterName:  a.Name(),
		Healthy:      err == nil,
		LastChecked:  time.Now(),
		Capabilities: len(a.Capabilities()),
	}
	if err != nil {
		status.Error = err.Error()
		slog.Warn("Adapter health check failed", "adapter", a.Name(), "error", err)
	}

	m.setStatus(status)
}

func (m *HealthMonitor) setStatus(status *HealthStatus) {
	m.statusesMutex.Lock()
	defer m.statusesMutex.Unlock()
	m.statuses[status.AdapterName] = status
}

// GetStatuses returns a copy of the latest statuses keyed by adapter name.
func (m *HealthMonitor) GetStatuses() map[string]HealthStatus {
	m.statusesMutex.RLock()
	defer m.statusesMutex.RUnlock()

	out := make(map[string]HealthStatus, len(m.statuses))
	for name, status := range m.statuses {
		out[name] = *status
	}
	return out
}

// IsHealthy reports whether every checked adapter is healthy. False until
// the first pass completes.
func (m *HealthMonitor) IsHealthy() bool {
	m.statusesMutex.RLock()
	defer m.statusesMutex.RUnlock()

	if len(m.statuses) == 0 {
		return false
	}
	for _, status := range m.statuses {
		if !status.Healthy {
			return false
		}
	}
	return true
}
