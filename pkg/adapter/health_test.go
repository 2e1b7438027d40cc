package adapter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/models"
)

func TestNewHealthMonitorRequiresRegistry(t *testing.T) {
	assert.Panics(t, func() {
		NewHealthMonitor(nil, time.Second)
	})
}

func TestNewHealthMonitorDefaultInterval(t *testing.T) {
	m := NewHealthMonitor(NewRegistry(), 0)
	assert.Equal(t, HealthInterval, m.checkInterval)
}

func TestHealthMonitorReportsHealthy(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAdapter{
		name:         "kubernetes",
		capabilities: []models.ActionType{models.ActionRestartPod, models.ActionScaleDeployment},
	}))

	m := NewHealthMonitor(r, time.Hour)
	m.Start(context.Background())
	defer m.Stop()

	require.Eventually(t, func() bool {
		return len(m.GetStatuses()) == 1
	}, 5*time.Second, 10*time.Millisecond)

	statuses := m.GetStatuses()
	status := statuses["kubernetes"]
	assert.Equal(t, "kubernetes", status.AdapterName)
	assert.True(t, status.Healthy)
	assert.Empty(t, status.Error)
	assert.Equal(t, 2, status.Capabilities)
	assert.False(t, status.LastChecked.IsZero())
	assert.True(t, m.IsHealthy())
}

func TestHealthMonitorReportsUnhealthy(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAdapter{
		name:       "prometheus",
		healthFunc: func(ctx context.Context) error { return errors.New("connection refused") },
		connectFunc: func(ctx context.Context) ([]models.ActionType, error) {
			return nil, errors.New("connection refused")
		},
	}))

	m := NewHealthMonitor(r, time.Hour)
	m.Start(context.Background())
	defer m.Stop()

	require.Eventually(t, func() bool {
		return len(m.GetStatuses()) == 1
	}, 5*time.Second, 10*time.Millisecond)

	status := m.GetStatuses()["prometheus"]
	assert.False(t, status.Healthy)
	assert.Contains(t, status.Error, "connection refused")
	assert.False(t, m.IsHealthy())
}

func TestHealthMonitorReconnectsOnFailure(t *testing.T) {
	var mu sync.Mutex
	healthCalls := 0

	a := &fakeAdapter{
		name: "pagerduty",
		healthFunc: func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			healthCalls++
			if healthCalls == 1 {
				return errors.New("broken pipe")
			}
			return nil
		},
	}

	r := NewRegistry()
	require.NoError(t, r.Register(a))

	m := NewHealthMonitor(r, time.Hour)
	m.Start(context.Background())
	defer m.Stop()

	// The first probe fails, the monitor reconnects, and the retry
	// succeeds, so the adapter comes up healthy on the first pass.
	require.Eventually(t, func() bool {
		status, ok := m.GetStatuses()["pagerduty"]
		return ok && status.Healthy
	}, 5*time.Second, 10*time.Millisecond)

	connects, probes, _ := a.calls()
	assert.Equal(t, 1, connects)
	assert.Equal(t, 2, probes)
}

func TestHealthMonitorStopClearsState(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAdapter{name: "kubernetes"}))

	m := NewHealthMonitor(r, time.Hour)
	m.Start(context.Background())

	require.Eventually(t, func() bool {
		return m.IsHealthy()
	}, 5*time.Second, 10*time.Millisecond)

	m.Stop()
	assert.Empty(t, m.GetStatuses())
	assert.False(t, m.IsHealthy())

	// Restart works after a stop.
	m.Start(context.Background())
	defer m.Stop()
	require.Eventually(t, func() bool {
		return m.IsHealthy()
	}, 5*time.Second, 10*time.Millisecond)
}

func TestHealthMonitorStartTwiceIsNoop(t *testing.T) {
	m := NewHealthMonitor(NewRegistry(), time.Hour)
	m.Start(context.Background())
	m.Start(context.Background())
	m.Stop()
}

func TestIsHealthyWithNoStatuses(t *testing.T) {
	m := NewHealthMonitor(NewRegistry(), time.Hour)
	assert.False(t, m.IsHealthy())
}
