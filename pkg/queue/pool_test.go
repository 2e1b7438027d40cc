package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelIncident(t *testing.T) {
	pool := &WorkerPool{
		activeIncidents: make(map[string]context.CancelFunc),
	}

	// Register an incident
	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterIncident("incident-1", cancel)

	// Cancel it
	found := pool.CancelIncident("incident-1")
	require.True(t, found)

	// Context should be cancelled
	select {
	case <-ctx.Done():
		// expected
	default:
		t.Fatal("context was not cancelled")
	}
}

func TestPoolCancelUnknownIncident(t *testing.T) {
	pool := &WorkerPool{
		activeIncidents: make(map[string]context.CancelFunc),
	}

	found := pool.CancelIncident("nonexistent")
	assert.False(t, found)
}

func TestPoolUnregisterIncident(t *testing.T) {
	pool := &WorkerPool{
		activeIncidents: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterIncident("incident-1", cancel)
	pool.UnregisterIncident("incident-1")

	found := pool.CancelIncident("incident-1")
	assert.False(t, found)
	cancel()
}

func TestPoolActiveIncidentIDs(t *testing.T) {
	pool := &WorkerPool{
		activeIncidents: make(map[string]context.CancelFunc),
	}

	assert.Empty(t, pool.getActiveIncidentIDs())

	_, cancel1 := context.WithCancel(context.Background())
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel1()
	defer cancel2()
	pool.RegisterIncident("incident-1", cancel1)
	pool.RegisterIncident("incident-2", cancel2)

	ids := pool.getActiveIncidentIDs()
	assert.Len(t, ids, 2)
	assert.ElementsMatch(t, []string{"incident-1", "incident-2"}, ids)
}
