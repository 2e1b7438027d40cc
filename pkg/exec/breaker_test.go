package exec

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type transitionLog struct {
	mu          sync.Mutex
	transitions [][2]models.BreakerState
}

func (l *transitionLog) record(from, to models.BreakerState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.transitions = append(l.transitions, [2]models.BreakerState{from, to})
}

func (l *transitionLog) all() [][2]models.BreakerState {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([][2]models.BreakerState, len(l.transitions))
	copy(out, l.transitions)
	return out
}

func TestBreakerOpensAtFailureThreshold(t *testing.T) {
	log := &transitionLog{}
	b := NewBreaker(testLogger(), log.record)
	boom := errors.New("api timeout")

	for i := 0; i < breakerFailureThreshold-1; i++ {
		err := b.Execute(func() error { return boom })
		assert.Equal(t, boom, err)
		assert.False(t, b.Open())
	}
	err := b.Execute(func() error { return boom })
	assert.Equal(t, boom, err)
	assert.True(t, b.Open())

	snap := b.Snapshot()
	assert.Equal(t, models.BreakerOpen, snap.State)
	assert.Equal(t, uint32(breakerFailureThreshold), snap.ConsecutiveFailures)
	assert.NotNil(t, snap.LastFailureAt)
	assert.NotNil(t, snap.OpenedAt)

	require.Len(t, log.all(), 1)
	assert.Equal(t, [2]models.BreakerState{models.BreakerClosed, models.BreakerOpen}, log.all()[0])
}

func TestBreakerOpenRefusesWithoutRunning(t *testing.T) {
	b := NewBreaker(testLogger(), nil)
	boom := errors.New("api timeout")
	for i := 0; i < breakerFailureThreshold; i++ {
		_ = b.Execute(func() error { return boom })
	}
	require.True(t, b.Open())

	ran := false
	err := b.Execute(func() error {
		ran = true
		return nil
	})

	assert.ErrorIs(t, err, ErrBreakerOpen)
	assert.False(t, ran)
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker(testLogger(), nil)
	boom := errors.New("api timeout")

	for i := 0; i < breakerFailureThreshold-1; i++ {
		_ = b.Execute(func() error { return boom })
	}
	require.NoError(t, b.Execute(func() error { return nil }))
	assert.Equal(t, uint32(0), b.Snapshot().ConsecutiveFailures)

	// The count restarts from zero, so another full run is needed to open.
	for i := 0; i < breakerFailureThreshold-1; i++ {
		_ = b.Execute(func() error { return boom })
	}
	assert.False(t, b.Open())
	_ = b.Execute(func() error { return boom })
	assert.True(t, b.Open())
}

func TestBreakerIgnoresPolicyRefusals(t *testing.T) {
	b := NewBreaker(testLogger(), nil)
	refusal := fmt.Errorf("%w: destructive operations are disabled", adapter.ErrForbidden)

	// Refusals pass through to the caller but never trip the circuit.
	for i := 0; i < breakerFailureThreshold*2; i++ {
		err := b.Execute(func() error { return refusal })
		assert.ErrorIs(t, err, adapter.ErrForbidden)
	}
	assert.False(t, b.Open())
	assert.Equal(t, uint32(0), b.Snapshot().ConsecutiveFailures)

	// A refusal also clears the streak, like any non-failure.
	boom := errors.New("api timeout")
	for i := 0; i < breakerFailureThreshold-1; i++ {
		_ = b.Execute(func() error { return boom })
	}
	_ = b.Execute(func() error { return refusal })
	_ = b.Execute(func() error { return boom })
	assert.False(t, b.Open())
	assert.Equal(t, uint32(1), b.Snapshot().ConsecutiveFailures)

	unsupported := fmt.Errorf("%w: exec_into_pod", adapter.ErrUnsupportedAction)
	err := b.Execute(func() error { return unsupported })
	assert.ErrorIs(t, err, adapter.ErrUnsupportedAction)
	assert.False(t, b.Open())
}

func TestBreakerReset(t *testing.T) {
	log := &transitionLog{}
	b := NewBreaker(testLogger(), log.record)
	boom := errors.New("api timeout")
	for i := 0; i < breakerFailureThreshold; i++ {
		_ = b.Execute(func() error { return boom })
	}
	require.True(t, b.Open())

	b.Reset()

	assert.False(t, b.Open())
	snap := b.Snapshot()
	assert.Equal(t, models.BreakerClosed, snap.State)
	assert.Equal(t, uint32(0), snap.ConsecutiveFailures)
	assert.Nil(t, snap.LastFailureAt)
	assert.Nil(t, snap.OpenedAt)

	assert.NoError(t, b.Execute(func() error { return nil }))

	transitions := log.all()
	require.Len(t, transitions, 2)
	assert.Equal(t, [2]models.BreakerState{models.BreakerOpen, models.BreakerClosed}, transitions[1])
}

func TestBreakerResetWhileClosedStaysQuiet(t *testing.T) {
	log := &transitionLog{}
	b := NewBreaker(testLogger(), log.record)

	b.Reset()

	assert.False(t, b.Open())
	assert.Empty(t, log.all())
}
