package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		Multiplier:     2.0,
		MaxBackoff:     10 * time.Millisecond,
		JitterFraction: 0.1,
	}
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetryConfig(), "fetch", func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetryConfig(), "fetch", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return Transient(errors.New("connection reset"))
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryStopsOnFatalError(t *testing.T) {
	fatal := errors.New("pod not found")
	calls := 0
	err := Retry(context.Background(), fastRetryConfig(), "execute", func(ctx context.Context) error {
		calls++
		return fatal
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetryConfig(), "fetch", func(ctx context.Context) error {
		calls++
		return Transient(errors.New("still down"))
	})

	require.Error(t, err)
	assert.True(t, IsTransient(err))
	assert.Equal(t, 3, calls)
}

func TestRetryRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := fastRetryConfig()
	cfg.InitialBackoff = time.Minute // force the select to wait on ctx

	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- Retry(ctx, cfg, "fetch", func(ctx context.Context) error {
			calls++
			return Transient(errors.New("down"))
		})
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	case <-time.After(5 * time.Second):
		t.Fatal("retry did not observe cancellation")
	}
}

func TestRetryCoercesAttemptCount(t *testing.T) {
	cfg := fastRetryConfig()
	cfg.MaxAttempts = 0

	calls := 0
	err := Retry(context.Background(), cfg, "fetch", func(ctx context.Context) error {
		calls++
		return Transient(errors.New("down"))
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestBackoffDelayGrowth(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:    5,
		InitialBackoff: 100 * time.Millisecond,
		Multiplier:     2.0,
		MaxBackoff:     time.Second,
	}

	assert.Equal(t, 100*time.Millisecond, backoffDelay(cfg, 1))
	assert.Equal(t, 200*time.Millisecond, backoffDelay(cfg, 2))
	assert.Equal(t, 400*time.Millisecond, backoffDelay(cfg, 3))
	assert.Equal(t, 800*time.Millisecond, backoffDelay(cfg, 4))

	// Attempt 5 would be 1.6s; the cap holds it to MaxBackoff.
	assert.Equal(t, time.Second, backoffDelay(cfg, 5))
}

func TestBackoffDelayJitterBounds(t *testing.T) {
	cfg := RetryConfig{
		InitialBackoff: 100 * time.Millisecond,
		Multiplier:     2.0,
		MaxBackoff:     time.Second,
		JitterFraction: 0.1,
	}

	for i := 0; i < 100; i++ {
		d := backoffDelay(cfg, 2)
		assert.GreaterOrEqual(t, d, 180*time.Millisecond)
		assert.LessOrEqual(t, d, 220*time.Millisecond)
	}
}

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()

	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.InitialBackoff)
	assert.Equal(t, 2.0, cfg.Multiplier)
	assert.Equal(t, 10*time.Second, cfg.MaxBackoff)
	assert.Equal(t, 0.1, cfg.JitterFraction)
}
