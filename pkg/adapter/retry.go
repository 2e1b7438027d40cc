package adapter

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// RetryConfig controls the retry loop for transient adapter failures.
type RetryConfig struct {
	// MaxAttempts counts the first try plus retries.
	MaxAttempts int

	// InitialBackoff is the delay before the first retry.
	InitialBackoff time.Duration

	// Multiplier grows the delay between consecutive retries.
	Multiplier float64

	// MaxBackoff caps the delay regardless of attempt count.
	MaxBackoff time.Duration

	// JitterFraction spreads each delay by ±fraction to avoid retry
	// stampedes against a recovering dependency.
	JitterFraction float64
}

// DefaultRetryConfig returns the retry policy adapters use unless
// configured otherwise.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 500 * time.Millisecond,
		Multiplier:     2.0,
		MaxBackoff:     10 * time.Second,
		JitterFraction: 0.1,
	}
}

// Retry runs fn up to cfg.MaxAttempts times, backing off between attempts.
// Only transient errors are retried; anything else returns immediately, as
// does context cancellation. The last error is returned when attempts run
// out.
func Retry(ctx context.Context, cfg RetryConfig, op string, fn func(context.Context) error) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !IsTransient(lastErr) {
			return lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		delay := backoffDelay(cfg, attempt)
		slog.Warn("Retrying after transient failure",
			"operation", op,
			"attempt", attempt,
			"max_attempts", cfg.MaxAttempts,
			"delay", delay,
			"error", lastErr)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}

// backoffDelay computes the wait before the retry following the given
// attempt: InitialBackoff doubled per attempt (per Multiplier), capped at
// MaxBackoff, then jittered.
func backoffDelay(cfg RetryConfig, attempt int) time.Duration {
	backoff := float64(cfg.InitialBackoff) * math.Pow(cfg.Multiplier, float64(attempt-1))
	if max := float64(cfg.MaxBackoff); cfg.MaxBackoff > 0 && backoff > max {
		backoff = max
	}
	if cfg.JitterFraction > 0 {
		jitter := backoff * cfg.JitterFraction
		backoff = backoff - jitter + rand.Float64()*2*jitter
	}
	if backoff < 0 {
		backoff = 0
	}
	return time.Duration(backoff)
}
