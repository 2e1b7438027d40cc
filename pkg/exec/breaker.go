// Package exec runs gated commands against their adapters: issuance record
// persisted first, execution through the circuit breaker, post-execution
// verification, and rollback scheduling when a command turns out not to have
// had its intended effect.
package exec

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/models"
)

// Breaker policy: five consecutive failures open the circuit (verification
// failures count the same as execution errors), a five minute cooldown moves
// it to half-open, and two trial successes close it again.
const (
	breakerName             = "executor"
	breakerFailureThreshold = 5
	breakerCooldown         = 5 * time.Minute
	breakerTrialRequests    = 2
)

// ErrBreakerOpen is returned when the breaker refuses a command without
// running it. An exhausted half-open trial budget reports the same way.
var ErrBreakerOpen = errors.New("circuit breaker is open")

// Breaker wraps the executor's circuit breaker with snapshot reporting and
// manual reset. Reset swaps in a fresh circuit since the underlying breaker
// cannot be rewound in place.
type Breaker struct {
	logger   *slog.Logger
	onChange func(from, to models.BreakerState)

	mu sync.Mutex
	cb *gobreaker.CircuitBreaker
	// consecutiveFailures is tracked here, not read from the circuit: the
	// circuit clears its counts on every state change, which would make the
	// operator snapshot show zero right when the breaker opens.
	consecutiveFailures uint32
	lastFailureAt       *time.Time
	openedAt            *time.Time
}

// NewBreaker builds the breaker. onChange, when set, observes every state
// transition; it runs on the executing goroutine and must not block.
func NewBreaker(logger *slog.Logger, onChange func(from, to models.BreakerState)) *Breaker {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Breaker{
		logger:   logger.With("component", "breaker"),
		onChange: onChange,
	}
	b.cb = b.newCircuit()
	return b
}

func (b *Breaker) newCircuit() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: breakerTrialRequests,
		Timeout:     breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || policyRefusal(err)
		},
		OnStateChange: func(_ string, from, to gobreaker.State) {
			b.transition(stateOf(from), stateOf(to))
		},
	})
}

// Execute runs fn through the breaker. When the circuit refuses the call, fn
// never runs and the error is ErrBreakerOpen; any other error is fn's own.
func (b *Breaker) Execute(fn func() error) error {
	b.mu.Lock()
	cb := b.cb
	b.mu.Unlock()

	_, err := cb.Execute(func() (any, error) {
		return nil, fn()
	})
	switch {
	case err == nil:
		b.mu.Lock()
		b.consecutiveFailures = 0
		b.mu.Unlock()
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return ErrBreakerOpen
	case policyRefusal(err):
		// The circuit treats these as successes; keep the mirrored counter
		// in step.
		b.mu.Lock()
		b.consecutiveFailures = 0
		b.mu.Unlock()
		return err
	}

	now := time.Now()
	b.mu.Lock()
	b.consecutiveFailures++
	b.lastFailureAt = &now
	b.mu.Unlock()
	return err
}

// Open reports whether the breaker currently refuses commands.
func (b *Breaker) Open() bool {
	b.mu.Lock()
	cb := b.cb
	b.mu.Unlock()
	return cb.State() == gobreaker.StateOpen
}

// Snapshot returns the operator-facing view of the breaker.
func (b *Breaker) Snapshot() models.BreakerSnapshot {
	b.mu.Lock()
	cb := b.cb
	failures := b.consecutiveFailures
	lastFailureAt := b.lastFailureAt
	openedAt := b.openedAt
	b.mu.Unlock()

	return models.BreakerSnapshot{
		State:               stateOf(cb.State()),
		ConsecutiveFailures: failures,
		LastFailureAt:       lastFailureAt,
		OpenedAt:            openedAt,
	}
}

// Reset closes the breaker immediately, discarding its failure history. Used
// by the operator reset endpoint.
func (b *Breaker) Reset() {
	b.mu.Lock()
	old := b.cb
	b.cb = b.newCircuit()
	b.consecutiveFailures = 0
	b.lastFailureAt = nil
	b.openedAt = nil
	b.mu.Unlock()

	from := stateOf(old.State())
	b.logger.Info("breaker reset", "from", from)
	if from != models.BreakerClosed {
		b.notify(from, models.BreakerClosed)
	}
}

// transition runs inside the circuit's own locking; it must not call back
// into the circuit while holding b.mu.
func (b *Breaker) transition(from, to models.BreakerState) {
	now := time.Now()
	b.mu.Lock()
	switch to {
	case models.BreakerOpen:
		b.openedAt = &now
	case models.BreakerClosed:
		b.openedAt = nil
	}
	b.mu.Unlock()

	if to == models.BreakerOpen {
		b.logger.Warn("breaker opened", "from", from)
	} else {
		b.logger.Info("breaker state changed", "from", from, "to", to)
	}
	b.notify(from, to)
}

func (b *Breaker) notify(from, to models.BreakerState) {
	if b.onChange != nil {
		b.onChange(from, to)
	}
}

// policyRefusal reports an adapter declining a command on policy grounds. A
// refusal says nothing about fleet health, so it never counts against the
// circuit.
func policyRefusal(err error) bool {
	return errors.Is(err, adapter.ErrForbidden) || errors.Is(err, adapter.ErrUnsupportedAction)
}

func stateOf(s gobreaker.State) models.BreakerState {
	switch s {
	case gobreaker.StateOpen:
		return models.BreakerOpen
	case gobreaker.StateHalfOpen:
		return models.BreakerHalfOpen
	default:
		return models.BreakerClosed
	}
}
