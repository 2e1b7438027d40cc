package models

import "time"

// BreakerState mirrors the circuit breaker's three states
type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerOpen     BreakerState = "open"
	BreakerHalfOpen BreakerState = "half_open"
)

// BreakerSnapshot is the read-only view of the executor circuit breaker
// exposed on the operator API.
type BreakerSnapshot struct {
	State               BreakerState `json:"state"`
	ConsecutiveFailures uint32       `json:"consecutive_failures"`
	LastFailureAt       *time.Time   `json:"last_failure_at,omitempty"`
	OpenedAt            *time.Time   `json:"opened_at,omitempty"`
}
