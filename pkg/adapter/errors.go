package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Sentinel errors returned by adapter operations.
var (
	// ErrUnsupportedAction indicates the adapter does not implement the
	// requested action type.
	ErrUnsupportedAction = errors.New("action not supported by adapter")

	// ErrForbidden indicates policy refuses the action regardless of
	// autonomy mode, e.g. deleting a namespace.
	ErrForbidden = errors.New("action forbidden by policy")

	// ErrNotConnected indicates the adapter was used before Connect
	// succeeded.
	ErrNotConnected = errors.New("adapter not connected")
)

// TransientError marks a failure worth retrying: the operation did not
// complete for reasons expected to clear on their own, such as a dropped
// connection or an upstream rate limit.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Transient wraps err as retryable. Returns nil for nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

// IsTransient reports whether err should be retried. Explicit wrapping wins;
// otherwise network timeouts and well-known connection failures qualify.
// Context cancellation is never transient: the caller already gave up.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var te *TransientError
	if errors.As(err, &te) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return isConnectionError(err)
}

// isConnectionError matches failure modes where the transport dropped out
// from under us and a fresh attempt has a real chance of succeeding.
func isConnectionError(err error) bool {
	errStr := strings.ToLower(err.Error())

	connectionErrors := []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"connection closed",
		"no such host",
		"i/o timeout",
		"too many requests",
		"rate limit",
		"server gave http response",
		"bad gateway",
		"service unavailable",
		"gateway timeout",
	}

	for _, connErr := range connectionErrors {
		if strings.Contains(errStr, connErr) {
			return true
		}
	}

	return false
}
