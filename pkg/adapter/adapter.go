// Package adapter defines the integration adapter contract: pluggable
// clients that gather incident context from external systems and, for the
// systems that support it, execute remediation actions against them.
package adapter

import (
	"context"
	"time"

	"github.com/vigilops/vigil/pkg/models"
)

// Timeouts and intervals shared by adapter implementations.
const (
	// ConnectTimeout is the per-adapter initialization deadline.
	ConnectTimeout = 30 * time.Second

	// HealthProbeTimeout is the health check probe deadline. Health probes
	// must be cheap and side-effect free.
	HealthProbeTimeout = 5 * time.Second

	// HealthInterval is the health check loop interval.
	HealthInterval = 15 * time.Second
)

// Adapter is one integration. Connect is idempotent and returns the actions
// the adapter can actually execute against the live system, which may be a
// subset of Capabilities (credentials and policy can narrow it).
type Adapter interface {
	// Name returns the registry key, e.g. "kubernetes".
	Name() string

	// Connect establishes clients and verifies reachability. Idempotent.
	Connect(ctx context.Context) ([]models.ActionType, error)

	// Health probes the integration. Bounded by HealthProbeTimeout at the
	// call site; implementations must not mutate external state.
	Health(ctx context.Context) error

	// FetchContext gathers diagnostic context for an alert. Partial data
	// with an error is acceptable; the aggregator records both.
	FetchContext(ctx context.Context, params ContextParams) (map[string]any, error)

	// ExecuteAction runs one expanded command against the target system.
	ExecuteAction(ctx context.Context, cmd models.CommandSpec) (*models.CommandResult, error)

	// Capabilities returns the action types this adapter understands,
	// independent of whether the live system currently permits them.
	Capabilities() []models.ActionType
}

// ActionVerifier is implemented by adapters that can check whether an
// executed action had its intended effect. The executor probes for it with
// a type assertion after each successful command. startedAt is when the
// command began executing, so predicates can tell replacement objects from
// the ones the command displaced. A nil result with nil error means the
// action has no predicate.
type ActionVerifier interface {
	VerifyAction(ctx context.Context, cmd models.CommandSpec, startedAt time.Time) (*models.VerificationResult, error)
}

// ContextParams narrows a context fetch to the alert's subject.
type ContextParams struct {
	// Service is the alerting service label.
	Service string

	// Namespace scopes cluster lookups. Empty means the adapter default.
	Namespace string

	// Resource optionally names a specific object (deployment, pod).
	Resource string

	// Window is the metrics lookback range. Zero means the adapter default.
	Window time.Duration

	// LogTail caps log lines per pod. Zero means the adapter default.
	LogTail int64

	// Alert carries the full alert for adapters that read raw fields.
	Alert *models.Alert
}
