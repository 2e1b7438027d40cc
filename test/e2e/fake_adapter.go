package e2e

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/adapter/kubernetes"
	"github.com/vigilops/vigil/pkg/adapter/pagerduty"
	"github.com/vigilops/vigil/pkg/models"
)

// FakeClusterAdapter stands in for the Kubernetes adapter. It serves a
// mutable cluster state as context, records every executed command, and
// answers verification from the same state — so a test can flip the state
// inside OnExecute and watch the pipeline resolve the incident.
type FakeClusterAdapter struct {
	mu       sync.Mutex
	state    map[string]any
	executed []models.CommandSpec

	// ExecuteErr fails every ExecuteAction when set.
	ExecuteErr error

	// VerifyPassed controls the verification verdict. Defaults to true.
	VerifyPassed bool

	// OnExecute, when set, runs under the lock after each recorded command.
	// Tests use it to mutate the cluster state the way a real remediation
	// would.
	OnExecute func(cmd models.CommandSpec, state map[string]any)

	// FetchErr fails FetchContext when set. The aggregator degrades to a
	// partial bundle; the finalizer reads it as "still unhealthy".
	FetchErr error
}

var (
	_ adapter.Adapter        = (*FakeClusterAdapter)(nil)
	_ adapter.ActionVerifier = (*FakeClusterAdapter)(nil)
)

// NewFakeClusterAdapter creates a fake cluster adapter with the given
// initial state. Nil state means an empty (subject gone) cluster.
func NewFakeClusterAdapter(state map[string]any) *FakeClusterAdapter {
	if state == nil {
		state = map[string]any{}
	}
	return &FakeClusterAdapter{state: state, VerifyPassed: true}
}

// UnhealthyDeploymentState is a cluster snapshot with one crash-looping pod
// behind an under-replicated deployment.
func UnhealthyDeploymentState(deployment, namespace string) map[string]any {
	return map[string]any{
		"namespace": namespace,
		"deployment": map[string]any{
			"name":        deployment,
			"desired":     3,
			"ready":       2,
			"unavailable": 1,
		},
		"pods": []any{
			map[string]any{"name": deployment + "-abc12", "phase": "Running", "ready": "1/1"},
			map[string]any{"name": deployment + "-def34", "phase": "Running", "ready": "1/1"},
			map[string]any{"name": deployment + "-ghi56", "phase": "Running", "ready": "0/1", "waiting_reason": "CrashLoopBackOff"},
		},
	}
}

// HealthyDeploymentState is the same deployment with every replica up.
func HealthyDeploymentState(deployment, namespace string) map[string]any {
	return map[string]any{
		"namespace": namespace,
		"deployment": map[string]any{
			"name":        deployment,
			"desired":     3,
			"ready":       3,
			"unavailable": 0,
		},
		"pods": []any{
			map[string]any{"name": deployment + "-abc12", "phase": "Running", "ready": "1/1"},
			map[string]any{"name": deployment + "-def34", "phase": "Running", "ready": "1/1"},
			map[string]any{"name": deployment + "-jkl78", "phase": "Running", "ready": "1/1"},
		},
	}
}

func (f *FakeClusterAdapter) Name() string { return kubernetes.Name }

func (f *FakeClusterAdapter) Connect(ctx context.Context) ([]models.ActionType, error) {
	return f.Capabilities(), nil
}

func (f *FakeClusterAdapter) Health(ctx context.Context) error { return nil }

func (f *FakeClusterAdapter) Capabilities() []models.ActionType {
	return []models.ActionType{
		models.ActionRestartPod,
		models.ActionRestartDeployment,
		models.ActionScaleDeployment,
		models.ActionPatchMemoryLimit,
		models.ActionPatchCPULimit,
		models.ActionRollbackDeployment,
		models.ActionSetImage,
		models.ActionApplyManifest,
		models.ActionDeleteNamespace,
		models.ActionDeleteNode,
		models.ActionDeletePV,
	}
}

func (f *FakeClusterAdapter) FetchContext(ctx context.Context, params adapter.ContextParams) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FetchErr != nil {
		return nil, f.FetchErr
	}
	return deepCopyMap(f.state), nil
}

func (f *FakeClusterAdapter) ExecuteAction(ctx context.Context, cmd models.CommandSpec) (*models.CommandResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.executed = append(f.executed, cmd)
	if f.ExecuteErr != nil {
		return &models.CommandResult{ExitCode: 1, Stderr: f.ExecuteErr.Error()}, f.ExecuteErr
	}
	if f.OnExecute != nil {
		f.OnExecute(cmd, f.state)
	}
	return &models.CommandResult{
		ExitCode: 0,
		Stdout:   fmt.Sprintf("%s executed", cmd.Rendered),
	}, nil
}

func (f *FakeClusterAdapter) VerifyAction(ctx context.Context, cmd models.CommandSpec, startedAt time.Time) (*models.VerificationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &models.VerificationResult{
		Predicate: fmt.Sprintf("%s settled", cmd.ActionType),
		Passed:    f.VerifyPassed,
		Observed:  map[string]any{"checked_at": time.Now().UTC().Format(time.RFC3339)},
		LatencyMs: 1,
	}, nil
}

// SetState replaces the cluster state.
func (f *FakeClusterAdapter) SetState(state map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = state
}

// Executed returns a snapshot of every command this adapter ran.
func (f *FakeClusterAdapter) Executed() []models.CommandSpec {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.CommandSpec, len(f.executed))
	copy(out, f.executed)
	return out
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch tv := v.(type) {
		case map[string]any:
			out[k] = deepCopyMap(tv)
		case []any:
			s := make([]any, len(tv))
			for i, e := range tv {
				if em, ok := e.(map[string]any); ok {
					s[i] = deepCopyMap(em)
				} else {
					s[i] = e
				}
			}
			out[k] = s
		default:
			out[k] = v
		}
	}
	return out
}

// FakePagerDutyAdapter records upstream notifications so tests can assert
// the close-the-loop call without a live incident-management API.
type FakePagerDutyAdapter struct {
	mu       sync.Mutex
	executed []models.CommandSpec
}

var _ adapter.Adapter = (*FakePagerDutyAdapter)(nil)

func NewFakePagerDutyAdapter() *FakePagerDutyAdapter { return &FakePagerDutyAdapter{} }

func (f *FakePagerDutyAdapter) Name() string { return pagerduty.Name }

func (f *FakePagerDutyAdapter) Connect(ctx context.Context) ([]models.ActionType, error) {
	return f.Capabilities(), nil
}

func (f *FakePagerDutyAdapter) Health(ctx context.Context) error { return nil }

func (f *FakePagerDutyAdapter) Capabilities() []models.ActionType {
	return []models.ActionType{
		models.ActionAcknowledgeIncident,
		models.ActionResolveIncident,
		models.ActionAddNote,
	}
}

func (f *FakePagerDutyAdapter) FetchContext(ctx context.Context, params adapter.ContextParams) (map[string]any, error) {
	return map[string]any{"incident": map[string]any{"status": "triggered"}}, nil
}

func (f *FakePagerDutyAdapter) ExecuteAction(ctx context.Context, cmd models.CommandSpec) (*models.CommandResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.executed = append(f.executed, cmd)
	return &models.CommandResult{ExitCode: 0}, nil
}

// Executed returns a snapshot of the recorded upstream calls.
func (f *FakePagerDutyAdapter) Executed() []models.CommandSpec {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.CommandSpec, len(f.executed))
	copy(out, f.executed)
	return out
}
