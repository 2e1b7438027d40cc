package kubernetes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/models"
)

// canceledContext gives pollUntil exactly one immediate check: the first
// pass still runs, then the closed Done channel ends the wait instead of
// the 90s/120s verification window.
func canceledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestVerifyScaleDeploymentPass(t *testing.T) {
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 4))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.VerifyAction(context.Background(), executeCmd(models.ActionScaleDeployment, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"replicas":   "4",
	}), time.Now())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "ready_replicas_match", result.Predicate)
	assert.True(t, result.Passed)
	assert.Equal(t, int32(4), result.Observed["ready"])
	assert.Equal(t, 4, result.Observed["target"])
	assert.GreaterOrEqual(t, result.LatencyMs, int64(0))
}

func TestVerifyScaleDeploymentFail(t *testing.T) {
	// Only 2 of the 4 requested replicas ever become ready.
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 2))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.VerifyAction(canceledContext(), executeCmd(models.ActionScaleDeployment, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"replicas":   "4",
	}), time.Now())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Passed)
	assert.Equal(t, int32(2), result.Observed["ready"])
	assert.Equal(t, 4, result.Observed["target"])
}

func TestVerifyReplacementPodPass(t *testing.T) {
	startedAt := time.Now().Add(-time.Minute)

	replacement := testPod("prod", "payments-api-abc-new", "payments-api-abc", 0, false)
	replacement.CreationTimestamp = metav1.Time{Time: time.Now()}

	clientset := fake.NewSimpleClientset(
		testPod("prod", "payments-api-abc-old", "payments-api-abc", 3, false),
		replacement,
	)
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.VerifyAction(context.Background(), executeCmd(models.ActionRestartPod, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
	}), startedAt)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "replacement_pod_running", result.Predicate)
	assert.True(t, result.Passed)
	assert.Equal(t, "payments-api-abc-new", result.Observed["pod"])
	assert.Equal(t, "Running", result.Observed["phase"])
	assert.NotEmpty(t, result.Observed["created_at"])
}

func TestVerifyReplacementPodByNamePrefix(t *testing.T) {
	startedAt := time.Now().Add(-time.Minute)

	replacement := testPod("prod", "payments-api-abc-new", "payments-api-abc", 0, false)
	replacement.CreationTimestamp = metav1.Time{Time: time.Now()}
	unrelated := testPod("prod", "other-api-xyz-fresh", "other-api-xyz", 0, false)
	unrelated.CreationTimestamp = metav1.Time{Time: time.Now()}

	clientset := fake.NewSimpleClientset(replacement, unrelated)
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	// Only the pod name is known; the replacement shares its ReplicaSet
	// prefix.
	result, err := a.VerifyAction(context.Background(), executeCmd(models.ActionRestartPod, map[string]string{
		"pod":       "payments-api-abc-old",
		"namespace": "prod",
	}), startedAt)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Passed)
	assert.Equal(t, "payments-api-abc-new", result.Observed["pod"])
}

func TestVerifyReplacementPodFailWhenOnlyOldPods(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		testPod("prod", "payments-api-abc-a", "payments-api-abc", 0, false),
		testPod("prod", "payments-api-abc-b", "payments-api-abc", 0, false),
	)
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	// Both pods predate the restart, so nothing qualifies as a
	// replacement.
	result, err := a.VerifyAction(canceledContext(), executeCmd(models.ActionRestartPod, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
	}), time.Now())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Passed)
	assert.Equal(t, 2, result.Observed["pods_checked"])
}

func TestVerifyLimitPass(t *testing.T) {
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 2))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.VerifyAction(context.Background(), executeCmd(models.ActionPatchMemoryLimit, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"value":      "512Mi",
	}), time.Now())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "limit_applied", result.Predicate)
	assert.True(t, result.Passed)
	assert.Equal(t, "app", result.Observed["container"])
	assert.Equal(t, "512Mi", result.Observed["limit"])
}

func TestVerifyLimitMismatch(t *testing.T) {
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 2))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.VerifyAction(context.Background(), executeCmd(models.ActionPatchMemoryLimit, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"value":      "1Gi",
	}), time.Now())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Passed)
	assert.Equal(t, "512Mi", result.Observed["limit"])
	assert.Equal(t, "1Gi", result.Observed["wanted"])
}

func TestVerifyDeploymentHealthyPass(t *testing.T) {
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 2))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.VerifyAction(context.Background(), executeCmd(models.ActionRestartDeployment, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
	}), time.Now())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "deployment_healthy", result.Predicate)
	assert.True(t, result.Passed)
	assert.Equal(t, int32(2), result.Observed["desired"])
	assert.Equal(t, int32(2), result.Observed["ready"])
}

func TestVerifyDeploymentHealthyFail(t *testing.T) {
	deploy := testDeployment("prod", "payments-api", 2)
	deploy.Status.UnavailableReplicas = 1

	clientset := fake.NewSimpleClientset(deploy)
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.VerifyAction(canceledContext(), executeCmd(models.ActionRollbackDeployment, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
	}), time.Now())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Passed)
	assert.Equal(t, int32(1), result.Observed["unavailable"])
}

func TestVerifyNoPredicateForUnknownAction(t *testing.T) {
	a := NewWithClients(testConfig(), testAutonomyStore(true), fake.NewSimpleClientset(), nil)

	result, err := a.VerifyAction(context.Background(), executeCmd(models.ActionAcknowledgeIncident, nil), time.Now())
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestVerifyNotConnected(t *testing.T) {
	a, err := New(testConfig(), testAutonomyStore(true))
	require.NoError(t, err)

	_, err = a.VerifyAction(context.Background(), executeCmd(models.ActionScaleDeployment, nil), time.Now())
	assert.ErrorIs(t, err, adapter.ErrNotConnected)
}

func TestReplicaSetPrefix(t *testing.T) {
	tests := []struct {
		podName string
		want    string
	}{
		{"payments-api-7f9b5-abc12", "payments-api-7f9b5"},
		{"web-0", "web"},
		{"single", "single"},
		{"-leading", "-leading"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, replicaSetPrefix(tt.podName), "pod %q", tt.podName)
	}
}
