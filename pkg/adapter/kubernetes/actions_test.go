package kubernetes

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	apiresource "k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/models"
)

func testPod(ns, name, rsName string, restarts int32, crashLooping bool) *corev1.Pod {
	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:              name,
			Namespace:         ns,
			CreationTimestamp: metav1.Time{Time: time.Now().Add(-time.Hour)},
			Labels:            map[string]string{"app": "payments-api"},
		},
		Spec: corev1.PodSpec{
			NodeName:   "node-1",
			Containers: []corev1.Container{{Name: "app"}},
		},
		Status: corev1.PodStatus{
			Phase: corev1.PodRunning,
			ContainerStatuses: []corev1.ContainerStatus{
				{Name: "app", Ready: !crashLooping, RestartCount: restarts},
			},
		},
	}
	if rsName != "" {
		pod.OwnerReferences = []metav1.OwnerReference{{Kind: "ReplicaSet", Name: rsName}}
	}
	if crashLooping {
		pod.Status.ContainerStatuses[0].State = corev1.ContainerState{
			Waiting: &corev1.ContainerStateWaiting{Reason: "CrashLoopBackOff"},
		}
	}
	return pod
}

func testDeployment(ns, name string, replicas int32) *appsv1.Deployment {
	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:        name,
			Namespace:   ns,
			Annotations: map[string]string{revisionAnnotation: "3"},
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: map[string]string{"app": name}},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{{
						Name:  "app",
						Image: "registry.local/payments-api:v3",
						Resources: corev1.ResourceRequirements{
							Requests: corev1.ResourceList{
								corev1.ResourceMemory: apiresource.MustParse("256Mi"),
							},
							Limits: corev1.ResourceList{
								corev1.ResourceMemory: apiresource.MustParse("512Mi"),
							},
						},
					}},
				},
			},
		},
		Status: appsv1.DeploymentStatus{
			ReadyReplicas:   replicas,
			UpdatedReplicas: replicas,
		},
	}
}

func testReplicaSet(ns, name, owner string, revision, readyReplicas int32, image string) *appsv1.ReplicaSet {
	return &appsv1.ReplicaSet{
		ObjectMeta: metav1.ObjectMeta{
			Name:        name,
			Namespace:   ns,
			Annotations: map[string]string{revisionAnnotation: strconv.Itoa(int(revision))},
			OwnerReferences: []metav1.OwnerReference{
				{Kind: "Deployment", Name: owner},
			},
		},
		Spec: appsv1.ReplicaSetSpec{
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: map[string]string{"app": owner}},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{{Name: "app", Image: image}},
				},
			},
		},
		Status: appsv1.ReplicaSetStatus{ReadyReplicas: readyReplicas},
	}
}

func executeCmd(action models.ActionType, args map[string]string) models.CommandSpec {
	return models.CommandSpec{
		TargetSystem: Name,
		ActionType:   action,
		Args:         args,
	}
}

func TestExecuteActionRefusesForbiddenVocabulary(t *testing.T) {
	a := NewWithClients(testConfig(), testAutonomyStore(true), fake.NewSimpleClientset(), nil)

	for _, action := range []models.ActionType{
		models.ActionDeleteNamespace,
		models.ActionDeleteNode,
		models.ActionDeletePV,
		models.ActionApplyManifest,
	} {
		t.Run(string(action), func(t *testing.T) {
			_, err := a.ExecuteAction(context.Background(), executeCmd(action, map[string]string{"namespace": "prod"}))
			assert.ErrorIs(t, err, adapter.ErrForbidden)
		})
	}
}

func TestExecuteActionDestructiveGate(t *testing.T) {
	clientset := fake.NewSimpleClientset(testPod("prod", "payments-api-abc-x1", "payments-api-abc", 0, false))
	a := NewWithClients(testConfig(), testAutonomyStore(false), clientset, nil)

	_, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionRestartPod, map[string]string{
		"pod":       "payments-api-abc-x1",
		"namespace": "prod",
	}))

	require.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Contains(t, err.Error(), "destructive operations are disabled")

	// The pod must still be there.
	_, getErr := clientset.CoreV1().Pods("prod").Get(context.Background(), "payments-api-abc-x1", metav1.GetOptions{})
	assert.NoError(t, getErr)
}

func TestExecuteActionHotReloadedDestructiveFlag(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		testPod("prod", "payments-api-abc-x1", "payments-api-abc", 0, false),
	)
	store := testAutonomyStore(false)
	a := NewWithClients(testConfig(), store, clientset, nil)

	cmd := executeCmd(models.ActionRestartPod, map[string]string{"pod": "payments-api-abc-x1", "namespace": "prod"})

	_, err := a.ExecuteAction(context.Background(), cmd)
	require.ErrorIs(t, err, adapter.ErrForbidden)

	next := *store.Snapshot()
	next.DestructiveEnabled = true
	store.Update(&next)

	_, err = a.ExecuteAction(context.Background(), cmd)
	assert.NoError(t, err)
}

func TestExecuteActionUnsupported(t *testing.T) {
	a := NewWithClients(testConfig(), testAutonomyStore(true), fake.NewSimpleClientset(), nil)

	_, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionAcknowledgeIncident, nil))
	assert.ErrorIs(t, err, adapter.ErrUnsupportedAction)
}

func TestExecuteActionNotConnected(t *testing.T) {
	a, err := New(testConfig(), testAutonomyStore(true))
	require.NoError(t, err)

	_, err = a.ExecuteAction(context.Background(), executeCmd(models.ActionRestartPod, nil))
	assert.ErrorIs(t, err, adapter.ErrNotConnected)
}

func TestRestartPodByName(t *testing.T) {
	clientset := fake.NewSimpleClientset(testPod("prod", "payments-api-abc-x1", "payments-api-abc", 2, false))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionRestartPod, map[string]string{
		"pod":       "payments-api-abc-x1",
		"namespace": "prod",
	}))
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "deleted pod prod/payments-api-abc-x1")

	_, getErr := clientset.CoreV1().Pods("prod").Get(context.Background(), "payments-api-abc-x1", metav1.GetOptions{})
	assert.True(t, apierrors.IsNotFound(getErr))
}

func TestRestartPodPicksUnhealthiest(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		testPod("prod", "payments-api-abc-ok", "payments-api-abc", 0, false),
		testPod("prod", "payments-api-abc-crash", "payments-api-abc", 7, true),
		testPod("prod", "payments-api-abc-meh", "payments-api-abc", 2, false),
	)
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionRestartPod, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
	}))
	require.NoError(t, err)
	assert.Equal(t, "payments-api-abc-crash", result.Detail["pod"])

	_, getErr := clientset.CoreV1().Pods("prod").Get(context.Background(), "payments-api-abc-crash", metav1.GetOptions{})
	assert.True(t, apierrors.IsNotFound(getErr))

	// The healthy pods survive.
	_, getErr = clientset.CoreV1().Pods("prod").Get(context.Background(), "payments-api-abc-ok", metav1.GetOptions{})
	assert.NoError(t, getErr)
}

func TestRestartPodRefusesLastPod(t *testing.T) {
	clientset := fake.NewSimpleClientset(testPod("prod", "payments-api-abc-x1", "payments-api-abc", 9, true))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	_, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionRestartPod, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to delete")
}

func TestRestartPodRequiresTarget(t *testing.T) {
	a := NewWithClients(testConfig(), testAutonomyStore(true), fake.NewSimpleClientset(), nil)

	_, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionRestartPod, map[string]string{"namespace": "prod"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires 'pod' or 'deployment'")
}

func TestScaleDeployment(t *testing.T) {
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 2))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionScaleDeployment, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"replicas":   "4",
	}))
	require.NoError(t, err)
	assert.Equal(t, int32(2), result.Detail["previous_replicas"])
	assert.Equal(t, int32(4), result.Detail["replicas"])

	deploy, err := clientset.AppsV1().Deployments("prod").Get(context.Background(), "payments-api", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, int32(4), *deploy.Spec.Replicas)
}

func TestScaleDeploymentRejectsZero(t *testing.T) {
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 2))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	_, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionScaleDeployment, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"replicas":   "0",
	}))
	require.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Contains(t, err.Error(), "scaling to 0")
}

func TestScaleDeploymentInvalidReplicas(t *testing.T) {
	a := NewWithClients(testConfig(), testAutonomyStore(true), fake.NewSimpleClientset(), nil)

	for _, bad := range []string{"", "banana", "-3"} {
		_, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionScaleDeployment, map[string]string{
			"deployment": "payments-api",
			"namespace":  "prod",
			"replicas":   bad,
		}))
		assert.Error(t, err, "replicas=%q", bad)
	}
}

func TestRestartDeploymentSetsAnnotation(t *testing.T) {
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 2))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionRestartDeployment, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
	}))
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "rolling restart triggered")

	deploy, err := clientset.AppsV1().Deployments("prod").Get(context.Background(), "payments-api", metav1.GetOptions{})
	require.NoError(t, err)

	stamp := deploy.Spec.Template.Annotations[restartedAnnotation]
	require.NotEmpty(t, stamp)
	_, parseErr := time.Parse(time.RFC3339, stamp)
	assert.NoError(t, parseErr)
}

func TestPatchMemoryLimit(t *testing.T) {
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 2))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionPatchMemoryLimit, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"value":      "1Gi",
	}))
	require.NoError(t, err)
	assert.Equal(t, "512Mi", result.Detail["previous"])
	assert.Equal(t, "1Gi", result.Detail["value"])

	deploy, err := clientset.AppsV1().Deployments("prod").Get(context.Background(), "payments-api", metav1.GetOptions{})
	require.NoError(t, err)

	limit := deploy.Spec.Template.Spec.Containers[0].Resources.Limits[corev1.ResourceMemory]
	assert.Equal(t, "1Gi", limit.String())
}

func TestPatchMemoryLimitBelowRequest(t *testing.T) {
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 2))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	// Request is 256Mi; a 128Mi limit would be rejected by the kubelet
	// anyway, so it is refused up front.
	_, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionPatchMemoryLimit, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"value":      "128Mi",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be less than request")

	// Unchanged on refusal.
	deploy, err := clientset.AppsV1().Deployments("prod").Get(context.Background(), "payments-api", metav1.GetOptions{})
	require.NoError(t, err)
	limit := deploy.Spec.Template.Spec.Containers[0].Resources.Limits[corev1.ResourceMemory]
	assert.Equal(t, "512Mi", limit.String())
}

func TestPatchCPULimit(t *testing.T) {
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 2))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionPatchCPULimit, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"value":      "500m",
	}))
	require.NoError(t, err)
	assert.Equal(t, "500m", result.Detail["value"])

	deploy, err := clientset.AppsV1().Deployments("prod").Get(context.Background(), "payments-api", metav1.GetOptions{})
	require.NoError(t, err)
	limit := deploy.Spec.Template.Spec.Containers[0].Resources.Limits[corev1.ResourceCPU]
	assert.Equal(t, "500m", limit.String())
}

func TestPatchLimitUnknownContainer(t *testing.T) {
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 2))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	_, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionPatchMemoryLimit, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"container":  "sidecar",
		"value":      "1Gi",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `container "sidecar" not found`)
}

func TestRollbackDeploymentToPrevious(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		testDeployment("prod", "payments-api", 2),
		testReplicaSet("prod", "payments-api-ccc", "payments-api", 3, 0, "registry.local/payments-api:v3"),
		testReplicaSet("prod", "payments-api-bbb", "payments-api", 2, 2, "registry.local/payments-api:v2"),
		testReplicaSet("prod", "payments-api-aaa", "payments-api", 1, 0, "registry.local/payments-api:v1"),
	)
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionRollbackDeployment, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Detail["from_revision"])
	assert.Equal(t, 2, result.Detail["to_revision"])

	deploy, err := clientset.AppsV1().Deployments("prod").Get(context.Background(), "payments-api", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "registry.local/payments-api:v2", deploy.Spec.Template.Spec.Containers[0].Image)
}

func TestRollbackDeploymentToSpecificRevision(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		testDeployment("prod", "payments-api", 2),
		testReplicaSet("prod", "payments-api-ccc", "payments-api", 3, 0, "registry.local/payments-api:v3"),
		testReplicaSet("prod", "payments-api-bbb", "payments-api", 2, 0, "registry.local/payments-api:v2"),
		testReplicaSet("prod", "payments-api-aaa", "payments-api", 1, 0, "registry.local/payments-api:v1"),
	)
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionRollbackDeployment, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"revision":   "1",
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Detail["to_revision"])

	deploy, err := clientset.AppsV1().Deployments("prod").Get(context.Background(), "payments-api", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "registry.local/payments-api:v1", deploy.Spec.Template.Spec.Containers[0].Image)
}

func TestRollbackDeploymentToHealthyRevision(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		testDeployment("prod", "payments-api", 2),
		testReplicaSet("prod", "payments-api-ccc", "payments-api", 3, 0, "registry.local/payments-api:v3"),
		testReplicaSet("prod", "payments-api-bbb", "payments-api", 2, 0, "registry.local/payments-api:v2"),
		testReplicaSet("prod", "payments-api-aaa", "payments-api", 1, 2, "registry.local/payments-api:v1"),
	)
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	// Revision 2 has no ready replicas; revision 1 does.
	result, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionRollbackDeployment, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"revision":   "healthy",
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Detail["to_revision"])
}

func TestRollbackDeploymentNeedsTwoRevisions(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		testDeployment("prod", "payments-api", 2),
		testReplicaSet("prod", "payments-api-ccc", "payments-api", 3, 2, "registry.local/payments-api:v3"),
	)
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	_, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionRollbackDeployment, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fewer than 2 revisions")
}

func TestRollbackDeploymentUnknownRevision(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		testDeployment("prod", "payments-api", 2),
		testReplicaSet("prod", "payments-api-ccc", "payments-api", 3, 0, "registry.local/payments-api:v3"),
		testReplicaSet("prod", "payments-api-bbb", "payments-api", 2, 0, "registry.local/payments-api:v2"),
	)
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	_, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionRollbackDeployment, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"revision":   "9",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revision 9 not found")
}

func TestSetImage(t *testing.T) {
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 2))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionSetImage, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"image":      "registry.local/payments-api:v4",
	}))
	require.NoError(t, err)
	assert.Equal(t, "registry.local/payments-api:v3", result.Detail["previous_image"])

	deploy, err := clientset.AppsV1().Deployments("prod").Get(context.Background(), "payments-api", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "registry.local/payments-api:v4", deploy.Spec.Template.Spec.Containers[0].Image)
}

func TestSetImageRequiresImage(t *testing.T) {
	a := NewWithClients(testConfig(), testAutonomyStore(true), fake.NewSimpleClientset(), nil)

	_, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionSetImage, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires 'image'")
}

func TestExecuteActionRecordsDuration(t *testing.T) {
	clientset := fake.NewSimpleClientset(testDeployment("prod", "payments-api", 2))
	a := NewWithClients(testConfig(), testAutonomyStore(true), clientset, nil)

	result, err := a.ExecuteAction(context.Background(), executeCmd(models.ActionScaleDeployment, map[string]string{
		"deployment": "payments-api",
		"namespace":  "prod",
		"replicas":   "3",
	}))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.DurationMs, int64(0))
}
