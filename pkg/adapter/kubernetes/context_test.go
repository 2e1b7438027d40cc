package kubernetes

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	apiresource "k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
	"k8s.io/metrics/pkg/apis/metrics/v1beta1"
	metricsfake "k8s.io/metrics/pkg/client/clientset/versioned/fake"

	"github.com/vigilops/vigil/pkg/adapter"
)

func warningEvent(ns, reason, message, kind, name string, at time.Time, count int32) *corev1.Event {
	return &corev1.Event{
		ObjectMeta:     metav1.ObjectMeta{Name: reason + "-" + name, Namespace: ns},
		Type:           corev1.EventTypeWarning,
		Reason:         reason,
		Message:        message,
		InvolvedObject: corev1.ObjectReference{Kind: kind, Name: name, Namespace: ns},
		LastTimestamp:  metav1.Time{Time: at},
		Count:          count,
	}
}

func testNode(name string, ready bool, pressures ...string) *corev1.Node {
	status := corev1.ConditionFalse
	if ready {
		status = corev1.ConditionTrue
	}
	conds := []corev1.NodeCondition{{Type: corev1.NodeReady, Status: status}}
	for _, p := range pressures {
		conds = append(conds, corev1.NodeCondition{
			Type:   corev1.NodeConditionType(p),
			Status: corev1.ConditionTrue,
		})
	}
	return &corev1.Node{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Status: corev1.NodeStatus{
			Conditions: conds,
			NodeInfo:   corev1.NodeSystemInfo{KubeletVersion: "v1.35.1"},
		},
	}
}

func testPodMetrics(ns, name, cpu, memory string) *v1beta1.PodMetrics {
	return &v1beta1.PodMetrics{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: ns},
		Containers: []v1beta1.ContainerMetrics{{
			Name: "app",
			Usage: corev1.ResourceList{
				corev1.ResourceCPU:    apiresource.MustParse(cpu),
				corev1.ResourceMemory: apiresource.MustParse(memory),
			},
		}},
	}
}

func TestFetchContextFullGather(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		testPod("prod", "payments-api-abc-ok", "payments-api-abc", 0, false),
		testPod("prod", "payments-api-abc-crash", "payments-api-abc", 7, true),
		testDeployment("prod", "payments-api", 2),
		warningEvent("prod", "BackOff", "Back-off restarting failed container",
			"Pod", "payments-api-abc-crash", time.Now().Add(-time.Minute), 12),
		testNode("node-1", true, "MemoryPressure"),
	)
	metrics := metricsfake.NewSimpleClientset(
		testPodMetrics("prod", "payments-api-abc-ok", "250m", "128Mi"),
		testPodMetrics("prod", "other-api-xyz", "100m", "64Mi"),
	)
	a := NewWithClients(testConfig(), testAutonomyStore(false), clientset, metrics)

	data, err := a.FetchContext(context.Background(), adapter.ContextParams{
		Service:   "payments-api",
		Namespace: "prod",
	})
	require.NoError(t, err)

	assert.Equal(t, "prod", data["namespace"])

	pods, ok := data["pods"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, pods, 2)
	var crash map[string]any
	for _, p := range pods {
		if p["name"] == "payments-api-abc-crash" {
			crash = p
		}
	}
	require.NotNil(t, crash)
	assert.Equal(t, "0/1", crash["ready"])
	assert.Equal(t, int32(7), crash["restarts"])
	assert.Equal(t, "CrashLoopBackOff", crash["waiting_reason"])
	assert.Equal(t, "node-1", crash["node"])

	events, ok := data["events"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, events, 1)
	assert.Equal(t, "BackOff", events[0]["reason"])
	assert.Equal(t, "pod/payments-api-abc-crash", events[0]["object"])
	assert.Equal(t, int32(12), events[0]["count"])

	deployment, ok := data["deployment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int32(2), deployment["desired"])
	assert.Equal(t, int32(2), deployment["ready"])
	assert.Equal(t, "3", deployment["revision"])
	containers, ok := deployment["containers"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, containers, 1)
	assert.Equal(t, "registry.local/payments-api:v3", containers[0]["image"])

	// The crash-looping pod is the one whose logs get pulled. The fake
	// clientset serves a fixed payload for log streams.
	assert.Equal(t, "fake logs", data["logs"])
	assert.Equal(t, "payments-api-abc-crash", data["logs_pod"])

	nodes, ok := data["nodes"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, nodes, 1)
	assert.Equal(t, true, nodes[0]["ready"])
	assert.Equal(t, []string{"MemoryPressure"}, nodes[0]["pressure"])
	assert.Equal(t, "v1.35.1", nodes[0]["kubelet"])

	usage, ok := data["resource_usage"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, usage, 1)
	assert.Equal(t, "payments-api-abc-ok", usage[0]["pod"])
	assert.Equal(t, "250m", usage[0]["cpu"])
	assert.Equal(t, "128Mi", usage[0]["memory"])
}

func TestFetchContextNotConnected(t *testing.T) {
	a, err := New(testConfig(), testAutonomyStore(false))
	require.NoError(t, err)

	_, err = a.FetchContext(context.Background(), adapter.ContextParams{Service: "payments-api"})
	assert.ErrorIs(t, err, adapter.ErrNotConnected)
}

func TestFetchContextPartialFailure(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		testDeployment("prod", "payments-api", 2),
		testNode("node-1", true),
	)
	clientset.PrependReactor("list", "pods", func(action k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, errors.New("api timeout")
	})
	a := NewWithClients(testConfig(), testAutonomyStore(false), clientset, nil)

	data, err := a.FetchContext(context.Background(), adapter.ContextParams{
		Service:   "payments-api",
		Namespace: "prod",
	})

	// Partial data with a non-nil error: the reachable sub-fetches still
	// land in the map.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pods: api timeout")
	require.NotNil(t, data)
	assert.Contains(t, data, "deployment")
	assert.Contains(t, data, "nodes")
	assert.NotContains(t, data, "pods")
	assert.NotContains(t, data, "logs")
}

func TestServicePodsLabelFallbackToPrefix(t *testing.T) {
	// Pods carry no app=checkout label, so the label pass comes up empty
	// and the name-prefix pass has to find them.
	clientset := fake.NewSimpleClientset(
		testPod("prod", "checkout-7f9b5-abc", "checkout-7f9b5", 0, false),
		testPod("prod", "unrelated-xyz", "unrelated-1", 0, false),
	)
	a := NewWithClients(testConfig(), testAutonomyStore(false), clientset, nil)

	pods, err := a.servicePods(context.Background(), "prod", "checkout")
	require.NoError(t, err)
	require.Len(t, pods, 1)
	assert.Equal(t, "checkout-7f9b5-abc", pods[0].Name)
}

func TestServicePodsPrefersLabelMatch(t *testing.T) {
	labeled := testPod("prod", "checkout-7f9b5-abc", "checkout-7f9b5", 0, false)
	labeled.Labels = map[string]string{"app": "checkout"}
	// Same prefix, no label: must not be picked up once the label
	// selector matched something.
	stray := testPod("prod", "checkout-old-x", "checkout-old", 0, false)
	stray.Labels = nil

	clientset := fake.NewSimpleClientset(labeled, stray)
	a := NewWithClients(testConfig(), testAutonomyStore(false), clientset, nil)

	pods, err := a.servicePods(context.Background(), "prod", "checkout")
	require.NoError(t, err)
	require.Len(t, pods, 1)
	assert.Equal(t, "checkout-7f9b5-abc", pods[0].Name)
}

func TestWarningEventsNewestFirst(t *testing.T) {
	now := time.Now()
	clientset := fake.NewSimpleClientset(
		warningEvent("prod", "Unhealthy", "Readiness probe failed", "Pod", "p1", now.Add(-30*time.Minute), 3),
		warningEvent("prod", "BackOff", "Back-off restarting failed container", "Pod", "p2", now.Add(-time.Minute), 9),
		warningEvent("prod", "FailedScheduling", "0/3 nodes available", "Pod", "p3", now.Add(-10*time.Minute), 1),
	)
	a := NewWithClients(testConfig(), testAutonomyStore(false), clientset, nil)

	events, err := a.warningEvents(context.Background(), "prod")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "BackOff", events[0]["reason"])
	assert.Equal(t, "FailedScheduling", events[1]["reason"])
	assert.Equal(t, "Unhealthy", events[2]["reason"])
}

func TestPodSummariesCapped(t *testing.T) {
	pods := make([]corev1.Pod, 25)
	for i := range pods {
		pods[i] = *testPod("prod", "web-"+strconv.Itoa(i), "web-rs", 0, false)
	}

	assert.Len(t, podSummaries(pods), maxPodSummaries)
}

func TestWorstPodSelection(t *testing.T) {
	crash := testPod("prod", "crash", "rs", 0, true)
	busy := testPod("prod", "busy", "rs", 50, false)
	pending := testPod("prod", "pending", "rs", 0, false)
	pending.Status.Phase = corev1.PodPending
	calm := testPod("prod", "calm", "rs", 0, false)

	tests := []struct {
		name string
		pods []corev1.Pod
		want string
	}{
		{
			name: "crashloop beats restart count",
			pods: []corev1.Pod{*busy, *crash},
			want: "crash",
		},
		{
			name: "restart count beats phase",
			pods: []corev1.Pod{*pending, *busy},
			want: "busy",
		},
		{
			name: "non-running beats running",
			pods: []corev1.Pod{*calm, *pending},
			want: "pending",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worst := worstPod(tt.pods)
			require.NotNil(t, worst)
			assert.Equal(t, tt.want, worst.Name)
		})
	}

	assert.Nil(t, worstPod(nil))
}
