package kubernetes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/vigilops/vigil/pkg/adapter"
)

const (
	maxPodSummaries   = 20
	maxEventSummaries = 20
)

// FetchContext gathers the diagnostic picture for an alerting service:
// pod health, recent warning events, deployment status, logs from the worst
// pod, node readiness, and live resource usage when a metrics server is
// present. Sub-fetch failures are collected, not fatal, so a degraded
// cluster still yields whatever context is reachable.
func (a *Adapter) FetchContext(ctx context.Context, params adapter.ContextParams) (map[string]any, error) {
	clientset, metrics := a.clients()
	if clientset == nil {
		return nil, adapter.ErrNotConnected
	}

	ns := a.namespaceOr(params.Namespace)
	data := map[string]any{"namespace": ns}
	var errs []error

	pods, err := a.servicePods(ctx, ns, params.Service)
	if err != nil {
		errs = append(errs, fmt.Errorf("pods: %w", err))
	} else {
		data["pods"] = podSummaries(pods)
	}

	if events, err := a.warningEvents(ctx, ns); err != nil {
		errs = append(errs, fmt.Errorf("events: %w", err))
	} else {
		data["events"] = events
	}

	target := params.Resource
	if target == "" {
		target = params.Service
	}
	if target != "" {
		if summary, err := a.deploymentSummary(ctx, ns, target); err != nil {
			errs = append(errs, fmt.Errorf("deployment: %w", err))
		} else {
			data["deployment"] = summary
		}
	}

	if worst := worstPod(pods); worst != nil {
		logs, err := a.podLogs(ctx, worst, a.logTail(params.LogTail))
		if err != nil {
			errs = append(errs, fmt.Errorf("logs: %w", err))
		} else {
			data["logs"] = logs
			data["logs_pod"] = worst.Name
		}
	}

	if nodes, err := a.nodeSummaries(ctx); err != nil {
		errs = append(errs, fmt.Errorf("nodes: %w", err))
	} else {
		data["nodes"] = nodes
	}

	if metrics != nil {
		if usage, err := a.podUsage(ctx, ns, params.Service); err != nil {
			errs = append(errs, fmt.Errorf("metrics: %w", err))
		} else {
			data["resource_usage"] = usage
		}
	}

	return data, errors.Join(errs...)
}

// servicePods finds the pods behind a service label, falling back to a
// name-prefix match when the label convention does not hold. An empty
// service returns the namespace's pods unfiltered.
func (a *Adapter) servicePods(ctx context.Context, ns, service string) ([]corev1.Pod, error) {
	clientset, _ := a.clients()

	if service != "" {
		list, err := clientset.CoreV1().Pods(ns).List(ctx, metav1.ListOptions{
			LabelSelector: "app=" + service,
		})
		if err != nil {
			return nil, err
		}
		if len(list.Items) > 0 {
			return list.Items, nil
		}
	}

	list, err := clientset.CoreV1().Pods(ns).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	if service == "" {
		return list.Items, nil
	}

	var matched []corev1.Pod
	for _, pod := range list.Items {
		if strings.HasPrefix(pod.Name, service+"-") || pod.Name == service {
			matched = append(matched, pod)
		}
	}
	return matched, nil
}

func podSummaries(pods []corev1.Pod) []map[string]any {
	out := make([]map[string]any, 0, len(pods))
	for i := range pods {
		if len(out) == maxPodSummaries {
			break
		}
		pod := &pods[i]

		ready := 0
		for _, cs := range pod.Status.ContainerStatuses {
			if cs.Ready {
				ready++
			}
		}

		summary := map[string]any{
			"name":     pod.Name,
			"phase":    string(pod.Status.Phase),
			"ready":    fmt.Sprintf("%d/%d", ready, len(pod.Spec.Containers)),
			"restarts": podRestartCount(pod),
			"node":     pod.Spec.NodeName,
			"age":      time.Since(pod.CreationTimestamp.Time).Round(time.Second).String(),
		}
		if reason := waitingReason(pod); reason != "" {
			summary["waiting_reason"] = reason
		}
		out = append(out, summary)
	}
	return out
}

// warningEvents returns the most recent Warning events in the namespace.
func (a *Adapter) warningEvents(ctx context.Context, ns string) ([]map[string]any, error) {
	clientset, _ := a.clients()

	list, err := clientset.CoreV1().Events(ns).List(ctx, metav1.ListOptions{
		FieldSelector: "type=Warning",
	})
	if err != nil {
		return nil, err
	}

	events := list.Items
	sort.Slice(events, func(i, j int) bool {
		return eventTime(&events[i]).After(eventTime(&events[j]))
	})

	out := make([]map[string]any, 0, maxEventSummaries)
	for i := range events {
		if len(out) == maxEventSummaries {
			break
		}
		ev := &events[i]
		out = append(out, map[string]any{
			"reason":    ev.Reason,
			"message":   ev.Message,
			"object":    fmt.Sprintf("%s/%s", strings.ToLower(ev.InvolvedObject.Kind), ev.InvolvedObject.Name),
			"count":     ev.Count,
			"last_seen": eventTime(ev).Format(time.RFC3339),
		})
	}
	return out, nil
}

func eventTime(ev *corev1.Event) time.Time {
	if !ev.LastTimestamp.IsZero() {
		return ev.LastTimestamp.Time
	}
	return ev.CreationTimestamp.Time
}

// deploymentSummary describes the target deployment: replica health,
// images, per-container resources, and any non-True conditions.
func (a *Adapter) deploymentSummary(ctx context.Context, ns, name string) (map[string]any, error) {
	clientset, _ := a.clients()

	deploy, err := clientset.AppsV1().Deployments(ns).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	desired := int32(1)
	if deploy.Spec.Replicas != nil {
		desired = *deploy.Spec.Replicas
	}

	containers := make([]map[string]any, 0, len(deploy.Spec.Template.Spec.Containers))
	for _, c := range deploy.Spec.Template.Spec.Containers {
		entry := map[string]any{
			"name":  c.Name,
			"image": c.Image,
		}
		if len(c.Resources.Limits) > 0 {
			entry["limits"] = fmt.Sprintf("cpu=%s memory=%s",
				c.Resources.Limits.Cpu().String(), c.Resources.Limits.Memory().String())
		}
		if len(c.Resources.Requests) > 0 {
			entry["requests"] = fmt.Sprintf("cpu=%s memory=%s",
				c.Resources.Requests.Cpu().String(), c.Resources.Requests.Memory().String())
		}
		containers = append(containers, entry)
	}

	var conditions []string
	for _, cond := range deploy.Status.Conditions {
		if cond.Status != corev1.ConditionTrue {
			conditions = append(conditions, fmt.Sprintf("%s=%s (%s)", cond.Type, cond.Status, cond.Reason))
		}
	}

	summary := map[string]any{
		"name":        deploy.Name,
		"desired":     desired,
		"ready":       deploy.Status.ReadyReplicas,
		"updated":     deploy.Status.UpdatedReplicas,
		"unavailable": deploy.Status.UnavailableReplicas,
		"containers":  containers,
	}
	if len(conditions) > 0 {
		summary["conditions"] = conditions
	}
	if rev, ok := deploy.Annotations[revisionAnnotation]; ok {
		summary["revision"] = rev
	}
	return summary, nil
}

// podLogs tails the pod's logs. A crash-looping container's previous
// instance usually holds the actual failure, so Previous is set then.
func (a *Adapter) podLogs(ctx context.Context, pod *corev1.Pod, tailLines int64) (string, error) {
	clientset, _ := a.clients()

	opts := &corev1.PodLogOptions{
		TailLines: &tailLines,
		Previous:  isPodCrashLooping(pod),
	}

	stream, err := clientset.CoreV1().Pods(pod.Namespace).GetLogs(pod.Name, opts).Stream(ctx)
	if err != nil {
		if !opts.Previous {
			return "", err
		}
		// The previous container's logs can be gone already; fall back
		// to the current instance.
		opts.Previous = false
		stream, err = clientset.CoreV1().Pods(pod.Namespace).GetLogs(pod.Name, opts).Stream(ctx)
		if err != nil {
			return "", err
		}
	}
	defer stream.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(stream); err != nil {
		return "", fmt.Errorf("read log stream: %w", err)
	}
	return buf.String(), nil
}

func (a *Adapter) nodeSummaries(ctx context.Context) ([]map[string]any, error) {
	clientset, _ := a.clients()

	list, err := clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(list.Items))
	for i := range list.Items {
		node := &list.Items[i]

		ready := false
		var pressures []string
		for _, cond := range node.Status.Conditions {
			switch {
			case cond.Type == corev1.NodeReady:
				ready = cond.Status == corev1.ConditionTrue
			case cond.Status == corev1.ConditionTrue:
				pressures = append(pressures, string(cond.Type))
			}
		}

		summary := map[string]any{
			"name":    node.Name,
			"ready":   ready,
			"kubelet": node.Status.NodeInfo.KubeletVersion,
		}
		if node.Spec.Unschedulable {
			summary["unschedulable"] = true
		}
		if len(pressures) > 0 {
			summary["pressure"] = pressures
		}
		out = append(out, summary)
	}
	return out, nil
}

// podUsage reads live cpu/memory from the metrics server for the service's
// pods.
func (a *Adapter) podUsage(ctx context.Context, ns, service string) ([]map[string]any, error) {
	_, metrics := a.clients()

	list, err := metrics.MetricsV1beta1().PodMetricses(ns).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(list.Items))
	for _, pm := range list.Items {
		if service != "" && !strings.HasPrefix(pm.Name, service+"-") && pm.Name != service {
			continue
		}
		var cpuMilli, memMi float64
		for _, c := range pm.Containers {
			cpuMilli += c.Usage.Cpu().AsApproximateFloat64() * 1000
			memMi += float64(c.Usage.Memory().Value()) / (1024 * 1024)
		}
		out = append(out, map[string]any{
			"pod":    pm.Name,
			"cpu":    fmt.Sprintf("%.0fm", cpuMilli),
			"memory": fmt.Sprintf("%.0fMi", memMi),
		})
	}
	return out, nil
}

// worstPod picks the pod most worth reading logs from: crash-looping pods
// first, then by restart count, then non-Running phases.
func worstPod(pods []corev1.Pod) *corev1.Pod {
	if len(pods) == 0 {
		return nil
	}
	worst := &pods[0]
	for i := 1; i < len(pods); i++ {
		if podUnhealthier(&pods[i], worst) {
			worst = &pods[i]
		}
	}
	return worst
}

func podUnhealthier(a, b *corev1.Pod) bool {
	aCrash, bCrash := isPodCrashLooping(a), isPodCrashLooping(b)
	if aCrash != bCrash {
		return aCrash
	}
	aRestarts, bRestarts := podRestartCount(a), podRestartCount(b)
	if aRestarts != bRestarts {
		return aRestarts > bRestarts
	}
	aRunning := a.Status.Phase == corev1.PodRunning
	bRunning := b.Status.Phase == corev1.PodRunning
	return !aRunning && bRunning
}

func isPodCrashLooping(pod *corev1.Pod) bool {
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.State.Waiting != nil && cs.State.Waiting.Reason == "CrashLoopBackOff" {
			return true
		}
	}
	return false
}

func podRestartCount(pod *corev1.Pod) int32 {
	var total int32
	for _, cs := range pod.Status.ContainerStatuses {
		total += cs.RestartCount
	}
	return total
}

func waitingReason(pod *corev1.Pod) string {
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.State.Waiting != nil && cs.State.Waiting.Reason != "" {
			return cs.State.Waiting.Reason
		}
	}
	return ""
}
