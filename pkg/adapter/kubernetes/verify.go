package kubernetes

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
	apiresource "k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/models"
)

// Verification windows. Pod replacement is fast; a rolling deployment
// change needs room for image pulls and readiness probes.
const (
	podVerifyTimeout        = 90 * time.Second
	deploymentVerifyTimeout = 120 * time.Second
	verifyPollInterval      = 3 * time.Second
)

// VerifyAction checks the post-execution predicate for the command. It
// implements adapter.ActionVerifier. Actions without a predicate return a
// nil result.
func (a *Adapter) VerifyAction(ctx context.Context, cmd models.CommandSpec, startedAt time.Time) (*models.VerificationResult, error) {
	clientset, _ := a.clients()
	if clientset == nil {
		return nil, adapter.ErrNotConnected
	}

	ns := a.namespaceOr(cmd.Args["namespace"])
	start := time.Now()

	var (
		predicate string
		passed    bool
		observed  map[string]any
		err       error
	)

	switch cmd.ActionType {
	case models.ActionRestartPod:
		predicate = "replacement_pod_running"
		passed, observed, err = a.verifyReplacementPod(ctx, ns, cmd.Args, startedAt)

	case models.ActionScaleDeployment:
		predicate = "ready_replicas_match"
		passed, observed, err = a.verifyReadyReplicas(ctx, ns, cmd.Args)

	case models.ActionPatchMemoryLimit:
		predicate = "limit_applied"
		passed, observed, err = a.verifyLimit(ctx, ns, cmd.Args, corev1.ResourceMemory)

	case models.ActionPatchCPULimit:
		predicate = "limit_applied"
		passed, observed, err = a.verifyLimit(ctx, ns, cmd.Args, corev1.ResourceCPU)

	case models.ActionRestartDeployment, models.ActionRollbackDeployment, models.ActionSetImage:
		predicate = "deployment_healthy"
		passed, observed, err = a.verifyDeploymentHealthy(ctx, ns, cmd.Args)

	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.VerificationResult{
		Predicate: predicate,
		Observed:  observed,
		Passed:    passed,
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}

// verifyReplacementPod waits for a Running pod created after the restart
// began. The deleted pod's controller recreates it under a new name, so the
// match is by deployment ownership (or name prefix when only a pod was
// named) plus creation time.
func (a *Adapter) verifyReplacementPod(ctx context.Context, ns string, args map[string]string, startedAt time.Time) (bool, map[string]any, error) {
	deployment := args["deployment"]
	prefix := ""
	if deployment == "" {
		if pod := args["pod"]; pod != "" {
			prefix = replicaSetPrefix(pod)
		}
	}

	return a.pollUntil(ctx, podVerifyTimeout, func(ctx context.Context) (bool, map[string]any, error) {
		var pods []corev1.Pod
		var err error
		if deployment != "" {
			pods, err = a.deploymentPods(ctx, ns, deployment)
		} else {
			clientset, _ := a.clients()
			var list *corev1.PodList
			list, err = clientset.CoreV1().Pods(ns).List(ctx, metav1.ListOptions{})
			if err == nil {
				for i := range list.Items {
					if prefix == "" || replicaSetPrefix(list.Items[i].Name) == prefix {
						pods = append(pods, list.Items[i])
					}
				}
			}
		}
		if err != nil {
			return false, map[string]any{"error": err.Error()}, nil
		}

		for i := range pods {
			pod := &pods[i]
			if pod.Status.Phase == corev1.PodRunning && pod.CreationTimestamp.Time.After(startedAt) {
				return true, map[string]any{
					"pod":        pod.Name,
					"phase":      string(pod.Status.Phase),
					"created_at": pod.CreationTimestamp.Format(time.RFC3339),
				}, nil
			}
		}
		return false, map[string]any{"pods_checked": len(pods)}, nil
	})
}

// verifyReadyReplicas waits for the deployment's ready count to reach the
// scaled target.
func (a *Adapter) verifyReadyReplicas(ctx context.Context, ns string, args map[string]string) (bool, map[string]any, error) {
	target, err := strconv.Atoi(args["replicas"])
	if err != nil {
		return false, nil, fmt.Errorf("invalid replicas value %q: %w", args["replicas"], err)
	}

	return a.pollUntil(ctx, deploymentVerifyTimeout, func(ctx context.Context) (bool, map[string]any, error) {
		deploy, err := a.getDeployment(ctx, ns, args["deployment"])
		if err != nil {
			return false, map[string]any{"error": err.Error()}, nil
		}
		observed := map[string]any{
			"ready":  deploy.Status.ReadyReplicas,
			"target": target,
		}
		return deploy.Status.ReadyReplicas == int32(target), observed, nil
	})
}

// verifyLimit checks the container's limit now equals the patched value.
// The spec change is synchronous, so one read settles it.
func (a *Adapter) verifyLimit(ctx context.Context, ns string, args map[string]string, resource corev1.ResourceName) (bool, map[string]any, error) {
	wanted, err := apiresource.ParseQuantity(args["value"])
	if err != nil {
		return false, nil, fmt.Errorf("invalid %s value %q: %w", resource, args["value"], err)
	}

	deploy, err := a.getDeployment(ctx, ns, args["deployment"])
	if err != nil {
		return false, map[string]any{"error": err.Error()}, nil
	}
	container, err := findContainer(deploy, args["container"])
	if err != nil {
		return false, map[string]any{"error": err.Error()}, nil
	}

	limit, ok := container.Resources.Limits[resource]
	observed := map[string]any{
		"container": container.Name,
		"wanted":    wanted.String(),
	}
	if !ok {
		observed["limit"] = "unset"
		return false, observed, nil
	}
	observed["limit"] = limit.String()
	return limit.Cmp(wanted) == 0, observed, nil
}

// verifyDeploymentHealthy waits for the rollout to settle: every desired
// replica ready and updated, none unavailable.
func (a *Adapter) verifyDeploymentHealthy(ctx context.Context, ns string, args map[string]string) (bool, map[string]any, error) {
	return a.pollUntil(ctx, deploymentVerifyTimeout, func(ctx context.Context) (bool, map[string]any, error) {
		deploy, err := a.getDeployment(ctx, ns, args["deployment"])
		if err != nil {
			return false, map[string]any{"error": err.Error()}, nil
		}

		desired := int32(1)
		if deploy.Spec.Replicas != nil {
			desired = *deploy.Spec.Replicas
		}

		healthy := deploy.Status.ReadyReplicas >= desired &&
			deploy.Status.UpdatedReplicas >= desired &&
			deploy.Status.UnavailableReplicas == 0

		observed := map[string]any{
			"desired":     desired,
			"ready":       deploy.Status.ReadyReplicas,
			"updated":     deploy.Status.UpdatedReplicas,
			"unavailable": deploy.Status.UnavailableReplicas,
		}
		return healthy, observed, nil
	})
}

// pollUntil runs check immediately and then on an interval until it passes,
// the window closes, or the context ends. The last observation is returned
// either way.
func (a *Adapter) pollUntil(ctx context.Context, timeout time.Duration, check func(context.Context) (bool, map[string]any, error)) (bool, map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(verifyPollInterval)
	defer ticker.Stop()

	var observed map[string]any
	for {
		passed, obs, err := check(ctx)
		if err != nil {
			return false, obs, err
		}
		observed = obs
		if passed {
			return true, observed, nil
		}

		select {
		case <-ctx.Done():
			return false, observed, nil
		case <-ticker.C:
		}
	}
}

// replicaSetPrefix strips the pod's random suffix, leaving the generating
// ReplicaSet's name. Replacement pods share it.
func replicaSetPrefix(podName string) string {
	if i := strings.LastIndex(podName, "-"); i > 0 {
		return podName[:i]
	}
	return podName
}
