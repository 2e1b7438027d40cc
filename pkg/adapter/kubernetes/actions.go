package kubernetes

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apiresource "k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/models"
)

const (
	revisionAnnotation  = "deployment.kubernetes.io/revision"
	restartedAnnotation = "kubectl.kubernetes.io/restartedAt"
)

// ExecuteAction runs one expanded command against the cluster. Permanently
// forbidden actions are refused before any policy check; everything else is
// a mutation and requires the destructive-operations flag.
func (a *Adapter) ExecuteAction(ctx context.Context, cmd models.CommandSpec) (*models.CommandResult, error) {
	clientset, _ := a.clients()
	if clientset == nil {
		return nil, adapter.ErrNotConnected
	}

	switch cmd.ActionType {
	case models.ActionDeleteNamespace, models.ActionDeleteNode, models.ActionDeletePV:
		return nil, fmt.Errorf("%w: %s is permanently forbidden", adapter.ErrForbidden, cmd.ActionType)
	case models.ActionApplyManifest:
		return nil, fmt.Errorf("%w: apply_manifest is disabled", adapter.ErrForbidden)
	}

	if !a.autonomy.Snapshot().DestructiveEnabled {
		return nil, fmt.Errorf("%w: destructive operations are disabled", adapter.ErrForbidden)
	}

	start := time.Now()
	var (
		result *models.CommandResult
		err    error
	)
	switch cmd.ActionType {
	case models.ActionRestartPod:
		result, err = a.restartPod(ctx, cmd.Args)
	case models.ActionRestartDeployment:
		result, err = a.restartDeployment(ctx, cmd.Args)
	case models.ActionScaleDeployment:
		result, err = a.scaleDeployment(ctx, cmd.Args)
	case models.ActionPatchMemoryLimit:
		result, err = a.patchResourceLimit(ctx, cmd.Args, corev1.ResourceMemory)
	case models.ActionPatchCPULimit:
		result, err = a.patchResourceLimit(ctx, cmd.Args, corev1.ResourceCPU)
	case models.ActionRollbackDeployment:
		result, err = a.rollbackDeployment(ctx, cmd.Args)
	case models.ActionSetImage:
		result, err = a.setImage(ctx, cmd.Args)
	default:
		return nil, fmt.Errorf("%w: %s", adapter.ErrUnsupportedAction, cmd.ActionType)
	}
	if err != nil {
		return nil, err
	}

	result.DurationMs = time.Since(start).Milliseconds()
	return result, nil
}

// restartPod deletes the named pod, or the most-unhealthy pod behind the
// deployment when no pod is named. With a single pod left the delete is
// refused: taking it out is a full outage, not a restart.
func (a *Adapter) restartPod(ctx context.Context, args map[string]string) (*models.CommandResult, error) {
	clientset, _ := a.clients()
	ns := a.namespaceOr(args["namespace"])

	if pod := args["pod"]; pod != "" {
		if err := clientset.CoreV1().Pods(ns).Delete(ctx, pod, metav1.DeleteOptions{}); err != nil {
			return nil, fmt.Errorf("delete pod %s/%s: %w", ns, pod, err)
		}
		return &models.CommandResult{
			Stdout: fmt.Sprintf("deleted pod %s/%s", ns, pod),
			Detail: map[string]any{"pod": pod, "namespace": ns},
		}, nil
	}

	deployment := args["deployment"]
	if deployment == "" {
		return nil, fmt.Errorf("restart_pod requires 'pod' or 'deployment'")
	}

	pods, err := a.deploymentPods(ctx, ns, deployment)
	if err != nil {
		return nil, err
	}
	if len(pods) == 0 {
		return nil, fmt.Errorf("no pods found for deployment %s/%s", ns, deployment)
	}
	if len(pods) <= 1 {
		return nil, fmt.Errorf("only %d pod(s) behind deployment %s/%s, refusing to delete", len(pods), ns, deployment)
	}

	sort.Slice(pods, func(i, j int) bool {
		return podUnhealthier(&pods[i], &pods[j])
	})

	target := &pods[0]
	if err := clientset.CoreV1().Pods(ns).Delete(ctx, target.Name, metav1.DeleteOptions{}); err != nil {
		return nil, fmt.Errorf("delete pod %s/%s: %w", ns, target.Name, err)
	}

	return &models.CommandResult{
		Stdout: fmt.Sprintf("deleted pod %s/%s (restarts=%d)", ns, target.Name, podRestartCount(target)),
		Detail: map[string]any{
			"pod":        target.Name,
			"namespace":  ns,
			"deployment": deployment,
			"restarts":   podRestartCount(target),
		},
	}, nil
}

// restartDeployment triggers a rolling restart through the template
// annotation, the same mechanism kubectl rollout restart uses.
func (a *Adapter) restartDeployment(ctx context.Context, args map[string]string) (*models.CommandResult, error) {
	clientset, _ := a.clients()
	ns := a.namespaceOr(args["namespace"])

	deploy, err := a.getDeployment(ctx, ns, args["deployment"])
	if err != nil {
		return nil, err
	}

	if deploy.Spec.Template.Annotations == nil {
		deploy.Spec.Template.Annotations = make(map[string]string)
	}
	restartedAt := time.Now().Format(time.RFC3339)
	deploy.Spec.Template.Annotations[restartedAnnotation] = restartedAt

	if _, err := clientset.AppsV1().Deployments(ns).Update(ctx, deploy, metav1.UpdateOptions{}); err != nil {
		return nil, fmt.Errorf("restart deployment %s/%s: %w", ns, deploy.Name, err)
	}

	return &models.CommandResult{
		Stdout: fmt.Sprintf("rolling restart triggered for deployment %s/%s", ns, deploy.Name),
		Detail: map[string]any{"deployment": deploy.Name, "namespace": ns, "restarted_at": restartedAt},
	}, nil
}

// scaleDeployment sets the replica count. Scaling to zero is refused; that
// is a shutdown wearing a scale action's clothes.
func (a *Adapter) scaleDeployment(ctx context.Context, args map[string]string) (*models.CommandResult, error) {
	clientset, _ := a.clients()
	ns := a.namespaceOr(args["namespace"])

	replicasStr, ok := args["replicas"]
	if !ok {
		return nil, fmt.Errorf("scale_deployment requires 'replicas'")
	}
	replicas, err := strconv.Atoi(replicasStr)
	if err != nil {
		return nil, fmt.Errorf("invalid replicas value %q: %w", replicasStr, err)
	}
	if replicas == 0 {
		return nil, fmt.Errorf("%w: scaling to 0 replicas", adapter.ErrForbidden)
	}
	if replicas < 0 {
		return nil, fmt.Errorf("invalid replicas value %d", replicas)
	}

	deploy, err := a.getDeployment(ctx, ns, args["deployment"])
	if err != nil {
		return nil, err
	}

	previous := int32(1)
	if deploy.Spec.Replicas != nil {
		previous = *deploy.Spec.Replicas
	}

	target := int32(replicas)
	deploy.Spec.Replicas = &target
	if _, err := clientset.AppsV1().Deployments(ns).Update(ctx, deploy, metav1.UpdateOptions{}); err != nil {
		return nil, fmt.Errorf("scale deployment %s/%s: %w", ns, deploy.Name, err)
	}

	return &models.CommandResult{
		Stdout: fmt.Sprintf("scaled deployment %s/%s from %d to %d replicas", ns, deploy.Name, previous, target),
		Detail: map[string]any{
			"deployment":        deploy.Name,
			"namespace":         ns,
			"previous_replicas": previous,
			"replicas":          target,
		},
	}, nil
}

// patchResourceLimit updates one container's cpu or memory limit. The limit
// must not fall below the container's request.
func (a *Adapter) patchResourceLimit(ctx context.Context, args map[string]string, resource corev1.ResourceName) (*models.CommandResult, error) {
	clientset, _ := a.clients()
	ns := a.namespaceOr(args["namespace"])

	value, ok := args["value"]
	if !ok {
		return nil, fmt.Errorf("patch limit requires 'value'")
	}
	qty, err := apiresource.ParseQuantity(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", resource, value, err)
	}

	deploy, err := a.getDeployment(ctx, ns, args["deployment"])
	if err != nil {
		return nil, err
	}

	container, err := findContainer(deploy, args["container"])
	if err != nil {
		return nil, err
	}

	if container.Resources.Limits == nil {
		container.Resources.Limits = corev1.ResourceList{}
	}
	previous := ""
	if prev, ok := container.Resources.Limits[resource]; ok {
		previous = prev.String()
	}
	container.Resources.Limits[resource] = qty

	if request, ok := container.Resources.Requests[resource]; ok && qty.Cmp(request) < 0 {
		return nil, fmt.Errorf("%s limit (%s) cannot be less than request (%s)", resource, qty.String(), request.String())
	}

	if _, err := clientset.AppsV1().Deployments(ns).Update(ctx, deploy, metav1.UpdateOptions{}); err != nil {
		return nil, fmt.Errorf("patch %s limit on %s/%s: %w", resource, ns, deploy.Name, err)
	}

	return &models.CommandResult{
		Stdout: fmt.Sprintf("set %s limit on %s/%s container %s to %s", resource, ns, deploy.Name, container.Name, qty.String()),
		Detail: map[string]any{
			"deployment": deploy.Name,
			"namespace":  ns,
			"container":  container.Name,
			"resource":   string(resource),
			"previous":   previous,
			"value":      qty.String(),
		},
	}, nil
}

// rollbackDeployment copies the pod template from an earlier ReplicaSet
// revision onto the deployment, the same thing kubectl rollout undo does.
// args["revision"] may be empty or "previous" (default), "healthy" to pick
// the newest revision with ready replicas, or a revision number.
func (a *Adapter) rollbackDeployment(ctx context.Context, args map[string]string) (*models.CommandResult, error) {
	clientset, _ := a.clients()
	ns := a.namespaceOr(args["namespace"])

	deploy, err := a.getDeployment(ctx, ns, args["deployment"])
	if err != nil {
		return nil, err
	}

	rsList, err := clientset.AppsV1().ReplicaSets(ns).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list replicasets in %s: %w", ns, err)
	}

	type revisionedRS struct {
		revision int
		rs       *appsv1.ReplicaSet
	}
	var owned []revisionedRS
	for i := range rsList.Items {
		rs := &rsList.Items[i]
		for _, ref := range rs.OwnerReferences {
			if ref.Kind == "Deployment" && ref.Name == deploy.Name {
				rev, _ := strconv.Atoi(rs.Annotations[revisionAnnotation])
				owned = append(owned, revisionedRS{revision: rev, rs: rs})
				break
			}
		}
	}

	if len(owned) < 2 {
		return nil, fmt.Errorf("deployment %s/%s has fewer than 2 revisions, cannot rollback", ns, deploy.Name)
	}

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].revision > owned[j].revision
	})
	current := owned[0].revision

	var target *revisionedRS
	switch spec := args["revision"]; spec {
	case "", "previous":
		target = &owned[1]

	case "healthy":
		for i := 1; i < len(owned); i++ {
			if owned[i].rs.Status.ReadyReplicas > 0 {
				target = &owned[i]
				break
			}
		}
		if target == nil {
			target = &owned[1]
		}

	default:
		wanted, err := strconv.Atoi(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid revision %q: must be a number, 'previous', or 'healthy'", spec)
		}
		for i := range owned {
			if owned[i].revision == wanted {
				target = &owned[i]
				break
			}
		}
		if target == nil {
			return nil, fmt.Errorf("revision %d not found for deployment %s/%s", wanted, ns, deploy.Name)
		}
	}

	deploy.Spec.Template.Spec = target.rs.Spec.Template.Spec
	deploy.Spec.Template.Labels = target.rs.Spec.Template.Labels
	if target.rs.Spec.Template.Annotations != nil {
		if deploy.Spec.Template.Annotations == nil {
			deploy.Spec.Template.Annotations = make(map[string]string)
		}
		for k, v := range target.rs.Spec.Template.Annotations {
			deploy.Spec.Template.Annotations[k] = v
		}
	}

	if _, err := clientset.AppsV1().Deployments(ns).Update(ctx, deploy, metav1.UpdateOptions{}); err != nil {
		return nil, fmt.Errorf("rollback deployment %s/%s: %w", ns, deploy.Name, err)
	}

	return &models.CommandResult{
		Stdout: fmt.Sprintf("rolled back deployment %s/%s from revision %d to %d", ns, deploy.Name, current, target.revision),
		Detail: map[string]any{
			"deployment":    deploy.Name,
			"namespace":     ns,
			"from_revision": current,
			"to_revision":   target.revision,
		},
	}, nil
}

// setImage changes one container's image.
func (a *Adapter) setImage(ctx context.Context, args map[string]string) (*models.CommandResult, error) {
	clientset, _ := a.clients()
	ns := a.namespaceOr(args["namespace"])

	image, ok := args["image"]
	if !ok || image == "" {
		return nil, fmt.Errorf("set_image requires 'image'")
	}

	deploy, err := a.getDeployment(ctx, ns, args["deployment"])
	if err != nil {
		return nil, err
	}

	container, err := findContainer(deploy, args["container"])
	if err != nil {
		return nil, err
	}

	previous := container.Image
	container.Image = image

	if _, err := clientset.AppsV1().Deployments(ns).Update(ctx, deploy, metav1.UpdateOptions{}); err != nil {
		return nil, fmt.Errorf("set image on %s/%s: %w", ns, deploy.Name, err)
	}

	return &models.CommandResult{
		Stdout: fmt.Sprintf("set image on %s/%s container %s: %s -> %s", ns, deploy.Name, container.Name, previous, image),
		Detail: map[string]any{
			"deployment":     deploy.Name,
			"namespace":      ns,
			"container":      container.Name,
			"previous_image": previous,
			"image":          image,
		},
	}, nil
}

func (a *Adapter) getDeployment(ctx context.Context, ns, name string) (*appsv1.Deployment, error) {
	if name == "" {
		return nil, fmt.Errorf("deployment name is required")
	}
	clientset, _ := a.clients()
	deploy, err := clientset.AppsV1().Deployments(ns).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get deployment %s/%s: %w", ns, name, err)
	}
	return deploy, nil
}

// deploymentPods lists the pods owned (via ReplicaSets) by the deployment.
func (a *Adapter) deploymentPods(ctx context.Context, ns, deployment string) ([]corev1.Pod, error) {
	clientset, _ := a.clients()

	list, err := clientset.CoreV1().Pods(ns).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pods in %s: %w", ns, err)
	}

	var owned []corev1.Pod
	for i := range list.Items {
		pod := &list.Items[i]
		for _, ref := range pod.OwnerReferences {
			if ref.Kind == "ReplicaSet" && strings.HasPrefix(ref.Name, deployment+"-") {
				owned = append(owned, *pod)
				break
			}
		}
	}
	return owned, nil
}

func findContainer(deploy *appsv1.Deployment, name string) (*corev1.Container, error) {
	containers := deploy.Spec.Template.Spec.Containers
	if len(containers) == 0 {
		return nil, fmt.Errorf("no containers in deployment %s/%s", deploy.Namespace, deploy.Name)
	}
	if name == "" {
		return &containers[0], nil
	}
	for i := range containers {
		if containers[i].Name == name {
			return &containers[i], nil
		}
	}
	return nil, fmt.Errorf("container %q not found in deployment %s/%s", name, deploy.Namespace, deploy.Name)
}
