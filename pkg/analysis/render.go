package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vigilops/vigil/pkg/models"
)

// RenderPlan prints a plan back in the response template. Parsing the
// rendered text reproduces the plan's ordered actions with their params,
// confidence, risk, and rollback, which is what makes stored analyses
// replayable.
func RenderPlan(plan *models.ResolutionPlan) string {
	var b strings.Builder

	b.WriteString(sectionRootCause + ":\n")
	if plan.RootCause != "" {
		b.WriteString(plan.RootCause + "\n")
	}

	if plan.ImpactAssessment != "" {
		b.WriteString("\n" + sectionImpact + ":\n")
		b.WriteString(plan.ImpactAssessment + "\n")
	}

	if len(plan.Diagnostics) > 0 {
		b.WriteString("\n" + sectionDiagnostics + ":\n")
		for i, d := range plan.Diagnostics {
			fmt.Fprintf(&b, "%d. %s\n", i+1, d)
		}
	}

	b.WriteString("\n" + sectionRemediation + ":\n")
	for i, action := range plan.Actions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, RenderCommand(action.ActionType, action.Params))
		fmt.Fprintf(&b, "   confidence: %.2f\n", action.Confidence)
		if action.RiskLevel.IsValid() {
			fmt.Fprintf(&b, "   risk: %s\n", action.RiskLevel)
		}
		if action.Rollback != nil {
			fmt.Fprintf(&b, "   rollback: %s\n", RenderCommand(action.Rollback.ActionType, action.Rollback.Params))
		}
	}

	if len(plan.MonitoringRecommendations) > 0 {
		b.WriteString("\n" + sectionMonitoring + ":\n")
		for _, m := range plan.MonitoringRecommendations {
			fmt.Fprintf(&b, "- %s\n", m)
		}
	}
	return b.String()
}

// RenderCommand prints the canonical command line for an action. Kubernetes
// actions render as kubectl invocations; everything else uses the
// structured "action:" form. The output parses back to the same action type
// and params.
func RenderCommand(at models.ActionType, params map[string]string) string {
	ns := ""
	if v := params["namespace"]; v != "" {
		ns = " -n " + v
	}

	switch at {
	case models.ActionRestartPod:
		cmd := "kubectl delete pod"
		if pod := params["pod"]; pod != "" {
			cmd += " " + pod
		}
		if sel := params["selector"]; sel != "" {
			cmd += " -l " + sel
		}
		return cmd + ns
	case models.ActionRestartDeployment:
		return "kubectl rollout restart deployment/" + params["deployment"] + ns
	case models.ActionScaleDeployment:
		cmd := "kubectl scale deployment/" + params["deployment"]
		if r := params["replicas"]; r != "" {
			cmd += " --replicas=" + r
		}
		return cmd + ns
	case models.ActionPatchMemoryLimit:
		return renderSetResources(params, "memory")
	case models.ActionPatchCPULimit:
		return renderSetResources(params, "cpu")
	case models.ActionRollbackDeployment:
		cmd := "kubectl rollout undo deployment/" + params["deployment"]
		if rev := params["revision"]; rev != "" {
			cmd += " --to-revision=" + rev
		}
		return cmd + ns
	case models.ActionSetImage:
		cmd := "kubectl set image deployment/" + params["deployment"]
		ref := params["image"]
		if c := params["container"]; c != "" {
			ref = c + "=" + ref
		}
		if ref != "" {
			cmd += " " + ref
		}
		return cmd + ns
	case models.ActionApplyManifest:
		cmd := "kubectl apply"
		if f := params["manifest"]; f != "" {
			cmd += " -f " + f
		}
		return cmd + ns
	case models.ActionDeleteNamespace:
		return withName("kubectl delete namespace", params["name"])
	case models.ActionDeleteNode:
		return withName("kubectl delete node", params["name"])
	case models.ActionDeletePV:
		resource := params["resource"]
		if resource == "" {
			resource = "persistentvolume"
		}
		cmd := withName("kubectl delete "+resource, params["name"])
		if resource == "persistentvolumeclaim" {
			cmd += ns
		}
		return cmd
	}

	// Structured form for non-Kubernetes actions; values with spaces are
	// quoted so the line tokenizes back into the same params.
	var b strings.Builder
	b.WriteString("action: " + string(at))
	for _, k := range sortedKeys(params) {
		v := params[k]
		if strings.ContainsAny(v, " \t") {
			fmt.Fprintf(&b, " %s=%q", k, v)
		} else {
			fmt.Fprintf(&b, " %s=%s", k, v)
		}
	}
	return b.String()
}

func renderSetResources(params map[string]string, key string) string {
	cmd := "kubectl set resources deployment/" + params["deployment"]
	cmd += " --limits=" + key + "=" + params["value"]
	if c := params["container"]; c != "" {
		cmd += " -c " + c
	}
	if ns := params["namespace"]; ns != "" {
		cmd += " -n " + ns
	}
	return cmd
}

func withName(cmd, name string) string {
	if name != "" {
		return cmd + " " + name
	}
	return cmd
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
