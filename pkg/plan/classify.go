package plan

import (
	"strings"

	"github.com/vigilops/vigil/pkg/models"
)

// Forbidden rule names. These land in audit records and API previews, so
// they are stable identifiers, not prose.
const (
	RuleProtectedDelete     = "protected_resource_delete"
	RuleWildcardSelector    = "wildcard_cluster_selector"
	RuleDestructiveDisabled = "destructive_operations_disabled"
)

// commandVerb maps an action type to the operation verb risk is keyed on.
// restart_pod deliberately maps to "restart", not the pod delete the
// cluster adapter implements it with: the policy concerns the operation's
// effect, and a controller replaces the pod.
func commandVerb(at models.ActionType) string {
	switch at {
	case models.ActionRestartPod, models.ActionRestartDeployment:
		return "restart"
	case models.ActionScaleDeployment:
		return "scale"
	case models.ActionPatchMemoryLimit, models.ActionPatchCPULimit:
		return "patch"
	case models.ActionRollbackDeployment:
		return "rollout undo"
	case models.ActionSetImage:
		return "set image"
	case models.ActionApplyManifest:
		return "apply"
	case models.ActionDeleteNamespace, models.ActionDeleteNode, models.ActionDeletePV:
		return "delete"
	case models.ActionAcknowledgeIncident:
		return "acknowledge"
	case models.ActionResolveIncident:
		return "resolve"
	case models.ActionAddNote:
		return "add_note"
	}
	return string(at)
}

func verbRisk(verb string) models.RiskLevel {
	switch verb {
	case "get", "describe", "logs", "top",
		"acknowledge", "resolve", "add_note", "notify":
		return models.RiskLow
	case "scale", "restart", "rollout restart", "rollout undo",
		"label", "annotate", "patch", "set image", "set resources":
		return models.RiskMedium
	case "delete", "apply", "create", "exec", "port-forward":
		return models.RiskHigh
	}
	// Unknown verbs do not get to be low risk.
	return models.RiskMedium
}

// ClassifyCommand recomputes risk from the expanded command: the verb's
// base level, escalated for system namespaces and whole-fleet targeting.
// Callers combine the result with the action's declared level via AtLeast,
// so recomputation only ever raises risk.
func ClassifyCommand(spec models.CommandSpec) models.RiskLevel {
	risk := verbRisk(spec.Verb)
	if strings.HasPrefix(spec.Args["namespace"], "kube-") {
		risk = risk.AtLeast(models.RiskHigh)
	}
	if targetsEverything(spec.Args) {
		risk = risk.AtLeast(models.RiskHigh)
	}
	return risk
}

func targetsEverything(args map[string]string) bool {
	if _, ok := args["all"]; ok {
		return true
	}
	if _, ok := args["all-namespaces"]; ok {
		return true
	}
	return args["selector"] == "*"
}

// forbiddenRule names the denylist rule a command matches, if any.
// Forbidden commands are still expanded and recorded; the gate refuses
// them with the rule name so the audit trail shows what was proposed.
func forbiddenRule(spec models.CommandSpec, cfg *models.AutonomyConfig) (string, bool) {
	switch spec.ActionType {
	case models.ActionDeleteNamespace, models.ActionDeleteNode, models.ActionDeletePV:
		if wildcardClusterTarget(spec.Args) {
			return RuleWildcardSelector, true
		}
		return RuleProtectedDelete, true
	case models.ActionApplyManifest:
		if cfg == nil || !cfg.DestructiveEnabled {
			return RuleDestructiveDisabled, true
		}
	}
	return "", false
}

// wildcardClusterTarget reports a cluster-scoped delete with no concrete
// name: nothing named, a literal wildcard, or an --all style selector.
func wildcardClusterTarget(args map[string]string) bool {
	name := args["name"]
	if name == "" && args["selector"] == "" {
		return true
	}
	if name == "*" || name == "--all" {
		return true
	}
	return args["selector"] == "*" || targetsEverything(args)
}
