// Package plan expands parsed resolution actions into concrete,
// adapter-targeted commands. Expansion resolves placeholder targets against
// gathered context, recomputes each command's risk, and marks forbidden
// operations; it never executes anything.
package plan

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/analysis"
	"github.com/vigilops/vigil/pkg/models"
)

// Context is what placeholder resolution consults: the cluster adapter's
// context bundle plus the namespace the aggregator fetched it from.
type Context struct {
	Namespace  string
	Kubernetes map[string]any
}

// ContextFrom picks the cluster bundle out of a gathered set. Bundles that
// failed contribute nothing; resolution then sees an empty context and
// placeholder actions are skipped rather than guessed at.
func ContextFrom(bundles []models.ContextBundle, clusterAdapter, namespace string) Context {
	pctx := Context{Namespace: namespace}
	for _, b := range bundles {
		if b.AdapterName == clusterAdapter && b.OK {
			pctx.Kubernetes = b.Data
			break
		}
	}
	return pctx
}

// Expansion is the planner's output for one action: either concrete
// commands, or a skip with a reason the execution record can carry.
type Expansion struct {
	Commands   []models.CommandSpec
	Skipped    bool
	SkipReason models.SkipReason
	Detail     string
}

// Planner expands actions against the adapter registry's capability map.
type Planner struct {
	registry *adapter.Registry
	logger   *slog.Logger
}

func NewPlanner(registry *adapter.Registry, logger *slog.Logger) *Planner {
	if registry == nil {
		panic("registry is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		registry: registry,
		logger:   logger.With("component", "planner"),
	}
}

// Expand turns one action into its command specs. Unsupported action types
// and unresolvable placeholders skip the action; forbidden operations still
// expand, flagged, so the gate can record them under the named rule instead
// of silently dropping them.
func (p *Planner) Expand(action models.ResolutionAction, pctx Context, cfg *models.AutonomyConfig) Expansion {
	target, err := p.registry.ForAction(action.ActionType)
	if err != nil {
		return Expansion{
			Skipped:    true,
			SkipReason: models.SkipUnsupportedAction,
			Detail:     err.Error(),
		}
	}

	paramSets, detail, ok := resolveParams(action, pctx)
	if !ok {
		p.logger.Warn("action target unresolved",
			"action_type", action.ActionType,
			"detail", detail)
		return Expansion{
			Skipped:    true,
			SkipReason: models.SkipUnresolvedTarget,
			Detail:     detail,
		}
	}

	dryRun := cfg != nil && cfg.DryRunMode
	specs := make([]models.CommandSpec, 0, len(paramSets))
	for _, params := range paramSets {
		spec := models.CommandSpec{
			TargetSystem: target.Name(),
			Verb:         commandVerb(action.ActionType),
			ActionType:   action.ActionType,
			Args:         params,
			Rendered:     analysis.RenderCommand(action.ActionType, params),
			DryRun:       dryRun,
		}
		spec.ClassifiedRisk = ClassifyCommand(spec).AtLeast(action.RiskLevel)
		if rule, forbidden := forbiddenRule(spec, cfg); forbidden {
			spec.Forbidden = true
			spec.ForbiddenRule = rule
			spec.ClassifiedRisk = spec.ClassifiedRisk.AtLeast(models.RiskHigh)
		}
		specs = append(specs, spec)
	}
	return Expansion{Commands: specs}
}

// RollbackCommand expands a rollback directive into an executable spec.
// Rollback params come from the parsed plan and are already concrete, so no
// placeholder resolution happens here; target system and dry-run posture are
// inherited from the command being undone. The forbidden rules still apply:
// a rollback never gets to delete a protected resource.
func RollbackCommand(parent models.CommandSpec, rb models.RollbackSpec, cfg *models.AutonomyConfig) models.CommandSpec {
	spec := models.CommandSpec{
		TargetSystem: parent.TargetSystem,
		Verb:         commandVerb(rb.ActionType),
		ActionType:   rb.ActionType,
		Args:         copyParams(rb.Params),
		Rendered:     analysis.RenderCommand(rb.ActionType, rb.Params),
		DryRun:       parent.DryRun,
	}
	spec.ClassifiedRisk = ClassifyCommand(spec)
	if rule, forbidden := forbiddenRule(spec, cfg); forbidden {
		spec.Forbidden = true
		spec.ForbiddenRule = rule
		spec.ClassifiedRisk = spec.ClassifiedRisk.AtLeast(models.RiskHigh)
	}
	return spec
}

var placeholderPattern = regexp.MustCompile(`^<[^<>]+>$`)

func isPlaceholder(v string) bool {
	return placeholderPattern.MatchString(v)
}

// resolveParams substitutes placeholder params against the cluster context.
// One candidate substitutes in place. Several candidates fan out into one
// param set per candidate, but only when the action is low or medium risk;
// a high-risk action with an ambiguous target is refused. No candidate, or
// more than one ambiguous param, is unresolved.
func resolveParams(action models.ResolutionAction, pctx Context) ([]map[string]string, string, bool) {
	base := copyParams(action.Params)

	keys := make([]string, 0, len(base))
	for k := range base {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fanKey := ""
	var fanCandidates []string
	for _, key := range keys {
		if !isPlaceholder(base[key]) {
			continue
		}
		candidates := candidatesFor(key, pctx)
		switch len(candidates) {
		case 0:
			return nil, fmt.Sprintf("no candidate for %s=%s", key, base[key]), false
		case 1:
			base[key] = candidates[0]
		default:
			if fanKey != "" {
				return nil, fmt.Sprintf("both %s and %s are ambiguous", fanKey, key), false
			}
			fanKey = key
			fanCandidates = candidates
		}
	}

	if fanKey == "" {
		return []map[string]string{base}, "", true
	}
	if actionRisk(action) == models.RiskHigh {
		return nil, fmt.Sprintf("%d candidates for %s on a high-risk action", len(fanCandidates), fanKey), false
	}
	out := make([]map[string]string, 0, len(fanCandidates))
	for _, candidate := range fanCandidates {
		params := copyParams(base)
		params[fanKey] = candidate
		out = append(out, params)
	}
	return out, "", true
}

// actionRisk is the fan-out safety bound: the verb's classified floor,
// never below what the analysis declared.
func actionRisk(action models.ResolutionAction) models.RiskLevel {
	return verbRisk(commandVerb(action.ActionType)).AtLeast(action.RiskLevel)
}

func candidatesFor(key string, pctx Context) []string {
	switch key {
	case "deployment":
		return problemDeployments(pctx.Kubernetes)
	case "pod":
		return problemPods(pctx.Kubernetes)
	case "namespace":
		if pctx.Namespace != "" {
			return []string{pctx.Namespace}
		}
	}
	return nil
}

// problemDeployments lists deployments the context implicates, in discovery
// order: the targeted deployment summary, then warning events referencing
// deployments, then owners inferred from unhealthy pod names.
func problemDeployments(kctx map[string]any) []string {
	seen := map[string]bool{}
	var out []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	if dep, ok := kctx["deployment"].(map[string]any); ok {
		name, _ := dep["name"].(string)
		add(name)
	}
	for _, ev := range mapSlice(kctx["events"]) {
		obj, _ := ev["object"].(string)
		if kind, name, ok := strings.Cut(obj, "/"); ok && kind == "deployment" {
			add(name)
		}
	}
	for _, pod := range mapSlice(kctx["pods"]) {
		if !podUnhealthy(pod) {
			continue
		}
		name, _ := pod["name"].(string)
		add(deploymentFromPod(name))
	}
	return out
}

// problemPods lists the names of pods the context reports as unhealthy.
func problemPods(kctx map[string]any) []string {
	var out []string
	for _, pod := range mapSlice(kctx["pods"]) {
		if !podUnhealthy(pod) {
			continue
		}
		if name, _ := pod["name"].(string); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func podUnhealthy(pod map[string]any) bool {
	if phase, _ := pod["phase"].(string); phase != "" && phase != "Running" {
		return true
	}
	if reason, _ := pod["waiting_reason"].(string); reason != "" {
		return true
	}
	if toInt(pod["restarts"]) > 0 {
		return true
	}
	if ready, _ := pod["ready"].(string); ready != "" {
		if have, want, ok := strings.Cut(ready, "/"); ok && have != want {
			return true
		}
	}
	return false
}

var hashSegment = regexp.MustCompile(`^[a-z0-9]{4,10}$`)

// deploymentFromPod strips the replicaset and pod suffixes off a
// deployment-owned pod name. Names that do not follow the two-suffix
// convention yield nothing rather than a guess.
func deploymentFromPod(podName string) string {
	parts := strings.Split(podName, "-")
	if len(parts) < 3 {
		return ""
	}
	if !hashSegment.MatchString(parts[len(parts)-1]) || !hashSegment.MatchString(parts[len(parts)-2]) {
		return ""
	}
	return strings.Join(parts[:len(parts)-2], "-")
}

func mapSlice(v any) []map[string]any {
	switch s := v.(type) {
	case []map[string]any:
		return s
	case []any:
		out := make([]map[string]any, 0, len(s))
		for _, item := range s {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}

func copyParams(params map[string]string) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}
