package analysis

import (
	"regexp"
	"strings"

	"github.com/vigilops/vigil/pkg/models"
)

// kubectlInvocation is a tokenized kubectl command line: the verb, the
// positional arguments, and the flag map. Flags given as --flag=value and
// --flag value both land in flags; bare flags map to "".
type kubectlInvocation struct {
	verb        string
	positionals []string
	flags       map[string]string
}

// valueFlags are the flags whose value may follow as a separate token.
// Anything else written without "=" is treated as boolean (--all, --force).
var valueFlags = map[string]bool{
	"n": true, "namespace": true,
	"replicas":    true,
	"to-revision": true,
	"p":           true, "patch": true,
	"f": true, "filename": true,
	"l": true, "selector": true,
	"c": true, "containers": true,
	"limits":   true,
	"requests": true,
	"type":     true,
	"image":    true,
}

func parseKubectl(args []string) kubectlInvocation {
	inv := kubectlInvocation{flags: map[string]string{}}
	if len(args) == 0 {
		return inv
	}
	inv.verb = args[0]
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if !strings.HasPrefix(arg, "-") {
			inv.positionals = append(inv.positionals, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if eq := strings.Index(name, "="); eq >= 0 {
			inv.flags[name[:eq]] = name[eq+1:]
			continue
		}
		if valueFlags[name] && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			inv.flags[name] = rest[i+1]
			i++
			continue
		}
		inv.flags[name] = ""
	}
	return inv
}

func (inv kubectlInvocation) flag(names ...string) string {
	for _, n := range names {
		if v, ok := inv.flags[n]; ok && v != "" {
			return v
		}
	}
	return ""
}

// resourceTarget reads a resource reference from the positionals, accepting
// both "deployment/name" and "deployment name". It returns how many
// positionals it consumed so callers can pick up trailing arguments.
func resourceTarget(positionals []string) (resource, name string, consumed int) {
	if len(positionals) == 0 {
		return "", "", 0
	}
	if kind, n, ok := strings.Cut(positionals[0], "/"); ok {
		return strings.ToLower(kind), n, 1
	}
	resource = strings.ToLower(positionals[0])
	if len(positionals) > 1 {
		return resource, positionals[1], 2
	}
	return resource, "", 1
}

func canonicalResource(r string) string {
	switch r {
	case "deploy", "deployment", "deployments":
		return "deployment"
	case "po", "pod", "pods":
		return "pod"
	case "ns", "namespace", "namespaces":
		return "namespace"
	case "no", "node", "nodes":
		return "node"
	case "pv", "persistentvolume", "persistentvolumes":
		return "persistentvolume"
	case "pvc", "persistentvolumeclaim", "persistentvolumeclaims":
		return "persistentvolumeclaim"
	}
	return r
}

var (
	memoryValuePattern    = regexp.MustCompile(`"memory"\s*:\s*"([^"]+)"`)
	cpuValuePattern       = regexp.MustCompile(`"cpu"\s*:\s*"([^"]+)"`)
	jsonPatchValuePattern = regexp.MustCompile(`"value"\s*:\s*"([^"]+)"`)
)

// inferKubectl maps a kubectl invocation onto the action vocabulary. Verbs
// outside the vocabulary, including every read-only verb, return false and
// the line stays out of the plan. Placeholder targets like
// <deployment-name> are retained for the planner to resolve against
// gathered context.
func inferKubectl(args []string) (models.ResolutionAction, bool) {
	inv := parseKubectl(args)
	params := map[string]string{}
	setIf(params, "namespace", inv.flag("n", "namespace"))

	switch inv.verb {
	case "delete":
		return inferDelete(inv, params)
	case "rollout":
		return inferRollout(inv, params)
	case "scale":
		resource, name, _ := resourceTarget(inv.positionals)
		if canonicalResource(resource) != "deployment" || name == "" {
			return models.ResolutionAction{}, false
		}
		params["deployment"] = name
		setIf(params, "replicas", inv.flag("replicas"))
		return newAction(models.ActionScaleDeployment, params), true
	case "set":
		return inferSet(inv, params)
	case "patch":
		return inferPatch(inv, params)
	case "apply":
		setIf(params, "manifest", inv.flag("f", "filename"))
		return newAction(models.ActionApplyManifest, params), true
	}
	return models.ResolutionAction{}, false
}

func inferDelete(inv kubectlInvocation, params map[string]string) (models.ResolutionAction, bool) {
	resource, name, _ := resourceTarget(inv.positionals)
	switch canonicalResource(resource) {
	case "pod":
		// Deleting a pod under a controller is a restart; that is the only
		// pod deletion the vocabulary expresses.
		setIf(params, "pod", name)
		setIf(params, "selector", inv.flag("l", "selector"))
		return newAction(models.ActionRestartPod, params), true
	case "namespace":
		delete(params, "namespace")
		setIf(params, "name", name)
		return newAction(models.ActionDeleteNamespace, params), true
	case "node":
		delete(params, "namespace")
		setIf(params, "name", name)
		return newAction(models.ActionDeleteNode, params), true
	case "persistentvolume", "persistentvolumeclaim":
		if canonicalResource(resource) == "persistentvolumeclaim" {
			params["resource"] = "persistentvolumeclaim"
		} else {
			delete(params, "namespace")
		}
		setIf(params, "name", name)
		return newAction(models.ActionDeletePV, params), true
	}
	return models.ResolutionAction{}, false
}

func inferRollout(inv kubectlInvocation, params map[string]string) (models.ResolutionAction, bool) {
	if len(inv.positionals) == 0 {
		return models.ResolutionAction{}, false
	}
	sub := inv.positionals[0]
	resource, name, _ := resourceTarget(inv.positionals[1:])
	if canonicalResource(resource) != "deployment" || name == "" {
		return models.ResolutionAction{}, false
	}
	params["deployment"] = name

	switch sub {
	case "restart":
		return newAction(models.ActionRestartDeployment, params), true
	case "undo":
		setIf(params, "revision", inv.flag("to-revision"))
		return newAction(models.ActionRollbackDeployment, params), true
	}
	return models.ResolutionAction{}, false
}

func inferSet(inv kubectlInvocation, params map[string]string) (models.ResolutionAction, bool) {
	if len(inv.positionals) == 0 {
		return models.ResolutionAction{}, false
	}
	switch inv.positionals[0] {
	case "image":
		rest := inv.positionals[1:]
		resource, name, consumed := resourceTarget(rest)
		if canonicalResource(resource) != "deployment" || name == "" {
			return models.ResolutionAction{}, false
		}
		params["deployment"] = name
		if pairs := rest[consumed:]; len(pairs) > 0 {
			if container, image, ok := strings.Cut(pairs[0], "="); ok {
				setIf(params, "container", container)
				setIf(params, "image", image)
			} else {
				setIf(params, "image", pairs[0])
			}
		}
		return newAction(models.ActionSetImage, params), true
	case "resources":
		resource, name, _ := resourceTarget(inv.positionals[1:])
		if canonicalResource(resource) != "deployment" || name == "" {
			return models.ResolutionAction{}, false
		}
		params["deployment"] = name
		setIf(params, "container", inv.flag("c", "containers"))

		limits := map[string]string{}
		for _, kv := range strings.Split(inv.flag("limits"), ",") {
			if k, v, ok := strings.Cut(kv, "="); ok {
				limits[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
			}
		}
		// One limit per step is the template contract; memory wins when the
		// model squeezes both into one command.
		if v, ok := limits["memory"]; ok {
			setIf(params, "value", v)
			return newAction(models.ActionPatchMemoryLimit, params), true
		}
		if v, ok := limits["cpu"]; ok {
			setIf(params, "value", v)
			return newAction(models.ActionPatchCPULimit, params), true
		}
	}
	return models.ResolutionAction{}, false
}

// inferPatch recognizes resource-limit patches in both strategic-merge and
// JSON-patch payloads. Other patches are refused rather than guessed at.
func inferPatch(inv kubectlInvocation, params map[string]string) (models.ResolutionAction, bool) {
	resource, name, _ := resourceTarget(inv.positionals)
	if canonicalResource(resource) != "deployment" || name == "" {
		return models.ResolutionAction{}, false
	}
	payload := inv.flag("p", "patch")
	if payload == "" {
		return models.ResolutionAction{}, false
	}
	params["deployment"] = name

	if strings.Contains(payload, "memory") {
		setIf(params, "value", patchValue(payload, memoryValuePattern))
		return newAction(models.ActionPatchMemoryLimit, params), true
	}
	if strings.Contains(payload, "cpu") {
		setIf(params, "value", patchValue(payload, cpuValuePattern))
		return newAction(models.ActionPatchCPULimit, params), true
	}
	return models.ResolutionAction{}, false
}

func patchValue(payload string, keyed *regexp.Regexp) string {
	if m := keyed.FindStringSubmatch(payload); len(m) == 2 {
		return m[1]
	}
	if m := jsonPatchValuePattern.FindStringSubmatch(payload); len(m) == 2 {
		return m[1]
	}
	return ""
}

func setIf(params map[string]string, key, value string) {
	if value != "" {
		params[key] = value
	}
}
