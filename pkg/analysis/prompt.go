package analysis

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/vigilops/vigil/pkg/models"
)

// systemPrompt pins the model to the response template the parser
// understands. Keeping the contract in one place means a template change
// only ever touches this package.
const systemPrompt = `You are the automated incident analyst for an on-call response engine
operating on Kubernetes workloads. You receive one production alert plus
context gathered from the team's integrations. Diagnose the most likely
root cause and propose remediation.

Respond using exactly this template:

ROOT CAUSE:
<one or two sentences naming the most likely cause>

IMPACT ASSESSMENT:
<who or what is affected and how badly>

IMMEDIATE ACTIONS:
<numbered read-only checks an operator should run to confirm the diagnosis;
never mutations>

REMEDIATION STEPS:
<numbered kubectl commands, one action per step. After each command add
indented attribute lines:
  confidence: <0.0 to 1.0>
  risk: <low|medium|high>
  rollback: <kubectl command that undoes the step, or "none">
Supported commands: kubectl delete pod, kubectl rollout restart,
kubectl rollout undo, kubectl scale, kubectl set resources,
kubectl set image. Use placeholders like <deployment-name> only when the
context does not name the target. Leave this section without steps when no
remediation is warranted.>

MONITORING RECOMMENDATIONS:
<bulleted follow-up checks for after remediation>`

// BuildPrompt serializes the alert and every context bundle into the user
// prompt. Bundles are ordered by adapter name and bundle data by key, so
// the same gathered context always produces byte-identical prompts.
func BuildPrompt(alert *models.Alert, fingerprint string, bundles []models.ContextBundle) string {
	var b strings.Builder

	b.WriteString("ALERT:\n")
	fmt.Fprintf(&b, "source: %s\n", alert.Source)
	fmt.Fprintf(&b, "severity: %s\n", alert.Severity)
	fmt.Fprintf(&b, "service: %s\n", alert.Service)
	fmt.Fprintf(&b, "title: %s\n", alert.Title)
	if alert.Description != "" {
		fmt.Fprintf(&b, "description: %s\n", alert.Description)
	}
	if fingerprint != "" {
		fmt.Fprintf(&b, "fingerprint: %s\n", fingerprint)
	}

	sorted := make([]models.ContextBundle, len(bundles))
	copy(sorted, bundles)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].AdapterName < sorted[j].AdapterName
	})

	for _, bundle := range sorted {
		fmt.Fprintf(&b, "\nCONTEXT (%s):\n", bundle.AdapterName)
		if !bundle.OK {
			fmt.Fprintf(&b, "unavailable: %s\n", bundle.Error)
			continue
		}
		b.WriteString(renderBundleData(bundle.Data))
		if bundle.Truncated {
			b.WriteString("(context truncated)\n")
		}
	}
	return b.String()
}

func renderBundleData(data map[string]any) string {
	if len(data) == 0 {
		return "(no data)\n"
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("(unrenderable: %v)\n", err)
	}
	return string(raw) + "\n"
}
