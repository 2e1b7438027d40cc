// Package analysis turns a raw model completion into a typed resolution
// plan. Parsing is deliberately pure: the same response text always yields
// the same plan, with no model or network access, so audit records can be
// re-parsed long after the incident closed.
//
// Only the REMEDIATION STEPS section may produce executable actions.
// IMMEDIATE ACTIONS content is preserved verbatim as diagnostics; promoting
// it would turn the model's investigation chatter into cluster mutations.
package analysis

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vigilops/vigil/pkg/models"
)

// Response template section markers. The system prompt instructs the model
// to emit exactly these; parsing tolerates markdown decoration and casing
// but not renames.
const (
	sectionRootCause   = "ROOT CAUSE"
	sectionImpact      = "IMPACT ASSESSMENT"
	sectionDiagnostics = "IMMEDIATE ACTIONS"
	sectionRemediation = "REMEDIATION STEPS"
	sectionMonitoring  = "MONITORING RECOMMENDATIONS"
)

var sectionMarkers = []string{
	sectionRootCause,
	sectionImpact,
	sectionDiagnostics,
	sectionRemediation,
	sectionMonitoring,
}

// defaultConfidence applies when the model omits the confidence attribute.
// It sits below every autonomy threshold, so an unscored action never
// auto-executes.
const defaultConfidence = 0.5

// ParsePlan parses a model completion into a resolution plan. It returns an
// error when the response is empty or contains none of the template
// sections; a well-formed response with no remediation steps parses cleanly
// into a plan with zero actions.
func ParsePlan(response string) (*models.ResolutionPlan, error) {
	if strings.TrimSpace(response) == "" {
		return nil, errors.New("response is empty")
	}

	sections := make(map[string][]string)
	current := ""
	sawMarker := false

	scanner := bufio.NewScanner(strings.NewReader(response))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if marker, rest, ok := matchMarker(line); ok {
			current = marker
			sawMarker = true
			if rest != "" {
				sections[current] = append(sections[current], rest)
			}
			continue
		}
		if current == "" {
			// Preamble before the first marker carries no plan content.
			continue
		}
		sections[current] = append(sections[current], line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning response: %w", err)
	}
	if !sawMarker {
		return nil, errors.New("response contains no recognizable sections")
	}

	plan := &models.ResolutionPlan{
		RootCause:                 joinProse(sections[sectionRootCause]),
		ImpactAssessment:          joinProse(sections[sectionImpact]),
		Diagnostics:               bulletItems(sections[sectionDiagnostics]),
		Actions:                   parseActions(sections[sectionRemediation]),
		MonitoringRecommendations: bulletItems(sections[sectionMonitoring]),
	}
	return plan, nil
}

// matchMarker reports whether a line is a section header. Models decorate
// headers unpredictably ("## ROOT CAUSE", "**Root Cause:**"), so matching
// strips markdown and ignores case. Content after the colon on the same
// line belongs to the section.
func matchMarker(line string) (marker, rest string, ok bool) {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "#* \t")
	upper := strings.ToUpper(s)

	for _, m := range sectionMarkers {
		if !strings.HasPrefix(upper, m) {
			continue
		}
		tail := strings.TrimSpace(strings.TrimLeft(s[len(m):], "*"))
		if tail == "" {
			return m, "", true
		}
		if strings.HasPrefix(tail, ":") {
			rest = strings.TrimSpace(strings.TrimLeft(tail[1:], "*"))
			return m, rest, true
		}
		// Extra words after the marker mean this is prose, not a header.
	}
	return "", "", false
}

func joinProse(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

var bulletPrefix = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)

func stripBullet(line string) string {
	return strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
}

// bulletItems strips list decoration and drops blank lines.
func bulletItems(lines []string) []string {
	var items []string
	for _, line := range lines {
		if item := stripBullet(line); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// parseActions extracts the ordered action list from the REMEDIATION STEPS
// lines. Commands appear as numbered or bulleted lines, inside fenced code
// blocks, or wrapped in inline backticks; attribute lines (confidence,
// risk, rollback) apply to the most recent action. Lines that parse as
// neither are treated as the description of the next command.
func parseActions(lines []string) []models.ResolutionAction {
	var actions []models.ResolutionAction
	pendingDesc := ""
	inFence := false

	for _, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if trimmed == "" {
			continue
		}

		candidate := trimmed
		if !inFence {
			candidate = strings.Trim(stripBullet(trimmed), "`")
		}

		if key, value, ok := attributeLine(candidate); ok {
			if len(actions) > 0 {
				applyAttribute(&actions[len(actions)-1], key, value)
			}
			continue
		}

		if action, ok := parseCommand(candidate); ok {
			action.Description = pendingDesc
			pendingDesc = ""
			actions = append(actions, action)
			continue
		}

		if !inFence {
			pendingDesc = strings.TrimSuffix(stripBullet(trimmed), ":")
		}
	}
	return actions
}

func attributeLine(line string) (key, value string, ok bool) {
	lower := strings.ToLower(line)
	for _, k := range []string{"confidence", "risk", "rollback"} {
		prefix := k + ":"
		if strings.HasPrefix(lower, prefix) {
			return k, strings.TrimSpace(line[len(prefix):]), true
		}
	}
	return "", "", false
}

func applyAttribute(action *models.ResolutionAction, key, value string) {
	switch key {
	case "confidence":
		f, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil {
			return
		}
		if f > 1 {
			// Models sometimes answer in percent despite the template.
			f /= 100
		}
		if f >= 0 && f <= 1 {
			action.Confidence = f
		}
	case "risk":
		if r := models.RiskLevel(strings.ToLower(value)); r.IsValid() {
			action.RiskLevel = r
		}
	case "rollback":
		if strings.EqualFold(value, "none") || strings.EqualFold(value, "not possible") {
			return
		}
		if rb, ok := parseCommand(strings.Trim(value, "`")); ok {
			action.Rollback = &models.RollbackSpec{
				ActionType: rb.ActionType,
				Params:     rb.Params,
			}
			action.RollbackPossible = true
		}
	}
}

// parseCommand maps one candidate line to an action. Two grammars are
// recognized: kubectl invocations and the structured
// "action: <type> key=value" form used for non-Kubernetes targets.
func parseCommand(line string) (models.ResolutionAction, bool) {
	tokens := splitArgs(line)
	if len(tokens) == 0 {
		return models.ResolutionAction{}, false
	}
	switch tokens[0] {
	case "kubectl":
		return inferKubectl(tokens[1:])
	case "action:":
		return inferStructured(tokens[1:])
	}
	return models.ResolutionAction{}, false
}

func inferStructured(tokens []string) (models.ResolutionAction, bool) {
	if len(tokens) == 0 {
		return models.ResolutionAction{}, false
	}
	at := models.ActionType(strings.ToLower(tokens[0]))
	if !at.IsKnown() {
		return models.ResolutionAction{}, false
	}
	params := map[string]string{}
	for _, kv := range tokens[1:] {
		if k, v, ok := strings.Cut(kv, "="); ok && v != "" {
			params[k] = v
		}
	}
	return newAction(at, params), true
}

func newAction(at models.ActionType, params map[string]string) models.ResolutionAction {
	return models.ResolutionAction{
		ActionType: at,
		Params:     params,
		Confidence: defaultConfidence,
	}
}

// splitArgs splits a command line on whitespace, honoring single and double
// quotes so JSON patch payloads survive as one token. Quotes themselves are
// stripped.
func splitArgs(s string) []string {
	var args []string
	var cur strings.Builder
	var quote rune

	flush := func() {
		if cur.Len() > 0 {
			args = append(args, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ' ' || r == '\t':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return args
}
