package incident

import (
	"strconv"
	"strings"

	"github.com/vigilops/vigil/pkg/models"
)

// Evidence summarizes what the pipeline observed by finalization time.
type Evidence struct {
	// VerifiedSuccess is true when at least one execution succeeded and its
	// verification predicate passed.
	VerifiedSuccess bool

	// AttemptedExecution is true when at least one command actually ran
	// against the target system, regardless of how it ended.
	AttemptedExecution bool

	// SubjectGone is true when the alerting subject can no longer be located.
	SubjectGone bool

	// ProblemsObserved is true when the subject still shows problems.
	ProblemsObserved bool
}

// Outcome applies the resolution rule to the evidence. An incident resolves
// only on a verified successful execution, or on the subject disappearing
// after at least one attempted execution. A subject that merely looks
// healthy now, with nothing done to it, is abandoned as auto-recovered; the
// resolveOnClear opt-in relaxes that one case to resolved. A subject still
// showing problems fails: no_executable_actions when every command was
// refused, execution_failed when commands ran and did not stick.
func Outcome(ev Evidence, resolveOnClear bool) (models.IncidentState, models.TerminalReason) {
	switch {
	case ev.VerifiedSuccess:
		return models.StateResolved, models.ReasonRemediationVerified
	case ev.SubjectGone && ev.AttemptedExecution:
		return models.StateResolved, models.ReasonSubjectGone
	case !ev.ProblemsObserved && resolveOnClear:
		return models.StateResolved, models.ReasonExternalRecovery
	case !ev.ProblemsObserved:
		return models.StateAbandoned, models.ReasonAutoRecovered
	case !ev.AttemptedExecution:
		return models.StateFailed, models.ReasonNoExecutableActions
	default:
		return models.StateFailed, models.ReasonExecutionFailed
	}
}

// Attempted reports whether a status represents a command that actually ran
// against the target system. Skipped, pending, and rejected commands never
// touched it.
func Attempted(status models.ExecutionStatus) bool {
	switch status {
	case models.ExecutionSucceeded, models.ExecutionFailed, models.ExecutionRolledBack:
		return true
	default:
		return false
	}
}

// Verified reports whether an execution proves remediation: it succeeded and
// its predicate passed. Success without a predicate is not proof.
func Verified(status models.ExecutionStatus, v *models.VerificationResult) bool {
	return status == models.ExecutionSucceeded && v != nil && v.Passed
}

// AssessContext derives subject evidence from a fresh cluster context fetch.
// Nil data (the fetch failed) reads as problems still present: blindness
// never counts as recovery.
func AssessContext(data map[string]any) (subjectGone, problemsObserved bool) {
	if data == nil {
		return false, true
	}
	pods := mapSlice(data["pods"])
	deployment, hasDeployment := data["deployment"].(map[string]any)
	if len(deployment) == 0 {
		hasDeployment = false
	}
	if !hasDeployment && len(pods) == 0 {
		return true, false
	}

	for _, pod := range pods {
		if podProblem(pod) {
			return false, true
		}
	}
	if hasDeployment {
		desired := toInt(deployment["desired"])
		ready := toInt(deployment["ready"])
		unavailable := toInt(deployment["unavailable"])
		if ready < desired || unavailable > 0 {
			return false, true
		}
	}
	return false, false
}

// podProblem flags a pod that is not cleanly up right now. Historical
// restart counts do not flag: a pod that crashed and recovered is healthy.
func podProblem(pod map[string]any) bool {
	phase, _ := pod["phase"].(string)
	if phase == "Succeeded" {
		// Completed job pods report 0/1 ready forever.
		return false
	}
	if phase != "" && phase != "Running" {
		return true
	}
	if reason, _ := pod["waiting_reason"].(string); reason != "" {
		return true
	}
	if ready, _ := pod["ready"].(string); ready != "" {
		if have, want, ok := splitReady(ready); ok && have < want {
			return true
		}
	}
	return false
}

func splitReady(s string) (have, want int, ok bool) {
	left, right, found := strings.Cut(s, "/")
	if !found {
		return 0, 0, false
	}
	have, err1 := strconv.Atoi(strings.TrimSpace(left))
	want, err2 := strconv.Atoi(strings.TrimSpace(right))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return have, want, true
}

func mapSlice(v any) []map[string]any {
	switch items := v.(type) {
	case []map[string]any:
		return items
	case []any:
		out := make([]map[string]any, 0, len(items))
		for _, item := range items {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
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
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}
