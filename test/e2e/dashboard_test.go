package e2e

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/models"
)

// TestDashboardEndpoints drives two incidents to different terminal states
// and exercises the read-side API a dashboard depends on: list filtering,
// incident detail, execution trail, audit trail, and system health.
func TestDashboardEndpoints(t *testing.T) {
	cluster := NewFakeClusterAdapter(UnhealthyDeploymentState("payments", "prod"))
	cluster.OnExecute = func(cmd models.CommandSpec, state map[string]any) {
		replaceState(state, HealthyDeploymentState("payments", "prod"))
	}

	llm := NewScriptedLLMClient()
	llm.AddText(AnalysisResponse("payments deployment wedged",
		RestartDeploymentStep("payments", "prod", 0.92)...))
	llm.AddError(errors.New("model endpoint returned 503"))

	app := NewTestApp(t, WithCluster(cluster), WithLLMClient(llm))

	resolvedID := app.SubmitIncidentAlert(t, "payments pods crash looping", "payments", "critical")
	app.WaitForIncidentState(t, resolvedID, "resolved")

	failedID := app.SubmitIncidentAlert(t, "search error rate elevated", "search", "medium")
	app.WaitForIncidentState(t, failedID, "failed")

	// Unfiltered list sees both.
	all := app.GetIncidentList(t, "")
	assert.Equal(t, float64(2), all["total_count"])

	// State filter.
	resolved := app.GetIncidentList(t, "state=resolved")
	assert.Equal(t, float64(1), resolved["total_count"])
	incidents, _ := resolved["incidents"].([]interface{})
	require.Len(t, incidents, 1)
	first, _ := incidents[0].(map[string]interface{})
	assert.Equal(t, resolvedID, first["id"])

	// Service and severity filters.
	assert.Equal(t, float64(1), app.GetIncidentList(t, "service=search")["total_count"])
	assert.Equal(t, float64(1), app.GetIncidentList(t, "severity=critical")["total_count"])
	assert.Equal(t, float64(0), app.GetIncidentList(t, "state=resolved&service=search")["total_count"])

	// Pagination.
	page := app.GetIncidentList(t, "limit=1&offset=0")
	assert.Equal(t, float64(2), page["total_count"])
	pageIncidents, _ := page["incidents"].([]interface{})
	assert.Len(t, pageIncidents, 1)

	// Detail view.
	detail := app.GetIncident(t, resolvedID)
	assert.Equal(t, "resolved", detail["state"])
	assert.Equal(t, "payments", detail["service"])
	assert.Equal(t, string(models.ReasonRemediationVerified), detail["terminal_reason"])

	// Execution trail.
	execs := app.GetExecutions(t, resolvedID)
	assert.Equal(t, float64(1), execs["total_count"])
	execList, _ := execs["executions"].([]interface{})
	require.Len(t, execList, 1)
	rec, _ := execList[0].(map[string]interface{})
	assert.Equal(t, "succeeded", rec["status"])

	// Unknown incident conflicts with nothing: plain 404.
	app.getJSON(t, "/api/v1/incidents/no-such-incident", http.StatusNotFound)

	// Health: everything green.
	health := app.GetHealth(t)
	assert.Equal(t, "healthy", health["status"])
	checks, _ := health["checks"].(map[string]interface{})
	require.Contains(t, checks, "database")
	require.Contains(t, checks, "worker_pool")
	require.Contains(t, checks, "circuit_breaker")
}

// TestAutonomyReadAndUpdate flips the posture through the API and checks
// the change is both effective and visible.
func TestAutonomyReadAndUpdate(t *testing.T) {
	app := NewTestApp(t)

	current := app.GetAutonomy(t)
	assert.Equal(t, "yolo", current["mode"])

	updated := app.doJSON(t, http.MethodPut, "/api/v1/autonomy", map[string]any{
		"mode":                 "plan",
		"confidence_threshold": 0.8,
	}, http.StatusOK)
	assert.Equal(t, "plan", updated["mode"])
	assert.Equal(t, 0.8, updated["confidence_threshold"])

	after := app.GetAutonomy(t)
	assert.Equal(t, "plan", after["mode"])

	// The running store sees the new posture, not just the API echo.
	assert.Equal(t, models.ModePlan, app.Autonomy.Snapshot().Mode)

	// Invalid mode is rejected and changes nothing.
	app.doJSON(t, http.MethodPut, "/api/v1/autonomy", map[string]any{
		"mode": "full-send",
	}, http.StatusBadRequest)
	assert.Equal(t, models.ModePlan, app.Autonomy.Snapshot().Mode)
}

// TestAuditTrailOnAbort verifies operator actions leave an audit entry on
// the incident they touched.
func TestAuditTrailOnAbort(t *testing.T) {
	blocked := make(chan struct{}, 1)
	llm := NewScriptedLLMClient()
	llm.Add(LLMScriptEntry{BlockUntilCancelled: true, OnBlock: blocked})

	app := NewTestApp(t,
		WithLLMClient(llm),
		WithCluster(NewFakeClusterAdapter(UnhealthyDeploymentState("api", "prod"))),
		WithMaxConcurrentIncidents(1),
	)

	app.SubmitIncidentAlert(t, "api gateway 5xx surge", "api", "critical")
	<-blocked

	queuedID := app.SubmitIncidentAlert(t, "api cache evictions", "api-cache", "medium")
	app.postJSON(t, "/api/v1/incidents/"+queuedID+"/abort", nil, http.StatusOK)

	audit := app.GetAudit(t, queuedID)
	entries, _ := audit["entries"].([]interface{})
	require.NotEmpty(t, entries)
	entry, _ := entries[0].(map[string]interface{})
	assert.Equal(t, "abort incident", entry["command"])
}
