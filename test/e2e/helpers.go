package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/ent"
	entapproval "github.com/vigilops/vigil/ent/approvalrequest"
	entexecution "github.com/vigilops/vigil/ent/executionrecord"
	entincident "github.com/vigilops/vigil/ent/incident"
)

// ────────────────────────────────────────────────────────────
// HTTP Client Helpers
// ────────────────────────────────────────────────────────────

// SubmitAlert posts a manual alert and returns the parsed 202 response
// (incident_id, state, deduplicated).
func (app *TestApp) SubmitAlert(t *testing.T, title, service, severity string) map[string]interface{} {
	t.Helper()
	return app.SubmitAlertWithNamespace(t, title, service, severity, "")
}

// SubmitAlertWithNamespace posts a manual alert scoped to a cluster
// namespace.
func (app *TestApp) SubmitAlertWithNamespace(t *testing.T, title, service, severity, namespace string) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{
		"title":    title,
		"service":  service,
		"severity": severity,
	}
	if namespace != "" {
		body["namespace"] = namespace
	}
	return app.postJSON(t, "/api/v1/alerts", body, http.StatusAccepted)
}

// SubmitIncidentAlert submits an alert and returns the new incident ID.
func (app *TestApp) SubmitIncidentAlert(t *testing.T, title, service, severity string) string {
	t.Helper()
	resp := app.SubmitAlert(t, title, service, severity)
	id, _ := resp["incident_id"].(string)
	require.NotEmpty(t, id, "submit response missing incident_id")
	return id
}

// GetIncident retrieves an incident by ID.
func (app *TestApp) GetIncident(t *testing.T, incidentID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/incidents/"+incidentID, http.StatusOK)
}

// GetIncidentList calls GET /api/v1/incidents with optional query params.
func (app *TestApp) GetIncidentList(t *testing.T, queryParams string) map[string]interface{} {
	t.Helper()
	path := "/api/v1/incidents"
	if queryParams != "" {
		path += "?" + queryParams
	}
	return app.getJSON(t, path, http.StatusOK)
}

// GetExecutions calls GET /api/v1/incidents/:id/executions.
func (app *TestApp) GetExecutions(t *testing.T, incidentID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/incidents/"+incidentID+"/executions", http.StatusOK)
}

// GetAudit calls GET /api/v1/incidents/:id/audit.
func (app *TestApp) GetAudit(t *testing.T, incidentID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/incidents/"+incidentID+"/audit", http.StatusOK)
}

// GetPendingApprovals calls GET /api/v1/approvals.
func (app *TestApp) GetPendingApprovals(t *testing.T) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/approvals", http.StatusOK)
}

// ApproveRequest approves a pending approval.
func (app *TestApp) ApproveRequest(t *testing.T, approvalID, decidedBy string) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/api/v1/approvals/"+approvalID+"/approve",
		map[string]string{"decided_by": decidedBy}, http.StatusOK)
}

// RejectRequest rejects a pending approval.
func (app *TestApp) RejectRequest(t *testing.T, approvalID, decidedBy, comment string) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/api/v1/approvals/"+approvalID+"/reject",
		map[string]string{"decided_by": decidedBy, "comment": comment}, http.StatusOK)
}

// GetHealth calls GET /api/v1/health.
func (app *TestApp) GetHealth(t *testing.T) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/health", http.StatusOK)
}

// GetAutonomy calls GET /api/v1/autonomy.
func (app *TestApp) GetAutonomy(t *testing.T) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/autonomy", http.StatusOK)
}

func (app *TestApp) postJSON(t *testing.T, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	return app.doJSON(t, http.MethodPost, path, body, expectedStatus)
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]interface{} {
	t.Helper()
	return app.doJSON(t, http.MethodGet, path, nil, expectedStatus)
}

func (app *TestApp) doJSON(t *testing.T, method, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equalf(t, expectedStatus, resp.StatusCode, "%s %s: unexpected status, body: %s", method, path, raw)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &result))
	return result
}

// ────────────────────────────────────────────────────────────
// Polling Helpers
// ────────────────────────────────────────────────────────────

const (
	waitTimeout  = 30 * time.Second
	pollInterval = 100 * time.Millisecond
)

// WaitForIncidentState polls the DB until the incident reaches one of the
// expected states. Returns the state it landed on.
func (app *TestApp) WaitForIncidentState(t *testing.T, incidentID string, expected ...string) string {
	t.Helper()
	var actual string
	require.Eventually(t, func() bool {
		inc, err := app.EntClient.Incident.Get(context.Background(), incidentID)
		if err != nil {
			return false
		}
		actual = string(inc.State)
		for _, exp := range expected {
			if actual == exp {
				return true
			}
		}
		return false
	}, waitTimeout, pollInterval,
		"incident %s did not reach state %v (last: %s)", incidentID, expected, actual)
	return actual
}

// WaitForPendingApproval polls until a pending approval exists for the
// incident and returns it.
func (app *TestApp) WaitForPendingApproval(t *testing.T, incidentID string) *ent.ApprovalRequest {
	t.Helper()
	var found *ent.ApprovalRequest
	require.Eventually(t, func() bool {
		resp, err := app.EntClient.ApprovalRequest.Query().All(context.Background())
		if err != nil {
			return false
		}
		for _, a := range resp {
			if a.IncidentID == incidentID && a.Decision == entapproval.DecisionPending {
				found = a
				return true
			}
		}
		return false
	}, waitTimeout, pollInterval,
		"no pending approval appeared for incident %s", incidentID)
	return found
}

// WaitForNIncidentsInState waits until exactly n incidents have the given
// state. The DB query is inlined so transient errors retry instead of
// aborting the test.
func (app *TestApp) WaitForNIncidentsInState(t *testing.T, n int, state string) {
	t.Helper()
	var lastCount int
	require.Eventually(t, func() bool {
		incidents, err := app.EntClient.Incident.Query().
			Where(entincident.StateEQ(entincident.State(state))).
			All(context.Background())
		if err != nil {
			return false
		}
		lastCount = len(incidents)
		return lastCount == n
	}, waitTimeout, pollInterval,
		"expected %d incidents in state %q, last saw %d", n, state, lastCount)
}

// ────────────────────────────────────────────────────────────
// DB Query Helpers
// ────────────────────────────────────────────────────────────

// QueryExecutions returns all execution records for an incident in action
// order.
func (app *TestApp) QueryExecutions(t *testing.T, incidentID string) []*ent.ExecutionRecord {
	t.Helper()
	records, err := app.EntClient.ExecutionRecord.Query().
		Where(entexecution.IncidentID(incidentID)).
		Order(ent.Asc(entexecution.FieldActionIndex), ent.Asc(entexecution.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return records
}

// QueryIncident fetches the incident row directly.
func (app *TestApp) QueryIncident(t *testing.T, incidentID string) *ent.Incident {
	t.Helper()
	inc, err := app.EntClient.Incident.Get(context.Background(), incidentID)
	require.NoError(t, err)
	return inc
}

// ────────────────────────────────────────────────────────────
// Scripted plan builders
// ────────────────────────────────────────────────────────────

// AnalysisResponse builds a model completion in the response template, with
// the given remediation lines verbatim.
func AnalysisResponse(rootCause string, remediation ...string) string {
	resp := "ROOT CAUSE: " + rootCause + "\n" +
		"IMPACT ASSESSMENT: degraded capacity on the alerting service\n" +
		"IMMEDIATE ACTIONS:\n- check recent deploys\n" +
		"REMEDIATION STEPS:\n"
	for _, line := range remediation {
		resp += line + "\n"
	}
	resp += "MONITORING RECOMMENDATIONS:\n- watch restart counts for 30 minutes\n"
	return resp
}

// EmptyAnalysisResponse builds a well-formed completion with no executable
// remediation steps.
func EmptyAnalysisResponse(rootCause string) string {
	return "ROOT CAUSE: " + rootCause + "\n" +
		"IMPACT ASSESSMENT: none observed\n" +
		"REMEDIATION STEPS:\nNone required, the condition cleared.\n"
}

// RestartDeploymentStep renders a scripted restart action with attributes.
func RestartDeploymentStep(deployment, namespace string, confidence float64) []string {
	return []string{
		fmt.Sprintf("1. `kubectl rollout restart deployment/%s -n %s`", deployment, namespace),
		fmt.Sprintf("   Confidence: %.2f", confidence),
		"   Risk: medium",
	}
}
