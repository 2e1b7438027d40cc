package pagerduty

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/models"
)

const incidentsPayload = `{
	"incidents": [
		{
			"id": "PT4KHLK",
			"title": "payments-api 5xx spike",
			"status": "triggered",
			"urgency": "high",
			"html_url": "https://acme.pagerduty.com/incidents/PT4KHLK",
			"created_at": "2026-08-26T09:00:00Z",
			"service": {"id": "PSVC1", "summary": "payments-api"}
		},
		{
			"id": "PT9QRST",
			"title": "checkout latency",
			"status": "acknowledged",
			"urgency": "low",
			"html_url": "https://acme.pagerduty.com/incidents/PT9QRST",
			"created_at": "2026-08-26T08:00:00Z",
			"service": {"id": "PSVC2", "summary": "checkout"}
		}
	]
}`

func connectedAdapter(t *testing.T, server *httptest.Server) *Adapter {
	t.Helper()
	t.Setenv("PAGERDUTY_API_KEY", "test-key")
	t.Setenv("PAGERDUTY_FROM_EMAIL", "oncall@acme.example")

	a, err := New(&config.PagerDutyAdapterConfig{BaseURL: server.URL})
	require.NoError(t, err)
	_, err = a.Connect(context.Background())
	require.NoError(t, err)
	return a
}

// apiServer answers the /abilities probe and delegates the rest.
func apiServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/abilities" {
			fmt.Fprint(w, `{"abilities":["sso"]}`)
			return
		}
		handler(w, r)
	}))
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration is nil")
}

func TestConnectRequiresAPIKey(t *testing.T) {
	t.Setenv("PAGERDUTY_API_KEY", "")

	a, err := New(&config.PagerDutyAdapterConfig{BaseURL: "http://localhost:1"})
	require.NoError(t, err)

	_, err = a.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAGERDUTY_API_KEY is empty")
}

func TestConnectReturnsCapabilities(t *testing.T) {
	server := apiServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	a := connectedAdapter(t, server)

	caps := a.Capabilities()
	assert.Len(t, caps, 3)
	assert.Contains(t, caps, models.ActionAcknowledgeIncident)
	assert.Contains(t, caps, models.ActionResolveIncident)
	assert.Contains(t, caps, models.ActionAddNote)
}

func TestConnectSendsAuthHeader(t *testing.T) {
	t.Setenv("PAGERDUTY_API_KEY", "secret-token")
	t.Setenv("PAGERDUTY_FROM_EMAIL", "oncall@acme.example")

	var gotAuth, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, `{"abilities":[]}`)
	}))
	defer server.Close()

	a, err := New(&config.PagerDutyAdapterConfig{BaseURL: server.URL})
	require.NoError(t, err)
	_, err = a.Connect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Token token=secret-token", gotAuth)
	assert.Equal(t, acceptHeader, gotAccept)
}

func TestFetchContextFiltersByService(t *testing.T) {
	server := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/incidents", r.URL.Path)
		assert.ElementsMatch(t, []string{"triggered", "acknowledged"}, r.URL.Query()["statuses[]"])
		fmt.Fprint(w, incidentsPayload)
	})
	defer server.Close()

	a := connectedAdapter(t, server)

	data, err := a.FetchContext(context.Background(), adapter.ContextParams{Service: "payments-api"})
	require.NoError(t, err)

	assert.Equal(t, 1, data["open_count"])
	open, ok := data["open_incidents"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, open, 1)
	assert.Equal(t, "PT4KHLK", open[0]["id"])
	assert.Equal(t, "triggered", open[0]["status"])
	assert.Equal(t, "payments-api", open[0]["service"])
}

func TestFetchContextNoServiceReturnsAll(t *testing.T) {
	server := apiServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, incidentsPayload)
	})
	defer server.Close()

	a := connectedAdapter(t, server)

	data, err := a.FetchContext(context.Background(), adapter.ContextParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, data["open_count"])
}

func TestFetchContextNotConnected(t *testing.T) {
	a, err := New(&config.PagerDutyAdapterConfig{})
	require.NoError(t, err)

	_, err = a.FetchContext(context.Background(), adapter.ContextParams{Service: "x"})
	assert.ErrorIs(t, err, adapter.ErrNotConnected)
}

func TestAcknowledgeIncident(t *testing.T) {
	var gotMethod, gotPath, gotFrom string
	var gotBody map[string]any
	server := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotFrom = r.Header.Get("From")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"incident":{"id":"PT4KHLK","status":"acknowledged"}}`)
	})
	defer server.Close()

	a := connectedAdapter(t, server)

	result, err := a.ExecuteAction(context.Background(), models.CommandSpec{
		ActionType: models.ActionAcknowledgeIncident,
		Args:       map[string]string{"incident_id": "PT4KHLK"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/incidents/PT4KHLK", gotPath)
	assert.Equal(t, "oncall@acme.example", gotFrom)

	incident, ok := gotBody["incident"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "incident_reference", incident["type"])
	assert.Equal(t, "acknowledged", incident["status"])

	assert.Equal(t, "PT4KHLK", result.Detail["incident_id"])
	assert.Equal(t, "acknowledged", result.Detail["status"])
}

func TestResolveIncidentWithResolution(t *testing.T) {
	var gotBody map[string]any
	server := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"incident":{"id":"PT4KHLK","status":"resolved"}}`)
	})
	defer server.Close()

	a := connectedAdapter(t, server)

	_, err := a.ExecuteAction(context.Background(), models.CommandSpec{
		ActionType: models.ActionResolveIncident,
		Args: map[string]string{
			"incident_id": "PT4KHLK",
			"resolution":  "restarted payments-api-abc-crash, replacement healthy",
		},
	})
	require.NoError(t, err)

	incident, ok := gotBody["incident"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "resolved", incident["status"])
	assert.Contains(t, incident["resolution"], "replacement healthy")
}

func TestAddNote(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"note":{"id":"N1"}}`)
	})
	defer server.Close()

	a := connectedAdapter(t, server)

	result, err := a.ExecuteAction(context.Background(), models.CommandSpec{
		ActionType: models.ActionAddNote,
		Args: map[string]string{
			"incident_id": "PT4KHLK",
			"content":     "automated analysis attached",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "/incidents/PT4KHLK/notes", gotPath)
	note, ok := gotBody["note"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "automated analysis attached", note["content"])
	assert.Contains(t, result.Stdout, "note added")
}

func TestExecuteActionArgValidation(t *testing.T) {
	server := apiServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	defer server.Close()

	a := connectedAdapter(t, server)

	_, err := a.ExecuteAction(context.Background(), models.CommandSpec{
		ActionType: models.ActionAcknowledgeIncident,
	})
	assert.ErrorContains(t, err, "requires 'incident_id'")

	_, err = a.ExecuteAction(context.Background(), models.CommandSpec{
		ActionType: models.ActionAddNote,
		Args:       map[string]string{"incident_id": "PT4KHLK"},
	})
	assert.ErrorContains(t, err, "requires 'content'")
}

func TestExecuteActionRequiresFromEmail(t *testing.T) {
	server := apiServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	defer server.Close()

	t.Setenv("PAGERDUTY_API_KEY", "test-key")
	t.Setenv("PAGERDUTY_FROM_EMAIL", "")

	a, err := New(&config.PagerDutyAdapterConfig{BaseURL: server.URL})
	require.NoError(t, err)
	_, err = a.Connect(context.Background())
	require.NoError(t, err)

	_, err = a.ExecuteAction(context.Background(), models.CommandSpec{
		ActionType: models.ActionAcknowledgeIncident,
		Args:       map[string]string{"incident_id": "PT4KHLK"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from-email is not configured")
}

func TestExecuteActionUnsupported(t *testing.T) {
	server := apiServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	defer server.Close()

	a := connectedAdapter(t, server)

	_, err := a.ExecuteAction(context.Background(), models.CommandSpec{ActionType: models.ActionRestartPod})
	assert.ErrorIs(t, err, adapter.ErrUnsupportedAction)
}

func TestRateLimitIsTransient(t *testing.T) {
	server := apiServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer server.Close()

	a := connectedAdapter(t, server)

	_, err := a.FetchContext(context.Background(), adapter.ContextParams{Service: "x"})
	require.Error(t, err)
	assert.True(t, adapter.IsTransient(err))
}

func TestServiceMatches(t *testing.T) {
	tests := []struct {
		summary string
		service string
		want    bool
	}{
		{"payments-api", "payments-api", true},
		{"Payments-API", "payments-api", true},
		{"payments-api (production)", "payments-api", true},
		{"payments", "payments-api", true},
		{"checkout", "payments-api", false},
		{"", "payments-api", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, serviceMatches(tt.summary, tt.service), "%q vs %q", tt.summary, tt.service)
	}
}
