package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/models"
)

func vectorResponse(value string) string {
	return fmt.Sprintf(`{"status":"success","data":{"resultType":"vector","result":[{"metric":{},"value":[1756200000,"%s"]}]}}`, value)
}

const emptyResponse = `{"status":"success","data":{"resultType":"vector","result":[]}}`

// metricsServer answers vector(1) probes and dispatches service queries by
// the metric name they contain.
func metricsServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		if query == "vector(1)" {
			fmt.Fprint(w, vectorResponse("1"))
			return
		}
		for metric, response := range responses {
			if strings.Contains(query, metric) {
				fmt.Fprint(w, response)
				return
			}
		}
		fmt.Fprint(w, emptyResponse)
	}))
}

func connectedAdapter(t *testing.T, cfg *config.PrometheusAdapterConfig) *Adapter {
	t.Helper()
	a, err := New(cfg)
	require.NoError(t, err)
	_, err = a.Connect(context.Background())
	require.NoError(t, err)
	return a
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil)
	assert.ErrorContains(t, err, "configuration is nil")

	_, err = New(&config.PrometheusAdapterConfig{})
	assert.ErrorContains(t, err, "base_url is required")
}

func TestConnectProbesServer(t *testing.T) {
	server := metricsServer(t, nil)
	defer server.Close()

	a, err := New(&config.PrometheusAdapterConfig{BaseURL: server.URL})
	require.NoError(t, err)

	actions, err := a.Connect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, actions)
	assert.NoError(t, a.Health(context.Background()))
}

func TestConnectFailsWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	a, err := New(&config.PrometheusAdapterConfig{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = a.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
	assert.True(t, adapter.IsTransient(err))
}

func TestHealthBeforeConnect(t *testing.T) {
	a, err := New(&config.PrometheusAdapterConfig{BaseURL: "http://localhost:9090"})
	require.NoError(t, err)
	assert.ErrorIs(t, a.Health(context.Background()), adapter.ErrNotConnected)
}

func TestExecuteActionUnsupported(t *testing.T) {
	server := metricsServer(t, nil)
	defer server.Close()

	a := connectedAdapter(t, &config.PrometheusAdapterConfig{BaseURL: server.URL})

	_, err := a.ExecuteAction(context.Background(), models.CommandSpec{ActionType: models.ActionScaleDeployment})
	assert.ErrorIs(t, err, adapter.ErrUnsupportedAction)
}

func TestFetchContextStandardTriple(t *testing.T) {
	server := metricsServer(t, map[string]string{
		"container_cpu_usage_seconds_total":        vectorResponse("0.25"),
		"container_memory_working_set_bytes":       vectorResponse("134217728"),
		"kube_pod_container_status_restarts_total": vectorResponse("3"),
	})
	defer server.Close()

	a := connectedAdapter(t, &config.PrometheusAdapterConfig{BaseURL: server.URL})

	data, err := a.FetchContext(context.Background(), adapter.ContextParams{Service: "payments-api"})
	require.NoError(t, err)

	assert.Equal(t, "250m", data["cpu"])
	assert.Equal(t, "128Mi", data["memory"])
	assert.Equal(t, 3, data["restarts"])
	assert.Equal(t, "5m", data["window"])
}

func TestFetchContextQueriesMatchServicePods(t *testing.T) {
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("query")
		if q != "vector(1)" {
			queries = append(queries, q)
		}
		fmt.Fprint(w, vectorResponse("1"))
	}))
	defer server.Close()

	a := connectedAdapter(t, &config.PrometheusAdapterConfig{
		BaseURL:     server.URL,
		QueryWindow: 10 * time.Minute,
	})

	_, err := a.FetchContext(context.Background(), adapter.ContextParams{Service: "checkout"})
	require.NoError(t, err)

	require.Len(t, queries, 3)
	for _, q := range queries {
		assert.Contains(t, q, `pod=~"checkout-.*"`)
	}
	assert.Contains(t, queries[0], "[10m]")
}

func TestFetchContextMissingSeriesSkipped(t *testing.T) {
	// Only cpu has samples; memory and restarts come back empty.
	server := metricsServer(t, map[string]string{
		"container_cpu_usage_seconds_total": vectorResponse("0.1"),
	})
	defer server.Close()

	a := connectedAdapter(t, &config.PrometheusAdapterConfig{BaseURL: server.URL})

	data, err := a.FetchContext(context.Background(), adapter.ContextParams{Service: "payments-api"})
	require.NoError(t, err)

	assert.Contains(t, data, "cpu")
	assert.NotContains(t, data, "memory")
	assert.NotContains(t, data, "restarts")
}

func TestFetchContextPartialQueryFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("query")
		if strings.Contains(q, "container_memory_working_set_bytes") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, vectorResponse("2"))
	}))
	defer server.Close()

	a := connectedAdapter(t, &config.PrometheusAdapterConfig{BaseURL: server.URL})

	data, err := a.FetchContext(context.Background(), adapter.ContextParams{Service: "payments-api"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory:")
	assert.Contains(t, data, "cpu")
	assert.Contains(t, data, "restarts")
}

func TestFetchContextNoService(t *testing.T) {
	server := metricsServer(t, nil)
	defer server.Close()

	a := connectedAdapter(t, &config.PrometheusAdapterConfig{BaseURL: server.URL})

	data, err := a.FetchContext(context.Background(), adapter.ContextParams{})
	require.NoError(t, err)
	assert.Equal(t, false, data["queried"])
}

func TestFetchContextNotConnected(t *testing.T) {
	a, err := New(&config.PrometheusAdapterConfig{BaseURL: "http://localhost:9090"})
	require.NoError(t, err)

	_, err = a.FetchContext(context.Background(), adapter.ContextParams{Service: "x"})
	assert.ErrorIs(t, err, adapter.ErrNotConnected)
}

func TestQueryPrometheusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("query") == "vector(1)" {
			fmt.Fprint(w, vectorResponse("1"))
			return
		}
		fmt.Fprint(w, `{"status":"error","error":"query parse error"}`)
	}))
	defer server.Close()

	a := connectedAdapter(t, &config.PrometheusAdapterConfig{BaseURL: server.URL})

	_, err := a.FetchContext(context.Background(), adapter.ContextParams{Service: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query parse error")
}

func TestSampleValue(t *testing.T) {
	v, ok, err := sampleValue([]any{1756200000.0, "0.25"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.25, v)

	_, _, err = sampleValue([]any{1756200000.0})
	assert.Error(t, err)

	_, _, err = sampleValue([]any{1756200000.0, 42})
	assert.Error(t, err)

	_, _, err = sampleValue([]any{1756200000.0, "not-a-number"})
	assert.Error(t, err)
}

func TestQueryWindowFormatting(t *testing.T) {
	a := &Adapter{cfg: &config.PrometheusAdapterConfig{}}

	assert.Equal(t, "5m", a.queryWindow(0))
	assert.Equal(t, "15m", a.queryWindow(15*time.Minute))
	assert.Equal(t, "90s", a.queryWindow(90*time.Second))

	b := &Adapter{cfg: &config.PrometheusAdapterConfig{QueryWindow: 30 * time.Minute}}
	assert.Equal(t, "30m", b.queryWindow(0))
}
