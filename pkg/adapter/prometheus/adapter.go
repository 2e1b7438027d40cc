// Package prometheus implements the metrics integration: instant PromQL
// queries against a Prometheus HTTP API for the alerting service's cpu,
// memory, and restart counts. Context only, no actions.
package prometheus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/models"
)

// Name is the registry key for this adapter.
const Name = "prometheus"

const (
	queryTimeout       = 30 * time.Second
	defaultQueryWindow = 5 * time.Minute
)

var _ adapter.Adapter = (*Adapter)(nil)

// Adapter queries one Prometheus server. Queries match the service's pods
// by name prefix, the same convention the cluster adapter uses.
type Adapter struct {
	cfg        *config.PrometheusAdapterConfig
	baseURL    string
	httpClient *http.Client
	connected  atomic.Bool
}

// New creates a disconnected adapter. Call Connect before use.
func New(cfg *config.PrometheusAdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("prometheus adapter configuration is nil")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("prometheus base_url is required")
	}

	return &Adapter{
		cfg:        cfg,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: queryTimeout},
	}, nil
}

// Name implements adapter.Adapter.
func (a *Adapter) Name() string { return Name }

// Connect probes the server with a constant query.
func (a *Adapter) Connect(ctx context.Context) ([]models.ActionType, error) {
	if _, _, err := a.query(ctx, "vector(1)"); err != nil {
		return nil, fmt.Errorf("prometheus unreachable at %s: %w", a.baseURL, err)
	}
	a.connected.Store(true)
	return nil, nil
}

// Health implements adapter.Adapter.
func (a *Adapter) Health(ctx context.Context) error {
	if !a.connected.Load() {
		return adapter.ErrNotConnected
	}
	_, _, err := a.query(ctx, "vector(1)")
	return err
}

// Capabilities implements adapter.Adapter. A metrics source performs no
// actions.
func (a *Adapter) Capabilities() []models.ActionType { return nil }

// ExecuteAction implements adapter.Adapter.
func (a *Adapter) ExecuteAction(_ context.Context, cmd models.CommandSpec) (*models.CommandResult, error) {
	return nil, fmt.Errorf("%w: %s", adapter.ErrUnsupportedAction, cmd.ActionType)
}

// FetchContext runs the standard triple for the service: cpu usage rate,
// working-set memory, and restart count over the query window. A metric
// the server has no series for is skipped, not failed; a query error is
// collected and the rest still land.
func (a *Adapter) FetchContext(ctx context.Context, params adapter.ContextParams) (map[string]any, error) {
	if !a.connected.Load() {
		return nil, adapter.ErrNotConnected
	}
	if params.Service == "" {
		return map[string]any{"queried": false}, nil
	}

	window := a.queryWindow(params.Window)
	selector := fmt.Sprintf(`pod=~"%s-.*"`, params.Service)
	data := map[string]any{"window": window}
	var errs []error

	cpuQuery := fmt.Sprintf(`sum(rate(container_cpu_usage_seconds_total{%s}[%s]))`, selector, window)
	if cores, ok, err := a.query(ctx, cpuQuery); err != nil {
		errs = append(errs, fmt.Errorf("cpu: %w", err))
	} else if ok {
		data["cpu"] = fmt.Sprintf("%.0fm", cores*1000)
	}

	memQuery := fmt.Sprintf(`sum(container_memory_working_set_bytes{%s})`, selector)
	if bytes, ok, err := a.query(ctx, memQuery); err != nil {
		errs = append(errs, fmt.Errorf("memory: %w", err))
	} else if ok {
		data["memory"] = fmt.Sprintf("%.0fMi", bytes/(1024*1024))
	}

	restartQuery := fmt.Sprintf(`sum(increase(kube_pod_container_status_restarts_total{%s}[%s]))`, selector, window)
	if restarts, ok, err := a.query(ctx, restartQuery); err != nil {
		errs = append(errs, fmt.Errorf("restarts: %w", err))
	} else if ok {
		data["restarts"] = int(restarts)
	}

	return data, errors.Join(errs...)
}

func (a *Adapter) queryWindow(requested time.Duration) string {
	window := requested
	if window <= 0 {
		window = a.cfg.QueryWindow
	}
	if window <= 0 {
		window = defaultQueryWindow
	}
	if window == window.Truncate(time.Minute) {
		return fmt.Sprintf("%dm", int(window.Minutes()))
	}
	return fmt.Sprintf("%ds", int(window.Seconds()))
}

// queryResponse is the Prometheus HTTP API envelope for instant queries.
type queryResponse struct {
	Status string `json:"status"`
	Data   struct {
		ResultType string `json:"resultType"`
		Result     []struct {
			Metric map[string]string `json:"metric"`
			Value  []any             `json:"value"`
		} `json:"result"`
	} `json:"data"`
	Error string `json:"error"`
}

// query runs one instant query. The second return reports whether the
// result held any samples.
func (a *Adapter) query(ctx context.Context, promql string) (float64, bool, error) {
	params := url.Values{
		"query": {promql},
		"time":  {strconv.FormatInt(time.Now().Unix(), 10)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/api/v1/query?"+params.Encode(), nil)
	if err != nil {
		return 0, false, fmt.Errorf("create request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return 0, false, adapter.Transient(fmt.Errorf("prometheus request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, false, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return 0, false, adapter.Transient(fmt.Errorf("prometheus returned HTTP %d: %s", resp.StatusCode, body))
	}
	if resp.StatusCode != http.StatusOK {
		return 0, false, fmt.Errorf("prometheus returned HTTP %d: %s", resp.StatusCode, body)
	}

	var envelope queryResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return 0, false, fmt.Errorf("parse prometheus response: %w", err)
	}
	if envelope.Status != "success" {
		return 0, false, fmt.Errorf("prometheus error: %s", envelope.Error)
	}
	if len(envelope.Data.Result) == 0 {
		return 0, false, nil
	}

	return sampleValue(envelope.Data.Result[0].Value)
}

// sampleValue pulls the float out of an instant-vector sample, which is a
// [timestamp, "value"] pair with the value as a string.
func sampleValue(pair []any) (float64, bool, error) {
	if len(pair) != 2 {
		return 0, false, fmt.Errorf("malformed sample: %v", pair)
	}
	s, ok := pair[1].(string)
	if !ok {
		return 0, false, fmt.Errorf("malformed sample value: %v", pair[1])
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse sample value %q: %w", s, err)
	}
	return v, true, nil
}
