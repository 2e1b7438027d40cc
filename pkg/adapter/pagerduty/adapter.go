// Package pagerduty implements the incident-management integration over the
// PagerDuty REST v2 API. Context: open incidents for the alerting service.
// Actions: acknowledge_incident, resolve_incident, add_note; finalization
// uses them to close the loop with the paging platform.
package pagerduty

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/models"
)

// Name is the registry key for this adapter.
const Name = "pagerduty"

const (
	defaultBaseURL      = "https://api.pagerduty.com"
	defaultAPIKeyEnv    = "PAGERDUTY_API_KEY"
	defaultFromEmailEnv = "PAGERDUTY_FROM_EMAIL"
	requestTimeout      = 30 * time.Second

	// acceptHeader pins the REST API version.
	acceptHeader = "application/vnd.pagerduty+json;version=2"

	maxOpenIncidents = 25
)

var _ adapter.Adapter = (*Adapter)(nil)

// Adapter talks to one PagerDuty account. Incident updates need the From
// header, so a missing from-email leaves the adapter read-only.
type Adapter struct {
	cfg        *config.PagerDutyAdapterConfig
	baseURL    string
	httpClient *http.Client

	apiKey    string
	fromEmail string
	connected atomic.Bool
}

// New creates a disconnected adapter. Call Connect before use.
func New(cfg *config.PagerDutyAdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("pagerduty adapter configuration is nil")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Adapter{
		cfg:        cfg,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// Name implements adapter.Adapter.
func (a *Adapter) Name() string { return Name }

// Connect resolves credentials from the environment and probes the API.
func (a *Adapter) Connect(ctx context.Context) ([]models.ActionType, error) {
	keyEnv := a.cfg.APIKeyEnv
	if keyEnv == "" {
		keyEnv = defaultAPIKeyEnv
	}
	a.apiKey = os.Getenv(keyEnv)
	if a.apiKey == "" {
		return nil, fmt.Errorf("pagerduty api key env %s is empty", keyEnv)
	}

	fromEnv := a.cfg.FromEmailEnv
	if fromEnv == "" {
		fromEnv = defaultFromEmailEnv
	}
	a.fromEmail = os.Getenv(fromEnv)

	if _, err := a.do(ctx, http.MethodGet, "/abilities", nil, false); err != nil {
		return nil, fmt.Errorf("pagerduty unreachable: %w", err)
	}

	a.connected.Store(true)
	return a.Capabilities(), nil
}

// Health implements adapter.Adapter.
func (a *Adapter) Health(ctx context.Context) error {
	if !a.connected.Load() {
		return adapter.ErrNotConnected
	}
	_, err := a.do(ctx, http.MethodGet, "/abilities", nil, false)
	return err
}

// Capabilities implements adapter.Adapter.
func (a *Adapter) Capabilities() []models.ActionType {
	return []models.ActionType{
		models.ActionAcknowledgeIncident,
		models.ActionResolveIncident,
		models.ActionAddNote,
	}
}

// incidentRecord is the subset of a REST v2 incident the context needs.
type incidentRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Urgency   string `json:"urgency"`
	HTMLURL   string `json:"html_url"`
	CreatedAt string `json:"created_at"`
	Service   struct {
		ID      string `json:"id"`
		Summary string `json:"summary"`
	} `json:"service"`
}

// FetchContext lists open (triggered or acknowledged) incidents, filtered
// to the alerting service by name. Parallel pages for the same service are
// the strongest duplicate-work signal the analysis can get.
func (a *Adapter) FetchContext(ctx context.Context, params adapter.ContextParams) (map[string]any, error) {
	if !a.connected.Load() {
		return nil, adapter.ErrNotConnected
	}

	query := url.Values{
		"statuses[]": {"triggered", "acknowledged"},
		"limit":      {fmt.Sprintf("%d", maxOpenIncidents)},
		"sort_by":    {"created_at:desc"},
	}
	body, err := a.do(ctx, http.MethodGet, "/incidents?"+query.Encode(), nil, false)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}

	var envelope struct {
		Incidents []incidentRecord `json:"incidents"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("parse incidents response: %w", err)
	}

	open := make([]map[string]any, 0, len(envelope.Incidents))
	for _, inc := range envelope.Incidents {
		if params.Service != "" && !serviceMatches(inc.Service.Summary, params.Service) {
			continue
		}
		open = append(open, map[string]any{
			"id":         inc.ID,
			"title":      inc.Title,
			"status":     inc.Status,
			"urgency":    inc.Urgency,
			"service":    inc.Service.Summary,
			"created_at": inc.CreatedAt,
			"url":        inc.HTMLURL,
		})
	}

	return map[string]any{
		"open_incidents": open,
		"open_count":     len(open),
	}, nil
}

// ExecuteAction implements adapter.Adapter.
func (a *Adapter) ExecuteAction(ctx context.Context, cmd models.CommandSpec) (*models.CommandResult, error) {
	if !a.connected.Load() {
		return nil, adapter.ErrNotConnected
	}

	start := time.Now()
	var (
		result *models.CommandResult
		err    error
	)
	switch cmd.ActionType {
	case models.ActionAcknowledgeIncident:
		result, err = a.setIncidentStatus(ctx, cmd.Args, "acknowledged")
	case models.ActionResolveIncident:
		result, err = a.setIncidentStatus(ctx, cmd.Args, "resolved")
	case models.ActionAddNote:
		result, err = a.addNote(ctx, cmd.Args)
	default:
		return nil, fmt.Errorf("%w: %s", adapter.ErrUnsupportedAction, cmd.ActionType)
	}
	if err != nil {
		return nil, err
	}

	result.DurationMs = time.Since(start).Milliseconds()
	return result, nil
}

func (a *Adapter) setIncidentStatus(ctx context.Context, args map[string]string, status string) (*models.CommandResult, error) {
	incidentID := args["incident_id"]
	if incidentID == "" {
		return nil, fmt.Errorf("%s requires 'incident_id'", status)
	}
	if a.fromEmail == "" {
		return nil, fmt.Errorf("pagerduty from-email is not configured; incident updates are disabled")
	}

	payload := map[string]any{
		"incident": map[string]any{
			"type":   "incident_reference",
			"status": status,
		},
	}
	if resolution := args["resolution"]; resolution != "" && status == "resolved" {
		payload["incident"].(map[string]any)["resolution"] = resolution
	}

	if _, err := a.do(ctx, http.MethodPut, "/incidents/"+incidentID, payload, true); err != nil {
		return nil, fmt.Errorf("set incident %s %s: %w", incidentID, status, err)
	}

	return &models.CommandResult{
		Stdout: fmt.Sprintf("incident %s %s", incidentID, status),
		Detail: map[string]any{"incident_id": incidentID, "status": status},
	}, nil
}

func (a *Adapter) addNote(ctx context.Context, args map[string]string) (*models.CommandResult, error) {
	incidentID := args["incident_id"]
	if incidentID == "" {
		return nil, fmt.Errorf("add_note requires 'incident_id'")
	}
	content := args["content"]
	if content == "" {
		return nil, fmt.Errorf("add_note requires 'content'")
	}
	if a.fromEmail == "" {
		return nil, fmt.Errorf("pagerduty from-email is not configured; incident updates are disabled")
	}

	payload := map[string]any{
		"note": map[string]any{"content": content},
	}
	if _, err := a.do(ctx, http.MethodPost, "/incidents/"+incidentID+"/notes", payload, true); err != nil {
		return nil, fmt.Errorf("add note to incident %s: %w", incidentID, err)
	}

	return &models.CommandResult{
		Stdout: fmt.Sprintf("note added to incident %s", incidentID),
		Detail: map[string]any{"incident_id": incidentID},
	}, nil
}

// do issues one API request. withFrom adds the From header incident writes
// require.
func (a *Adapter) do(ctx context.Context, method, path string, payload any, withFrom bool) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Authorization", "Token token="+a.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withFrom {
		req.Header.Set("From", a.fromEmail)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, adapter.Transient(fmt.Errorf("pagerduty request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, adapter.Transient(fmt.Errorf("pagerduty returned HTTP %d: %s", resp.StatusCode, body))
	default:
		return nil, fmt.Errorf("pagerduty returned HTTP %d: %s", resp.StatusCode, body)
	}
}

// serviceMatches compares the PagerDuty service summary against the alert's
// service name; naming drifts between systems, so containment counts.
func serviceMatches(summary, service string) bool {
	s, q := strings.ToLower(summary), strings.ToLower(service)
	if s == "" {
		return false
	}
	return s == q || strings.Contains(s, q) || strings.Contains(q, s)
}
