// Package runbook implements the documentation integration: it resolves and
// fetches the operational runbook for an alerting service so the analysis
// prompt can cite the team's own procedures. Context only, no actions.
package runbook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/models"
)

// Name is the registry key for this adapter.
const Name = "runbook"

const (
	defaultCacheTTL = 10 * time.Minute
	fetchTimeout    = 30 * time.Second
	defaultTokenEnv = "GITHUB_TOKEN"
)

// ErrNotFound marks a runbook URL that resolved to HTTP 404.
var ErrNotFound = errors.New("runbook not found")

var _ adapter.Adapter = (*Adapter)(nil)

// Adapter fetches runbook documents over HTTP. Per-alert URLs win; without
// one the repository convention <repo_url>/<service>.md is tried. Fetched
// content is cached in memory with TTL expiry.
type Adapter struct {
	cfg        *config.RunbookAdapterConfig
	httpClient *http.Client
	cache      *cache

	token     string
	connected atomic.Bool
}

// New creates a disconnected adapter. Call Connect before use.
func New(cfg *config.RunbookAdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("runbook adapter configuration is nil")
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Adapter{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: fetchTimeout},
		cache:      newCache(ttl),
	}, nil
}

// Name implements adapter.Adapter.
func (a *Adapter) Name() string { return Name }

// Connect validates the configured repository URL and resolves the access
// token from the environment. The token may be absent; public repositories
// work without one.
func (a *Adapter) Connect(_ context.Context) ([]models.ActionType, error) {
	if a.cfg.RepoURL != "" {
		if err := validateURL(a.cfg.RepoURL, a.cfg.AllowedDomains); err != nil {
			return nil, fmt.Errorf("runbook repo_url: %w", err)
		}
	}

	tokenEnv := a.cfg.TokenEnv
	if tokenEnv == "" {
		tokenEnv = defaultTokenEnv
	}
	a.token = os.Getenv(tokenEnv)

	a.connected.Store(true)
	return nil, nil
}

// Health implements adapter.Adapter. The adapter is stateless HTTP; once
// configured it is healthy, and fetch failures surface per incident.
func (a *Adapter) Health(_ context.Context) error {
	if !a.connected.Load() {
		return adapter.ErrNotConnected
	}
	return nil
}

// Capabilities implements adapter.Adapter. A documentation source performs
// no actions.
func (a *Adapter) Capabilities() []models.ActionType { return nil }

// ExecuteAction implements adapter.Adapter.
func (a *Adapter) ExecuteAction(_ context.Context, cmd models.CommandSpec) (*models.CommandResult, error) {
	return nil, fmt.Errorf("%w: %s", adapter.ErrUnsupportedAction, cmd.ActionType)
}

// FetchContext resolves the runbook for the alert. An alert-supplied URL
// takes priority; otherwise the repository convention is tried, and a miss
// there is not an error: most services simply have no runbook yet.
func (a *Adapter) FetchContext(ctx context.Context, params adapter.ContextParams) (map[string]any, error) {
	if !a.connected.Load() {
		return nil, adapter.ErrNotConnected
	}

	rawURL, explicit := a.resolveURL(params)
	if rawURL == "" {
		return map[string]any{"found": false}, nil
	}

	if err := validateURL(rawURL, a.cfg.AllowedDomains); err != nil {
		return nil, fmt.Errorf("runbook url %s: %w", rawURL, err)
	}

	content, err := a.fetchWithCache(ctx, rawURL)
	if err != nil {
		if !explicit && errors.Is(err, ErrNotFound) {
			return map[string]any{"found": false, "url": rawURL}, nil
		}
		return nil, err
	}

	return map[string]any{
		"found":   true,
		"url":     rawURL,
		"content": content,
	}, nil
}

// resolveURL picks the runbook location: the alert's own runbook_url field
// when present, else the <repo_url>/<service>.md convention.
func (a *Adapter) resolveURL(params adapter.ContextParams) (rawURL string, explicit bool) {
	if params.Alert != nil && params.Alert.Raw != nil {
		if v, ok := params.Alert.Raw["runbook_url"].(string); ok && v != "" {
			return v, true
		}
	}
	if a.cfg.RepoURL != "" && params.Service != "" {
		return strings.TrimRight(a.cfg.RepoURL, "/") + "/" + params.Service + ".md", false
	}
	return "", false
}

func (a *Adapter) fetchWithCache(ctx context.Context, rawURL string) (string, error) {
	downloadURL := rawContentURL(rawURL)

	if content, ok := a.cache.get(downloadURL); ok {
		return content, nil
	}

	content, err := a.fetch(ctx, downloadURL)
	if err != nil {
		return "", err
	}

	a.cache.set(downloadURL, content)
	return content, nil
}

func (a *Adapter) fetch(ctx context.Context, downloadURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", adapter.Transient(fmt.Errorf("fetch runbook from %s: %w", downloadURL, err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrNotFound, downloadURL)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", adapter.Transient(fmt.Errorf("runbook host returned HTTP %d for %s", resp.StatusCode, downloadURL))
	default:
		return "", fmt.Errorf("runbook host returned HTTP %d for %s", resp.StatusCode, downloadURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read runbook body: %w", err)
	}
	return string(body), nil
}
