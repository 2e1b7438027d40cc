// Package llm is the completion client for the analysis model. It speaks
// two provider protocols: OpenAI-compatible chat completions (hosted APIs
// and self-hosted gateways) and the Ollama generate API for local models.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/vigilops/vigil/pkg/config"
)

const (
	defaultTimeout       = 120 * time.Second
	defaultMaxTokens     = 4096
	defaultAPIKeyEnv     = "MODEL_API_KEY"
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOllamaBaseURL = "http://localhost:11434"

	// Analysis output feeds remediation decisions, so completions run
	// near-deterministic.
	defaultTemperature = 0.1
)

// Request is one completion exchange with the model.
type Request struct {
	// System sets the model's role and output contract.
	System string
	// Prompt carries the incident and its gathered context.
	Prompt string
}

// Response is the model output plus accounting for the audit trail.
type Response struct {
	Content    string
	Model      string
	TokensUsed int
	Latency    time.Duration
}

// Client is the provider-neutral completion interface the analysis engine
// depends on.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

var _ Client = (*HTTPClient)(nil)

// HTTPClient talks to a completion provider over HTTP.
type HTTPClient struct {
	cfg        config.LLMConfig
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient validates the config and resolves credentials. Ollama serves
// without a key; every other provider requires the configured env var to be
// set.
func NewClient(cfg *config.LLMConfig, logger *slog.Logger) (*HTTPClient, error) {
	if cfg == nil {
		return nil, errors.New("llm configuration is nil")
	}
	if !cfg.Provider.IsValid() {
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &HTTPClient{
		cfg:    *cfg,
		logger: logger.With("component", "llm"),
	}
	if c.cfg.Timeout <= 0 {
		c.cfg.Timeout = defaultTimeout
	}
	if c.cfg.MaxTokens <= 0 {
		c.cfg.MaxTokens = defaultMaxTokens
	}
	if c.cfg.BaseURL == "" {
		switch c.cfg.Provider {
		case config.LLMProviderTypeOllama:
			c.cfg.BaseURL = defaultOllamaBaseURL
		default:
			c.cfg.BaseURL = defaultOpenAIBaseURL
		}
	}
	if c.cfg.Provider != config.LLMProviderTypeOllama {
		env := c.cfg.APIKeyEnv
		if env == "" {
			env = defaultAPIKeyEnv
		}
		c.apiKey = os.Getenv(env)
		if c.apiKey == "" {
			return nil, fmt.Errorf("llm api key env %s is empty", env)
		}
	}
	c.httpClient = &http.Client{Timeout: c.cfg.Timeout}
	return c, nil
}

// Complete sends one request to the configured provider and returns the
// model output. An empty completion is an error: downstream parsing has
// nothing to recover from it.
func (c *HTTPClient) Complete(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, errors.New("prompt is empty")
	}

	start := time.Now()
	var (
		content string
		tokens  int
		err     error
	)
	switch c.cfg.Provider {
	case config.LLMProviderTypeOllama:
		content, tokens, err = c.completeOllama(ctx, req)
	default:
		content, tokens, err = c.completeOpenAI(ctx, req)
	}
	latency := time.Since(start)

	if err != nil {
		c.logger.Error("completion failed",
			"provider", c.cfg.Provider,
			"model", c.cfg.Model,
			"latency_ms", latency.Milliseconds(),
			"error", err)
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("model returned an empty completion")
	}

	c.logger.Info("completion finished",
		"provider", c.cfg.Provider,
		"model", c.cfg.Model,
		"prompt_chars", len(req.System)+len(req.Prompt),
		"tokens_used", tokens,
		"latency_ms", latency.Milliseconds())

	return &Response{
		Content:    content,
		Model:      c.cfg.Model,
		TokensUsed: tokens,
		Latency:    latency,
	}, nil
}
