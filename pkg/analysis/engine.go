package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vigilops/vigil/pkg/llm"
	"github.com/vigilops/vigil/pkg/models"
)

// defaultAnalysisTimeout bounds one full analysis round trip. The LLM
// client carries its own transport timeout; this one is the pipeline's
// budget for the whole step.
const defaultAnalysisTimeout = 60 * time.Second

// Result is one analysis outcome: the typed plan plus the raw completion
// and accounting the audit trail stores alongside it.
type Result struct {
	Plan     *models.ResolutionPlan
	Raw      string
	Model    string
	Tokens   int
	Duration time.Duration
}

// Engine runs alert analysis against a completion client.
type Engine struct {
	client  llm.Client
	logger  *slog.Logger
	timeout time.Duration
}

// NewEngine creates an analysis engine. The client is required; timeout
// zero or below selects the default.
func NewEngine(client llm.Client, timeout time.Duration, logger *slog.Logger) (*Engine, error) {
	if client == nil {
		return nil, errors.New("llm client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultAnalysisTimeout
	}
	return &Engine{
		client:  client,
		logger:  logger.With("component", "analysis"),
		timeout: timeout,
	}, nil
}

// Analyze builds the prompt, queries the model, and parses the completion
// into a plan. Transport and parse failures surface as errors and drive the
// analysis-failed path; a clean parse with zero actions is a valid result
// and drives the analysis-empty path.
func (e *Engine) Analyze(ctx context.Context, alert *models.Alert, fingerprint string, bundles []models.ContextBundle) (*Result, error) {
	if alert == nil {
		return nil, errors.New("alert is required")
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := BuildPrompt(alert, fingerprint, bundles)
	resp, err := e.client.Complete(ctx, llm.Request{System: systemPrompt, Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("completing analysis: %w", err)
	}

	plan, err := ParsePlan(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parsing analysis response: %w", err)
	}

	e.logger.Info("analysis complete",
		"service", alert.Service,
		"actions", len(plan.Actions),
		"diagnostics", len(plan.Diagnostics),
		"tokens", resp.TokensUsed,
		"latency_ms", resp.Latency.Milliseconds())

	return &Result{
		Plan:     plan,
		Raw:      resp.Content,
		Model:    resp.Model,
		Tokens:   resp.TokensUsed,
		Duration: resp.Latency,
	}, nil
}
