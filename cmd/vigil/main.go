// Vigil response engine server — ingests alerts over HTTP, manages queue
// workers, and drives incidents from context gathering through analysis,
// gated execution, and verification.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/adapter/kubernetes"
	"github.com/vigilops/vigil/pkg/adapter/pagerduty"
	"github.com/vigilops/vigil/pkg/adapter/prometheus"
	"github.com/vigilops/vigil/pkg/adapter/runbook"
	"github.com/vigilops/vigil/pkg/analysis"
	"github.com/vigilops/vigil/pkg/api"
	"github.com/vigilops/vigil/pkg/cleanup"
	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/database"
	"github.com/vigilops/vigil/pkg/events"
	"github.com/vigilops/vigil/pkg/exec"
	"github.com/vigilops/vigil/pkg/llm"
	"github.com/vigilops/vigil/pkg/masking"
	"github.com/vigilops/vigil/pkg/models"
	"github.com/vigilops/vigil/pkg/plan"
	"github.com/vigilops/vigil/pkg/queue"
	"github.com/vigilops/vigil/pkg/services"
	"github.com/vigilops/vigil/pkg/slack"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()
	logger := slog.Default()

	slog.Info("Starting Vigil",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (applies pending migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup cleanup of claims left by this pod's previous life
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan is the backstop
	}

	// 4. Autonomy posture — seeded from config, mutated through the API
	autonomyStore := config.NewAutonomyStore(cfg.Autonomy)

	// 5. Adapters: construct, connect, register. A configured adapter that
	// cannot connect is a broken deployment, not a degraded one.
	registry := adapter.NewRegistry()
	if err := buildAdapters(ctx, cfg, autonomyStore, registry); err != nil {
		slog.Error("Adapter startup failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Adapters connected", "names", registry.Names())

	healthMonitor := adapter.NewHealthMonitor(registry, 30*time.Second)
	healthMonitor.Start(ctx)
	defer healthMonitor.Stop()

	maskingService := masking.NewService(cfg.Adapters, logger)
	aggregator := adapter.NewAggregator(registry, cfg.Adapters, maskingService)

	// 6. Analysis: model client and engine
	llmClient, err := llm.NewClient(cfg.LLM, logger)
	if err != nil {
		slog.Error("Failed to initialize model client", "error", err)
		os.Exit(1)
	}
	engine, err := analysis.NewEngine(llmClient, cfg.LLM.Timeout, logger)
	if err != nil {
		slog.Error("Failed to initialize analysis engine", "error", err)
		os.Exit(1)
	}

	// 7. Domain services over the shared client
	incidentService := services.NewIncidentService(dbClient.Client, cfg.Ingest.DedupWindow)
	executionService := services.NewExecutionService(dbClient.Client, maskingService)
	approvalService := services.NewApprovalService(dbClient.Client)
	auditService := services.NewAuditService(dbClient.Client)
	eventService := services.NewEventService(dbClient.DB())
	slog.Info("Services initialized")

	// 8. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(eventService, 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 9. Execution: circuit breaker (state changes go to the live stream),
	// planner, executor
	var breaker *exec.Breaker
	breaker = exec.NewBreaker(logger, func(from, to models.BreakerState) {
		payload := events.BreakerStatusPayload{
			BasePayload: events.BasePayload{
				Type:      events.EventTypeBreakerStatus,
				Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
			},
			From:                from,
			To:                  to,
			ConsecutiveFailures: breaker.Snapshot().ConsecutiveFailures,
		}
		if err := eventPublisher.PublishBreakerStatus(context.Background(), payload); err != nil {
			slog.Warn("Failed to publish breaker status", "error", err)
		}
	})
	planner := plan.NewPlanner(registry, logger)
	executor, err := exec.NewExecutor(registry, breaker, executionService, logger)
	if err != nil {
		slog.Error("Failed to initialize executor", "error", err)
		os.Exit(1)
	}

	// 10. Slack notifications (nil service disables them)
	var slackService *slack.Service
	if cfg.Slack.Enabled {
		slackService = slack.NewService(slack.ServiceConfig{
			Token:        os.Getenv(cfg.Slack.TokenEnv),
			Channel:      cfg.Slack.Channel,
			DashboardURL: cfg.DashboardURL,
		})
		if slackService == nil {
			slog.Warn("Slack notifications enabled but token or channel missing; notifications disabled")
		}
	}

	// 11. Incident pipeline and worker pool
	pipeline, err := queue.NewPipeline(queue.PipelineDeps{
		Incidents:  incidentService,
		Executions: executionService,
		Approvals:  approvalService,
		Aggregator: aggregator,
		Registry:   registry,
		Engine:     engine,
		Planner:    planner,
		Executor:   executor,
		Autonomy:   autonomyStore,
		Config:     cfg.Queue,
		EventSink:  eventPublisher,
		Logger:     logger,
	})
	if err != nil {
		slog.Error("Failed to build incident pipeline", "error", err)
		os.Exit(1)
	}

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, incidentService, pipeline, eventPublisher, slackService)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 12. Retention
	cleanupService := cleanup.NewService(cfg.Retention, incidentService, auditService, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 13. HTTP server
	httpServer, err := api.NewServer(api.ServerDeps{
		Config:        cfg,
		DBClient:      dbClient,
		Incidents:     incidentService,
		Executions:    executionService,
		Approvals:     approvalService,
		Audits:        auditService,
		Events:        eventService,
		Publisher:     eventPublisher,
		ConnMgr:       connManager,
		Autonomy:      autonomyStore,
		Breaker:       breaker,
		WorkerPool:    workerPool,
		WebhookSecret: os.Getenv(cfg.Ingest.WebhookSecretEnv),
		AuthToken:     os.Getenv("API_AUTH_TOKEN"),
	})
	if err != nil {
		slog.Error("Failed to build HTTP server", "error", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Vigil started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"mode", autonomyStore.Snapshot().Mode)

	// 14. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 15. Graceful shutdown: drain workers first so in-flight incidents
	// settle, then the HTTP server
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete incidents will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// buildAdapters constructs every enabled adapter, connects it, and registers
// it. Connect failures abort startup: an engine that silently lost its
// acting cluster or its runbooks makes worse decisions than one that is down.
func buildAdapters(ctx context.Context, cfg *config.Config, autonomy *config.AutonomyStore, registry *adapter.Registry) error {
	for name, ac := range cfg.Adapters {
		if !ac.Enabled {
			slog.Info("Adapter disabled", "adapter", name)
			continue
		}

		var (
			a   adapter.Adapter
			err error
		)
		switch ac.Type {
		case config.AdapterTypeKubernetes:
			a, err = kubernetes.New(ac.Kubernetes, autonomy)
		case config.AdapterTypeRunbook:
			a, err = runbook.New(ac.Runbook)
		case config.AdapterTypePrometheus:
			a, err = prometheus.New(ac.Prometheus)
		case config.AdapterTypePagerDuty:
			a, err = pagerduty.New(ac.PagerDuty)
		default:
			return fmt.Errorf("adapter %q: unknown type %q", name, ac.Type)
		}
		if err != nil {
			return err
		}

		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		actions, err := a.Connect(connectCtx)
		cancel()
		if err != nil {
			return err
		}
		if err := registry.Register(a); err != nil {
			return err
		}
		slog.Info("Adapter connected", "adapter", a.Name(), "actions", len(actions))
	}
	return nil
}
