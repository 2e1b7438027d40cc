// Package e2e provides end-to-end test infrastructure for the vigil
// response engine: a full instance over a test database, with fake
// integration adapters and a scripted analysis model.
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/ent"
	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/analysis"
	"github.com/vigilops/vigil/pkg/api"
	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/database"
	"github.com/vigilops/vigil/pkg/events"
	"github.com/vigilops/vigil/pkg/exec"
	"github.com/vigilops/vigil/pkg/models"
	"github.com/vigilops/vigil/pkg/plan"
	"github.com/vigilops/vigil/pkg/queue"
	"github.com/vigilops/vigil/pkg/services"
	vigilslack "github.com/vigilops/vigil/pkg/slack"
	testdb "github.com/vigilops/vigil/test/database"
	"github.com/vigilops/vigil/test/util"
)

// TestApp boots a complete vigil instance for e2e testing.
type TestApp struct {
	// Core
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Mocks / test wiring
	LLMClient *ScriptedLLMClient
	Cluster   *FakeClusterAdapter
	PagerDuty *FakePagerDutyAdapter

	// Real infrastructure
	Autonomy       *config.AutonomyStore
	Breaker        *exec.Breaker
	EventPublisher *events.EventPublisher
	ConnManager    *events.ConnectionManager
	NotifyListener *events.NotifyListener
	WorkerPool     *queue.WorkerPool
	Server         *api.Server

	// Runtime
	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSURL   string // e.g. "ws://127.0.0.1:54321/ws"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	autonomy        *models.AutonomyConfig
	llmClient       *ScriptedLLMClient
	cluster         *FakeClusterAdapter
	pagerduty       *FakePagerDutyAdapter
	workerCount     int
	maxConcurrent   int
	incidentTimeout time.Duration
	quietPeriod     time.Duration
	dbClient        *database.Client    // injected DB client (for multi-replica tests)
	notifyConnStr   string              // injected LISTEN conn string (for multi-replica tests)
	podID           string              // custom pod ID (for multi-replica tests)
	slackService    *vigilslack.Service // optional Slack service
	webhookSecret   string
	dedupWindow     time.Duration
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithAutonomy sets the initial autonomy posture. Tests default to yolo
// with trust-all so low-risk scripted plans execute without approvals.
func WithAutonomy(cfg *models.AutonomyConfig) TestAppOption {
	return func(c *testAppConfig) { c.autonomy = cfg }
}

// WithLLMClient sets a pre-scripted analysis model client.
func WithLLMClient(client *ScriptedLLMClient) TestAppOption {
	return func(c *testAppConfig) { c.llmClient = client }
}

// WithCluster sets the fake cluster adapter, including its initial state.
func WithCluster(cluster *FakeClusterAdapter) TestAppOption {
	return func(c *testAppConfig) { c.cluster = cluster }
}

// WithPagerDuty registers a fake incident-management adapter so upstream
// notifications can be asserted.
func WithPagerDuty(pd *FakePagerDutyAdapter) TestAppOption {
	return func(c *testAppConfig) { c.pagerduty = pd }
}

// WithWorkerCount sets the number of worker pool goroutines.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithMaxConcurrentIncidents sets the concurrent processing cap.
func WithMaxConcurrentIncidents(n int) TestAppOption {
	return func(c *testAppConfig) { c.maxConcurrent = n }
}

// WithIncidentTimeout sets the per-incident processing deadline.
func WithIncidentTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.incidentTimeout = d }
}

// WithQuietPeriod sets the empty-plan settling wait. Tests that drive the
// analysis-empty path with a still-unhealthy subject shrink it to keep the
// suite fast.
func WithQuietPeriod(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.quietPeriod = d }
}

// WithDedupWindow sets the ingest dedup window.
func WithDedupWindow(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.dedupWindow = d }
}

// WithWebhookSecret enables HMAC checks on the webhook ingress.
func WithWebhookSecret(secret string) TestAppOption {
	return func(c *testAppConfig) { c.webhookSecret = secret }
}

// WithDBClient injects a pre-created database client, skipping the default
// per-test schema creation. Used for multi-replica tests where multiple
// TestApp instances share the same database schema. notifyConnStr must
// carry the same search_path as the client.
func WithDBClient(client *database.Client, notifyConnStr string) TestAppOption {
	return func(c *testAppConfig) {
		c.dbClient = client
		c.notifyConnStr = notifyConnStr
	}
}

// WithPodID overrides the auto-generated pod ID. Required for multi-replica
// tests so each replica gets a distinct identity for worker claiming and
// orphan detection.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// WithSlackService injects a Slack notification service into the worker
// pool. Used for testing notifications against a mock API server.
func WithSlackService(svc *vigilslack.Service) TestAppOption {
	return func(c *testAppConfig) { c.slackService = svc }
}

// YoloAutonomy is the default test posture: execute everything the gate
// trusts, no approvals, no confidence floor for low risk.
func YoloAutonomy() *models.AutonomyConfig {
	return &models.AutonomyConfig{
		Mode:                models.ModeYolo,
		ConfidenceThreshold: 0.5,
		YoloTrustAll:        true,
		DestructiveEnabled:  true,
	}
}

// ApprovalAutonomy routes medium and high risk to the approval queue.
func ApprovalAutonomy() *models.AutonomyConfig {
	return &models.AutonomyConfig{
		Mode:                models.ModeApproval,
		ConfidenceThreshold: 0.5,
		ApprovalRequiredFor: []models.RiskLevel{models.RiskMedium, models.RiskHigh},
		DestructiveEnabled:  true,
	}
}

// NewTestApp creates and starts a full vigil test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		workerCount:     1,
		incidentTimeout: 30 * time.Second,
		quietPeriod:     100 * time.Millisecond,
		dedupWindow:     5 * time.Minute,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.maxConcurrent == 0 {
		tc.maxConcurrent = tc.workerCount
	}
	if tc.autonomy == nil {
		tc.autonomy = YoloAutonomy()
	}
	if tc.llmClient == nil {
		tc.llmClient = NewScriptedLLMClient()
	}
	if tc.cluster == nil {
		tc.cluster = NewFakeClusterAdapter(nil)
	}

	queueCfg := &config.QueueConfig{
		WorkerCount:             tc.workerCount,
		MaxConcurrentIncidents:  tc.maxConcurrent,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      50 * time.Millisecond,
		IncidentTimeout:         tc.incidentTimeout,
		ExecutionGracePeriod:    5 * time.Second,
		HeartbeatInterval:       5 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         1 * time.Minute,
		QuietPeriod:             tc.quietPeriod,
	}
	cfg := &config.Config{
		Queue: queueCfg,
		Adapters: map[string]*config.AdapterConfig{
			"kubernetes": {Type: config.AdapterTypeKubernetes, Enabled: true},
		},
		Autonomy: tc.autonomy,
		Ingest:   &config.IngestConfig{DedupWindow: tc.dedupWindow},
	}

	// 1. Database — per-test schema unless a shared client is injected.
	var dbClient *database.Client
	notifyConnStr := tc.notifyConnStr
	if tc.dbClient != nil {
		dbClient = tc.dbClient
	} else {
		dbClient = testdb.NewTestClient(t)
		notifyConnStr = util.GetBaseConnectionString(t)
	}
	entClient := dbClient.Client

	// 2. Streaming infrastructure — real, backed by the test DB.
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.DB())
	connManager := events.NewConnectionManager(eventService, 5*time.Second)

	notifyListener := events.NewNotifyListener(notifyConnStr, connManager)
	ctx := context.Background()
	require.NoError(t, notifyListener.Start(ctx))
	connManager.SetListener(notifyListener)

	// 3. Adapters.
	registry := adapter.NewRegistry()
	require.NoError(t, registry.Register(tc.cluster))
	if tc.pagerduty != nil {
		require.NoError(t, registry.Register(tc.pagerduty))
		cfg.Adapters["pagerduty"] = &config.AdapterConfig{Type: config.AdapterTypePagerDuty, Enabled: true}
	}
	aggregator := adapter.NewAggregator(registry, cfg.Adapters, nil)

	// 4. Analysis over the scripted model.
	engine, err := analysis.NewEngine(tc.llmClient, 10*time.Second, nil)
	require.NoError(t, err)

	// 5. Domain services.
	autonomyStore := config.NewAutonomyStore(tc.autonomy)
	incidentService := services.NewIncidentService(entClient, tc.dedupWindow)
	executionService := services.NewExecutionService(entClient, nil)
	approvalService := services.NewApprovalService(entClient)
	auditService := services.NewAuditService(entClient)

	// 6. Execution.
	breaker := exec.NewBreaker(nil, nil)
	executor, err := exec.NewExecutor(registry, breaker, executionService, nil)
	require.NoError(t, err)
	planner := plan.NewPlanner(registry, nil)

	// 7. Pipeline and worker pool.
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
		Config:     queueCfg,
		EventSink:  eventPublisher,
	})
	require.NoError(t, err)

	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-test-%s", t.Name())
	}
	workerPool := queue.NewWorkerPool(podID, entClient, queueCfg, incidentService, pipeline, eventPublisher, tc.slackService)
	require.NoError(t, workerPool.Start(ctx))

	// 8. HTTP server on an ephemeral port.
	server, err := api.NewServer(api.ServerDeps{
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
		WebhookSecret: tc.webhookSecret,
	})
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	addr := ln.Addr().String()
	app := &TestApp{
		Config:         cfg,
		DBClient:       dbClient,
		EntClient:      entClient,
		LLMClient:      tc.llmClient,
		Cluster:        tc.cluster,
		PagerDuty:      tc.pagerduty,
		Autonomy:       autonomyStore,
		Breaker:        breaker,
		EventPublisher: eventPublisher,
		ConnManager:    connManager,
		NotifyListener: notifyListener,
		WorkerPool:     workerPool,
		Server:         server,
		BaseURL:        fmt.Sprintf("http://%s", addr),
		WSURL:          fmt.Sprintf("ws://%s/ws", addr),
		t:              t,
	}

	// Cleanup in reverse-creation order.
	t.Cleanup(func() {
		workerPool.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		notifyListener.Stop(context.Background())
		// DB cleanup handled by the test database setup
	})

	return app
}
