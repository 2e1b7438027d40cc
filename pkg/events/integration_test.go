package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/database"
	"github.com/vigilops/vigil/pkg/models"
	"github.com/vigilops/vigil/pkg/services"
	testdb "github.com/vigilops/vigil/test/database"
	"github.com/vigilops/vigil/test/util"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	incidentID   string // events table has no FK, a bare UUID suffices
	channel      string // incident:<incidentID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	incidentID := uuid.New().String()
	channel := IncidentChannel(incidentID)

	// Real components. EventService satisfies CatchupQuerier directly.
	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.DB())
	manager := NewConnectionManager(eventService, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		incidentID:   incidentID,
		channel:      channel,
	}
}

// connectWS opens a WebSocket to the test server and returns the connection.
// The connection is automatically closed on test cleanup.
func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// readUntilMatch reads messages until one satisfies the predicate. The
// global incidents channel is a database-wide NOTIFY namespace, so a test
// subscribed there may see traffic from concurrently running test schemas;
// unrelated messages are skipped, not failed on.
func readUntilMatch(t *testing.T, conn *websocket.Conn, match func(map[string]any) bool) map[string]any {
	t.Helper()
	for i := 0; i < 20; i++ {
		msg := readJSONTimeout(t, conn, 5*time.Second)
		if match(msg) {
			return msg
		}
	}
	t.Fatal("expected event did not arrive within 20 messages")
	return nil
}

// payloadMap unmarshals a stored event's payload for assertions.
func payloadMap(t *testing.T, evt models.StoredEvent) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(evt.Payload, &m))
	return m
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the given channel, reads subscription.confirmed, and waits
// for the LISTEN to propagate.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T, channel string) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	// Read connection.established
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	// Read subscription.confirmed
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for the async LISTEN goroutine to complete on the NotifyListener's
	// dedicated connection, polling instead of sleeping.
	require.Eventually(t, func() bool {
		return env.listener.isListening(channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", channel)

	return conn
}

// statusPayload builds an incident.status payload for the env's incident.
func (env *streamingTestEnv) statusPayload(from, to models.IncidentState, reason models.TerminalReason) IncidentStatusPayload {
	return IncidentStatusPayload{
		BasePayload: BasePayload{
			Type:       EventTypeIncidentStatus,
			IncidentID: env.incidentID,
			Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		},
		From:           from,
		To:             to,
		TerminalReason: reason,
	}
}

// executionStartedPayload builds an execution.started payload with a
// distinguishable action index.
func (env *streamingTestEnv) executionStartedPayload(actionIndex int) ExecutionStartedPayload {
	return ExecutionStartedPayload{
		BasePayload: BasePayload{
			Type:       EventTypeExecutionStarted,
			IncidentID: env.incidentID,
			Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		},
		ExecutionID: uuid.New().String(),
		ActionIndex: actionIndex,
		ActionType:  models.ActionRestartDeployment,
		Command:     "kubectl rollout restart deployment/payments -n prod",
		RiskLevel:   models.RiskMedium,
	}
}

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish first event (incident created)
	err := env.publisher.PublishIncidentCreated(ctx, env.incidentID, IncidentCreatedPayload{
		BasePayload: BasePayload{
			Type:       EventTypeIncidentCreated,
			IncidentID: env.incidentID,
			Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		},
		Service:     "payments",
		Severity:    models.SeverityCritical,
		Source:      models.AlertSourcePagerDuty,
		Title:       "CrashLoopBackOff on payments",
		State:       models.StateReceived,
		Fingerprint: "a1b2c3d4e5f60718",
	})
	require.NoError(t, err)

	// Publish second event (state transition)
	err = env.publisher.PublishIncidentStatus(ctx, env.incidentID,
		env.statusPayload(models.StateReceived, models.StateDeduplicated, ""))
	require.NoError(t, err)

	// Query persisted events via EventService
	events, err := env.eventService.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.incidentID, events[0].IncidentID)
	assert.Equal(t, env.channel, events[0].Channel)
	p0 := payloadMap(t, events[0])
	assert.Equal(t, EventTypeIncidentCreated, p0["type"])
	assert.Equal(t, "payments", p0["service"])

	p1 := payloadMap(t, events[1])
	assert.Equal(t, EventTypeIncidentStatus, p1["type"])
	assert.Equal(t, string(models.StateDeduplicated), p1["to"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_MirrorNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// A mirrored event writes exactly one row, on the incident channel.
	err := env.publisher.PublishIncidentStatus(ctx, env.incidentID,
		env.statusPayload(models.StateReceived, models.StateDeduplicated, ""))
	require.NoError(t, err)

	incidentEvents, err := env.eventService.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, incidentEvents, 1)

	// The events table is schema-scoped, so this only sees rows written by
	// this test: the global mirror must not have persisted a second copy.
	globalEvents, err := env.eventService.EventsSince(ctx, GlobalIncidentsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, globalEvents, "global mirror should be NOTIFY-only, not persisted")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Connect, subscribe, and wait for LISTEN to propagate
	conn := env.subscribeAndWait(t, env.channel)

	// Publish a persistent event via EventPublisher
	started := env.executionStartedPayload(0)
	err := env.publisher.PublishExecutionStarted(ctx, env.incidentID, started)
	require.NoError(t, err)

	// Read from WebSocket — the event should arrive via pg_notify → listener → manager
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeExecutionStarted, msg["type"])
	assert.Equal(t, started.ExecutionID, msg["execution_id"])
	assert.Equal(t, env.incidentID, msg["incident_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_GlobalMirrorDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Subscribe to the global feed, not the incident channel
	conn := env.subscribeAndWait(t, GlobalIncidentsChannel)

	err := env.publisher.PublishApprovalRequested(ctx, env.incidentID, ApprovalRequestedPayload{
		BasePayload: BasePayload{
			Type:       EventTypeApprovalRequested,
			IncidentID: env.incidentID,
			Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		},
		ApprovalID:     "appr-1",
		ActionIndex:    0,
		CommandPreview: "kubectl scale deployment/payments --replicas=5 -n prod",
		RiskLevel:      models.RiskHigh,
		Confidence:     0.7,
	})
	require.NoError(t, err)

	msg := readUntilMatch(t, conn, func(m map[string]any) bool {
		return m["incident_id"] == env.incidentID
	})
	assert.Equal(t, EventTypeApprovalRequested, msg["type"])
	assert.Equal(t, "appr-1", msg["approval_id"])
	// The mirror relays the original payload untouched; the durable copy
	// (and its replay cursor) live on the incident channel.
	assert.Nil(t, msg["db_event_id"])
}

func TestIntegration_BreakerStatusOnGlobalChannel(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t, GlobalIncidentsChannel)

	err := env.publisher.PublishBreakerStatus(ctx, BreakerStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeBreakerStatus,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		},
		From:                models.BreakerClosed,
		To:                  models.BreakerOpen,
		ConsecutiveFailures: 3,
	})
	require.NoError(t, err)

	// Breaker events are persisted on the global channel, so the delivered
	// message carries a db_event_id unlike the transient mirrors.
	msg := readUntilMatch(t, conn, func(m map[string]any) bool {
		return m["type"] == EventTypeBreakerStatus
	})
	assert.Equal(t, string(models.BreakerOpen), msg["to"])
	assert.NotNil(t, msg["db_event_id"])

	events, err := env.eventService.EventsSince(ctx, GlobalIncidentsChannel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Empty(t, events[0].IncidentID, "breaker events have no owning incident")
}

func TestIntegration_IncidentTimelineOrdering(t *testing.T) {
	// A subscriber sees the incident's lifecycle in publish order: NOTIFY
	// fires in commit order and each message carries an increasing row id.
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t, env.channel)

	require.NoError(t, env.publisher.PublishIncidentStatus(ctx, env.incidentID,
		env.statusPayload(models.StateReceived, models.StateDeduplicated, "")))
	require.NoError(t, env.publisher.PublishPlanCreated(ctx, env.incidentID, PlanCreatedPayload{
		BasePayload: BasePayload{
			Type:       EventTypePlanCreated,
			IncidentID: env.incidentID,
			Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		},
		RootCause:   "memory limit too low",
		ActionCount: 1,
		Actions: []PlannedActionSummary{
			{Index: 0, ActionType: models.ActionRestartDeployment, Description: "restart", RiskLevel: models.RiskMedium, Confidence: 0.9},
		},
	}))
	require.NoError(t, env.publisher.PublishExecutionStarted(ctx, env.incidentID, env.executionStartedPayload(0)))
	require.NoError(t, env.publisher.PublishIncidentStatus(ctx, env.incidentID,
		env.statusPayload(models.StateVerifying, models.StateResolved, models.ReasonRemediationVerified)))

	wantTypes := []string{
		EventTypeIncidentStatus,
		EventTypePlanCreated,
		EventTypeExecutionStarted,
		EventTypeIncidentStatus,
	}
	var lastID float64
	for i, want := range wantTypes {
		msg := readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, want, msg["type"], "event %d out of order", i)
		id, ok := msg["db_event_id"].(float64)
		require.True(t, ok, "event %d missing db_event_id", i)
		assert.Greater(t, id, lastID, "row ids must increase in publish order")
		lastID = id
	}

	// The terminal status event carries the reason
	events, err := env.eventService.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 4)
	last := payloadMap(t, events[3])
	assert.Equal(t, string(models.ReasonRemediationVerified), last["terminal_reason"])
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishExecutionStarted(ctx, env.incidentID, env.executionStartedPayload(i))
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Read all 3 auto-catchup events in order
	for i := 1; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeExecutionStarted, msg["type"])
		assert.Equal(t, float64(i), msg["action_index"])
	}

	// Explicit catchup from the first event's ID — should return only events 2 and 3
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for i := 2; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, float64(i), msg["action_index"])
	}

	// No more messages — verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}
