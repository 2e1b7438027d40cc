package e2e

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/events"
	"github.com/vigilops/vigil/pkg/models"
)

// TestIncidentChannelStream subscribes to the per-incident channel while a
// scripted remediation runs and checks the full event narrative arrives in
// order: status transitions, the plan, and both execution milestones.
func TestIncidentChannelStream(t *testing.T) {
	cluster := NewFakeClusterAdapter(UnhealthyDeploymentState("payments", "prod"))
	cluster.OnExecute = func(cmd models.CommandSpec, state map[string]any) {
		replaceState(state, HealthyDeploymentState("payments", "prod"))
	}

	llm := NewScriptedLLMClient()
	llm.AddText(AnalysisResponse("bad rollout left payments in a crash loop",
		RestartDeploymentStep("payments", "prod", 0.92)...))

	app := NewTestApp(t, WithCluster(cluster), WithLLMClient(llm))

	id := app.SubmitIncidentAlert(t, "payments pods crash looping", "payments", "critical")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer ws.Close()
	require.NoError(t, ws.Subscribe(events.IncidentChannel(id)))

	_, err = ws.WaitForIncidentState("resolved", 30*time.Second)
	require.NoError(t, err)

	// Catchup plus live delivery must produce the whole narrative, in
	// event order regardless of where the subscription cut in.
	var transitions []string
	for _, ev := range ws.EventsOfType("incident.status") {
		to, _ := ev.Parsed["to"].(string)
		transitions = append(transitions, to)
	}
	assert.Equal(t, "resolved", transitions[len(transitions)-1])
	assert.Contains(t, transitions, "context_gathering")
	assert.Contains(t, transitions, "analyzing")
	assert.Contains(t, transitions, "executing")
	assert.Contains(t, transitions, "verifying")

	require.Len(t, ws.EventsOfType("plan.created"), 1)
	require.Len(t, ws.EventsOfType("execution.started"), 1)
	completed := ws.EventsOfType("execution.completed")
	require.Len(t, completed, 1)
	assert.Equal(t, "succeeded", completed[0].Parsed["status"])

	final := ws.EventsOfType("incident.status")
	last := final[len(final)-1]
	assert.Equal(t, string(models.ReasonRemediationVerified), last.Parsed["terminal_reason"])
}

// TestExecutionStartedStreamsBeforeSettle holds a command in flight and
// expects its execution.started event on the stream while it is still
// running, not after it settles.
func TestExecutionStartedStreamsBeforeSettle(t *testing.T) {
	inFlight := make(chan struct{})
	release := make(chan struct{})

	cluster := NewFakeClusterAdapter(UnhealthyDeploymentState("carts", "prod"))
	cluster.OnExecute = func(cmd models.CommandSpec, state map[string]any) {
		close(inFlight)
		<-release
		replaceState(state, HealthyDeploymentState("carts", "prod"))
	}

	llm := NewScriptedLLMClient()
	llm.AddText(AnalysisResponse("carts rollout stuck in a crash loop",
		RestartDeploymentStep("carts", "prod", 0.92)...))

	app := NewTestApp(t, WithCluster(cluster), WithLLMClient(llm))

	id := app.SubmitIncidentAlert(t, "carts pods crash looping", "carts", "critical")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer ws.Close()
	require.NoError(t, ws.Subscribe(events.IncidentChannel(id)))

	select {
	case <-inFlight:
	case <-time.After(waitTimeout):
		t.Fatal("command never reached the adapter")
	}

	started, err := ws.WaitForEventType("execution.started", 10*time.Second)
	require.NoError(t, err, "started event must arrive while the command is in flight")
	assert.Equal(t, "restart_deployment", started.Parsed["action_type"])
	assert.Empty(t, ws.EventsOfType("execution.completed"))

	close(release)
	_, err = ws.WaitForIncidentState("resolved", 30*time.Second)
	require.NoError(t, err)
}

// TestGlobalChannelSeesNewIncidents subscribes to the global feed before
// any alert arrives and expects the created event for each new incident.
func TestGlobalChannelSeesNewIncidents(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddText(EmptyAnalysisResponse("noise"))

	app := NewTestApp(t,
		WithCluster(NewFakeClusterAdapter(HealthyDeploymentState("search", "prod"))),
		WithLLMClient(llm),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer ws.Close()
	require.NoError(t, ws.Subscribe(events.GlobalIncidentsChannel))

	id := app.SubmitIncidentAlert(t, "search error rate elevated", "search", "medium")

	created, err := ws.WaitForEventType("incident.created", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, id, created.Parsed["incident_id"])
	assert.Equal(t, "search", created.Parsed["service"])
}

// TestLateSubscriberCatchesUp connects only after the incident is already
// terminal. The catchup replay must still deliver the full history.
func TestLateSubscriberCatchesUp(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddError(errors.New("model endpoint unreachable"))

	app := NewTestApp(t,
		WithCluster(NewFakeClusterAdapter(UnhealthyDeploymentState("ledger", "prod"))),
		WithLLMClient(llm),
	)

	id := app.SubmitIncidentAlert(t, "ledger pods not ready", "ledger", "critical")
	app.WaitForIncidentState(t, id, "failed")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer ws.Close()
	require.NoError(t, ws.Subscribe(events.IncidentChannel(id)))

	failedEv, err := ws.WaitForIncidentState("failed", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, string(models.ReasonAnalysisFailed), failedEv.Parsed["terminal_reason"])
}

// TestApprovalEventsStream watches approval.requested and approval.decided
// flow over the incident channel while an operator decides.
func TestApprovalEventsStream(t *testing.T) {
	cluster := NewFakeClusterAdapter(UnhealthyDeploymentState("orders", "prod"))
	cluster.OnExecute = func(cmd models.CommandSpec, state map[string]any) {
		replaceState(state, HealthyDeploymentState("orders", "prod"))
	}

	llm := NewScriptedLLMClient()
	llm.AddText(AnalysisResponse("orders deployment stuck",
		RestartDeploymentStep("orders", "prod", 0.9)...))

	app := NewTestApp(t,
		WithCluster(cluster),
		WithLLMClient(llm),
		WithAutonomy(ApprovalAutonomy()),
	)

	id := app.SubmitIncidentAlert(t, "orders pods not ready", "orders", "high")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer ws.Close()
	require.NoError(t, ws.Subscribe(events.IncidentChannel(id)))

	requested, err := ws.WaitForEventType("approval.requested", 30*time.Second)
	require.NoError(t, err)
	assert.Contains(t, requested.Parsed["command_preview"], "kubectl rollout restart")

	approval := app.WaitForPendingApproval(t, id)
	app.ApproveRequest(t, approval.ID, "sre-oncall")

	decided, err := ws.WaitForEventType("approval.decided", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "approved", decided.Parsed["decision"])
	assert.Equal(t, "sre-oncall", decided.Parsed["decided_by"])

	_, err = ws.WaitForIncidentState("resolved", 30*time.Second)
	require.NoError(t, err)
}
