package e2e

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entincident "github.com/vigilops/vigil/ent/incident"
	"github.com/vigilops/vigil/pkg/models"
	testdb "github.com/vigilops/vigil/test/database"
)

// TestMultiReplicaClaiming runs two replicas against one schema and floods
// them with alerts. Row-level claiming must hand every incident to exactly
// one worker: no incident is processed twice, none is lost.
func TestMultiReplicaClaiming(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	cluster := NewFakeClusterAdapter(HealthyDeploymentState("web", "prod"))

	const incidents = 6

	newReplica := func(name string) *TestApp {
		llm := NewScriptedLLMClient()
		for i := 0; i < incidents; i++ {
			llm.AddText(EmptyAnalysisResponse("transient, already recovered"))
		}
		return NewTestApp(t,
			WithDBClient(shared.NewClient(t), shared.ConnString()),
			WithPodID(name),
			WithCluster(cluster),
			WithLLMClient(llm),
			WithWorkerCount(2),
		)
	}
	replicaA := newReplica("replica-a")
	newReplica("replica-b")

	for i := 0; i < incidents; i++ {
		replicaA.SubmitAlert(t, fmt.Sprintf("web shard %d degraded", i), fmt.Sprintf("web-%d", i), "medium")
	}

	replicaA.WaitForNIncidentsInState(t, incidents, "abandoned")

	all, err := replicaA.EntClient.Incident.Query().
		Where(entincident.StateEQ(entincident.StateAbandoned)).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, incidents)
	for _, inc := range all {
		require.NotNil(t, inc.TerminalReason)
		assert.Equal(t, string(models.ReasonAutoRecovered), *inc.TerminalReason)
		assert.Empty(t, replicaA.QueryExecutions(t, inc.ID))
	}
}

// TestApprovalDecidedOnOtherReplica parks an approval on one replica and
// decides it through the other's API. Whichever replica re-claims the
// resuming incident must finish the remediation.
func TestApprovalDecidedOnOtherReplica(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	cluster := NewFakeClusterAdapter(UnhealthyDeploymentState("orders", "prod"))
	cluster.OnExecute = func(cmd models.CommandSpec, state map[string]any) {
		replaceState(state, HealthyDeploymentState("orders", "prod"))
	}

	newReplica := func(name string) *TestApp {
		llm := NewScriptedLLMClient()
		llm.AddText(AnalysisResponse("orders deployment stuck",
			RestartDeploymentStep("orders", "prod", 0.9)...))
		return NewTestApp(t,
			WithDBClient(shared.NewClient(t), shared.ConnString()),
			WithPodID(name),
			WithCluster(cluster),
			WithLLMClient(llm),
			WithAutonomy(ApprovalAutonomy()),
		)
	}
	replicaA := newReplica("replica-a")
	replicaB := newReplica("replica-b")

	id := replicaA.SubmitIncidentAlert(t, "orders pods not ready", "orders", "high")
	approval := replicaA.WaitForPendingApproval(t, id)

	// Parked incidents hold no claim, so any replica may take the decision.
	replicaB.ApproveRequest(t, approval.ID, "sre-oncall")

	replicaA.WaitForIncidentState(t, id, "resolved")

	records := replicaA.QueryExecutions(t, id)
	require.Len(t, records, 1)
	assert.Len(t, cluster.Executed(), 1, "the approved command must run exactly once")
}
