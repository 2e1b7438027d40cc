package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Incident holds the schema definition for the Incident entity — the core
// tracked object for one deduplicated problem from ingest to terminal state.
type Incident struct {
	ent.Schema
}

// Fields of the Incident.
func (Incident) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("incident_id").
			Unique().
			Immutable(),
		field.String("fingerprint").
			Immutable().
			Comment("Deterministic dedup key over source+service+signature"),
		field.String("alert_id").
			Immutable().
			Comment("Externally-assigned id of the originating alert"),
		field.Enum("source").
			Values("pagerduty", "cloudwatch", "manual").
			Immutable(),
		field.Enum("severity").
			Values("critical", "high", "medium", "low"),
		field.String("service").
			Comment("Owning system named by the alert"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.JSON("alert", map[string]any{}).
			Comment("Originating alert payload"),
		field.JSON("alert_history", []map[string]any{}).
			Optional().
			Comment("Later arrivals collapsed into this incident by dedup"),
		field.Enum("state").
			Values(
				"received",
				"deduplicated",
				"context_gathering",
				"analyzing",
				"analysis_failed",
				"analysis_empty",
				"awaiting_approval",
				"resuming",
				"executing",
				"verifying",
				"resolved",
				"failed",
				"abandoned",
			).
			Default("received"),
		field.Enum("terminal_outcome").
			Values("resolved", "failed", "abandoned").
			Optional().
			Nillable(),
		field.String("terminal_reason").
			Optional().
			Nillable(),
		field.JSON("context", map[string]any{}).
			Optional().
			Comment("adapter_name → ContextBundle"),
		field.JSON("plan", map[string]any{}).
			Optional().
			Comment("Parsed ResolutionPlan"),
		field.Int("next_action").
			Default(0).
			Comment("Resume cursor: first action index not yet decided/executed"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("Pod/worker that currently owns this incident"),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("Refreshed while claimed; stale heartbeats mark orphans"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Incident.
func (Incident) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("executions", ExecutionRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("approvals", ApprovalRequest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Incident.
func (Incident) Indexes() []ent.Index {
	return []ent.Index{
		// Worker claim scans (state IN (received, resuming) ORDER BY created_at)
		index.Fields("state", "created_at"),
		// Dedup window lookups
		index.Fields("fingerprint", "created_at"),
		// Orphan detection
		index.Fields("state", "heartbeat_at"),
		index.Fields("service"),
	}
}
