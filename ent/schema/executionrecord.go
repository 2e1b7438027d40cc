package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionRecord holds the schema definition for one executed, skipped or
// rejected command within an incident.
type ExecutionRecord struct {
	ent.Schema
}

// Fields of the ExecutionRecord.
func (ExecutionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("incident_id").
			Immutable(),
		field.Int("action_index").
			Comment("Position of the owning action in the plan"),
		field.String("action_type"),
		field.JSON("params", map[string]string{}).
			Optional(),
		field.JSON("command", map[string]any{}).
			Optional().
			Comment("The expanded CommandSpec that was (or would have been) issued"),
		field.Enum("status").
			Values("pending", "executing", "succeeded", "failed", "rolled_back", "skipped", "rejected").
			Default("pending"),
		field.String("skip_reason").
			Optional().
			Nillable(),
		field.Text("detail").
			Optional().
			Comment("Gate reason detail or failure explanation"),
		field.Text("stdout").
			Optional(),
		field.Text("stderr").
			Optional(),
		field.Int("exit_code").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.JSON("verification", map[string]any{}).
			Optional().
			Comment("VerificationResult when a post-condition was checked"),
		field.String("rollback_of").
			Optional().
			Nillable().
			Comment("Execution this record undid, when this is a rollback"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ExecutionRecord.
func (ExecutionRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("incident", Incident.Type).
			Ref("executions").
			Field("incident_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ExecutionRecord.
func (ExecutionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("incident_id", "action_index"),
		index.Fields("incident_id", "created_at"),
	}
}
