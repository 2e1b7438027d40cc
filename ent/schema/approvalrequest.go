package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalRequest holds the schema definition for one parked action waiting
// on a human decision.
type ApprovalRequest struct {
	ent.Schema
}

// Fields of the ApprovalRequest.
func (ApprovalRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.String("incident_id").
			Immutable(),
		field.Int("action_index").
			Comment("Which plan action this decision unblocks"),
		field.Text("command_preview").
			Comment("Fully-expanded CommandSpec, stringified for the operator"),
		field.Enum("risk_level").
			Values("low", "medium", "high"),
		field.Float("confidence"),
		field.Enum("decision").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.String("decided_by").
			Optional().
			Nillable(),
		field.Time("decided_at").
			Optional().
			Nillable(),
		field.String("comment").
			Optional().
			Nillable(),
		field.Time("requested_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ApprovalRequest.
func (ApprovalRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("incident", Incident.Type).
			Ref("approvals").
			Field("incident_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ApprovalRequest.
func (ApprovalRequest) Indexes() []ent.Index {
	return []ent.Index{
		// Pending-queue listing
		index.Fields("decision", "requested_at"),
		index.Fields("incident_id"),
	}
}
