package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEntry holds the schema definition for the append-only audit log.
// Deliberately not edged to Incident: audit outlives incident retention,
// so cleanup prunes the two independently.
type AuditEntry struct {
	ent.Schema
}

// Fields of the AuditEntry.
func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("incident_id").
			Immutable(),
		field.Int("seq").
			Immutable().
			Comment("Monotonic per incident; issuance order is the audit order"),
		field.String("actor").
			Immutable().
			Comment("executor, operator email, or system"),
		field.Text("command").
			Immutable().
			Comment("Verbatim command line or operation description"),
		field.JSON("detail", map[string]any{}).
			Optional().
			Comment("Expected effect, params, decision context"),
		field.JSON("result", map[string]any{}).
			Optional().
			Comment("Written by the linked result record; absent after a crash mid-command"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditEntry.
func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("incident_id", "seq").
			Unique(),
		index.Fields("created_at"),
	}
}
