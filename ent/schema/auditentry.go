package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEntry holds the schema definition for the AuditEntry entity. Entries
// are append-only: nothing updates or deletes them inside the retention
// period.
type AuditEntry struct {
	ent.Schema
}

// Fields of the AuditEntry.
func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.String("action").
			Immutable().
			Comment("Audit verb, e.g. request_submitted, decision_approve"),
		field.String("actor").
			Immutable(),
		field.String("severity").
			Default("info").
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AuditEntry.
func (AuditEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", ApprovalRequest.Type).
			Ref("audit_entries").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AuditEntry.
func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "created_at"),
		index.Fields("created_at"),
	}
}
