package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalDecision holds the schema definition for the ApprovalDecision
// entity: one approver's verdict on a request.
type ApprovalDecision struct {
	ent.Schema
}

// Fields of the ApprovalDecision.
func (ApprovalDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("request_id"),
		field.String("decider_id"),
		field.String("choice").
			Comment("approve or reject"),
		field.Text("reason").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ApprovalDecision.
func (ApprovalDecision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", ApprovalRequest.Type).
			Ref("decisions").
			Field("request_id").
			Unique().
			Required(),
	}
}

// Indexes of the ApprovalDecision.
func (ApprovalDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "decider_id").
			Unique(),
	}
}
