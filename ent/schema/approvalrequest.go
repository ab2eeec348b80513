package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// ApprovalRequest holds the schema definition for the ApprovalRequest entity.
// Working state lives in the gate's memory; this is the durable record backing
// history queries and audit retention.
type ApprovalRequest struct {
	ent.Schema
}

// Fields of the ApprovalRequest.
func (ApprovalRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("type").
			Comment("Approval type, e.g. code-deployment"),
		field.String("level").
			Comment("user, admin, security, emergency, or system"),
		field.String("status").
			Default("pending"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.String("requester_id"),
		field.JSON("operation", models.OperationDescriptor{}).
			Comment("Action, resource, parameters, risk, reversible"),
		field.JSON("approvers", []string{}),
		field.Int("required_count").
			Default(1),
		field.Time("requested_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at"),
		field.Int64("timeout_ms"),
		field.JSON("context", models.ApprovalContext{}).
			Optional(),
		field.String("policy_id").
			Optional(),
		field.Int("escalation_level").
			Default(0),
		field.JSON("escalation_history", []models.EscalationEntry{}).
			Optional(),
		field.String("bypassed_by").
			Optional(),
		field.Text("bypass_reason").
			Optional(),
		field.Time("bypassed_at").
			Optional().
			Nillable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ApprovalRequest.
func (ApprovalRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("decisions", ApprovalDecision.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("audit_entries", AuditEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ApprovalRequest.
func (ApprovalRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("requester_id"),
		index.Fields("type", "status"),
		index.Fields("requested_at"),
	}
}
