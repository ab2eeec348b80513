package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageMetric holds the schema definition for the UsageMetric entity: one row
// per completed agent invocation.
type UsageMetric struct {
	ent.Schema
}

// Fields of the UsageMetric.
func (UsageMetric) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("agent_id"),
		field.String("agent_type"),
		field.String("model").
			Comment("Model class: opus, sonnet, or haiku"),
		field.Int("input_tokens"),
		field.Int("output_tokens"),
		field.Int64("duration_ms"),
		field.Float("cost").
			Comment("USD, rounded half-up to 4 decimal places"),
		field.String("user_id"),
		field.String("session_id").
			Optional(),
		field.String("task_id").
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the UsageMetric.
func (UsageMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("agent_id", "created_at"),
		index.Fields("created_at"),
	}
}
