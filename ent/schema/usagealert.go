package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageAlert holds the schema definition for the UsageAlert entity.
type UsageAlert struct {
	ent.Schema
}

// Fields of the UsageAlert.
func (UsageAlert) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("type").
			Comment("Alert kind: threshold, limit, or error"),
		field.String("series").
			Optional().
			Comment("Metered series for threshold alerts, e.g. weekly-opus-hours"),
		field.String("level").
			Comment("info, warning, or critical"),
		field.Float("threshold"),
		field.Float("current_usage"),
		field.Float("limit_value"),
		field.Text("message"),
		field.Bool("acknowledged").
			Default(false),
		field.Time("acknowledged_at").
			Optional().
			Nillable(),
		field.String("acknowledged_by").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the UsageAlert.
func (UsageAlert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "series", "threshold", "created_at"),
		index.Fields("acknowledged"),
	}
}
