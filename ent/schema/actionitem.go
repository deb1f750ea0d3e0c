package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActionItem holds the schema definition for the ActionItem entity, a
// follow-up task attached to an incident, either entered manually or parsed
// out of an imported postmortem document.
type ActionItem struct {
	ent.Schema
}

// Fields of the ActionItem.
func (ActionItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("action_item_id").
			Unique().
			Immutable(),
		field.String("incident_id").
			Immutable(),
		field.Text("description"),
		field.String("owner").
			Optional(),
		field.Enum("status").
			Values("open", "done").
			Default("open"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ActionItem.
func (ActionItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("incident", Incident.Type).
			Ref("action_items").
			Field("incident_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ActionItem.
func (ActionItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("incident_id", "status"),
	}
}
