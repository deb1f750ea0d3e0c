package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Incident holds the schema definition for the Incident entity.
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
		field.String("incident_number").
			Optional().
			Comment("External ticket number, e.g. 'INC-1234'"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("severity").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.Enum("status").
			Values("open", "mitigated", "resolved", "closed").
			Default("open"),
		field.String("affected_service").
			Optional(),
		field.Text("summary").
			Optional(),
		field.Enum("source").
			Values("manual", "import").
			Default("manual"),
		field.Time("detected_at").
			Optional().
			Nillable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Incident.
func (Incident) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("postmortems", Postmortem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("timeline_events", TimelineEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("action_items", ActionItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Incident.
func (Incident) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("severity"),
		index.Fields("incident_number"),
		index.Fields("created_at"),
	}
}
