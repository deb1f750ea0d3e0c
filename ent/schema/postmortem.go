package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Postmortem holds the schema definition for the Postmortem entity.
type Postmortem struct {
	ent.Schema
}

// Fields of the Postmortem.
func (Postmortem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("postmortem_id").
			Unique().
			Immutable(),
		field.String("incident_id").
			Immutable(),
		field.Text("content").
			Comment("Markdown postmortem body"),
		field.Enum("status").
			Values("draft", "published").
			Default("draft"),
		field.Time("published_at").
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

// Edges of the Postmortem.
func (Postmortem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("incident", Incident.Type).
			Ref("postmortems").
			Field("incident_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Postmortem.
func (Postmortem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("incident_id"),
		index.Fields("status"),
	}
}
