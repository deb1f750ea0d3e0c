package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ImportSession holds the schema definition for the ImportSession entity.
// One session corresponds to one bulk upload request; it owns the items
// created from the uploaded files. Session-level status is derived from the
// items at read time and is intentionally not stored here.
type ImportSession struct {
	ent.Schema
}

// Fields of the ImportSession.
func (ImportSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Bool("auto_publish").
			Default(false).
			Comment("Persist generated postmortems as published instead of draft"),
		field.Int("total_files").
			Immutable().
			Comment("Fixed at session creation"),
		field.Int("completed_files").
			Default(0),
		field.Int("failed_files").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ImportSession.
func (ImportSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("items", ImportItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ImportSession.
func (ImportSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
