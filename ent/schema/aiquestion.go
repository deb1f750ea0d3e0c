package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AIQuestion holds the schema definition for the AIQuestion entity, a
// clarification request raised during metadata extraction when a required
// field could not be determined from the document. Once answered, the answer
// is immutable.
type AIQuestion struct {
	ent.Schema
}

// Fields of the AIQuestion.
func (AIQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("question_id").
			Unique().
			Immutable(),
		field.String("item_id").
			Immutable(),
		field.String("field").
			Immutable().
			Comment("Metadata field the question pertains to, e.g. 'severity'"),
		field.Text("question").
			Immutable(),
		field.Bool("answered").
			Default(false),
		field.Text("answer").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AIQuestion.
func (AIQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("item", ImportItem.Type).
			Ref("questions").
			Field("item_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AIQuestion.
func (AIQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id", "created_at"),
		index.Fields("item_id", "answered"),
	}
}
