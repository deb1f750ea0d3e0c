package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/codeready-toolchain/recap/pkg/models"
)

// ImportItem holds the schema definition for the ImportItem entity, the
// per-document unit of work in the import pipeline. Everything a worker needs
// to resume the item after a restart is persisted here: status, current step,
// extracted text, collected metadata, and references to records generated so
// far.
type ImportItem struct {
	ent.Schema
}

// Fields of the ImportItem.
func (ImportItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("item_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("file_name").
			Immutable(),
		field.Int64("file_size").
			Immutable(),
		field.String("file_type").
			Immutable().
			Comment("Declared type at upload: pdf, docx, html, txt, md"),
		field.String("storage_key").
			Immutable().
			Comment("Object store key of the raw uploaded bytes"),
		field.Enum("status").
			Values("pending", "processing", "awaiting_input", "completed", "failed").
			Default("pending"),
		field.Enum("current_step").
			Values("uploading", "extracting_text", "extracting_metadata",
				"looking_up_external_record", "generating_incident",
				"generating_postmortem", "completed").
			Default("uploading"),
		field.String("status_message").
			Optional(),
		field.Text("extracted_text").
			Optional().
			Nillable(),
		field.JSON("metadata", &models.ExtractedMetadata{}).
			Optional(),
		field.String("incident_id").
			Optional().
			Nillable().
			Comment("Non-owning reference; may dangle if the incident is deleted later"),
		field.String("postmortem_id").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Enum("failed_step").
			Values("uploading", "extracting_text", "extracting_metadata",
				"looking_up_external_record", "generating_incident",
				"generating_postmortem", "completed").
			Optional().
			Nillable().
			Comment("Step recorded at failure time; retry re-enters here"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ImportItem.
func (ImportItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ImportSession.Type).
			Ref("items").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("questions", AIQuestion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ImportItem.
func (ImportItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("session_id", "created_at"),
		index.Fields("status", "updated_at"),
	}
}
