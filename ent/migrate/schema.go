// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AiQuestionsColumns holds the columns for the "ai_questions" table.
	AiQuestionsColumns = []*schema.Column{
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "field", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "answered", Type: field.TypeBool, Default: false},
		{Name: "answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
	}
	// AiQuestionsTable holds the schema information for the "ai_questions" table.
	AiQuestionsTable = &schema.Table{
		Name:       "ai_questions",
		Columns:    AiQuestionsColumns,
		PrimaryKey: []*schema.Column{AiQuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ai_questions_import_items_questions",
				Columns:    []*schema.Column{AiQuestionsColumns[6]},
				RefColumns: []*schema.Column{ImportItemsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "aiquestion_item_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AiQuestionsColumns[6], AiQuestionsColumns[5]},
			},
			{
				Name:    "aiquestion_item_id_answered",
				Unique:  false,
				Columns: []*schema.Column{AiQuestionsColumns[6], AiQuestionsColumns[3]},
			},
		},
	}
	// ActionItemsColumns holds the columns for the "action_items" table.
	ActionItemsColumns = []*schema.Column{
		{Name: "action_item_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "owner", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "done"}, Default: "open"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "incident_id", Type: field.TypeString},
	}
	// ActionItemsTable holds the schema information for the "action_items" table.
	ActionItemsTable = &schema.Table{
		Name:       "action_items",
		Columns:    ActionItemsColumns,
		PrimaryKey: []*schema.Column{ActionItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "action_items_incidents_action_items",
				Columns:    []*schema.Column{ActionItemsColumns[6]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "actionitem_incident_id_status",
				Unique:  false,
				Columns: []*schema.Column{ActionItemsColumns[6], ActionItemsColumns[3]},
			},
		},
	}
	// ImportItemsColumns holds the columns for the "import_items" table.
	ImportItemsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "file_type", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "awaiting_input", "completed", "failed"}, Default: "pending"},
		{Name: "current_step", Type: field.TypeEnum, Enums: []string{"uploading", "extracting_text", "extracting_metadata", "looking_up_external_record", "generating_incident", "generating_postmortem", "completed"}, Default: "uploading"},
		{Name: "status_message", Type: field.TypeString, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "incident_id", Type: field.TypeString, Nullable: true},
		{Name: "postmortem_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "failed_step", Type: field.TypeEnum, Nullable: true, Enums: []string{"uploading", "extracting_text", "extracting_metadata", "looking_up_external_record", "generating_incident", "generating_postmortem", "completed"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ImportItemsTable holds the schema information for the "import_items" table.
	ImportItemsTable = &schema.Table{
		Name:       "import_items",
		Columns:    ImportItemsColumns,
		PrimaryKey: []*schema.Column{ImportItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "import_items_import_sessions_items",
				Columns:    []*schema.Column{ImportItemsColumns[16]},
				RefColumns: []*schema.Column{ImportSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "importitem_status",
				Unique:  false,
				Columns: []*schema.Column{ImportItemsColumns[5]},
			},
			{
				Name:    "importitem_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImportItemsColumns[16], ImportItemsColumns[14]},
			},
			{
				Name:    "importitem_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ImportItemsColumns[5], ImportItemsColumns[15]},
			},
		},
	}
	// ImportSessionsColumns holds the columns for the "import_sessions" table.
	ImportSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "auto_publish", Type: field.TypeBool, Default: false},
		{Name: "total_files", Type: field.TypeInt},
		{Name: "completed_files", Type: field.TypeInt, Default: 0},
		{Name: "failed_files", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ImportSessionsTable holds the schema information for the "import_sessions" table.
	ImportSessionsTable = &schema.Table{
		Name:       "import_sessions",
		Columns:    ImportSessionsColumns,
		PrimaryKey: []*schema.Column{ImportSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "importsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImportSessionsColumns[5]},
			},
		},
	}
	// IncidentsColumns holds the columns for the "incidents" table.
	IncidentsColumns = []*schema.Column{
		{Name: "incident_id", Type: field.TypeString, Unique: true},
		{Name: "incident_number", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "mitigated", "resolved", "closed"}, Default: "open"},
		{Name: "affected_service", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"manual", "import"}, Default: "manual"},
		{Name: "detected_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IncidentsTable holds the schema information for the "incidents" table.
	IncidentsTable = &schema.Table{
		Name:       "incidents",
		Columns:    IncidentsColumns,
		PrimaryKey: []*schema.Column{IncidentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "incident_status",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[5]},
			},
			{
				Name:    "incident_severity",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[4]},
			},
			{
				Name:    "incident_incident_number",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[1]},
			},
			{
				Name:    "incident_created_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[11]},
			},
		},
	}
	// PostmortemsColumns holds the columns for the "postmortems" table.
	PostmortemsColumns = []*schema.Column{
		{Name: "postmortem_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "published"}, Default: "draft"},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "incident_id", Type: field.TypeString},
	}
	// PostmortemsTable holds the schema information for the "postmortems" table.
	PostmortemsTable = &schema.Table{
		Name:       "postmortems",
		Columns:    PostmortemsColumns,
		PrimaryKey: []*schema.Column{PostmortemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "postmortems_incidents_postmortems",
				Columns:    []*schema.Column{PostmortemsColumns[6]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "postmortem_incident_id",
				Unique:  false,
				Columns: []*schema.Column{PostmortemsColumns[6]},
			},
			{
				Name:    "postmortem_status",
				Unique:  false,
				Columns: []*schema.Column{PostmortemsColumns[2]},
			},
		},
	}
	// TimelineEventsColumns holds the columns for the "timeline_events" table.
	TimelineEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "incident_id", Type: field.TypeString},
	}
	// TimelineEventsTable holds the schema information for the "timeline_events" table.
	TimelineEventsTable = &schema.Table{
		Name:       "timeline_events",
		Columns:    TimelineEventsColumns,
		PrimaryKey: []*schema.Column{TimelineEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "timeline_events_incidents_timeline_events",
				Columns:    []*schema.Column{TimelineEventsColumns[5]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "timelineevent_incident_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[5], TimelineEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AiQuestionsTable,
		ActionItemsTable,
		ImportItemsTable,
		ImportSessionsTable,
		IncidentsTable,
		PostmortemsTable,
		TimelineEventsTable,
	}
)

func init() {
	AiQuestionsTable.ForeignKeys[0].RefTable = ImportItemsTable
	ActionItemsTable.ForeignKeys[0].RefTable = IncidentsTable
	ImportItemsTable.ForeignKeys[0].RefTable = ImportSessionsTable
	PostmortemsTable.ForeignKeys[0].RefTable = IncidentsTable
	TimelineEventsTable.ForeignKeys[0].RefTable = IncidentsTable
}
