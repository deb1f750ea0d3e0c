package models

// UploadedFile is one file in a create-session request, already read into
// memory by the API layer.
type UploadedFile struct {
	Name string
	Type string // pdf, docx, html, txt, md
	Data []byte
}

// CreateImportSessionRequest contains everything needed to create a session
// and its items atomically.
type CreateImportSessionRequest struct {
	AutoPublish bool
	Files       []UploadedFile
}

// QuestionDraft is a clarifying question produced by metadata extraction,
// not yet persisted.
type QuestionDraft struct {
	Field    string `json:"field"`
	Question string `json:"question"`
}

// QuestionAnswer is one {question, answer} pair submitted for an item.
type QuestionAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// SessionFilters contains filtering options for listing import sessions.
type SessionFilters struct {
	Limit  int
	Offset int
}

// IncidentFilters contains filtering options for listing incidents.
type IncidentFilters struct {
	Status   string
	Severity string
	Source   string
	Limit    int
	Offset   int
}

// CreateIncidentRequest contains fields for creating an incident record,
// either manually through the API or from resolved import metadata.
type CreateIncidentRequest struct {
	IncidentNumber  string `json:"incident_number,omitempty"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Severity        string `json:"severity,omitempty"`
	AffectedService string `json:"affected_service,omitempty"`
	Summary         string `json:"summary,omitempty"`
	Source          string `json:"source,omitempty"`
	DetectedAt      string `json:"detected_at,omitempty"` // RFC3339
	ResolvedAt      string `json:"resolved_at,omitempty"` // RFC3339
}

// CreateTimelineEventRequest contains fields for appending a timeline event
// to an incident.
type CreateTimelineEventRequest struct {
	EventType   string `json:"event_type"`
	Description string `json:"description"`
	OccurredAt  string `json:"occurred_at,omitempty"` // RFC3339, defaults to now
}
