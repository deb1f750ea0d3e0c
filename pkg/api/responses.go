package api

import (
	"time"

	"github.com/codeready-toolchain/recap/ent"
	"github.com/codeready-toolchain/recap/pkg/models"
	"github.com/codeready-toolchain/recap/pkg/services"
)

// HealthCheck is one component's health in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// QuestionResponse is one clarifying question attached to an item.
type QuestionResponse struct {
	ID        string    `json:"id"`
	Field     string    `json:"field"`
	Question  string    `json:"question"`
	Answered  bool      `json:"answered"`
	Answer    string    `json:"answer,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemResponse is the API shape of one import item.
type ItemResponse struct {
	ID            string                     `json:"id"`
	SessionID     string                     `json:"session_id"`
	FileName      string                     `json:"file_name"`
	FileType      string                     `json:"file_type"`
	FileSize      int64                      `json:"file_size"`
	Status        string                     `json:"status"`
	CurrentStep   string                     `json:"current_step"`
	StatusMessage string                     `json:"status_message,omitempty"`
	ErrorMessage  string                     `json:"error_message,omitempty"`
	FailedStep    string                     `json:"failed_step,omitempty"`
	IncidentID    string                     `json:"incident_id,omitempty"`
	PostmortemID  string                     `json:"postmortem_id,omitempty"`
	Metadata      *models.ExtractedMetadata  `json:"metadata,omitempty"`
	Questions     []QuestionResponse         `json:"questions,omitempty"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

// SessionResponse is the API shape of one import session. Status is derived
// from the items at read time.
type SessionResponse struct {
	ID             string         `json:"id"`
	Status         string         `json:"status"`
	AutoPublish    bool           `json:"auto_publish"`
	TotalFiles     int            `json:"total_files"`
	CompletedFiles int            `json:"completed_files"`
	FailedFiles    int            `json:"failed_files"`
	Items          []ItemResponse `json:"items,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// SessionListResponse is a page of sessions.
type SessionListResponse struct {
	Sessions   []SessionResponse `json:"sessions"`
	TotalCount int               `json:"total_count"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}

// RetryFailedResponse reports a bulk retry outcome.
type RetryFailedResponse struct {
	SessionID    string `json:"session_id"`
	RetriedItems int    `json:"retried_items"`
}

// TimelineEventResponse is one timeline event on an incident.
type TimelineEventResponse struct {
	ID          string    `json:"id"`
	EventType   string    `json:"event_type"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActionItemResponse is one follow-up action item on an incident.
type ActionItemResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Owner       string    `json:"owner,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// IncidentResponse is the API shape of one incident.
type IncidentResponse struct {
	ID              string                  `json:"id"`
	IncidentNumber  string                  `json:"incident_number,omitempty"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description,omitempty"`
	Severity        string                  `json:"severity"`
	Status          string                  `json:"status"`
	AffectedService string                  `json:"affected_service,omitempty"`
	Summary         string                  `json:"summary,omitempty"`
	Source          string                  `json:"source"`
	DetectedAt      *time.Time              `json:"detected_at,omitempty"`
	ResolvedAt      *time.Time              `json:"resolved_at,omitempty"`
	Timeline        []TimelineEventResponse `json:"timeline,omitempty"`
	ActionItems     []ActionItemResponse    `json:"action_items,omitempty"`
	Postmortems     []PostmortemResponse    `json:"postmortems,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// IncidentListResponse is a page of incidents.
type IncidentListResponse struct {
	Incidents  []IncidentResponse `json:"incidents"`
	TotalCount int                `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// PostmortemResponse is the API shape of one postmortem document.
type PostmortemResponse struct {
	ID          string     `json:"id"`
	IncidentID  string     `json:"incident_id"`
	Content     string     `json:"content,omitempty"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toQuestionResponse(q *ent.AIQuestion) QuestionResponse {
	resp := QuestionResponse{
		ID:        q.ID,
		Field:     q.Field,
		Question:  q.Question,
		Answered:  q.Answered,
		CreatedAt: q.CreatedAt,
	}
	if q.Answer != nil {
		resp.Answer = *q.Answer
	}
	return resp
}

func toItemResponse(item *ent.ImportItem) ItemResponse {
	resp := ItemResponse{
		ID:            item.ID,
		SessionID:     item.SessionID,
		FileName:      item.FileName,
		FileType:      item.FileType,
		FileSize:      item.FileSize,
		Status:        string(item.Status),
		CurrentStep:   string(item.CurrentStep),
		StatusMessage: item.StatusMessage,
		Metadata:      item.Metadata,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
	if item.ErrorMessage != nil {
		resp.ErrorMessage = *item.ErrorMessage
	}
	if item.FailedStep != nil {
		resp.FailedStep = string(*item.FailedStep)
	}
	if item.IncidentID != nil {
		resp.IncidentID = *item.IncidentID
	}
	if item.PostmortemID != nil {
		resp.PostmortemID = *item.PostmortemID
	}
	for _, q := range item.Edges.Questions {
		resp.Questions = append(resp.Questions, toQuestionResponse(q))
	}
	return resp
}

func toSessionResponse(session *ent.ImportSession, withItems bool) SessionResponse {
	resp := SessionResponse{
		ID:             session.ID,
		Status:         services.DeriveSessionStatus(session.Edges.Items),
		AutoPublish:    session.AutoPublish,
		TotalFiles:     session.TotalFiles,
		CompletedFiles: session.CompletedFiles,
		FailedFiles:    session.FailedFiles,
		CreatedAt:      session.CreatedAt,
		UpdatedAt:      session.UpdatedAt,
	}
	if withItems {
		for _, item := range session.Edges.Items {
			resp.Items = append(resp.Items, toItemResponse(item))
		}
	}
	return resp
}

func toTimelineEventResponse(e *ent.TimelineEvent) TimelineEventResponse {
	return TimelineEventResponse{
		ID:          e.ID,
		EventType:   e.EventType,
		Description: e.Description,
		OccurredAt:  e.OccurredAt,
		CreatedAt:   e.CreatedAt,
	}
}

func toActionItemResponse(a *ent.ActionItem) ActionItemResponse {
	return ActionItemResponse{
		ID:          a.ID,
		Description: a.Description,
		Owner:       a.Owner,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

func toPostmortemResponse(pm *ent.Postmortem, withContent bool) PostmortemResponse {
	resp := PostmortemResponse{
		ID:          pm.ID,
		IncidentID:  pm.IncidentID,
		Status:      string(pm.Status),
		PublishedAt: pm.PublishedAt,
		CreatedAt:   pm.CreatedAt,
		UpdatedAt:   pm.UpdatedAt,
	}
	if withContent {
		resp.Content = pm.Content
	}
	return resp
}

func toIncidentResponse(inc *ent.Incident, withEdges bool) IncidentResponse {
	resp := IncidentResponse{
		ID:              inc.ID,
		IncidentNumber:  inc.IncidentNumber,
		Title:           inc.Title,
		Description:     inc.Description,
		Severity:        string(inc.Severity),
		Status:          string(inc.Status),
		AffectedService: inc.AffectedService,
		Summary:         inc.Summary,
		Source:          string(inc.Source),
		DetectedAt:      inc.DetectedAt,
		ResolvedAt:      inc.ResolvedAt,
		CreatedAt:       inc.CreatedAt,
		UpdatedAt:       inc.UpdatedAt,
	}
	if withEdges {
		for _, e := range inc.Edges.TimelineEvents {
			resp.Timeline = append(resp.Timeline, toTimelineEventResponse(e))
		}
		for _, a := range inc.Edges.ActionItems {
			resp.ActionItems = append(resp.ActionItems, toActionItemResponse(a))
		}
		for _, pm := range inc.Edges.Postmortems {
			resp.Postmortems = append(resp.Postmortems, toPostmortemResponse(pm, false))
		}
	}
	return resp
}
