package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/recap/ent"
	"github.com/codeready-toolchain/recap/ent/actionitem"
	"github.com/codeready-toolchain/recap/ent/incident"
	"github.com/codeready-toolchain/recap/ent/timelineevent"
	"github.com/codeready-toolchain/recap/pkg/models"
)

// IncidentList is a page of incidents plus pagination info.
type IncidentList struct {
	Incidents  []*ent.Incident
	TotalCount int
	Limit      int
	Offset     int
}

// IncidentService manages incident records and their timeline events and
// action items. Both the HTTP API and the import pipeline create incidents
// through it.
type IncidentService struct {
	client *ent.Client
}

// NewIncidentService creates a new IncidentService.
func NewIncidentService(client *ent.Client) *IncidentService {
	return &IncidentService{client: client}
}

// CreateIncident creates an incident record.
func (s *IncidentService) CreateIncident(httpCtx context.Context, req models.CreateIncidentRequest) (*ent.Incident, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	severity := incident.SeverityMedium
	if req.Severity != "" {
		severity = incident.Severity(req.Severity)
		if err := incident.SeverityValidator(severity); err != nil {
			return nil, NewValidationError("severity", fmt.Sprintf("invalid value %q", req.Severity))
		}
	}
	source := incident.SourceManual
	if req.Source != "" {
		source = incident.Source(req.Source)
		if err := incident.SourceValidator(source); err != nil {
			return nil, NewValidationError("source", fmt.Sprintf("invalid value %q", req.Source))
		}
	}

	detectedAt, err := parseOptionalTime(req.DetectedAt)
	if err != nil {
		return nil, NewValidationError("detected_at", "must be RFC3339")
	}
	resolvedAt, err := parseOptionalTime(req.ResolvedAt)
	if err != nil {
		return nil, NewValidationError("resolved_at", "must be RFC3339")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Incident.Create().
		SetID(uuid.New().String()).
		SetTitle(req.Title).
		SetSeverity(severity).
		SetSource(source)

	if req.IncidentNumber != "" {
		builder.SetIncidentNumber(req.IncidentNumber)
	}
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.AffectedService != "" {
		builder.SetAffectedService(req.AffectedService)
	}
	if req.Summary != "" {
		builder.SetSummary(req.Summary)
	}
	if detectedAt != nil {
		builder.SetDetectedAt(*detectedAt)
	}
	if resolvedAt != nil {
		builder.SetResolvedAt(*resolvedAt)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}
	return created, nil
}

// GetIncident retrieves an incident by ID with optional edge loading.
func (s *IncidentService) GetIncident(ctx context.Context, incidentID string, withEdges bool) (*ent.Incident, error) {
	query := s.client.Incident.Query().Where(incident.IDEQ(incidentID))

	if withEdges {
		query = query.
			WithPostmortems().
			WithTimelineEvents(func(q *ent.TimelineEventQuery) {
				q.Order(ent.Asc(timelineevent.FieldOccurredAt))
			}).
			WithActionItems(func(q *ent.ActionItemQuery) {
				q.Order(ent.Asc(actionitem.FieldCreatedAt))
			})
	}

	found, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}
	return found, nil
}

// IncidentExists reports whether the incident record still exists. The
// import pipeline uses it to keep retried generation steps idempotent.
func (s *IncidentService) IncidentExists(ctx context.Context, incidentID string) (bool, error) {
	exists, err := s.client.Incident.Query().
		Where(incident.IDEQ(incidentID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check incident existence: %w", err)
	}
	return exists, nil
}

// ListIncidents lists incidents with filtering and pagination.
func (s *IncidentService) ListIncidents(ctx context.Context, filters models.IncidentFilters) (*IncidentList, error) {
	query := s.client.Incident.Query()

	if filters.Status != "" {
		query = query.Where(incident.StatusEQ(incident.Status(filters.Status)))
	}
	if filters.Severity != "" {
		query = query.Where(incident.SeverityEQ(incident.Severity(filters.Severity)))
	}
	if filters.Source != "" {
		query = query.Where(incident.SourceEQ(incident.Source(filters.Source)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	incidents, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(incident.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}

	return &IncidentList{
		Incidents:  incidents,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateIncidentStatus moves an incident through its lifecycle. Resolution
// timestamps are set when entering resolved.
func (s *IncidentService) UpdateIncidentStatus(httpCtx context.Context, incidentID string, status incident.Status) (*ent.Incident, error) {
	if err := incident.StatusValidator(status); err != nil {
		return nil, NewValidationError("status", fmt.Sprintf("invalid value %q", status))
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Incident.UpdateOneID(incidentID).SetStatus(status)
	if status == incident.StatusResolved {
		update.SetResolvedAt(time.Now())
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update incident status: %w", err)
	}
	return updated, nil
}

// AddTimelineEvent appends an event to an incident's timeline.
func (s *IncidentService) AddTimelineEvent(httpCtx context.Context, incidentID string, req models.CreateTimelineEventRequest) (*ent.TimelineEvent, error) {
	if req.EventType == "" {
		return nil, NewValidationError("event_type", "required")
	}
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}

	occurredAt := time.Now()
	if req.OccurredAt != "" {
		parsed, err := parseOptionalTime(req.OccurredAt)
		if err != nil {
			return nil, NewValidationError("occurred_at", "must be RFC3339")
		}
		occurredAt = *parsed
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event, err := s.client.TimelineEvent.Create().
		SetID(uuid.New().String()).
		SetIncidentID(incidentID).
		SetEventType(req.EventType).
		SetDescription(req.Description).
		SetOccurredAt(occurredAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: incident %s", ErrNotFound, incidentID)
		}
		return nil, fmt.Errorf("failed to create timeline event: %w", err)
	}
	return event, nil
}

// AddActionItem attaches a follow-up task to an incident.
func (s *IncidentService) AddActionItem(httpCtx context.Context, incidentID, description, owner string) (*ent.ActionItem, error) {
	if description == "" {
		return nil, NewValidationError("description", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ActionItem.Create().
		SetID(uuid.New().String()).
		SetIncidentID(incidentID).
		SetDescription(description)
	if owner != "" {
		builder.SetOwner(owner)
	}

	item, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: incident %s", ErrNotFound, incidentID)
		}
		return nil, fmt.Errorf("failed to create action item: %w", err)
	}
	return item, nil
}

// CompleteActionItem marks an action item as done. Completing an already
// done item is a no-op.
func (s *IncidentService) CompleteActionItem(httpCtx context.Context, actionItemID string) (*ent.ActionItem, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updated, err := s.client.ActionItem.UpdateOneID(actionItemID).
		SetStatus(actionitem.StatusDone).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to complete action item: %w", err)
	}
	return updated, nil
}

func parseOptionalTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
