package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/recap/ent"
	"github.com/codeready-toolchain/recap/ent/postmortem"
)

// PostmortemService manages postmortem documents attached to incidents.
type PostmortemService struct {
	client *ent.Client
}

// NewPostmortemService creates a new PostmortemService.
func NewPostmortemService(client *ent.Client) *PostmortemService {
	return &PostmortemService{client: client}
}

// CreatePostmortem persists a postmortem document for an incident, either
// as a draft or directly published.
func (s *PostmortemService) CreatePostmortem(httpCtx context.Context, incidentID, content string, publish bool) (*ent.Postmortem, error) {
	if incidentID == "" {
		return nil, NewValidationError("incident_id", "required")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Postmortem.Create().
		SetID(uuid.New().String()).
		SetIncidentID(incidentID).
		SetContent(content)
	if publish {
		builder.SetStatus(postmortem.StatusPublished).
			SetPublishedAt(time.Now())
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: incident %s", ErrNotFound, incidentID)
		}
		return nil, fmt.Errorf("failed to create postmortem: %w", err)
	}
	return created, nil
}

// GetPostmortem retrieves a postmortem by ID.
func (s *PostmortemService) GetPostmortem(ctx context.Context, postmortemID string) (*ent.Postmortem, error) {
	found, err := s.client.Postmortem.Query().
		Where(postmortem.IDEQ(postmortemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get postmortem: %w", err)
	}
	return found, nil
}

// PostmortemExists reports whether the postmortem record still exists. The
// import pipeline uses it to keep retried generation steps idempotent.
func (s *PostmortemService) PostmortemExists(ctx context.Context, postmortemID string) (bool, error) {
	exists, err := s.client.Postmortem.Query().
		Where(postmortem.IDEQ(postmortemID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check postmortem existence: %w", err)
	}
	return exists, nil
}

// ListByIncident returns an incident's postmortems, newest first.
func (s *PostmortemService) ListByIncident(ctx context.Context, incidentID string) ([]*ent.Postmortem, error) {
	postmortems, err := s.client.Postmortem.Query().
		Where(postmortem.IncidentIDEQ(incidentID)).
		Order(ent.Desc(postmortem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list postmortems: %w", err)
	}
	return postmortems, nil
}

// Publish marks a draft postmortem as published. Publishing an already
// published postmortem is a no-op.
func (s *PostmortemService) Publish(httpCtx context.Context, postmortemID string) (*ent.Postmortem, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	current, err := s.GetPostmortem(ctx, postmortemID)
	if err != nil {
		return nil, err
	}
	if current.Status == postmortem.StatusPublished {
		return current, nil
	}

	updated, err := s.client.Postmortem.UpdateOneID(postmortemID).
		SetStatus(postmortem.StatusPublished).
		SetPublishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to publish postmortem: %w", err)
	}
	return updated, nil
}
