package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/recap/ent/incident"
	"github.com/codeready-toolchain/recap/pkg/models"
	testdb "github.com/codeready-toolchain/recap/test/database"
)

func TestIncidentService_CreateIncident(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIncidentService(client.Client)
	ctx := context.Background()

	t.Run("creates incident with all fields", func(t *testing.T) {
		detected := time.Now().Add(-2 * time.Hour).UTC().Truncate(time.Second)

		created, err := service.CreateIncident(ctx, models.CreateIncidentRequest{
			IncidentNumber:  "INC-1234",
			Title:           "Checkout latency spike",
			Description:     "p99 latency exceeded 5s",
			Severity:        "high",
			AffectedService: "checkout",
			Summary:         "Connection pool exhaustion",
			Source:          "import",
			DetectedAt:      detected.Format(time.RFC3339),
		})
		require.NoError(t, err)
		assert.Equal(t, "INC-1234", created.IncidentNumber)
		assert.Equal(t, incident.SeverityHigh, created.Severity)
		assert.Equal(t, incident.StatusOpen, created.Status)
		assert.Equal(t, incident.SourceImport, created.Source)
		require.NotNil(t, created.DetectedAt)
		assert.WithinDuration(t, detected, *created.DetectedAt, time.Second)
	})

	t.Run("defaults severity and source", func(t *testing.T) {
		created, err := service.CreateIncident(ctx, models.CreateIncidentRequest{Title: "Minimal"})
		require.NoError(t, err)
		assert.Equal(t, incident.SeverityMedium, created.Severity)
		assert.Equal(t, incident.SourceManual, created.Source)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		_, err := service.CreateIncident(ctx, models.CreateIncidentRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects invalid severity", func(t *testing.T) {
		_, err := service.CreateIncident(ctx, models.CreateIncidentRequest{Title: "x", Severity: "catastrophic"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects malformed timestamps", func(t *testing.T) {
		_, err := service.CreateIncident(ctx, models.CreateIncidentRequest{Title: "x", DetectedAt: "yesterday"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestIncidentService_GetIncident(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIncidentService(client.Client)
	ctx := context.Background()

	created, err := service.CreateIncident(ctx, models.CreateIncidentRequest{Title: "DB outage"})
	require.NoError(t, err)

	t.Run("returns incident with edges", func(t *testing.T) {
		_, err := service.AddTimelineEvent(ctx, created.ID, models.CreateTimelineEventRequest{
			EventType:   "detected",
			Description: "alert fired",
		})
		require.NoError(t, err)
		_, err = service.AddActionItem(ctx, created.ID, "add connection pool alerting", "sre-team")
		require.NoError(t, err)

		got, err := service.GetIncident(ctx, created.ID, true)
		require.NoError(t, err)
		assert.Len(t, got.Edges.TimelineEvents, 1)
		assert.Len(t, got.Edges.ActionItems, 1)
		assert.Equal(t, "sre-team", got.Edges.ActionItems[0].Owner)
	})

	t.Run("unknown incident is ErrNotFound", func(t *testing.T) {
		_, err := service.GetIncident(ctx, "missing", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestIncidentService_IncidentExists(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIncidentService(client.Client)
	ctx := context.Background()

	created, err := service.CreateIncident(ctx, models.CreateIncidentRequest{Title: "exists"})
	require.NoError(t, err)

	exists, err := service.IncidentExists(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = service.IncidentExists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestIncidentService_ListIncidents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIncidentService(client.Client)
	ctx := context.Background()

	for _, req := range []models.CreateIncidentRequest{
		{Title: "a", Severity: "low", Source: "manual"},
		{Title: "b", Severity: "high", Source: "import"},
		{Title: "c", Severity: "high", Source: "import"},
	} {
		_, err := service.CreateIncident(ctx, req)
		require.NoError(t, err)
	}

	t.Run("filters by severity and source", func(t *testing.T) {
		list, err := service.ListIncidents(ctx, models.IncidentFilters{Severity: "high", Source: "import"})
		require.NoError(t, err)
		assert.Equal(t, 2, list.TotalCount)
		assert.Len(t, list.Incidents, 2)
	})

	t.Run("paginates", func(t *testing.T) {
		list, err := service.ListIncidents(ctx, models.IncidentFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, list.TotalCount)
		assert.Len(t, list.Incidents, 2)
	})
}

func TestIncidentService_UpdateIncidentStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIncidentService(client.Client)
	ctx := context.Background()

	created, err := service.CreateIncident(ctx, models.CreateIncidentRequest{Title: "status walk"})
	require.NoError(t, err)

	updated, err := service.UpdateIncidentStatus(ctx, created.ID, incident.StatusResolved)
	require.NoError(t, err)
	assert.Equal(t, incident.StatusResolved, updated.Status)
	assert.NotNil(t, updated.ResolvedAt)

	_, err = service.UpdateIncidentStatus(ctx, created.ID, incident.Status("bogus"))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
