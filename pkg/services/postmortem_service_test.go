package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/recap/ent/postmortem"
	"github.com/codeready-toolchain/recap/pkg/models"
	testdb "github.com/codeready-toolchain/recap/test/database"
)

func TestPostmortemService(t *testing.T) {
	client := testdb.NewTestClient(t)
	incidents := NewIncidentService(client.Client)
	service := NewPostmortemService(client.Client)
	ctx := context.Background()

	inc, err := incidents.CreateIncident(ctx, models.CreateIncidentRequest{Title: "outage"})
	require.NoError(t, err)

	t.Run("creates draft by default", func(t *testing.T) {
		created, err := service.CreatePostmortem(ctx, inc.ID, "# Postmortem\n\ndraft body", false)
		require.NoError(t, err)
		assert.Equal(t, postmortem.StatusDraft, created.Status)
		assert.Nil(t, created.PublishedAt)
	})

	t.Run("creates published when requested", func(t *testing.T) {
		created, err := service.CreatePostmortem(ctx, inc.ID, "# Postmortem\n\npublished body", true)
		require.NoError(t, err)
		assert.Equal(t, postmortem.StatusPublished, created.Status)
		assert.NotNil(t, created.PublishedAt)
	})

	t.Run("rejects missing content", func(t *testing.T) {
		_, err := service.CreatePostmortem(ctx, inc.ID, "", false)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown incident", func(t *testing.T) {
		_, err := service.CreatePostmortem(ctx, "missing", "body", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("publish is idempotent", func(t *testing.T) {
		created, err := service.CreatePostmortem(ctx, inc.ID, "draft to publish", false)
		require.NoError(t, err)

		published, err := service.Publish(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, postmortem.StatusPublished, published.Status)
		require.NotNil(t, published.PublishedAt)
		firstPublish := *published.PublishedAt

		again, err := service.Publish(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, again.PublishedAt)
		assert.Equal(t, firstPublish, *again.PublishedAt)
	})

	t.Run("lists by incident", func(t *testing.T) {
		list, err := service.ListByIncident(ctx, inc.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(list), 3)
	})

	t.Run("exists check", func(t *testing.T) {
		created, err := service.CreatePostmortem(ctx, inc.ID, "exists", false)
		require.NoError(t, err)

		exists, err := service.PostmortemExists(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = service.PostmortemExists(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
