package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/recap/ent"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/ent/importsession"
	"github.com/codeready-toolchain/recap/pkg/config"
	"github.com/codeready-toolchain/recap/pkg/docstore"
	"github.com/codeready-toolchain/recap/pkg/models"
	"github.com/codeready-toolchain/recap/pkg/services"
	testdb "github.com/codeready-toolchain/recap/test/database"
)

func setupImportService(t *testing.T) (*ent.Client, *docstore.MemoryStore, *services.ImportService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := docstore.NewMemoryStore()
	return client.Client, store, services.NewImportService(client.Client, store)
}

func createFinishedSession(t *testing.T, client *ent.Client, imports *services.ImportService, age time.Duration) *ent.ImportSession {
	t.Helper()
	ctx := context.Background()

	session, err := imports.CreateSession(ctx, models.CreateImportSessionRequest{
		Files: []models.UploadedFile{{Name: "doc.txt", Type: "text/plain", Data: []byte("INC-1")}},
	})
	require.NoError(t, err)

	items, err := client.ImportItem.Query().Where(importitem.SessionIDEQ(session.ID)).All(ctx)
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, client.ImportItem.UpdateOneID(item.ID).
			SetStatus(importitem.StatusCompleted).
			SetCurrentStep(importitem.CurrentStepCompleted).
			Exec(ctx))
	}

	require.NoError(t, client.ImportSession.UpdateOneID(session.ID).
		SetUpdatedAt(time.Now().Add(-age)).
		Exec(ctx))
	return session
}

func TestService_PurgesOldFinishedSessions(t *testing.T) {
	client, store, imports := setupImportService(t)
	ctx := context.Background()

	old := createFinishedSession(t, client, imports, 100*24*time.Hour)
	recent := createFinishedSession(t, client, imports, 24*time.Hour)

	cfg := &config.RetentionConfig{
		SessionRetentionDays: 90,
		CleanupInterval:      config.Duration(1 * time.Hour),
	}
	svc := NewService(cfg, imports)
	svc.purgeExpiredSessions(ctx)

	_, err := client.ImportSession.Query().Where(importsession.IDEQ(old.ID)).Only(ctx)
	assert.True(t, ent.IsNotFound(err), "expired session should be deleted")

	_, err = client.ImportSession.Query().Where(importsession.IDEQ(recent.ID)).Only(ctx)
	assert.NoError(t, err, "recent session must survive")

	// Cascade removed the old session's items.
	count, err := client.ImportItem.Query().Where(importitem.SessionIDEQ(old.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Stored documents for the purged session are gone too.
	items, err := client.ImportItem.Query().Where(importitem.SessionIDEQ(recent.ID)).All(ctx)
	require.NoError(t, err)
	for _, item := range items {
		_, err := store.Get(ctx, item.StorageKey)
		assert.NoError(t, err, "surviving session keeps its documents")
	}
}

func TestService_LeavesUnfinishedSessionsAlone(t *testing.T) {
	client, _, imports := setupImportService(t)
	ctx := context.Background()

	session, err := imports.CreateSession(ctx, models.CreateImportSessionRequest{
		Files: []models.UploadedFile{{Name: "doc.txt", Type: "text/plain", Data: []byte("INC-1")}},
	})
	require.NoError(t, err)

	// Age the session without finishing its item.
	require.NoError(t, client.ImportSession.UpdateOneID(session.ID).
		SetUpdatedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx))

	cfg := &config.RetentionConfig{
		SessionRetentionDays: 90,
		CleanupInterval:      config.Duration(1 * time.Hour),
	}
	svc := NewService(cfg, imports)
	svc.purgeExpiredSessions(ctx)

	_, err = client.ImportSession.Query().Where(importsession.IDEQ(session.ID)).Only(ctx)
	assert.NoError(t, err, "session with a pending item must not be purged")
}

func TestService_StartStop(t *testing.T) {
	_, _, imports := setupImportService(t)

	cfg := &config.RetentionConfig{
		SessionRetentionDays: 90,
		CleanupInterval:      config.Duration(1 * time.Hour),
	}
	svc := NewService(cfg, imports)
	svc.Start(context.Background())
	svc.Stop()
	// Stop again is a no-op.
	svc.Stop()
}
