package pipeline

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/recap/ent"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/pkg/config"
	"github.com/codeready-toolchain/recap/pkg/docstore"
	"github.com/codeready-toolchain/recap/pkg/models"
	"github.com/codeready-toolchain/recap/pkg/services"
	testdb "github.com/codeready-toolchain/recap/test/database"
)

// completeInOneStage is a stub executor that finishes any claimed item
// immediately, so pool tests exercise only the scheduling machinery.
type completeInOneStage struct {
	executed atomic.Int32
}

func (s *completeInOneStage) ExecuteStage(_ context.Context, _ *ent.ImportItem) services.StageResult {
	s.executed.Add(1)
	return services.StageResult{
		Outcome:       services.StageAdvanced,
		NextStep:      importitem.CurrentStepCompleted,
		StatusMessage: "done",
	}
}

func fastPoolConfig(workers int) *config.PipelineConfig {
	cfg := config.DefaultPipelineConfig()
	cfg.WorkerCount = workers
	cfg.PollInterval = config.Duration(20 * time.Millisecond)
	cfg.PollIntervalJitter = config.Duration(5 * time.Millisecond)
	cfg.StageTimeout = config.Duration(5 * time.Second)
	return cfg
}

func createPoolSession(t *testing.T, imports *services.ImportService, files int) *ent.ImportSession {
	t.Helper()
	req := models.CreateImportSessionRequest{}
	for i := 0; i < files; i++ {
		req.Files = append(req.Files, models.UploadedFile{
			Name: "doc.txt",
			Type: "text/plain",
			Data: []byte("incident report"),
		})
	}
	session, err := imports.CreateSession(context.Background(), req)
	require.NoError(t, err)
	return session
}

func TestWorkerPool_ProcessesAllItems(t *testing.T) {
	client := testdb.NewTestClient(t)
	imports := services.NewImportService(client.Client, docstore.NewMemoryStore())
	stub := &completeInOneStage{}

	pool := NewWorkerPool(imports, fastPoolConfig(2), stub)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	session := createPoolSession(t, imports, 5)

	require.Eventually(t, func() bool {
		got, err := imports.GetSession(context.Background(), session.ID, false)
		return err == nil && got.CompletedFiles == 5
	}, 10*time.Second, 50*time.Millisecond)

	assert.Equal(t, int32(5), stub.executed.Load())

	pending, err := imports.CountPendingItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
}

func TestWorkerPool_StartResetsOrphanedItems(t *testing.T) {
	client := testdb.NewTestClient(t)
	imports := services.NewImportService(client.Client, docstore.NewMemoryStore())
	session := createPoolSession(t, imports, 1)

	// Simulate an item stranded mid-stage by a crashed process.
	ctx := context.Background()
	item, err := imports.ClaimNextPendingItem(ctx)
	require.NoError(t, err)
	require.NotNil(t, item)
	require.Equal(t, session.ID, item.SessionID)

	stub := &completeInOneStage{}
	pool := NewWorkerPool(imports, fastPoolConfig(1), stub)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		got, err := imports.GetItem(ctx, item.ID)
		return err == nil && got.Status == importitem.StatusCompleted
	}, 10*time.Second, 50*time.Millisecond)
}

func TestWorkerPool_HealthReportsWorkers(t *testing.T) {
	client := testdb.NewTestClient(t)
	imports := services.NewImportService(client.Client, docstore.NewMemoryStore())

	pool := NewWorkerPool(imports, fastPoolConfig(3), &completeInOneStage{})
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, 3, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 3)
	assert.Equal(t, 0, health.QueueDepth)
}

func TestWorkerPool_StopIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	imports := services.NewImportService(client.Client, docstore.NewMemoryStore())

	pool := NewWorkerPool(imports, fastPoolConfig(1), &completeInOneStage{})
	require.NoError(t, pool.Start(context.Background()))
	pool.Stop()
	pool.Stop()
}
