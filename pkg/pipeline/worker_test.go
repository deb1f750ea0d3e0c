package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/recap/ent"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/pkg/config"
	"github.com/codeready-toolchain/recap/pkg/docstore"
	"github.com/codeready-toolchain/recap/pkg/services"
	testdb "github.com/codeready-toolchain/recap/test/database"
)

// failAfterDeadline is a stub executor that blocks until the stage deadline
// passes and then fails with a scripted cause.
type failAfterDeadline struct {
	cause func(ctx context.Context) error
}

func (s *failAfterDeadline) ExecuteStage(ctx context.Context, _ *ent.ImportItem) services.StageResult {
	<-ctx.Done()
	return services.StageResult{
		Outcome:      services.StageFailed,
		FailureCause: s.cause(ctx),
	}
}

func TestWorker_StageTimeoutReporting(t *testing.T) {
	newWorkerFixture := func(t *testing.T, stub ItemExecutor) (*Worker, *services.ImportService) {
		client := testdb.NewTestClient(t)
		imports := services.NewImportService(client.Client, docstore.NewMemoryStore())
		cfg := fastPoolConfig(1)
		cfg.StageTimeout = config.Duration(50 * time.Millisecond)
		return NewWorker("worker-test", imports, cfg, stub), imports
	}

	t.Run("deadline failure reports the stage timeout", func(t *testing.T) {
		stub := &failAfterDeadline{cause: func(ctx context.Context) error {
			return fmt.Errorf("extract text: %w", ctx.Err())
		}}
		w, imports := newWorkerFixture(t, stub)
		session := createPoolSession(t, imports, 1)

		require.NoError(t, w.pollAndProcess(context.Background()))

		item := poolSessionItem(t, imports, session.ID)
		assert.Equal(t, importitem.StatusFailed, item.Status)
		require.NotNil(t, item.ErrorMessage)
		assert.Contains(t, *item.ErrorMessage, "timed out after")
	})

	t.Run("unrelated failure after the deadline keeps its own cause", func(t *testing.T) {
		stub := &failAfterDeadline{cause: func(context.Context) error {
			return errors.New("document parser crashed")
		}}
		w, imports := newWorkerFixture(t, stub)
		session := createPoolSession(t, imports, 1)

		require.NoError(t, w.pollAndProcess(context.Background()))

		item := poolSessionItem(t, imports, session.ID)
		assert.Equal(t, importitem.StatusFailed, item.Status)
		require.NotNil(t, item.ErrorMessage)
		assert.Contains(t, *item.ErrorMessage, "document parser crashed")
		assert.NotContains(t, *item.ErrorMessage, "timed out")
	})
}

func poolSessionItem(t *testing.T, imports *services.ImportService, sessionID string) *ent.ImportItem {
	t.Helper()
	session, err := imports.GetSession(context.Background(), sessionID, true)
	require.NoError(t, err)
	require.Len(t, session.Edges.Items, 1)
	return session.Edges.Items[0]
}
