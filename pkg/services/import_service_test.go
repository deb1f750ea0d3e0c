package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/recap/ent"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/pkg/docstore"
	"github.com/codeready-toolchain/recap/pkg/models"
	testdb "github.com/codeready-toolchain/recap/test/database"
)

func setupImportService(t *testing.T) (*ent.Client, *docstore.MemoryStore, *ImportService) {
	client := testdb.NewTestClient(t)
	store := docstore.NewMemoryStore()
	return client.Client, store, NewImportService(client.Client, store)
}

func textFile(name, content string) models.UploadedFile {
	return models.UploadedFile{Name: name, Type: "text/plain", Data: []byte(content)}
}

func questionFor(t *testing.T, item *ent.ImportItem, field string) *ent.AIQuestion {
	t.Helper()
	for _, q := range item.Edges.Questions {
		if q.Field == field {
			return q
		}
	}
	t.Fatalf("item %s has no question for field %q", item.ID, field)
	return nil
}

// claimItemOf claims until it gets an item belonging to the session.
// Earlier subtests may have left unrelated pending items in the schema.
func claimItemOf(t *testing.T, service *ImportService, sessionID string) *ent.ImportItem {
	t.Helper()
	ctx := context.Background()
	for {
		item, err := service.ClaimNextPendingItem(ctx)
		require.NoError(t, err)
		require.NotNil(t, item, "no pending item found for session %s", sessionID)
		if item.SessionID == sessionID {
			return item
		}
	}
}

func TestImportService_CreateSession(t *testing.T) {
	entClient, store, service := setupImportService(t)
	ctx := context.Background()

	t.Run("creates session with items and stores payloads", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateImportSessionRequest{
			AutoPublish: true,
			Files: []models.UploadedFile{
				textFile("first.txt", "incident one"),
				textFile("second.md", "incident two"),
			},
		})
		require.NoError(t, err)
		assert.True(t, session.AutoPublish)
		assert.Equal(t, 2, session.TotalFiles)
		assert.Equal(t, 0, session.CompletedFiles)
		assert.Equal(t, 0, session.FailedFiles)

		items, err := entClient.ImportItem.Query().
			Where(importitem.SessionIDEQ(session.ID)).
			Order(ent.Asc(importitem.FieldCreatedAt)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		for _, item := range items {
			assert.Equal(t, importitem.StatusPending, item.Status)
			assert.Equal(t, importitem.CurrentStepUploading, item.CurrentStep)

			data, err := store.Get(ctx, item.StorageKey)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		}
		assert.Equal(t, "first.txt", items[0].FileName)
		assert.Equal(t, "second.md", items[1].FileName)
	})

	t.Run("rejects empty file set", func(t *testing.T) {
		_, err := service.CreateSession(ctx, models.CreateImportSessionRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unsupported file type", func(t *testing.T) {
		_, err := service.CreateSession(ctx, models.CreateImportSessionRequest{
			Files: []models.UploadedFile{
				{Name: "photo.png", Type: "image/png", Data: []byte{1, 2, 3}},
			},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects empty file payload", func(t *testing.T) {
		_, err := service.CreateSession(ctx, models.CreateImportSessionRequest{
			Files: []models.UploadedFile{{Name: "empty.txt", Type: "text/plain"}},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestImportService_GetSession(t *testing.T) {
	_, _, service := setupImportService(t)
	ctx := context.Background()

	session, err := service.CreateSession(ctx, models.CreateImportSessionRequest{
		Files: []models.UploadedFile{textFile("doc.txt", "content")},
	})
	require.NoError(t, err)

	t.Run("returns session with items", func(t *testing.T) {
		got, err := service.GetSession(ctx, session.ID, true)
		require.NoError(t, err)
		assert.Equal(t, session.ID, got.ID)
		require.Len(t, got.Edges.Items, 1)
		assert.Equal(t, "doc.txt", got.Edges.Items[0].FileName)
	})

	t.Run("unknown session is ErrNotFound", func(t *testing.T) {
		_, err := service.GetSession(ctx, "missing", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestImportService_ListSessions(t *testing.T) {
	_, _, service := setupImportService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.CreateSession(ctx, models.CreateImportSessionRequest{
			Files: []models.UploadedFile{textFile("doc.txt", "content")},
		})
		require.NoError(t, err)
	}

	list, err := service.ListSessions(ctx, models.SessionFilters{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, list.TotalCount)
	assert.Len(t, list.Sessions, 2)

	page2, err := service.ListSessions(ctx, models.SessionFilters{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, page2.Sessions, 1)
}

func TestImportService_ClaimNextPendingItem(t *testing.T) {
	_, _, service := setupImportService(t)
	ctx := context.Background()

	session, err := service.CreateSession(ctx, models.CreateImportSessionRequest{
		Files: []models.UploadedFile{
			textFile("a.txt", "a"),
			textFile("b.txt", "b"),
		},
	})
	require.NoError(t, err)

	first, err := service.ClaimNextPendingItem(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, session.ID, first.SessionID)
	assert.Equal(t, importitem.StatusProcessing, first.Status)

	second, err := service.ClaimNextPendingItem(ctx)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)

	// Everything claimed; nothing left
	third, err := service.ClaimNextPendingItem(ctx)
	require.NoError(t, err)
	assert.Nil(t, third)
}

func TestImportService_ApplyStageResult(t *testing.T) {
	_, _, service := setupImportService(t)
	ctx := context.Background()

	newClaimedItem := func(t *testing.T) *ent.ImportItem {
		session, err := service.CreateSession(ctx, models.CreateImportSessionRequest{
			Files: []models.UploadedFile{textFile("doc.txt", "incident report")},
		})
		require.NoError(t, err)
		return claimItemOf(t, service, session.ID)
	}

	t.Run("advance persists data and re-queues", func(t *testing.T) {
		item := newClaimedItem(t)
		text := "extracted text"

		updated, err := service.ApplyStageResult(ctx, item.ID, importitem.CurrentStepExtractingText, StageResult{
			Outcome:       StageAdvanced,
			NextStep:      importitem.CurrentStepExtractingMetadata,
			ExtractedText: &text,
		})
		require.NoError(t, err)
		assert.Equal(t, importitem.StatusPending, updated.Status)
		assert.Equal(t, importitem.CurrentStepExtractingMetadata, updated.CurrentStep)
		require.NotNil(t, updated.ExtractedText)
		assert.Equal(t, text, *updated.ExtractedText)
	})

	t.Run("advance to terminal step completes item and counts it", func(t *testing.T) {
		item := newClaimedItem(t)

		updated, err := service.ApplyStageResult(ctx, item.ID, importitem.CurrentStepGeneratingPostmortem, StageResult{
			Outcome:  StageAdvanced,
			NextStep: importitem.CurrentStepCompleted,
		})
		require.NoError(t, err)
		assert.Equal(t, importitem.StatusCompleted, updated.Status)
		assert.Equal(t, importitem.CurrentStepCompleted, updated.CurrentStep)

		session, err := service.GetSession(ctx, item.SessionID, false)
		require.NoError(t, err)
		assert.Equal(t, 1, session.CompletedFiles)
		assert.Equal(t, 0, session.FailedFiles)
	})

	t.Run("needs input attaches questions and pauses", func(t *testing.T) {
		item := newClaimedItem(t)

		updated, err := service.ApplyStageResult(ctx, item.ID, importitem.CurrentStepExtractingMetadata, StageResult{
			Outcome: StageNeedsInput,
			Questions: []models.QuestionDraft{
				{Field: "severity", Question: "What severity was this incident?"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, importitem.StatusAwaitingInput, updated.Status)
		assert.Equal(t, importitem.CurrentStepExtractingMetadata, updated.CurrentStep)
		require.Len(t, updated.Edges.Questions, 1)
		assert.Equal(t, "severity", updated.Edges.Questions[0].Field)
		assert.False(t, updated.Edges.Questions[0].Answered)
	})

	t.Run("needs input without questions is rejected", func(t *testing.T) {
		item := newClaimedItem(t)

		_, err := service.ApplyStageResult(ctx, item.ID, importitem.CurrentStepExtractingMetadata, StageResult{
			Outcome: StageNeedsInput,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("failure records step and error and counts it", func(t *testing.T) {
		item := newClaimedItem(t)

		updated, err := service.ApplyStageResult(ctx, item.ID, importitem.CurrentStepGeneratingPostmortem, StageResult{
			Outcome:      StageFailed,
			FailureCause: errors.New("completion timed out"),
		})
		require.NoError(t, err)
		assert.Equal(t, importitem.StatusFailed, updated.Status)
		require.NotNil(t, updated.FailedStep)
		assert.Equal(t, importitem.FailedStepGeneratingPostmortem, *updated.FailedStep)
		require.NotNil(t, updated.ErrorMessage)
		assert.Equal(t, "completion timed out", *updated.ErrorMessage)

		session, err := service.GetSession(ctx, item.SessionID, false)
		require.NoError(t, err)
		assert.Equal(t, 1, session.FailedFiles)
	})
}

func TestImportService_SubmitAnswers(t *testing.T) {
	_, _, service := setupImportService(t)
	ctx := context.Background()

	// Item paused with two questions.
	pausedItem := func(t *testing.T) *ent.ImportItem {
		session, err := service.CreateSession(ctx, models.CreateImportSessionRequest{
			Files: []models.UploadedFile{textFile("doc.txt", "report")},
		})
		require.NoError(t, err)
		item := claimItemOf(t, service, session.ID)
		item, err = service.ApplyStageResult(ctx, item.ID, importitem.CurrentStepExtractingMetadata, StageResult{
			Outcome: StageNeedsInput,
			Questions: []models.QuestionDraft{
				{Field: "severity", Question: "What severity?"},
				{Field: "affected_service", Question: "Which service was affected?"},
			},
		})
		require.NoError(t, err)
		return item
	}

	t.Run("partial answers keep item paused", func(t *testing.T) {
		item := pausedItem(t)

		updated, err := service.SubmitAnswers(ctx, item.ID, []models.QuestionAnswer{
			{QuestionID: questionFor(t, item, "severity").ID, Answer: "high"},
		})
		require.NoError(t, err)
		assert.Equal(t, importitem.StatusAwaitingInput, updated.Status)
		assert.True(t, questionFor(t, updated, "severity").Answered)
		assert.False(t, questionFor(t, updated, "affected_service").Answered)
	})

	t.Run("answering the last question unblocks the item", func(t *testing.T) {
		item := pausedItem(t)

		updated, err := service.SubmitAnswers(ctx, item.ID, []models.QuestionAnswer{
			{QuestionID: questionFor(t, item, "severity").ID, Answer: "high"},
			{QuestionID: questionFor(t, item, "affected_service").ID, Answer: "checkout"},
		})
		require.NoError(t, err)
		assert.Equal(t, importitem.StatusPending, updated.Status)
		// Still at the metadata step; the next turn re-runs it with answers.
		assert.Equal(t, importitem.CurrentStepExtractingMetadata, updated.CurrentStep)
	})

	t.Run("answers are immutable once recorded", func(t *testing.T) {
		item := pausedItem(t)

		severityQ := questionFor(t, item, "severity")
		_, err := service.SubmitAnswers(ctx, item.ID, []models.QuestionAnswer{
			{QuestionID: severityQ.ID, Answer: "high"},
		})
		require.NoError(t, err)

		_, err = service.SubmitAnswers(ctx, item.ID, []models.QuestionAnswer{
			{QuestionID: severityQ.ID, Answer: "low"},
		})
		assert.ErrorIs(t, err, ErrAnswerImmutable)

		got, err := service.GetItem(ctx, item.ID)
		require.NoError(t, err)
		answered := questionFor(t, got, "severity")
		require.NotNil(t, answered.Answer)
		assert.Equal(t, "high", *answered.Answer)
	})

	t.Run("question from another item is rejected with no state change", func(t *testing.T) {
		itemA := pausedItem(t)
		itemB := pausedItem(t)

		_, err := service.SubmitAnswers(ctx, itemA.ID, []models.QuestionAnswer{
			{QuestionID: itemA.Edges.Questions[0].ID, Answer: "high"},
			{QuestionID: itemB.Edges.Questions[0].ID, Answer: "low"},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		// First answer in the batch must have been rolled back too.
		got, err := service.GetItem(ctx, itemA.ID)
		require.NoError(t, err)
		assert.False(t, got.Edges.Questions[0].Answered)
	})

	t.Run("item not awaiting input is rejected", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateImportSessionRequest{
			Files: []models.UploadedFile{textFile("doc.txt", "report")},
		})
		require.NoError(t, err)
		item := claimItemOf(t, service, session.ID)

		_, err = service.SubmitAnswers(ctx, item.ID, []models.QuestionAnswer{
			{QuestionID: "q", Answer: "a"},
		})
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestImportService_RetryItem(t *testing.T) {
	_, _, service := setupImportService(t)
	ctx := context.Background()

	failedItem := func(t *testing.T) *ent.ImportItem {
		session, err := service.CreateSession(ctx, models.CreateImportSessionRequest{
			Files: []models.UploadedFile{textFile("doc.txt", "report")},
		})
		require.NoError(t, err)
		item := claimItemOf(t, service, session.ID)
		item, err = service.ApplyStageResult(ctx, item.ID, importitem.CurrentStepGeneratingPostmortem, StageResult{
			Outcome:      StageFailed,
			FailureCause: errors.New("boom"),
		})
		require.NoError(t, err)
		return item
	}

	t.Run("re-queues at the failed step with errors cleared", func(t *testing.T) {
		item := failedItem(t)

		retried, err := service.RetryItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, importitem.StatusPending, retried.Status)
		assert.Equal(t, importitem.CurrentStepGeneratingPostmortem, retried.CurrentStep)
		assert.Nil(t, retried.ErrorMessage)
		assert.Nil(t, retried.FailedStep)

		session, err := service.GetSession(ctx, item.SessionID, false)
		require.NoError(t, err)
		assert.Equal(t, 0, session.FailedFiles)
	})

	t.Run("retrying a non-failed item is rejected without side effects", func(t *testing.T) {
		item := failedItem(t)
		retried, err := service.RetryItem(ctx, item.ID)
		require.NoError(t, err)

		_, err = service.RetryItem(ctx, retried.ID)
		assert.ErrorIs(t, err, ErrInvalidState)

		got, err := service.GetItem(ctx, retried.ID)
		require.NoError(t, err)
		assert.Equal(t, importitem.StatusPending, got.Status)
	})

	t.Run("unknown item is ErrNotFound", func(t *testing.T) {
		_, err := service.RetryItem(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestImportService_RetryAllFailed(t *testing.T) {
	_, _, service := setupImportService(t)
	ctx := context.Background()

	session, err := service.CreateSession(ctx, models.CreateImportSessionRequest{
		Files: []models.UploadedFile{
			textFile("a.txt", "a"),
			textFile("b.txt", "b"),
			textFile("c.txt", "c"),
		},
	})
	require.NoError(t, err)

	// Fail two items, complete one.
	for i := 0; i < 3; i++ {
		item, err := service.ClaimNextPendingItem(ctx)
		require.NoError(t, err)
		require.NotNil(t, item)
		if i < 2 {
			_, err = service.ApplyStageResult(ctx, item.ID, importitem.CurrentStepExtractingText, StageResult{
				Outcome:      StageFailed,
				FailureCause: errors.New("boom"),
			})
		} else {
			_, err = service.ApplyStageResult(ctx, item.ID, importitem.CurrentStepGeneratingPostmortem, StageResult{
				Outcome:  StageAdvanced,
				NextStep: importitem.CurrentStepCompleted,
			})
		}
		require.NoError(t, err)
	}

	retried, err := service.RetryAllFailed(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, retried)

	got, err := service.GetSession(ctx, session.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 0, got.FailedFiles)
	assert.Equal(t, 1, got.CompletedFiles)

	// Second call has nothing to do.
	retried, err = service.RetryAllFailed(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, retried)

	t.Run("unknown session is ErrNotFound", func(t *testing.T) {
		_, err := service.RetryAllFailed(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestImportService_ResetOrphanedItems(t *testing.T) {
	_, _, service := setupImportService(t)
	ctx := context.Background()

	_, err := service.CreateSession(ctx, models.CreateImportSessionRequest{
		Files: []models.UploadedFile{textFile("a.txt", "a"), textFile("b.txt", "b")},
	})
	require.NoError(t, err)

	claimed, err := service.ClaimNextPendingItem(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)

	reset, err := service.ResetOrphanedItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reset)

	got, err := service.GetItem(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, importitem.StatusPending, got.Status)
}

func TestDeriveSessionStatus(t *testing.T) {
	item := func(status importitem.Status) *ent.ImportItem {
		return &ent.ImportItem{Status: status}
	}

	tests := []struct {
		name  string
		items []*ent.ImportItem
		want  string
	}{
		{
			name:  "pending items mean processing",
			items: []*ent.ImportItem{item(importitem.StatusCompleted), item(importitem.StatusPending)},
			want:  SessionStatusProcessing,
		},
		{
			name:  "in-flight items mean processing even when others wait",
			items: []*ent.ImportItem{item(importitem.StatusAwaitingInput), item(importitem.StatusProcessing)},
			want:  SessionStatusProcessing,
		},
		{
			name:  "awaiting input once nothing is runnable",
			items: []*ent.ImportItem{item(importitem.StatusAwaitingInput), item(importitem.StatusCompleted)},
			want:  SessionStatusAwaitingInput,
		},
		{
			name:  "all terminal is completed",
			items: []*ent.ImportItem{item(importitem.StatusCompleted), item(importitem.StatusCompleted)},
			want:  SessionStatusCompleted,
		},
		{
			name:  "failures do not block completion",
			items: []*ent.ImportItem{item(importitem.StatusCompleted), item(importitem.StatusFailed)},
			want:  SessionStatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSessionStatus(tt.items))
		})
	}
}
