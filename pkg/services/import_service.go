package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/recap/ent"
	"github.com/codeready-toolchain/recap/ent/aiquestion"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/ent/importsession"
	"github.com/codeready-toolchain/recap/pkg/docstore"
	"github.com/codeready-toolchain/recap/pkg/extract"
	"github.com/codeready-toolchain/recap/pkg/models"
)

// MaxUploadBytes is the per-file size cap enforced before a session is
// created. Oversized files are an input error, never a pipeline failure.
const MaxUploadBytes = 25 << 20

// Derived session statuses. Session status is computed from items at read
// time and never stored.
const (
	SessionStatusProcessing    = "processing"
	SessionStatusAwaitingInput = "awaiting_input"
	SessionStatusCompleted     = "completed"
)

// SessionList is a page of sessions plus pagination info.
type SessionList struct {
	Sessions   []*ent.ImportSession
	TotalCount int
	Limit      int
	Offset     int
}

// ImportService manages import session and item lifecycle: session
// creation, reads, answer submission, retries, and the item-level state
// transitions applied on behalf of pipeline workers.
type ImportService struct {
	client *ent.Client
	store  docstore.DocumentStore
}

// NewImportService creates a new ImportService.
func NewImportService(client *ent.Client, store docstore.DocumentStore) *ImportService {
	return &ImportService{client: client, store: store}
}

// CreateSession validates the upload, stores the raw documents, and creates
// the session with all its items atomically. Items start pending at the
// uploading step; processing begins when a pipeline worker claims them.
func (s *ImportService) CreateSession(httpCtx context.Context, req models.CreateImportSessionRequest) (*ent.ImportSession, error) {
	if len(req.Files) == 0 {
		return nil, NewValidationError("files", "at least one file is required")
	}
	for i, f := range req.Files {
		if f.Name == "" {
			return nil, NewValidationError("files", fmt.Sprintf("file %d has no name", i))
		}
		if len(f.Data) == 0 {
			return nil, NewValidationError("files", fmt.Sprintf("file %q is empty", f.Name))
		}
		if len(f.Data) > MaxUploadBytes {
			return nil, NewValidationError("files", fmt.Sprintf("file %q exceeds the %d byte limit", f.Name, MaxUploadBytes))
		}
		if !extract.Supported(f.Name, f.Type) {
			return nil, NewValidationError("files", fmt.Sprintf("file %q has unsupported type %q", f.Name, f.Type))
		}
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sessionID := uuid.New().String()

	// Upload payloads before touching the database; a failed upload leaves
	// only unreferenced objects behind, never a session with missing bytes.
	type stored struct {
		file models.UploadedFile
		key  string
	}
	storedFiles := make([]stored, 0, len(req.Files))
	for _, f := range req.Files {
		key := fmt.Sprintf("imports/%s/%s/%s", sessionID, uuid.New().String(), f.Name)
		if err := s.store.Put(ctx, key, bytes.NewReader(f.Data), int64(len(f.Data)), f.Type); err != nil {
			return nil, fmt.Errorf("failed to store uploaded file %q: %w", f.Name, err)
		}
		storedFiles = append(storedFiles, stored{file: f, key: key})
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.ImportSession.Create().
		SetID(sessionID).
		SetAutoPublish(req.AutoPublish).
		SetTotalFiles(len(req.Files)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	for _, sf := range storedFiles {
		_, err := tx.ImportItem.Create().
			SetID(uuid.New().String()).
			SetSessionID(session.ID).
			SetFileName(sf.file.Name).
			SetFileSize(int64(len(sf.file.Data))).
			SetFileType(sf.file.Type).
			SetStorageKey(sf.key).
			SetStatus(importitem.StatusPending).
			SetCurrentStep(importitem.CurrentStepUploading).
			SetStatusMessage("queued").
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create item for %q: %w", sf.file.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by ID, optionally with its items and
// their questions in upload order.
func (s *ImportService) GetSession(ctx context.Context, sessionID string, withItems bool) (*ent.ImportSession, error) {
	query := s.client.ImportSession.Query().Where(importsession.IDEQ(sessionID))

	if withItems {
		query = query.WithItems(func(q *ent.ImportItemQuery) {
			q.WithQuestions(func(qq *ent.AIQuestionQuery) {
				qq.Order(ent.Asc(aiquestion.FieldCreatedAt))
			}).Order(ent.Asc(importitem.FieldCreatedAt))
		})
	}

	session, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessions lists sessions newest first with pagination.
func (s *ImportService) ListSessions(ctx context.Context, filters models.SessionFilters) (*SessionList, error) {
	query := s.client.ImportSession.Query()

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(importsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &SessionList{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// GetItem retrieves an item by ID with its questions in creation order.
func (s *ImportService) GetItem(ctx context.Context, itemID string) (*ent.ImportItem, error) {
	item, err := s.client.ImportItem.Query().
		Where(importitem.IDEQ(itemID)).
		WithQuestions(func(q *ent.AIQuestionQuery) {
			q.Order(ent.Asc(aiquestion.FieldCreatedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// SubmitAnswers records answers for an item's unanswered questions. Every
// question must belong to the item and not already carry an answer; a
// violation rejects the whole submission with no state change. When the
// last unanswered question is resolved the item becomes runnable again and
// a worker resumes it at the metadata extraction step.
func (s *ImportService) SubmitAnswers(httpCtx context.Context, itemID string, answers []models.QuestionAnswer) (*ent.ImportItem, error) {
	if len(answers) == 0 {
		return nil, NewValidationError("answers", "at least one answer is required")
	}
	for _, a := range answers {
		if a.QuestionID == "" {
			return nil, NewValidationError("question_id", "required")
		}
		if a.Answer == "" {
			return nil, NewValidationError("answer", "required")
		}
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	item, err := tx.ImportItem.Query().
		Where(importitem.IDEQ(itemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item.Status != importitem.StatusAwaitingInput {
		return nil, fmt.Errorf("%w: item %s is %s, not awaiting input", ErrInvalidState, itemID, item.Status)
	}

	for _, a := range answers {
		question, err := tx.AIQuestion.Query().
			Where(aiquestion.IDEQ(a.QuestionID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("%w: question %s", ErrNotFound, a.QuestionID)
			}
			return nil, fmt.Errorf("failed to get question: %w", err)
		}
		if question.ItemID != itemID {
			return nil, fmt.Errorf("%w: question %s does not belong to item %s", ErrInvalidInput, a.QuestionID, itemID)
		}
		if question.Answered {
			return nil, fmt.Errorf("%w: %s", ErrAnswerImmutable, a.QuestionID)
		}

		err = tx.AIQuestion.UpdateOneID(a.QuestionID).
			SetAnswered(true).
			SetAnswer(a.Answer).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to record answer for %s: %w", a.QuestionID, err)
		}
	}

	remaining, err := tx.AIQuestion.Query().
		Where(
			aiquestion.ItemIDEQ(itemID),
			aiquestion.AnsweredEQ(false),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unanswered questions: %w", err)
	}

	if remaining == 0 {
		err = tx.ImportItem.UpdateOneID(itemID).
			SetStatus(importitem.StatusPending).
			SetStatusMessage("answers received, resuming").
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to unblock item: %w", err)
		}
	}

	item, err = tx.ImportItem.Query().
		Where(importitem.IDEQ(itemID)).
		WithQuestions(func(q *ent.AIQuestionQuery) {
			q.Order(ent.Asc(aiquestion.FieldCreatedAt))
		}).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return item, nil
}

// RetryItem re-queues a failed item at the step recorded when it failed.
// Results of prior successful steps (extracted text, metadata, generated
// incident reference) are preserved. Retrying a non-failed item is rejected
// with no state change.
func (s *ImportService) RetryItem(httpCtx context.Context, itemID string) (*ent.ImportItem, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	item, err := retryItemTx(ctx, tx, itemID)
	if err != nil {
		return nil, err
	}

	if err := recountSessionTx(ctx, tx, item.SessionID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return item, nil
}

// RetryAllFailed re-queues every item of the session that is failed at call
// time. Items failing after the snapshot is taken are unaffected. Returns
// the number of items re-queued.
func (s *ImportService) RetryAllFailed(httpCtx context.Context, sessionID string) (int, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ImportSession.Query().Where(importsession.IDEQ(sessionID)).Only(ctx); err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get session: %w", err)
	}

	// Snapshot the failed set; the per-item retry re-checks status so an
	// item re-queued concurrently is skipped, not double-retried.
	failedIDs, err := tx.ImportItem.Query().
		Where(
			importitem.SessionIDEQ(sessionID),
			importitem.StatusEQ(importitem.StatusFailed),
		).
		Order(ent.Asc(importitem.FieldCreatedAt)).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to snapshot failed items: %w", err)
	}

	retried := 0
	for _, id := range failedIDs {
		if _, err := retryItemTx(ctx, tx, id); err != nil {
			if errors.Is(err, ErrInvalidState) {
				continue
			}
			return 0, err
		}
		retried++
	}

	if retried > 0 {
		if err := recountSessionTx(ctx, tx, sessionID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return retried, nil
}

// retryItemTx applies the single-item retry contract inside an open
// transaction: failed only, error cleared, re-entry at the failed step.
func retryItemTx(ctx context.Context, tx *ent.Tx, itemID string) (*ent.ImportItem, error) {
	item, err := tx.ImportItem.Query().
		Where(importitem.IDEQ(itemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item.Status != importitem.StatusFailed {
		return nil, fmt.Errorf("%w: item %s is %s, only failed items can be retried", ErrInvalidState, itemID, item.Status)
	}

	resumeStep := item.CurrentStep
	if item.FailedStep != nil {
		resumeStep = importitem.CurrentStep(*item.FailedStep)
	}

	item, err = tx.ImportItem.UpdateOneID(itemID).
		SetStatus(importitem.StatusPending).
		SetCurrentStep(resumeStep).
		SetStatusMessage(fmt.Sprintf("retrying at %s", resumeStep)).
		ClearErrorMessage().
		ClearFailedStep().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to re-queue item: %w", err)
	}
	return item, nil
}

// recountSessionTx recomputes the session's terminal counters from its
// items inside an open transaction. Recomputing by scan keeps the counters
// consistent under concurrent retries without increment/decrement races.
func recountSessionTx(ctx context.Context, tx *ent.Tx, sessionID string) error {
	completed, err := tx.ImportItem.Query().
		Where(
			importitem.SessionIDEQ(sessionID),
			importitem.StatusEQ(importitem.StatusCompleted),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count completed items: %w", err)
	}

	failed, err := tx.ImportItem.Query().
		Where(
			importitem.SessionIDEQ(sessionID),
			importitem.StatusEQ(importitem.StatusFailed),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count failed items: %w", err)
	}

	err = tx.ImportSession.UpdateOneID(sessionID).
		SetCompletedFiles(completed).
		SetFailedFiles(failed).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update session counters: %w", err)
	}
	return nil
}

// PurgeExpiredSessions deletes import sessions whose last activity predates
// cutoff, together with their items, questions, and stored document objects.
// Sessions with any non-terminal item are left alone regardless of age.
// Returns the number of sessions deleted.
func (s *ImportService) PurgeExpiredSessions(ctx context.Context, cutoff time.Time) (int, error) {
	sessions, err := s.client.ImportSession.Query().
		Where(importsession.UpdatedAtLT(cutoff)).
		WithItems().
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired sessions: %w", err)
	}

	purged := 0
	for _, session := range sessions {
		if DeriveSessionStatus(session.Edges.Items) != SessionStatusCompleted {
			continue
		}

		// Stored documents go first so a crash mid-purge leaves at most an
		// orphaned object, not a dangling storage key.
		for _, item := range session.Edges.Items {
			if err := s.store.Delete(ctx, item.StorageKey); err != nil {
				slog.Warn("Retention: failed to delete stored document",
					"session_id", session.ID, "storage_key", item.StorageKey, "error", err)
			}
		}

		// Cascade removes items and questions.
		if err := s.client.ImportSession.DeleteOneID(session.ID).Exec(ctx); err != nil {
			return purged, fmt.Errorf("failed to delete session %s: %w", session.ID, err)
		}
		purged++
	}
	return purged, nil
}

// DeriveSessionStatus computes the session-level status from its items.
// Failed items do not keep a session from being considered finished; they
// are surfaced through the failed_files counter instead.
func DeriveSessionStatus(items []*ent.ImportItem) string {
	awaiting := false
	for _, item := range items {
		switch item.Status {
		case importitem.StatusPending, importitem.StatusProcessing:
			return SessionStatusProcessing
		case importitem.StatusAwaitingInput:
			awaiting = true
		}
	}
	if awaiting {
		return SessionStatusAwaitingInput
	}
	return SessionStatusCompleted
}
