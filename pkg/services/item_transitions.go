package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/recap/ent"
	"github.com/codeready-toolchain/recap/ent/aiquestion"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/pkg/models"
)

// StageOutcome classifies what a stage invocation did with an item.
type StageOutcome int

const (
	// StageAdvanced moves the item to the next step, or to terminal
	// completion when the next step is the terminal one.
	StageAdvanced StageOutcome = iota

	// StageNeedsInput pauses the item with clarifying questions attached.
	StageNeedsInput

	// StageFailed records the error and the step it happened at; the item
	// waits for an explicit retry.
	StageFailed
)

// StageResult is everything a stage invocation wants persisted: the state
// transition plus whatever data the stage produced. Applying it is a single
// transaction so a crash between stages never leaves partial results.
type StageResult struct {
	Outcome       StageOutcome
	NextStep      importitem.CurrentStep // StageAdvanced only
	StatusMessage string

	ExtractedText *string
	Metadata      *models.ExtractedMetadata
	IncidentID    *string
	PostmortemID  *string

	Questions    []models.QuestionDraft // StageNeedsInput only
	FailureCause error                  // StageFailed only
}

// ClaimNextPendingItem atomically claims the oldest pending item for
// processing. Returns nil without error when no items are pending.
func (s *ImportService) ClaimNextPendingItem(ctx context.Context) (*ent.ImportItem, error) {
	// Use background context with timeout
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	item, err := tx.ImportItem.Query().
		Where(importitem.StatusEQ(importitem.StatusPending)).
		Order(ent.Asc(importitem.FieldCreatedAt)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // No pending items
		}
		return nil, fmt.Errorf("failed to query pending item: %w", err)
	}

	// Conditional update: only claim if still pending
	count, err := tx.ImportItem.Update().
		Where(
			importitem.IDEQ(item.ID),
			importitem.StatusEQ(importitem.StatusPending),
		).
		SetStatus(importitem.StatusProcessing).
		SetStatusMessage(fmt.Sprintf("running %s", item.CurrentStep)).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim item: %w", err)
	}
	if count == 0 {
		// Item was already claimed by another worker
		return nil, nil
	}

	item, err = tx.ImportItem.Query().
		Where(importitem.IDEQ(item.ID)).
		WithQuestions(func(q *ent.AIQuestionQuery) {
			q.Order(ent.Asc(aiquestion.FieldCreatedAt))
		}).
		Only(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return item, nil
}

// ApplyStageResult persists the outcome of one stage invocation for a
// claimed item: produced data, the state transition, any new questions, and
// the session counters when the item reached a terminal state.
func (s *ImportService) ApplyStageResult(ctx context.Context, itemID string, step importitem.CurrentStep, res StageResult) (*ent.ImportItem, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	item, err := tx.ImportItem.Query().
		Where(importitem.IDEQ(itemID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	update := tx.ImportItem.UpdateOneID(itemID)
	if res.ExtractedText != nil {
		update.SetExtractedText(*res.ExtractedText)
	}
	if res.Metadata != nil {
		update.SetMetadata(res.Metadata)
	}
	if res.IncidentID != nil {
		update.SetIncidentID(*res.IncidentID)
	}
	if res.PostmortemID != nil {
		update.SetPostmortemID(*res.PostmortemID)
	}

	terminal := false
	switch res.Outcome {
	case StageAdvanced:
		update.SetCurrentStep(res.NextStep).
			ClearErrorMessage().
			ClearFailedStep()
		if res.NextStep == importitem.CurrentStepCompleted {
			update.SetStatus(importitem.StatusCompleted)
			terminal = true
		} else {
			// Back to the queue; the next scheduling turn picks up the
			// next step.
			update.SetStatus(importitem.StatusPending)
		}
		update.SetStatusMessage(orDefault(res.StatusMessage, fmt.Sprintf("finished %s", step)))

	case StageNeedsInput:
		if len(res.Questions) == 0 {
			return nil, fmt.Errorf("%w: needs-input result carries no questions", ErrInvalidInput)
		}
		update.SetStatus(importitem.StatusAwaitingInput).
			SetStatusMessage(orDefault(res.StatusMessage, "waiting for clarification"))
		for _, q := range res.Questions {
			_, err := tx.AIQuestion.Create().
				SetID(uuid.New().String()).
				SetItemID(itemID).
				SetField(q.Field).
				SetQuestion(q.Question).
				Save(writeCtx)
			if err != nil {
				return nil, fmt.Errorf("failed to create question: %w", err)
			}
		}

	case StageFailed:
		cause := "stage failed"
		if res.FailureCause != nil {
			cause = res.FailureCause.Error()
		}
		update.SetStatus(importitem.StatusFailed).
			SetFailedStep(importitem.FailedStep(step)).
			SetErrorMessage(cause).
			SetStatusMessage(orDefault(res.StatusMessage, fmt.Sprintf("failed at %s", step)))
		terminal = true

	default:
		return nil, fmt.Errorf("%w: unknown stage outcome %d", ErrInvalidInput, res.Outcome)
	}

	if err := update.Exec(writeCtx); err != nil {
		return nil, fmt.Errorf("failed to apply stage result: %w", err)
	}

	if terminal {
		if err := recountSessionTx(writeCtx, tx, item.SessionID); err != nil {
			return nil, err
		}
	}

	item, err = tx.ImportItem.Query().
		Where(importitem.IDEQ(itemID)).
		WithQuestions(func(q *ent.AIQuestionQuery) {
			q.Order(ent.Asc(aiquestion.FieldCreatedAt))
		}).
		Only(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit stage result: %w", err)
	}

	return item, nil
}

// CountProcessingItems returns how many items are currently claimed by
// workers. Used for the pool's capacity check and health reporting.
func (s *ImportService) CountProcessingItems(ctx context.Context) (int, error) {
	count, err := s.client.ImportItem.Query().
		Where(importitem.StatusEQ(importitem.StatusProcessing)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count processing items: %w", err)
	}
	return count, nil
}

// CountPendingItems returns the queue depth: items waiting for a worker.
func (s *ImportService) CountPendingItems(ctx context.Context) (int, error) {
	count, err := s.client.ImportItem.Query().
		Where(importitem.StatusEQ(importitem.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending items: %w", err)
	}
	return count, nil
}

// ResetOrphanedItems re-queues items left in processing by a previous
// process that died mid-stage. Called once at startup, before workers
// begin claiming. Stage writes are idempotent, so re-running the
// interrupted step is safe.
func (s *ImportService) ResetOrphanedItems(ctx context.Context) (int, error) {
	count, err := s.client.ImportItem.Update().
		Where(importitem.StatusEQ(importitem.StatusProcessing)).
		SetStatus(importitem.StatusPending).
		SetStatusMessage("re-queued after restart").
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset orphaned items: %w", err)
	}
	return count, nil
}

func orDefault(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
