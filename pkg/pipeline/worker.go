package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/codeready-toolchain/recap/pkg/config"
	"github.com/codeready-toolchain/recap/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single pipeline worker that polls for runnable items and
// executes one stage per claim.
type Worker struct {
	id       string
	imports  *services.ImportService
	config   *config.PipelineConfig
	executor ItemExecutor
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentItemID  string
	itemsProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new pipeline worker.
func NewWorker(id string, imports *services.ImportService, cfg *config.PipelineConfig, executor ItemExecutor) *Worker {
	return &Worker{
		id:           id,
		imports:      imports,
		config:       cfg,
		executor:     executor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentItemID:  w.currentItemID,
		ItemsProcessed: w.itemsProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoItemsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing item", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an item, and runs one stage.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.imports.CountProcessingItems(ctx)
	if err != nil {
		return fmt.Errorf("checking processing items: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentItems {
		return ErrAtCapacity
	}

	// 2. Claim the next pending item
	item, err := w.imports.ClaimNextPendingItem(ctx)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNoItemsAvailable
	}

	log := slog.With("item_id", item.ID, "session_id", item.SessionID, "worker_id", w.id)
	log.Info("Item claimed", "step", item.CurrentStep)

	w.setStatus(WorkerStatusWorking, item.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Run exactly one stage under the stage timeout
	step := item.CurrentStep
	stageCtx, cancelStage := context.WithTimeout(ctx, w.config.StageTimeout.Std())
	result := w.executor.ExecuteStage(stageCtx, item)
	cancelStage()

	// A stage that ran out its clock reports the timeout, not the raw
	// context error the call site happened to see. Failures for unrelated
	// reasons keep their own cause even when the deadline has since passed.
	if result.Outcome == services.StageFailed && errors.Is(result.FailureCause, context.DeadlineExceeded) {
		result.FailureCause = fmt.Errorf("%s timed out after %v", step, w.config.StageTimeout.Std())
	}

	// 4. Persist the transition (service uses background context; the
	//    stage context may already be cancelled)
	updated, err := w.imports.ApplyStageResult(ctx, item.ID, step, result)
	if err != nil {
		log.Error("Failed to apply stage result", "step", step, "error", err)
		return err
	}

	w.mu.Lock()
	w.itemsProcessed++
	w.mu.Unlock()

	log.Info("Stage complete",
		"step", step,
		"status", updated.Status,
		"next_step", updated.CurrentStep)
	return nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval.Std()
	jitter := w.config.PollIntervalJitter.Std()
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, itemID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentItemID = itemID
	w.lastActivity = time.Now()
}
