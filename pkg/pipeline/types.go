// Package pipeline provides the import queue driver: a pool of workers that
// claim runnable items and execute exactly one stage per scheduling turn.
// All state needed to resume lives in the database, so a restart simply
// re-queues in-flight items and carries on.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/codeready-toolchain/recap/ent"
	"github.com/codeready-toolchain/recap/pkg/services"
)

// Sentinel errors for the polling loop.
var (
	// ErrNoItemsAvailable indicates no pending items are in the queue.
	ErrNoItemsAvailable = errors.New("no items available")

	// ErrAtCapacity indicates the concurrent item limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// ItemExecutor runs the stage matching an item's current step and reports
// the resulting transition. It never returns an error: stage failures are a
// state transition, not a propagated error.
type ItemExecutor interface {
	ExecuteStage(ctx context.Context, item *ent.ImportItem) services.StageResult
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	ProcessingItems int            `json:"processing_items"`
	MaxConcurrent   int            `json:"max_concurrent"`
	QueueDepth      int            `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentItemID  string    `json:"current_item_id,omitempty"`
	ItemsProcessed int       `json:"items_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
