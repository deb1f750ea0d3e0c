package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codeready-toolchain/recap/pkg/config"
	"github.com/codeready-toolchain/recap/pkg/services"
)

// WorkerPool manages a pool of pipeline workers.
type WorkerPool struct {
	imports  *services.ImportService
	config   *config.PipelineConfig
	executor ItemExecutor
	workers  []*Worker
	started  bool
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(imports *services.ImportService, cfg *config.PipelineConfig, executor ItemExecutor) *WorkerPool {
	return &WorkerPool{
		imports:  imports,
		config:   cfg,
		executor: executor,
		workers:  make([]*Worker, 0, cfg.WorkerCount),
	}
}

// Start re-queues items orphaned by a previous process and spawns the
// worker goroutines. It is safe to call multiple times; subsequent calls
// are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return nil
	}
	p.started = true

	reset, err := p.imports.ResetOrphanedItems(ctx)
	if err != nil {
		return fmt.Errorf("resetting orphaned items: %w", err)
	}
	if reset > 0 {
		slog.Info("Re-queued orphaned items from previous run", "count", reset)
	}

	slog.Info("Starting worker pool", "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		worker := NewWorker(fmt.Sprintf("worker-%d", i), p.imports, p.config, p.executor)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current stage before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.imports.CountPendingItems(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "error", errQ)
	}

	processing, errA := p.imports.CountProcessingItems(ctx)
	if errA != nil {
		slog.Error("Failed to query processing items for health check", "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && processing <= p.config.MaxConcurrentItems && dbHealthy

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("processing items query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		ProcessingItems: processing,
		MaxConcurrent:   p.config.MaxConcurrentItems,
		QueueDepth:      queueDepth,
		WorkerStats:     workerStats,
	}
}
