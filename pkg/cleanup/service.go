// Package cleanup provides data retention for import sessions.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/recap/pkg/config"
	"github.com/codeready-toolchain/recap/pkg/services"
)

// Service periodically deletes finished import sessions older than the
// retention window, together with their stored documents. Sessions with any
// item still pending, processing, or awaiting input are never touched.
// All operations are idempotent.
type Service struct {
	config  *config.RetentionConfig
	imports *services.ImportService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, imports *services.ImportService) *Service {
	return &Service{
		config:  cfg,
		imports: imports,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"session_retention_days", s.config.SessionRetentionDays,
		"interval", s.config.CleanupInterval.Std())
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.purgeExpiredSessions(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval.Std())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purgeExpiredSessions(ctx)
		}
	}
}

func (s *Service) purgeExpiredSessions(_ context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.SessionRetentionDays)
	count, err := s.imports.PurgeExpiredSessions(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: session purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged expired import sessions", "count", count)
	}
}
