// Recap server: bulk postmortem import pipeline with an HTTP API for
// import sessions, incidents, and generated postmortems.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeready-toolchain/recap/pkg/api"
	"github.com/codeready-toolchain/recap/pkg/cleanup"
	"github.com/codeready-toolchain/recap/pkg/config"
	"github.com/codeready-toolchain/recap/pkg/database"
	"github.com/codeready-toolchain/recap/pkg/docstore"
	"github.com/codeready-toolchain/recap/pkg/extract"
	"github.com/codeready-toolchain/recap/pkg/llm"
	"github.com/codeready-toolchain/recap/pkg/pipeline"
	"github.com/codeready-toolchain/recap/pkg/services"
	"github.com/codeready-toolchain/recap/pkg/ticket"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting recap", "http_port", httpPort, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. LLM client. Importing is meaningless without a completion backend,
	// so an unreachable provider is a startup failure, not a degraded mode.
	llmClient, err := llm.NewFromConfig(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	pingCtx, pingCancel := context.WithTimeout(ctx, 15*time.Second)
	if err := llmClient.Ping(pingCtx); err != nil {
		pingCancel()
		slog.Error("LLM provider is unreachable", "provider", cfg.LLM.Provider, "error", err)
		os.Exit(1)
	}
	pingCancel()
	slog.Info("LLM client initialized", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)

	// 4. Object storage for uploaded documents
	store, err := docstore.NewMinioStore(cfg.System.Storage)
	if err != nil {
		slog.Error("Failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	slog.Info("Object storage initialized", "endpoint", cfg.System.Storage.Endpoint)

	// 5. Ticketing lookup client (disabled when no base URL is configured)
	tickets := ticket.NewClient(cfg.System.Ticketing)

	// 6. Domain services
	imports := services.NewImportService(dbClient.Client, store)
	incidents := services.NewIncidentService(dbClient.Client)
	postmortems := services.NewPostmortemService(dbClient.Client)
	slog.Info("Services initialized")

	// 7. Pipeline worker pool (before the HTTP server, so restart recovery
	// runs before new uploads are accepted)
	executor := pipeline.NewExecutor(imports, incidents, postmortems, store, extract.NewService(), llmClient, tickets)
	workerPool := pipeline.NewWorkerPool(imports, cfg.Pipeline, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention cleanup (optional)
	var retention *cleanup.Service
	if cfg.Retention.Enabled() {
		retention = cleanup.NewService(cfg.Retention, imports)
		retention.Start(ctx)
	}

	// 9. HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, imports, incidents, postmortems, workerPool)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Recap started successfully", "workers", cfg.Pipeline.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: let in-flight stages finish, then stop HTTP.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Pipeline.GracefulShutdownTimeout.Std())
	defer workerCancel()

	if retention != nil {
		retention.Stop()
	}

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, in-flight items will be re-queued on next start")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
