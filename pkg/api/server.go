// Package api exposes the HTTP API: bulk import sessions, incidents,
// postmortems, and health.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/recap/pkg/database"
	"github.com/codeready-toolchain/recap/pkg/pipeline"
	"github.com/codeready-toolchain/recap/pkg/services"
)

// Server wires HTTP handlers to the service layer.
type Server struct {
	dbClient    *database.Client
	imports     *services.ImportService
	incidents   *services.IncidentService
	postmortems *services.PostmortemService
	workerPool  *pipeline.WorkerPool

	engine     *gin.Engine
	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	dbClient *database.Client,
	imports *services.ImportService,
	incidents *services.IncidentService,
	postmortems *services.PostmortemService,
	workerPool *pipeline.WorkerPool,
) *Server {
	s := &Server{
		dbClient:    dbClient,
		imports:     imports,
		incidents:   incidents,
		postmortems: postmortems,
		workerPool:  workerPool,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(securityHeaders())
	engine.MaxMultipartMemory = services.MaxUploadBytes

	s.registerRoutes(engine)
	s.engine = engine
	return s
}

func (s *Server) registerRoutes(e *gin.Engine) {
	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1")

	imports := v1.Group("/import")
	imports.POST("/sessions", s.createSessionHandler)
	imports.GET("/sessions", s.listSessionsHandler)
	imports.GET("/sessions/:id", s.getSessionHandler)
	imports.POST("/sessions/:id/retry-failed", s.retryFailedHandler)
	imports.GET("/items/:id", s.getItemHandler)
	imports.POST("/items/:id/answers", s.submitAnswersHandler)
	imports.POST("/items/:id/retry", s.retryItemHandler)

	incidents := v1.Group("/incidents")
	incidents.POST("", s.createIncidentHandler)
	incidents.GET("", s.listIncidentsHandler)
	incidents.GET("/:id", s.getIncidentHandler)
	incidents.PATCH("/:id/status", s.updateIncidentStatusHandler)
	incidents.POST("/:id/timeline", s.addTimelineEventHandler)
	incidents.POST("/:id/action-items", s.addActionItemHandler)
	incidents.GET("/:id/postmortems", s.listIncidentPostmortemsHandler)

	v1.POST("/action-items/:id/complete", s.completeActionItemHandler)

	postmortems := v1.Group("/postmortems")
	postmortems.GET("/:id", s.getPostmortemHandler)
	postmortems.POST("/:id/publish", s.publishPostmortemHandler)
}

// Handler returns the HTTP handler, usable directly in tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
