// Package http provides the HTTP server infrastructure: thin JSON
// plumbing over the usecases. No business logic lives here.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/chartwell/andy/internal/domain/ports"
	"github.com/chartwell/andy/internal/domain/usecases"
	"github.com/chartwell/andy/internal/pkg/logger"
)

// Config carries the wired dependencies for a Server.
type Config struct {
	Log        *logger.Logger
	Forecaster *usecases.Forecaster
	Reorder    *usecases.ReorderEngine
	Retriever  *usecases.Retriever
	Composer   *usecases.Composer
	Store      ports.DocumentStore
	Solar      ports.SolarSimulator

	// DemoInventory makes the recommendations endpoint serve the built-in
	// demo set by default. The demo set is always reachable explicitly
	// via ?demo=1; this flag only changes the default for deployments
	// that have no inventory configured yet.
	DemoInventory bool

	Addr string
}

// Server is the HTTP server for the decision-support API.
type Server struct {
	log           *logger.Logger
	forecaster    *usecases.Forecaster
	reorder       *usecases.ReorderEngine
	retriever     *usecases.Retriever
	composer      *usecases.Composer
	analytics     usecases.Analytics
	store         ports.DocumentStore
	solar         ports.SolarSimulator
	demoInventory bool
	addr          string
}

// NewServer creates an HTTP server over the given dependencies.
func NewServer(cfg Config) *Server {
	return &Server{
		log:           cfg.Log,
		forecaster:    cfg.Forecaster,
		reorder:       cfg.Reorder,
		retriever:     cfg.Retriever,
		composer:      cfg.Composer,
		store:         cfg.Store,
		solar:         cfg.Solar,
		demoInventory: cfg.DemoInventory,
		addr:          cfg.Addr,
	}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger(), cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	materials := router.Group("/materials")
	{
		materials.POST("/import-usage", s.handleImportUsage)
		materials.POST("/forecast", s.handleForecast)
		materials.GET("/inventory/recommendations", s.handleRecommendations)
		materials.POST("/inventory/recommendations", s.handleRecommendationsFor)
		materials.POST("/inventory/scenario", s.handleInventoryScenario)
	}

	rag := router.Group("/rag")
	{
		rag.POST("/documents", s.handleAddDocument)
		rag.GET("/documents", s.handleListDocuments)
		rag.POST("/query", s.handleQuery)
	}

	router.POST("/support/draft-email", s.handleDraftEmail)
	router.POST("/solar/scenarios", s.handleSolarScenario)
	router.GET("/analytics/summary", s.handleAnalyticsSummary)

	return router
}

// Start runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.log.Info("http server starting", "addr", s.addr)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.Warn("http server shutdown", "error", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
