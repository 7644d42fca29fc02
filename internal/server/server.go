// Package server exposes the attendance ledger and project tracker over HTTP
// for a browser front end.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/manav03panchal/clubportal/internal/config"
	"github.com/manav03panchal/clubportal/internal/logging"
)

// Server wraps the gin router and the HTTP listener.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New builds the router for h using cfg. Handlers run one at a time.
func New(cfg config.ServerConfig, h *APIHandler) *Server {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(), RequestMetrics(h.Metrics), Serialize())

	api := router.Group("/api")
	{
		api.GET("/ping", PingHandler)
		api.GET("/health", h.GetHealth)
		api.GET("/metrics", h.GetMetrics)
		api.GET("/stats", h.GetStats)

		// Attendance routes
		api.GET("/attendance", h.GetAttendance)
		api.POST("/attendance", h.MarkAttendance)
		api.GET("/attendance/members", h.GetMemberCounts)

		// Project routes
		api.GET("/projects", h.GetProjects)
		api.POST("/projects", h.AddProject)
		api.GET("/projects/summary", h.GetProjectSummary)

		// Import and export
		api.POST("/import/attendance", h.ImportAttendance)
		api.GET("/export/:table", h.Export)
	}

	return &Server{
		router: router,
		http: &http.Server{
			Addr:         cfg.Addr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.http.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Info("server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logging.Info("server shutting down")
	return s.http.Shutdown(shutdownCtx)
}
