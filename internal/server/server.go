// Package server exposes a small read-only HTTP API: health, status and metrics.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"BacBoSentinel/internal/model"
)

// StatusProvider is implemented by the session.
type StatusProvider interface {
	Status() model.Status
}

// Server is the status HTTP server.
type Server struct {
	router  chi.Router
	server  *http.Server
	status  StatusProvider
	metrics http.Handler
	log     zerolog.Logger
}

// New creates a server listening on addr. metricsHandler may be nil.
func New(addr string, status StatusProvider, metricsHandler http.Handler, log zerolog.Logger) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		status:  status,
		metrics: metricsHandler,
		log:     log.With().Str("component", "server").Logger(),
	}
	s.setupRoutes()
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Recoverer)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/status", s.handleStatus)
	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics)
	}
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start serves until Shutdown is called. It returns nil on graceful shutdown.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("http server started")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.status.Status())
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
