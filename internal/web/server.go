// Package web serves a generated flag lookup table over HTTP.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/cclookup/internal/config"
	"github.com/JonMunkholm/cclookup/internal/core"
	"github.com/JonMunkholm/cclookup/internal/logging"
	weblog "github.com/JonMunkholm/cclookup/internal/web/middleware"
)

// Server is the HTTP server for the flag lookup table. The table is fixed
// at construction, so handlers share no mutable state.
type Server struct {
	index  *Index
	runID  string
	logger *slog.Logger
	router *chi.Mux
	server *http.Server
}

// NewServer creates a server over records produced by run runID.
func NewServer(records []core.OutputRecord, runID string, cfg config.ServerConfig, logger *slog.Logger) *Server {
	s := &Server{
		index:  NewIndex(records),
		runID:  runID,
		logger: logging.OrDefault(logger),
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	s.server = &http.Server{
		Handler:           s.router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(weblog.Logger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(securityHeaders)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/flags", s.handleListFlags)
		r.Get("/flags/{code}", s.handleGetFlag)
	})

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.respondError(w, r, core.ErrNotFound, http.StatusNotFound)
	})
}

// Start listens on addr and serves until Shutdown. It returns nil after a
// graceful shutdown.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown. Calling Shutdown first
// makes Serve return immediately.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("starting lookup server", "addr", ln.Addr().String(), "flags", s.index.Len())
	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")

		// Inline styles only; the index page loads nothing else.
		w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
