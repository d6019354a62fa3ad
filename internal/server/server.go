// Package server implements the jobtimeline HTTP API.
//
// The API is stateless: every request carries its jobs and options, and
// nothing is kept between requests.
//
//	POST /v1/timeline?format=svg   {"jobs": [...], "options": {...}} → rendered figure
//	POST /v1/layout                {"jobs": [...], "options": {...}} → layout report
//	GET  /healthz                  → {"status": "ok", "version": ...}
//
// Options use the config file keys (group_num, group_radius, label, legend,
// ...) and are layered on top of the server defaults.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/jobtimeline/pkg/config"
	"github.com/matzehuels/jobtimeline/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address used when none is given.
	DefaultAddr = ":8080"

	// DefaultMaxBodyBytes limits request bodies.
	DefaultMaxBodyBytes = 8 << 20

	shutdownTimeout = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	// Logger receives request logs. Nil uses log.Default.
	Logger *log.Logger

	// Defaults are the settings requests override. Nil uses config.Default.
	Defaults *config.Config

	// MaxBodyBytes limits request bodies. Zero uses DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// Server serves the timeline API.
type Server struct {
	logger   *log.Logger
	runner   *pipeline.Runner
	defaults config.Config
	maxBody  int64
	router   chi.Router
}

// New creates a server with its routes registered.
func New(opts Options) *Server {
	s := &Server{
		logger:   opts.Logger,
		defaults: config.Default(),
		maxBody:  opts.MaxBodyBytes,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if opts.Defaults != nil {
		s.defaults = *opts.Defaults
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBodyBytes
	}
	s.runner = pipeline.NewRunner(s.logger)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/timeline", s.handleTimeline)
		r.Post("/layout", s.handleLayout)
	})
	return r
}

// Handler returns the HTTP handler of the API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
