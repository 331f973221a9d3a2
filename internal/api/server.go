// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It is the composition root for the chi router.
  - Only this package and cmd/api import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/hirelane/internal/platform/config"
	"github.com/taibuivan/hirelane/internal/platform/constants"
	"github.com/taibuivan/hirelane/internal/platform/metrics"
	"github.com/taibuivan/hirelane/internal/platform/middleware"
	"github.com/taibuivan/hirelane/internal/platform/sec"
	"github.com/taibuivan/hirelane/internal/recruit/candidate"
	"github.com/taibuivan/hirelane/internal/recruit/job"
	"github.com/taibuivan/hirelane/internal/users/account"
	"github.com/taibuivan/hirelane/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in cmd/api with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. Always 200 while the process runs.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. 200 only when every dependency answers.
	Readiness http.HandlerFunc

	// Auth handles registration, verification, sessions and password reset.
	Auth *auth.Handler

	// Account serves the caller's own profile and session controls.
	Account *account.Handler

	// Jobs manages the caller's job postings.
	Jobs *job.Handler

	// Candidates manages the shared candidate pool.
	Candidates *candidate.Handler
}

// Guards holds the collaborators the authorization middleware needs.
type Guards struct {
	Verifier middleware.AccessVerifier
	Roles    middleware.RoleResolver
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. A nil recorder disables /metrics.
func NewServer(cfg *config.Config, log *slog.Logger, guards Guards, recorder *metrics.Recorder, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(recorder.Middleware)
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.Authenticate(guards.Verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	if recorder != nil && cfg.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", recorder.Handler())
	}

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		api.Group(func(member chi.Router) {
			member.Use(middleware.RequireAuth)
			member.Mount("/account", h.Account.Routes())
		})

		api.Group(func(hr chi.Router) {
			hr.Use(middleware.RequireRole(sec.RoleHRPersonnel, guards.Roles))
			hr.Route("/jobs", h.Jobs.RegisterRoutes)
			hr.Route("/candidates", h.Candidates.RegisterRoutes)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the root router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on an existing listener.
func (s *Server) Serve(listener net.Listener) error {
	s.log.Info("server_starting", slog.String("addr", listener.Addr().String()))
	return s.httpServer.Serve(listener)
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	shutdownContext, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownContext)
}
