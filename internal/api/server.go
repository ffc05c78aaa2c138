// Copyright (c) 2026 Yomira. All rights reserved.
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
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/newsroom/internal/core/article"
	"github.com/taibuivan/newsroom/internal/core/comment"
	"github.com/taibuivan/newsroom/internal/core/topic"
	"github.com/taibuivan/newsroom/internal/core/user"
	"github.com/taibuivan/newsroom/internal/platform/apperr"
	"github.com/taibuivan/newsroom/internal/platform/config"
	"github.com/taibuivan/newsroom/internal/platform/constants"
	"github.com/taibuivan/newsroom/internal/platform/middleware"
	"github.com/taibuivan/newsroom/internal/platform/respond"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all HTTP handler sets mounted by the server.
type Handlers struct {
	// Liveness is the /health handler; always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; 200 when all dependencies are healthy.
	Readiness http.HandlerFunc

	// Metrics serves the Prometheus exposition on /metrics.
	Metrics http.Handler

	Topic   *topic.Handler
	Article *article.Handler
	Comment *comment.Handler
	User    *user.Handler
}

// Guards are the request-level protections applied before routing.
type Guards struct {
	Limiter middleware.Limiter
	Metrics *middleware.Metrics
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(cfg *config.Config, log *slog.Logger, guards Guards, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.PanicRecovery(log))
	if guards.Metrics != nil {
		r.Use(guards.Metrics.Handler)
	}
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	if guards.Limiter != nil {
		r.Use(middleware.RateLimit(guards.Limiter))
	}
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// Registered before any Route so mounted subrouters inherit them.
	r.NotFound(pathNotFound)
	r.MethodNotAllowed(methodNotAllowed)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Get("/", serveEndpoints)
		api.Route("/topics", h.Topic.RegisterRoutes)
		api.Route("/articles", func(articles chi.Router) {
			h.Article.RegisterRoutes(articles)
			articles.Route("/{article_id}/comments", h.Comment.RegisterArticleRoutes)
		})
		api.Route("/comments", h.Comment.RegisterRoutes)
		api.Route("/users", h.User.RegisterRoutes)
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

// Handler exposes the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func pathNotFound(writer http.ResponseWriter, request *http.Request) {
	respond.Error(writer, request, apperr.FromKey(apperr.KeyPathNotFound))
}

func methodNotAllowed(writer http.ResponseWriter, request *http.Request) {
	respond.Error(writer, request, apperr.FromKey(apperr.KeyMethodNotAllowed))
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
