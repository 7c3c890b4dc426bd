// Package web provides the JSON HTTP API of the community resource directory.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/CommunityDirectory/internal/config"
	"github.com/JonMunkholm/CommunityDirectory/internal/core"
	mw "github.com/JonMunkholm/CommunityDirectory/internal/web/middleware"
)

// Options wires the optional collaborators of a Server.
type Options struct {
	// Drafter and Searcher may be nil; their routes then answer 503.
	Drafter  core.DraftingService
	Searcher core.GroundingSearchService

	// Auth defaults to the actor placed in the context by mw.Identity.
	Auth core.AuthProvider

	// Now defaults to time.Now.
	Now func() time.Time
}

// Server is the HTTP server for the directory API.
type Server struct {
	service  *core.Service
	cfg      *config.Config
	drafter  core.DraftingService
	searcher core.GroundingSearchService
	auth     core.AuthProvider
	now      func() time.Time

	router *chi.Mux
	server *http.Server
}

// NewServer creates a new Server instance.
func NewServer(service *core.Service, cfg *config.Config, opts Options) *Server {
	if opts.Auth == nil {
		opts.Auth = core.ContextAuth{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Server{
		service:  service,
		cfg:      cfg,
		drafter:  opts.Drafter,
		searcher: opts.Searcher,
		auth:     opts.Auth,
		now:      opts.Now,
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(mw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(mw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	s.router.Use(securityHeaders)

	if s.cfg.Rate.Enabled {
		limiter := newIPLimiter(s.cfg.Rate.RequestsPerMinute, s.cfg.Rate.Burst, 10*time.Minute)
		s.router.Use(limiter.middleware)
	}

	s.router.Use(mw.Identity)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		// Vocabularies
		r.Get("/cities", s.handleCities)
		r.Get("/categories", s.handleCategories)
		r.Get("/review-options", s.handleReviewOptions)

		// Directory
		r.Get("/resources", s.handleListResources)
		r.Get("/resources/{id}", s.handleGetResource)
		r.Get("/resources/{id}/reviews", s.handleListReviews)

		// Saved list
		r.Get("/saved", s.handleSaved)
		r.Get("/saved/export", s.handleExportSaved)

		// Mutations and assistant calls
		r.Group(func(r chi.Router) {
			r.Use(mw.APIKeyAuth(&s.cfg.Security))
			if s.cfg.Rate.Enabled {
				writes := newIPLimiter(s.cfg.Rate.WriteRequestsPerMinute, max(1, s.cfg.Rate.WriteRequestsPerMinute/4), 10*time.Minute)
				r.Use(writes.middleware)
			}

			r.Post("/resources/{id}/reviews", s.handleAddReview)
			r.Post("/resources/{id}/save", s.handleToggleSave)
			r.Post("/resources/{id}/draft", s.handleDraft)
			r.Post("/resources/{id}/verify", s.handleVerify)
			r.Post("/resource-requests", s.handleResourceRequest)
		})
	})
}

// Start begins listening for HTTP requests. It returns http.ErrServerClosed
// after Shutdown.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("starting server", "addr", addr, "resources", s.service.Store().Len())
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
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
		// JSON only: nothing may be loaded or framed.
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
