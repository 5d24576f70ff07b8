// Package httpapi exposes the dev server's admin API over JSON/HTTP under
// /api/v1, with the same paths and response shapes as the production API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/logging"
	"github.com/dmitrijs2005/adminconsole/internal/server/analytics"
	"github.com/dmitrijs2005/adminconsole/internal/server/services"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

const (
	APIPrefix = "/api/v1"

	shutdownTimeout = 5 * time.Second
)

type Server struct {
	address   string
	auth      *services.AuthService
	analytics *analytics.Service
	validate  *validator.Validate
	logger    logging.Logger
}

func NewServer(address string, l logging.Logger, auth *services.AuthService, an *analytics.Service) *Server {
	return &Server{
		address:   address,
		auth:      auth,
		analytics: an,
		validate:  newValidator(),
		logger:    l.With("module", "http_api"),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(s.accessLog)
	r.Use(chimiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "not found")
	})

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", s.login)
			r.Post("/2fa-verify", s.verifyTwoFactor)
			r.Post("/refresh", s.refresh)
			r.Get("/check-session", s.checkSession)
			r.Post("/logout", s.logout)
			r.With(s.requireAdmin).Get("/me", s.me)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Get("/dashboard/business-kpis", s.businessKPIs)
			r.Get("/products/top-revenue", s.topRevenueProducts)
		})
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
