package shell

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/client/guard"
	"github.com/dmitrijs2005/adminconsole/internal/client/services"
	"github.com/dmitrijs2005/adminconsole/internal/logging"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	pathLogin     = guard.LoginPath
	pathTwoFactor = guard.TwoFactorPath
	pathDashboard = guard.LandingPath
	pathLogout    = "/logout"
	pathTop       = "/analytics/products/top-revenue"

	shutdownTimeout = 5 * time.Second
)

type Server struct {
	address   string
	auth      services.AuthService
	analytics services.AnalyticsService
	logger    logging.Logger
}

func NewServer(address string, auth services.AuthService, analytics services.AnalyticsService, logger logging.Logger) *Server {
	return &Server{
		address:   address,
		auth:      auth,
		analytics: analytics,
		logger:    logger.With("module", "shell"),
	}
}

// Handler builds the guarded router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(guard.Middleware(s.auth.GuardState))

	r.Get("/", s.home)

	r.Get(pathLogin, s.loginView)
	r.Post(pathLogin, s.login)

	r.Get(pathTwoFactor, s.twoFactorView)
	r.Post(pathTwoFactor, s.verify)
	r.Delete(pathTwoFactor, s.cancel)

	r.Post(pathLogout, s.logout)

	r.Get(pathDashboard, s.dashboard)
	r.Get(pathTop, s.topRevenue)

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
		s.logger.Info(ctx, "Stopping HTTP shell...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP shell", "address", s.address)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
