// Package server wires and runs the development admin API server: in-memory
// admin accounts, one-time codes delivered to the log and canned analytics.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/logging"
	"github.com/dmitrijs2005/adminconsole/internal/server/admins"
	"github.com/dmitrijs2005/adminconsole/internal/server/analytics"
	"github.com/dmitrijs2005/adminconsole/internal/server/config"
	"github.com/dmitrijs2005/adminconsole/internal/server/httpapi"
	"github.com/dmitrijs2005/adminconsole/internal/server/services"
	"github.com/dmitrijs2005/adminconsole/internal/server/tfa"
	"github.com/dmitrijs2005/adminconsole/internal/shared"
)

const codeCleanupInterval = time.Minute

type App struct {
	config *config.Config
	logger logging.Logger
	codes  *tfa.Store
	api    *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, slog.LevelInfo)

	if c.SecretKey == "" {
		key, err := shared.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("generate secret key: %w", err)
		}
		c.SecretKey = key
		logger.Warn(ctx, "no secret key configured, tokens will not survive a restart")
	}

	repo := admins.NewMemoryRepository()
	if err := admins.Seed(ctx, repo, c.Admins); err != nil {
		return nil, fmt.Errorf("seed admins: %w", err)
	}

	codes := tfa.NewStore(c.OTPValidityDuration)
	as := services.NewAuthService(repo, codes, tfa.NewLogSender(logger), c, logger)
	api := httpapi.NewServer(c.EndpointAddr, logger, as, analytics.NewService())

	return &App{config: c, logger: logger, codes: codes, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.api.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// cleanupCodes drops expired one-time codes until ctx is done.
func (app *App) cleanupCodes(ctx context.Context) {
	t := time.NewTicker(codeCleanupInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := app.codes.Cleanup(); n > 0 {
				app.logger.Debug(ctx, "expired one-time codes removed", "count", n)
			}
		}
	}
}

// Run blocks until a termination signal arrives or the server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.cleanupCodes(ctx)
	}()

	wg.Wait()
}
