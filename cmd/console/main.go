package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/adminconsole/internal/buildinfo"
	"github.com/dmitrijs2005/adminconsole/internal/client/cli"
	"github.com/dmitrijs2005/adminconsole/internal/client/client"
	"github.com/dmitrijs2005/adminconsole/internal/client/config"
	"github.com/dmitrijs2005/adminconsole/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/adminconsole/internal/client/services"
	"github.com/dmitrijs2005/adminconsole/internal/client/session"
	"github.com/dmitrijs2005/adminconsole/internal/client/shell"
	"github.com/dmitrijs2005/adminconsole/internal/filex"
	"github.com/dmitrijs2005/adminconsole/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig(os.Args[1:])

	level := slog.LevelWarn
	if cfg.Serve {
		level = slog.LevelInfo
	}
	logger := logging.NewText(os.Stderr, level)

	var repo tokens.Repository = tokens.NewMemoryRepository()
	if cfg.TokenDBPath != "" {
		if err := filex.EnsureParentDir(cfg.TokenDBPath); err != nil {
			log.Printf("token storage: %v", err)
			return
		}
		db, err := client.InitDatabase(ctx, cfg.TokenDBPath)
		if err != nil {
			log.Printf("token storage: %v", err)
			return
		}
		defer db.Close()
		repo = tokens.NewSQLiteRepository(db)
	}

	gw := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)
	store := session.New()
	auth := services.NewAuthService(gw, store, repo, logger)
	analytics := services.NewAnalyticsService(gw, store, logger)

	if !cfg.Serve {
		cli.NewApp(auth, analytics, logger, os.Stdin, os.Stdout).Run(ctx)
		return
	}

	if err := auth.Restore(ctx); err != nil {
		logger.Warn(ctx, "session restore failed", "error", err)
	}
	if err := shell.NewServer(cfg.ShellAddr, auth, analytics, logger).Run(ctx); err != nil {
		logger.Error(ctx, "HTTP shell stopped", "error", err)
	}
}
