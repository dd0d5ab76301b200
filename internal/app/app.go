// Package app wires the title-fetch proxy together: config, logger,
// fetcher and HTTP server, with signal-driven graceful shutdown.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yohoo/startpage/internal/config"
	"github.com/yohoo/startpage/internal/fetch"
	"github.com/yohoo/startpage/internal/httpserver"
	"github.com/yohoo/startpage/internal/httpserver/deps"
	"github.com/yohoo/startpage/internal/logger"
	"github.com/yohoo/startpage/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
}

// New builds the proxy from environment configuration.
func New() *App {
	cfg := config.Load()
	return NewWithConfig(cfg, logger.New(cfg.LogLevel, cfg.PrettyLog))
}

// NewWithConfig builds the proxy from an explicit configuration and
// logger; the serve command uses this to apply CLI verbosity flags.
func NewWithConfig(cfg *config.Config, loggerClient logger.Logger) *App {
	fetcher := fetch.New(cfg.FetchTimeout)
	if cfg.MaxRedirects > 0 {
		fetcher.MaxRedirects = cfg.MaxRedirects
	}
	if cfg.UserAgent != "" {
		fetcher.UserAgent = cfg.UserAgent
	}

	d := deps.Deps{
		Logger:    loggerClient,
		Fetcher:   fetcher,
		StartTime: time.Now(),
		Service:   version.Service,
		Version:   version.Version,
	}

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: httpserver.New(cfg, loggerClient, d),
	}
}

// Run starts the server and blocks until a signal or a server error.
func (a *App) Run() error {
	a.logger.Infof("Starting %s %s on %s (commit=%s, built=%s, go=%s)",
		version.Service, version.Version, a.cfg.ListenAddr,
		version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.logger.Info("server stopped")
	return nil
}
