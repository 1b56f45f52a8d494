// Command backoffice runs the back-office console.
//
// @title                       Back-office console API
// @version                     1.0
// @description                 Session, views and the bundled upstream API of the accounting back-office.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/buhgalterija/backoffice/internal/app"
	"github.com/buhgalterija/backoffice/internal/pkg/config"
	"github.com/buhgalterija/backoffice/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "backoffice",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("backoffice stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	backends, err := app.Open(ctx, cfg, true, log)
	if err != nil {
		return err
	}
	defer backends.Close(context.Background())

	storage, err := backends.SessionStorage()
	if err != nil {
		return err
	}
	catalog, err := backends.Catalog(ctx)
	if err != nil {
		return err
	}

	opts := app.ConsoleOptions{
		Storage: storage,
		Catalog: catalog,
		Health:  backends.Health(),
	}
	if cfg.SameOrigin() {
		accounts, err := backends.Accounts(ctx)
		if err != nil {
			return err
		}
		deps, err := app.UpstreamDeps(ctx, cfg, catalog, accounts, log)
		if err != nil {
			return err
		}
		opts.Upstream = &deps
	}

	console := app.NewConsole(cfg, opts, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("api", app.APIBaseURL(cfg)).
			Bool("same_origin", cfg.SameOrigin()).
			Msg("console listening")
		if err := console.Echo.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	console.LoadSession(ctx)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	return shutdown(console.Echo.Shutdown, log)
}

func shutdown(fn func(context.Context) error, log zerolog.Logger) error {
	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return fn(ctx)
}
