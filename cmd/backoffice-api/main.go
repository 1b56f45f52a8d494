// Command backoffice-api runs the upstream back-office API on its own:
// login, registration and the company list.
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

	"github.com/buhgalterija/backoffice/internal/api"
	"github.com/buhgalterija/backoffice/internal/app"
	"github.com/buhgalterija/backoffice/internal/pkg/config"
	"github.com/buhgalterija/backoffice/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "backoffice-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("backoffice-api stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	backends, err := app.Open(ctx, cfg, false, log)
	if err != nil {
		return err
	}
	defer backends.Close(context.Background())

	catalog, err := backends.Catalog(ctx)
	if err != nil {
		return err
	}
	accounts, err := backends.Accounts(ctx)
	if err != nil {
		return err
	}
	deps, err := app.UpstreamDeps(ctx, cfg, catalog, accounts, log)
	if err != nil {
		return err
	}

	e := api.NewUpstreamRouter(deps, backends.Health())

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("upstream API listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
