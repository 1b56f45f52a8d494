package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/buhgalterija/backoffice/internal/api"
	"github.com/buhgalterija/backoffice/internal/core/ports"
	"github.com/buhgalterija/backoffice/internal/core/service"
	"github.com/buhgalterija/backoffice/internal/pkg/config"
)

// UpstreamDeps builds the upstream API's services. When SEED_PASSWORD is set,
// every staff member of the catalog gets an account with that password.
func UpstreamDeps(
	ctx context.Context,
	cfg *config.Config,
	catalog ports.Catalog,
	accounts ports.AccountRepository,
	log zerolog.Logger,
) (api.UpstreamDeps, error) {
	if cfg.Upstream.JWTSecret == "" {
		return api.UpstreamDeps{}, errors.New("JWT_SECRET is required to serve the upstream API")
	}

	authService := service.NewAuthService(accounts, cfg.Upstream.JWTSecret, cfg.Upstream.TokenTTL)

	if cfg.Upstream.SeedPassword != "" {
		staff, err := catalog.Accountants(ctx)
		if err != nil {
			return api.UpstreamDeps{}, err
		}
		n, err := authService.Seed(ctx, staff, cfg.Upstream.SeedPassword)
		if err != nil {
			return api.UpstreamDeps{}, err
		}
		log.Info().Int("created", n).Msg("seeded staff accounts")
	}

	return api.UpstreamDeps{
		Log:       log.With().Str("component", "upstream").Logger(),
		Accounts:  authService,
		Catalog:   catalog,
		Validator: service.NewValidator(),
		JWTSecret: cfg.Upstream.JWTSecret,
	}, nil
}
