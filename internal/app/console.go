package app

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/buhgalterija/backoffice/internal/api"
	"github.com/buhgalterija/backoffice/internal/api/handler"
	"github.com/buhgalterija/backoffice/internal/core/ports"
	"github.com/buhgalterija/backoffice/internal/core/service"
	"github.com/buhgalterija/backoffice/internal/infrastructure/gateway"
	"github.com/buhgalterija/backoffice/internal/pkg/config"
)

// Console is an assembled console server.
type Console struct {
	Echo     *echo.Echo
	Sessions *service.SessionStore
}

// ConsoleOptions are the parts NewConsole does not build itself.
type ConsoleOptions struct {
	Storage ports.KeyValueStore
	Catalog ports.Catalog
	Health  map[string]handler.Pinger
	// Upstream, when set, is mounted on the console's own router.
	Upstream *api.UpstreamDeps
	// HTTPClient defaults to a client with the configured API timeout.
	HTTPClient *http.Client
}

// APIBaseURL returns where the console sends upstream requests. Without a
// configured base URL the console calls itself.
func APIBaseURL(cfg *config.Config) string {
	if cfg.SameOrigin() {
		return "http://127.0.0.1:" + cfg.Port
	}
	return cfg.API.BaseURL
}

// NewConsole wires the session store, gateway, login flow and views. The
// session is not loaded yet; call Sessions.Load once the server is up.
func NewConsole(cfg *config.Config, opts ConsoleOptions, log zerolog.Logger) *Console {
	sessions := service.NewSessionStore(opts.Storage, service.SessionKeys{
		Token:   cfg.Session.TokenKey,
		Profile: cfg.Session.ProfileKey,
	}, log)

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.Timeout}
	}
	gw := gateway.NewClient(httpClient, APIBaseURL(cfg), sessions, log)

	logins := service.NewLoginService(gw, sessions, service.NewValidator(), log)
	dir := service.NewDirectory(opts.Catalog, gw, log)
	sessions.OnTeardown(dir.Reset)

	e := api.NewRouter(api.ConsoleDeps{
		Log:       log,
		Guard:     service.NewRouteGuard(sessions, ""),
		Sessions:  logins,
		Directory: dir,
		Health:    opts.Health,
	})
	if opts.Upstream != nil {
		api.MountUpstream(e, *opts.Upstream)
	}

	return &Console{Echo: e, Sessions: sessions}
}

// LoadSession ends the session store's loading phase in the background.
func (c *Console) LoadSession(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Sessions.Load(ctx)
	}()
	return done
}
