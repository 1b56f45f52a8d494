package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/buhgalterija/backoffice/docs"
	"github.com/buhgalterija/backoffice/internal/api/handler"
	"github.com/buhgalterija/backoffice/internal/api/middleware"
	"github.com/buhgalterija/backoffice/internal/core/ports"
	"github.com/buhgalterija/backoffice/internal/core/service"
)

// ConsoleDeps are the services behind the console routes.
type ConsoleDeps struct {
	Log       zerolog.Logger
	Guard     *service.RouteGuard
	Sessions  handler.LoginFlow
	Directory handler.Directory
	Health    map[string]handler.Pinger
}

// UpstreamDeps are the services behind the bundled upstream API.
type UpstreamDeps struct {
	Log       zerolog.Logger
	Accounts  ports.AccountService
	Catalog   ports.Catalog
	Validator *service.Validator
	JWTSecret string
}

func newEcho(log zerolog.Logger, health map[string]handler.Pinger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Error().Err(err).Bytes("stack", stack).Str("path", c.Path()).Msg("panic recovered")
			return err
		},
	}))
	e.Use(middleware.Metrics())

	// --- Probes and docs (never guarded) ---
	healthHandler := handler.NewHealthHandler(health)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// NewRouter builds the console: session actions, and the views behind the
// route guard.
func NewRouter(deps ConsoleDeps) *echo.Echo {
	e := newEcho(deps.Log, deps.Health)

	sessionHandler := handler.NewSessionHandler(deps.Sessions)
	viewHandler := handler.NewViewHandler(deps.Directory)

	// --- Session actions ---
	e.POST("/session/login", sessionHandler.Login)
	e.POST("/session/register", sessionHandler.Register)
	e.POST("/session/logout", sessionHandler.Logout)

	// --- Guarded views ---
	views := e.Group("", middleware.Guard(deps.Guard))
	views.GET(deps.Guard.LoginPath(), sessionHandler.AuthView)
	views.GET("/session", sessionHandler.Current)

	views.GET("/", viewHandler.Dashboard)
	views.GET("/companies", viewHandler.Companies)
	views.POST("/companies/refresh", viewHandler.RefreshCompanies)
	views.GET("/companies/:id", viewHandler.Company)
	views.GET("/tasks", viewHandler.Tasks)
	views.GET("/tasks/:id", viewHandler.Task)
	views.GET("/documents", viewHandler.Documents)
	views.GET("/documents/:id", viewHandler.Document)
	views.GET("/users", viewHandler.Users, middleware.RequireCapability(middleware.ManageUsers))
	views.GET("/settings", viewHandler.Settings, middleware.RequireCapability(middleware.ManageCompanies))

	return e
}

// MountUpstream registers the upstream API routes on e.
func MountUpstream(e *echo.Echo, deps UpstreamDeps) {
	authHandler := handler.NewAuthHandler(deps.Accounts, deps.Log)
	companyHandler := handler.NewCompanyListHandler(deps.Catalog, deps.Validator, deps.Log)

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/companies/list", companyHandler.List, middleware.Auth(deps.JWTSecret))
}

// NewUpstreamRouter builds a standalone upstream API server.
func NewUpstreamRouter(deps UpstreamDeps, health map[string]handler.Pinger) *echo.Echo {
	e := newEcho(deps.Log, health)
	MountUpstream(e, deps)
	return e
}
