package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buhgalterija/backoffice/internal/core/service"
	"github.com/buhgalterija/backoffice/internal/pkg/metrics"
)

type placeholderResponse struct {
	State string `json:"state"`
}

// Guard applies the route guard to every request of the group it is
// mounted on. Protected views see the loading placeholder (503) until the
// session store has loaded, and a redirect to the login view without a
// session. The login view is always served.
func Guard(guard *service.RouteGuard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := guard.Decide(c.Request().URL.Path)
			metrics.GuardDecisionsTotal.WithLabelValues(d.Outcome.String()).Inc()

			switch d.Outcome {
			case service.OutcomePlaceholder:
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, placeholderResponse{State: d.State.String()})
			case service.OutcomeRedirect:
				return c.Redirect(http.StatusFound, d.Location)
			}

			c.Set(guardStateKey, d.State)
			if d.Session.Valid() {
				c.Set(sessionKey, d.Session)
			}
			return next(c)
		}
	}
}
