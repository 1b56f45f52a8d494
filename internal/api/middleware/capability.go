package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/service"
	"github.com/buhgalterija/backoffice/internal/pkg/metrics"
)

const homePath = "/"

// Capability selects one flag of a CapabilitySet.
type Capability struct {
	Name  string
	Allow func(domain.CapabilitySet) bool
}

var (
	ManageUsers = Capability{
		Name:  "canManageUsers",
		Allow: func(c domain.CapabilitySet) bool { return c.CanManageUsers },
	}
	ManageCompanies = Capability{
		Name:  "canManageCompanies",
		Allow: func(c domain.CapabilitySet) bool { return c.CanManageCompanies },
	}
)

// RequireCapability redirects to the home view when the signed-in role lacks
// the required capability. Capabilities are derived from the role on every
// request. Must be mounted behind Guard.
func RequireCapability(required Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := MustSession(c)
			if !required.Allow(service.Capabilities(sess.Profile.Role)) {
				metrics.CapabilityDenialsTotal.WithLabelValues(required.Name).Inc()
				return c.Redirect(http.StatusFound, homePath)
			}
			return next(c)
		}
	}
}
