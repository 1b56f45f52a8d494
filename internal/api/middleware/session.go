package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/service"
)

const (
	sessionKey    = "session"
	guardStateKey = "guard_state"
)

// SessionFromContext returns the session injected by Guard, if any.
func SessionFromContext(c echo.Context) (domain.Session, bool) {
	sess, ok := c.Get(sessionKey).(domain.Session)
	return sess, ok && sess.Valid()
}

// MustSession returns the session injected by Guard. It panics with a
// domain.StateError when the handler is not mounted behind the guard.
func MustSession(c echo.Context) domain.Session {
	sess, ok := SessionFromContext(c)
	if !ok {
		panic(domain.NewStateError(c.Request().Method + " " + c.Path()))
	}
	return sess
}

// GuardState returns the guard state recorded for this request.
func GuardState(c echo.Context) service.GuardState {
	state, ok := c.Get(guardStateKey).(service.GuardState)
	if !ok {
		return service.GuardUnauthenticated
	}
	return state
}

// WithSession stores sess on c the way Guard does.
func WithSession(c echo.Context, sess domain.Session) {
	c.Set(sessionKey, sess)
	c.Set(guardStateKey, service.GuardAuthenticated)
}
