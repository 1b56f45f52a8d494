package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buhgalterija/backoffice/internal/api/middleware"
	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/service"
)

// LoginFlow is the sign-in and sign-out side of the console.
type LoginFlow interface {
	Login(ctx context.Context, in service.LoginInput) (domain.Session, error)
	Register(ctx context.Context, in service.RegisterInput) (*domain.Session, error)
	Logout(ctx context.Context) error
}

type SessionHandler struct {
	flow LoginFlow
}

func NewSessionHandler(flow LoginFlow) *SessionHandler {
	return &SessionHandler{flow: flow}
}

// AuthView renders the login view. It is always served; an already signed-in
// user sees their profile.
//
// @Summary      Login view
// @Tags         session
// @Produce      json
// @Success      200  {object}  loginView
// @Router       /auth [get]
func (h *SessionHandler) AuthView(c echo.Context) error {
	view := loginView{State: middleware.GuardState(c).String()}
	if sess, ok := middleware.SessionFromContext(c); ok {
		v := newSessionView(sess)
		view.Session = &v
	}
	return c.JSON(http.StatusOK, view)
}

// Login signs in with username and password.
//
// @Summary      Sign in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      service.LoginInput  true  "Credentials"
// @Success      200   {object}  sessionView
// @Failure      409   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var in service.LoginInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sess, err := h.flow.Login(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSessionView(sess))
}

// Register creates an account. When the server hands back a token the user
// is signed in as well.
//
// @Summary      Sign up
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      service.RegisterInput  true  "Account details"
// @Success      201   {object}  registerView
// @Failure      409   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /session/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var in service.RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sess, err := h.flow.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}

	view := registerView{Registered: true}
	if sess != nil {
		v := newSessionView(*sess)
		view.Session = &v
	}
	return c.JSON(http.StatusCreated, view)
}

// Logout ends the session. Local state is cleared even when storage fails.
//
// @Summary      Sign out
// @Tags         session
// @Success      204
// @Failure      500  {object}  errorBody
// @Router       /session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.flow.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Current returns the signed-in user with capabilities and navigation.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionView
// @Failure      302
// @Router       /session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, newSessionView(middleware.MustSession(c)))
}
