package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/ports"
)

// AuthHandler serves the upstream API's login and registration endpoints.
// Error bodies are plain text.
type AuthHandler struct {
	authService ports.AccountService
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AccountService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account and signs it in.
//
// @Summary      Register an account
// @Tags         upstream
// @Accept       json
// @Produce      json
// @Param        body  body      ports.RegisterRequest  true  "Account details"
// @Success      201   {object}  domain.AuthResponse
// @Failure      400   {string}  string
// @Failure      409   {string}  string
// @Failure      500   {string}  string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid payload")
	}

	token, account, err := h.authService.Register(c.Request().Context(), req)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, domain.AuthResponse{Token: token, User: account.AuthUser()})
	case errors.Is(err, domain.ErrAccountExists):
		return c.String(http.StatusConflict, "Account already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.String(http.StatusBadRequest, "username and password are required")
	}

	h.log.Error().Err(err).Msg("register failed")
	return c.String(http.StatusInternalServerError, "internal server error")
}

// Login authenticates by username or email and returns a JWT.
//
// @Summary      Login
// @Tags         upstream
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  domain.AuthResponse
// @Failure      400   {string}  string
// @Failure      401   {string}  string
// @Failure      500   {string}  string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid payload")
	}

	token, account, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, domain.AuthResponse{Token: token, User: account.AuthUser()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.String(http.StatusUnauthorized, "Invalid credentials")
	}

	h.log.Error().Err(err).Msg("login failed")
	return c.String(http.StatusInternalServerError, "internal server error")
}
