package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

// errorResponse is the canonical error envelope for console errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler maps domain errors to status codes and renders
// {"error": "<message>"}. Unexpected errors are logged and reported
// generically.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, ve.Message
	}

	// Upstream client errors pass through; anything else is a bad gateway.
	var re *domain.RequestError
	if errors.As(err, &re) {
		if re.Status >= 400 && re.Status < 500 {
			return re.Status, re.Message
		}
		return http.StatusBadGateway, re.Message
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrAuthInProgress):
		return http.StatusConflict, domain.ErrAuthInProgress.Error()
	case errors.Is(err, domain.ErrNoSession):
		return http.StatusBadGateway, domain.ErrNoSession.Error()
	case errors.Is(err, domain.ErrPersistence):
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("session storage failed")
		return http.StatusInternalServerError, "session storage unavailable"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
