package gateway

import (
	"context"
	"net/http"

	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/ports"
)

const (
	pathLogin     = "/auth/login"
	pathRegister  = "/auth/register"
	pathCompanies = "/companies/list"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.AuthResponse, error) {
	var out domain.AuthResponse
	status, err := c.do(ctx, http.MethodPost, pathLogin, loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return &out, nil
}

// Register creates an account. A 204 response yields a nil result.
func (c *Client) Register(ctx context.Context, req ports.RegisterRequest) (*domain.AuthResponse, error) {
	var out domain.AuthResponse
	status, err := c.do(ctx, http.MethodPost, pathRegister, req, &out)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return &out, nil
}

// FetchCompanies lists companies with server-side filtering and ordering.
func (c *Client) FetchCompanies(ctx context.Context, req domain.CompanyListRequest) ([]domain.Company, error) {
	out := []domain.Company{}
	if _, err := c.do(ctx, http.MethodPost, pathCompanies, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
