package ports

import (
	"context"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
}

// AuthGateway exchanges credentials for a session over the network.
// It owns no state.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*domain.AuthResponse, error)
	// Register returns a nil response when the server answered 204 No Content.
	Register(ctx context.Context, req RegisterRequest) (*domain.AuthResponse, error)
}

// CompanySource fetches the company list from the upstream API.
type CompanySource interface {
	FetchCompanies(ctx context.Context, req domain.CompanyListRequest) ([]domain.Company, error)
}
