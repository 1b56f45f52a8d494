package ports

import (
	"context"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

// AccountService issues tokens for the upstream API.
type AccountService interface {
	Register(ctx context.Context, req RegisterRequest) (string, *domain.Account, error)
	// Login accepts either the username or the email as identifier.
	Login(ctx context.Context, identifier, password string) (string, *domain.Account, error)
}
