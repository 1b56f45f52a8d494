package ports

import (
	"context"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

// AccountRepository persists the upstream API's user accounts.
type AccountRepository interface {
	// Create returns domain.ErrAccountExists when the username or email is taken.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
}
