package ports

import (
	"context"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

// Catalog is the read-mostly store of back-office records.
type Catalog interface {
	Companies(ctx context.Context) ([]domain.Company, error)
	Tasks(ctx context.Context) ([]domain.Task, error)
	Documents(ctx context.Context) ([]domain.Document, error)
	Accountants(ctx context.Context) ([]domain.AccountantUser, error)
}
