package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

// Catalog serves a fixed dataset from memory. Results are copies.
type Catalog struct {
	mu   sync.RWMutex
	data domain.Dataset
}

func NewCatalog(data domain.Dataset) *Catalog {
	return &Catalog{data: data}
}

func (c *Catalog) Companies(context.Context) ([]domain.Company, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.Companies), nil
}

func (c *Catalog) Tasks(context.Context) ([]domain.Task, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.Tasks), nil
}

func (c *Catalog) Documents(context.Context) ([]domain.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.Documents), nil
}

func (c *Catalog) Accountants(context.Context) ([]domain.AccountantUser, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.Accountants), nil
}
