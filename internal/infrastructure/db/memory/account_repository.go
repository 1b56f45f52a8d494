package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

// AccountRepository keeps upstream accounts in memory.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*domain.Account)}
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if a.Username == account.Username || (account.Email != "" && strings.EqualFold(a.Email, account.Email)) {
			return nil, domain.ErrAccountExists
		}
	}

	stored := *account
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if _, taken := r.accounts[stored.ID]; taken {
		return nil, domain.ErrAccountExists
	}
	r.accounts[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *AccountRepository) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	return r.find(func(a *domain.Account) bool { return a.Username == username })
}

func (r *AccountRepository) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	return r.find(func(a *domain.Account) bool { return a.Email != "" && strings.EqualFold(a.Email, email) })
}

func (r *AccountRepository) find(match func(*domain.Account) bool) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if match(a) {
			out := *a
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}
