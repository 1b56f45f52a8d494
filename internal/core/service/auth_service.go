package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/ports"
)

// AuthService implements registration and login for the upstream API.
type AuthService struct {
	repo      ports.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AccountRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates an account without a role and signs it in.
func (s *AuthService) Register(ctx context.Context, req ports.RegisterRequest) (string, *domain.Account, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	created, err := s.create(ctx, &domain.Account{
		Username: strings.TrimSpace(req.Username),
		Email:    req.Email,
		Name:     req.Name,
	}, req.Password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

func (s *AuthService) create(ctx context.Context, account *domain.Account, password string) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account.PasswordHash = string(hash)
	account.CreatedAt = now
	account.UpdatedAt = now

	return s.repo.Create(ctx, account)
}

// Login accepts the username or the email. Unknown users and wrong passwords
// both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *domain.Account, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, identifier)
	if errors.Is(err, domain.ErrNotFound) && strings.Contains(identifier, "@") {
		account, err = s.repo.FindByEmail(ctx, identifier)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

// Seed creates an account for every staff member that does not have one
// yet. The username is the local part of the email.
func (s *AuthService) Seed(ctx context.Context, staff []domain.AccountantUser, password string) (int, error) {
	created := 0
	for _, u := range staff {
		username, _, _ := strings.Cut(u.Email, "@")
		_, err := s.create(ctx, &domain.Account{
			ID:       u.ID,
			Username: username,
			Email:    u.Email,
			Name:     u.Name,
			Role:     u.Role,
		}, password)
		if errors.Is(err, domain.ErrAccountExists) {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      account.ID,
		"username": account.Username,
		"role":     string(account.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
