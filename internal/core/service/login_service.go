package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/ports"
	"github.com/buhgalterija/backoffice/internal/pkg/metrics"
)

// LoginInput is the login form.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"min=6"`
}

// RegisterInput is the sign-up form.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"min=6"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Name     string `json:"name,omitempty"`
}

// LoginService runs the login, registration and sign-out flows against the
// gateway and records the outcome in the session store.
type LoginService struct {
	gateway   ports.AuthGateway
	sessions  *SessionStore
	validator *Validator
	log       zerolog.Logger

	inFlight atomic.Bool
}

func NewLoginService(gateway ports.AuthGateway, sessions *SessionStore, validator *Validator, log zerolog.Logger) *LoginService {
	return &LoginService{
		gateway:   gateway,
		sessions:  sessions,
		validator: validator,
		log:       log.With().Str("component", "login").Logger(),
	}
}

// Login validates the form, exchanges the credentials for a token and
// establishes the session. Only one login or registration may be in flight.
func (s *LoginService) Login(ctx context.Context, in LoginInput) (domain.Session, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := s.validator.Validate(in); err != nil {
		s.record("login", err)
		return domain.Session{}, err
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		s.record("login", domain.ErrAuthInProgress)
		return domain.Session{}, domain.ErrAuthInProgress
	}
	defer s.inFlight.Store(false)

	resp, err := s.gateway.Login(ctx, in.Username, in.Password)
	if err != nil {
		s.record("login", err)
		s.log.Warn().Err(err).Str("username", in.Username).Msg("login rejected")
		return domain.Session{}, err
	}
	if resp == nil || resp.Token == "" {
		s.record("login", domain.ErrNoSession)
		s.log.Warn().Str("username", in.Username).Msg("login answered without a token")
		return domain.Session{}, domain.ErrNoSession
	}

	sess, err := s.sessions.SetFromLogin(ctx, *resp)
	s.record("login", err)
	if err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// Register creates an account. When the server answers with a token the new
// user is signed in and the session is returned; otherwise the result is nil
// and the user still has to log in.
func (s *LoginService) Register(ctx context.Context, in RegisterInput) (*domain.Session, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.validator.Validate(in); err != nil {
		s.record("register", err)
		return nil, err
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		s.record("register", domain.ErrAuthInProgress)
		return nil, domain.ErrAuthInProgress
	}
	defer s.inFlight.Store(false)

	resp, err := s.gateway.Register(ctx, ports.RegisterRequest{
		Username: in.Username,
		Password: in.Password,
		Email:    in.Email,
		Name:     in.Name,
	})
	if err != nil {
		s.record("register", err)
		s.log.Warn().Err(err).Str("username", in.Username).Msg("registration rejected")
		return nil, err
	}

	if resp == nil || resp.Token == "" {
		s.record("register", nil)
		s.log.Info().Str("username", in.Username).Msg("registered without session")
		return nil, nil
	}

	sess, err := s.sessions.SetFromLogin(ctx, *resp)
	s.record("register", err)
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// Logout clears the session.
func (s *LoginService) Logout(ctx context.Context) error {
	err := s.sessions.Clear(ctx)
	s.record("logout", err)
	return err
}

func (s *LoginService) record(op string, err error) {
	metrics.AuthAttemptsTotal.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	var (
		ve *domain.ValidationError
		re *domain.RequestError
	)
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &ve):
		return "invalid"
	case errors.Is(err, domain.ErrAuthInProgress):
		return "busy"
	case errors.As(err, &re):
		return "rejected"
	default:
		return "error"
	}
}
