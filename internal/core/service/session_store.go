package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/ports"
	"github.com/buhgalterija/backoffice/internal/pkg/metrics"
)

const (
	DefaultTokenKey   = "accessToken"
	DefaultProfileKey = "authUser"
)

// SessionKeys names the storage entries holding the credential and profile.
type SessionKeys struct {
	Token   string
	Profile string
}

// SessionStore is the single source of truth for who is signed in on this
// console. Reads are served from memory; every mutation is mirrored to the
// key/value store so the session survives restarts.
type SessionStore struct {
	storage ports.KeyValueStore
	keys    SessionKeys
	log     zerolog.Logger

	// writeMu serialises SetFromLogin and Clear so memory and storage are
	// updated as one step.
	writeMu sync.Mutex

	mu       sync.RWMutex
	loading  bool
	token    string
	profile  *domain.UserProfile
	teardown []func()
}

func NewSessionStore(storage ports.KeyValueStore, keys SessionKeys, log zerolog.Logger) *SessionStore {
	if keys.Token == "" {
		keys.Token = DefaultTokenKey
	}
	if keys.Profile == "" {
		keys.Profile = DefaultProfileKey
	}
	return &SessionStore{
		storage: storage,
		keys:    keys,
		log:     log.With().Str("component", "session_store").Logger(),
		loading: true,
	}
}

// OnTeardown registers fn to run after every Clear.
func (s *SessionStore) OnTeardown(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardown = append(s.teardown, fn)
}

// Load rehydrates the session from storage and ends the loading phase.
// Unreadable or unparsable entries are logged and treated as absent.
func (s *SessionStore) Load(ctx context.Context) {
	token := s.readEntry(ctx, s.keys.Token)

	var profile *domain.UserProfile
	if raw := s.readEntry(ctx, s.keys.Profile); raw != "" {
		p, err := decodeProfile(raw)
		if err != nil {
			s.log.Warn().Err(err).Str("key", s.keys.Profile).Msg("discarding stored profile")
		} else {
			profile = p
		}
	}

	s.mu.Lock()
	s.token = token
	s.profile = profile
	s.loading = false
	s.mu.Unlock()

	if token != "" && profile != nil {
		s.log.Info().Str("user_id", profile.ID).Str("role", string(profile.Role)).Msg("session restored")
	} else {
		s.log.Debug().Msg("no stored session")
	}
}

func (s *SessionStore) readEntry(ctx context.Context, key string) string {
	value, ok, err := s.storage.Get(ctx, key)
	if err != nil {
		metrics.SessionStorageErrorsTotal.WithLabelValues("load").Inc()
		s.log.Error().Err(err).Str("key", key).Msg("session storage read failed")
		return ""
	}
	if !ok {
		return ""
	}
	return value
}

func decodeProfile(raw string) (*domain.UserProfile, error) {
	var p domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceParse, err)
	}
	if p == (domain.UserProfile{}) {
		return nil, fmt.Errorf("%w: empty profile", domain.ErrPersistenceParse)
	}
	return &p, nil
}

// SetFromLogin replaces the current session with the one described by resp.
// Storage is written first; memory changes only when both entries were
// persisted. A failed write leaves no session anywhere. Replacing a different
// session runs the teardown hooks, as Clear does.
func (s *SessionStore) SetFromLogin(ctx context.Context, resp domain.AuthResponse) (domain.Session, error) {
	if resp.Token == "" {
		return domain.Session{}, domain.ErrNoSession
	}

	profile := resp.User.Profile()
	raw, err := json.Marshal(profile)
	if err != nil {
		return domain.Session{}, fmt.Errorf("encode profile: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.persist(ctx, resp.Token, string(raw)); err != nil {
		metrics.SessionStorageErrorsTotal.WithLabelValues("save").Inc()
		s.dropAll(ctx)
		return domain.Session{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	s.mu.Lock()
	replaced := s.token != "" && s.token != resp.Token
	s.token = resp.Token
	s.profile = &profile
	s.loading = false
	var hooks []func()
	if replaced {
		hooks = append(hooks, s.teardown...)
	}
	s.mu.Unlock()

	// Data fetched under the previous credential must not leak into the new session.
	for _, fn := range hooks {
		fn()
	}

	s.log.Info().Str("user_id", profile.ID).Str("role", string(profile.Role)).Msg("session established")
	return domain.Session{Token: resp.Token, Profile: profile}, nil
}

func (s *SessionStore) persist(ctx context.Context, token, profile string) error {
	if err := s.storage.Set(ctx, s.keys.Token, token); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	if err := s.storage.Set(ctx, s.keys.Profile, profile); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

// dropAll clears memory and, best-effort, storage.
func (s *SessionStore) dropAll(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.profile = nil
	s.mu.Unlock()

	for _, key := range []string{s.keys.Token, s.keys.Profile} {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.log.Error().Err(err).Str("key", key).Msg("session storage cleanup failed")
		}
	}
}

// Clear signs out. Memory is always cleared; storage failures are returned
// so the caller can report them. Calling Clear without a session is a no-op.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	hadSession := s.token != "" || s.profile != nil
	s.token = ""
	s.profile = nil
	hooks := append([]func(){}, s.teardown...)
	s.mu.Unlock()

	var errs []error
	for _, key := range []string{s.keys.Token, s.keys.Profile} {
		if err := s.storage.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}

	for _, fn := range hooks {
		fn()
	}

	if len(errs) > 0 {
		metrics.SessionStorageErrorsTotal.WithLabelValues("clear").Inc()
		return fmt.Errorf("%w: %w", domain.ErrPersistence, errors.Join(errs...))
	}
	if hadSession {
		s.log.Info().Msg("session cleared")
	}
	return nil
}

// IsLoading is true until the initial Load completes.
func (s *SessionStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Current returns the session when both credential and profile are present.
func (s *SessionStore) Current() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.profile == nil {
		return domain.Session{}, false
	}
	return domain.Session{Token: s.token, Profile: *s.profile}, true
}

// Token returns the current credential, or "" when signed out.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
