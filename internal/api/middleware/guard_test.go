package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/service"
)

type stubSessions struct {
	loading bool
	session domain.Session
}

func (s *stubSessions) IsLoading() bool { return s.loading }

func (s *stubSessions) Current() (domain.Session, bool) {
	return s.session, s.session.Valid()
}

var testSession = domain.Session{
	Token:   "tok",
	Profile: domain.UserProfile{ID: "3", Name: "Jelena", Email: "jelena@firm.rs", Role: domain.RoleAdministrator},
}

func runGuard(t *testing.T, sessions *stubSessions, path string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)

	called := false
	handler := Guard(service.NewRouteGuard(sessions, "/auth"))(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, c, called
}

func TestGuard_LoadingShowsPlaceholder(t *testing.T) {
	rec, _, called := runGuard(t, &stubSessions{loading: true, session: testSession}, "/companies")
	if called {
		t.Fatalf("protected view rendered while loading")
	}
	if rec.Code != http.StatusServiceUnavailable || rec.Header().Get("Retry-After") != "1" {
		t.Fatalf("expected 503 with Retry-After, got %d %q", rec.Code, rec.Header().Get("Retry-After"))
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["state"] != "loading" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGuard_UnauthenticatedRedirectsToLogin(t *testing.T) {
	rec, _, called := runGuard(t, &stubSessions{}, "/tasks/T-001")
	if called || rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/auth" {
		t.Fatalf("expected redirect to /auth, got %q", loc)
	}
}

func TestGuard_AuthenticatedInjectsSession(t *testing.T) {
	rec, c, called := runGuard(t, &stubSessions{session: testSession}, "/")
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected render, got %d", rec.Code)
	}
	sess, ok := SessionFromContext(c)
	if !ok || sess != testSession {
		t.Fatalf("session not injected: %+v", sess)
	}
	if GuardState(c) != service.GuardAuthenticated {
		t.Fatalf("unexpected state %v", GuardState(c))
	}
}

func TestGuard_LoginViewAlwaysRenders(t *testing.T) {
	for _, sessions := range []*stubSessions{{loading: true}, {}, {session: testSession}} {
		rec, c, called := runGuard(t, sessions, "/auth")
		if !called || rec.Code != http.StatusOK {
			t.Fatalf("login view not rendered (loading=%v): %d", sessions.loading, rec.Code)
		}
		_, hasSession := SessionFromContext(c)
		if hasSession != sessions.session.Valid() && !sessions.loading {
			t.Fatalf("session injection mismatch for %+v", sessions)
		}
	}
}

func TestMustSession_PanicsOutsideGuard(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	defer func() {
		if _, ok := recover().(*domain.StateError); !ok {
			t.Fatalf("expected StateError panic")
		}
	}()
	MustSession(c)
}
