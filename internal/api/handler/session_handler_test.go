package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/buhgalterija/backoffice/internal/api/middleware"
	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/service"
)

type stubLoginFlow struct {
	loginFn    func(ctx context.Context, in service.LoginInput) (domain.Session, error)
	registerFn func(ctx context.Context, in service.RegisterInput) (*domain.Session, error)
	logoutErr  error
	logouts    int
}

func (s *stubLoginFlow) Login(ctx context.Context, in service.LoginInput) (domain.Session, error) {
	return s.loginFn(ctx, in)
}

func (s *stubLoginFlow) Register(ctx context.Context, in service.RegisterInput) (*domain.Session, error) {
	return s.registerFn(ctx, in)
}

func (s *stubLoginFlow) Logout(context.Context) error {
	s.logouts++
	return s.logoutErr
}

func TestSessionHandler_Login_Success(t *testing.T) {
	e := echo.New()
	flow := &stubLoginFlow{
		loginFn: func(ctx context.Context, in service.LoginInput) (domain.Session, error) {
			if in.Username != "marko" || in.Password != "secret1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return directorSession, nil
		},
	}
	h := NewSessionHandler(flow)

	req, rec := postJSON("/session/login", `{"username":"marko","password":"secret1"}`)
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var view sessionView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if view.User != directorSession.Profile {
		t.Fatalf("unexpected user: %+v", view.User)
	}
	want := domain.CapabilitySet{CanManageCompanies: true, CanAssignTasks: true, CanApproveTasks: true}
	if view.Capabilities != want {
		t.Fatalf("unexpected capabilities: %+v", view.Capabilities)
	}
	if len(view.Navigation) == 0 {
		t.Fatalf("expected navigation items")
	}
}

func TestSessionHandler_Login_PassesErrorsThrough(t *testing.T) {
	e := echo.New()
	h := NewSessionHandler(&stubLoginFlow{
		loginFn: func(ctx context.Context, in service.LoginInput) (domain.Session, error) {
			return domain.Session{}, domain.ErrAuthInProgress
		},
	})

	req, rec := postJSON("/session/login", `{"username":"marko","password":"secret1"}`)
	if err := h.Login(e.NewContext(req, rec)); !errors.Is(err, domain.ErrAuthInProgress) {
		t.Fatalf("expected ErrAuthInProgress, got %v", err)
	}
}

func TestSessionHandler_Register_WithoutSession(t *testing.T) {
	e := echo.New()
	h := NewSessionHandler(&stubLoginFlow{
		registerFn: func(ctx context.Context, in service.RegisterInput) (*domain.Session, error) {
			return nil, nil
		},
	})

	req, rec := postJSON("/session/register", `{"username":"nina","password":"secret1"}`)
	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var view registerView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !view.Registered || view.Session != nil {
		t.Fatalf("expected registered without session, got %+v", view)
	}
}

func TestSessionHandler_Register_SignsIn(t *testing.T) {
	e := echo.New()
	sess := accountantSession
	h := NewSessionHandler(&stubLoginFlow{
		registerFn: func(ctx context.Context, in service.RegisterInput) (*domain.Session, error) {
			return &sess, nil
		},
	})

	req, rec := postJSON("/session/register", `{"username":"ana","password":"secret1"}`)
	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var view registerView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if view.Session == nil || view.Session.User.Role != domain.RoleAccountant {
		t.Fatalf("expected accountant session, got %+v", view)
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	e := echo.New()
	flow := &stubLoginFlow{}
	h := NewSessionHandler(flow)

	req, rec := postJSON("/session/logout", "")
	if err := h.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || flow.logouts != 1 {
		t.Fatalf("expected 204 after one logout, got %d (%d)", rec.Code, flow.logouts)
	}

	flow.logoutErr = domain.ErrPersistence
	req, rec = postJSON("/session/logout", "")
	if err := h.Logout(e.NewContext(req, rec)); !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestSessionHandler_AuthView(t *testing.T) {
	e := echo.New()
	h := NewSessionHandler(&stubLoginFlow{})

	req := httptest.NewRequest(http.MethodGet, "/auth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.AuthView(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var view loginView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if view.State != service.GuardUnauthenticated.String() || view.Session != nil {
		t.Fatalf("unexpected view: %+v", view)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	middleware.WithSession(c, accountantSession)
	if err := h.AuthView(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	view = loginView{}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if view.State != service.GuardAuthenticated.String() || view.Session == nil {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestSessionHandler_Current_PanicsWithoutGuard(t *testing.T) {
	e := echo.New()
	h := NewSessionHandler(&stubLoginFlow{})

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	defer func() {
		r := recover()
		if _, ok := r.(*domain.StateError); !ok {
			t.Fatalf("expected StateError panic, got %v", r)
		}
	}()
	_ = h.Current(c)
}
