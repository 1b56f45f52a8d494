package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, req ports.RegisterRequest) (string, *domain.Account, error)
	loginFn    func(ctx context.Context, identifier, password string) (string, *domain.Account, error)
}

func (s *stubAuthService) Register(ctx context.Context, req ports.RegisterRequest) (string, *domain.Account, error) {
	return s.registerFn(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, identifier, password string) (string, *domain.Account, error) {
	return s.loginFn(ctx, identifier, password)
}

func postJSON(path, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, req ports.RegisterRequest) (string, *domain.Account, error) {
			if req.Username != "alice" || req.Email != "a@example.com" || req.Name != "Alice" {
				t.Fatalf("unexpected request: %+v", req)
			}
			return "tok", &domain.Account{ID: "42", Username: req.Username, Email: req.Email}, nil
		},
	}
	handler := NewAuthHandler(stub, zerolog.Nop())

	req, rec := postJSON("/auth/register", `{"username":"alice","password":"secret1","email":"a@example.com","name":"Alice"}`)
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "42" || user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, hasRole := user["role"]; hasRole {
		t.Fatalf("registered account must not carry a role: %+v", user)
	}
}

func TestAuthHandler_Register_AccountExists(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, req ports.RegisterRequest) (string, *domain.Account, error) {
			return "", nil, domain.ErrAccountExists
		},
	}
	handler := NewAuthHandler(stub, zerolog.Nop())

	req, rec := postJSON("/auth/register", `{"username":"bob","password":"secret1"}`)
	c := e.NewContext(req, rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if rec.Body.String() != "Account already exists" {
		t.Fatalf("expected plain text body, got %q", rec.Body.String())
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, req ports.RegisterRequest) (string, *domain.Account, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub, zerolog.Nop())

	req, rec := postJSON("/auth/register", "not-json")
	c := e.NewContext(req, rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, *domain.Account, error) {
			if identifier != "marina" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", identifier, password)
			}
			return "token123", &domain.Account{ID: "2", Username: "marina", Role: domain.RoleAdministrator}, nil
		},
	}
	handler := NewAuthHandler(stub, zerolog.Nop())

	req, rec := postJSON("/auth/login", `{"username":"marina","password":"secret1"}`)
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "token123" || resp.User.ID != "2" || resp.User.Role != domain.RoleAdministrator {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, *domain.Account, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, zerolog.Nop())

	req, rec := postJSON("/auth/login", `{"username":"marina","password":"badpass"}`)
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Body.String() != "Invalid credentials" {
		t.Fatalf("expected plain text body, got %q", rec.Body.String())
	}
}

func TestAuthHandler_Login_RepositoryFailure(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, *domain.Account, error) {
			return "", nil, errors.New("mongo down")
		},
	}
	handler := NewAuthHandler(stub, zerolog.Nop())

	req, rec := postJSON("/auth/login", `{"username":"marina","password":"secret1"}`)
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal error leaked: %q", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, *domain.Account, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub, zerolog.Nop())

	req, rec := postJSON("/auth/login", "{")
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
