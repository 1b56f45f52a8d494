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

type stubDirectory struct {
	companyFilter service.CompanyFilter
	taskFilter    service.TaskFilter
	docFilter     service.DocumentFilter
	profile       domain.UserProfile
	refreshed     bool
	err           error
}

func (s *stubDirectory) Companies(_ context.Context, p domain.UserProfile, f service.CompanyFilter) (service.CompanyListing, error) {
	s.profile, s.companyFilter = p, f
	return service.CompanyListing{Source: service.SourceRemote, Status: service.QuerySuccess}, s.err
}

func (s *stubDirectory) RefreshCompanies(ctx context.Context, p domain.UserProfile, f service.CompanyFilter) (service.CompanyListing, error) {
	s.refreshed = true
	return s.Companies(ctx, p, f)
}

func (s *stubDirectory) Company(_ context.Context, p domain.UserProfile, id string) (service.CompanyProfile, error) {
	s.profile = p
	if s.err != nil {
		return service.CompanyProfile{}, s.err
	}
	return service.CompanyProfile{Company: domain.Company{ID: id}}, nil
}

func (s *stubDirectory) Tasks(_ context.Context, p domain.UserProfile, f service.TaskFilter) ([]domain.Task, error) {
	s.profile, s.taskFilter = p, f
	return []domain.Task{{ID: "T-001"}}, s.err
}

func (s *stubDirectory) Task(_ context.Context, p domain.UserProfile, id string) (service.TaskDetail, error) {
	return service.TaskDetail{Task: domain.Task{ID: id}}, s.err
}

func (s *stubDirectory) Documents(_ context.Context, p domain.UserProfile, f service.DocumentFilter) ([]domain.Document, error) {
	s.profile, s.docFilter = p, f
	return nil, s.err
}

func (s *stubDirectory) Document(_ context.Context, p domain.UserProfile, id string) (domain.Document, error) {
	return domain.Document{ID: id}, s.err
}

func (s *stubDirectory) Users(context.Context) ([]domain.AccountantUser, error) {
	return []domain.AccountantUser{{ID: "1"}, {ID: "2"}}, s.err
}

func (s *stubDirectory) Dashboard(_ context.Context, p domain.UserProfile) (service.Dashboard, error) {
	s.profile = p
	return service.Dashboard{Stats: service.DashboardStats{TotalClients: 3}}, s.err
}

func guardedContext(method, target string, sess domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, target, nil), rec)
	middleware.WithSession(c, sess)
	return c, rec
}

func TestViewHandler_Companies_BindsQuery(t *testing.T) {
	dir := &stubDirectory{}
	h := NewViewHandler(dir)

	c, rec := guardedContext(http.MethodGet, "/companies?search=beo&status=active&accountant=2&sort=overdue", accountantSession)
	if err := h.Companies(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	want := service.CompanyFilter{Search: "beo", Status: "active", AccountantID: "2", Sort: domain.SortByOverdue}
	if dir.companyFilter != want {
		t.Fatalf("unexpected filter: %+v", dir.companyFilter)
	}
	if dir.profile != accountantSession.Profile {
		t.Fatalf("expected the session profile, got %+v", dir.profile)
	}

	var listing service.CompanyListing
	if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if listing.Items == nil || listing.Source != service.SourceRemote {
		t.Fatalf("unexpected listing: %+v", listing)
	}
}

func TestViewHandler_RefreshCompanies(t *testing.T) {
	dir := &stubDirectory{}
	h := NewViewHandler(dir)

	c, _ := guardedContext(http.MethodPost, "/companies/refresh?sort=tasks", directorSession)
	if err := h.RefreshCompanies(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !dir.refreshed || dir.companyFilter.Sort != domain.SortByTasks {
		t.Fatalf("expected refresh with sort=tasks, got %+v", dir.companyFilter)
	}
}

func TestViewHandler_Tasks(t *testing.T) {
	dir := &stubDirectory{}
	h := NewViewHandler(dir)

	c, rec := guardedContext(http.MethodGet, "/tasks?priority=high&company=c1&status=all", directorSession)
	if err := h.Tasks(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if dir.taskFilter.Priority != "high" || dir.taskFilter.CompanyID != "c1" || dir.taskFilter.Status != "all" {
		t.Fatalf("unexpected filter: %+v", dir.taskFilter)
	}

	var view listView[domain.Task]
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if view.Total != 1 || view.Items[0].ID != "T-001" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestViewHandler_Documents_EmptyIsArray(t *testing.T) {
	dir := &stubDirectory{}
	h := NewViewHandler(dir)

	c, rec := guardedContext(http.MethodGet, "/documents?type=invoice", directorSession)
	if err := h.Documents(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if dir.docFilter.Type != "invoice" {
		t.Fatalf("unexpected filter: %+v", dir.docFilter)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if string(raw["items"]) != "[]" {
		t.Fatalf("expected empty array, got %s", raw["items"])
	}
}

func TestViewHandler_Detail_UsesPathParam(t *testing.T) {
	dir := &stubDirectory{}
	h := NewViewHandler(dir)

	c, rec := guardedContext(http.MethodGet, "/companies/c2", directorSession)
	c.SetPath("/companies/:id")
	c.SetParamNames("id")
	c.SetParamValues("c2")
	if err := h.Company(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var p service.CompanyProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if p.Company.ID != "c2" {
		t.Fatalf("unexpected company: %+v", p.Company)
	}
}

func TestViewHandler_NotFoundIsReturned(t *testing.T) {
	dir := &stubDirectory{err: domain.ErrNotFound}
	h := NewViewHandler(dir)

	c, _ := guardedContext(http.MethodGet, "/companies/zz", accountantSession)
	c.SetParamNames("id")
	c.SetParamValues("zz")
	if err := h.Company(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestViewHandler_DashboardUsersSettings(t *testing.T) {
	dir := &stubDirectory{}
	h := NewViewHandler(dir)

	c, rec := guardedContext(http.MethodGet, "/", directorSession)
	if err := h.Dashboard(c); err != nil || rec.Code != http.StatusOK {
		t.Fatalf("dashboard: %v %d", err, rec.Code)
	}
	if dir.profile != directorSession.Profile {
		t.Fatalf("dashboard used wrong profile: %+v", dir.profile)
	}

	c, rec = guardedContext(http.MethodGet, "/users", directorSession)
	if err := h.Users(c); err != nil {
		t.Fatalf("users: %v", err)
	}
	var users listView[domain.AccountantUser]
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil || users.Total != 2 {
		t.Fatalf("unexpected users view: %s", rec.Body.String())
	}

	c, rec = guardedContext(http.MethodGet, "/settings", directorSession)
	if err := h.Settings(c); err != nil {
		t.Fatalf("settings: %v", err)
	}
	var settings settingsView
	if err := json.Unmarshal(rec.Body.Bytes(), &settings); err != nil || len(settings.Sections) != 4 {
		t.Fatalf("unexpected settings view: %s", rec.Body.String())
	}
}

func TestViewHandler_PanicsOutsideGuard(t *testing.T) {
	h := NewViewHandler(&stubDirectory{})
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/tasks", nil), httptest.NewRecorder())

	defer func() {
		if _, ok := recover().(*domain.StateError); !ok {
			t.Fatalf("expected StateError panic")
		}
	}()
	_ = h.Tasks(c)
}
