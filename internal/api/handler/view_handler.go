package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buhgalterija/backoffice/internal/api/middleware"
	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/service"
)

// Directory is the data behind the console views.
type Directory interface {
	Companies(ctx context.Context, profile domain.UserProfile, f service.CompanyFilter) (service.CompanyListing, error)
	RefreshCompanies(ctx context.Context, profile domain.UserProfile, f service.CompanyFilter) (service.CompanyListing, error)
	Company(ctx context.Context, profile domain.UserProfile, id string) (service.CompanyProfile, error)
	Tasks(ctx context.Context, profile domain.UserProfile, f service.TaskFilter) ([]domain.Task, error)
	Task(ctx context.Context, profile domain.UserProfile, id string) (service.TaskDetail, error)
	Documents(ctx context.Context, profile domain.UserProfile, f service.DocumentFilter) ([]domain.Document, error)
	Document(ctx context.Context, profile domain.UserProfile, id string) (domain.Document, error)
	Users(ctx context.Context) ([]domain.AccountantUser, error)
	Dashboard(ctx context.Context, profile domain.UserProfile) (service.Dashboard, error)
}

// ViewHandler serves the protected console views. Every method must be
// mounted behind the route guard.
type ViewHandler struct {
	dir    Directory
	binder echo.DefaultBinder
}

func NewViewHandler(dir Directory) *ViewHandler {
	return &ViewHandler{dir: dir}
}

func (h *ViewHandler) bindQuery(c echo.Context, dst any) error {
	if err := h.binder.BindQueryParams(c, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	return nil
}

// Dashboard
//
// @Summary      Dashboard
// @Tags         views
// @Produce      json
// @Success      200  {object}  service.Dashboard
// @Router       / [get]
func (h *ViewHandler) Dashboard(c echo.Context) error {
	sess := middleware.MustSession(c)
	d, err := h.dir.Dashboard(c.Request().Context(), sess.Profile)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// Companies lists the companies visible to the user.
//
// @Summary      Company list
// @Tags         views
// @Produce      json
// @Param        search      query     string  false  "Name, city or PIB"
// @Param        status      query     string  false  "Company status or all"
// @Param        accountant  query     string  false  "Assigned accountant id or all"
// @Param        sort        query     string  false  "name, tasks or overdue"
// @Success      200  {object}  service.CompanyListing
// @Router       /companies [get]
func (h *ViewHandler) Companies(c echo.Context) error {
	return h.companies(c, h.dir.Companies)
}

// RefreshCompanies re-fetches the company list from the server.
//
// @Summary      Refresh company list
// @Tags         views
// @Produce      json
// @Success      200  {object}  service.CompanyListing
// @Router       /companies/refresh [post]
func (h *ViewHandler) RefreshCompanies(c echo.Context) error {
	return h.companies(c, h.dir.RefreshCompanies)
}

func (h *ViewHandler) companies(
	c echo.Context,
	list func(context.Context, domain.UserProfile, service.CompanyFilter) (service.CompanyListing, error),
) error {
	sess := middleware.MustSession(c)
	var f service.CompanyFilter
	if err := h.bindQuery(c, &f); err != nil {
		return err
	}

	listing, err := list(c.Request().Context(), sess.Profile, f)
	if err != nil {
		return err
	}
	if listing.Items == nil {
		listing.Items = []domain.Company{}
	}
	return c.JSON(http.StatusOK, listing)
}

// Company
//
// @Summary      Company profile
// @Tags         views
// @Produce      json
// @Param        id   path      string  true  "Company id"
// @Success      200  {object}  service.CompanyProfile
// @Failure      404  {object}  errorBody
// @Router       /companies/{id} [get]
func (h *ViewHandler) Company(c echo.Context) error {
	sess := middleware.MustSession(c)
	p, err := h.dir.Company(c.Request().Context(), sess.Profile, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Tasks
//
// @Summary      Task list
// @Tags         views
// @Produce      json
// @Param        search      query  string  false  "Id, company, description or PIB"
// @Param        status      query  string  false  "Task status or all"
// @Param        priority    query  string  false  "Priority or all"
// @Param        accountant  query  string  false  "Assigned accountant id or all"
// @Param        company     query  string  false  "Company id or all"
// @Success      200  {object}  listView[domain.Task]
// @Router       /tasks [get]
func (h *ViewHandler) Tasks(c echo.Context) error {
	sess := middleware.MustSession(c)
	var f service.TaskFilter
	if err := h.bindQuery(c, &f); err != nil {
		return err
	}

	tasks, err := h.dir.Tasks(c.Request().Context(), sess.Profile, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListView(tasks))
}

// Task
//
// @Summary      Task detail
// @Tags         views
// @Produce      json
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  service.TaskDetail
// @Failure      404  {object}  errorBody
// @Router       /tasks/{id} [get]
func (h *ViewHandler) Task(c echo.Context) error {
	sess := middleware.MustSession(c)
	d, err := h.dir.Task(c.Request().Context(), sess.Profile, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// Documents
//
// @Summary      Document list
// @Tags         views
// @Produce      json
// @Param        search   query  string  false  "File or company name"
// @Param        company  query  string  false  "Company id or all"
// @Param        type     query  string  false  "Document type or all"
// @Param        status   query  string  false  "Document status or all"
// @Success      200  {object}  listView[domain.Document]
// @Router       /documents [get]
func (h *ViewHandler) Documents(c echo.Context) error {
	sess := middleware.MustSession(c)
	var f service.DocumentFilter
	if err := h.bindQuery(c, &f); err != nil {
		return err
	}

	docs, err := h.dir.Documents(c.Request().Context(), sess.Profile, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListView(docs))
}

// Document
//
// @Summary      Document detail
// @Tags         views
// @Produce      json
// @Param        id   path      string  true  "Document id"
// @Success      200  {object}  domain.Document
// @Failure      404  {object}  errorBody
// @Router       /documents/{id} [get]
func (h *ViewHandler) Document(c echo.Context) error {
	sess := middleware.MustSession(c)
	doc, err := h.dir.Document(c.Request().Context(), sess.Profile, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// Users lists the firm's staff. Requires canManageUsers.
//
// @Summary      Users
// @Tags         views
// @Produce      json
// @Success      200  {object}  listView[domain.AccountantUser]
// @Failure      302
// @Router       /users [get]
func (h *ViewHandler) Users(c echo.Context) error {
	middleware.MustSession(c)
	users, err := h.dir.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListView(users))
}

// Settings lists the settings sections. Requires canManageCompanies.
//
// @Summary      Settings
// @Tags         views
// @Produce      json
// @Success      200  {object}  settingsView
// @Failure      302
// @Router       /settings [get]
func (h *ViewHandler) Settings(c echo.Context) error {
	middleware.MustSession(c)
	return c.JSON(http.StatusOK, settingsView{Sections: settingsSections})
}
