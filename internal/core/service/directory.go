package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/ports"
)

const (
	SourceRemote  = "remote"
	SourceCatalog = "catalog"
)

// CompanyListing is the company list view.
type CompanyListing struct {
	Items  []domain.Company `json:"items"`
	Total  int              `json:"total"`
	Source string           `json:"source"`
	Status QueryStatus      `json:"status"`
	Error  string           `json:"error,omitempty"`
}

// CompanyProfile is the company detail view.
type CompanyProfile struct {
	Company   domain.Company    `json:"company"`
	Tasks     []domain.Task     `json:"tasks"`
	Documents []domain.Document `json:"documents"`
}

// TaskDetail is the task detail view.
type TaskDetail struct {
	Task      domain.Task       `json:"task"`
	Company   *domain.Company   `json:"company,omitempty"`
	Documents []domain.Document `json:"documents"`
}

// Directory serves the list and detail views. The company list is fetched
// from the upstream API through an explicit query; everything else is read
// from the catalog. All results are narrowed to the caller's scope.
type Directory struct {
	catalog ports.Catalog
	remote  ports.CompanySource
	log     zerolog.Logger

	mu        sync.Mutex
	companies *Query[domain.Company]
	request   domain.CompanyListRequest
}

func NewDirectory(catalog ports.Catalog, remote ports.CompanySource, log zerolog.Logger) *Directory {
	return &Directory{
		catalog: catalog,
		remote:  remote,
		log:     log.With().Str("component", "directory").Logger(),
	}
}

// companiesQuery returns the query for req, replacing the current one when
// the server-side payload changed. fresh is true for a new query.
func (d *Directory) companiesQuery(req domain.CompanyListRequest) (q *Query[domain.Company], fresh bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.companies != nil && d.request == req {
		return d.companies, false
	}
	if d.companies != nil {
		d.companies.Reset()
	}
	d.request = req
	d.companies = NewQuery("companies", func(ctx context.Context) ([]domain.Company, error) {
		return d.remote.FetchCompanies(ctx, req)
	})
	return d.companies, true
}

// Companies returns the company list. The remote query runs on the first
// view and whenever the server-side filters change.
func (d *Directory) Companies(ctx context.Context, profile domain.UserProfile, f CompanyFilter) (CompanyListing, error) {
	q, fresh := d.companiesQuery(f.Request())
	state := q.State()
	if fresh || state.Status == QueryIdle {
		state = q.Refresh(ctx)
	}
	return d.companyListing(ctx, profile, f, state)
}

// RefreshCompanies re-runs the remote company query.
func (d *Directory) RefreshCompanies(ctx context.Context, profile domain.UserProfile, f CompanyFilter) (CompanyListing, error) {
	q, _ := d.companiesQuery(f.Request())
	return d.companyListing(ctx, profile, f, q.Refresh(ctx))
}

func (d *Directory) companyListing(
	ctx context.Context,
	profile domain.UserProfile,
	f CompanyFilter,
	state QueryState[domain.Company],
) (CompanyListing, error) {
	listing := CompanyListing{Status: state.Status}
	if state.Err != nil {
		listing.Error = state.Err.Error()
		d.log.Warn().Err(state.Err).Msg("company list fetch failed")
	}

	var base []domain.Company
	if state.Loaded() {
		base = state.Data
		listing.Source = SourceRemote
	} else {
		all, err := d.catalog.Companies(ctx)
		if err != nil {
			return CompanyListing{}, fmt.Errorf("list companies: %w", err)
		}
		base = SortCompanies(all, f.SortOrDefault())
		listing.Source = SourceCatalog
	}

	listing.Items = FilterCompanies(ScopeCompanies(base, ScopeFor(profile)), f)
	listing.Total = len(listing.Items)
	return listing, nil
}

func (d *Directory) scopedCompanies(ctx context.Context, scope domain.Scope) ([]domain.Company, error) {
	all, err := d.catalog.Companies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return ScopeCompanies(all, scope), nil
}

func (d *Directory) scopedTasks(ctx context.Context, scope domain.Scope) ([]domain.Task, error) {
	all, err := d.catalog.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return ScopeTasks(all, scope), nil
}

func (d *Directory) scopedDocuments(ctx context.Context, scope domain.Scope) ([]domain.Document, error) {
	all, err := d.catalog.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if !scope.Restricted() {
		return all, nil
	}
	visible, err := d.scopedCompanies(ctx, scope)
	if err != nil {
		return nil, err
	}
	return ScopeDocuments(all, visible, scope), nil
}

// Company returns one company with its tasks and documents.
func (d *Directory) Company(ctx context.Context, profile domain.UserProfile, id string) (CompanyProfile, error) {
	scope := ScopeFor(profile)
	companies, err := d.scopedCompanies(ctx, scope)
	if err != nil {
		return CompanyProfile{}, err
	}
	company, ok := findCompany(companies, id)
	if !ok {
		return CompanyProfile{}, fmt.Errorf("company %s: %w", id, domain.ErrNotFound)
	}

	tasks, err := d.scopedTasks(ctx, scope)
	if err != nil {
		return CompanyProfile{}, err
	}
	docs, err := d.scopedDocuments(ctx, scope)
	if err != nil {
		return CompanyProfile{}, err
	}

	return CompanyProfile{
		Company:   company,
		Tasks:     FilterTasks(tasks, TaskFilter{CompanyID: id}),
		Documents: FilterDocuments(docs, DocumentFilter{CompanyID: id}),
	}, nil
}

// Tasks returns the filtered task list.
func (d *Directory) Tasks(ctx context.Context, profile domain.UserProfile, f TaskFilter) ([]domain.Task, error) {
	tasks, err := d.scopedTasks(ctx, ScopeFor(profile))
	if err != nil {
		return nil, err
	}
	return FilterTasks(tasks, f), nil
}

// Task returns one task with its company and the documents filed for the
// same company and period.
func (d *Directory) Task(ctx context.Context, profile domain.UserProfile, id string) (TaskDetail, error) {
	scope := ScopeFor(profile)
	tasks, err := d.scopedTasks(ctx, scope)
	if err != nil {
		return TaskDetail{}, err
	}

	var (
		task  domain.Task
		found bool
	)
	for _, t := range tasks {
		if t.ID == id {
			task, found = t, true
			break
		}
	}
	if !found {
		return TaskDetail{}, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	detail := TaskDetail{Task: task, Documents: []domain.Document{}}

	all, err := d.catalog.Companies(ctx)
	if err != nil {
		return TaskDetail{}, fmt.Errorf("list companies: %w", err)
	}
	if c, ok := findCompany(all, task.CompanyID); ok {
		detail.Company = &c
	}

	docs, err := d.catalog.Documents(ctx)
	if err != nil {
		return TaskDetail{}, fmt.Errorf("list documents: %w", err)
	}
	for _, doc := range FilterDocuments(docs, DocumentFilter{CompanyID: task.CompanyID}) {
		if doc.Period == task.Period {
			detail.Documents = append(detail.Documents, doc)
		}
	}
	return detail, nil
}

// Documents returns the filtered document list.
func (d *Directory) Documents(ctx context.Context, profile domain.UserProfile, f DocumentFilter) ([]domain.Document, error) {
	docs, err := d.scopedDocuments(ctx, ScopeFor(profile))
	if err != nil {
		return nil, err
	}
	return FilterDocuments(docs, f), nil
}

// Document returns one document.
func (d *Directory) Document(ctx context.Context, profile domain.UserProfile, id string) (domain.Document, error) {
	docs, err := d.scopedDocuments(ctx, ScopeFor(profile))
	if err != nil {
		return domain.Document{}, err
	}
	for _, doc := range docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return domain.Document{}, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
}

// Users returns the firm's staff.
func (d *Directory) Users(ctx context.Context) ([]domain.AccountantUser, error) {
	users, err := d.catalog.Accountants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Dashboard builds the home view for profile.
func (d *Directory) Dashboard(ctx context.Context, profile domain.UserProfile) (Dashboard, error) {
	scope := ScopeFor(profile)

	companies, err := d.scopedCompanies(ctx, scope)
	if err != nil {
		return Dashboard{}, err
	}
	tasks, err := d.scopedTasks(ctx, scope)
	if err != nil {
		return Dashboard{}, err
	}
	docs, err := d.scopedDocuments(ctx, scope)
	if err != nil {
		return Dashboard{}, err
	}
	staff, err := d.catalog.Accountants(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list users: %w", err)
	}
	return BuildDashboard(companies, tasks, docs, staff, scope), nil
}

// Reset drops the cached company query. It runs when the session is cleared
// or replaced by another user's.
func (d *Directory) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.companies != nil {
		d.companies.Reset()
	}
	d.companies = nil
	d.request = domain.CompanyListRequest{}
}

func findCompany(companies []domain.Company, id string) (domain.Company, bool) {
	for _, c := range companies {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Company{}, false
}
