package service

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

// filterAll is the select-box value meaning "no filter".
const filterAll = "all"

func selected(v string) bool {
	return v != "" && v != filterAll
}

func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}

// CompanyFilter holds the company list controls. Status, AccountantID and
// Sort are also sent to the server.
type CompanyFilter struct {
	Search       string             `query:"search"`
	Status       string             `query:"status"`
	AccountantID string             `query:"accountant"`
	Sort         domain.CompanySort `query:"sort"`
}

// SortOrDefault returns the requested ordering, or by name.
func (f CompanyFilter) SortOrDefault() domain.CompanySort {
	switch f.Sort {
	case domain.SortByTasks, domain.SortByOverdue:
		return f.Sort
	default:
		return domain.SortByName
	}
}

// Request builds the server-side list payload.
func (f CompanyFilter) Request() domain.CompanyListRequest {
	req := domain.CompanyListRequest{Sort: f.SortOrDefault()}
	if selected(f.Status) {
		req.Status = f.Status
	}
	if selected(f.AccountantID) {
		req.ResponsibleID = f.AccountantID
	}
	return req
}

// FilterCompanies applies search, status and accountant filters, keeping the
// input order. Search matches name and city case-insensitively and the PIB as
// typed.
func FilterCompanies(items []domain.Company, f CompanyFilter) []domain.Company {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	raw := strings.TrimSpace(f.Search)

	out := make([]domain.Company, 0, len(items))
	for _, c := range items {
		if needle != "" &&
			!containsFold(c.Name, needle) &&
			!strings.Contains(c.PIB, raw) &&
			!containsFold(c.City, needle) {
			continue
		}
		if selected(f.Status) && string(c.Status) != f.Status {
			continue
		}
		if selected(f.AccountantID) && c.AssignedAccountantID != f.AccountantID {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SortCompanies returns a sorted copy: by name, by open tasks descending or by
// overdue tasks descending.
func SortCompanies(items []domain.Company, by domain.CompanySort) []domain.Company {
	out := slices.Clone(items)
	switch by {
	case domain.SortByTasks:
		slices.SortStableFunc(out, func(a, b domain.Company) int {
			return cmp.Compare(b.OpenTasks, a.OpenTasks)
		})
	case domain.SortByOverdue:
		slices.SortStableFunc(out, func(a, b domain.Company) int {
			return cmp.Compare(b.OverdueTasks, a.OverdueTasks)
		})
	default:
		// A Collator is not safe for concurrent use.
		col := collate.New(language.Serbian, collate.IgnoreCase)
		slices.SortStableFunc(out, func(a, b domain.Company) int {
			return col.CompareString(a.Name, b.Name)
		})
	}
	return out
}

// TaskFilter holds the task list controls.
type TaskFilter struct {
	Search       string `query:"search"`
	Status       string `query:"status"`
	Priority     string `query:"priority"`
	AccountantID string `query:"accountant"`
	CompanyID    string `query:"company"`
}

// FilterTasks applies the filters and orders overdue tasks first, then by due
// date.
func FilterTasks(items []domain.Task, f TaskFilter) []domain.Task {
	raw := strings.TrimSpace(f.Search)
	needle := strings.ToLower(raw)

	out := make([]domain.Task, 0, len(items))
	for _, t := range items {
		if needle != "" &&
			!containsFold(t.ID, needle) &&
			!containsFold(t.CompanyName, needle) &&
			!strings.Contains(t.CompanyPIB, raw) &&
			!containsFold(t.Description, needle) {
			continue
		}
		if selected(f.Status) && string(t.Status) != f.Status {
			continue
		}
		if selected(f.Priority) && string(t.Priority) != f.Priority {
			continue
		}
		if selected(f.AccountantID) && t.AssignedAccountantID != f.AccountantID {
			continue
		}
		if selected(f.CompanyID) && t.CompanyID != f.CompanyID {
			continue
		}
		out = append(out, t)
	}
	sortTasks(out)
	return out
}

func sortTasks(tasks []domain.Task) {
	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		ao, bo := a.Status == domain.TaskOverdue, b.Status == domain.TaskOverdue
		if ao != bo {
			if ao {
				return -1
			}
			return 1
		}
		return a.DueDate.Compare(b.DueDate)
	})
}

// DocumentFilter holds the document list controls.
type DocumentFilter struct {
	Search    string `query:"search"`
	CompanyID string `query:"company"`
	Type      string `query:"type"`
	Status    string `query:"status"`
}

// FilterDocuments applies the filters and orders the newest upload first.
func FilterDocuments(items []domain.Document, f DocumentFilter) []domain.Document {
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]domain.Document, 0, len(items))
	for _, d := range items {
		if needle != "" && !containsFold(d.FileName, needle) && !containsFold(d.CompanyName, needle) {
			continue
		}
		if selected(f.CompanyID) && d.CompanyID != f.CompanyID {
			continue
		}
		if selected(f.Type) && string(d.Type) != f.Type {
			continue
		}
		if selected(f.Status) && string(d.Status) != f.Status {
			continue
		}
		out = append(out, d)
	}
	slices.SortStableFunc(out, func(a, b domain.Document) int {
		return b.UploadDate.Compare(a.UploadDate)
	})
	return out
}

// ScopeCompanies keeps the companies visible within scope.
func ScopeCompanies(items []domain.Company, scope domain.Scope) []domain.Company {
	if !scope.Restricted() {
		return items
	}
	out := make([]domain.Company, 0, len(items))
	for _, c := range items {
		if c.AssignedAccountantID == scope.AccountantID {
			out = append(out, c)
		}
	}
	return out
}

// ScopeTasks keeps the tasks visible within scope.
func ScopeTasks(items []domain.Task, scope domain.Scope) []domain.Task {
	if !scope.Restricted() {
		return items
	}
	out := make([]domain.Task, 0, len(items))
	for _, t := range items {
		if t.AssignedAccountantID == scope.AccountantID {
			out = append(out, t)
		}
	}
	return out
}

// ScopeDocuments keeps documents that belong to one of the visible companies.
func ScopeDocuments(items []domain.Document, visible []domain.Company, scope domain.Scope) []domain.Document {
	if !scope.Restricted() {
		return items
	}
	ids := make(map[string]struct{}, len(visible))
	for _, c := range visible {
		ids[c.ID] = struct{}{}
	}
	out := make([]domain.Document, 0, len(items))
	for _, d := range items {
		if _, ok := ids[d.CompanyID]; ok {
			out = append(out, d)
		}
	}
	return out
}
