package service

import (
	"testing"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

func fixtureCompanies() []domain.Company {
	return []domain.Company{
		{ID: "c1", Name: "TechStart DOO", PIB: "109876543", City: "Beograd", AssignedAccountantID: "2", Status: domain.CompanyActive, OpenTasks: 3, OverdueTasks: 1},
		{ID: "c2", Name: "Agro Vojvodina", PIB: "108765432", City: "Novi Sad", AssignedAccountantID: "3", Status: domain.CompanyActive, OpenTasks: 5, OverdueTasks: 0},
		{ID: "c3", Name: "Čačak Metal", PIB: "107654321", City: "Čačak", AssignedAccountantID: "2", Status: domain.CompanyPaused, OpenTasks: 1, OverdueTasks: 2},
	}
}

func fixtureTasks() []domain.Task {
	return []domain.Task{
		{ID: "T-001", CompanyID: "c1", CompanyName: "TechStart DOO", CompanyPIB: "109876543", Period: "2026-09", Status: domain.TaskInProgress, Priority: domain.PriorityHigh, DueDate: day("2026-10-20"), AssignedAccountantID: "2"},
		{ID: "T-002", CompanyID: "c2", CompanyName: "Agro Vojvodina", CompanyPIB: "108765432", Period: "2026-09", Status: domain.TaskOverdue, Priority: domain.PriorityNormal, DueDate: day("2026-10-10"), AssignedAccountantID: "3", Description: "PDV prijava"},
		{ID: "T-003", CompanyID: "c3", CompanyName: "Čačak Metal", CompanyPIB: "107654321", Period: "2026-08", Status: domain.TaskDone, Priority: domain.PriorityLow, DueDate: day("2026-09-15"), AssignedAccountantID: "2"},
		{ID: "T-004", CompanyID: "c1", CompanyName: "TechStart DOO", CompanyPIB: "109876543", Period: "2026-09", Status: domain.TaskNew, Priority: domain.PriorityNormal, DueDate: day("2026-10-18"), AssignedAccountantID: "2"},
	}
}

func fixtureDocuments() []domain.Document {
	return []domain.Document{
		{ID: "D-001", FileName: "faktura_09.pdf", CompanyID: "c1", CompanyName: "TechStart DOO", Type: domain.DocInvoice, Period: "2026-09", Status: domain.DocUploaded, UploadDate: day("2026-10-01")},
		{ID: "D-002", FileName: "izvod.pdf", CompanyID: "c2", CompanyName: "Agro Vojvodina", Type: domain.DocBankStatement, Period: "2026-09", Status: domain.DocChecked, UploadDate: day("2026-10-05")},
		{ID: "D-003", FileName: "plate.xlsx", CompanyID: "c1", CompanyName: "TechStart DOO", Type: domain.DocPayroll, Period: "2026-08", Status: domain.DocUploaded, UploadDate: day("2026-09-02")},
	}
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func companyIDs(items []domain.Company) []string {
	return ids(items, func(c domain.Company) string { return c.ID })
}

func taskIDs(items []domain.Task) []string {
	return ids(items, func(t domain.Task) string { return t.ID })
}

func sameIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestFilterCompanies(t *testing.T) {
	all := fixtureCompanies()
	cases := []struct {
		name string
		f    CompanyFilter
		want []string
	}{
		{"no filter", CompanyFilter{}, []string{"c1", "c2", "c3"}},
		{"all means none", CompanyFilter{Status: "all", AccountantID: "all"}, []string{"c1", "c2", "c3"}},
		{"name case-insensitive", CompanyFilter{Search: "techSTART"}, []string{"c1"}},
		{"city", CompanyFilter{Search: "novi"}, []string{"c2"}},
		{"non-ascii city", CompanyFilter{Search: "ČAČAK"}, []string{"c3"}},
		{"pib substring", CompanyFilter{Search: "8765"}, []string{"c1", "c2"}},
		{"status", CompanyFilter{Status: "paused"}, []string{"c3"}},
		{"accountant", CompanyFilter{AccountantID: "2"}, []string{"c1", "c3"}},
	}
	for _, tc := range cases {
		if got := companyIDs(FilterCompanies(all, tc.f)); !sameIDs(got, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSortCompanies(t *testing.T) {
	all := fixtureCompanies()

	if got := companyIDs(SortCompanies(all, domain.SortByName)); !sameIDs(got, []string{"c2", "c3", "c1"}) {
		t.Fatalf("by name: %v", got)
	}
	if got := companyIDs(SortCompanies(all, domain.SortByTasks)); !sameIDs(got, []string{"c2", "c1", "c3"}) {
		t.Fatalf("by tasks: %v", got)
	}
	if got := companyIDs(SortCompanies(all, domain.SortByOverdue)); !sameIDs(got, []string{"c3", "c1", "c2"}) {
		t.Fatalf("by overdue: %v", got)
	}
	if all[0].ID != "c1" {
		t.Fatalf("SortCompanies must not reorder its input")
	}
}

func TestCompanyFilter_Request(t *testing.T) {
	req := CompanyFilter{Search: "x", Status: "all", AccountantID: "3", Sort: "bogus"}.Request()
	want := domain.CompanyListRequest{ResponsibleID: "3", Sort: domain.SortByName}
	if req != want {
		t.Fatalf("request = %+v, want %+v", req, want)
	}
}

func TestFilterTasks(t *testing.T) {
	all := fixtureTasks()

	if got := taskIDs(FilterTasks(all, TaskFilter{})); !sameIDs(got, []string{"T-002", "T-003", "T-004", "T-001"}) {
		t.Fatalf("default order: %v", got)
	}
	if got := taskIDs(FilterTasks(all, TaskFilter{Search: "pdv"})); !sameIDs(got, []string{"T-002"}) {
		t.Fatalf("description search: %v", got)
	}
	if got := taskIDs(FilterTasks(all, TaskFilter{Search: "t-00"})); len(got) != 4 {
		t.Fatalf("id search: %v", got)
	}
	if got := taskIDs(FilterTasks(all, TaskFilter{Search: "10987"})); !sameIDs(got, []string{"T-004", "T-001"}) {
		t.Fatalf("pib search: %v", got)
	}
	if got := taskIDs(FilterTasks(all, TaskFilter{Priority: "normal", CompanyID: "c1"})); !sameIDs(got, []string{"T-004"}) {
		t.Fatalf("priority+company: %v", got)
	}
	if got := taskIDs(FilterTasks(all, TaskFilter{Status: "done", AccountantID: "2"})); !sameIDs(got, []string{"T-003"}) {
		t.Fatalf("status+accountant: %v", got)
	}
}

func TestFilterDocuments(t *testing.T) {
	docs := FilterDocuments(fixtureDocuments(), DocumentFilter{})
	if got := ids(docs, func(d domain.Document) string { return d.ID }); !sameIDs(got, []string{"D-002", "D-001", "D-003"}) {
		t.Fatalf("newest first: %v", got)
	}

	docs = FilterDocuments(fixtureDocuments(), DocumentFilter{Search: "TECHSTART", Type: "payroll"})
	if len(docs) != 1 || docs[0].ID != "D-003" {
		t.Fatalf("search+type: %+v", docs)
	}

	docs = FilterDocuments(fixtureDocuments(), DocumentFilter{Status: "uploaded", CompanyID: "c1"})
	if len(docs) != 2 {
		t.Fatalf("status+company: %+v", docs)
	}
}

func TestScope(t *testing.T) {
	scope := domain.Scope{AccountantID: "3"}

	companies := ScopeCompanies(fixtureCompanies(), scope)
	if got := companyIDs(companies); !sameIDs(got, []string{"c2"}) {
		t.Fatalf("companies: %v", got)
	}
	if got := taskIDs(ScopeTasks(fixtureTasks(), scope)); !sameIDs(got, []string{"T-002"}) {
		t.Fatalf("tasks: %v", got)
	}
	docs := ScopeDocuments(fixtureDocuments(), companies, scope)
	if len(docs) != 1 || docs[0].ID != "D-002" {
		t.Fatalf("documents: %+v", docs)
	}

	if n := len(ScopeCompanies(fixtureCompanies(), domain.Scope{})); n != 3 {
		t.Fatalf("unrestricted scope dropped companies: %d", n)
	}
}
