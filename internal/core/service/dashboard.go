package service

import (
	"slices"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

const upcomingDeadlines = 5

// DashboardStats are the headline counters.
type DashboardStats struct {
	TotalClients     int `json:"totalClients"`
	ActiveTasks      int `json:"activeTasks"`
	OverdueTasks     int `json:"overdueTasks"`
	PendingDocuments int `json:"pendingDocuments"`
}

// Workload is one accountant's share of the open tasks.
type Workload struct {
	AccountantID string `json:"accountantId"`
	Name         string `json:"name"`
	Tasks        int    `json:"tasks"`
	Overdue      int    `json:"overdue"`
}

// Dashboard is the home view.
type Dashboard struct {
	Stats     DashboardStats `json:"stats"`
	Deadlines []domain.Task  `json:"deadlines"`
	Workload  []Workload     `json:"workload,omitempty"`
}

// BuildDashboard computes the home view from already scoped records. Staff
// workload is only included for unrestricted scopes.
func BuildDashboard(
	companies []domain.Company,
	tasks []domain.Task,
	documents []domain.Document,
	staff []domain.AccountantUser,
	scope domain.Scope,
) Dashboard {
	var d Dashboard
	d.Stats.TotalClients = len(companies)

	open := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Open() {
			open = append(open, t)
		}
		if t.Status == domain.TaskOverdue {
			d.Stats.OverdueTasks++
		}
	}
	d.Stats.ActiveTasks = len(open)

	for _, doc := range documents {
		if doc.Status == domain.DocUploaded {
			d.Stats.PendingDocuments++
		}
	}

	slices.SortStableFunc(open, func(a, b domain.Task) int {
		return a.DueDate.Compare(b.DueDate)
	})
	d.Deadlines = open[:min(upcomingDeadlines, len(open))]

	if !scope.Restricted() {
		d.Workload = workload(open, staff)
	}
	return d
}

func workload(open []domain.Task, staff []domain.AccountantUser) []Workload {
	out := make([]Workload, 0, len(staff))
	for _, u := range staff {
		if u.Status != domain.AccountantActive || u.Role != domain.RoleAccountant {
			continue
		}
		w := Workload{AccountantID: u.ID, Name: u.Name}
		for _, t := range open {
			if t.AssignedAccountantID != u.ID {
				continue
			}
			w.Tasks++
			if t.Status == domain.TaskOverdue {
				w.Overdue++
			}
		}
		out = append(out, w)
	}
	return out
}
