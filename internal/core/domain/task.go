package domain

import "time"

type TaskType string

const (
	TaskVAT            TaskType = "vat"
	TaskPayroll        TaskType = "payroll"
	TaskAnnualReport   TaskType = "annual_report"
	TaskReconciliation TaskType = "reconciliation"
	TaskOther          TaskType = "other"
)

type TaskStatus string

const (
	TaskNew        TaskStatus = "new"
	TaskInProgress TaskStatus = "in_progress"
	TaskWaiting    TaskStatus = "waiting"
	TaskDone       TaskStatus = "done"
	TaskOverdue    TaskStatus = "overdue"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityNormal TaskPriority = "normal"
	PriorityHigh   TaskPriority = "high"
)

// Task is a unit of bookkeeping work for one company and period.
type Task struct {
	ID                     string       `json:"id" bson:"_id"`
	CompanyID              string       `json:"companyId" bson:"company_id"`
	CompanyName            string       `json:"companyName" bson:"company_name"`
	CompanyPIB             string       `json:"companyPib" bson:"company_pib"`
	Period                 string       `json:"period" bson:"period"`
	Type                   TaskType     `json:"type" bson:"type"`
	Status                 TaskStatus   `json:"status" bson:"status"`
	Priority               TaskPriority `json:"priority" bson:"priority"`
	DueDate                time.Time    `json:"dueDate" bson:"due_date"`
	AssignedAccountantID   string       `json:"assignedAccountantId" bson:"assigned_accountant_id"`
	AssignedAccountantName string       `json:"assignedAccountantName" bson:"assigned_accountant_name"`
	LastUpdate             time.Time    `json:"lastUpdate" bson:"last_update"`
	CommentsCount          int          `json:"commentsCount" bson:"comments_count"`
	Description            string       `json:"description,omitempty" bson:"description,omitempty"`
}

// Open reports whether the task still needs work.
func (t Task) Open() bool {
	return t.Status != TaskDone
}
