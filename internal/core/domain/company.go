package domain

type CompanyStatus string

const (
	CompanyActive     CompanyStatus = "active"
	CompanyOnboarding CompanyStatus = "onboarding"
	CompanyPaused     CompanyStatus = "paused"
	CompanyInactive   CompanyStatus = "inactive"
)

// Company is a client of the firm.
type Company struct {
	ID                     string        `json:"id" bson:"_id"`
	Name                   string        `json:"name" bson:"name"`
	PIB                    string        `json:"pib" bson:"pib"`
	City                   string        `json:"city" bson:"city"`
	Sector                 string        `json:"sector" bson:"sector"`
	AssignedAccountantID   string        `json:"assignedAccountantId" bson:"assigned_accountant_id"`
	AssignedAccountantName string        `json:"assignedAccountantName" bson:"assigned_accountant_name"`
	Status                 CompanyStatus `json:"status" bson:"status"`
	OpenTasks              int           `json:"openTasks" bson:"open_tasks"`
	OverdueTasks           int           `json:"overdueTasks" bson:"overdue_tasks"`
	ContactPerson          string        `json:"contactPerson" bson:"contact_person"`
	Email                  string        `json:"email" bson:"email"`
	Phone                  string        `json:"phone" bson:"phone"`
}

// CompanySort names a company list ordering.
type CompanySort string

const (
	SortByName    CompanySort = "name"
	SortByTasks   CompanySort = "tasks"
	SortByOverdue CompanySort = "overdue"
)

// CompanyListRequest is the body of POST /companies/list.
type CompanyListRequest struct {
	Status        string      `json:"status,omitempty"`
	ResponsibleID string      `json:"responsibleId,omitempty"`
	Sort          CompanySort `json:"sort,omitempty" validate:"omitempty,oneof=name tasks overdue"`
}
