package domain

import "time"

type DocumentType string

const (
	DocInvoice       DocumentType = "invoice"
	DocBankStatement DocumentType = "bank_statement"
	DocPayroll       DocumentType = "payroll"
	DocContract      DocumentType = "contract"
	DocTaxReturn     DocumentType = "tax_return"
	DocOther         DocumentType = "other"
)

type DocumentStatus string

const (
	DocUploaded      DocumentStatus = "uploaded"
	DocChecked       DocumentStatus = "checked"
	DocNeedsRevision DocumentStatus = "needs_revision"
)

// Document is metadata about a file a client handed over.
type Document struct {
	ID             string         `json:"id" bson:"_id"`
	FileName       string         `json:"fileName" bson:"file_name"`
	CompanyID      string         `json:"companyId" bson:"company_id"`
	CompanyName    string         `json:"companyName" bson:"company_name"`
	Type           DocumentType   `json:"type" bson:"type"`
	Period         string         `json:"period" bson:"period"`
	Status         DocumentStatus `json:"status" bson:"status"`
	UploadedByID   string         `json:"uploadedById" bson:"uploaded_by_id"`
	UploadedByName string         `json:"uploadedByName" bson:"uploaded_by_name"`
	UploadDate     time.Time      `json:"uploadDate" bson:"upload_date"`
	Size           string         `json:"size" bson:"size"`
}

type AccountantStatus string

const (
	AccountantActive  AccountantStatus = "active"
	AccountantBlocked AccountantStatus = "blocked"
)

// AccountantUser is a member of the firm's staff.
type AccountantUser struct {
	ID                string           `json:"id" bson:"_id"`
	Name              string           `json:"name" bson:"name"`
	Email             string           `json:"email" bson:"email"`
	Role              Role             `json:"role" bson:"role"`
	Status            AccountantStatus `json:"status" bson:"status"`
	AssignedCompanies int              `json:"assignedCompanies" bson:"assigned_companies"`
	ActiveTasks       int              `json:"activeTasks" bson:"active_tasks"`
}
