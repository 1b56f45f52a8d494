package memory

import (
	"time"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func stamp(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

// DemoDataset returns the demonstration records the catalog is seeded with.
// Every call returns fresh slices.
func DemoDataset() domain.Dataset {
	return domain.Dataset{
		Accountants: []domain.AccountantUser{
			{ID: "1", Name: "Ana Petrović", Email: "anna@buhgalterija.rs", Role: domain.RoleDirector, Status: domain.AccountantActive},
			{ID: "2", Name: "Marina Ivanović", Email: "marina@buhgalterija.rs", Role: domain.RoleAccountant, Status: domain.AccountantActive, AssignedCompanies: 8, ActiveTasks: 15},
			{ID: "3", Name: "Olga Sidorović", Email: "olga@buhgalterija.rs", Role: domain.RoleAccountant, Status: domain.AccountantActive, AssignedCompanies: 6, ActiveTasks: 12},
			{ID: "4", Name: "Jelena Kozlović", Email: "elena@buhgalterija.rs", Role: domain.RoleAccountant, Status: domain.AccountantActive, AssignedCompanies: 7, ActiveTasks: 18},
			{ID: "5", Name: "Irina Novaković", Email: "irina@buhgalterija.rs", Role: domain.RoleAdministrator, Status: domain.AccountantActive, ActiveTasks: 5},
			{ID: "6", Name: "Natalija Vuković", Email: "natalia@buhgalterija.rs", Role: domain.RoleAccountant, Status: domain.AccountantBlocked},
		},
		Companies: []domain.Company{
			{
				ID: "1", Name: "TechStart DOO", PIB: "112345678", City: "Beograd", Sector: "IT usluge",
				AssignedAccountantID: "2", AssignedAccountantName: "Marina Ivanović",
				Status: domain.CompanyActive, OpenTasks: 3, OverdueTasks: 1,
				ContactPerson: "Ivan Petrović", Email: "ivan@techstart.rs", Phone: "+381 11 123 4567",
			},
			{
				ID: "2", Name: "Global Trade SRB", PIB: "223456789", City: "Novi Sad", Sector: "Uvoz/izvoz",
				AssignedAccountantID: "3", AssignedAccountantName: "Olga Sidorović",
				Status: domain.CompanyActive, OpenTasks: 5,
				ContactPerson: "Marija Jovanović", Email: "maria@globaltrade.rs", Phone: "+381 21 456 7890",
			},
			{
				ID: "3", Name: "Restoran Balkan", PIB: "334567890", City: "Beograd", Sector: "Ugostiteljstvo",
				AssignedAccountantID: "2", AssignedAccountantName: "Marina Ivanović",
				Status: domain.CompanyActive, OpenTasks: 2, OverdueTasks: 2,
				ContactPerson: "Dragan Nikolić", Email: "dragan@balkan.rs", Phone: "+381 11 234 5678",
			},
			{
				ID: "4", Name: "MediCare Plus", PIB: "445678901", City: "Niš", Sector: "Zdravstvene usluge",
				AssignedAccountantID: "4", AssignedAccountantName: "Jelena Kozlović",
				Status: domain.CompanyOnboarding, OpenTasks: 4,
				ContactPerson: "Ana Stojanović", Email: "anna@medicare.rs", Phone: "+381 18 345 6789",
			},
			{
				ID: "5", Name: "BuildPro Construccije", PIB: "556789012", City: "Beograd", Sector: "Građevinarstvo",
				AssignedAccountantID: "3", AssignedAccountantName: "Olga Sidorović",
				Status: domain.CompanyActive, OpenTasks: 6, OverdueTasks: 1,
				ContactPerson: "Miloš Pavlović", Email: "milos@buildpro.rs", Phone: "+381 11 456 7891",
			},
			{
				ID: "6", Name: "EcoFarm Srbija", PIB: "667890123", City: "Subotica", Sector: "Poljoprivreda",
				AssignedAccountantID: "4", AssignedAccountantName: "Jelena Kozlović",
				Status: domain.CompanyPaused,
				ContactPerson: "Petar Đorđević", Email: "petar@ecofarm.rs", Phone: "+381 24 567 8901",
			},
		},
		Tasks: []domain.Task{
			{
				ID: "T-001", CompanyID: "1", CompanyName: "TechStart DOO", CompanyPIB: "112345678",
				Period: "Novembar 2024", Type: domain.TaskVAT, Status: domain.TaskOverdue, Priority: domain.PriorityHigh,
				DueDate: date("2024-11-25"), AssignedAccountantID: "2", AssignedAccountantName: "Marina Ivanović",
				LastUpdate: stamp("2024-11-26T10:30:00"), CommentsCount: 3,
				Description: "Pripremiti i predati PDV prijavu za novembar 2024",
			},
			{
				ID: "T-002", CompanyID: "2", CompanyName: "Global Trade SRB", CompanyPIB: "223456789",
				Period: "Novembar 2024", Type: domain.TaskPayroll, Status: domain.TaskInProgress, Priority: domain.PriorityNormal,
				DueDate: date("2024-12-05"), AssignedAccountantID: "3", AssignedAccountantName: "Olga Sidorović",
				LastUpdate: stamp("2024-11-27T14:15:00"), CommentsCount: 1,
				Description: "Obračun zarada za novembar 2024",
			},
			{
				ID: "T-003", CompanyID: "3", CompanyName: "Restoran Balkan", CompanyPIB: "334567890",
				Period: "Novembar 2024", Type: domain.TaskVAT, Status: domain.TaskWaiting, Priority: domain.PriorityHigh,
				DueDate: date("2024-12-01"), AssignedAccountantID: "2", AssignedAccountantName: "Marina Ivanović",
				LastUpdate: stamp("2024-11-25T09:00:00"), CommentsCount: 5,
				Description: "Čekaju se izvodi banke od klijenta",
			},
			{
				ID: "T-004", CompanyID: "4", CompanyName: "MediCare Plus", CompanyPIB: "445678901",
				Period: "Q4 2024", Type: domain.TaskReconciliation, Status: domain.TaskNew, Priority: domain.PriorityLow,
				DueDate: date("2024-12-15"), AssignedAccountantID: "4", AssignedAccountantName: "Jelena Kozlović",
				LastUpdate: stamp("2024-11-20T11:00:00"),
				Description: "Kvartalno usaglašavanje sa dobavljačima",
			},
			{
				ID: "T-005", CompanyID: "5", CompanyName: "BuildPro Construccije", CompanyPIB: "556789012",
				Period: "2024", Type: domain.TaskAnnualReport, Status: domain.TaskInProgress, Priority: domain.PriorityHigh,
				DueDate: date("2024-12-31"), AssignedAccountantID: "3", AssignedAccountantName: "Olga Sidorović",
				LastUpdate: stamp("2024-11-28T08:45:00"), CommentsCount: 2,
				Description: "Priprema godišnjeg finansijskog izveštaja",
			},
			{
				ID: "T-006", CompanyID: "1", CompanyName: "TechStart DOO", CompanyPIB: "112345678",
				Period: "Decembar 2024", Type: domain.TaskPayroll, Status: domain.TaskNew, Priority: domain.PriorityNormal,
				DueDate: date("2024-12-28"), AssignedAccountantID: "2", AssignedAccountantName: "Marina Ivanović",
				LastUpdate: stamp("2024-11-28T09:00:00"),
				Description: "Obračun zarada za decembar 2024",
			},
			{
				ID: "T-007", CompanyID: "3", CompanyName: "Restoran Balkan", CompanyPIB: "334567890",
				Period: "Oktobar 2024", Type: domain.TaskVAT, Status: domain.TaskOverdue, Priority: domain.PriorityHigh,
				DueDate: date("2024-11-15"), AssignedAccountantID: "2", AssignedAccountantName: "Marina Ivanović",
				LastUpdate: stamp("2024-11-20T16:30:00"), CommentsCount: 7,
				Description: "Prijava kasni, potrebna hitna pažnja",
			},
			{
				ID: "T-008", CompanyID: "2", CompanyName: "Global Trade SRB", CompanyPIB: "223456789",
				Period: "Novembar 2024", Type: domain.TaskReconciliation, Status: domain.TaskDone, Priority: domain.PriorityNormal,
				DueDate: date("2024-11-25"), AssignedAccountantID: "3", AssignedAccountantName: "Olga Sidorović",
				LastUpdate: stamp("2024-11-24T17:00:00"), CommentsCount: 2,
				Description: "Usaglašavanje sa carinom završeno",
			},
		},
		Documents: []domain.Document{
			{
				ID: "D-001", FileName: "TechStart_Invoice_Nov2024_001.pdf", CompanyID: "1", CompanyName: "TechStart DOO",
				Type: domain.DocInvoice, Period: "Novembar 2024", Status: domain.DocChecked,
				UploadedByID: "2", UploadedByName: "Marina Ivanović", UploadDate: date("2024-11-20"), Size: "245 KB",
			},
			{
				ID: "D-002", FileName: "GlobalTrade_BankStatement_Nov2024.pdf", CompanyID: "2", CompanyName: "Global Trade SRB",
				Type: domain.DocBankStatement, Period: "Novembar 2024", Status: domain.DocUploaded,
				UploadedByID: "3", UploadedByName: "Olga Sidorović", UploadDate: date("2024-11-27"), Size: "1.2 MB",
			},
			{
				ID: "D-003", FileName: "Balkan_Payroll_Oct2024.xlsx", CompanyID: "3", CompanyName: "Restoran Balkan",
				Type: domain.DocPayroll, Period: "Oktobar 2024", Status: domain.DocNeedsRevision,
				UploadedByID: "2", UploadedByName: "Marina Ivanović", UploadDate: date("2024-11-15"), Size: "89 KB",
			},
			{
				ID: "D-004", FileName: "MediCare_Contract_2024.pdf", CompanyID: "4", CompanyName: "MediCare Plus",
				Type: domain.DocContract, Period: "2024", Status: domain.DocChecked,
				UploadedByID: "5", UploadedByName: "Irina Novaković", UploadDate: date("2024-11-10"), Size: "567 KB",
			},
			{
				ID: "D-005", FileName: "BuildPro_TaxReturn_Q3_2024.pdf", CompanyID: "5", CompanyName: "BuildPro Construccije",
				Type: domain.DocTaxReturn, Period: "Q3 2024", Status: domain.DocChecked,
				UploadedByID: "3", UploadedByName: "Olga Sidorović", UploadDate: date("2024-10-28"), Size: "432 KB",
			},
		},
	}
}
