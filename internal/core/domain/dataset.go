package domain

// Dataset is a full set of back-office records, used to seed a catalog.
type Dataset struct {
	Companies   []Company
	Tasks       []Task
	Documents   []Document
	Accountants []AccountantUser
}
