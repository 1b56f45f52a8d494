package domain

// Role identifies a back-office user's position in the firm.
// Only the three constants below carry authorization semantics; any other
// value is tolerated on the wire and treated as least privilege.
type Role string

const (
	RoleDirector      Role = "director"
	RoleAdministrator Role = "administrator"
	RoleAccountant    Role = "accountant"
)

// DefaultRole is applied when the server reports no role for a user.
const DefaultRole = RoleAccountant

// Known reports whether r is one of the roles with defined semantics.
func (r Role) Known() bool {
	switch r {
	case RoleDirector, RoleAdministrator, RoleAccountant:
		return true
	}
	return false
}

// CapabilitySet lists the privileged actions a role may perform.
// It is always derived from a Role and never persisted.
type CapabilitySet struct {
	CanManageUsers     bool `json:"canManageUsers"`
	CanManageCompanies bool `json:"canManageCompanies"`
	CanAssignTasks     bool `json:"canAssignTasks"`
	CanApproveTasks    bool `json:"canApproveTasks"`
}

// Scope restricts which records a user may list.
// An empty AccountantID means unrestricted.
type Scope struct {
	AccountantID string
}

// Restricted reports whether the scope limits records to one accountant.
func (s Scope) Restricted() bool {
	return s.AccountantID != ""
}

// NavItem is one entry of the application's main navigation.
type NavItem struct {
	Key  string `json:"key"`
	Path string `json:"path"`
}
