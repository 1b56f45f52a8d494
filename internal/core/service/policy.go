package service

import "github.com/buhgalterija/backoffice/internal/core/domain"

// Capabilities maps a role to the actions it may perform. Roles without
// defined semantics get no capabilities. Callers must re-derive on every
// check instead of caching the result across a role change.
func Capabilities(role domain.Role) domain.CapabilitySet {
	switch role {
	case domain.RoleDirector:
		return domain.CapabilitySet{
			CanManageCompanies: true,
			CanAssignTasks:     true,
			CanApproveTasks:    true,
		}
	case domain.RoleAdministrator:
		return domain.CapabilitySet{
			CanManageUsers:     true,
			CanManageCompanies: true,
			CanAssignTasks:     true,
		}
	default:
		return domain.CapabilitySet{}
	}
}

// ScopeFor limits users who cannot manage companies to the records assigned
// to them.
func ScopeFor(profile domain.UserProfile) domain.Scope {
	if Capabilities(profile.Role).CanManageCompanies {
		return domain.Scope{}
	}
	return domain.Scope{AccountantID: profile.ID}
}

// Navigation lists the main menu entries visible with caps.
func Navigation(caps domain.CapabilitySet) []domain.NavItem {
	items := []domain.NavItem{
		{Key: "dashboard", Path: "/"},
		{Key: "companies", Path: "/companies"},
		{Key: "tasks", Path: "/tasks"},
		{Key: "documents", Path: "/documents"},
	}
	if caps.CanManageUsers {
		items = append(items, domain.NavItem{Key: "users", Path: "/users"})
	}
	if caps.CanManageCompanies {
		items = append(items, domain.NavItem{Key: "settings", Path: "/settings"})
	}
	return items
}
