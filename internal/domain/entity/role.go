// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the coarse access class a profile can hold.
type Role string

const (
	// RoleStudent indicates a student who submits elective selections.
	RoleStudent Role = "student"
	// RoleProgramManager indicates a program manager who reviews selections
	// for the groups they manage.
	RoleProgramManager Role = "program_manager"
	// RoleAdmin indicates a portal administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleProgramManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// SectionPath returns the URL prefix of the role's portal section.
func (r Role) SectionPath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleProgramManager:
		return "/manager"
	default:
		return "/student"
	}
}

// LoginPath returns the login page for this role.
func (r Role) LoginPath() string {
	return r.SectionPath() + "/login"
}

// DashboardPath returns the landing page for an authenticated holder of this role.
func (r Role) DashboardPath() string {
	return r.SectionPath() + "/dashboard"
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
