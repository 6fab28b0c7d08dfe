// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the core identity record of the portal. Exactly one row exists
// per account; the Role column is the single source of authorization truth
// and is re-read from the store on every role check, never taken from a
// client-supplied claim.
type Profile struct {
	ID        uuid.UUID  `json:"id"`       // Account identifier; matches the token subject.
	Email     string     `json:"email"`    // Login identifier.
	FullName  string     `json:"fullName"` // Display name.
	Role      Role       `json:"role"`     // Coarse access class. Immutable through student/manager operations.
	IsActive  bool       `json:"isActive"` // Deactivated profiles cannot authenticate or pass role checks.
	GroupID   *uuid.UUID `json:"groupId"`  // Cohort membership; set for students, nil for staff.
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Group is a student cohort. Pack visibility is scoped to exactly one group.
type Group struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	DegreeID  uuid.UUID `json:"degreeId"`
	EntryYear int       `json:"entryYear"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
