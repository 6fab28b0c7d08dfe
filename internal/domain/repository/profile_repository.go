// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"epro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ErrGroupNotFound is returned when a cohort group is not found.
var ErrGroupNotFound = errors.New("group not found")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer depends on this interface, not the concrete implementation.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByEmail retrieves a single profile by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Create persists a new profile together with its password hash.
	// The hash lives in a separate credentials row, never on the profile itself.
	Create(ctx context.Context, profile *entity.Profile, passwordHash string) error

	// Update modifies an existing profile.
	Update(ctx context.Context, profile *entity.Profile) error

	// PasswordHashByProfileID returns the stored password hash for a profile.
	PasswordHashByProfileID(ctx context.Context, id uuid.UUID) (string, error)

	// RoleByID reads only the role and active flag for a profile. This is the
	// service-privileged re-check used by every authorization decision.
	RoleByID(ctx context.Context, id uuid.UUID) (entity.Role, bool, error)

	// AcquireSessionMutex locks the profile row for the session-limit check.
	AcquireSessionMutex(ctx context.Context, id uuid.UUID) error
}
