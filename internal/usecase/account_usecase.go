// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"epro/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterStudentInput defines the data required to register a new student account.
type RegisterStudentInput struct {
	Email    string
	FullName string
	Password string
	GroupID  uuid.UUID
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created profile.
type RegisterOutput struct {
	Profile *entity.Profile
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Profile      *entity.Profile
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// ResolvedRole is the authoritative answer about who a subject is.
// Role comes from storage, never from the token the caller presented.
type ResolvedRole struct {
	ProfileID uuid.UUID
	Role      entity.Role
}

// AccountUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	// RegisterStudent creates a student account. Manager and admin accounts
	// are provisioned by an admin, never self-registered.
	RegisterStudent(ctx context.Context, input RegisterStudentInput) (*RegisterOutput, error)

	// Login verifies credentials and opens a session.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh rotates a refresh token for a new pair.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout ends the session identified by the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// ResolveRole re-reads the subject's role from storage. A missing or
	// deactivated profile resolves to an error, never to a default role.
	ResolveRole(ctx context.Context, profileID uuid.UUID) (*ResolvedRole, error)

	// GetProfile returns the subject's own profile.
	GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error)

	// CreateAccount provisions an account with an explicit role. Admin only.
	CreateAccount(ctx context.Context, input CreateAccountInput) (*RegisterOutput, error)

	// SetAccountActive activates or deactivates an account. Admin only.
	// Deactivation revokes every session the account holds.
	SetAccountActive(ctx context.Context, profileID uuid.UUID, active bool) error
}

// CreateAccountInput defines the data an admin supplies to provision an account.
type CreateAccountInput struct {
	Email    string
	FullName string
	Password string
	Role     entity.Role
	GroupID  *uuid.UUID
}
