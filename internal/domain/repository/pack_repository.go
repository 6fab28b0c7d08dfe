package repository

import (
	"context"
	"errors"

	"epro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPackNotFound is returned when an elective pack is not found.
var ErrPackNotFound = errors.New("elective pack not found")

// PackRepository defines the standard operations for elective pack persistence.
type PackRepository interface {
	// FindByID retrieves a pack with its ordered item list.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ElectivePack, error)

	// ListByGroup returns packs visible to a cohort group, optionally filtered by status.
	ListByGroup(ctx context.Context, groupID uuid.UUID, statuses []entity.PackStatus) ([]*entity.ElectivePack, error)

	// ListAll returns every pack regardless of group, optionally filtered by status.
	ListAll(ctx context.Context, statuses []entity.PackStatus) ([]*entity.ElectivePack, error)

	// Create persists a new pack and its item list in one write.
	Create(ctx context.Context, pack *entity.ElectivePack) error

	// Update modifies a pack's attributes and replaces its item list.
	Update(ctx context.Context, pack *entity.ElectivePack) error

	// UpdateStatus changes only the pack status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PackStatus) error
}
