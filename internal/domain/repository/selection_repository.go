package repository

import (
	"context"
	"errors"

	"epro/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for selection persistence.
var (
	// ErrSelectionNotFound is returned when a selection is not found.
	ErrSelectionNotFound = errors.New("selection not found")
	// ErrSelectionExists is returned when a student already has a selection for a pack.
	ErrSelectionExists = errors.New("selection already exists for this pack")
)

// SelectionRepository defines the standard operations for selection persistence.
// Item order is significant and must survive a round trip unchanged.
type SelectionRepository interface {
	// FindByID retrieves a selection with its ordered item list.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Selection, error)

	// FindByStudentAndPack retrieves the student's selection for a pack, if any.
	FindByStudentAndPack(ctx context.Context, studentID, packID uuid.UUID) (*entity.Selection, error)

	// ListByStudent returns all selections made by a student, newest first.
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Selection, error)

	// ListByPack returns all selections submitted for a pack, optionally filtered by status.
	ListByPack(ctx context.Context, packID uuid.UUID, statuses []entity.SelectionStatus) ([]*entity.Selection, error)

	// ListPending returns every selection still awaiting a decision, oldest first.
	ListPending(ctx context.Context) ([]*entity.Selection, error)

	// Create persists a new selection with its ordered items.
	Create(ctx context.Context, selection *entity.Selection) error

	// Update replaces a selection's items and decision fields.
	Update(ctx context.Context, selection *entity.Selection) error
}
