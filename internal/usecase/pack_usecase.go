package usecase

import (
	"context"
	"time"

	"epro/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreatePackInput defines the data required to create an elective pack.
type CreatePackInput struct {
	Title         string
	Description   string
	Type          entity.PackType
	GroupID       uuid.UUID
	ItemIDs       []uuid.UUID
	MaxSelections int
	Deadline      time.Time
}

// UpdatePackInput defines the editable attributes of a draft pack.
type UpdatePackInput struct {
	Title         *string
	Description   *string
	ItemIDs       []uuid.UUID
	MaxSelections *int
	Deadline      *time.Time
}

// PackUsecase defines the interface for elective pack management.
type PackUsecase interface {
	// Create makes a new pack in draft status.
	Create(ctx context.Context, creatorID uuid.UUID, input CreatePackInput) (*entity.ElectivePack, error)

	// Update edits a pack. Only draft packs are editable.
	Update(ctx context.Context, packID uuid.UUID, input UpdatePackInput) (*entity.ElectivePack, error)

	// ChangeStatus moves a pack along its lifecycle. Illegal transitions are
	// rejected as conflicts.
	ChangeStatus(ctx context.Context, packID uuid.UUID, next entity.PackStatus) (*entity.ElectivePack, error)

	// Get returns a single pack.
	Get(ctx context.Context, packID uuid.UUID) (*entity.ElectivePack, error)

	// ListForStudent returns published packs visible to the student's group,
	// served through the cache.
	ListForStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.ElectivePack, error)

	// ListAll returns every pack for staff screens.
	ListAll(ctx context.Context) ([]*entity.ElectivePack, error)

	// ShareQRCode renders a QR code PNG pointing at the pack's public page.
	ShareQRCode(ctx context.Context, packID uuid.UUID) ([]byte, error)
}
