package usecase

import (
	"context"

	"epro/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitSelectionInput defines the data a student submits for a pack.
// ItemIDs is the student's preference order and is preserved verbatim.
type SubmitSelectionInput struct {
	PackID  uuid.UUID
	ItemIDs []uuid.UUID
}

// DecideSelectionInput defines a manager's decision on a pending selection.
type DecideSelectionInput struct {
	SelectionID uuid.UUID
	Approve     bool
	Comment     string
}

// SelectionUsecase defines the interface for selection workflows.
type SelectionUsecase interface {
	// Submit records a student's ordered selection for an open pack.
	// Validation runs before any write: the pack must be published and inside
	// its deadline, every item must belong to the pack, the count must not
	// exceed the pack limit and the student must not have selected already.
	Submit(ctx context.Context, studentID uuid.UUID, input SubmitSelectionInput) (*entity.Selection, error)

	// ListMine returns the student's own selections, newest first.
	ListMine(ctx context.Context, studentID uuid.UUID) ([]*entity.Selection, error)

	// ListPending returns pending selections awaiting the manager's review.
	ListPending(ctx context.Context, managerID uuid.UUID) ([]*entity.Selection, error)

	// ListByPack returns all selections for a pack.
	ListByPack(ctx context.Context, packID uuid.UUID) ([]*entity.Selection, error)

	// Decide approves or rejects a pending selection. Decided selections are
	// final; a second decision is a conflict.
	Decide(ctx context.Context, reviewerID uuid.UUID, input DecideSelectionInput) (*entity.Selection, error)
}
