package entity

import (
	"time"

	"github.com/google/uuid"
)

// SelectionStatus is the decision state of a submitted selection.
type SelectionStatus string

const (
	SelectionStatusPending  SelectionStatus = "pending"
	SelectionStatusApproved SelectionStatus = "approved"
	SelectionStatusRejected SelectionStatus = "rejected"
)

// IsValid checks if the SelectionStatus is a valid value.
func (s SelectionStatus) IsValid() bool {
	switch s {
	case SelectionStatusPending, SelectionStatusApproved, SelectionStatusRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a decision may move the selection to next.
// Only pending selections can be decided; approved and rejected are terminal.
func (s SelectionStatus) CanTransitionTo(next SelectionStatus) bool {
	if s != SelectionStatusPending {
		return false
	}

	return next == SelectionStatusApproved || next == SelectionStatusRejected
}

// Selection is a student's submitted choice list against a pack. ItemIDs is
// ordered: for exchange packs the position is the preference ranking and is
// persisted exactly as submitted.
type Selection struct {
	ID        uuid.UUID       `json:"id"`
	StudentID uuid.UUID       `json:"studentId"`
	PackID    uuid.UUID       `json:"packId"`
	ItemIDs   []uuid.UUID     `json:"itemIds"`
	Status    SelectionStatus `json:"status"`
	Comment   string          `json:"comment"`   // Reviewer comment attached on decision.
	DecidedBy *uuid.UUID      `json:"decidedBy"` // Reviewer profile ID, nil while pending.
	DecidedAt *time.Time      `json:"decidedAt"` // Decision instant, nil while pending.
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Decide applies a reviewed decision, enforcing the transition rules.
// It returns false without mutating the selection when the transition is illegal.
func (sel *Selection) Decide(next SelectionStatus, reviewerID uuid.UUID, comment string, at time.Time) bool {
	if !sel.Status.CanTransitionTo(next) {
		return false
	}

	sel.Status = next
	sel.Comment = comment
	sel.DecidedBy = &reviewerID
	sel.DecidedAt = &at

	return true
}
