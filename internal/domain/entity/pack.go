package entity

import (
	"time"

	"github.com/google/uuid"
)

// PackType distinguishes course packs from exchange packs.
type PackType string

const (
	// PackTypeCourse offers elective courses; selection order is not significant.
	PackTypeCourse PackType = "course"
	// PackTypeExchange offers exchange universities; selection order is the
	// student's preference ranking and must be preserved exactly.
	PackTypeExchange PackType = "exchange"
)

// IsValid checks if the PackType is a valid value.
func (t PackType) IsValid() bool {
	return t == PackTypeCourse || t == PackTypeExchange
}

// PackStatus is the lifecycle state of an elective pack. Status changes go
// through CanTransitionTo; a pack status is never overwritten arbitrarily.
type PackStatus string

const (
	PackStatusDraft     PackStatus = "draft"
	PackStatusPublished PackStatus = "published"
	PackStatusClosed    PackStatus = "closed"
	PackStatusArchived  PackStatus = "archived"
)

// IsValid checks if the PackStatus is a valid value.
func (s PackStatus) IsValid() bool {
	switch s {
	case PackStatusDraft, PackStatusPublished, PackStatusClosed, PackStatusArchived:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
// Legal moves: draft->published, published->closed, closed->archived,
// and draft->archived for packs abandoned before publication.
func (s PackStatus) CanTransitionTo(next PackStatus) bool {
	switch s {
	case PackStatusDraft:
		return next == PackStatusPublished || next == PackStatusArchived
	case PackStatusPublished:
		return next == PackStatusClosed
	case PackStatusClosed:
		return next == PackStatusArchived
	default:
		return false
	}
}

// ElectivePack is a named batch of elective options with a deadline and a
// selection cap, visible to exactly one group.
type ElectivePack struct {
	ID            uuid.UUID   `json:"id"`
	Type          PackType    `json:"type"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	GroupID       uuid.UUID   `json:"groupId"`
	Deadline      time.Time   `json:"deadline"`
	MaxSelections int         `json:"maxSelections"`
	Status        PackStatus  `json:"status"`
	ItemIDs       []uuid.UUID `json:"itemIds"` // Course or university IDs offered by this pack.
	CreatedBy     uuid.UUID   `json:"createdBy"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// IsOpenAt reports whether the pack accepts submissions at the given instant.
func (p *ElectivePack) IsOpenAt(now time.Time) bool {
	return p.Status == PackStatusPublished && now.Before(p.Deadline)
}

// Offers reports whether the pack offers the given item.
func (p *ElectivePack) Offers(itemID uuid.UUID) bool {
	for _, id := range p.ItemIDs {
		if id == itemID {
			return true
		}
	}

	return false
}
