package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSelectionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from SelectionStatus
		to   SelectionStatus
		want bool
	}{
		{SelectionStatusPending, SelectionStatusApproved, true},
		{SelectionStatusPending, SelectionStatusRejected, true},
		{SelectionStatusPending, SelectionStatusPending, false},
		{SelectionStatusApproved, SelectionStatusRejected, false},
		{SelectionStatusApproved, SelectionStatusPending, false},
		{SelectionStatusRejected, SelectionStatusApproved, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestSelection_Decide_RejectsTerminalStates(t *testing.T) {
	reviewer := uuid.New()
	now := time.Now()

	sel := &Selection{Status: SelectionStatusPending}
	assert.True(t, sel.Decide(SelectionStatusApproved, reviewer, "ok", now))
	assert.Equal(t, SelectionStatusApproved, sel.Status)
	assert.Equal(t, &reviewer, sel.DecidedBy)

	// A decided selection must not be overwritten.
	assert.False(t, sel.Decide(SelectionStatusRejected, reviewer, "flip", now))
	assert.Equal(t, SelectionStatusApproved, sel.Status)
}

func TestPackStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from PackStatus
		to   PackStatus
		want bool
	}{
		{PackStatusDraft, PackStatusPublished, true},
		{PackStatusDraft, PackStatusArchived, true},
		{PackStatusDraft, PackStatusClosed, false},
		{PackStatusPublished, PackStatusClosed, true},
		{PackStatusPublished, PackStatusArchived, false},
		{PackStatusPublished, PackStatusDraft, false},
		{PackStatusClosed, PackStatusArchived, true},
		{PackStatusClosed, PackStatusPublished, false},
		{PackStatusArchived, PackStatusPublished, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestElectivePack_IsOpenAt(t *testing.T) {
	now := time.Now()
	pack := &ElectivePack{Status: PackStatusPublished, Deadline: now.Add(time.Hour)}

	assert.True(t, pack.IsOpenAt(now))
	assert.False(t, pack.IsOpenAt(now.Add(2*time.Hour)), "past deadline")

	pack.Status = PackStatusDraft
	assert.False(t, pack.IsOpenAt(now), "draft pack is not open")
}
