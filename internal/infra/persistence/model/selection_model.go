package model

import (
	"time"

	"github.com/google/uuid"
)

// SelectionModel mirrors the 'selections' table. One row per student per pack.
type SelectionModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	StudentID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_selections_student_pack"`
	PackID    uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_selections_student_pack"`
	Status    string     `gorm:"type:varchar(16);not null;index"`
	Comment   string     `gorm:"type:text"`
	DecidedBy *uuid.UUID `gorm:"type:uuid"`
	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []SelectionItemModel `gorm:"foreignKey:SelectionID"`
}

// TableName explicitly sets the table name for GORM.
func (SelectionModel) TableName() string {
	return "selections"
}

// SelectionItemModel mirrors the 'selection_items' table. Position is the
// student's preference ranking and is returned exactly as submitted.
type SelectionItemModel struct {
	SelectionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SelectionItemModel) TableName() string {
	return "selection_items"
}
