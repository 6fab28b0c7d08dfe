package model

import (
	"time"

	"github.com/google/uuid"
)

// PackModel mirrors the 'elective_packs' table.
type PackModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Type          string    `gorm:"type:varchar(16);not null"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Description   string    `gorm:"type:text"`
	GroupID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Deadline      time.Time `gorm:"not null"`
	MaxSelections int       `gorm:"not null"`
	Status        string    `gorm:"type:varchar(16);not null;index"`
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []PackItemModel `gorm:"foreignKey:PackID"`
}

// TableName explicitly sets the table name for GORM.
func (PackModel) TableName() string {
	return "elective_packs"
}

// PackItemModel mirrors the 'pack_items' table. Position keeps the admin's
// display order stable.
type PackItemModel struct {
	PackID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PackItemModel) TableName() string {
	return "pack_items"
}
