// Package model contains the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table.
type ProfileModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	Email     string     `gorm:"type:varchar(255);unique;not null"`
	FullName  string     `gorm:"type:varchar(200);not null"`
	Role      string     `gorm:"type:varchar(32);not null"`
	IsActive  bool       `gorm:"not null;default:true"`
	GroupID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Credential    *CredentialModel    `gorm:"foreignKey:ProfileID"`
	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// CredentialModel mirrors the 'credentials' table. The password hash lives
// apart from the profile so profile reads never touch it.
type CredentialModel struct {
	ProfileID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

// GroupModel mirrors the 'groups' table.
type GroupModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(100);not null"`
	DegreeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EntryYear int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}
