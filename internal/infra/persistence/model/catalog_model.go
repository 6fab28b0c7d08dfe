package model

import (
	"time"

	"github.com/google/uuid"
)

// CountryModel mirrors the 'countries' table.
type CountryModel struct {
	Code string `gorm:"type:char(2);primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// DegreeModel mirrors the 'degrees' table.
type DegreeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Title      string    `gorm:"type:varchar(200);not null"`
	TitleLocal string    `gorm:"type:varchar(200)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DegreeModel) TableName() string {
	return "degrees"
}

// CourseModel mirrors the 'courses' table.
type CourseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"type:varchar(200);not null"`
	TitleLocal  string    `gorm:"type:varchar(200)"`
	Description string    `gorm:"type:text"`
	Credits     int       `gorm:"not null;default:0"`
	DegreeID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

// UniversityModel mirrors the 'universities' table.
type UniversityModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(200);not null"`
	NameLocal   string    `gorm:"type:varchar(200)"`
	CountryCode string    `gorm:"type:char(2);not null;index"`
	Seats       int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UniversityModel) TableName() string {
	return "universities"
}
