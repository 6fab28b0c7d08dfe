package model

import "time"

// BrandSettingsModel mirrors the 'brand_settings' table. A single row with a
// fixed ID holds the portal branding.
type BrandSettingsModel struct {
	ID           int16  `gorm:"primaryKey"`
	PortalName   string `gorm:"type:varchar(100);not null"`
	PrimaryColor string `gorm:"type:char(7);not null"`
	AccentColor  string `gorm:"type:char(7);not null"`
	LogoPath     string `gorm:"type:varchar(255)"`
	SupportEmail string `gorm:"type:varchar(255)"`
	Version      int64  `gorm:"not null;default:1"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandSettingsModel) TableName() string {
	return "brand_settings"
}

// BrandSettingsRowID is the fixed primary key of the singleton row.
const BrandSettingsRowID int16 = 1
