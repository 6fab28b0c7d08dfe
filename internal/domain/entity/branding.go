package entity

import "time"

// BrandSettings is the singleton portal branding record configured by admins.
// Version increments on every update so cached readers can detect change
// without deep comparison.
type BrandSettings struct {
	PortalName   string    `json:"portalName"`
	PrimaryColor string    `json:"primaryColor"` // #rrggbb
	AccentColor  string    `json:"accentColor"`  // #rrggbb
	LogoPath     string    `json:"logoPath"`     // Key inside the asset bucket; empty when unset.
	SupportEmail string    `json:"supportEmail"`
	Version      int64     `json:"version"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DefaultBrandSettings returns the branding used before an admin configures any.
func DefaultBrandSettings() *BrandSettings {
	return &BrandSettings{
		PortalName:   "Elective Portal",
		PrimaryColor: "#1f2937",
		AccentColor:  "#2563eb",
		SupportEmail: "support@epro.local",
		Version:      1,
	}
}
