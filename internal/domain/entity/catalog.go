package entity

import (
	"time"

	"github.com/google/uuid"
)

// Country is a reference row for exchange destinations.
type Country struct {
	Code string `json:"code"` // ISO 3166-1 alpha-2.
	Name string `json:"name"`
}

// Degree is a study program that groups and courses belong to.
type Degree struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	TitleLocal string    `json:"titleLocal"` // Localized title; may be empty, falls back to Title.
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Course is an elective course offered inside a course pack.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	TitleLocal  string    `json:"titleLocal"`
	Description string    `json:"description"`
	Credits     int       `json:"credits"`
	DegreeID    uuid.UUID `json:"degreeId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// University is an exchange destination offered inside an exchange pack.
type University struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NameLocal   string    `json:"nameLocal"`
	CountryCode string    `json:"countryCode"`
	Seats       int       `json:"seats"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DisplayTitle resolves the localized title with fallback to the default language.
func (d Degree) DisplayTitle(localized bool) string {
	return localizedOrFallback(localized, d.TitleLocal, d.Title)
}

// DisplayTitle resolves the localized title with fallback to the default language.
func (c Course) DisplayTitle(localized bool) string {
	return localizedOrFallback(localized, c.TitleLocal, c.Title)
}

// DisplayName resolves the localized name with fallback to the default language.
func (u University) DisplayName(localized bool) string {
	return localizedOrFallback(localized, u.NameLocal, u.Name)
}

func localizedOrFallback(localized bool, local, fallback string) string {
	if localized && local != "" {
		return local
	}

	return fallback
}
