package repository

import (
	"context"
	"errors"

	"epro/internal/domain/entity"
)

// ErrBrandSettingsNotFound is returned when no brand settings row exists yet.
var ErrBrandSettingsNotFound = errors.New("brand settings not found")

// BrandingRepository defines the operations for the portal brand settings singleton.
type BrandingRepository interface {
	// Get retrieves the current brand settings.
	Get(ctx context.Context) (*entity.BrandSettings, error)

	// Save upserts the brand settings row.
	Save(ctx context.Context, settings *entity.BrandSettings) error
}
