package usecase

import (
	"context"

	"epro/internal/domain/entity"
)

// UpdateBrandingInput defines the editable brand attributes. Nil fields keep
// their current value.
type UpdateBrandingInput struct {
	PortalName   *string
	PrimaryColor *string
	AccentColor  *string
	SupportEmail *string
}

// BrandingUsecase defines the interface for portal branding operations.
// Reads are public and cache-backed; writes are admin only and bump the
// settings version so every client converges on the new look.
type BrandingUsecase interface {
	// Get returns the current brand settings, falling back to defaults when
	// nothing has been configured yet.
	Get(ctx context.Context) (*entity.BrandSettings, error)

	// Update applies partial changes to the brand settings.
	Update(ctx context.Context, input UpdateBrandingInput) (*entity.BrandSettings, error)

	// UploadLogo stores a new logo asset and records its path.
	UploadLogo(ctx context.Context, contentType string, data []byte) (*entity.BrandSettings, error)
}
