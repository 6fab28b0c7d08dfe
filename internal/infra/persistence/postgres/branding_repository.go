package postgres

import (
	"context"

	"epro/internal/domain/entity"
	domainerrors "epro/internal/domain/errors"
	"epro/internal/domain/repository"
	"epro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// brandingRepository is the GORM implementation of repository.BrandingRepository.
type brandingRepository struct {
	db *gorm.DB
}

// NewBrandingRepository creates a branding repository bound to the given DB handle.
func NewBrandingRepository(db *gorm.DB) repository.BrandingRepository {
	return &brandingRepository{db: db}
}

// Get retrieves the current brand settings.
func (r *brandingRepository) Get(ctx context.Context) (*entity.BrandSettings, error) {
	var row model.BrandSettingsModel
	err := r.db.WithContext(ctx).First(&row, "id = ?", model.BrandSettingsRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandSettingsNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "load brand settings")
	}

	return &entity.BrandSettings{
		PortalName:   row.PortalName,
		PrimaryColor: row.PrimaryColor,
		AccentColor:  row.AccentColor,
		LogoPath:     row.LogoPath,
		SupportEmail: row.SupportEmail,
		Version:      row.Version,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

// Save upserts the brand settings row.
func (r *brandingRepository) Save(ctx context.Context, settings *entity.BrandSettings) error {
	row := model.BrandSettingsModel{
		ID:           model.BrandSettingsRowID,
		PortalName:   settings.PortalName,
		PrimaryColor: settings.PrimaryColor,
		AccentColor:  settings.AccentColor,
		LogoPath:     settings.LogoPath,
		SupportEmail: settings.SupportEmail,
		Version:      settings.Version,
		UpdatedAt:    settings.UpdatedAt,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "save brand settings")
	}

	return nil
}
