package postgres

import (
	"context"

	"epro/internal/domain/entity"
	domainerrors "epro/internal/domain/errors"
	"epro/internal/domain/repository"
	"epro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository is the GORM implementation of repository.ProfileRepository.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a profile repository bound to the given DB handle.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByID retrieves a single profile by its unique ID.
func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var row model.ProfileModel
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find profile by id")
	}

	return profileToEntity(&row), nil
}

// FindByEmail retrieves a single profile by its email address.
func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var row model.ProfileModel
	err := r.db.WithContext(ctx).First(&row, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find profile by email")
	}

	return profileToEntity(&row), nil
}

// Create persists a new profile together with its password hash.
func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile, passwordHash string) error {
	row := profileToModel(profile)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("profile insert conflict")
		}

		return domainerrors.NewDatabaseExecuteError(err, "create profile")
	}

	cred := &model.CredentialModel{ProfileID: row.ID, PasswordHash: passwordHash}
	if err := r.db.WithContext(ctx).Create(cred).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "create credential")
	}

	profile.CreatedAt = row.CreatedAt
	profile.UpdatedAt = row.UpdatedAt

	return nil
}

// Update modifies an existing profile.
func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	row := profileToModel(profile)
	result := r.db.WithContext(ctx).Model(&model.ProfileModel{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"email":     row.Email,
			"full_name": row.FullName,
			"role":      row.Role,
			"is_active": row.IsActive,
			"group_id":  row.GroupID,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("profile update conflict")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// PasswordHashByProfileID returns the stored password hash for a profile.
func (r *profileRepository) PasswordHashByProfileID(ctx context.Context, id uuid.UUID) (string, error) {
	var cred model.CredentialModel
	err := r.db.WithContext(ctx).First(&cred, "profile_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrProfileNotFound
		}

		return "", domainerrors.NewDatabaseExecuteError(err, "load credential")
	}

	return cred.PasswordHash, nil
}

// RoleByID reads only the role and active flag for a profile.
func (r *profileRepository) RoleByID(ctx context.Context, id uuid.UUID) (entity.Role, bool, error) {
	var row struct {
		Role     string
		IsActive bool
	}
	err := r.db.WithContext(ctx).Model(&model.ProfileModel{}).
		Select("role", "is_active").
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, repository.ErrProfileNotFound
		}

		return "", false, domainerrors.NewDatabaseExecuteError(err, "load role")
	}

	return entity.Role(row.Role), row.IsActive, nil
}

// AcquireSessionMutex locks the profile row for the session-limit check.
func (r *profileRepository) AcquireSessionMutex(ctx context.Context, id uuid.UUID) error {
	var row model.ProfileModel
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "lock profile row")
	}

	return nil
}

func profileToEntity(row *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		Role:      entity.Role(row.Role),
		IsActive:  row.IsActive,
		GroupID:   row.GroupID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func profileToModel(profile *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:       profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Role:     profile.Role.String(),
		IsActive: profile.IsActive,
		GroupID:  profile.GroupID,
	}
}
