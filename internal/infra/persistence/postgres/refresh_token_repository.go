package postgres

import (
	"context"
	"time"

	"epro/internal/domain/entity"
	domainerrors "epro/internal/domain/errors"
	"epro/internal/domain/repository"
	"epro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// refreshTokenRepository is the GORM implementation of repository.RefreshTokenRepository.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a refresh token repository bound to the given DB handle.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// CreateRefreshToken persists a new refresh token, representing a session.
func (r *refreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	row := &model.RefreshTokenModel{
		ID:        token.ID,
		ProfileID: token.ProfileID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "create refresh token")
	}

	token.CreatedAt = row.CreatedAt

	return nil
}

// FindRefreshTokenByHash retrieves a refresh token record by its stored hash.
func (r *refreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var row model.RefreshTokenModel
	err := r.db.WithContext(ctx).First(&row, "token_hash = ?", tokenHash).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find refresh token")
	}

	if time.Now().After(row.ExpiresAt) {
		return nil, repository.ErrRefreshTokenExpired
	}

	return refreshTokenToEntity(&row), nil
}

// FindRefreshTokensByProfileID retrieves all active refresh tokens for a profile.
func (r *refreshTokenRepository) FindRefreshTokensByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entity.RefreshToken, error) {
	var rows []model.RefreshTokenModel
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND expires_at > ?", profileID, time.Now()).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list refresh tokens")
	}

	tokens := make([]*entity.RefreshToken, 0, len(rows))
	for i := range rows {
		tokens = append(tokens, refreshTokenToEntity(&rows[i]))
	}

	return tokens, nil
}

// DeleteRefreshTokenByHash deletes a refresh token by its hash, ending a session.
func (r *refreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	result := r.db.WithContext(ctx).Delete(&model.RefreshTokenModel{}, "token_hash = ?", tokenHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "delete refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

// DeleteRefreshTokensByProfileID removes all refresh tokens for a profile.
func (r *refreshTokenRepository) DeleteRefreshTokensByProfileID(ctx context.Context, profileID uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&model.RefreshTokenModel{}, "profile_id = ?", profileID).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete refresh tokens by profile")
	}

	return nil
}

// DeleteExpiredRefreshTokens removes all expired refresh tokens from the database.
func (r *refreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context) error {
	err := r.db.WithContext(ctx).Delete(&model.RefreshTokenModel{}, "expires_at <= ?", time.Now()).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete expired refresh tokens")
	}

	return nil
}

// CountActiveSessionsByProfileID returns the number of active sessions for a profile.
func (r *refreshTokenRepository) CountActiveSessionsByProfileID(ctx context.Context, profileID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.RefreshTokenModel{}).
		Where("profile_id = ? AND expires_at > ?", profileID, time.Now()).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "count active sessions")
	}

	return int(count), nil
}

func refreshTokenToEntity(row *model.RefreshTokenModel) *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        row.ID,
		ProfileID: row.ProfileID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}
}
