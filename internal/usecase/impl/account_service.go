// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"epro/config"
	deliverycontext "epro/internal/delivery/context"
	"epro/internal/domain/entity"
	domainerrors "epro/internal/domain/errors"
	"epro/internal/domain/repository"
	"epro/internal/domain/service"
	"epro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	profileRepo       repository.ProfileRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ProfileRepo      repository.ProfileRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &accountService{
		txManager:         params.TxManager,
		profileRepo:       params.ProfileRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterStudent creates a new student account.
func (srv *accountService) RegisterStudent(ctx context.Context, input usecase.RegisterStudentInput) (*usecase.RegisterOutput, error) {
	groupID := input.GroupID

	return srv.createProfile(ctx, createProfileConfig{
		Email:    input.Email,
		FullName: input.FullName,
		Password: input.Password,
		Role:     entity.RoleStudent,
		GroupID:  &groupID,
	})
}

// CreateAccount provisions an account with an explicit role.
func (srv *accountService) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*usecase.RegisterOutput, error) {
	if !input.Role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
	}
	if input.Role == entity.RoleStudent && input.GroupID == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "students must belong to a group")
	}

	return srv.createProfile(ctx, createProfileConfig{
		Email:    input.Email,
		FullName: input.FullName,
		Password: input.Password,
		Role:     input.Role,
		GroupID:  input.GroupID,
	})
}

type createProfileConfig struct {
	Email    string
	FullName string
	Password string
	Role     entity.Role
	GroupID  *uuid.UUID
}

func (srv *accountService) createProfile(ctx context.Context, cfg createProfileConfig) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", cfg.Role), slog.String("email", cfg.Email))

	if err := srv.hasher.ValidatePasswordStrength(cfg.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", cfg.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(cfg.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registered *entity.Profile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		_, err := profileRepo.FindByEmail(ctx, cfg.Email)
		if err == nil {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to check existing profile")
		}

		newProfile := &entity.Profile{
			ID:       uuid.New(),
			Email:    cfg.Email,
			FullName: cfg.FullName,
			Role:     cfg.Role,
			IsActive: true,
			GroupID:  cfg.GroupID,
		}
		if err := profileRepo.Create(ctx, newProfile, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		registered = newProfile

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", cfg.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", cfg.Role), slog.Any("profileID", registered.ID))

	return &usecase.RegisterOutput{Profile: registered}, nil
}

// Login verifies credentials and opens a session.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	profile, err := srv.profileRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load profile for login")
	}

	if !profile.IsActive {
		srv.log(ctx).Warn("Login attempt on inactive account", slog.Any("profileID", profile.ID))

		return nil, domainerrors.ErrProfileInactive.WrapMessage("login rejected")
	}

	hash, err := srv.profileRepo.PasswordHashByProfileID(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load credentials for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, hash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(profile.ID, profile.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, profile.ID, refreshToken); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("profileID", profile.ID), slog.Any("role", profile.Role))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profile,
	}, nil
}

// storeRefreshToken persists a new session, enforcing the per-account session cap
// under a row lock so concurrent logins cannot race past the limit.
func (srv *accountService) storeRefreshToken(ctx context.Context, profileID uuid.UUID, refreshToken string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		tokenRepo := repoFactory.RefreshTokenRepo()

		if err := profileRepo.AcquireSessionMutex(ctx, profileID); err != nil {
			return errors.Wrap(err, "failed to lock profile for session accounting")
		}

		if srv.maxActiveSessions > 0 {
			count, err := tokenRepo.CountActiveSessionsByProfileID(ctx, profileID)
			if err != nil {
				return errors.Wrap(err, "failed to count active sessions")
			}
			if count >= srv.maxActiveSessions {
				return domainerrors.ErrSessionLimitExceeded.WrapMessage("too many active sessions")
			}
		}

		record := &entity.RefreshToken{
			ID:        uuid.New(),
			ProfileID: profileID,
			TokenHash: srv.tokenService.HashToken(refreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}

		return errors.Wrap(tokenRepo.CreateRefreshToken(ctx, record), "failed to store refresh token")
	})
}

// Refresh rotates a refresh token for a new access/refresh pair.
func (srv *accountService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token rejected")
	}

	// The role in the old token is ignored; the rotated pair carries whatever
	// the profile's role is now.
	role, active, err := srv.profileRepo.RoleByID(ctx, claims.ProfileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("profile gone")
		}

		return nil, errors.Wrap(err, "failed to resolve role for refresh")
	}
	if !active {
		return nil, domainerrors.ErrProfileInactive.WrapMessage("refresh rejected")
	}

	newAccess, newRefresh, err := srv.tokenService.GenerateTokens(claims.ProfileID, role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate rotated tokens")
	}

	oldHash := srv.tokenService.HashToken(refreshToken)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.RefreshTokenRepo()

		stored, err := tokenRepo.FindRefreshTokenByHash(ctx, oldHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return domainerrors.ErrRefreshTokenInvalid.WrapMessage("session not found")
			}

			return errors.Wrap(err, "failed to load refresh token")
		}

		if err := tokenRepo.DeleteRefreshTokenByHash(ctx, oldHash); err != nil {
			return errors.Wrap(err, "failed to revoke rotated token")
		}

		record := &entity.RefreshToken{
			ID:        uuid.New(),
			ProfileID: stored.ProfileID,
			TokenHash: srv.tokenService.HashToken(newRefresh),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}

		return errors.Wrap(tokenRepo.CreateRefreshToken(ctx, record), "failed to store rotated token")
	})
	if err != nil {
		return nil, err
	}

	return &usecase.RefreshOutput{AccessToken: newAccess, RefreshToken: newRefresh}, nil
}

// Logout ends the session identified by the refresh token. Logging out an
// already-ended session succeeds.
func (srv *accountService) Logout(ctx context.Context, refreshToken string) error {
	hash := srv.tokenService.HashToken(refreshToken)

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, hash)
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to end session")
	}

	return nil
}

// ResolveRole re-reads the subject's role from storage.
func (srv *accountService) ResolveRole(ctx context.Context, profileID uuid.UUID) (*usecase.ResolvedRole, error) {
	role, active, err := srv.profileRepo.RoleByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Role lookup for unknown profile", slog.Any("profileID", profileID))

			return nil, domainerrors.ErrProfileNotFound.WrapMessage("role lookup failed")
		}

		return nil, errors.Wrap(err, "failed to resolve role")
	}
	if !active {
		return nil, domainerrors.ErrProfileInactive.WrapMessage("role lookup rejected")
	}

	return &usecase.ResolvedRole{ProfileID: profileID, Role: role}, nil
}

// GetProfile returns the subject's own profile.
func (srv *accountService) GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}

// SetAccountActive activates or deactivates an account. Deactivation revokes
// every session the account holds.
func (srv *accountService) SetAccountActive(ctx context.Context, profileID uuid.UUID, active bool) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("account lookup failed")
			}

			return errors.Wrap(err, "failed to load account")
		}

		if profile.IsActive == active {
			return nil
		}

		profile.IsActive = active
		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update account state")
		}

		if !active {
			if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByProfileID(ctx, profileID); err != nil {
				return errors.Wrap(err, "failed to revoke sessions on deactivation")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Account state changed", slog.Any("profileID", profileID), slog.Bool("active", active))

	return nil
}
