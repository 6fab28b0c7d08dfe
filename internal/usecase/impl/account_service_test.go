package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"epro/config"
	"epro/internal/domain/entity"
	domainerrors "epro/internal/domain/errors"
	"epro/internal/domain/repository"
	"epro/internal/domain/service"
	mockRepo "epro/internal/mocks/repository"
	mockSvc "epro/internal/mocks/service"
	"epro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service          usecase.AccountUsecase
	txManager        *mockRepo.MockTransactionManager
	profileRepo      *mockRepo.MockProfileRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{Auth: &config.AuthConfig{MaxActiveSessions: 2}}

	svc := NewAccountService(AccountServiceParams{
		TxManager:        txManager,
		ProfileRepo:      profileRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           cfg,
		Logger:           logger,
	})

	return accountServiceFixtures{
		service:          svc,
		txManager:        txManager,
		profileRepo:      profileRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func activeStudent() *entity.Profile {
	groupID := uuid.New()

	return &entity.Profile{
		ID:       uuid.New(),
		Email:    "student@example.com",
		FullName: "Test Student",
		Role:     entity.RoleStudent,
		IsActive: true,
		GroupID:  &groupID,
	}
}

func TestAccountService_RegisterStudent_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterStudentInput{
		Email:    "new@example.com",
		FullName: "New Student",
		Password: "Password123",
		GroupID:  uuid.New(),
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockProfileRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrProfileNotFound)

			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile"), "hashed_password").
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterStudent(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.Profile.Email)
	assert.Equal(t, entity.RoleStudent, output.Profile.Role)
	assert.True(t, output.Profile.IsActive)
	require.NotNil(t, output.Profile.GroupID)
	assert.Equal(t, input.GroupID, *output.Profile.GroupID)
}

func TestAccountService_RegisterStudent_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterStudentInput{
		Email:    "taken@example.com",
		FullName: "New Student",
		Password: "Password123",
		GroupID:  uuid.New(),
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().FindByEmail(ctx, input.Email).Return(activeStudent(), nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterStudent(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
	assert.Nil(t, output)
}

func TestAccountService_RegisterStudent_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterStudentInput{
		Email:    "new@example.com",
		FullName: "New Student",
		Password: "short",
		GroupID:  uuid.New(),
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(assert.AnError)

	output, err := fx.service.RegisterStudent(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	assert.Nil(t, output)
}

func TestAccountService_CreateAccount_StudentNeedsGroup(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Email:    "new@example.com",
		FullName: "Groupless Student",
		Password: "Password123",
		Role:     entity.RoleStudent,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_CreateAccount_UnknownRole(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Email:    "new@example.com",
		FullName: "Mystery",
		Password: "Password123",
		Role:     entity.Role("owner"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	profile := activeStudent()

	fx.profileRepo.EXPECT().FindByEmail(ctx, profile.Email).Return(profile, nil)
	fx.profileRepo.EXPECT().PasswordHashByProfileID(ctx, profile.ID).Return("stored_hash", nil)
	fx.hasher.EXPECT().Check("Password123", "stored_hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(profile.ID, entity.RoleStudent.String()).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)

			mockProfileRepo.EXPECT().AcquireSessionMutex(ctx, profile.ID).Return(nil)
			mockTokenRepo.EXPECT().CountActiveSessionsByProfileID(ctx, profile.ID).Return(0, nil)
			mockTokenRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					assert.Equal(t, profile.ID, token.ProfileID)
					assert.Equal(t, "refresh_hash", token.TokenHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: profile.Email, Password: "Password123"})

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, profile.ID, output.Profile.ID)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.profileRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrProfileNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "Password123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	profile := activeStudent()

	fx.profileRepo.EXPECT().FindByEmail(ctx, profile.Email).Return(profile, nil)
	fx.profileRepo.EXPECT().PasswordHashByProfileID(ctx, profile.ID).Return("stored_hash", nil)
	fx.hasher.EXPECT().Check("wrong", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: profile.Email, Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAccountService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	profile := activeStudent()
	profile.IsActive = false

	fx.profileRepo.EXPECT().FindByEmail(ctx, profile.Email).Return(profile, nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: profile.Email, Password: "Password123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileInactive)
	assert.Nil(t, output)
}

func TestAccountService_Login_SessionLimitReached(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	profile := activeStudent()

	fx.profileRepo.EXPECT().FindByEmail(ctx, profile.Email).Return(profile, nil)
	fx.profileRepo.EXPECT().PasswordHashByProfileID(ctx, profile.ID).Return("stored_hash", nil)
	fx.hasher.EXPECT().Check("Password123", "stored_hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(profile.ID, entity.RoleStudent.String()).
		Return("access_token", "refresh_token", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)

			mockProfileRepo.EXPECT().AcquireSessionMutex(ctx, profile.ID).Return(nil)
			// The fixture configures a cap of two active sessions.
			mockTokenRepo.EXPECT().CountActiveSessionsByProfileID(ctx, profile.ID).Return(2, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: profile.Email, Password: "Password123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
	assert.Nil(t, output)
}

func TestAccountService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	profileID := uuid.New()

	claims := &service.Claims{ProfileID: profileID, Type: "refresh"}
	fx.tokenService.EXPECT().ValidateRefreshToken("old_refresh").Return(claims, nil)
	fx.profileRepo.EXPECT().RoleByID(ctx, profileID).Return(entity.RoleStudent, true, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(profileID, entity.RoleStudent.String()).
		Return("new_access", "new_refresh", nil)
	fx.tokenService.EXPECT().HashToken("old_refresh").Return("old_hash")
	fx.tokenService.EXPECT().HashToken("new_refresh").Return("new_hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)

			stored := &entity.RefreshToken{ID: uuid.New(), ProfileID: profileID, TokenHash: "old_hash"}
			mockTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "old_hash").Return(stored, nil)
			mockTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old_hash").Return(nil)
			mockTokenRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					assert.Equal(t, "new_hash", token.TokenHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Refresh(ctx, "old_refresh")

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestAccountService_Refresh_UnknownSession(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	profileID := uuid.New()

	claims := &service.Claims{ProfileID: profileID, Type: "refresh"}
	fx.tokenService.EXPECT().ValidateRefreshToken("old_refresh").Return(claims, nil)
	fx.profileRepo.EXPECT().RoleByID(ctx, profileID).Return(entity.RoleStudent, true, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(profileID, entity.RoleStudent.String()).
		Return("new_access", "new_refresh", nil)
	fx.tokenService.EXPECT().HashToken("old_refresh").Return("old_hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().
				FindRefreshTokenByHash(ctx, "old_hash").
				Return(nil, repository.ErrRefreshTokenNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Refresh(ctx, "old_refresh")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestAccountService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAccountService(t)

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, assert.AnError)

	output, err := fx.service.Refresh(context.Background(), "garbage")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestAccountService_Logout_Idempotent(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().HashToken("gone_refresh").Return("gone_hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "gone_hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, "gone_refresh")

	assert.NoError(t, err)
}

func TestAccountService_ResolveRole_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	profileID := uuid.New()
	fx.profileRepo.EXPECT().RoleByID(ctx, profileID).Return(entity.RoleProgramManager, true, nil)

	resolved, err := fx.service.ResolveRole(ctx, profileID)

	require.NoError(t, err)
	assert.Equal(t, profileID, resolved.ProfileID)
	assert.Equal(t, entity.RoleProgramManager, resolved.Role)
}

func TestAccountService_ResolveRole_UnknownProfile(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	profileID := uuid.New()
	fx.profileRepo.EXPECT().
		RoleByID(ctx, profileID).
		Return(entity.Role(""), false, repository.ErrProfileNotFound)

	resolved, err := fx.service.ResolveRole(ctx, profileID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Nil(t, resolved)
}

func TestAccountService_ResolveRole_InactiveProfile(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	profileID := uuid.New()
	fx.profileRepo.EXPECT().RoleByID(ctx, profileID).Return(entity.RoleStudent, false, nil)

	resolved, err := fx.service.ResolveRole(ctx, profileID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileInactive)
	assert.Nil(t, resolved)
}

func TestAccountService_SetAccountActive_DeactivationRevokesSessions(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	profile := activeStudent()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)

			mockProfileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
			mockProfileRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, updated *entity.Profile) {
					assert.False(t, updated.IsActive)
				}).
				Return(nil)
			mockTokenRepo.EXPECT().DeleteRefreshTokensByProfileID(ctx, profile.ID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.SetAccountActive(ctx, profile.ID, false)

	assert.NoError(t, err)
}

func TestAccountService_SetAccountActive_NoChangeIsNoOp(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	profile := activeStudent()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)

			return fn(mockFactory)
		})

	err := fx.service.SetAccountActive(ctx, profile.ID, true)

	assert.NoError(t, err)
}
