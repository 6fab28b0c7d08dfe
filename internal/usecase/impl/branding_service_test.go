package impl

import (
	"bytes"
	"context"
	"testing"

	"epro/internal/domain/entity"
	domainerrors "epro/internal/domain/errors"
	"epro/internal/domain/repository"
	mockRepo "epro/internal/mocks/repository"
	mockSvc "epro/internal/mocks/service"
	"epro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// brandingServiceFixtures holds all test dependencies for branding service tests.
type brandingServiceFixtures struct {
	service      usecase.BrandingUsecase
	brandingRepo *mockRepo.MockBrandingRepository
	assets       *mockSvc.MockAssetStorage
}

func createTestBrandingService(t *testing.T) brandingServiceFixtures {
	brandingRepo := mockRepo.NewMockBrandingRepository(t)
	assets := mockSvc.NewMockAssetStorage(t)

	svc := NewBrandingService(BrandingServiceParams{
		BrandingRepo: brandingRepo,
		Assets:       assets,
		Loader:       newTestLoader(),
		Clock:        stubClock{now: testNow},
		Logger:       discardLogger(),
	})

	return brandingServiceFixtures{
		service:      svc,
		brandingRepo: brandingRepo,
		assets:       assets,
	}
}

func TestBrandingService_Get_FallsBackToDefaults(t *testing.T) {
	fx := createTestBrandingService(t)

	ctx := context.Background()

	fx.brandingRepo.EXPECT().Get(ctx).Return(nil, repository.ErrBrandSettingsNotFound)

	settings, err := fx.service.Get(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultBrandSettings(), settings)
}

func TestBrandingService_Get_UsesCache(t *testing.T) {
	fx := createTestBrandingService(t)

	ctx := context.Background()
	stored := &entity.BrandSettings{PortalName: "Engineering Portal", Version: 4}

	fx.brandingRepo.EXPECT().Get(ctx).Return(stored, nil).Once()

	first, err := fx.service.Get(ctx)
	require.NoError(t, err)
	second, err := fx.service.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, stored, first)
	assert.Equal(t, stored, second)
}

func TestBrandingService_Update_BumpsVersion(t *testing.T) {
	fx := createTestBrandingService(t)

	ctx := context.Background()
	stored := &entity.BrandSettings{
		PortalName:   "Elective Portal",
		PrimaryColor: "#1f2937",
		AccentColor:  "#2563eb",
		Version:      3,
	}

	fx.brandingRepo.EXPECT().Get(ctx).Return(stored, nil)
	fx.brandingRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.BrandSettings")).
		Return(nil)

	name := "Faculty of Engineering"
	color := "#AA00ff"
	settings, err := fx.service.Update(ctx, usecase.UpdateBrandingInput{
		PortalName:   &name,
		PrimaryColor: &color,
	})

	require.NoError(t, err)
	assert.Equal(t, "Faculty of Engineering", settings.PortalName)
	assert.Equal(t, "#AA00ff", settings.PrimaryColor)
	assert.Equal(t, "#2563eb", settings.AccentColor)
	assert.Equal(t, int64(4), settings.Version)
	assert.Equal(t, testNow, settings.UpdatedAt)
}

func TestBrandingService_Update_RejectsBadColor(t *testing.T) {
	tests := []struct {
		name  string
		color string
	}{
		{name: "missing hash", color: "2563eb"},
		{name: "short hex", color: "#25e"},
		{name: "not hex", color: "#25g3eb"},
		{name: "named color", color: "blue"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestBrandingService(t)

			ctx := context.Background()
			fx.brandingRepo.EXPECT().Get(ctx).Return(entity.DefaultBrandSettings(), nil)

			settings, err := fx.service.Update(ctx, usecase.UpdateBrandingInput{PrimaryColor: &tc.color})

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Nil(t, settings)
		})
	}
}

func TestBrandingService_Update_RejectsEmptyPortalName(t *testing.T) {
	fx := createTestBrandingService(t)

	ctx := context.Background()
	fx.brandingRepo.EXPECT().Get(ctx).Return(entity.DefaultBrandSettings(), nil)

	blank := "   "
	settings, err := fx.service.Update(ctx, usecase.UpdateBrandingInput{PortalName: &blank})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, settings)
}

func TestBrandingService_UploadLogo_StoresVersionedAsset(t *testing.T) {
	fx := createTestBrandingService(t)

	ctx := context.Background()
	stored := &entity.BrandSettings{PortalName: "Elective Portal", Version: 2}
	data := []byte("png-bytes")

	fx.brandingRepo.EXPECT().Get(ctx).Return(stored, nil)
	fx.assets.EXPECT().
		Put(ctx, "branding/logo-v3.png", "image/png", data).
		Return("assets/branding/logo-v3.png", nil)
	fx.brandingRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.BrandSettings")).
		Return(nil)

	settings, err := fx.service.UploadLogo(ctx, "image/png", data)

	require.NoError(t, err)
	assert.Equal(t, "assets/branding/logo-v3.png", settings.LogoPath)
	assert.Equal(t, int64(3), settings.Version)
}

func TestBrandingService_UploadLogo_RejectsBadUploads(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		data        []byte
	}{
		{name: "unsupported type", contentType: "image/gif", data: []byte("gif")},
		{name: "empty file", contentType: "image/png", data: nil},
		{name: "oversized file", contentType: "image/svg+xml", data: bytes.Repeat([]byte("a"), maxLogoBytes+1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestBrandingService(t)

			settings, err := fx.service.UploadLogo(context.Background(), tc.contentType, tc.data)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Nil(t, settings)
		})
	}
}
