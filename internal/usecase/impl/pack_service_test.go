package impl

import (
	"context"
	"testing"
	"time"

	"epro/config"
	"epro/internal/domain/entity"
	domainerrors "epro/internal/domain/errors"
	"epro/internal/domain/repository"
	mockRepo "epro/internal/mocks/repository"
	mockSvc "epro/internal/mocks/service"
	"epro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// packServiceFixtures holds all test dependencies for pack service tests.
type packServiceFixtures struct {
	service     usecase.PackUsecase
	txManager   *mockRepo.MockTransactionManager
	packRepo    *mockRepo.MockPackRepository
	profileRepo *mockRepo.MockProfileRepository
	qrService   *mockSvc.MockQRCodeService
}

func createTestPackService(t *testing.T) packServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	packRepo := mockRepo.NewMockPackRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	cfg := &config.Config{}
	cfg.HTTP.BaseURL = "https://portal.example.com/"

	svc := NewPackService(PackServiceParams{
		TxManager:   txManager,
		PackRepo:    packRepo,
		ProfileRepo: profileRepo,
		QRService:   qrService,
		Loader:      newTestLoader(),
		Clock:       stubClock{now: testNow},
		Config:      cfg,
		Logger:      discardLogger(),
	})

	return packServiceFixtures{
		service:     svc,
		txManager:   txManager,
		packRepo:    packRepo,
		profileRepo: profileRepo,
		qrService:   qrService,
	}
}

func validCreateInput() usecase.CreatePackInput {
	return usecase.CreatePackInput{
		Title:         "Spring Electives",
		Description:   "Third semester electives",
		Type:          entity.PackTypeCourse,
		GroupID:       uuid.New(),
		ItemIDs:       []uuid.UUID{uuid.New(), uuid.New()},
		MaxSelections: 2,
		Deadline:      testNow.Add(14 * 24 * time.Hour),
	}
}

func TestPackService_Create_StartsAsDraft(t *testing.T) {
	fx := createTestPackService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	input := validCreateInput()

	fx.packRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ElectivePack")).
		Return(nil)

	pack, err := fx.service.Create(ctx, creatorID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.PackStatusDraft, pack.Status)
	assert.Equal(t, creatorID, pack.CreatedBy)
	assert.Equal(t, input.ItemIDs, pack.ItemIDs)
}

func TestPackService_Create_Validation(t *testing.T) {
	duplicateItem := uuid.New()

	tests := []struct {
		name   string
		mutate func(input *usecase.CreatePackInput)
	}{
		{
			name:   "empty title",
			mutate: func(input *usecase.CreatePackInput) { input.Title = "   " },
		},
		{
			name:   "unknown type",
			mutate: func(input *usecase.CreatePackInput) { input.Type = entity.PackType("seminar") },
		},
		{
			name:   "no items",
			mutate: func(input *usecase.CreatePackInput) { input.ItemIDs = nil },
		},
		{
			name: "duplicate items",
			mutate: func(input *usecase.CreatePackInput) {
				input.ItemIDs = []uuid.UUID{duplicateItem, duplicateItem}
			},
		},
		{
			name:   "zero selection limit",
			mutate: func(input *usecase.CreatePackInput) { input.MaxSelections = 0 },
		},
		{
			name:   "limit above item count",
			mutate: func(input *usecase.CreatePackInput) { input.MaxSelections = 3 },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestPackService(t)

			input := validCreateInput()
			tc.mutate(&input)

			pack, err := fx.service.Create(context.Background(), uuid.New(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Nil(t, pack)
		})
	}
}

func TestPackService_Update_DraftOnly(t *testing.T) {
	fx := createTestPackService(t)

	ctx := context.Background()
	published := &entity.ElectivePack{
		ID:            uuid.New(),
		Title:         "Locked",
		Type:          entity.PackTypeCourse,
		ItemIDs:       []uuid.UUID{uuid.New()},
		MaxSelections: 1,
		Status:        entity.PackStatusPublished,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPackRepo := mockRepo.NewMockPackRepository(t)

			mockFactory.EXPECT().PackRepo().Return(mockPackRepo)
			mockPackRepo.EXPECT().FindByID(ctx, published.ID).Return(published, nil)

			return fn(mockFactory)
		})

	newTitle := "Still Locked"
	pack, err := fx.service.Update(ctx, published.ID, usecase.UpdatePackInput{Title: &newTitle})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPackTransition)
	assert.Nil(t, pack)
}

func TestPackService_Update_EditsDraft(t *testing.T) {
	fx := createTestPackService(t)

	ctx := context.Background()
	draft := &entity.ElectivePack{
		ID:            uuid.New(),
		Title:         "Working Title",
		Type:          entity.PackTypeCourse,
		ItemIDs:       []uuid.UUID{uuid.New(), uuid.New()},
		MaxSelections: 1,
		Status:        entity.PackStatusDraft,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPackRepo := mockRepo.NewMockPackRepository(t)

			mockFactory.EXPECT().PackRepo().Return(mockPackRepo)
			mockPackRepo.EXPECT().FindByID(ctx, draft.ID).Return(draft, nil)
			mockPackRepo.EXPECT().Update(ctx, draft).Return(nil)

			return fn(mockFactory)
		})

	newTitle := "  Final Title  "
	newLimit := 2
	pack, err := fx.service.Update(ctx, draft.ID, usecase.UpdatePackInput{
		Title:         &newTitle,
		MaxSelections: &newLimit,
	})

	require.NoError(t, err)
	assert.Equal(t, "Final Title", pack.Title)
	assert.Equal(t, 2, pack.MaxSelections)
}

func TestPackService_ChangeStatus_PublishesDraft(t *testing.T) {
	fx := createTestPackService(t)

	ctx := context.Background()
	draft := &entity.ElectivePack{
		ID:            uuid.New(),
		Title:         "Ready",
		Type:          entity.PackTypeCourse,
		ItemIDs:       []uuid.UUID{uuid.New()},
		MaxSelections: 1,
		Status:        entity.PackStatusDraft,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPackRepo := mockRepo.NewMockPackRepository(t)

			mockFactory.EXPECT().PackRepo().Return(mockPackRepo)
			mockPackRepo.EXPECT().FindByID(ctx, draft.ID).Return(draft, nil)
			mockPackRepo.EXPECT().UpdateStatus(ctx, draft.ID, entity.PackStatusPublished).Return(nil)

			return fn(mockFactory)
		})

	pack, err := fx.service.ChangeStatus(ctx, draft.ID, entity.PackStatusPublished)

	require.NoError(t, err)
	assert.Equal(t, entity.PackStatusPublished, pack.Status)
}

func TestPackService_ChangeStatus_RejectsIllegalTransition(t *testing.T) {
	fx := createTestPackService(t)

	ctx := context.Background()
	archived := &entity.ElectivePack{
		ID:     uuid.New(),
		Status: entity.PackStatusArchived,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPackRepo := mockRepo.NewMockPackRepository(t)

			mockFactory.EXPECT().PackRepo().Return(mockPackRepo)
			mockPackRepo.EXPECT().FindByID(ctx, archived.ID).Return(archived, nil)

			return fn(mockFactory)
		})

	pack, err := fx.service.ChangeStatus(ctx, archived.ID, entity.PackStatusPublished)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPackTransition)
	assert.Nil(t, pack)
}

func TestPackService_ListForStudent_RequiresGroup(t *testing.T) {
	fx := createTestPackService(t)

	ctx := context.Background()
	studentID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, studentID).
		Return(&entity.Profile{ID: studentID, Role: entity.RoleStudent, IsActive: true}, nil)

	packs, err := fx.service.ListForStudent(ctx, studentID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, packs)
}

func TestPackService_ListForStudent_UsesCache(t *testing.T) {
	fx := createTestPackService(t)

	ctx := context.Background()
	groupID := uuid.New()
	student := &entity.Profile{ID: uuid.New(), Role: entity.RoleStudent, IsActive: true, GroupID: &groupID}
	published := []*entity.ElectivePack{{ID: uuid.New(), Status: entity.PackStatusPublished, GroupID: groupID}}

	fx.profileRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil).Twice()
	fx.packRepo.EXPECT().
		ListByGroup(ctx, groupID, []entity.PackStatus{entity.PackStatusPublished}).
		Return(published, nil).
		Once()

	first, err := fx.service.ListForStudent(ctx, student.ID)
	require.NoError(t, err)
	second, err := fx.service.ListForStudent(ctx, student.ID)
	require.NoError(t, err)

	assert.Equal(t, published, first)
	assert.Equal(t, published, second)
}

func TestPackService_Get_NotFound(t *testing.T) {
	fx := createTestPackService(t)

	ctx := context.Background()
	packID := uuid.New()

	fx.packRepo.EXPECT().FindByID(ctx, packID).Return(nil, repository.ErrPackNotFound)

	pack, err := fx.service.Get(ctx, packID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPackNotFound)
	assert.Nil(t, pack)
}

func TestPackService_ShareQRCode_EncodesPackURL(t *testing.T) {
	fx := createTestPackService(t)

	ctx := context.Background()
	pack := &entity.ElectivePack{ID: uuid.New(), Status: entity.PackStatusPublished}
	wantPNG := []byte{0x89, 'P', 'N', 'G'}

	fx.packRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.qrService.EXPECT().
		GeneratePNG("https://portal.example.com/packs/"+pack.ID.String()).
		Return(wantPNG, nil)

	png, err := fx.service.ShareQRCode(ctx, pack.ID)

	require.NoError(t, err)
	assert.Equal(t, wantPNG, png)
}
