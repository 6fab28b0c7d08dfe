package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"epro/internal/cache"
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

// stubClock pins time for deterministic deadline and decision checks.
type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time { return c.now }

var testNow = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestLoader() *cache.Loader {
	return cache.NewLoader(cache.NewMemoryStore(time.Minute, cache.WithClock(stubClock{now: testNow})))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// selectionServiceFixtures holds all test dependencies for selection service tests.
type selectionServiceFixtures struct {
	service       usecase.SelectionUsecase
	txManager     *mockRepo.MockTransactionManager
	selectionRepo *mockRepo.MockSelectionRepository
	packRepo      *mockRepo.MockPackRepository
	profileRepo   *mockRepo.MockProfileRepository
	mailer        *mockSvc.MockMailer
}

func createTestSelectionService(t *testing.T) selectionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	selectionRepo := mockRepo.NewMockSelectionRepository(t)
	packRepo := mockRepo.NewMockPackRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	mailer := mockSvc.NewMockMailer(t)

	svc := NewSelectionService(SelectionServiceParams{
		TxManager:     txManager,
		SelectionRepo: selectionRepo,
		PackRepo:      packRepo,
		ProfileRepo:   profileRepo,
		Loader:        newTestLoader(),
		Mailer:        mailer,
		Clock:         stubClock{now: testNow},
		Logger:        discardLogger(),
	})

	return selectionServiceFixtures{
		service:       svc,
		txManager:     txManager,
		selectionRepo: selectionRepo,
		packRepo:      packRepo,
		profileRepo:   profileRepo,
		mailer:        mailer,
	}
}

// openPack returns a published pack whose deadline has not passed, and a
// student who belongs to the pack's group.
func openPack() (*entity.ElectivePack, *entity.Profile) {
	groupID := uuid.New()
	pack := &entity.ElectivePack{
		ID:            uuid.New(),
		Type:          entity.PackTypeExchange,
		Title:         "Autumn Exchange",
		GroupID:       groupID,
		Deadline:      testNow.Add(24 * time.Hour),
		MaxSelections: 3,
		Status:        entity.PackStatusPublished,
		ItemIDs:       []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()},
	}
	student := &entity.Profile{
		ID:       uuid.New(),
		Email:    "student@example.com",
		FullName: "Test Student",
		Role:     entity.RoleStudent,
		IsActive: true,
		GroupID:  &groupID,
	}

	return pack, student
}

func TestSelectionService_Submit_PreservesItemOrder(t *testing.T) {
	fx := createTestSelectionService(t)

	ctx := context.Background()
	pack, student := openPack()

	// Submit in reverse pack order; the stored selection must keep it.
	itemIDs := []uuid.UUID{pack.ItemIDs[2], pack.ItemIDs[0], pack.ItemIDs[3]}

	fx.packRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSelectionRepo := mockRepo.NewMockSelectionRepository(t)

			mockFactory.EXPECT().SelectionRepo().Return(mockSelectionRepo)
			mockSelectionRepo.EXPECT().
				FindByStudentAndPack(ctx, student.ID, pack.ID).
				Return(nil, repository.ErrSelectionNotFound)
			mockSelectionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Selection")).
				Run(func(ctx context.Context, selection *entity.Selection) {
					assert.Equal(t, itemIDs, selection.ItemIDs)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	selection, err := fx.service.Submit(ctx, student.ID, usecase.SubmitSelectionInput{PackID: pack.ID, ItemIDs: itemIDs})

	require.NoError(t, err)
	assert.Equal(t, itemIDs, selection.ItemIDs)
	assert.Equal(t, entity.SelectionStatusPending, selection.Status)
}

func TestSelectionService_Submit_TooManyItems(t *testing.T) {
	fx := createTestSelectionService(t)

	ctx := context.Background()
	pack, student := openPack()

	fx.packRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)

	// Four items against a cap of three. No write may happen.
	selection, err := fx.service.Submit(ctx, student.ID, usecase.SubmitSelectionInput{
		PackID:  pack.ID,
		ItemIDs: pack.ItemIDs,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSelectionLimit)
	assert.Nil(t, selection)
}

func TestSelectionService_Submit_ItemOutsidePack(t *testing.T) {
	fx := createTestSelectionService(t)

	ctx := context.Background()
	pack, student := openPack()

	fx.packRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)

	selection, err := fx.service.Submit(ctx, student.ID, usecase.SubmitSelectionInput{
		PackID:  pack.ID,
		ItemIDs: []uuid.UUID{uuid.New()},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, selection)
}

func TestSelectionService_Submit_DuplicateItems(t *testing.T) {
	fx := createTestSelectionService(t)

	ctx := context.Background()
	pack, student := openPack()

	fx.packRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)

	selection, err := fx.service.Submit(ctx, student.ID, usecase.SubmitSelectionInput{
		PackID:  pack.ID,
		ItemIDs: []uuid.UUID{pack.ItemIDs[0], pack.ItemIDs[0]},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, selection)
}

func TestSelectionService_Submit_PackClosed(t *testing.T) {
	fx := createTestSelectionService(t)

	ctx := context.Background()
	pack, student := openPack()
	pack.Deadline = testNow.Add(-time.Hour)

	fx.packRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)

	selection, err := fx.service.Submit(ctx, student.ID, usecase.SubmitSelectionInput{
		PackID:  pack.ID,
		ItemIDs: []uuid.UUID{pack.ItemIDs[0]},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPackNotOpen)
	assert.Nil(t, selection)
}

func TestSelectionService_Submit_WrongGroup(t *testing.T) {
	fx := createTestSelectionService(t)

	ctx := context.Background()
	pack, student := openPack()
	otherGroup := uuid.New()
	student.GroupID = &otherGroup

	fx.packRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)

	selection, err := fx.service.Submit(ctx, student.ID, usecase.SubmitSelectionInput{
		PackID:  pack.ID,
		ItemIDs: []uuid.UUID{pack.ItemIDs[0]},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, selection)
}

func TestSelectionService_Submit_AlreadySubmitted(t *testing.T) {
	fx := createTestSelectionService(t)

	ctx := context.Background()
	pack, student := openPack()

	fx.packRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSelectionRepo := mockRepo.NewMockSelectionRepository(t)

			mockFactory.EXPECT().SelectionRepo().Return(mockSelectionRepo)
			mockSelectionRepo.EXPECT().
				FindByStudentAndPack(ctx, student.ID, pack.ID).
				Return(&entity.Selection{ID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	selection, err := fx.service.Submit(ctx, student.ID, usecase.SubmitSelectionInput{
		PackID:  pack.ID,
		ItemIDs: []uuid.UUID{pack.ItemIDs[0]},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
	assert.Nil(t, selection)
}

func TestSelectionService_Decide_Approves(t *testing.T) {
	fx := createTestSelectionService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	student := &entity.Profile{ID: uuid.New(), Email: "student@example.com", FullName: "Test Student"}
	pending := &entity.Selection{
		ID:        uuid.New(),
		StudentID: student.ID,
		PackID:    uuid.New(),
		ItemIDs:   []uuid.UUID{uuid.New()},
		Status:    entity.SelectionStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSelectionRepo := mockRepo.NewMockSelectionRepository(t)

			mockFactory.EXPECT().SelectionRepo().Return(mockSelectionRepo)
			mockSelectionRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
			mockSelectionRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Selection")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.profileRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)

	sent := make(chan struct{}, 1)
	fx.mailer.EXPECT().
		Send(mock.Anything, student.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(ctx context.Context, to, subject, body string) {
			sent <- struct{}{}
		}).
		Return(nil)

	decided, err := fx.service.Decide(ctx, reviewerID, usecase.DecideSelectionInput{
		SelectionID: pending.ID,
		Approve:     true,
		Comment:     "welcome aboard",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SelectionStatusApproved, decided.Status)
	assert.Equal(t, "welcome aboard", decided.Comment)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, reviewerID, *decided.DecidedBy)
	require.NotNil(t, decided.DecidedAt)
	assert.Equal(t, testNow, *decided.DecidedAt)

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("decision mail was not sent")
	}
}

func TestSelectionService_Decide_AlreadyDecided(t *testing.T) {
	fx := createTestSelectionService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	approved := &entity.Selection{
		ID:        uuid.New(),
		StudentID: uuid.New(),
		Status:    entity.SelectionStatusApproved,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSelectionRepo := mockRepo.NewMockSelectionRepository(t)

			mockFactory.EXPECT().SelectionRepo().Return(mockSelectionRepo)
			mockSelectionRepo.EXPECT().FindByID(ctx, approved.ID).Return(approved, nil)

			return fn(mockFactory)
		})

	decided, err := fx.service.Decide(ctx, reviewerID, usecase.DecideSelectionInput{
		SelectionID: approved.ID,
		Approve:     false,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSelectionDecided)
	assert.Nil(t, decided)
	// The terminal selection must not have been touched.
	assert.Equal(t, entity.SelectionStatusApproved, approved.Status)
	assert.Nil(t, approved.DecidedBy)
}

func TestSelectionService_Decide_InvalidatesStudentCache(t *testing.T) {
	fx := createTestSelectionService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	student := &entity.Profile{ID: uuid.New(), Email: "student@example.com", FullName: "Test Student"}
	pending := &entity.Selection{
		ID:        uuid.New(),
		StudentID: student.ID,
		PackID:    uuid.New(),
		ItemIDs:   []uuid.UUID{uuid.New()},
		Status:    entity.SelectionStatusPending,
	}

	// The student's dashboard list must be refetched after a decision, so
	// each ListMine around the decision hits the repository.
	fx.selectionRepo.EXPECT().
		ListByStudent(ctx, student.ID).
		Return([]*entity.Selection{pending}, nil).
		Twice()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSelectionRepo := mockRepo.NewMockSelectionRepository(t)

			mockFactory.EXPECT().SelectionRepo().Return(mockSelectionRepo)
			mockSelectionRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
			mockSelectionRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Selection")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.profileRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)

	sent := make(chan struct{}, 1)
	fx.mailer.EXPECT().
		Send(mock.Anything, student.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(ctx context.Context, to, subject, body string) {
			sent <- struct{}{}
		}).
		Return(nil)

	_, err := fx.service.ListMine(ctx, student.ID)
	require.NoError(t, err)

	_, err = fx.service.Decide(ctx, reviewerID, usecase.DecideSelectionInput{
		SelectionID: pending.ID,
		Approve:     true,
	})
	require.NoError(t, err)

	_, err = fx.service.ListMine(ctx, student.ID)
	require.NoError(t, err)

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("decision mail was not sent")
	}
}

func TestSelectionService_ListMine_UsesCache(t *testing.T) {
	fx := createTestSelectionService(t)

	ctx := context.Background()
	studentID := uuid.New()
	selections := []*entity.Selection{{ID: uuid.New(), StudentID: studentID}}

	// A single repository read serves both calls.
	fx.selectionRepo.EXPECT().ListByStudent(ctx, studentID).Return(selections, nil).Once()

	first, err := fx.service.ListMine(ctx, studentID)
	require.NoError(t, err)
	second, err := fx.service.ListMine(ctx, studentID)
	require.NoError(t, err)

	assert.Equal(t, selections, first)
	assert.Equal(t, selections, second)
}

func TestSelectionService_ListPending_ReadsFresh(t *testing.T) {
	fx := createTestSelectionService(t)

	ctx := context.Background()
	managerID := uuid.New()
	pending := []*entity.Selection{{ID: uuid.New(), Status: entity.SelectionStatusPending}}

	// The review queue bypasses the cache: both calls hit the repository.
	fx.selectionRepo.EXPECT().ListPending(ctx).Return(pending, nil).Twice()

	first, err := fx.service.ListPending(ctx, managerID)
	require.NoError(t, err)
	second, err := fx.service.ListPending(ctx, managerID)
	require.NoError(t, err)

	assert.Equal(t, pending, first)
	assert.Equal(t, pending, second)
}
