package impl

import (
	"context"
	"testing"

	"epro/internal/domain/entity"
	domainerrors "epro/internal/domain/errors"
	"epro/internal/domain/repository"
	mockRepo "epro/internal/mocks/repository"
	"epro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	svc := NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalogRepo,
		Loader:      newTestLoader(),
		Logger:      discardLogger(),
	})

	return catalogServiceFixtures{
		service:     svc,
		catalogRepo: catalogRepo,
	}
}

func TestCatalogService_ListCountries_UsesCache(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	countries := []*entity.Country{{Code: "NL", Name: "Netherlands"}, {Code: "SE", Name: "Sweden"}}

	// A single repository read serves both calls.
	fx.catalogRepo.EXPECT().ListCountries(ctx).Return(countries, nil).Once()

	first, err := fx.service.ListCountries(ctx)
	require.NoError(t, err)
	second, err := fx.service.ListCountries(ctx)
	require.NoError(t, err)

	assert.Equal(t, countries, first)
	assert.Equal(t, countries, second)
}

func TestCatalogService_ListCourses_DoesNotCacheFailures(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	courses := []*entity.Course{{ID: uuid.New(), Title: "Distributed Systems", Credits: 6}}

	fx.catalogRepo.EXPECT().ListCourses(ctx).Return(nil, assert.AnError).Once()
	fx.catalogRepo.EXPECT().ListCourses(ctx).Return(courses, nil).Once()

	first, err := fx.service.ListCourses(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
	assert.Nil(t, first)

	// The failure must not poison the cache: the retry reaches the repository.
	second, err := fx.service.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, courses, second)
}

func TestCatalogService_ListUniversities_UsesCache(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	universities := []*entity.University{{ID: uuid.New(), Name: "TU Delft", CountryCode: "NL", Seats: 3}}

	fx.catalogRepo.EXPECT().ListUniversities(ctx).Return(universities, nil).Once()

	first, err := fx.service.ListUniversities(ctx)
	require.NoError(t, err)
	second, err := fx.service.ListUniversities(ctx)
	require.NoError(t, err)

	assert.Equal(t, universities, first)
	assert.Equal(t, universities, second)
}

func TestCatalogService_GetGroup_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	group := &entity.Group{ID: uuid.New(), Name: "SE-2023"}

	fx.catalogRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil).Once()

	first, err := fx.service.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	second, err := fx.service.GetGroup(ctx, group.ID)
	require.NoError(t, err)

	assert.Equal(t, group, first)
	assert.Equal(t, group, second)
}

func TestCatalogService_GetGroup_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	groupID := uuid.New()

	fx.catalogRepo.EXPECT().FindGroupByID(ctx, groupID).Return(nil, repository.ErrGroupNotFound)

	group, err := fx.service.GetGroup(ctx, groupID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Nil(t, group)
}
