package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"epro/internal/delivery/http/validator"
	"epro/internal/domain/entity"
	mockUsecase "epro/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogHandlerFixtures holds all test dependencies for catalog handler tests.
type catalogHandlerFixtures struct {
	handler *CatalogHandler
	catalog *mockUsecase.MockCatalogUsecase
	echo    *echo.Echo
}

func createTestCatalogHandler(t *testing.T) catalogHandlerFixtures {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return catalogHandlerFixtures{
		handler: NewCatalogHandler(catalog, logger),
		catalog: catalog,
		echo:    e,
	}
}

func (fx catalogHandlerFixtures) getRequest(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return fx.echo.NewContext(req, rec), rec
}

func TestCatalogHandler_ListCourses_FiltersByDegree(t *testing.T) {
	fx := createTestCatalogHandler(t)

	wantedDegree := uuid.New()
	otherDegree := uuid.New()
	courses := []*entity.Course{
		{ID: uuid.New(), Title: "Distributed Systems", DegreeID: wantedDegree},
		{ID: uuid.New(), Title: "Art History", DegreeID: otherDegree},
	}

	fx.catalog.EXPECT().ListCourses(mock.Anything).Return(courses, nil)

	c, rec := fx.getRequest("/api/catalog/courses?degreeId=" + wantedDegree.String())

	require.NoError(t, fx.handler.ListCourses(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Distributed Systems")
	assert.NotContains(t, rec.Body.String(), "Art History")
}

func TestCatalogHandler_ListCourses_LocalizedTitleFallsBack(t *testing.T) {
	fx := createTestCatalogHandler(t)

	courses := []*entity.Course{
		{ID: uuid.New(), Title: "Databases", TitleLocal: "", DegreeID: uuid.New()},
		{ID: uuid.New(), Title: "Algorithms", TitleLocal: "Algoritmer", DegreeID: uuid.New()},
	}

	fx.catalog.EXPECT().ListCourses(mock.Anything).Return(courses, nil)

	c, rec := fx.getRequest("/api/catalog/courses")

	require.NoError(t, fx.handler.ListCourses(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// A missing localized title is served as the default-language title.
	assert.Contains(t, rec.Body.String(), `"titleLocal":"Databases"`)
	assert.Contains(t, rec.Body.String(), `"titleLocal":"Algoritmer"`)
}

func TestCatalogHandler_ListUniversities_LocalizedNameFallsBack(t *testing.T) {
	fx := createTestCatalogHandler(t)

	universities := []*entity.University{
		{ID: uuid.New(), Name: "KTH", NameLocal: "", CountryCode: "SE"},
	}

	fx.catalog.EXPECT().ListUniversities(mock.Anything).Return(universities, nil)

	c, rec := fx.getRequest("/api/catalog/universities")

	require.NoError(t, fx.handler.ListUniversities(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nameLocal":"KTH"`)
}

func TestCatalogHandler_ListCourses_RejectsBadDegreeID(t *testing.T) {
	fx := createTestCatalogHandler(t)

	fx.catalog.EXPECT().ListCourses(mock.Anything).Return(nil, nil)

	c, rec := fx.getRequest("/api/catalog/courses?degreeId=bogus")

	require.NoError(t, fx.handler.ListCourses(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogHandler_ListUniversities_FiltersByCountry(t *testing.T) {
	fx := createTestCatalogHandler(t)

	universities := []*entity.University{
		{ID: uuid.New(), Name: "KTH", CountryCode: "SE"},
		{ID: uuid.New(), Name: "NUS", CountryCode: "SG"},
	}

	fx.catalog.EXPECT().ListUniversities(mock.Anything).Return(universities, nil)

	c, rec := fx.getRequest("/api/catalog/universities?country=SE")

	require.NoError(t, fx.handler.ListUniversities(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "KTH")
	assert.NotContains(t, rec.Body.String(), "NUS")
}

func TestCatalogHandler_ListUniversities_NoFilterReturnsAll(t *testing.T) {
	fx := createTestCatalogHandler(t)

	universities := []*entity.University{
		{ID: uuid.New(), Name: "KTH", CountryCode: "SE"},
		{ID: uuid.New(), Name: "NUS", CountryCode: "SG"},
	}

	fx.catalog.EXPECT().ListUniversities(mock.Anything).Return(universities, nil)

	c, rec := fx.getRequest("/api/catalog/universities")

	require.NoError(t, fx.handler.ListUniversities(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "KTH")
	assert.Contains(t, rec.Body.String(), "NUS")
}
