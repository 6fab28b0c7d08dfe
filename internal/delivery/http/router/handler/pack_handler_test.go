package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"epro/internal/delivery/http/middleware"
	"epro/internal/delivery/http/validator"
	"epro/internal/domain/entity"
	mockUsecase "epro/internal/mocks/usecase"
	"epro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// packHandlerFixtures holds all test dependencies for pack handler tests.
type packHandlerFixtures struct {
	handler *PackHandler
	packs   *mockUsecase.MockPackUsecase
	echo    *echo.Echo
}

func createTestPackHandler(t *testing.T) packHandlerFixtures {
	packs := mockUsecase.NewMockPackUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return packHandlerFixtures{
		handler: NewPackHandler(packs, logger),
		packs:   packs,
		echo:    e,
	}
}

func (fx packHandlerFixtures) jsonRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return fx.echo.NewContext(req, rec), rec
}

func TestPackHandler_Create_UsesAuthenticatedCreator(t *testing.T) {
	fx := createTestPackHandler(t)

	creatorID := uuid.New()
	groupID := uuid.New()
	itemID := uuid.New()
	pack := &entity.ElectivePack{ID: uuid.New(), Title: "Spring Electives", Status: entity.PackStatusDraft}

	fx.packs.EXPECT().
		Create(mock.Anything, creatorID, mock.AnythingOfType("usecase.CreatePackInput")).
		Run(func(ctx context.Context, gotCreator uuid.UUID, input usecase.CreatePackInput) {
			assert.Equal(t, "Spring Electives", input.Title)
			assert.Equal(t, entity.PackTypeCourse, input.Type)
			assert.Equal(t, []uuid.UUID{itemID}, input.ItemIDs)
		}).
		Return(pack, nil)

	body := `{"title":"Spring Electives","type":"course","groupId":"` + groupID.String() +
		`","itemIds":["` + itemID.String() + `"],"maxSelections":1,"deadline":"2026-09-01T12:00:00Z"}`
	c, rec := fx.jsonRequest(http.MethodPost, "/api/admin/packs", body)
	c.Set(middleware.KeyProfileID, creatorID)

	require.NoError(t, fx.handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPackHandler_ChangeStatus_InvalidID(t *testing.T) {
	fx := createTestPackHandler(t)

	c, rec := fx.jsonRequest(http.MethodPost, "/api/admin/packs/bogus/status", `{"status":"published"}`)
	c.SetParamNames("id")
	c.SetParamValues("bogus")

	require.NoError(t, fx.handler.ChangeStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPackHandler_Get_SerializesCamelCase(t *testing.T) {
	fx := createTestPackHandler(t)

	pack := &entity.ElectivePack{
		ID:            uuid.New(),
		Type:          entity.PackTypeExchange,
		Title:         "Autumn Exchange",
		GroupID:       uuid.New(),
		MaxSelections: 3,
		Status:        entity.PackStatusPublished,
		ItemIDs:       []uuid.UUID{uuid.New()},
	}

	fx.packs.EXPECT().Get(mock.Anything, pack.ID).Return(pack, nil)

	c, rec := fx.jsonRequest(http.MethodGet, "/api/student/packs/"+pack.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(pack.ID.String())

	require.NoError(t, fx.handler.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// Entities go over the wire in the same casing as the request DTOs.
	assert.Contains(t, rec.Body.String(), `"maxSelections":3`)
	assert.Contains(t, rec.Body.String(), `"itemIds"`)
	assert.Contains(t, rec.Body.String(), `"groupId"`)
	assert.NotContains(t, rec.Body.String(), `"ItemIDs"`)
}

func TestPackHandler_ShareQRCode_ServesPNG(t *testing.T) {
	fx := createTestPackHandler(t)

	packID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.packs.EXPECT().ShareQRCode(mock.Anything, packID).Return(png, nil)

	c, rec := fx.jsonRequest(http.MethodGet, "/api/admin/packs/"+packID.String()+"/qrcode", "")
	c.SetParamNames("id")
	c.SetParamValues(packID.String())

	require.NoError(t, fx.handler.ShareQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
