package handler

import (
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

// selectionHandlerFixtures holds all test dependencies for selection handler tests.
type selectionHandlerFixtures struct {
	handler    *SelectionHandler
	selections *mockUsecase.MockSelectionUsecase
	echo       *echo.Echo
}

func createTestSelectionHandler(t *testing.T) selectionHandlerFixtures {
	selections := mockUsecase.NewMockSelectionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return selectionHandlerFixtures{
		handler:    NewSelectionHandler(selections, logger),
		selections: selections,
		echo:       e,
	}
}

func (fx selectionHandlerFixtures) jsonRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return fx.echo.NewContext(req, rec), rec
}

func TestSelectionHandler_Submit_ForwardsOrderedItems(t *testing.T) {
	fx := createTestSelectionHandler(t)

	studentID := uuid.New()
	packID := uuid.New()
	first := uuid.New()
	second := uuid.New()
	created := &entity.Selection{ID: uuid.New(), Status: entity.SelectionStatusPending}

	fx.selections.EXPECT().
		Submit(mock.Anything, studentID, usecase.SubmitSelectionInput{
			PackID:  packID,
			ItemIDs: []uuid.UUID{first, second},
		}).
		Return(created, nil)

	body := `{"packId":"` + packID.String() + `","itemIds":["` + first.String() + `","` + second.String() + `"]}`
	c, rec := fx.jsonRequest(http.MethodPost, "/api/student/selections", body)
	c.Set(middleware.KeyProfileID, studentID)

	require.NoError(t, fx.handler.Submit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSelectionHandler_Submit_WithoutSubject(t *testing.T) {
	fx := createTestSelectionHandler(t)

	c, rec := fx.jsonRequest(http.MethodPost, "/api/student/selections", `{}`)

	require.NoError(t, fx.handler.Submit(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSelectionHandler_Decide_ForwardsDecision(t *testing.T) {
	fx := createTestSelectionHandler(t)

	reviewerID := uuid.New()
	selectionID := uuid.New()
	decided := &entity.Selection{ID: selectionID, Status: entity.SelectionStatusRejected}

	fx.selections.EXPECT().
		Decide(mock.Anything, reviewerID, usecase.DecideSelectionInput{
			SelectionID: selectionID,
			Approve:     false,
			Comment:     "quota reached",
		}).
		Return(decided, nil)

	c, rec := fx.jsonRequest(http.MethodPost, "/api/manager/selections/"+selectionID.String()+"/decision",
		`{"approve":false,"comment":"quota reached"}`)
	c.Set(middleware.KeyProfileID, reviewerID)
	c.SetParamNames("id")
	c.SetParamValues(selectionID.String())

	require.NoError(t, fx.handler.Decide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rejected")
}
