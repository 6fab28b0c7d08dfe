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

// accountHandlerFixtures holds all test dependencies for account handler tests.
type accountHandlerFixtures struct {
	handler  *AccountHandler
	accounts *mockUsecase.MockAccountUsecase
	echo     *echo.Echo
}

func createTestAccountHandler(t *testing.T) accountHandlerFixtures {
	accounts := mockUsecase.NewMockAccountUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return accountHandlerFixtures{
		handler:  NewAccountHandler(accounts, logger),
		accounts: accounts,
		echo:     e,
	}
}

func (fx accountHandlerFixtures) jsonRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return fx.echo.NewContext(req, rec), rec
}

func TestAccountHandler_Register_Success(t *testing.T) {
	fx := createTestAccountHandler(t)

	groupID := uuid.New()
	profile := &entity.Profile{
		ID:       uuid.New(),
		Email:    "student@example.com",
		FullName: "Test Student",
		Role:     entity.RoleStudent,
		IsActive: true,
		GroupID:  &groupID,
	}

	fx.accounts.EXPECT().
		RegisterStudent(mock.Anything, usecase.RegisterStudentInput{
			Email:    "student@example.com",
			FullName: "Test Student",
			Password: "Str0ng-Passw0rd",
			GroupID:  groupID,
		}).
		Return(&usecase.RegisterOutput{Profile: profile}, nil)

	body := `{"email":"student@example.com","fullName":"Test Student","password":"Str0ng-Passw0rd","groupId":"` + groupID.String() + `"}`
	c, rec := fx.jsonRequest(http.MethodPost, "/api/auth/register", body)

	require.NoError(t, fx.handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "student@example.com")
	assert.NotContains(t, rec.Body.String(), "Str0ng-Passw0rd")
}

func TestAccountHandler_Register_RejectsBadEmail(t *testing.T) {
	fx := createTestAccountHandler(t)

	body := `{"email":"not-an-email","fullName":"Test Student","password":"x","groupId":"` + uuid.NewString() + `"}`
	c, _ := fx.jsonRequest(http.MethodPost, "/api/auth/register", body)

	err := fx.handler.Register(c)

	// Validation failures surface as echo HTTP errors for the error handler.
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAccountHandler_Login_ReturnsTokens(t *testing.T) {
	fx := createTestAccountHandler(t)

	profile := &entity.Profile{ID: uuid.New(), Email: "admin@example.com", Role: entity.RoleAdmin, IsActive: true}

	fx.accounts.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "admin@example.com", Password: "secret"}).
		Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", Profile: profile}, nil)

	c, rec := fx.jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"secret"}`)

	require.NoError(t, fx.handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"access"`)
	assert.Contains(t, rec.Body.String(), `"refreshToken":"refresh"`)
}

func TestAccountHandler_CheckRole_ReturnsStoredRole(t *testing.T) {
	fx := createTestAccountHandler(t)

	profileID := uuid.New()

	fx.accounts.EXPECT().
		ResolveRole(mock.Anything, profileID).
		Return(&usecase.ResolvedRole{ProfileID: profileID, Role: entity.RoleProgramManager}, nil)

	c, rec := fx.jsonRequest(http.MethodPost, "/api/auth/check-role", `{"userId":"`+profileID.String()+`"}`)
	c.Set(middleware.KeyProfileID, profileID)

	require.NoError(t, fx.handler.CheckRole(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"program_manager"`)
}

func TestAccountHandler_CheckRole_RejectsMismatchedSubject(t *testing.T) {
	fx := createTestAccountHandler(t)

	c, rec := fx.jsonRequest(http.MethodPost, "/api/auth/check-role", `{"userId":"`+uuid.NewString()+`"}`)
	c.Set(middleware.KeyProfileID, uuid.New())

	require.NoError(t, fx.handler.CheckRole(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAccountHandler_Me_ReturnsOwnProfile(t *testing.T) {
	fx := createTestAccountHandler(t)

	profile := &entity.Profile{ID: uuid.New(), Email: "me@example.com", Role: entity.RoleStudent, IsActive: true}

	fx.accounts.EXPECT().
		GetProfile(mock.Anything, profile.ID).
		Return(profile, nil)

	c, rec := fx.jsonRequest(http.MethodGet, "/api/me", "")
	c.Set(middleware.KeyProfileID, profile.ID)

	require.NoError(t, fx.handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "me@example.com")
}

func TestAccountHandler_Me_WithoutSubject(t *testing.T) {
	fx := createTestAccountHandler(t)

	c, rec := fx.jsonRequest(http.MethodGet, "/api/me", "")

	require.NoError(t, fx.handler.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountHandler_SetAccountActive_InvalidID(t *testing.T) {
	fx := createTestAccountHandler(t)

	c, rec := fx.jsonRequest(http.MethodPatch, "/api/admin/accounts/nope/active", `{"active":false}`)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, fx.handler.SetAccountActive(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
