package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"epro/config"
	"epro/internal/delivery/http/session"
	"epro/internal/domain/entity"
	mockUsecase "epro/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageHandlerFixtures holds all test dependencies for page handler tests.
type pageHandlerFixtures struct {
	handler  *PageHandler
	accounts *mockUsecase.MockAccountUsecase
	branding *mockUsecase.MockBrandingUsecase
	echo     *echo.Echo
}

func createTestPageHandler(t *testing.T) pageHandlerFixtures {
	cfg := &config.Config{
		Session: &config.SessionConfig{AuthKey: "0123456789abcdef0123456789abcdef"},
	}
	sessions, err := session.NewManager(cfg)
	require.NoError(t, err)

	accounts := mockUsecase.NewMockAccountUsecase(t)
	branding := mockUsecase.NewMockBrandingUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return pageHandlerFixtures{
		handler:  NewPageHandler(accounts, branding, sessions, logger),
		accounts: accounts,
		branding: branding,
		echo:     echo.New(),
	}
}

func (fx pageHandlerFixtures) getRequest(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return fx.echo.NewContext(req, rec), rec
}

func TestPageHandler_SectionRedirect_BarePrefixes(t *testing.T) {
	fx := createTestPageHandler(t)

	tests := []struct {
		target   string
		role     entity.Role
		location string
	}{
		{"/student", entity.RoleStudent, "/student/login"},
		{"/manager", entity.RoleProgramManager, "/manager/login"},
		{"/admin", entity.RoleAdmin, "/admin/login"},
	}

	for _, tt := range tests {
		c, rec := fx.getRequest(tt.target)

		require.NoError(t, fx.handler.SectionRedirect(tt.role)(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code, tt.target)
		assert.Equal(t, tt.location, rec.Header().Get("Location"), tt.target)
	}
}

func TestPageHandler_SectionRedirect_RootLandsOnStudentLogin(t *testing.T) {
	fx := createTestPageHandler(t)

	c, rec := fx.getRequest("/")

	require.NoError(t, fx.handler.SectionRedirect(entity.RoleStudent)(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/student/login", rec.Header().Get("Location"))
}
