package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"epro/config"
	"epro/internal/delivery/http/session"
	"epro/internal/domain/entity"
	mockUsecase "epro/internal/mocks/usecase"
	"epro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// routeGuardFixtures holds all test dependencies for route guard tests.
type routeGuardFixtures struct {
	guard    *RouteGuard
	sessions *session.Manager
	accounts *mockUsecase.MockAccountUsecase
	echo     *echo.Echo
}

func createTestRouteGuard(t *testing.T) routeGuardFixtures {
	cfg := &config.Config{
		Session: &config.SessionConfig{AuthKey: "0123456789abcdef0123456789abcdef"},
	}
	sessions, err := session.NewManager(cfg)
	require.NoError(t, err)

	accounts := mockUsecase.NewMockAccountUsecase(t)

	return routeGuardFixtures{
		guard:    NewRouteGuard(sessions, accounts),
		sessions: sessions,
		accounts: accounts,
		echo:     echo.New(),
	}
}

// loginCookie runs a throwaway request through SetLogin and returns the
// resulting session cookie.
func (fx routeGuardFixtures) loginCookie(t *testing.T, profileID uuid.UUID, role entity.Role) string {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.sessions.SetLogin(c, profileID, role))

	cookie := rec.Header().Get("Set-Cookie")
	require.NotEmpty(t, cookie)

	return cookie
}

// serve runs a request through the guard with a trivial next handler.
func (fx routeGuardFixtures) serve(required entity.Role, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, required.DashboardPath(), nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "page")
	}
	_ = fx.guard.RequirePageRole(required)(next)(c)

	return rec
}

func TestRouteGuard_NoSessionRedirectsToLogin(t *testing.T) {
	fx := createTestRouteGuard(t)

	rec := fx.serve(entity.RoleStudent, "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/student/login", rec.Header().Get("Location"))
}

func TestRouteGuard_MatchingRolePassesThrough(t *testing.T) {
	fx := createTestRouteGuard(t)

	profileID := uuid.New()
	cookie := fx.loginCookie(t, profileID, entity.RoleStudent)

	fx.accounts.EXPECT().
		ResolveRole(mock.Anything, profileID).
		Return(&usecase.ResolvedRole{ProfileID: profileID, Role: entity.RoleStudent}, nil)

	rec := fx.serve(entity.RoleStudent, cookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "page", rec.Body.String())
}

func TestRouteGuard_WrongSectionRedirectsToOwnDashboard(t *testing.T) {
	fx := createTestRouteGuard(t)

	profileID := uuid.New()
	// Cookie says student, storage says program manager. Storage wins.
	cookie := fx.loginCookie(t, profileID, entity.RoleStudent)

	fx.accounts.EXPECT().
		ResolveRole(mock.Anything, profileID).
		Return(&usecase.ResolvedRole{ProfileID: profileID, Role: entity.RoleProgramManager}, nil)

	rec := fx.serve(entity.RoleStudent, cookie)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/manager/dashboard", rec.Header().Get("Location"))
}

func TestRouteGuard_DeactivatedProfileClearsSession(t *testing.T) {
	fx := createTestRouteGuard(t)

	profileID := uuid.New()
	cookie := fx.loginCookie(t, profileID, entity.RoleAdmin)

	fx.accounts.EXPECT().
		ResolveRole(mock.Anything, profileID).
		Return(nil, assert.AnError)

	rec := fx.serve(entity.RoleAdmin, cookie)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
	// The stale cookie must be expired so the browser drops it.
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}
