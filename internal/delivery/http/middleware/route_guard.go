package middleware

import (
	"net/http"

	"epro/internal/delivery/http/session"
	"epro/internal/domain/entity"
	"epro/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RouteGuard protects server-rendered pages with the cookie session. Unlike
// the API middleware it never returns JSON errors; a browser is always
// redirected somewhere sensible.
type RouteGuard struct {
	sessions *session.Manager
	accounts usecase.AccountUsecase
}

// NewRouteGuard is the constructor for RouteGuard.
func NewRouteGuard(sessions *session.Manager, accounts usecase.AccountUsecase) *RouteGuard {
	return &RouteGuard{sessions: sessions, accounts: accounts}
}

// RequirePageRole admits only browsers whose stored role matches. The role in
// the cookie is a routing hint; the decision is made on the role re-read from
// storage. Visitors without a session go to the section's login page, and a
// logged-in browser on the wrong section is sent to its own dashboard.
func (g *RouteGuard) RequirePageRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profileID, _, ok := g.sessions.Login(c)
			if !ok {
				return c.Redirect(http.StatusFound, required.LoginPath())
			}

			resolved, err := g.accounts.ResolveRole(c.Request().Context(), profileID)
			if err != nil {
				// Unknown or deactivated profile: drop the session and start over.
				_ = g.sessions.Clear(c)

				return c.Redirect(http.StatusFound, required.LoginPath())
			}

			if resolved.Role != required {
				return c.Redirect(http.StatusFound, resolved.Role.DashboardPath())
			}

			return next(c)
		}
	}
}
