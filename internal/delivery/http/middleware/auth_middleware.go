package middleware

import (
	"strings"

	"epro/internal/delivery/http/response"
	"epro/internal/domain/entity"
	"epro/internal/domain/service"
	"epro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	KeyProfileID = "profileID"
	KeyRole      = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
// The token only proves who the caller is; what they may do is re-read from
// storage on every guarded request.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	accounts usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, accounts usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, accounts: accounts}
}

// Authenticate validates the JWT access token and stores the subject on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(KeyProfileID, claims.ProfileID)

		return next(c)
	}
}

// RequireRole is a middleware factory that admits only the given roles.
// It must be used AFTER the Authenticate middleware. The decision is made on
// the role currently in storage, never on the token's role claim, so a missing
// or deactivated profile is always rejected.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profileID, ok := c.Get(KeyProfileID).(uuid.UUID)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Subject missing from request")
			}

			resolved, err := m.accounts.ResolveRole(c.Request().Context(), profileID)
			if err != nil {
				return err
			}

			if !entity.Roles(roles).Contains(resolved.Role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied")
			}

			c.Set(KeyRole, resolved.Role)

			return next(c)
		}
	}
}

// ProfileID extracts the authenticated subject from the context.
func ProfileID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(KeyProfileID).(uuid.UUID)

	return id, ok
}
