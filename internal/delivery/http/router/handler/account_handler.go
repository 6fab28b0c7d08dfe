// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"epro/internal/delivery/http/middleware"
	"epro/internal/delivery/http/response"
	"epro/internal/domain/entity"
	"epro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account and session handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	Email    string    `json:"email" validate:"required,email"`
	FullName string    `json:"fullName" validate:"required"`
	Password string    `json:"password" validate:"required"`
	GroupID  uuid.UUID `json:"groupId" validate:"required"`
}

// Register handles student self-registration.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RegisterStudent(c.Request().Context(), usecase.RegisterStudentInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		GroupID:  req.GroupID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profileView(output.Profile), "Account registered successfully")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
		"profile":      profileView(output.Profile),
	}, "Login successful")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Refresh rotates a refresh token for a new pair.
func (h *AccountHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout ends the session identified by the refresh token.
func (h *AccountHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := h.uc.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

type checkRoleRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// CheckRole re-reads the caller's role from storage. The claimed user ID
// must match the authenticated subject; the token's role claim is never
// trusted for this answer.
func (h *AccountHandler) CheckRole(c echo.Context) error {
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Subject missing from request")
	}

	var req checkRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role check input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.UserID != profileID {
		return response.Forbidden(c, "FORBIDDEN", "Subject does not match the requested user")
	}

	resolved, err := h.uc.ResolveRole(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"role": resolved.Role}, "")
}

// Me returns the authenticated subject's own profile.
func (h *AccountHandler) Me(c echo.Context) error {
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Subject missing from request")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profileView(profile), "Profile retrieved successfully")
}

type createAccountRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	FullName string     `json:"fullName" validate:"required"`
	Password string     `json:"password" validate:"required"`
	Role     string     `json:"role" validate:"required"`
	GroupID  *uuid.UUID `json:"groupId"`
}

// CreateAccount provisions an account with an explicit role. Admin only.
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.CreateAccount(c.Request().Context(), usecase.CreateAccountInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		GroupID:  req.GroupID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profileView(output.Profile), "Account created successfully")
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

// SetAccountActive activates or deactivates an account. Admin only.
func (h *AccountHandler) SetAccountActive(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account state input")
	}

	if err := h.uc.SetAccountActive(c.Request().Context(), profileID, req.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"active": req.Active}, "Account state updated")
}

// profileView strips credentials and internals from a profile for responses.
func profileView(p *entity.Profile) map[string]any {
	if p == nil {
		return nil
	}

	view := map[string]any{
		"id":       p.ID,
		"email":    p.Email,
		"fullName": p.FullName,
		"role":     p.Role,
		"isActive": p.IsActive,
	}
	if p.GroupID != nil {
		view["groupId"] = *p.GroupID
	}

	return view
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
