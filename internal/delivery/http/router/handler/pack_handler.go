package handler

import (
	"log/slog"
	"net/http"
	"time"

	"epro/internal/delivery/http/middleware"
	"epro/internal/delivery/http/response"
	"epro/internal/domain/entity"
	"epro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PackHandler serves elective pack management and discovery.
type PackHandler struct {
	uc     usecase.PackUsecase
	logger *slog.Logger
}

// NewPackHandler is the constructor for PackHandler, injected by Fx.
func NewPackHandler(uc usecase.PackUsecase, logger *slog.Logger) *PackHandler {
	return &PackHandler{uc: uc, logger: logger}
}

type createPackRequest struct {
	Title         string      `json:"title" validate:"required"`
	Description   string      `json:"description"`
	Type          string      `json:"type" validate:"required"`
	GroupID       uuid.UUID   `json:"groupId" validate:"required"`
	ItemIDs       []uuid.UUID `json:"itemIds" validate:"required,min=1"`
	MaxSelections int         `json:"maxSelections" validate:"required,min=1"`
	Deadline      time.Time   `json:"deadline" validate:"required"`
}

// Create makes a new pack in draft status.
func (h *PackHandler) Create(c echo.Context) error {
	creatorID, ok := middleware.ProfileID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Subject missing from request")
	}

	var req createPackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pack input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pack, err := h.uc.Create(c.Request().Context(), creatorID, usecase.CreatePackInput{
		Title:         req.Title,
		Description:   req.Description,
		Type:          entity.PackType(req.Type),
		GroupID:       req.GroupID,
		ItemIDs:       req.ItemIDs,
		MaxSelections: req.MaxSelections,
		Deadline:      req.Deadline,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pack, "Pack created successfully")
}

type updatePackRequest struct {
	Title         *string     `json:"title"`
	Description   *string     `json:"description"`
	ItemIDs       []uuid.UUID `json:"itemIds"`
	MaxSelections *int        `json:"maxSelections"`
	Deadline      *time.Time  `json:"deadline"`
}

// Update edits a draft pack.
func (h *PackHandler) Update(c echo.Context) error {
	packID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pack ID")
	}

	var req updatePackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pack input")
	}

	pack, err := h.uc.Update(c.Request().Context(), packID, usecase.UpdatePackInput{
		Title:         req.Title,
		Description:   req.Description,
		ItemIDs:       req.ItemIDs,
		MaxSelections: req.MaxSelections,
		Deadline:      req.Deadline,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pack, "Pack updated successfully")
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ChangeStatus moves a pack along its lifecycle.
func (h *PackHandler) ChangeStatus(c echo.Context) error {
	packID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pack ID")
	}

	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pack, err := h.uc.ChangeStatus(c.Request().Context(), packID, entity.PackStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pack, "Pack status changed")
}

// Get returns a single pack.
func (h *PackHandler) Get(c echo.Context) error {
	packID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pack ID")
	}

	pack, err := h.uc.Get(c.Request().Context(), packID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pack, "")
}

// ListAll returns every pack for staff screens.
func (h *PackHandler) ListAll(c echo.Context) error {
	packs, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, packs, "")
}

// ListForStudent returns open packs for the student's own group.
func (h *PackHandler) ListForStudent(c echo.Context) error {
	studentID, ok := middleware.ProfileID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Subject missing from request")
	}

	packs, err := h.uc.ListForStudent(c.Request().Context(), studentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, packs, "")
}

// ShareQRCode returns a QR code PNG pointing at the pack's public page.
func (h *PackHandler) ShareQRCode(c echo.Context) error {
	packID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pack ID")
	}

	png, err := h.uc.ShareQRCode(c.Request().Context(), packID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
