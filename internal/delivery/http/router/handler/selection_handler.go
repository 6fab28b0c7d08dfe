package handler

import (
	"log/slog"
	"net/http"

	"epro/internal/delivery/http/middleware"
	"epro/internal/delivery/http/response"
	"epro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SelectionHandler serves the student selection and manager review flows.
type SelectionHandler struct {
	uc     usecase.SelectionUsecase
	logger *slog.Logger
}

// NewSelectionHandler is the constructor for SelectionHandler, injected by Fx.
func NewSelectionHandler(uc usecase.SelectionUsecase, logger *slog.Logger) *SelectionHandler {
	return &SelectionHandler{uc: uc, logger: logger}
}

type submitSelectionRequest struct {
	PackID  uuid.UUID   `json:"packId" validate:"required"`
	ItemIDs []uuid.UUID `json:"itemIds" validate:"required,min=1"`
}

// Submit records the student's ordered selection for a pack.
func (h *SelectionHandler) Submit(c echo.Context) error {
	studentID, ok := middleware.ProfileID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Subject missing from request")
	}

	var req submitSelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	selection, err := h.uc.Submit(c.Request().Context(), studentID, usecase.SubmitSelectionInput{
		PackID:  req.PackID,
		ItemIDs: req.ItemIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, selection, "Selection submitted successfully")
}

// ListMine returns the student's own selections.
func (h *SelectionHandler) ListMine(c echo.Context) error {
	studentID, ok := middleware.ProfileID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Subject missing from request")
	}

	selections, err := h.uc.ListMine(c.Request().Context(), studentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, selections, "")
}

// ListPending returns the review queue of pending selections.
func (h *SelectionHandler) ListPending(c echo.Context) error {
	managerID, ok := middleware.ProfileID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Subject missing from request")
	}

	selections, err := h.uc.ListPending(c.Request().Context(), managerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, selections, "")
}

// ListByPack returns all selections for a pack.
func (h *SelectionHandler) ListByPack(c echo.Context) error {
	packID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pack ID")
	}

	selections, err := h.uc.ListByPack(c.Request().Context(), packID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, selections, "")
}

type decideSelectionRequest struct {
	Approve bool   `json:"approve"`
	Comment string `json:"comment"`
}

// Decide approves or rejects a pending selection.
func (h *SelectionHandler) Decide(c echo.Context) error {
	reviewerID, ok := middleware.ProfileID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Subject missing from request")
	}

	selectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid selection ID")
	}

	var req decideSelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	selection, err := h.uc.Decide(c.Request().Context(), reviewerID, usecase.DecideSelectionInput{
		SelectionID: selectionID,
		Approve:     req.Approve,
		Comment:     req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, selection, "Selection decided")
}
