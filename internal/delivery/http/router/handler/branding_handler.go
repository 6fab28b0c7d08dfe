package handler

import (
	"io"
	"log/slog"
	"net/http"

	"epro/internal/delivery/http/response"
	"epro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// uploadReadLimit caps how much of a logo upload is read into memory. It sits
// above the service-side size limit so oversized files are rejected with a
// validation error instead of being silently truncated.
const uploadReadLimit = 4 << 20

// BrandingHandler serves portal branding reads and admin updates.
type BrandingHandler struct {
	uc     usecase.BrandingUsecase
	logger *slog.Logger
}

// NewBrandingHandler is the constructor for BrandingHandler, injected by Fx.
func NewBrandingHandler(uc usecase.BrandingUsecase, logger *slog.Logger) *BrandingHandler {
	return &BrandingHandler{uc: uc, logger: logger}
}

// Get returns the current brand settings. Public, so login pages can render
// the portal's look before anyone authenticates.
func (h *BrandingHandler) Get(c echo.Context) error {
	settings, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

type updateBrandingRequest struct {
	PortalName   *string `json:"portalName"`
	PrimaryColor *string `json:"primaryColor"`
	AccentColor  *string `json:"accentColor"`
	SupportEmail *string `json:"supportEmail"`
}

// Update applies partial changes to the brand settings. Admin only.
func (h *BrandingHandler) Update(c echo.Context) error {
	var req updateBrandingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid branding input")
	}

	settings, err := h.uc.Update(c.Request().Context(), usecase.UpdateBrandingInput{
		PortalName:   req.PortalName,
		PrimaryColor: req.PrimaryColor,
		AccentColor:  req.AccentColor,
		SupportEmail: req.SupportEmail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "Branding updated")
}

// UploadLogo stores a new logo from a multipart form. Admin only.
func (h *BrandingHandler) UploadLogo(c echo.Context) error {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A logo file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open logo upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, uploadReadLimit))
	if err != nil {
		return errors.Wrap(err, "failed to read logo upload")
	}

	contentType := fileHeader.Header.Get("Content-Type")

	settings, err := h.uc.UploadLogo(c.Request().Context(), contentType, data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "Logo uploaded")
}
