package handler

import (
	"log/slog"
	"net/http"

	"epro/internal/delivery/http/response"
	"epro/internal/domain/entity"
	"epro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the reference catalogs backing pack composition.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// ListCountries returns all exchange destination countries.
func (h *CatalogHandler) ListCountries(c echo.Context) error {
	countries, err := h.uc.ListCountries(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countries, "")
}

// Catalog rows carry optional localized text. The view models resolve the
// fallback once, server-side, so clients never see an empty localized field.

type degreeView struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	TitleLocal string    `json:"titleLocal"`
}

type courseView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	TitleLocal  string    `json:"titleLocal"`
	Description string    `json:"description"`
	Credits     int       `json:"credits"`
	DegreeID    uuid.UUID `json:"degreeId"`
}

type universityView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NameLocal   string    `json:"nameLocal"`
	CountryCode string    `json:"countryCode"`
	Seats       int       `json:"seats"`
}

func newDegreeView(d *entity.Degree) degreeView {
	return degreeView{ID: d.ID, Title: d.Title, TitleLocal: d.DisplayTitle(true)}
}

func newCourseView(course *entity.Course) courseView {
	return courseView{
		ID:          course.ID,
		Title:       course.Title,
		TitleLocal:  course.DisplayTitle(true),
		Description: course.Description,
		Credits:     course.Credits,
		DegreeID:    course.DegreeID,
	}
}

func newUniversityView(u *entity.University) universityView {
	return universityView{
		ID:          u.ID,
		Name:        u.Name,
		NameLocal:   u.DisplayName(true),
		CountryCode: u.CountryCode,
		Seats:       u.Seats,
	}
}

// ListDegrees returns all degree programmes.
func (h *CatalogHandler) ListDegrees(c echo.Context) error {
	degrees, err := h.uc.ListDegrees(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]degreeView, 0, len(degrees))
	for _, degree := range degrees {
		views = append(views, newDegreeView(degree))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListCourses returns elective courses, optionally narrowed to one degree
// via the degreeId query parameter. Filtering happens here over the cached
// full list so one cache entry serves every degree.
func (h *CatalogHandler) ListCourses(c echo.Context) error {
	courses, err := h.uc.ListCourses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if raw := c.QueryParam("degreeId"); raw != "" {
		degreeID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid degree ID")
		}

		filtered := make([]*entity.Course, 0, len(courses))
		for _, course := range courses {
			if course.DegreeID == degreeID {
				filtered = append(filtered, course)
			}
		}
		courses = filtered
	}

	views := make([]courseView, 0, len(courses))
	for _, course := range courses {
		views = append(views, newCourseView(course))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListUniversities returns exchange universities, optionally narrowed to one
// country via the country query parameter.
func (h *CatalogHandler) ListUniversities(c echo.Context) error {
	universities, err := h.uc.ListUniversities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if code := c.QueryParam("country"); code != "" {
		filtered := make([]*entity.University, 0, len(universities))
		for _, university := range universities {
			if university.CountryCode == code {
				filtered = append(filtered, university)
			}
		}
		universities = filtered
	}

	views := make([]universityView, 0, len(universities))
	for _, university := range universities {
		views = append(views, newUniversityView(university))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListGroups returns all cohort groups.
func (h *CatalogHandler) ListGroups(c echo.Context) error {
	groups, err := h.uc.ListGroups(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, groups, "")
}

// GetGroup returns a single cohort group.
func (h *CatalogHandler) GetGroup(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid group ID")
	}

	group, err := h.uc.GetGroup(c.Request().Context(), groupID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, group, "")
}
