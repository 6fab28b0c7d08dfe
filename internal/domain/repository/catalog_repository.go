package repository

import (
	"context"

	"epro/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogRepository provides read access to the reference catalog.
// Catalog rows change rarely, so results are safe to cache by namespace.
type CatalogRepository interface {
	// ListCountries returns all countries ordered by name.
	ListCountries(ctx context.Context) ([]*entity.Country, error)

	// ListDegrees returns all degree programmes.
	ListDegrees(ctx context.Context) ([]*entity.Degree, error)

	// ListCourses returns all elective courses.
	ListCourses(ctx context.Context) ([]*entity.Course, error)

	// ListUniversities returns all exchange universities.
	ListUniversities(ctx context.Context) ([]*entity.University, error)

	// ListGroups returns all cohort groups.
	ListGroups(ctx context.Context) ([]*entity.Group, error)

	// FindGroupByID retrieves a single cohort group.
	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
}
