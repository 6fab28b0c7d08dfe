package usecase

import (
	"context"

	"epro/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase exposes the reference catalog behind the shared cache.
// Every list is served cache-first with one freshness window across the board.
type CatalogUsecase interface {
	ListCountries(ctx context.Context) ([]*entity.Country, error)
	ListDegrees(ctx context.Context) ([]*entity.Degree, error)
	ListCourses(ctx context.Context) ([]*entity.Course, error)
	ListUniversities(ctx context.Context) ([]*entity.University, error)
	ListGroups(ctx context.Context) ([]*entity.Group, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*entity.Group, error)
}
