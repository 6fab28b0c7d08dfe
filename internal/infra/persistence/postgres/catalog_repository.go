package postgres

import (
	"context"

	"epro/internal/domain/entity"
	domainerrors "epro/internal/domain/errors"
	"epro/internal/domain/repository"
	"epro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository is the GORM implementation of repository.CatalogRepository.
// The catalog is read-only from the portal's point of view; rows are loaded by
// migrations or back-office imports.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a catalog repository bound to the given DB handle.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// ListCountries returns all countries ordered by name.
func (r *catalogRepository) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	var rows []model.CountryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list countries")
	}

	countries := make([]*entity.Country, 0, len(rows))
	for _, row := range rows {
		countries = append(countries, &entity.Country{Code: row.Code, Name: row.Name})
	}

	return countries, nil
}

// ListDegrees returns all degree programmes.
func (r *catalogRepository) ListDegrees(ctx context.Context) ([]*entity.Degree, error) {
	var rows []model.DegreeModel
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list degrees")
	}

	degrees := make([]*entity.Degree, 0, len(rows))
	for _, row := range rows {
		degrees = append(degrees, &entity.Degree{
			ID:         row.ID,
			Title:      row.Title,
			TitleLocal: row.TitleLocal,
			CreatedAt:  row.CreatedAt,
			UpdatedAt:  row.UpdatedAt,
		})
	}

	return degrees, nil
}

// ListCourses returns all elective courses.
func (r *catalogRepository) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	var rows []model.CourseModel
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list courses")
	}

	courses := make([]*entity.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, &entity.Course{
			ID:          row.ID,
			Title:       row.Title,
			TitleLocal:  row.TitleLocal,
			Description: row.Description,
			Credits:     row.Credits,
			DegreeID:    row.DegreeID,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}

	return courses, nil
}

// ListUniversities returns all exchange universities.
func (r *catalogRepository) ListUniversities(ctx context.Context) ([]*entity.University, error) {
	var rows []model.UniversityModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list universities")
	}

	universities := make([]*entity.University, 0, len(rows))
	for _, row := range rows {
		universities = append(universities, &entity.University{
			ID:          row.ID,
			Name:        row.Name,
			NameLocal:   row.NameLocal,
			CountryCode: row.CountryCode,
			Seats:       row.Seats,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}

	return universities, nil
}

// ListGroups returns all cohort groups.
func (r *catalogRepository) ListGroups(ctx context.Context) ([]*entity.Group, error) {
	var rows []model.GroupModel
	if err := r.db.WithContext(ctx).Order("entry_year DESC, name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list groups")
	}

	groups := make([]*entity.Group, 0, len(rows))
	for i := range rows {
		groups = append(groups, groupToEntity(&rows[i]))
	}

	return groups, nil
}

// FindGroupByID retrieves a single cohort group.
func (r *catalogRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var row model.GroupModel
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find group by id")
	}

	return groupToEntity(&row), nil
}

func groupToEntity(row *model.GroupModel) *entity.Group {
	return &entity.Group{
		ID:        row.ID,
		Name:      row.Name,
		DegreeID:  row.DegreeID,
		EntryYear: row.EntryYear,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
