package impl

import (
	"context"
	"log/slog"

	"epro/internal/cache"
	deliverycontext "epro/internal/delivery/context"
	"epro/internal/domain/entity"
	domainerrors "epro/internal/domain/errors"
	"epro/internal/domain/repository"
	"epro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// keyAll is the cache key for whole-namespace list entries.
const keyAll = "all"

// catalogService implements the CatalogUsecase interface. Every read goes
// through the shared loader so concurrent misses collapse into one query.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	loader      *cache.Loader
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Loader      *cache.Loader
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		loader:      params.Loader,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadCached serves a value through the loader, mapping fetch failures to an
// upstream error. A type mismatch means the entry was rehydrated from the
// mirror as plain JSON; it is dropped and fetched fresh once.
func loadCached[T any](ctx context.Context, loader *cache.Loader, namespace, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	wrapped := func(ctx context.Context) (any, error) {
		value, err := fetch(ctx)
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				return nil, err
			}

			return nil, errors.Wrap(domainerrors.ErrUpstreamFailure, err.Error())
		}

		return value, nil
	}

	value, err := loader.Load(ctx, namespace, key, wrapped)
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		loader.Invalidate(ctx, namespace, key)
		value, err = loader.Load(ctx, namespace, key, wrapped)
		if err != nil {
			return zero, err
		}
		typed, ok = value.(T)
		if !ok {
			return zero, errors.Errorf("unexpected cache value type in namespace %s", namespace)
		}
	}

	return typed, nil
}

// ListCountries returns all countries, cache-first.
func (srv *catalogService) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	return loadCached(ctx, srv.loader, cache.NamespaceCountries, keyAll, srv.catalogRepo.ListCountries)
}

// ListDegrees returns all degree programmes, cache-first.
func (srv *catalogService) ListDegrees(ctx context.Context) ([]*entity.Degree, error) {
	return loadCached(ctx, srv.loader, cache.NamespaceDegrees, keyAll, srv.catalogRepo.ListDegrees)
}

// ListCourses returns all elective courses, cache-first.
func (srv *catalogService) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	return loadCached(ctx, srv.loader, cache.NamespaceCourses, keyAll, srv.catalogRepo.ListCourses)
}

// ListUniversities returns all exchange universities, cache-first.
func (srv *catalogService) ListUniversities(ctx context.Context) ([]*entity.University, error) {
	return loadCached(ctx, srv.loader, cache.NamespaceUniversities, keyAll, srv.catalogRepo.ListUniversities)
}

// ListGroups returns all cohort groups, cache-first.
func (srv *catalogService) ListGroups(ctx context.Context) ([]*entity.Group, error) {
	return loadCached(ctx, srv.loader, cache.NamespaceGroups, keyAll, srv.catalogRepo.ListGroups)
}

// GetGroup returns a single cohort group, cache-first.
func (srv *catalogService) GetGroup(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	group, err := loadCached(ctx, srv.loader, cache.NamespaceGroups, id.String(), func(ctx context.Context) (*entity.Group, error) {
		group, err := srv.catalogRepo.FindGroupByID(ctx, id)
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("group not found")
		}

		return group, err
	})
	if err != nil {
		srv.log(ctx).Debug("Group lookup failed", slog.Any("groupID", id), slog.Any("error", err))

		return nil, err
	}

	return group, nil
}
