package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"epro/internal/cache"
	deliverycontext "epro/internal/delivery/context"
	"epro/internal/domain/entity"
	domainerrors "epro/internal/domain/errors"
	"epro/internal/domain/repository"
	"epro/internal/domain/service"
	"epro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// keyCurrent is the cache key for the brand settings singleton.
const keyCurrent = "current"

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// logoContentTypes maps accepted upload types to file extensions.
var logoContentTypes = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/svg+xml": "svg",
}

// maxLogoBytes caps logo uploads at 2 MiB.
const maxLogoBytes = 2 << 20

// brandingService implements the BrandingUsecase interface.
type brandingService struct {
	brandingRepo repository.BrandingRepository
	assets       service.AssetStorage
	loader       *cache.Loader
	clock        cache.Clock
	logger       *slog.Logger
}

// BrandingServiceParams holds dependencies for brandingService, injected by Fx.
type BrandingServiceParams struct {
	fx.In

	BrandingRepo repository.BrandingRepository
	Assets       service.AssetStorage
	Loader       *cache.Loader
	Clock        cache.Clock
	Logger       *slog.Logger
}

// NewBrandingService is the constructor for brandingService.
func NewBrandingService(params BrandingServiceParams) usecase.BrandingUsecase {
	return &brandingService{
		brandingRepo: params.BrandingRepo,
		assets:       params.Assets,
		loader:       params.Loader,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

func (srv *brandingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the current brand settings, cache-first. A portal that has
// never been branded gets the defaults.
func (srv *brandingService) Get(ctx context.Context) (*entity.BrandSettings, error) {
	return loadCached(ctx, srv.loader, cache.NamespaceBranding, keyCurrent, func(ctx context.Context) (*entity.BrandSettings, error) {
		settings, err := srv.brandingRepo.Get(ctx)
		if errors.Is(err, repository.ErrBrandSettingsNotFound) {
			return entity.DefaultBrandSettings(), nil
		}

		return settings, err
	})
}

// Update applies partial changes to the brand settings and bumps the version.
func (srv *brandingService) Update(ctx context.Context, input usecase.UpdateBrandingInput) (*entity.BrandSettings, error) {
	settings, err := srv.currentForWrite(ctx)
	if err != nil {
		return nil, err
	}

	if input.PortalName != nil {
		name := strings.TrimSpace(*input.PortalName)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("portal name cannot be empty")
		}
		settings.PortalName = name
	}
	if input.PrimaryColor != nil {
		if !hexColorPattern.MatchString(*input.PrimaryColor) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("primary color must be a #RRGGBB value")
		}
		settings.PrimaryColor = *input.PrimaryColor
	}
	if input.AccentColor != nil {
		if !hexColorPattern.MatchString(*input.AccentColor) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("accent color must be a #RRGGBB value")
		}
		settings.AccentColor = *input.AccentColor
	}
	if input.SupportEmail != nil {
		settings.SupportEmail = strings.TrimSpace(*input.SupportEmail)
	}

	return srv.save(ctx, settings)
}

// UploadLogo stores a new logo asset and records its path.
func (srv *brandingService) UploadLogo(ctx context.Context, contentType string, data []byte) (*entity.BrandSettings, error) {
	ext, ok := logoContentTypes[contentType]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("logo must be PNG, JPEG or SVG")
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("logo file is empty")
	}
	if len(data) > maxLogoBytes {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("logo file is too large")
	}

	settings, err := srv.currentForWrite(ctx)
	if err != nil {
		return nil, err
	}

	// Version in the key keeps old logo URLs valid until clients catch up.
	key := fmt.Sprintf("branding/logo-v%d.%s", settings.Version+1, ext)
	path, err := srv.assets.Put(ctx, key, contentType, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store logo asset")
	}

	settings.LogoPath = path

	return srv.save(ctx, settings)
}

// currentForWrite loads the stored settings directly, never through the cache.
func (srv *brandingService) currentForWrite(ctx context.Context) (*entity.BrandSettings, error) {
	settings, err := srv.brandingRepo.Get(ctx)
	if errors.Is(err, repository.ErrBrandSettingsNotFound) {
		return entity.DefaultBrandSettings(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load brand settings")
	}

	return settings, nil
}

func (srv *brandingService) save(ctx context.Context, settings *entity.BrandSettings) (*entity.BrandSettings, error) {
	settings.Version++
	settings.UpdatedAt = srv.clock.Now()

	if err := srv.brandingRepo.Save(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to save brand settings")
	}

	srv.loader.InvalidateNamespace(ctx, cache.NamespaceBranding)

	srv.log(ctx).Info("Brand settings updated", slog.Int64("version", settings.Version))

	return settings, nil
}
