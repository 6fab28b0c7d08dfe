package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"epro/config"
	"epro/internal/cache"
	"epro/internal/delivery"
	"epro/internal/delivery/http"
	"epro/internal/delivery/http/middleware"
	"epro/internal/delivery/http/router/handler"
	"epro/internal/delivery/http/session"
	"epro/internal/infra/auth"
	logs "epro/internal/infra/log"
	"epro/internal/infra/mail"
	"epro/internal/infra/persistence/postgres"
	"epro/internal/infra/qrcode"
	"epro/internal/infra/storage"
	"epro/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// defaultCacheTTL applies when no cache section is configured.
const defaultCacheTTL = 30 * time.Minute

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			runMigrations,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		auth.NewBcryptHasher,
		auth.NewJWTService,
		mail.NewMailer,
		qrcode.NewQRCodeService,
		storage.NewBlobStorage,
		session.NewManager,
		newCacheClock,
		newCacheStore,
		newCacheLoader,
	)
}

// newCacheClock supplies the wall clock; tests swap in a fixed one.
func newCacheClock() cache.Clock {
	return cache.SystemClock()
}

// newCacheStore builds the in-memory cache, with the file mirror attached when
// a mirror path is configured.
func newCacheStore(cfg *config.Config, clock cache.Clock, logger *slog.Logger) (cache.Store, error) {
	ttl := defaultCacheTTL
	mirrorPath := ""
	if cfg.Cache != nil {
		if cfg.Cache.TTL > 0 {
			ttl = cfg.Cache.TTL
		}
		mirrorPath = cfg.Cache.MirrorPath
	}

	opts := []cache.Option{cache.WithClock(clock), cache.WithLogger(logger)}
	if mirrorPath != "" {
		mirror, err := cache.NewMirror(mirrorPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cache.WithMirror(mirror))
	}

	return cache.NewMemoryStore(ttl, opts...), nil
}

func newCacheLoader(store cache.Store) *cache.Loader {
	return cache.NewLoader(store)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewPackRepository,
			postgres.NewSelectionRepository,
			postgres.NewCatalogRepository,
			postgres.NewBrandingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewPackService,
			impl.NewSelectionService,
			impl.NewCatalogService,
			impl.NewBrandingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRouteGuard,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewCatalogHandler,
			handler.NewPackHandler,
			handler.NewSelectionHandler,
			handler.NewBrandingHandler,
			handler.NewPageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func runMigrations(ctx context.Context, db *gorm.DB) error {
	return postgres.RunMigrations(ctx, db)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
