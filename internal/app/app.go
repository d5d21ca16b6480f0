package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "bluearc/internal/app/http"
	"bluearc/internal/config"
	"bluearc/internal/domain/models"
	"bluearc/internal/lib/assetpath"
	"bluearc/internal/lib/logger/sl"
	"bluearc/internal/repository"
	services "bluearc/internal/services/gallery_service"
	filestorage "bluearc/internal/storage/filestorage"
	"bluearc/internal/storage/postgresql"
	redisapp "bluearc/internal/storage/redis"
	httprouters "bluearc/internal/transport/http"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	HTTPServer *httpapp.Server
	closers    []func() error
	log        *slog.Logger
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	a := &App{log: log}

	catalog, err := a.loadCatalog(ctx, cfg)
	if err != nil {
		a.Stop()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	files, err := filestorage.NewLocalFileStorage(cfg.Site.PublicDir)
	if err != nil {
		a.Stop()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if missing, err := services.CheckLocalMedia(ctx, log, catalog, files); err != nil {
		log.Warn("media check failed", sl.Err(err))
	} else if len(missing) > 0 {
		log.Warn("catalog references missing media", slog.Int("count", len(missing)))
	}

	states, err := a.stateRepository(ctx, cfg)
	if err != nil {
		a.Stop()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	galleryService := services.NewGalleryService(
		log,
		catalog,
		states,
		assetpath.NewResolver(cfg.Site.BasePath),
		cfg.State.TTL,
	)

	routers := httprouters.NewRouter(log, galleryService, services.ErrEntryNotFound)
	a.HTTPServer = httpapp.New(log, cfg.HTTP, cfg.Site, routers)

	return a, nil
}

func (a *App) loadCatalog(ctx context.Context, cfg *config.Config) (models.Catalog, error) {
	var repo repository.CatalogRepository

	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		storage, err := postgresql.New(ctx, cfg.Catalog.DSN)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error {
			storage.Stop()
			return nil
		})

		if err := storage.Migrate(ctx); err != nil {
			return nil, err
		}

		pgRepo := repository.NewPostgresCatalogRepo(storage.DB())
		if cfg.Catalog.Seed {
			if err := a.seedCatalog(ctx, cfg.Catalog.Path, pgRepo); err != nil {
				return nil, err
			}
		}
		repo = pgRepo
	default:
		repo = repository.NewFileCatalogRepo(cfg.Catalog.Path)
	}

	a.log.Info("loading catalog", slog.String("source", cfg.Catalog.Source))

	return services.LoadCatalog(ctx, a.log, repo, validator.New())
}

// seedCatalog переносит каталог из файла в postgres целиком
func (a *App) seedCatalog(ctx context.Context, path string, dst *repository.PostgresCatalogRepo) error {
	catalog, err := services.LoadCatalog(ctx, a.log, repository.NewFileCatalogRepo(path), validator.New())
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	if err := dst.ReplaceCatalog(ctx, catalog); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	a.log.Info("catalog seeded", slog.String("path", path), slog.Int("entries", len(catalog)))
	return nil
}

func (a *App) stateRepository(ctx context.Context, cfg *config.Config) (repository.StateRepository, error) {
	switch cfg.State.Store {
	case config.StateStoreRedis:
		client := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
		a.closers = append(a.closers, client.Close)

		if err := client.HealthCheck(ctx); err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		a.log.Info("visitor state in redis", slog.String("addr", cfg.Redis.RedisAddr))

		return repository.NewRedisStateRepo(client), nil
	default:
		repo := repository.NewMemoryStateRepo(cfg.State.TTL, cfg.State.CleanupInterval)

		gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "gallery_visitor_states",
			Help: "Visitor states held in memory.",
		}, func() float64 {
			return float64(repo.Count())
		})
		if err := prometheus.Register(gauge); err != nil {
			a.log.Warn("visitor states gauge is not registered", sl.Err(err))
		}

		return repo, nil
	}
}

// Stop освобождает внешние подключения в обратном порядке
func (a *App) Stop() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Error("failed to close resource", sl.Err(err))
		}
	}
	a.closers = nil
}
