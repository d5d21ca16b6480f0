package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bluearc/internal/domain/models"
	"bluearc/internal/lib/assetpath"
	"bluearc/internal/lib/logger/sl"
	"bluearc/internal/repository"
	"bluearc/internal/storage"
	filestorage "bluearc/internal/storage/filestorage"

	"github.com/go-playground/validator/v10"
)

// LoadCatalog загружает каталог один раз при старте и проверяет его целиком
func LoadCatalog(
	ctx context.Context,
	log *slog.Logger,
	repo repository.CatalogRepository,
	validate *validator.Validate,
) (models.Catalog, error) {
	const op = "service.LoadCatalog"
	log = log.With(slog.String("op", op))

	catalog, err := repo.Entries(ctx)
	if err != nil {
		log.Error("failed to load catalog", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := models.ValidateCatalog(validate, catalog); err != nil {
		log.Error("catalog is invalid", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("catalog loaded", slog.Int("entries", len(catalog)))
	return catalog, nil
}

// CheckLocalMedia сообщает о локальных медиафайлах каталога, которых нет на диске.
// Внешние URL не проверяются. Возвращает список отсутствующих путей.
func CheckLocalMedia(
	ctx context.Context,
	log *slog.Logger,
	catalog models.Catalog,
	files filestorage.FileStorage,
) ([]string, error) {
	const op = "service.CheckLocalMedia"
	log = log.With(slog.String("op", op))

	var missing []string
	for _, e := range catalog {
		for _, m := range e.Media {
			for _, p := range []string{m.Source, m.Thumbnail, m.Poster} {
				if p == "" || assetpath.IsExternal(p) {
					continue
				}

				_, err := files.Stat(ctx, p)
				switch {
				case err == nil:
				case errors.Is(err, storage.ErrFileNotFound), errors.Is(err, storage.ErrOutsideRoot):
					log.Warn("media file is missing", slog.String("entry_id", e.ID), slog.String("path", p))
					missing = append(missing, p)
				default:
					return missing, fmt.Errorf("%s: %w", op, err)
				}
			}
		}
	}

	return missing, nil
}
