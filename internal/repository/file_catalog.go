package repository

import (
	"context"
	"fmt"
	"os"

	"bluearc/internal/domain/models"

	"gopkg.in/yaml.v3"
)

type catalogDocument struct {
	Entries models.Catalog `yaml:"entries"`
}

// FileCatalogRepo читает каталог из YAML-файла (JSON тоже подходит)
type FileCatalogRepo struct {
	path string
}

func NewFileCatalogRepo(path string) *FileCatalogRepo {
	return &FileCatalogRepo{path: path}
}

func (r *FileCatalogRepo) Entries(ctx context.Context) (models.Catalog, error) {
	const op = "repository.FileCatalogRepo.Entries"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ParseCatalog(data)
}

// ParseCatalog разбирает документ вида {entries: [...]}
func ParseCatalog(data []byte) (models.Catalog, error) {
	const op = "repository.ParseCatalog"

	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(doc.Entries) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrCatalogEmpty)
	}

	return doc.Entries, nil
}
