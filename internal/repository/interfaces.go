package repository

import (
	"context"
	"errors"
	"time"

	"bluearc/internal/domain/gallery"
	"bluearc/internal/domain/models"
)

var (
	ErrStateNotFound = errors.New("visitor state not found")
	ErrCatalogEmpty  = errors.New("catalog has no entries")
)

type CatalogRepository interface {
	Entries(ctx context.Context) (models.Catalog, error)
}

type StateRepository interface {
	Load(ctx context.Context, visitorID string) (gallery.Snapshot, error)
	Save(ctx context.Context, visitorID string, snap gallery.Snapshot, ttl time.Duration) error
	Delete(ctx context.Context, visitorID string) error
}
