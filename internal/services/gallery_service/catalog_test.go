package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bluearc/internal/domain/models"
	"bluearc/internal/repository"
	filestorage "bluearc/internal/storage/filestorage"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Entries(ctx context.Context) (models.Catalog, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.(models.Catalog), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestLoadCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("Entries", ctx).Return(testCatalog(), nil)

		catalog, err := LoadCatalog(ctx, discardLogger(), repo, validator.New())
		require.NoError(t, err)
		assert.Len(t, catalog, 2)
		repo.AssertExpectations(t)
	})

	t.Run("invalid", func(t *testing.T) {
		broken := testCatalog()
		broken[1].ID = broken[0].ID

		repo := new(MockCatalogRepository)
		repo.On("Entries", ctx).Return(broken, nil)

		_, err := LoadCatalog(ctx, discardLogger(), repo, validator.New())
		var verr *models.CatalogValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("Entries", ctx).Return(nil, repository.ErrCatalogEmpty)

		_, err := LoadCatalog(ctx, discardLogger(), repo, validator.New())
		assert.ErrorIs(t, err, repository.ErrCatalogEmpty)
	})
}

func TestCheckLocalMedia(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "jobs", "pourhouse"), 0755))
	for _, name := range []string{"rack.jpg", "rack-thumb.jpg", "poster.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "jobs", "pourhouse", name), []byte("x"), 0644))
	}

	files, err := filestorage.NewLocalFileStorage(dir)
	require.NoError(t, err)

	missing, err := CheckLocalMedia(ctx, discardLogger(), testCatalog(), files)
	require.NoError(t, err)

	// внешний URL видео не проверяется
	assert.Equal(t, []string{"jobs/pourhouse/bar.jpg", "/jobs/torrid/torrid.jpg"}, missing)

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := CheckLocalMedia(cctx, discardLogger(), testCatalog(), files)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
