package models_test

import (
	"errors"
	"testing"

	"bluearc/internal/domain/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry(id string) models.GalleryEntry {
	return models.GalleryEntry{
		ID:    id,
		Title: "Title " + id,
		Date:  "2025-08-20",
		Tags:  []string{"Retail"},
		Media: []models.MediaItem{models.NewImage("/jobs/"+id+".jpg", "", id)},
	}
}

func TestValidateCatalog(t *testing.T) {
	v := validator.New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, models.ValidateCatalog(v, models.Catalog{validEntry("a"), validEntry("b")}))
	})

	tests := []struct {
		name    string
		mutate  func(c models.Catalog) models.Catalog
		wantMsg string
	}{
		{
			name: "duplicate id",
			mutate: func(c models.Catalog) models.Catalog {
				return append(c, validEntry("a"))
			},
			wantMsg: "duplicate id",
		},
		{
			name: "bad date",
			mutate: func(c models.Catalog) models.Catalog {
				c[0].Date = "20/08/2025"
				return c
			},
			wantMsg: "date must be YYYY-MM-DD",
		},
		{
			name: "no media",
			mutate: func(c models.Catalog) models.Catalog {
				c[0].Media = nil
				return c
			},
			wantMsg: "Media",
		},
		{
			name: "poster on image",
			mutate: func(c models.Catalog) models.Catalog {
				c[0].Media[0].Poster = "/p.jpg"
				return c
			},
			wantMsg: "poster is only allowed for videos",
		},
		{
			name: "thumb on video",
			mutate: func(c models.Catalog) models.Catalog {
				c[0].Media = append(c[0].Media, models.MediaItem{Kind: models.MediaKindVideo, Source: "/v.mp4", Thumbnail: "/t.jpg"})
				return c
			},
			wantMsg: "media[1]: thumb is only allowed for images",
		},
		{
			name: "unknown media type",
			mutate: func(c models.Catalog) models.Catalog {
				c[0].Media[0].Kind = "audio"
				return c
			},
			wantMsg: "invalid media type 'audio'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := models.ValidateCatalog(v, tt.mutate(models.Catalog{validEntry("a")}))
			require.Error(t, err)
			assert.True(t, models.IsCatalogValidationError(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	t.Run("collects every violation", func(t *testing.T) {
		c := models.Catalog{validEntry("a"), validEntry("a")}
		c[0].Date = "bad"

		err := models.ValidateCatalog(v, c)

		var verr *models.CatalogValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Errors, 2)
	})
}

func TestMediaItem_PreviewSource(t *testing.T) {
	assert.Equal(t, "/t.jpg", models.NewImage("/a.jpg", "/t.jpg", "").PreviewSource())
	assert.Equal(t, "/a.jpg", models.NewImage("/a.jpg", "", "").PreviewSource())
	assert.Empty(t, models.NewVideo("/a.mp4", "/p.jpg", "").PreviewSource())
}

func TestCatalog_Index(t *testing.T) {
	c := models.Catalog{validEntry("a"), validEntry("b")}

	assert.Equal(t, 1, c.Index("b"))
	assert.Equal(t, -1, c.Index("z"))
	assert.True(t, c[0].HasTag("Retail"))
	assert.False(t, c[0].HasTag("retail"))
}
