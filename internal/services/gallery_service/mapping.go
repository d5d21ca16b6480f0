package services

import (
	"fmt"
	"strings"

	"bluearc/internal/domain/gallery"
	"bluearc/internal/domain/models"
	"bluearc/internal/lib/datefmt"
	"bluearc/internal/transport/http/dto"
)

const separator = " • "

// mapToView преобразует состояние посетителя в DTO
func (s *GalleryService) mapToView(st *gallery.State) *dto.GalleryView {
	f := st.Filter()
	visible := st.Visible()

	view := &dto.GalleryView{
		Query:      f.Query,
		ActiveTags: append([]string{}, f.ActiveTags...),
		Tags:       make([]dto.TagResponse, 0, len(s.tags)),
		Entries:    make([]dto.EntryResponse, 0, len(visible)),
		Empty:      len(visible) == 0,
	}

	for _, t := range s.tags {
		view.Tags = append(view.Tags, dto.TagResponse{Name: t, Active: f.IsTagActive(t)})
	}

	for _, e := range visible {
		view.Entries = append(view.Entries, s.mapToEntryResponse(e))
	}

	if e, m, ok := st.Current(); ok {
		c, _ := st.Cursor()
		view.Lightbox = s.mapToLightboxResponse(e, m, c.MediaIndex)
	}

	return view
}

func (s *GalleryService) mapToEntryResponse(e models.GalleryEntry) dto.EntryResponse {
	resp := dto.EntryResponse{
		ID:          e.ID,
		Title:       e.Title,
		Client:      e.Client,
		Date:        e.Date,
		DisplayDate: datefmt.FormatDisplayDate(e.Date),
		Location:    e.Location,
		Tags:        append([]string{}, e.Tags...),
		Description: e.Description,
		Media:       make([]dto.MediaResponse, 0, len(e.Media)),
	}

	resp.Subtitle = e.Location
	if e.Date != "" {
		resp.Subtitle += separator + resp.DisplayDate
	}

	for _, m := range e.Media {
		resp.Media = append(resp.Media, s.mapToMediaResponse(m))
	}
	if len(resp.Media) > 0 {
		resp.Cover = resp.Media[0]
	}

	return resp
}

func (s *GalleryService) mapToMediaResponse(m models.MediaItem) dto.MediaResponse {
	return dto.MediaResponse{
		Type:    string(m.Kind),
		Src:     s.assets.Resolve(m.Source),
		Thumb:   s.assets.Resolve(m.Thumbnail),
		Poster:  s.assets.Resolve(m.Poster),
		Alt:     m.AltText,
		Preview: s.assets.Resolve(m.PreviewSource()),
	}
}

func (s *GalleryService) mapToLightboxResponse(e models.GalleryEntry, m models.MediaItem, index int) *dto.LightboxResponse {
	var caption strings.Builder
	if e.Client != "" {
		caption.WriteString(e.Client + separator)
	}
	caption.WriteString(e.Location)
	if e.Date != "" {
		caption.WriteString(separator + datefmt.FormatDisplayDate(e.Date))
	}

	resp := &dto.LightboxResponse{
		EntryID:    e.ID,
		MediaIndex: index,
		MediaCount: len(e.Media),
		Counter:    fmt.Sprintf("Media %d of %d", index+1, len(e.Media)),
		Title:      e.Title,
		Caption:    caption.String(),
		Media:      s.mapToMediaResponse(m),
	}

	if len(e.Media) > 1 {
		resp.Thumbnails = make([]dto.ThumbnailResponse, 0, len(e.Media))
		for i, item := range e.Media {
			resp.Thumbnails = append(resp.Thumbnails, dto.ThumbnailResponse{
				Index:   i,
				Type:    string(item.Kind),
				Preview: s.assets.Resolve(item.PreviewSource()),
				Alt:     item.AltText,
				Active:  i == index,
			})
		}
	}

	return resp
}
