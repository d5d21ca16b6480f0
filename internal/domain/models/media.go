package models

import "fmt"

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// MediaItem представляет одно изображение или видео проекта.
// Thumbnail имеет смысл только для изображений, Poster только для видео.
type MediaItem struct {
	Kind      MediaKind `yaml:"type" json:"type" validate:"required,oneof=image video"`
	Source    string    `yaml:"src" json:"src" validate:"required"`
	Thumbnail string    `yaml:"thumb,omitempty" json:"thumb,omitempty"`
	Poster    string    `yaml:"poster,omitempty" json:"poster,omitempty"`
	AltText   string    `yaml:"alt" json:"alt"`
}

func NewImage(src, thumb, alt string) MediaItem {
	return MediaItem{Kind: MediaKindImage, Source: src, Thumbnail: thumb, AltText: alt}
}

func NewVideo(src, poster, alt string) MediaItem {
	return MediaItem{Kind: MediaKindVideo, Source: src, Poster: poster, AltText: alt}
}

func (m MediaItem) IsImage() bool { return m.Kind == MediaKindImage }

func (m MediaItem) IsVideo() bool { return m.Kind == MediaKindVideo }

// PreviewSource возвращает путь для превью: миниатюру изображения, если она есть.
// Для видео превью нет, возвращается пустая строка.
func (m MediaItem) PreviewSource() string {
	if !m.IsImage() {
		return ""
	}
	if m.Thumbnail != "" {
		return m.Thumbnail
	}
	return m.Source
}

func (m MediaItem) validate() []string {
	var errs []string

	switch m.Kind {
	case MediaKindImage:
		if m.Poster != "" {
			errs = append(errs, "poster is only allowed for videos")
		}
	case MediaKindVideo:
		if m.Thumbnail != "" {
			errs = append(errs, "thumb is only allowed for images")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid media type '%s', must be one of: [image video]", m.Kind))
	}

	return errs
}
