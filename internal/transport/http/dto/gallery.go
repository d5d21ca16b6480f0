package dto

// MediaResponse представляет медиафайл с уже разрешенными путями
type MediaResponse struct {
	Type    string `json:"type"`              // "image" или "video"
	Src     string `json:"src"`               // Путь к файлу с учетом базового пути сайта
	Thumb   string `json:"thumb,omitempty"`   // Миниатюра (только для изображений)
	Poster  string `json:"poster,omitempty"`  // Постер (только для видео)
	Alt     string `json:"alt"`               // Альтернативный текст
	Preview string `json:"preview,omitempty"` // Что показывать в карточке; пусто для видео
}

// EntryResponse представляет карточку проекта в галерее
type EntryResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Client      string          `json:"client,omitempty"`
	Date        string          `json:"date,omitempty"`
	DisplayDate string          `json:"display_date,omitempty"` // "Aug 20, 2025"
	Location    string          `json:"location,omitempty"`
	Subtitle    string          `json:"subtitle"` // "Chico, CA • Aug 20, 2025"
	Tags        []string        `json:"tags"`
	Description string          `json:"description,omitempty"`
	Cover       MediaResponse   `json:"cover"`
	Media       []MediaResponse `json:"media"`
}

type TagResponse struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type ThumbnailResponse struct {
	Index   int    `json:"index"`
	Type    string `json:"type"`
	Preview string `json:"preview,omitempty"`
	Alt     string `json:"alt"`
	Active  bool   `json:"active"`
}

// LightboxResponse описывает открытый лайтбокс
type LightboxResponse struct {
	EntryID    string              `json:"entry_id"`
	MediaIndex int                 `json:"media_index"`
	MediaCount int                 `json:"media_count"`
	Counter    string              `json:"counter"` // "Media 2 of 5"
	Title      string              `json:"title"`
	Caption    string              `json:"caption"` // "Client • Location • Date"
	Media      MediaResponse       `json:"media"`
	Thumbnails []ThumbnailResponse `json:"thumbnails,omitempty"` // Только если медиа больше одного
}

// GalleryView полное состояние галереи для посетителя
type GalleryView struct {
	Query      string            `json:"query"`
	ActiveTags []string          `json:"active_tags"`
	Tags       []TagResponse     `json:"tags"`
	Entries    []EntryResponse   `json:"entries"`
	Empty      bool              `json:"empty"`
	Lightbox   *LightboxResponse `json:"lightbox,omitempty"`
}

type SetQueryRequest struct {
	Query string `json:"query" validate:"max=200"`
}

type OpenLightboxRequest struct {
	EntryID string `json:"entry_id" validate:"required"`
}

type JumpLightboxRequest struct {
	EntryID    string `json:"entry_id" validate:"required"`
	MediaIndex int    `json:"media_index"`
}

type KeyRequest struct {
	Key string `json:"key" validate:"required,max=32"`
}
