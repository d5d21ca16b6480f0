package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

// GalleryEntry представляет один выполненный проект в галерее
type GalleryEntry struct {
	ID          string      `yaml:"id" json:"id" validate:"required"`
	Title       string      `yaml:"title" json:"title" validate:"required"`
	Client      string      `yaml:"client,omitempty" json:"client,omitempty"`
	Date        string      `yaml:"date,omitempty" json:"date,omitempty"` // Календарная дата ISO, без времени
	Location    string      `yaml:"location,omitempty" json:"location,omitempty"`
	Tags        []string    `yaml:"tags" json:"tags"` // Теги в авторском порядке
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Media       []MediaItem `yaml:"media" json:"media" validate:"required,min=1,dive"`
}

// HasTag проверяет наличие тега у проекта
func (e GalleryEntry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Catalog это упорядоченный неизменяемый набор проектов
type Catalog []GalleryEntry

// Index возвращает позицию проекта с заданным ID или -1
func (c Catalog) Index(id string) int {
	for i, e := range c {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// ValidateCatalog проверяет каталог целиком и собирает все нарушения в одну ошибку
func ValidateCatalog(v *validator.Validate, entries Catalog) error {
	var validationErrors []string

	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		prefix := fmt.Sprintf("entry[%d] %q", i, e.ID)

		if err := v.Struct(e); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: %s", prefix, err.Error()))
		}

		if _, ok := seen[e.ID]; ok && e.ID != "" {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: duplicate id", prefix))
		}
		seen[e.ID] = struct{}{}

		if e.Date != "" {
			if _, err := time.Parse(DateLayout, e.Date); err != nil {
				validationErrors = append(validationErrors, fmt.Sprintf("%s: date must be YYYY-MM-DD", prefix))
			}
		}

		for j, m := range e.Media {
			for _, msg := range m.validate() {
				validationErrors = append(validationErrors, fmt.Sprintf("%s: media[%d]: %s", prefix, j, msg))
			}
		}
	}

	if len(validationErrors) > 0 {
		return &CatalogValidationError{
			Errors: validationErrors,
		}
	}

	return nil
}

// CatalogValidationError кастомный тип ошибки для валидации каталога
type CatalogValidationError struct {
	Errors []string
}

func (e *CatalogValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed: %s", strings.Join(e.Errors, "; "))
}

// IsCatalogValidationError проверяет, является ли ошибка ошибкой валидации каталога
func IsCatalogValidationError(err error) bool {
	_, ok := err.(*CatalogValidationError)
	return ok
}
