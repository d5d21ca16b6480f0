package gallery

import (
	"fmt"
	"slices"
	"strings"

	"bluearc/internal/domain/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllTags возвращает объединение тегов всех проектов без повторов,
// отсортированное побайтово по возрастанию.
func AllTags(catalog models.Catalog) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)

	for _, e := range catalog {
		for _, t := range e.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}

	slices.Sort(tags)
	return tags
}

// Filter это текстовый запрос плюс набор активных тегов (AND).
// ActiveTags хранит порядок включения, повторов в нем нет.
type Filter struct {
	Query      string   `json:"query"`
	ActiveTags []string `json:"active_tags"`
}

func (f Filter) IsTagActive(tag string) bool {
	return slices.Contains(f.ActiveTags, tag)
}

// WithTagToggled возвращает копию фильтра, в которой тег включен или выключен
func (f Filter) WithTagToggled(tag string) Filter {
	out := Filter{Query: f.Query}

	if f.IsTagActive(tag) {
		out.ActiveTags = make([]string, 0, len(f.ActiveTags)-1)
		for _, t := range f.ActiveTags {
			if t != tag {
				out.ActiveTags = append(out.ActiveTags, t)
			}
		}
		return out
	}

	out.ActiveTags = make([]string, 0, len(f.ActiveTags)+1)
	out.ActiveTags = append(out.ActiveTags, f.ActiveTags...)
	out.ActiveTags = append(out.ActiveTags, tag)
	return out
}

// Key возвращает каноничное представление фильтра для кеширования.
// Порядок включения тегов на результат не влияет, поэтому теги сортируются.
// Каждая часть пишется с префиксом длины, так что разные фильтры
// не могут дать одинаковый ключ.
func (f Filter) Key() string {
	tags := slices.Clone(f.ActiveTags)
	slices.Sort(tags)

	var b strings.Builder
	writeKeyPart(&b, fold(f.Query))
	for _, t := range tags {
		writeKeyPart(&b, t)
	}
	return b.String()
}

func writeKeyPart(b *strings.Builder, s string) {
	fmt.Fprintf(b, "%d:%s", len(s), s)
}

// Matches проверяет проект по обоим условиям фильтра
func (f Filter) Matches(e models.GalleryEntry) bool {
	return matchesQuery(e, fold(f.Query)) && f.matchesTags(e)
}

func (f Filter) matchesTags(e models.GalleryEntry) bool {
	for _, t := range f.ActiveTags {
		if !e.HasTag(t) {
			return false
		}
	}
	return true
}

func matchesQuery(e models.GalleryEntry, q string) bool {
	if q == "" {
		return true
	}

	for _, field := range []string{e.Title, e.Description, e.Client, e.Location} {
		if strings.Contains(fold(field), q) {
			return true
		}
	}
	return false
}

// VisibleEntries возвращает проекты, прошедшие фильтр, в исходном порядке каталога
func VisibleEntries(catalog models.Catalog, f Filter) []models.GalleryEntry {
	q := fold(f.Query)

	visible := make([]models.GalleryEntry, 0, len(catalog))
	for _, e := range catalog {
		if matchesQuery(e, q) && f.matchesTags(e) {
			visible = append(visible, e)
		}
	}
	return visible
}

// cases.Caser хранит состояние, поэтому создается на каждый вызов
func fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(s)
}
