package gallery

import "bluearc/internal/domain/models"

// Cursor это позиция лайтбокса: проект и индекс медиа внутри него
type Cursor struct {
	EntryID    string `json:"entry_id"`
	MediaIndex int    `json:"media_index"`
}

// Snapshot сериализуемое состояние посетителя: фильтр и, если лайтбокс открыт, курсор
type Snapshot struct {
	Filter Filter  `json:"filter"`
	Cursor *Cursor `json:"cursor,omitempty"`
}

// VisibleFunc вычисляет видимые проекты. Позволяет подменить расчет кешированным.
type VisibleFunc func(catalog models.Catalog, f Filter) []models.GalleryEntry

type Option func(*State)

func WithVisibleFunc(fn VisibleFunc) Option {
	return func(s *State) {
		s.visibleFn = fn
	}
}

// State владеет фильтром и курсором лайтбокса поверх неизменяемого каталога.
// Лайтбокс имеет два состояния: закрыт (cursor == nil) и открыт.
type State struct {
	catalog   models.Catalog
	filter    Filter
	visible   []models.GalleryEntry
	cursor    *Cursor
	visibleFn VisibleFunc
}

func NewState(catalog models.Catalog, opts ...Option) *State {
	s := &State{
		catalog:   catalog,
		visibleFn: VisibleEntries,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.refresh()
	return s
}

// Restore восстанавливает состояние из снимка. Курсор, указывающий на
// невидимый проект, сбрасывается, индекс медиа приводится к допустимому.
func Restore(catalog models.Catalog, snap Snapshot, opts ...Option) *State {
	s := NewState(catalog, opts...)
	s.filter = Filter{Query: snap.Filter.Query}
	for _, t := range snap.Filter.ActiveTags {
		if !s.filter.IsTagActive(t) {
			s.filter.ActiveTags = append(s.filter.ActiveTags, t)
		}
	}
	s.refresh()

	if snap.Cursor != nil {
		if k := s.indexOf(snap.Cursor.EntryID); k >= 0 {
			s.cursor = &Cursor{
				EntryID:    snap.Cursor.EntryID,
				MediaIndex: clamp(snap.Cursor.MediaIndex, len(s.visible[k].Media)),
			}
		}
	}

	return s
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Filter: Filter{
			Query:      s.filter.Query,
			ActiveTags: append([]string(nil), s.filter.ActiveTags...),
		},
	}
	if s.cursor != nil {
		c := *s.cursor
		snap.Cursor = &c
	}
	return snap
}

func (s *State) Filter() Filter { return s.filter }

// Visible возвращает текущий список видимых проектов. Вызывающий не должен его менять.
func (s *State) Visible() []models.GalleryEntry { return s.visible }

func (s *State) SetQuery(q string) {
	s.filter.Query = q
	s.refresh()
}

func (s *State) ToggleTag(tag string) {
	s.filter = s.filter.WithTagToggled(tag)
	s.refresh()
}

func (s *State) ClearTags() {
	s.filter.ActiveTags = nil
	s.refresh()
}

// Open открывает лайтбокс на первом медиа проекта.
// Возвращает false, если проект не входит в видимый список.
func (s *State) Open(entryID string) bool {
	if s.indexOf(entryID) < 0 {
		return false
	}

	s.cursor = &Cursor{EntryID: entryID}
	return true
}

// Next переходит к следующему медиа; после последнего медиа проекта
// переходит на первое медиа следующего видимого проекта по кругу.
func (s *State) Next() {
	k, ok := s.position()
	if !ok {
		return
	}

	if s.cursor.MediaIndex+1 < len(s.visible[k].Media) {
		s.cursor.MediaIndex++
		return
	}

	k = (k + 1) % len(s.visible)
	s.cursor = &Cursor{EntryID: s.visible[k].ID}
}

// Prev обратен Next: с первого медиа проекта переходит на последнее медиа
// предыдущего видимого проекта.
func (s *State) Prev() {
	k, ok := s.position()
	if !ok {
		return
	}

	if s.cursor.MediaIndex-1 >= 0 {
		s.cursor.MediaIndex--
		return
	}

	n := len(s.visible)
	k = (k - 1 + n) % n
	s.cursor = &Cursor{
		EntryID:    s.visible[k].ID,
		MediaIndex: max(0, len(s.visible[k].Media)-1),
	}
}

// JumpTo ставит курсор напрямую. Индекс вне диапазона приводится к ближайшему допустимому.
func (s *State) JumpTo(entryID string, mediaIndex int) bool {
	k := s.indexOf(entryID)
	if k < 0 {
		return false
	}

	s.cursor = &Cursor{
		EntryID:    entryID,
		MediaIndex: clamp(mediaIndex, len(s.visible[k].Media)),
	}
	return true
}

// Close полностью сбрасывает курсор
func (s *State) Close() {
	s.cursor = nil
}

func (s *State) IsOpen() bool { return s.cursor != nil }

func (s *State) Cursor() (Cursor, bool) {
	if s.cursor == nil {
		return Cursor{}, false
	}
	return *s.cursor, true
}

// Current возвращает проект и медиа под курсором
func (s *State) Current() (models.GalleryEntry, models.MediaItem, bool) {
	k, ok := s.position()
	if !ok {
		return models.GalleryEntry{}, models.MediaItem{}, false
	}

	e := s.visible[k]
	return e, e.Media[s.cursor.MediaIndex], true
}

func (s *State) position() (int, bool) {
	if s.cursor == nil || len(s.visible) == 0 {
		return -1, false
	}

	k := s.indexOf(s.cursor.EntryID)
	if k < 0 {
		return -1, false
	}
	return k, true
}

func (s *State) indexOf(entryID string) int {
	for i, e := range s.visible {
		if e.ID == entryID {
			return i
		}
	}
	return -1
}

// refresh пересчитывает видимый список и закрывает лайтбокс,
// если открытый проект перестал проходить фильтр.
func (s *State) refresh() {
	s.visible = s.visibleFn(s.catalog, s.filter)

	if s.cursor != nil && s.indexOf(s.cursor.EntryID) < 0 {
		s.cursor = nil
	}
}

func clamp(i, n int) int {
	if i < 0 || n <= 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
