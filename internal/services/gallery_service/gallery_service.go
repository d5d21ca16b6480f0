package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"bluearc/internal/domain/gallery"
	"bluearc/internal/domain/models"
	"bluearc/internal/lib/assetpath"
	"bluearc/internal/lib/logger/sl"
	"bluearc/internal/metrics"
	"bluearc/internal/repository"
	"bluearc/internal/transport/http/dto"

	"github.com/patrickmn/go-cache"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
)

const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

type GalleryService struct {
	log      *slog.Logger
	catalog  models.Catalog
	tags     []string
	states   repository.StateRepository
	assets   assetpath.Resolver
	stateTTL time.Duration
	visible  *cache.Cache
}

func NewGalleryService(
	log *slog.Logger,
	catalog models.Catalog,
	states repository.StateRepository,
	assets assetpath.Resolver,
	stateTTL time.Duration,
) *GalleryService {
	return &GalleryService{
		log:      log,
		catalog:  catalog,
		tags:     gallery.AllTags(catalog),
		states:   states,
		assets:   assets,
		stateTTL: stateTTL,
		visible:  cache.New(10*time.Minute, 20*time.Minute),
	}
}

// Tags возвращает все теги каталога в стабильном порядке
func (s *GalleryService) Tags() []string {
	return append([]string(nil), s.tags...)
}

// Entry возвращает проект каталога по ID независимо от фильтра
func (s *GalleryService) Entry(id string) (*dto.EntryResponse, error) {
	i := s.catalog.Index(id)
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", id, ErrEntryNotFound)
	}

	resp := s.mapToEntryResponse(s.catalog[i])
	return &resp, nil
}

// View возвращает текущее состояние галереи посетителя, ничего не меняя
func (s *GalleryService) View(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
	const op = "service.GalleryService.View"

	st, err := s.restore(ctx, visitorID)
	if err != nil {
		s.log.Error("failed to restore state", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.mapToView(st), nil
}

func (s *GalleryService) SetQuery(ctx context.Context, visitorID, query string) (*dto.GalleryView, error) {
	const op = "service.GalleryService.SetQuery"

	return s.apply(ctx, op, visitorID, "set_query", func(st *gallery.State) error {
		st.SetQuery(query)
		return nil
	})
}

func (s *GalleryService) ToggleTag(ctx context.Context, visitorID, tag string) (*dto.GalleryView, error) {
	const op = "service.GalleryService.ToggleTag"

	return s.apply(ctx, op, visitorID, "toggle_tag", func(st *gallery.State) error {
		st.ToggleTag(tag)
		return nil
	})
}

func (s *GalleryService) ClearTags(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
	const op = "service.GalleryService.ClearTags"

	return s.apply(ctx, op, visitorID, "clear_tags", func(st *gallery.State) error {
		st.ClearTags()
		return nil
	})
}

// Open открывает лайтбокс на первом медиа проекта
func (s *GalleryService) Open(ctx context.Context, visitorID, entryID string) (*dto.GalleryView, error) {
	const op = "service.GalleryService.Open"

	return s.apply(ctx, op, visitorID, "open", func(st *gallery.State) error {
		if !st.Open(entryID) {
			return fmt.Errorf("%s: %w", entryID, ErrEntryNotFound)
		}
		return nil
	})
}

func (s *GalleryService) Next(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
	const op = "service.GalleryService.Next"

	return s.apply(ctx, op, visitorID, "next", func(st *gallery.State) error {
		st.Next()
		return nil
	})
}

func (s *GalleryService) Prev(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
	const op = "service.GalleryService.Prev"

	return s.apply(ctx, op, visitorID, "prev", func(st *gallery.State) error {
		st.Prev()
		return nil
	})
}

// JumpTo переходит к медиа проекта из ленты миниатюр; индекс приводится к допустимому
func (s *GalleryService) JumpTo(ctx context.Context, visitorID, entryID string, mediaIndex int) (*dto.GalleryView, error) {
	const op = "service.GalleryService.JumpTo"

	return s.apply(ctx, op, visitorID, "jump", func(st *gallery.State) error {
		if !st.JumpTo(entryID, mediaIndex) {
			return fmt.Errorf("%s: %w", entryID, ErrEntryNotFound)
		}
		return nil
	})
}

func (s *GalleryService) Close(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
	const op = "service.GalleryService.Close"

	return s.apply(ctx, op, visitorID, "close", func(st *gallery.State) error {
		st.Close()
		return nil
	})
}

// HandleKey обрабатывает глобальные клавиши лайтбокса. Остальные клавиши игнорируются.
func (s *GalleryService) HandleKey(ctx context.Context, visitorID, key string) (*dto.GalleryView, error) {
	switch key {
	case KeyEscape:
		return s.Close(ctx, visitorID)
	case KeyArrowRight:
		return s.Next(ctx, visitorID)
	case KeyArrowLeft:
		return s.Prev(ctx, visitorID)
	default:
		s.log.Debug("ignoring key", slog.String("key", key))
		return s.View(ctx, visitorID)
	}
}

// Forget удаляет сохраненное состояние посетителя
func (s *GalleryService) Forget(ctx context.Context, visitorID string) error {
	const op = "service.GalleryService.Forget"

	if err := s.states.Delete(ctx, visitorID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *GalleryService) apply(
	ctx context.Context,
	op string,
	visitorID string,
	action string,
	fn func(st *gallery.State) error,
) (*dto.GalleryView, error) {
	log := s.log.With(
		slog.String("op", op),
		slog.String("visitor_id", visitorID),
	)

	st, err := s.restore(ctx, visitorID)
	if err != nil {
		log.Error("failed to restore state", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := fn(st); err != nil {
		log.Warn("action rejected", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.states.Save(ctx, visitorID, st.Snapshot(), s.stateTTL); err != nil {
		log.Error("failed to save state", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.GalleryActions.WithLabelValues(action).Inc()

	if c, ok := st.Cursor(); ok {
		log.Debug("state updated",
			slog.String("action", action),
			slog.String("entry_id", c.EntryID),
			slog.Int("media_index", c.MediaIndex),
		)
	} else {
		log.Debug("state updated", slog.String("action", action))
	}

	return s.mapToView(st), nil
}

func (s *GalleryService) restore(ctx context.Context, visitorID string) (*gallery.State, error) {
	snap, err := s.states.Load(ctx, visitorID)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			return gallery.NewState(s.catalog, gallery.WithVisibleFunc(s.cachedVisible)), nil
		}
		return nil, err
	}

	return gallery.Restore(s.catalog, snap, gallery.WithVisibleFunc(s.cachedVisible)), nil
}

// cachedVisible мемоизирует видимый список по каноничному ключу фильтра.
// Каталог неизменяем, поэтому ключа фильтра достаточно. Кешируются только
// фильтры без текста и с тегами каталога: их число ограничено каталогом.
func (s *GalleryService) cachedVisible(catalog models.Catalog, f gallery.Filter) []models.GalleryEntry {
	if !s.memoizable(f) {
		metrics.VisibleCacheLookups.WithLabelValues("skip").Inc()
		return gallery.VisibleEntries(catalog, f)
	}

	key := f.Key()

	if v, ok := s.visible.Get(key); ok {
		metrics.VisibleCacheLookups.WithLabelValues("hit").Inc()
		return v.([]models.GalleryEntry)
	}

	metrics.VisibleCacheLookups.WithLabelValues("miss").Inc()
	visible := gallery.VisibleEntries(catalog, f)
	s.visible.SetDefault(key, visible)
	return visible
}

func (s *GalleryService) memoizable(f gallery.Filter) bool {
	if f.Query != "" {
		return false
	}
	for _, t := range f.ActiveTags {
		if _, ok := slices.BinarySearch(s.tags, t); !ok {
			return false
		}
	}
	return true
}
