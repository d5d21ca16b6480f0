package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"bluearc/internal/lib/logger/sl"
	"bluearc/internal/transport/http/dto"
	"bluearc/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	_ "bluearc/docs"
)

const (
	SessionName   = "gallery"
	visitorIDKey  = "visitor_id"
	sessionMaxAge = 60 * 60 * 24 * 30
)

var (
	ErrEntryNotFound = errors.New("entry not found")
)

type GalleryService interface {
	Tags() []string
	Entry(id string) (*dto.EntryResponse, error)
	View(ctx context.Context, visitorID string) (*dto.GalleryView, error)
	SetQuery(ctx context.Context, visitorID, query string) (*dto.GalleryView, error)
	ToggleTag(ctx context.Context, visitorID, tag string) (*dto.GalleryView, error)
	ClearTags(ctx context.Context, visitorID string) (*dto.GalleryView, error)
	Open(ctx context.Context, visitorID, entryID string) (*dto.GalleryView, error)
	Next(ctx context.Context, visitorID string) (*dto.GalleryView, error)
	Prev(ctx context.Context, visitorID string) (*dto.GalleryView, error)
	JumpTo(ctx context.Context, visitorID, entryID string, mediaIndex int) (*dto.GalleryView, error)
	Close(ctx context.Context, visitorID string) (*dto.GalleryView, error)
	HandleKey(ctx context.Context, visitorID, key string) (*dto.GalleryView, error)
	Forget(ctx context.Context, visitorID string) error
}

type Routers struct {
	log            *slog.Logger
	GalleryService GalleryService
	// notFound сообщает, означает ли ошибка сервиса отсутствующий проект
	notFound func(error) bool
}

func NewRouter(log *slog.Logger, galleryService GalleryService, notFound ...error) *Routers {
	known := append([]error{ErrEntryNotFound}, notFound...)

	return &Routers{
		log:            log,
		GalleryService: galleryService,
		notFound: func(err error) bool {
			for _, target := range known {
				if errors.Is(err, target) {
					return true
				}
			}
			return false
		},
	}
}

// Health godoc
// @Summary Проверка состояния сервиса
// @Tags service
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, response.Response{Status: "ok"})
}

// GetTags godoc
// @Summary Все теги каталога
// @Description Объединение тегов всех проектов, отсортированное по возрастанию
// @Tags gallery
// @Produce json
// @Success 200 {object} response.Response{data=[]string}
// @Router /api/v1/gallery/tags [get]
func (r *Routers) GetTags(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(r.GalleryService.Tags()))
}

// GetEntry godoc
// @Summary Проект каталога по ID
// @Tags gallery
// @Produce json
// @Param id path string true "ID проекта"
// @Success 200 {object} response.Response{data=dto.EntryResponse}
// @Failure 404 {object} response.ErrorResponse "Проект не найден"
// @Router /api/v1/gallery/entries/{id} [get]
func (r *Routers) GetEntry(c echo.Context) error {
	const op = "http.routers.GetEntry"

	entry, err := r.GalleryService.Entry(c.Param("id"))
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(entry))
}

// GetView godoc
// @Summary Текущее состояние галереи посетителя
// @Description Видимые проекты, теги и открытый лайтбокс. Посетитель определяется cookie сессии.
// @Tags gallery
// @Produce json
// @Success 200 {object} response.Response{data=dto.GalleryView}
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/gallery [get]
func (r *Routers) GetView(c echo.Context) error {
	const op = "http.routers.GetView"

	return r.withVisitor(c, op, func(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
		return r.GalleryService.View(ctx, visitorID)
	})
}

// ResetView godoc
// @Summary Сбросить фильтр и лайтбокс посетителя
// @Tags gallery
// @Produce json
// @Success 200 {object} response.Response{data=dto.GalleryView}
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/gallery [delete]
func (r *Routers) ResetView(c echo.Context) error {
	const op = "http.routers.ResetView"

	return r.withVisitor(c, op, func(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
		if err := r.GalleryService.Forget(ctx, visitorID); err != nil {
			return nil, err
		}
		return r.GalleryService.View(ctx, visitorID)
	})
}

// SetQuery godoc
// @Summary Установить текстовый запрос
// @Tags filter
// @Accept json
// @Produce json
// @Param request body dto.SetQueryRequest true "Запрос"
// @Success 200 {object} response.Response{data=dto.GalleryView}
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Router /api/v1/gallery/filter/query [put]
func (r *Routers) SetQuery(c echo.Context) error {
	const op = "http.routers.SetQuery"

	var req dto.SetQueryRequest
	if err := r.bind(c, &req); err != nil {
		return r.badRequest(c, op, err)
	}

	return r.withVisitor(c, op, func(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
		return r.GalleryService.SetQuery(ctx, visitorID, req.Query)
	})
}

// ToggleTag godoc
// @Summary Включить или выключить тег
// @Tags filter
// @Produce json
// @Param tag path string true "Тег"
// @Success 200 {object} response.Response{data=dto.GalleryView}
// @Router /api/v1/gallery/filter/tags/{tag} [post]
func (r *Routers) ToggleTag(c echo.Context) error {
	const op = "http.routers.ToggleTag"

	tag := c.Param("tag")
	if strings.TrimSpace(tag) == "" {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "tag is required"))
	}

	return r.withVisitor(c, op, func(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
		return r.GalleryService.ToggleTag(ctx, visitorID, tag)
	})
}

// ClearTags godoc
// @Summary Сбросить все активные теги
// @Tags filter
// @Produce json
// @Success 200 {object} response.Response{data=dto.GalleryView}
// @Router /api/v1/gallery/filter/tags [delete]
func (r *Routers) ClearTags(c echo.Context) error {
	const op = "http.routers.ClearTags"

	return r.withVisitor(c, op, func(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
		return r.GalleryService.ClearTags(ctx, visitorID)
	})
}

// OpenLightbox godoc
// @Summary Открыть лайтбокс на проекте
// @Tags lightbox
// @Accept json
// @Produce json
// @Param request body dto.OpenLightboxRequest true "Проект"
// @Success 200 {object} response.Response{data=dto.GalleryView}
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 404 {object} response.ErrorResponse "Проект не найден или скрыт фильтром"
// @Router /api/v1/gallery/lightbox [post]
func (r *Routers) OpenLightbox(c echo.Context) error {
	const op = "http.routers.OpenLightbox"

	var req dto.OpenLightboxRequest
	if err := r.bind(c, &req); err != nil {
		return r.badRequest(c, op, err)
	}

	return r.withVisitor(c, op, func(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
		return r.GalleryService.Open(ctx, visitorID, req.EntryID)
	})
}

// NextMedia godoc
// @Summary Следующее медиа
// @Tags lightbox
// @Produce json
// @Success 200 {object} response.Response{data=dto.GalleryView}
// @Router /api/v1/gallery/lightbox/next [post]
func (r *Routers) NextMedia(c echo.Context) error {
	const op = "http.routers.NextMedia"

	return r.withVisitor(c, op, func(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
		return r.GalleryService.Next(ctx, visitorID)
	})
}

// PrevMedia godoc
// @Summary Предыдущее медиа
// @Tags lightbox
// @Produce json
// @Success 200 {object} response.Response{data=dto.GalleryView}
// @Router /api/v1/gallery/lightbox/prev [post]
func (r *Routers) PrevMedia(c echo.Context) error {
	const op = "http.routers.PrevMedia"

	return r.withVisitor(c, op, func(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
		return r.GalleryService.Prev(ctx, visitorID)
	})
}

// JumpTo godoc
// @Summary Перейти к медиа по миниатюре
// @Tags lightbox
// @Accept json
// @Produce json
// @Param request body dto.JumpLightboxRequest true "Проект и индекс медиа"
// @Success 200 {object} response.Response{data=dto.GalleryView}
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 404 {object} response.ErrorResponse "Проект не найден или скрыт фильтром"
// @Router /api/v1/gallery/lightbox [put]
func (r *Routers) JumpTo(c echo.Context) error {
	const op = "http.routers.JumpTo"

	var req dto.JumpLightboxRequest
	if err := r.bind(c, &req); err != nil {
		return r.badRequest(c, op, err)
	}

	return r.withVisitor(c, op, func(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
		return r.GalleryService.JumpTo(ctx, visitorID, req.EntryID, req.MediaIndex)
	})
}

// CloseLightbox godoc
// @Summary Закрыть лайтбокс
// @Tags lightbox
// @Produce json
// @Success 200 {object} response.Response{data=dto.GalleryView}
// @Router /api/v1/gallery/lightbox [delete]
func (r *Routers) CloseLightbox(c echo.Context) error {
	const op = "http.routers.CloseLightbox"

	return r.withVisitor(c, op, func(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
		return r.GalleryService.Close(ctx, visitorID)
	})
}

// HandleKey godoc
// @Summary Клавиатурное управление лайтбоксом
// @Description Escape закрывает, ArrowRight и ArrowLeft листают. Прочие клавиши игнорируются.
// @Tags lightbox
// @Accept json
// @Produce json
// @Param request body dto.KeyRequest true "Клавиша"
// @Success 200 {object} response.Response{data=dto.GalleryView}
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Router /api/v1/gallery/lightbox/keys [post]
func (r *Routers) HandleKey(c echo.Context) error {
	const op = "http.routers.HandleKey"

	var req dto.KeyRequest
	if err := r.bind(c, &req); err != nil {
		return r.badRequest(c, op, err)
	}

	return r.withVisitor(c, op, func(ctx context.Context, visitorID string) (*dto.GalleryView, error) {
		return r.GalleryService.HandleKey(ctx, visitorID, req.Key)
	})
}

func (r *Routers) bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}

	return c.Validate(req)
}

func (r *Routers) badRequest(c echo.Context, op string, err error) error {
	r.log.Warn("invalid format request", slog.String("op", op), sl.Err(err))

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
}

func (r *Routers) withVisitor(
	c echo.Context,
	op string,
	fn func(ctx context.Context, visitorID string) (*dto.GalleryView, error),
) error {
	visitorID, err := r.visitorID(c)
	if err != nil {
		return r.fail(c, op, err)
	}

	view, err := fn(c.Request().Context(), visitorID)
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(view))
}

// visitorID берет ID посетителя из сессии или выдает новый
func (r *Routers) visitorID(c echo.Context) (string, error) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		// поврежденная cookie: начинаем новую сессию
		r.log.Debug("session decode failed", sl.Err(err))
	}
	if sess == nil {
		return "", err
	}

	if id, ok := sess.Values[visitorIDKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	sess.Values[visitorIDKey] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return "", err
	}

	return id, nil
}

func (r *Routers) fail(c echo.Context, op string, err error) error {
	if r.notFound(err) {
		r.log.Info("entry not found", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrEntryNotFound)
	}

	r.log.Error("request failed", slog.String("op", op), sl.Err(err))
	return c.JSON(http.StatusInternalServerError, response.ErrInternal)
}
