package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"bluearc/internal/config"
	"bluearc/internal/lib/logger/sl"
	appmiddleware "bluearc/internal/middleware"
	httprouters "bluearc/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m         *http.ServeMux
	log       *slog.Logger
	e         *echo.Echo
	routers   *httprouters.Routers
	host      string
	port      string
	timeout   time.Duration
	basePath  string
	publicDir string
}

func New(log *slog.Logger, httpCfg config.HTTPConfig, site config.SiteConfig, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(httpCfg.SessionSecret))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogLatency:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			)

			return nil
		},
	}))

	if httpCfg.Timeout > 0 {
		e.Server.ReadTimeout = httpCfg.Timeout
		e.Server.WriteTimeout = httpCfg.Timeout
	}

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", sl.Err(err))
	}

	return &Server{
		m:         mux,
		log:       log,
		e:         e,
		routers:   routers,
		host:      httpCfg.Host,
		port:      httpCfg.Port,
		timeout:   httpCfg.Timeout,
		basePath:  site.BasePath,
		publicDir: site.PublicDir,
	}
}

// Handler отдает echo как http.Handler, например для httptest
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"), slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(s.addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	timeout := s.timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	optCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.log.Info("stopping", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) addr() string {
	return fmt.Sprintf("%s:%s", s.host, s.port)
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", s.routers.Health)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := s.e.Group("/api/v1")
	{
		galleryGroup := api.Group("/gallery")
		{
			galleryGroup.GET("", s.routers.GetView)
			galleryGroup.DELETE("", s.routers.ResetView)
			galleryGroup.GET("/tags", s.routers.GetTags)
			galleryGroup.GET("/entries/:id", s.routers.GetEntry)
		}

		filterGroup := galleryGroup.Group("/filter")
		{
			filterGroup.PUT("/query", s.routers.SetQuery)
			filterGroup.POST("/tags/:tag", s.routers.ToggleTag)
			filterGroup.DELETE("/tags", s.routers.ClearTags)
		}

		lightboxGroup := galleryGroup.Group("/lightbox")
		{
			lightboxGroup.POST("", s.routers.OpenLightbox)
			lightboxGroup.PUT("", s.routers.JumpTo)
			lightboxGroup.DELETE("", s.routers.CloseLightbox)
			lightboxGroup.POST("/next", s.routers.NextMedia)
			lightboxGroup.POST("/prev", s.routers.PrevMedia)
			lightboxGroup.POST("/keys", s.routers.HandleKey)
		}
	}

	// медиа сайта отдаются под базовым путем, как их разрешает assetpath
	if s.publicDir != "" {
		prefix := s.basePath
		if prefix == "" {
			prefix = "/"
		}
		s.e.Static(prefix, s.publicDir)
	}
}
