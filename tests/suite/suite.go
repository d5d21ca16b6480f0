package suite

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bluearc/internal/app"
	"bluearc/internal/config"

	"github.com/stretchr/testify/require"
)

type Suite struct {
	*testing.T
	Cfg    *config.Config
	Server *httptest.Server
	Client *http.Client
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()
	t.Parallel()

	cfg := config.MustLoadPath(configPath())

	// пути в конфиге заданы относительно корня репозитория
	if !filepath.IsAbs(cfg.Catalog.Path) {
		cfg.Catalog.Path = filepath.Join("..", cfg.Catalog.Path)
	}
	cfg.Site.PublicDir = t.TempDir()
	cfg.Catalog.Source = config.CatalogSourceFile
	cfg.State.Store = config.StateStoreMemory

	ctx, cancelCtx := context.WithTimeout(context.Background(), time.Minute)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	application, err := app.New(ctx, log, cfg)
	require.NoError(t, err)

	application.HTTPServer.BuildRouters()
	server := httptest.NewServer(application.HTTPServer.Handler())

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		t.Helper()
		server.Close()
		application.Stop()
		cancelCtx()
	})

	return ctx, &Suite{
		T:      t,
		Cfg:    cfg,
		Server: server,
		Client: &http.Client{Jar: jar, Timeout: 5 * time.Second},
	}
}

func configPath() string {
	const key = "CONFIG_PATH"

	if v := os.Getenv(key); v != "" {
		return v
	}

	return "../config/local.yaml"
}
