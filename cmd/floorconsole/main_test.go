package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/floorconsole/internal/app"
	_ "github.com/odyssey-erp/floorconsole/testing"
)

func TestMainSkipsInTestMode(t *testing.T) {
	require.True(t, app.InTestMode())
	main()
}

func testConfig() *app.Config {
	return &app.Config{
		AppEnv:             "development",
		UpstreamURL:        "http://127.0.0.1:1",
		RateLimitPerMinute: 100,
	}
}

func TestBuildHandlerServesEmbeddedBundle(t *testing.T) {
	handler, err := buildHandler(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/server-status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `<div id="app">`)
}

func TestStaticDirOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("on disk"), 0o600))
	cfg := testConfig()
	cfg.StaticDir = dir

	handler, err := buildHandler(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "on disk", rec.Body.String())

	cfg.StaticDir = filepath.Join(dir, "index.html")
	_, err = buildHandler(cfg, nil)
	require.Error(t, err)
}
