package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/floorconsole/internal/devicestatus"
	"github.com/odyssey-erp/floorconsole/internal/observability"
	"github.com/odyssey-erp/floorconsole/internal/routes"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case devicestatus.StatusPath:
			_, _ = w.Write([]byte(`{"devices":[]}`))
		default:
			_, _ = w.Write([]byte(`{"backend":"` + r.URL.Path + `"}`))
		}
	}))
	t.Cleanup(backend.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics()
	forwarder, err := devicestatus.NewForwarder(backend.URL, logger)
	require.NoError(t, err)

	return NewRouter(RouterParams{
		Logger: logger,
		Config: &Config{AppEnv: "development", RateLimitPerMinute: 1000},
		StatusHandler: devicestatus.NewHandler(devicestatus.Config{
			UpstreamURL: backend.URL,
			Logger:      logger,
			Observer:    metrics,
		}),
		Forwarder: forwarder,
		Routes:    routes.Console,
		Assets: fstest.MapFS{
			"index.html":        {Data: []byte("<div id=\"app\"></div>")},
			"assets/console.js": {Data: []byte("console.log(1)")},
			"favicon.svg":       {Data: []byte("<svg/>")},
		},
		Metrics: metrics,
	})
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	res := serve(newTestRouter(t), http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, `{"status":"ok"}`, res.Body.String())
}

func TestHistoryFallback(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/", "/production-logs/12/edit", "/ProductionInput", "/workers?page=2"} {
		res := serve(router, http.MethodGet, path)
		require.Equal(t, http.StatusOK, res.Code, path)
		require.Contains(t, res.Body.String(), `<div id="app">`, path)
		require.Equal(t, "no-cache", res.Header().Get("Cache-Control"), path)
	}

	res := serve(router, http.MethodGet, "/nowhere/at/all")
	require.Equal(t, http.StatusNotFound, res.Code)
	require.Equal(t, "application/problem+json", res.Header().Get("Content-Type"))
}

func TestStaticAssets(t *testing.T) {
	router := newTestRouter(t)

	res := serve(router, http.MethodGet, "/assets/console.js")
	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, "public, max-age=3600", res.Header().Get("Cache-Control"))
	require.Equal(t, "console.log(1)", res.Body.String())

	res = serve(router, http.MethodGet, "/favicon.svg")
	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, "<svg/>", res.Body.String())
}

func TestSecurityHeaders(t *testing.T) {
	res := serve(newTestRouter(t), http.MethodGet, "/")
	require.Equal(t, "DENY", res.Header().Get("X-Frame-Options"))
	require.Equal(t, "nosniff", res.Header().Get("X-Content-Type-Options"))
	require.Contains(t, res.Header().Get("Content-Security-Policy"), "default-src 'self'")
}

func TestDeviceStatusOnBothPaths(t *testing.T) {
	router := newTestRouter(t)
	for _, path := range []string{"/devices/status", "/api/devices/status"} {
		res := serve(router, http.MethodGet, path)
		require.Equal(t, http.StatusOK, res.Code, path)
		require.Equal(t, `{"devices":[]}`, res.Body.String(), path)
		require.Equal(t, "*", res.Header().Get("Access-Control-Allow-Origin"), path)
	}
}

func TestAPIForwarder(t *testing.T) {
	res := serve(newTestRouter(t), http.MethodGet, "/api/workers/9")
	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, `{"backend":"/workers/9"}`, res.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	serve(router, http.MethodGet, "/devices/status")

	res := serve(router, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, res.Code)
	require.Contains(t, res.Body.String(), `floor_proxy_upstream_total{outcome="ok"} 1`)
	require.Contains(t, res.Body.String(), "floor_http_requests_total")
}
