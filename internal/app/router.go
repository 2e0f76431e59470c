package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/odyssey-erp/floorconsole/internal/devicestatus"
	"github.com/odyssey-erp/floorconsole/internal/observability"
	"github.com/odyssey-erp/floorconsole/internal/routes"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger        *slog.Logger
	Config        *Config
	StatusHandler *devicestatus.Handler
	// Forwarder serves /api/*; nil disables the same-origin API path.
	Forwarder http.Handler
	Routes    *routes.Table
	Assets    fs.FS
	Metrics   *observability.Metrics
}

// NewRouter constructs the chi.Router with console defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.StatusHandler != nil {
		params.StatusHandler.MountRoutes(r)
		r.Handle("/api"+devicestatus.StatusPath, params.StatusHandler)
	}
	if params.Forwarder != nil {
		r.Handle("/api/*", http.StripPrefix("/api", params.Forwarder))
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	if params.Assets != nil {
		fileServer := http.FileServer(http.FS(params.Assets))
		r.Handle("/assets/*", staticCacheHandler(fileServer))
		spa := newSPAHandler(params.Assets, params.Routes, params.Logger)
		r.Get("/*", spa.ServeHTTP)
		r.Head("/*", spa.ServeHTTP)
	}

	return r
}

// staticCacheHandler wraps a file server with Cache-Control headers.
// Hashed build assets are cached for 1 hour in browser.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
