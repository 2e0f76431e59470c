package app

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/odyssey-erp/floorconsole/internal/platform/httpx"
	"github.com/odyssey-erp/floorconsole/internal/routes"
)

const indexFile = "index.html"

// spaHandler serves the console bundle: real files as-is, every path the
// route table knows as index.html, anything else as 404.
type spaHandler struct {
	assets fs.FS
	table  *routes.Table
	logger *slog.Logger
}

func newSPAHandler(assets fs.FS, table *routes.Table, logger *slog.Logger) *spaHandler {
	if table == nil {
		table = routes.Console
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &spaHandler{assets: assets, table: table, logger: logger}
}

func (h *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name != "" && name != indexFile {
		if info, err := fs.Stat(h.assets, name); err == nil && !info.IsDir() {
			http.ServeFileFS(w, r, h.assets, name)
			return
		}
	}

	if _, ok := h.table.Match(r.URL.Path); !ok {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "no console page at "+r.URL.Path)
		return
	}

	index, err := fs.ReadFile(h.assets, indexFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.logger.Error("console bundle has no index.html")
		} else {
			h.logger.Error("read index.html", slog.Any("error", err))
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(index)
	}
}
