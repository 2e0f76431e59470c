package devicestatus

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/odyssey-erp/floorconsole/internal/platform/httpx"
)

// NewForwarder returns a reverse proxy that serves the backend under the
// console's own origin. Mount it behind http.StripPrefix so that
// /api/workers reaches {upstream}/workers.
func NewForwarder(upstreamURL string, logger *slog.Logger) (http.Handler, error) {
	target, err := url.Parse(upstreamURL)
	if err != nil {
		return nil, fmt.Errorf("devicestatus: parse upstream: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("devicestatus: upstream must be absolute: %q", upstreamURL)
	}
	if logger == nil {
		logger = slog.Default()
	}
	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Warn("api forward failed", slog.String("path", r.URL.Path), slog.Any("error", err))
			httpx.Problem(w, http.StatusBadGateway, "Bad Gateway", "backend unavailable")
		},
	}
	return proxy, nil
}
