// Package devicestatus relays the backend's device status to browsers that
// cannot reach the backend directly.
package devicestatus

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/floorconsole/internal/platform/httpx"
)

const (
	// StatusPath is the relayed endpoint, on both the backend and this server.
	StatusPath = "/devices/status"

	errorMessage = "Failed to fetch data from backend"
	allowHeaders = "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version"
	maxBody      = 8 << 20
)

// Upstream outcomes reported to the Observer.
const (
	OutcomeOK             = "ok"
	OutcomeStatusError    = "status_error"
	OutcomeTransportError = "transport_error"
	OutcomeInvalidBody    = "invalid_body"
)

// Observer records upstream outcomes.
type Observer interface {
	ObserveUpstream(outcome string)
}

var errInvalidBody = errors.New("backend returned invalid JSON")

// statusError carries a non-2xx backend status; its text is the details
// string clients display.
type statusError int

func (e statusError) Error() string {
	return "Backend responded with status: " + strconv.Itoa(int(e))
}

// ErrorEnvelope is the body returned when the backend cannot be read.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Config wires a Handler.
type Config struct {
	UpstreamURL string
	Timeout     time.Duration
	Client      *http.Client
	Logger      *slog.Logger
	Observer    Observer
}

// Handler serves the device status relay. It keeps no state between requests.
type Handler struct {
	upstream string
	client   *http.Client
	logger   *slog.Logger
	observer Observer
}

// NewHandler constructs a relay for cfg.UpstreamURL.
func NewHandler(cfg Config) *Handler {
	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		upstream: strings.TrimRight(cfg.UpstreamURL, "/"),
		client:   client,
		logger:   logger,
		observer: cfg.Observer,
	}
}

// MountRoutes registers the relay at StatusPath.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Handle(StatusPath, h)
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w.Header())

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodGet:
	default:
		w.Header().Set("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, outcome, err := h.fetch(r.Context())
	h.observe(outcome)
	if err != nil {
		h.logger.Error("device status proxy", slog.String("upstream", h.upstream), slog.Any("error", err))
		httpx.JSON(w, http.StatusInternalServerError, ErrorEnvelope{Error: errorMessage, Details: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handler) fetch(ctx context.Context) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.upstream+StatusPath, nil)
	if err != nil {
		return nil, OutcomeTransportError, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, OutcomeTransportError, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, OutcomeStatusError, statusError(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, OutcomeTransportError, err
	}
	if !json.Valid(body) {
		return nil, OutcomeInvalidBody, errInvalidBody
	}
	return body, OutcomeOK, nil
}

func (h *Handler) observe(outcome string) {
	if h.observer != nil {
		h.observer.ObserveUpstream(outcome)
	}
}

func setCORSHeaders(header http.Header) {
	header.Set("Access-Control-Allow-Credentials", "true")
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET,OPTIONS")
	header.Set("Access-Control-Allow-Headers", allowHeaders)
}
