// Package apiclient calls the production floor REST backend. Responses are
// passed through untouched; the client never retries.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds every call, including reading the response body.
	DefaultTimeout = 30 * time.Second
	// DevelopmentBaseURL is the backend address used outside production.
	DevelopmentBaseURL = "http://127.0.0.1:8000"
	// ProxyPath is the same-origin path the console server forwards to the backend.
	ProxyPath = "/api"

	maxErrorBody = 4 << 10
)

// ErrRelativeBaseURL is returned when the base URL has no scheme or host.
var ErrRelativeBaseURL = errors.New("apiclient: base URL must be absolute")

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("apiclient: %s %s: backend responded with status %d", e.Method, e.Path, e.StatusCode)
	if body := strings.TrimSpace(string(e.Body)); body != "" {
		msg += ": " + body
	}
	return msg
}

// StatusCode extracts the backend status from err.
func StatusCode(err error) (int, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode, true
	}
	return 0, false
}

// ResolveBaseURL picks the backend base URL: the explicit value if set, the
// same-origin proxy path in production, the development backend otherwise.
// Relative results are joined onto origin when one is given.
func ResolveBaseURL(explicit, env, origin string) string {
	base := strings.TrimSpace(explicit)
	if base == "" {
		if env == "production" {
			base = ProxyPath
		} else {
			base = DevelopmentBaseURL
		}
	}
	if strings.HasPrefix(base, "/") && origin != "" {
		base = strings.TrimRight(origin, "/") + base
	}
	return base
}

// Client wraps an HTTP client bound to one backend.
type Client struct {
	baseURL    string
	httpClient *http.Client

	Divisions       Resource
	Departments     Departments
	Positions       Resource
	SubPositions    SubPositions
	Workers         Resource
	Shifts          Resource
	Suppliers       Resource
	Items           Items
	ProblemComments Resource
	ProductionLogs  ProductionLogs
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New constructs a client for baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("apiclient: parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrRelativeBaseURL, baseURL)
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Divisions = Resource{client: c, name: "divisions"}
	c.Departments = Departments{Resource{client: c, name: "departments"}}
	c.Positions = Resource{client: c, name: "positions"}
	c.SubPositions = SubPositions{Resource{client: c, name: "sub-positions"}}
	c.Workers = Resource{client: c, name: "workers"}
	c.Shifts = Resource{client: c, name: "shifts"}
	c.Suppliers = Resource{client: c, name: "suppliers"}
	c.Items = Items{Resource{client: c, name: "items"}}
	c.ProblemComments = Resource{client: c, name: "problem-comments"}
	c.ProductionLogs = ProductionLogs{Resource{client: c, name: "production-logs"}}
	return c, nil
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues GET path.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues POST path with body encoded as JSON.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put issues PUT path with body encoded as JSON.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete issues DELETE path.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := encodeBody(body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: snippet}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: read %s %s: %w", method, path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return json.RawMessage(data), nil
}

func encodeBody(body any) ([]byte, error) {
	switch v := body.(type) {
	case json.RawMessage:
		if !json.Valid(v) {
			return nil, errors.New("invalid JSON body")
		}
		return v, nil
	case []byte:
		if !json.Valid(v) {
			return nil, errors.New("invalid JSON body")
		}
		return v, nil
	default:
		return json.Marshal(body)
	}
}
