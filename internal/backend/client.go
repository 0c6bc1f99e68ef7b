// Package backend is the JSON client for the food-ordering backend API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Cheertaboi/storefront-service/internal/metrics"
)

const (
	maxErrorBody    = 64 << 10
	maxResponseBody = 8 << 20
)

// ErrDecode marks a 2xx response whose body could not be decoded.
var ErrDecode = errors.New("backend: undecodable response")

// APIError is returned for any non-2xx response.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

type Config struct {
	BaseURL string
	// Timeout bounds each call. Zero means no client-side timeout; the
	// request context still applies.
	Timeout time.Duration
}

// Client calls the backend. Calls are never retried.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *metrics.Metrics
	log        *slog.Logger
}

func NewClient(cfg Config, m *metrics.Metrics, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		metrics:    m,
		log:        log,
	}
}

// BaseURL is the backend origin the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends one request. endpoint is the route template used as a metric label.
func (c *Client) do(ctx context.Context, method, endpoint, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveBackend(endpoint, 0, time.Since(start))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	c.metrics.ObserveBackend(endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.WarnContext(ctx, "backend call failed",
			"method", method, "path", path, "status", resp.StatusCode)
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDecode, method, path, err)
	}
	return nil
}

// ResolveImageURL turns a backend image reference into an absolute URL.
// Absolute http(s) URLs are returned as is; root-relative paths and bare file
// names are resolved against the backend origin.
func (c *Client) ResolveImageURL(ref string) string {
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref
	case strings.HasPrefix(ref, "/"):
		return c.baseURL + ref
	default:
		return c.baseURL + "/" + ref
	}
}
