package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/gregjones/httpcache"

	"github.com/sportrizer/sportysky-go/security"
)

// HTTP implements Transport on top of net/http.
type HTTP struct {
	baseURL     *url.URL
	httpClient  *http.Client
	timeout     time.Duration
	header      http.Header
	cache       httpcache.Cache
	checkStatus bool
	debug       bool
	redact      []string
}

// HTTPOption configures an HTTP transport.
type HTTPOption func(*HTTP)

// WithHTTPClient sets a custom HTTP client. Its timeout takes precedence over
// WithTimeout.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(h *HTTP) {
		h.httpClient = client
	}
}

// WithTimeout sets the request timeout of the default HTTP client (default: 30s).
func WithTimeout(d time.Duration) HTTPOption {
	return func(h *HTTP) {
		h.timeout = d
	}
}

// WithHeader sets a header sent with every request, replacing any earlier
// value for key (including the default Accept).
func WithHeader(key, value string) HTTPOption {
	return func(h *HTTP) {
		h.header.Set(key, value)
	}
}

// WithCache puts an HTTP cache in front of the client's round tripper.
// Freshness and validation follow the response headers; see httpcache.
func WithCache(cache httpcache.Cache) HTTPOption {
	return func(h *HTTP) {
		h.cache = cache
	}
}

// WithStatusCheck controls whether non-2xx responses are turned into a
// *StatusError (default: true). When disabled the response is returned as is.
func WithStatusCheck(enabled bool) HTTPOption {
	return func(h *HTTP) {
		h.checkStatus = enabled
	}
}

// WithDebug logs every request and response status.
func WithDebug(enabled bool) HTTPOption {
	return func(h *HTTP) {
		h.debug = enabled
	}
}

// WithRedactedParams names query parameters that must never show up in logs
// or error messages.
func WithRedactedParams(keys ...string) HTTPOption {
	return func(h *HTTP) {
		h.redact = append(h.redact, keys...)
	}
}

// NewHTTP creates an HTTP transport rooted at baseURL.
// Every request carries "Accept: application/json".
func NewHTTP(baseURL string, opts ...HTTPOption) (*HTTP, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	h := &HTTP{
		baseURL:     u,
		timeout:     30 * time.Second,
		header:      http.Header{"Accept": []string{"application/json"}},
		checkStatus: true,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.httpClient == nil {
		h.httpClient = &http.Client{Timeout: h.timeout}
	}
	if h.cache != nil {
		c := *h.httpClient
		c.Transport = CachingRoundTripper(h.cache, c.Transport)
		h.httpClient = &c
	}
	return h, nil
}

// BaseURL returns the URL requests are resolved against.
func (h *HTTP) BaseURL() string {
	return h.baseURL.String()
}

// Close releases idle connections.
func (h *HTTP) Close() error {
	h.httpClient.CloseIdleConnections()
	return nil
}

// Get sends a GET request for path, resolved against the base URL the way a
// browser resolves a link: an absolute path replaces the base path.
func (h *HTTP) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := h.resolve(path, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vals := range h.header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	logURL := security.RedactURL(u, h.redact...)
	if h.debug {
		ancli.Noticef("GET %s\n", logURL)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = logURL
		}
		if h.debug {
			ancli.Errf("GET %s: %v\n", logURL, err)
		}
		return nil, fmt.Errorf("http request: %w", err)
	}

	if h.debug {
		ancli.Okf("GET %s: %s (from cache: %v)\n", logURL, resp.Status, FromCache(resp))
	}

	if h.checkStatus && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Method:     http.MethodGet,
			URL:        logURL,
			Header:     resp.Header,
			Body:       body,
		}
	}

	return resp, nil
}

func (h *HTTP) resolve(path string, query url.Values) *url.URL {
	u := h.baseURL.ResolveReference(&url.URL{Path: path})
	u.RawQuery = query.Encode()
	return u
}
