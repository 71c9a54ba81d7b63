package sportysky

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"

	"github.com/sportrizer/sportysky-go/security"
	"github.com/sportrizer/sportysky-go/transport"
)

const (
	// EnvAPIURL overrides the API URL given to New when set.
	EnvAPIURL = "SRREPORT_APIURL"
	// EnvDebugKey enables debug logging, like DEBUG does.
	EnvDebugKey = "DEBUG_SPORTYSKY"

	// DefaultLimit is the number of places requested by ForecastByBounds
	// when limit is zero or negative. Such a limit is never sent as is.
	DefaultLimit = 100
)

// Request paths.
const (
	pathLatLng = "/api/weather/gps:%s,%s/"
	pathCode   = "/api/weather/iso2:%s /"
	pathPlaces = "/api/geo/places/"
)

// Client is a Sportysky API client.
// It is safe for concurrent use from multiple goroutines.
type Client struct {
	config    *clientConfig
	transport transport.Transport
}

// New creates a client for the API at apiURL, authenticated with token.
//
// If the EnvAPIURL environment variable is set it replaces apiURL, so a
// deployment can point the client elsewhere without code changes.
//
// Example:
//
//	client, err := sportysky.New("https://api.sportysky.com", token,
//	    sportysky.WithModels("arome", "arpege"),
//	    sportysky.WithCache(sportysky.CacheConfig{Enabled: true, Dir: cacheDir}),
//	)
func New(apiURL, token string, opts ...Option) (*Client, error) {
	config := defaultConfig()
	config.baseURL = apiURL
	config.token = token
	for _, opt := range opts {
		opt(config)
	}

	if config.envOverride {
		config.baseURL = resolveBaseURL(config.baseURL, config.getenv)
	}
	if !config.debugSet {
		config.debug = misc.Truthy(config.getenv("DEBUG")) || misc.Truthy(config.getenv(EnvDebugKey))
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	t := config.transport
	if t == nil {
		var err error
		t, err = newHTTPTransport(config)
		if err != nil {
			return nil, &ConfigError{Field: "api_url", Err: fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)}
		}
	}

	if config.debug {
		ancli.Noticef("sportysky: api=%s token=%s format=%s models=%v\n",
			config.baseURL, security.Fingerprint(config.token), config.format, config.models)
	}

	return &Client{
		config:    config,
		transport: t,
	}, nil
}

// MustNew creates a new client and panics if the configuration is invalid.
// Use New() for error handling in production code.
func MustNew(apiURL, token string, opts ...Option) *Client {
	client, err := New(apiURL, token, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// resolveBaseURL returns the URL from the environment if set, else explicit.
func resolveBaseURL(explicit string, getenv func(string) string) string {
	if v := strings.TrimSpace(getenv(EnvAPIURL)); v != "" {
		return v
	}
	return explicit
}

// validateConfig validates the client configuration.
func validateConfig(config *clientConfig) error {
	if strings.TrimSpace(config.token) == "" {
		return &ConfigError{Field: "token", Err: ErrMissingToken}
	}
	if strings.TrimSpace(config.baseURL) == "" {
		return &ConfigError{Field: "api_url", Err: ErrMissingBaseURL}
	}
	if config.timeout < 0 {
		return &ConfigError{Field: "timeout", Err: fmt.Errorf("%w: timeout cannot be negative", ErrInvalidConfig)}
	}
	return nil
}

func newHTTPTransport(config *clientConfig) (*transport.HTTP, error) {
	opts := []transport.HTTPOption{
		transport.WithTimeout(config.timeout),
		transport.WithDebug(config.debug),
		transport.WithRedactedParams(ParamToken),
	}
	if config.httpClient != nil {
		opts = append(opts, transport.WithHTTPClient(config.httpClient))
	}
	for k, v := range config.header {
		opts = append(opts, transport.WithHeader(k, v))
	}
	if cache := newCache(config.cacheConfig); cache != nil {
		opts = append(opts, transport.WithCache(cache))
	}
	return transport.NewHTTP(config.baseURL, opts...)
}

// BaseURL returns the resolved API URL.
func (c *Client) BaseURL() string {
	return c.config.baseURL
}

// Format returns the response format sent as the "f" parameter.
func (c *Client) Format() string {
	return c.config.format
}

// Models returns a copy of the default model list.
func (c *Client) Models() []string {
	return append([]string(nil), c.config.models...)
}

// BuildQuery returns the parameters common to every request, with extra laid
// on top. "f" and "token" are always present; "models" only when a default
// model list is configured. Keys in extra win.
func (c *Client) BuildQuery(extra Query) Query {
	q := Query{
		ParamFormat: c.config.format,
		ParamToken:  c.config.token,
	}
	if len(c.config.models) > 0 {
		q[ParamModels] = joinModels(c.config.models)
	}
	for k, v := range extra {
		q[k] = v
	}
	return q
}

// ForecastByLatLng requests the forecast for a GPS position.
// Non-empty models replace the default model list for this call.
//
// Example:
//
//	resp, err := client.ForecastByLatLng(ctx, 48.85, 2.35)
func (c *Client) ForecastByLatLng(ctx context.Context, latitude, longitude float64, models ...string) (*http.Response, error) {
	path := fmt.Sprintf(pathLatLng, formatFloat(latitude), formatFloat(longitude))
	return c.get(ctx, path, c.BuildQuery(nil), models)
}

// ForecastByCode requests the forecast for an ISO 3166-1 alpha-2 country code.
func (c *Client) ForecastByCode(ctx context.Context, code string, models ...string) (*http.Response, error) {
	path := fmt.Sprintf(pathCode, code)
	return c.get(ctx, path, c.BuildQuery(nil), models)
}

// ForecastByBounds looks up at most limit places inside b.
// A limit <= 0 is replaced by DefaultLimit; the API never sees it.
//
// Example:
//
//	resp, err := client.ForecastByBounds(ctx, sportysky.Bounds{
//	    North: 49, West: 2, South: 48, East: 3,
//	}, 10)
func (c *Client) ForecastByBounds(ctx context.Context, b Bounds, limit int, models ...string) (*http.Response, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := c.BuildQuery(Query{
		ParamQuery: "bounds:" + b.String(),
		ParamLimit: strconv.Itoa(limit),
	})
	return c.get(ctx, pathPlaces, q, models)
}

// get sends the request. Errors from the transport are returned as is.
func (c *Client) get(ctx context.Context, path string, q Query, models []string) (*http.Response, error) {
	if len(models) > 0 {
		q[ParamModels] = joinModels(models)
	}
	return c.transport.Get(ctx, path, q.Values())
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	return transport.Close(c.transport)
}
