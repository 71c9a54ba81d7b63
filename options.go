package sportysky

import (
	"net/http"
	"os"
	"time"

	"github.com/sportrizer/sportysky-go/transport"
)

// DefaultFormat is the response format requested when none is configured.
const DefaultFormat = "json"

// Option configures a Client.
type Option func(*clientConfig)

// clientConfig holds client configuration. It is never modified after New
// returns.
type clientConfig struct {
	baseURL     string
	token       string
	format      string
	models      []string
	transport   transport.Transport
	httpClient  *http.Client
	timeout     time.Duration
	header      map[string]string
	cacheConfig CacheConfig
	debug       bool
	debugSet    bool
	envOverride bool
	getenv      func(string) string
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		format:      DefaultFormat,
		timeout:     30 * time.Second,
		header:      map[string]string{},
		cacheConfig: DefaultCacheConfig(),
		envOverride: true,
		getenv:      os.Getenv,
	}
}

// WithTransport injects the transport used for every request. The client then
// ignores WithHTTPClient, WithTimeout, WithHeader and WithCache.
func WithTransport(t transport.Transport) Option {
	return func(c *clientConfig) {
		c.transport = t
	}
}

// WithModels sets the forecast models requested by default.
func WithModels(models ...string) Option {
	return func(c *clientConfig) {
		c.models = append([]string(nil), models...)
	}
}

// WithFormat sets the response format parameter (default: "json").
func WithFormat(format string) Option {
	return func(c *clientConfig) {
		if format == "" {
			format = DefaultFormat
		}
		c.format = format
	}
}

// WithHTTPClient sets a custom HTTP client for the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout (default: 30s).
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithHeader adds a static header to every request, e.g. a User-Agent.
func WithHeader(key, value string) Option {
	return func(c *clientConfig) {
		c.header[key] = value
	}
}

// WithCache configures HTTP response caching.
func WithCache(config CacheConfig) Option {
	return func(c *clientConfig) {
		c.cacheConfig = config
	}
}

// WithDebug logs every request with the token redacted. It wins over the
// DEBUG and EnvDebugKey environment variables in both directions.
func WithDebug(enabled bool) Option {
	return func(c *clientConfig) {
		c.debug = enabled
		c.debugSet = true
	}
}

// WithoutEnvOverride makes New ignore EnvAPIURL.
func WithoutEnvOverride() Option {
	return func(c *clientConfig) {
		c.envOverride = false
	}
}

// withGetenv replaces the environment lookup used by New.
func withGetenv(getenv func(string) string) Option {
	return func(c *clientConfig) {
		c.getenv = getenv
	}
}
