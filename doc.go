// Package sportysky provides a Go client for the Sportysky weather and
// geolocation API.
//
// The client builds requests (path and query parameters) and hands them to a
// transport. Responses are returned untouched as *http.Response; decoding the
// body is left to the caller.
//
// # Quick Start
//
//	client, err := sportysky.New("https://api.sportysky.com", token)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := client.ForecastByLatLng(context.Background(), 48.85, 2.35)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer resp.Body.Close()
//
// # Configuration
//
// Use functional options to configure the client:
//
//	client, err := sportysky.New(apiURL, token,
//	    sportysky.WithModels("arome", "arpege"),
//	    sportysky.WithTimeout(10*time.Second),
//	)
//
// The SRREPORT_APIURL environment variable, when set, replaces the API URL
// passed to New. Settings can also be read from a YAML file with LoadConfig
// and turned into a client with NewFromConfig.
//
// Every request carries the "f" (format) and "token" parameters. The "models"
// parameter is sent as a comma-separated list when a default model list is
// configured, or when models are passed to a single call; per-call models
// replace the default list.
//
// # Caching
//
// WithCache puts an RFC 7234 HTTP cache (in memory or on disk) in front of the
// default transport. Cache policy comes from the API's response headers.
//
// # Error Handling
//
// Construction errors are *ConfigError values matching ErrMissingToken,
// ErrMissingBaseURL or ErrInvalidBaseURL with errors.Is. Request errors come
// straight from the transport; the default one returns *StatusError for
// non-2xx responses:
//
//	resp, err := client.ForecastByCode(ctx, "FR")
//	if sportysky.IsNotFound(err) {
//	    // Unknown country code
//	}
//
// The client never retries.
//
// # Thread Safety
//
// The Client is safe for concurrent use from multiple goroutines.
package sportysky
