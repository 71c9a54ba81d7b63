// Package transport provides the HTTP transports used by the Sportysky client.
package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// Transport issues GET requests against the Sportysky API.
//
// Implementations own connection handling, TLS, timeouts and the decision of
// which status codes are errors. The client never retries or rewrites the
// error returned by Get.
type Transport interface {
	// Get sends a GET request for path with the given query parameters.
	Get(ctx context.Context, path string, query url.Values) (*http.Response, error)
}

// Func adapts an ordinary function to the Transport interface.
type Func func(ctx context.Context, path string, query url.Values) (*http.Response, error)

// Get calls f(ctx, path, query).
func (f Func) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	return f(ctx, path, query)
}

// Close releases t if it holds resources. Transports that don't implement
// io.Closer are left alone.
func Close(t Transport) error {
	if closer, ok := t.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
