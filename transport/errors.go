package transport

import (
	"fmt"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of a failed response body is kept.
const maxErrorBody = 4 << 10

// StatusError is returned by HTTP when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int         // HTTP status code
	Status     string      // Status line, e.g. "404 Not Found"
	Method     string      // Request method
	URL        string      // Request URL with secrets redacted
	Header     http.Header // Response headers
	Body       []byte      // Leading part of the response body
}

func (e *StatusError) Error() string {
	msg := strings.TrimSpace(string(e.Body))
	if msg != "" {
		return fmt.Sprintf("sportysky: %s %s: %s (%s)", e.Method, e.URL, e.Status, msg)
	}
	return fmt.Sprintf("sportysky: %s %s: %s", e.Method, e.URL, e.Status)
}

// Temporary reports whether the status usually clears up on its own.
// The client doesn't act on it; it's there for callers that retry.
func (e *StatusError) Temporary() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
