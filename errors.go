package sportysky

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sportrizer/sportysky-go/transport"
)

// Sentinel errors for use with errors.Is.
var (
	ErrMissingToken   = errors.New("sportysky: api token is required")
	ErrMissingBaseURL = errors.New("sportysky: api url is required")
	ErrInvalidBaseURL = errors.New("sportysky: invalid api url")
	ErrInvalidConfig  = errors.New("sportysky: invalid configuration")
)

// ConfigError reports a construction parameter that is missing or invalid.
type ConfigError struct {
	Field string // Offending setting, e.g. "token"
	Err   error  // One of the sentinel errors above, possibly wrapped
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// StatusError is the error returned for non-2xx responses by the default
// transport.
type StatusError = transport.StatusError

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var e *transport.StatusError
	if errors.As(err, &e) {
		return e.StatusCode, true
	}
	return 0, false
}

// IsNotFound checks if an error is a 404 from the API.
func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}

// IsUnauthorized checks if the API rejected the token.
func IsUnauthorized(err error) bool {
	code, ok := StatusCode(err)
	return ok && (code == http.StatusUnauthorized || code == http.StatusForbidden)
}
